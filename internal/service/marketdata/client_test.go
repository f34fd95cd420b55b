package marketdata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"SqueezeWatch/pkg/cache"
	"SqueezeWatch/pkg/config"
)

func testConfig(baseURL string) *config.Config {
	cfg := &config.Config{}
	cfg.Provider.BaseURL = baseURL
	cfg.Provider.FallbackPrices = map[string]float64{"GME": 20.50, "AMC": 4.50}
	return cfg
}

func TestQuoteFromUpstream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/quote/GME", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ticker":"GME","price":25.00,"open":20.00}`))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), nil, nil, nil)

	q, err := c.Quote(context.Background(), "gme")
	require.NoError(t, err)
	require.Equal(t, "GME", q.Ticker)
	require.Equal(t, 25.00, q.Price)
	require.Equal(t, 5.00, q.Change)
	require.InDelta(t, 25.0, q.ChangePct, 1e-9)
}

func TestQuoteFallbackOnFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), nil, nil, nil)

	q, err := c.Quote(context.Background(), "GME")
	require.NoError(t, err, "fallback contract: upstream failure never errors")
	require.Equal(t, 20.50, q.Price)

	q, err = c.Quote(context.Background(), "AMC")
	require.NoError(t, err)
	require.Equal(t, 4.50, q.Price)

	// Unknown ticker falls back to zero price.
	q, err = c.Quote(context.Background(), "XYZ")
	require.NoError(t, err)
	require.Equal(t, 0.0, q.Price)
}

func TestQuoteFallbackOnNonPositivePrice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ticker":"GME","price":0,"open":0}`))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), nil, nil, nil)

	q, err := c.Quote(context.Background(), "GME")
	require.NoError(t, err)
	require.Equal(t, 20.50, q.Price)
}

func TestQuoteServedFromCache(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ticker":"GME","price":25.00,"open":20.00}`))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), cache.NewMemoryCache(), nil, nil)

	_, err := c.Quote(context.Background(), "GME")
	require.NoError(t, err)
	q, err := c.Quote(context.Background(), "GME")
	require.NoError(t, err)
	require.Equal(t, 25.00, q.Price)
	require.Equal(t, 1, calls)
}

func TestStats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/stats/GME", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"short_percent_float": 22.5,
			"shares_short": 60000000,
			"float_shares": 300000000,
			"avg_volume": 20000000,
			"recent_volume": 50000000,
			"price": 30.0,
			"price_30d_ago": 20.0
		}`))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), nil, nil, nil)

	stats, err := c.Stats(context.Background(), "GME")
	require.NoError(t, err)
	require.Equal(t, 22.5, stats.ShortInterest)
	require.InDelta(t, 2.5, stats.VolumeRatio, 1e-9)
	require.InDelta(t, 3.0, stats.DaysToCover, 1e-9)
	require.InDelta(t, 50.0, stats.PriceChange30d, 1e-9)
}

func TestStatsFallback(t *testing.T) {
	c := NewClient(testConfig("http://127.0.0.1:1"), nil, nil, nil)

	stats, err := c.Stats(context.Background(), "GME")
	require.NoError(t, err)
	require.Equal(t, 1.0, stats.VolumeRatio)
	require.Equal(t, 20.50, stats.CurrentPrice)
	require.Zero(t, stats.ShortInterest)
}

func TestShortInterestDerivedFromStats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"short_percent_float": 18.0, "shares_short": 10000000, "avg_volume": 5000000}`))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), nil, nil, nil)

	si, err := c.ShortInterest(context.Background(), "GME")
	require.NoError(t, err)
	require.Equal(t, "GME", si.Ticker)
	require.Equal(t, 18.0, si.ShortPercentFloat)
	require.Equal(t, int64(10_000_000), si.SharesShort)
	require.InDelta(t, 2.0, si.ShortRatio, 1e-9)
}
