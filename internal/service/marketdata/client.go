package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"SqueezeWatch/internal/domain/models"
	domrepo "SqueezeWatch/internal/domain/repository"
	domsvc "SqueezeWatch/internal/domain/service"
	"SqueezeWatch/pkg/cache"
	"SqueezeWatch/pkg/config"
	xhttp "SqueezeWatch/pkg/http"
	xlogger "SqueezeWatch/pkg/logger"
	"SqueezeWatch/pkg/util"
)

// Client fetches quotes and squeeze metrics from the configured upstream API.
//
// Failures never propagate: any transport or decode error yields the
// configured fallback values so scoring always proceeds with best-effort
// data. The quote cache is shared with the live stream.
type Client struct {
	http      *xhttp.Client
	baseURL   string
	cache     cache.Service
	cacheTTL  time.Duration
	fallbacks map[string]float64
	metrics   domrepo.Metrics
	logger    *xlogger.Logger
}

// NewClient builds a market data client from config.
func NewClient(cfg *config.Config, c cache.Service, metrics domrepo.Metrics, logger *xlogger.Logger) *Client {
	timeout := cfg.Provider.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ttl := cfg.Provider.CacheTTL
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &Client{
		http:      xhttp.NewClient(xhttp.WithTimeout(timeout)),
		baseURL:   cfg.Provider.BaseURL,
		cache:     c,
		cacheTTL:  ttl,
		fallbacks: cfg.Provider.FallbackPrices,
		metrics:   metrics,
		logger:    logger,
	}
}

type quoteResponse struct {
	Ticker string  `json:"ticker"`
	Price  float64 `json:"price"`
	Open   float64 `json:"open"`
}

type statsResponse struct {
	ShortPercentFloat float64 `json:"short_percent_float"`
	SharesShort       int64   `json:"shares_short"`
	FloatShares       int64   `json:"float_shares"`
	AvgVolume         int64   `json:"avg_volume"`
	RecentVolume      int64   `json:"recent_volume"`
	Price             float64 `json:"price"`
	Price30dAgo       float64 `json:"price_30d_ago"`
	ShortRatio        float64 `json:"short_ratio"`
}

// Quote returns the current price snapshot for a ticker.
func (c *Client) Quote(ctx context.Context, ticker string) (models.Quote, error) {
	ticker = util.NormalizeTicker(ticker)

	var cached models.Quote
	if c.getCached(ctx, quoteKey(ticker), &cached) {
		return cached, nil
	}

	var qr quoteResponse
	err := c.getJSON(ctx, fmt.Sprintf("/quote/%s", ticker), &qr)
	if err != nil || qr.Price <= 0 {
		return c.fallbackQuote(ticker, err), nil
	}

	q := models.Quote{
		Ticker: ticker,
		Price:  qr.Price,
		Change: qr.Price - qr.Open,
	}
	if qr.Open > 0 {
		q.ChangePct = (qr.Price - qr.Open) / qr.Open * 100
	}

	c.setCached(ctx, quoteKey(ticker), q)
	if c.metrics != nil {
		c.metrics.RecordLastPrice(ticker, q.Price)
	}
	return q, nil
}

// Stats returns the raw squeeze metrics for a ticker.
func (c *Client) Stats(ctx context.Context, ticker string) (models.TickerStats, error) {
	ticker = util.NormalizeTicker(ticker)

	var cached models.TickerStats
	if c.getCached(ctx, statsKey(ticker), &cached) {
		return cached, nil
	}

	var sr statsResponse
	if err := c.getJSON(ctx, fmt.Sprintf("/stats/%s", ticker), &sr); err != nil {
		return c.fallbackStats(ticker, err), nil
	}

	stats := models.TickerStats{
		ShortInterest: sr.ShortPercentFloat,
		SharesShort:   sr.SharesShort,
		FloatShares:   sr.FloatShares,
		VolumeRatio:   1.0,
		CurrentPrice:  sr.Price,
	}
	if sr.AvgVolume > 0 {
		stats.VolumeRatio = float64(sr.RecentVolume) / float64(sr.AvgVolume)
		stats.DaysToCover = float64(sr.SharesShort) / float64(sr.AvgVolume)
	}
	if sr.Price30dAgo > 0 {
		stats.PriceChange30d = (sr.Price - sr.Price30dAgo) / sr.Price30dAgo * 100
	}

	c.setCached(ctx, statsKey(ticker), stats)
	return stats, nil
}

// ShortInterest returns the short-interest snapshot for a ticker.
func (c *Client) ShortInterest(ctx context.Context, ticker string) (models.ShortInterest, error) {
	ticker = util.NormalizeTicker(ticker)

	stats, _ := c.Stats(ctx, ticker)
	return models.ShortInterest{
		Ticker:            ticker,
		ShortPercentFloat: stats.ShortInterest,
		SharesShort:       stats.SharesShort,
		ShortRatio:        stats.DaysToCover,
	}, nil
}

func (c *Client) getJSON(ctx context.Context, path string, dest interface{}) error {
	if c.baseURL == "" {
		return fmt.Errorf("provider base URL not configured")
	}
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    c.baseURL + path,
	}, dest)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	return nil
}

func (c *Client) fallbackQuote(ticker string, cause error) models.Quote {
	if c.metrics != nil {
		c.metrics.RecordProviderError("quote")
	}
	if c.logger != nil && cause != nil {
		c.logger.Warn("quote fetch failed, using fallback",
			xlogger.String("ticker", ticker), xlogger.Error(cause))
	}
	return models.Quote{Ticker: ticker, Price: c.fallbacks[ticker]}
}

func (c *Client) fallbackStats(ticker string, cause error) models.TickerStats {
	if c.metrics != nil {
		c.metrics.RecordProviderError("stats")
	}
	if c.logger != nil && cause != nil {
		c.logger.Warn("stats fetch failed, using fallback",
			xlogger.String("ticker", ticker), xlogger.Error(cause))
	}
	return models.TickerStats{VolumeRatio: 1.0, CurrentPrice: c.fallbacks[ticker]}
}

func (c *Client) getCached(ctx context.Context, key string, dest interface{}) bool {
	if c.cache == nil {
		return false
	}
	var raw string
	if err := c.cache.Get(ctx, key, &raw); err != nil {
		return false
	}
	return json.Unmarshal([]byte(raw), dest) == nil
}

func (c *Client) setCached(ctx context.Context, key string, v interface{}) {
	if c.cache == nil {
		return
	}
	if b, err := json.Marshal(v); err == nil {
		_ = c.cache.Set(ctx, key, string(b), c.cacheTTL)
	}
}

func quoteKey(ticker string) string { return cache.GenerateKey("quote", ticker) }
func statsKey(ticker string) string { return cache.GenerateKey("stats", ticker) }

var _ domsvc.MarketDataProvider = (*Client)(nil)
