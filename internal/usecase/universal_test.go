package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"SqueezeWatch/internal/domain/models"
	"SqueezeWatch/internal/services/scoring"
)

func TestUniversalProbability(t *testing.T) {
	c := NewUniversalCalculator(&stubProvider{stats: models.TickerStats{
		ShortInterest:  35,  // band 90
		VolumeRatio:    2.5, // band 80
		PriceChange30d: 20,  // band 60
	}}, nil, nil)

	report, err := c.Probability(context.Background(), "bb")
	require.NoError(t, err)

	require.Equal(t, "BB", report.Ticker)
	// 90*.30 + 50*.25 + 50*.20 + 80*.15 + 60*.10 = 67.5
	require.InDelta(t, 67.5, report.Probability, 1e-9)
	require.Equal(t, models.ConfidenceModerate, report.Confidence)

	require.Equal(t, 90.0, report.Breakdown[scoring.ComponentShort])
	require.Equal(t, 50.0, report.Breakdown[scoring.ComponentFTD])
	require.Equal(t, 50.0, report.Breakdown[scoring.ComponentGamma])
	require.Equal(t, 80.0, report.Breakdown[scoring.ComponentVolume])
	require.Equal(t, 60.0, report.Breakdown[scoring.ComponentPrice])

	// The universal mode never reports cycle state.
	require.Empty(t, report.ActiveCycles)
	require.Empty(t, report.UpcomingConvergences)
	require.NotNil(t, report.ActiveCycles)
	require.NotNil(t, report.UpcomingConvergences)
}

func TestUniversalMetrics(t *testing.T) {
	stats := models.TickerStats{ShortInterest: 12, DaysToCover: 2.5}
	c := NewUniversalCalculator(&stubProvider{stats: stats}, nil, nil)

	got, err := c.Metrics(context.Background(), "NOK")
	require.NoError(t, err)
	require.Equal(t, stats, got)
}

// compareProvider returns different stats per ticker.
type compareProvider struct {
	stats map[string]models.TickerStats
}

func (p *compareProvider) Quote(_ context.Context, ticker string) (models.Quote, error) {
	return models.Quote{Ticker: ticker, Price: p.stats[ticker].CurrentPrice}, nil
}

func (p *compareProvider) Stats(_ context.Context, ticker string) (models.TickerStats, error) {
	return p.stats[ticker], nil
}

func (p *compareProvider) ShortInterest(_ context.Context, ticker string) (models.ShortInterest, error) {
	return models.ShortInterest{Ticker: ticker, ShortPercentFloat: p.stats[ticker].ShortInterest}, nil
}

func TestCompare(t *testing.T) {
	c := NewUniversalCalculator(&compareProvider{stats: map[string]models.TickerStats{
		"GME": {ShortInterest: 25, DaysToCover: 4, VolumeRatio: 2.0, PriceChange30d: 10},
		"AMC": {ShortInterest: 15, DaysToCover: 6, VolumeRatio: 1.0, PriceChange30d: -5},
	}}, nil, nil)

	cmp, err := c.Compare(context.Background(), "gme", "amc")
	require.NoError(t, err)

	require.Equal(t, "GME", cmp.Ticker1)
	require.Equal(t, "AMC", cmp.Ticker2)

	si := cmp.Comparison["short_interest"]
	require.Equal(t, "GME", si.Winner)
	require.Equal(t, 25.0, si.Values["GME"])
	require.Equal(t, 15.0, si.Values["AMC"])

	dtc := cmp.Comparison["days_to_cover"]
	require.Equal(t, "AMC", dtc.Winner)

	prob := cmp.Comparison["squeeze_probability"]
	require.Equal(t, "GME", prob.Winner)
}
