package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"SqueezeWatch/internal/domain/models"
	internalrepo "SqueezeWatch/internal/repository"
	"SqueezeWatch/internal/services/scoring"
	"SqueezeWatch/pkg/config"
)

// stubProvider returns fixed values and honors the fallback contract.
type stubProvider struct {
	price float64
	stats models.TickerStats
}

func (p *stubProvider) Quote(_ context.Context, ticker string) (models.Quote, error) {
	return models.Quote{Ticker: ticker, Price: p.price}, nil
}

func (p *stubProvider) Stats(_ context.Context, _ string) (models.TickerStats, error) {
	return p.stats, nil
}

func (p *stubProvider) ShortInterest(_ context.Context, ticker string) (models.ShortInterest, error) {
	return models.ShortInterest{Ticker: ticker, ShortPercentFloat: p.stats.ShortInterest}, nil
}

func testSpecialistConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Specialist.Tickers = []string{"GME", "AMC"}
	cfg.Specialist.PrimaryTicker = "GME"
	cfg.Specialist.WarrantTickers = []string{"GME"}
	return cfg
}

func newTestSpecialist(price float64) *SpecialistCalculator {
	return NewSpecialistCalculator(
		testSpecialistConfig(),
		&stubProvider{price: price},
		internalrepo.NewMemoryEventStore(),
		nil, nil,
	)
}

func TestSupports(t *testing.T) {
	c := newTestSpecialist(20.50)
	require.True(t, c.Supports("GME"))
	require.True(t, c.Supports("gme"))
	require.True(t, c.Supports("AMC"))
	require.False(t, c.Supports("TSLA"))
}

func TestHasWarrants(t *testing.T) {
	c := newTestSpecialist(20.50)
	require.True(t, c.HasWarrants("GME"))
	require.False(t, c.HasWarrants("AMC"))
}

func TestPrimaryProbability(t *testing.T) {
	c := newTestSpecialist(20.50)

	report, err := c.Probability(context.Background(), "GME")
	require.NoError(t, err)

	require.Equal(t, "GME", report.Ticker)
	require.GreaterOrEqual(t, report.Probability, 0.0)
	require.LessOrEqual(t, report.Probability, 100.0)
	require.Contains(t, []string{
		models.ConfidenceHigh, models.ConfidenceModerate, models.ConfidenceLow,
	}, report.Confidence)

	// The primary breakdown carries all six components.
	require.Len(t, report.Breakdown, 6)
	require.Contains(t, report.Breakdown, scoring.ComponentCycle)
	require.Contains(t, report.Breakdown, scoring.ComponentWarrant)
	require.Contains(t, report.Breakdown, scoring.ComponentFTD)
	require.Contains(t, report.Breakdown, scoring.ComponentGamma)
	require.Contains(t, report.Breakdown, scoring.ComponentShort)
	require.Contains(t, report.Breakdown, scoring.ComponentSentiment)

	require.Equal(t, 75.0, report.Breakdown[scoring.ComponentShort])
	require.Equal(t, 80.0, report.Breakdown[scoring.ComponentSentiment])
	require.Equal(t, 65.0, report.Breakdown[scoring.ComponentGamma])
	require.NotNil(t, report.ActiveCycles)
	require.NotNil(t, report.UpcomingConvergences)
	require.False(t, report.Timestamp.IsZero())
}

func TestSecondaryBreakdownOmitsWarrant(t *testing.T) {
	c := newTestSpecialist(4.50)

	report, err := c.Probability(context.Background(), "AMC")
	require.NoError(t, err)

	require.Len(t, report.Breakdown, 5)
	require.NotContains(t, report.Breakdown, scoring.ComponentWarrant)
	require.Equal(t, 70.0, report.Breakdown[scoring.ComponentShort])
}

func TestUpcomingCyclesOrdered(t *testing.T) {
	c := newTestSpecialist(20.50)

	occs := c.UpcomingCycles()
	require.NotEmpty(t, occs)
	for i := 1; i < len(occs); i++ {
		require.False(t, occs[i].Date.Before(occs[i-1].Date))
	}
}

func TestWarrantStatusUsesPrimaryQuote(t *testing.T) {
	c := newTestSpecialist(33.00)

	st, err := c.WarrantStatus(context.Background())
	require.NoError(t, err)
	require.Equal(t, "ITM", st.Status)
	require.Equal(t, 33.00, st.CurrentPrice)
}

// Observations are write-only with respect to scoring: posting cycle events
// must not move the probability at all.
func TestObservationsDoNotAffectProbability(t *testing.T) {
	c := newTestSpecialist(20.50)
	ctx := context.Background()

	before, err := c.Probability(ctx, "GME")
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		c.RecordObservation(models.CycleWebhookRequest{
			Ticker:     "gme",
			CycleType:  models.CycleTypeSettlement,
			CycleName:  "T+35 FTD Settlement",
			Date:       "2025-12-01",
			Confidence: 99,
			DaysUntil:  3,
		})
	}

	after, err := c.Probability(ctx, "GME")
	require.NoError(t, err)

	require.Equal(t, before.Probability, after.Probability)
	require.Equal(t, before.Breakdown, after.Breakdown)
	require.Equal(t, before.ActiveCycles, after.ActiveCycles)

	// The events themselves are retained in order, normalized to upper case.
	events := c.Observations("GME")
	require.Len(t, events, 5)
	require.Equal(t, "GME", events[0].Ticker)
	require.False(t, events[0].ReceivedAt.IsZero())
}
