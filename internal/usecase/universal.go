package usecase

import (
	"context"
	"time"

	"SqueezeWatch/internal/domain/models"
	domrepo "SqueezeWatch/internal/domain/repository"
	domsvc "SqueezeWatch/internal/domain/service"
	"SqueezeWatch/internal/services/scoring"
	xlogger "SqueezeWatch/pkg/logger"
	"SqueezeWatch/pkg/util"
)

// UniversalCalculator scores any ticker from generic market structure bands.
// It carries no cycle model, so its reports always show empty cycle sections.
type UniversalCalculator struct {
	provider domsvc.MarketDataProvider
	metrics  domrepo.Metrics
	logger   *xlogger.Logger
}

func NewUniversalCalculator(provider domsvc.MarketDataProvider, metrics domrepo.Metrics, logger *xlogger.Logger) *UniversalCalculator {
	return &UniversalCalculator{provider: provider, metrics: metrics, logger: logger}
}

// Probability computes the band-based probability for an arbitrary ticker.
func (c *UniversalCalculator) Probability(ctx context.Context, ticker string) (models.ProbabilityReport, error) {
	ticker = util.NormalizeTicker(ticker)
	now := time.Now().UTC()

	stats, err := c.provider.Stats(ctx, ticker)
	if err != nil {
		return models.ProbabilityReport{}, err
	}

	components := map[string]float64{
		scoring.ComponentShort:  scoring.ScoreShortInterest(stats.ShortInterest),
		scoring.ComponentFTD:    scoring.ScoreFTDVolume(stats.FTDVolume),
		scoring.ComponentGamma:  scoring.ScoreGamma(stats.GammaExposure),
		scoring.ComponentVolume: scoring.ScoreVolumeRatio(stats.VolumeRatio),
		scoring.ComponentPrice:  scoring.ScorePriceAction(stats.PriceChange30d),
	}

	probability := round1(scoring.Combine(components, scoring.UniversalWeights()))

	breakdown := make(map[string]float64, len(components))
	for k, v := range components {
		breakdown[k] = round1(v)
	}

	if c.metrics != nil {
		c.metrics.RecordProbability(ticker, "universal", probability)
	}

	return models.ProbabilityReport{
		Ticker:               ticker,
		Probability:          probability,
		Confidence:           scoring.ConfidenceLabel(probability),
		Breakdown:            breakdown,
		ActiveCycles:         []models.ActiveCycle{},
		UpcomingConvergences: []models.Convergence{},
		Timestamp:            now,
	}, nil
}

// Metrics surfaces the raw market structure snapshot for a ticker.
func (c *UniversalCalculator) Metrics(ctx context.Context, ticker string) (models.TickerStats, error) {
	return c.provider.Stats(ctx, util.NormalizeTicker(ticker))
}

// Quote returns the current price snapshot for a ticker.
func (c *UniversalCalculator) Quote(ctx context.Context, ticker string) (models.Quote, error) {
	return c.provider.Quote(ctx, util.NormalizeTicker(ticker))
}

// ShortInterest returns the short-interest snapshot for a ticker.
func (c *UniversalCalculator) ShortInterest(ctx context.Context, ticker string) (models.ShortInterest, error) {
	return c.provider.ShortInterest(ctx, util.NormalizeTicker(ticker))
}

// Compare scores two tickers side by side and names a winner per metric.
func (c *UniversalCalculator) Compare(ctx context.Context, ticker1, ticker2 string) (models.Comparison, error) {
	ticker1 = util.NormalizeTicker(ticker1)
	ticker2 = util.NormalizeTicker(ticker2)

	report1, err := c.Probability(ctx, ticker1)
	if err != nil {
		return models.Comparison{}, err
	}
	report2, err := c.Probability(ctx, ticker2)
	if err != nil {
		return models.Comparison{}, err
	}
	stats1, err := c.provider.Stats(ctx, ticker1)
	if err != nil {
		return models.Comparison{}, err
	}
	stats2, err := c.provider.Stats(ctx, ticker2)
	if err != nil {
		return models.Comparison{}, err
	}

	return models.Comparison{
		Ticker1: ticker1,
		Ticker2: ticker2,
		Comparison: map[string]models.MetricComparison{
			"squeeze_probability": compareMetric(ticker1, ticker2, report1.Probability, report2.Probability),
			"short_interest":      compareMetric(ticker1, ticker2, stats1.ShortInterest, stats2.ShortInterest),
			"days_to_cover":       compareMetric(ticker1, ticker2, stats1.DaysToCover, stats2.DaysToCover),
		},
	}, nil
}

func compareMetric(ticker1, ticker2 string, v1, v2 float64) models.MetricComparison {
	winner := ticker1
	if v2 > v1 {
		winner = ticker2
	}
	return models.MetricComparison{
		Values: map[string]float64{ticker1: v1, ticker2: v2},
		Winner: winner,
	}
}
