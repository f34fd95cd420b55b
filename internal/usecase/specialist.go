package usecase

import (
	"context"
	"math"
	"time"

	"SqueezeWatch/internal/domain/models"
	domrepo "SqueezeWatch/internal/domain/repository"
	domsvc "SqueezeWatch/internal/domain/service"
	"SqueezeWatch/internal/services/cycles"
	"SqueezeWatch/internal/services/scoring"
	"SqueezeWatch/pkg/config"
	xlogger "SqueezeWatch/pkg/logger"
	"SqueezeWatch/pkg/util"
)

// SpecialistCalculator computes squeeze probability for the configured
// specialist tickers using the cycle convergence engine plus placeholder
// market metrics. Everything is derived from a single "now" snapshot taken
// once per request.
type SpecialistCalculator struct {
	engine         *cycles.Engine
	provider       domsvc.MarketDataProvider
	store          domrepo.EventStore
	warrant        scoring.Warrant
	tickers        []string
	primary        string
	warrantTickers []string
	metrics        domrepo.Metrics
	logger         *xlogger.Logger
}

// NewSpecialistCalculator builds the specialist calculator from config.
func NewSpecialistCalculator(
	cfg *config.Config,
	provider domsvc.MarketDataProvider,
	store domrepo.EventStore,
	metrics domrepo.Metrics,
	logger *xlogger.Logger,
) *SpecialistCalculator {
	warrantTickers := cfg.Specialist.WarrantTickers
	if len(warrantTickers) == 0 {
		warrantTickers = []string{cfg.Specialist.PrimaryTicker}
	}
	return &SpecialistCalculator{
		engine:         cycles.NewEngine(),
		provider:       provider,
		store:          store,
		warrant:        scoring.DefaultWarrant(),
		tickers:        cfg.Specialist.Tickers,
		primary:        util.NormalizeTicker(cfg.Specialist.PrimaryTicker),
		warrantTickers: warrantTickers,
		metrics:        metrics,
		logger:         logger,
	}
}

// Supports reports whether the ticker is in the specialist allow-list.
func (c *SpecialistCalculator) Supports(ticker string) bool {
	return util.ContainsTicker(c.tickers, ticker)
}

// HasWarrants reports whether the ticker carries a tracked warrant position.
func (c *SpecialistCalculator) HasWarrants(ticker string) bool {
	return util.ContainsTicker(c.warrantTickers, ticker)
}

// Probability computes the full probability document for a specialist ticker.
func (c *SpecialistCalculator) Probability(ctx context.Context, ticker string) (models.ProbabilityReport, error) {
	ticker = util.NormalizeTicker(ticker)
	now := time.Now().UTC()
	if c.metrics != nil {
		defer func(start time.Time) {
			c.metrics.RecordLatency("specialist_probability", time.Since(start).Seconds())
		}(time.Now())
	}

	quote, err := c.provider.Quote(ctx, ticker)
	if err != nil {
		return models.ProbabilityReport{}, err
	}

	isPrimary := ticker == c.primary

	cycleScore := c.engine.ConvergenceScore(now)
	ftdScore := scoring.EstimateFTDPressure(c.engine.SettlementPosition(now))
	gammaScore := scoring.EstimateGammaExposure()
	shortScore := scoring.EstimateShortPressure(isPrimary)
	sentimentScore := scoring.EstimateSentiment()

	components := map[string]float64{
		scoring.ComponentCycle:     cycleScore,
		scoring.ComponentFTD:       ftdScore,
		scoring.ComponentGamma:     gammaScore,
		scoring.ComponentShort:     shortScore,
		scoring.ComponentSentiment: sentimentScore,
	}

	weights := scoring.SecondaryWeights()
	if isPrimary {
		weights = scoring.PrimaryWeights()
		components[scoring.ComponentWarrant] = c.warrant.ProximityScore(quote.Price)
	}

	probability := round1(scoring.Combine(components, weights))

	breakdown := make(map[string]float64, len(components))
	for k, v := range components {
		breakdown[k] = round1(v)
	}

	if c.metrics != nil {
		c.metrics.RecordProbability(ticker, "specialist", probability)
	}

	return models.ProbabilityReport{
		Ticker:               ticker,
		Probability:          probability,
		Confidence:           scoring.ConfidenceLabel(probability),
		Breakdown:            breakdown,
		ActiveCycles:         c.engine.ActiveCycles(now),
		UpcomingConvergences: c.engine.Convergences(now),
		Timestamp:            now,
	}, nil
}

// UpcomingCycles returns every projected cycle occurrence, date-sorted.
func (c *SpecialistCalculator) UpcomingCycles() []models.CycleOccurrence {
	return c.engine.UpcomingOccurrences(time.Now().UTC())
}

// WarrantStatus returns the warrant position against the current price.
func (c *SpecialistCalculator) WarrantStatus(ctx context.Context) (models.WarrantStatus, error) {
	quote, err := c.provider.Quote(ctx, c.primary)
	if err != nil {
		return models.WarrantStatus{}, err
	}
	return c.warrant.Status(quote.Price, time.Now().UTC()), nil
}

// RecordObservation appends an externally produced cycle observation to the
// event store. The log is write-only: it never feeds back into scoring.
func (c *SpecialistCalculator) RecordObservation(req models.CycleWebhookRequest) models.CycleEvent {
	event := models.CycleEvent{
		Ticker:     util.NormalizeTicker(req.Ticker),
		CycleType:  req.CycleType,
		CycleName:  req.CycleName,
		Date:       req.Date,
		Confidence: req.Confidence,
		DaysUntil:  req.DaysUntil,
		ReceivedAt: time.Now().UTC(),
	}
	c.store.Append(event.Ticker, event)
	if c.metrics != nil {
		c.metrics.RecordCycleEvent(event.Ticker, event.CycleType)
	}
	if c.logger != nil {
		c.logger.Info("cycle observation recorded",
			xlogger.String("ticker", event.Ticker),
			xlogger.String("cycle_type", event.CycleType))
	}
	return event
}

// Observations lists the recorded observations for a ticker.
func (c *SpecialistCalculator) Observations(ticker string) []models.CycleEvent {
	return c.store.List(util.NormalizeTicker(ticker))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
