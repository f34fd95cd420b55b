package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"SqueezeWatch/internal/domain/models"
	domsvc "SqueezeWatch/internal/domain/service"
	"SqueezeWatch/pkg/config"
	xhttp "SqueezeWatch/pkg/http"
	xlogger "SqueezeWatch/pkg/logger"
	"SqueezeWatch/pkg/util"
)

// MarketScanner scores a fixed universe of tickers against a reference squeeze
// setup and keeps a snapshot of its latest run for the scheduler and health
// endpoints.
type MarketScanner struct {
	provider     domsvc.MarketDataProvider
	universe     []string
	defaultLimit int
	defaultMin   float64
	logger       *xlogger.Logger

	mu       sync.RWMutex
	results  []models.ScanResult
	lastScan time.Time
}

func NewMarketScanner(cfg *config.Config, provider domsvc.MarketDataProvider, logger *xlogger.Logger) *MarketScanner {
	limit := cfg.Scanner.DefaultLimit
	if limit <= 0 {
		limit = 10
	}
	minScore := cfg.Scanner.DefaultMin
	if minScore <= 0 {
		minScore = 60
	}
	return &MarketScanner{
		provider:     provider,
		universe:     cfg.Scanner.Universe,
		defaultLimit: limit,
		defaultMin:   minScore,
		logger:       logger,
	}
}

// Scan scores every ticker in the universe, drops those under minScore and
// returns up to limit results ordered by score descending.
func (s *MarketScanner) Scan(ctx context.Context, limit int, minScore float64) ([]models.ScanResult, error) {
	results := make([]models.ScanResult, 0, len(s.universe))
	for _, ticker := range s.universe {
		result, err := s.score(ctx, ticker)
		if err != nil {
			s.logger.Warn("scanner skipping ticker",
				xlogger.String("ticker", ticker), xlogger.Error(err))
			continue
		}
		if result.Score >= minScore {
			results = append(results, result)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > limit {
		results = results[:limit]
	}

	s.mu.Lock()
	s.results = results
	s.lastScan = time.Now().UTC()
	s.mu.Unlock()

	return results, nil
}

// Analyze scores a single ticker and attaches the qualitative setup comparison.
func (s *MarketScanner) Analyze(ctx context.Context, ticker string) (models.ScanAnalysis, error) {
	ticker = util.NormalizeTicker(ticker)
	if !util.ContainsTicker(s.universe, ticker) {
		return models.ScanAnalysis{}, xhttp.NotFoundErrorf("ticker %s is not in the scan universe", ticker)
	}
	result, err := s.score(ctx, ticker)
	if err != nil {
		return models.ScanAnalysis{}, err
	}

	stats, err := s.provider.Stats(ctx, ticker)
	if err != nil {
		return models.ScanAnalysis{}, err
	}

	analysis := models.ScanAnalysis{ScanResult: result}
	analysis.SetupComparison.SetupSimilarity = result.SetupSimilarity
	analysis.SetupComparison.KeyFactors = keyFactors(stats)
	return analysis, nil
}

// Refresh reruns the scan with a wide net. Used by the daily schedule.
// Refresh runs a scan with the configured defaults and snapshots the result.
func (s *MarketScanner) Refresh(ctx context.Context) error {
	results, err := s.Scan(ctx, s.defaultLimit, s.defaultMin)
	if err != nil {
		return err
	}
	s.logger.Info("scanner refreshed", xlogger.Int("candidates", len(results)))
	return nil
}

// LastScan returns the latest snapshot and when it was taken.
func (s *MarketScanner) LastScan() ([]models.ScanResult, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	results := make([]models.ScanResult, len(s.results))
	copy(results, s.results)
	return results, s.lastScan
}

func (s *MarketScanner) score(ctx context.Context, ticker string) (models.ScanResult, error) {
	stats, err := s.provider.Stats(ctx, ticker)
	if err != nil {
		return models.ScanResult{}, err
	}

	siScore := clamp100(stats.ShortInterest * 2.5)
	floatScore := scoreFloat(stats.FloatShares)
	dtcScore := clamp100(stats.DaysToCover * 20)

	score := siScore*0.5 + floatScore*0.25 + dtcScore*0.25
	similarity := clamp100(stats.ShortInterest*1.5 + floatScore*0.3)

	return models.ScanResult{
		Ticker:          ticker,
		Score:           round1(score),
		SetupSimilarity: round1(similarity),
		Metrics: map[string]float64{
			"short_interest": stats.ShortInterest,
			"float_shares":   float64(stats.FloatShares),
			"days_to_cover":  stats.DaysToCover,
		},
		Alerts: alerts(stats),
	}, nil
}

func alerts(stats models.TickerStats) []string {
	out := []string{}
	if stats.ShortInterest > 30 {
		out = append(out, fmt.Sprintf("SI: %.1f%% - EXTREMELY HIGH", stats.ShortInterest))
	}
	if stats.FloatShares > 0 && stats.FloatShares < 50_000_000 {
		out = append(out, fmt.Sprintf("Float: %.0fM - VERY LOW", float64(stats.FloatShares)/1_000_000))
	}
	if stats.DaysToCover > 3 {
		out = append(out, fmt.Sprintf("Days to Cover: %.1f - HIGH", stats.DaysToCover))
	}
	return out
}

func keyFactors(stats models.TickerStats) []models.ComparisonFactor {
	short := models.ComparisonFactor{Factor: "Short Interest", Match: "Low"}
	if stats.ShortInterest > 20 {
		short.Match = "High"
	}
	float := models.ComparisonFactor{Factor: "Float Size", Match: "Different"}
	if stats.FloatShares > 0 && stats.FloatShares < 100_000_000 {
		float.Match = "Similar"
	}
	return []models.ComparisonFactor{
		short,
		float,
		{Factor: "Community Interest", Match: "Growing"},
	}
}

func scoreFloat(floatShares int64) float64 {
	switch {
	case floatShares <= 0:
		return 25
	case floatShares < 50_000_000:
		return 100
	case floatShares < 100_000_000:
		return 50
	default:
		return 25
	}
}

func clamp100(v float64) float64 {
	if v > 100 {
		return 100
	}
	if v < 0 {
		return 0
	}
	return v
}
