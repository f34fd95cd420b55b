package models

import "time"

// Confidence labels derived from fixed probability thresholds.
const (
	ConfidenceHigh     = "HIGH"
	ConfidenceModerate = "MODERATE"
	ConfidenceLow      = "LOW"
)

// ProbabilityReport is the full probability document returned by both the
// specialist and universal calculators.
type ProbabilityReport struct {
	Ticker               string             `json:"ticker"`
	Probability          float64            `json:"probability"`
	Confidence           string             `json:"confidence"`
	Breakdown            map[string]float64 `json:"breakdown"`
	ActiveCycles         []ActiveCycle      `json:"active_cycles"`
	UpcomingConvergences []Convergence      `json:"upcoming_convergences"`
	Timestamp            time.Time          `json:"timestamp"`
}

// Quote is a point-in-time price snapshot from the market data provider.
type Quote struct {
	Ticker    string  `json:"ticker"`
	Price     float64 `json:"price"`
	Change    float64 `json:"change"`
	ChangePct float64 `json:"change_pct"`
}

// ShortInterest is the short-interest snapshot for a ticker.
type ShortInterest struct {
	Ticker            string  `json:"ticker"`
	ShortPercentFloat float64 `json:"short_percent_float"`
	SharesShort       int64   `json:"shares_short"`
	ShortRatio        float64 `json:"short_ratio"`
}

// TickerStats are the raw squeeze metrics for a ticker. Values the provider
// cannot source arrive as zeros and are scored by fixed placeholder rules.
type TickerStats struct {
	ShortInterest  float64 `json:"short_interest"`
	SharesShort    int64   `json:"shares_short"`
	FloatShares    int64   `json:"float_shares"`
	DaysToCover    float64 `json:"days_to_cover"`
	BorrowRate     float64 `json:"borrow_rate"`
	FTDVolume      float64 `json:"ftd_volume"`
	GammaExposure  float64 `json:"gamma_exposure"`
	VolumeRatio    float64 `json:"volume_ratio"`
	PriceChange30d float64 `json:"price_change_30d"`
	CurrentPrice   float64 `json:"current_price"`
}

// WarrantStatus reports the warrant position relative to the current price.
type WarrantStatus struct {
	CurrentPrice     float64 `json:"current_price"`
	StrikePrice      float64 `json:"strike_price"`
	DistanceToITM    float64 `json:"distance_to_itm"`
	PercentToITM     float64 `json:"percent_to_itm"`
	DaysToExpiration int     `json:"days_to_expiration"`
	TotalWarrants    int64   `json:"total_warrants"`
	HedgeRatio       float64 `json:"hedge_ratio"`
	SharesToHedge    int64   `json:"shares_to_hedge"`
	Status           string  `json:"status"`
}

// ScanResult is one scanner candidate with its score components.
type ScanResult struct {
	Ticker          string             `json:"ticker"`
	Score           float64            `json:"score"`
	SetupSimilarity float64            `json:"setup_similarity"`
	Metrics         map[string]float64 `json:"metrics"`
	Alerts          []string           `json:"alerts"`
}

// ComparisonFactor is one qualitative factor in a setup comparison.
type ComparisonFactor struct {
	Factor string `json:"factor"`
	Match  string `json:"match"`
}

// ScanAnalysis is the detailed single-ticker scanner document.
type ScanAnalysis struct {
	ScanResult
	SetupComparison struct {
		SetupSimilarity float64            `json:"setup_similarity"`
		KeyFactors      []ComparisonFactor `json:"key_factors"`
	} `json:"setup_comparison"`
}

// MetricComparison is a head-to-head value pair with a winner tag.
type MetricComparison struct {
	Values map[string]float64 `json:"values"`
	Winner string             `json:"winner"`
}

// Comparison is the two-ticker comparison document.
type Comparison struct {
	Ticker1    string                      `json:"ticker1"`
	Ticker2    string                      `json:"ticker2"`
	Comparison map[string]MetricComparison `json:"comparison"`
}
