package models

// Requests for the HTTP endpoints. Defined in domain for consistency and reuse.

type ScannerTopRequest struct {
	Limit    int     `query:"limit" json:"limit" default:"10" validate:"gte=1,lte=50"`
	MinScore float64 `query:"min_score" json:"min_score" default:"60" validate:"gte=0,lte=100"`
}

type CompareRequest struct {
	Ticker1 string `query:"ticker1" json:"ticker1" validate:"required,ticker"`
	Ticker2 string `query:"ticker2" json:"ticker2" validate:"required,ticker"`
}

// CycleWebhookRequest carries an externally produced cycle observation.
// Shape validation only; the payload never feeds back into scoring.
type CycleWebhookRequest struct {
	Ticker     string  `json:"ticker" validate:"required,ticker"`
	CycleType  string  `json:"cycle_type" validate:"required"`
	CycleName  string  `json:"cycle_name" validate:"required"`
	Date       string  `json:"date" validate:"required"`
	Confidence float64 `json:"confidence" validate:"gte=0,lte=100"`
	DaysUntil  int     `json:"days_until"`
}
