package models

import "time"

// Cycle type identifiers as emitted in API payloads.
const (
	CycleTypeCompressing = "214d_pattern"
	CycleTypeSettlement  = "ftd35"
	CycleTypeMajor       = "147day"
	CycleTypeOpex        = "opex"
)

// CycleOccurrence is a projected future cycle boundary. Immutable once
// computed; recomputed fresh on every request.
type CycleOccurrence struct {
	Type        string    `json:"type"`
	Name        string    `json:"name"`
	Date        time.Time `json:"date"`
	DaysUntil   int       `json:"days_until"`
	CycleLength int       `json:"cycle_length,omitempty"`
}

// ActiveCycle reports a cycle currently inside its completion window.
type ActiveCycle struct {
	Type   string `json:"type"`
	Status string `json:"status"`
	Name   string `json:"name"`
}

// Convergence is a window of two or more cycle occurrences landing within
// a shared 3-day tolerance.
type Convergence struct {
	Date       string   `json:"date"`
	DaysUntil  int      `json:"days_until"`
	CycleCount int      `json:"cycle_count"`
	Cycles     []string `json:"cycles"`
	Pressure   string   `json:"pressure"`
}

// CycleEvent is an externally produced cycle observation ingested over the
// webhook and appended to the event store.
type CycleEvent struct {
	Ticker     string    `json:"ticker"`
	CycleType  string    `json:"cycle_type"`
	CycleName  string    `json:"cycle_name"`
	Date       string    `json:"date"`
	Confidence float64   `json:"confidence"`
	DaysUntil  int       `json:"days_until"`
	ReceivedAt time.Time `json:"received_at"`
}
