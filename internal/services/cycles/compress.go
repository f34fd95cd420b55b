package cycles

import (
	"fmt"
	"math"
	"time"

	"SqueezeWatch/internal/domain/models"
	"SqueezeWatch/pkg/util"
)

// Anchor dates for the cycle generators.
var (
	// PatternOrigin anchors the compressing pattern and the 35-day
	// settlement series.
	PatternOrigin = time.Date(2024, 4, 25, 0, 0, 0, 0, time.UTC)
	// FirstRepeat is the first projected full-length repeat of the pattern.
	FirstRepeat = time.Date(2025, 11, 25, 0, 0, 0, 0, time.UTC)
	// MajorCycleAnchor anchors the 147-day series.
	MajorCycleAnchor = time.Date(2021, 1, 28, 0, 0, 0, 0, time.UTC)
)

const (
	baseCycleDays    = 214
	compressionRatio = 0.64
	maxTerms         = 10

	// completionWindowDays is the terminal slice of a segment during which
	// the pattern counts as active.
	completionWindowDays = 3
)

// CompressingCycle generates a finite series of boundary dates whose
// inter-boundary gaps shrink by a fixed ratio. The real-valued gap compounds;
// only the per-segment day count is rounded.
type CompressingCycle struct {
	Origin   time.Time
	BaseDays float64
	Ratio    float64
	MaxTerms int
}

// NewCompressingCycle returns the 214-day pattern generator.
func NewCompressingCycle() CompressingCycle {
	return CompressingCycle{
		Origin:   PatternOrigin,
		BaseDays: baseCycleDays,
		Ratio:    compressionRatio,
		MaxTerms: maxTerms,
	}
}

// Segment is one generated cycle segment.
type Segment struct {
	Index     int       // 0-based term number
	StartDay  int       // day offset of segment start from origin
	Length    int       // rounded segment length in days
	Boundary  time.Time // segment completion date
	EndOffset int       // StartDay + Length
}

// segments generates terms until the cap or until the cumulative offset
// exceeds limitDay + 365.
func (c CompressingCycle) segments(limitDay int) []Segment {
	segs := make([]Segment, 0, c.MaxTerms)
	length := c.BaseDays
	total := 0
	for i := 0; i < c.MaxTerms; i++ {
		if i > 0 {
			length *= c.Ratio
		}
		days := int(math.Round(length))
		segs = append(segs, Segment{
			Index:     i,
			StartDay:  total,
			Length:    days,
			Boundary:  c.Origin.AddDate(0, 0, total+days),
			EndOffset: total + days,
		})
		total += days
		if total > limitDay+365 {
			break
		}
	}
	return segs
}

// Active reports whether the given day offset from origin falls inside the
// final completion window of its enclosing segment.
func (c CompressingCycle) Active(daysFromOrigin int) bool {
	for _, s := range c.segments(daysFromOrigin) {
		if s.StartDay <= daysFromOrigin && daysFromOrigin < s.EndOffset {
			position := daysFromOrigin - s.StartDay
			return position >= s.Length-completionWindowDays
		}
	}
	return false
}

// NextBoundary returns the first boundary date strictly after the given day
// offset, or false when the series is exhausted.
func (c CompressingCycle) NextBoundary(daysFromOrigin int) (time.Time, bool) {
	for _, s := range c.segments(daysFromOrigin) {
		if s.EndOffset > daysFromOrigin {
			return s.Boundary, true
		}
	}
	return time.Time{}, false
}

// Occurrences projects all pattern boundaries within 365 days forward of now.
func (c CompressingCycle) Occurrences(now time.Time) []models.CycleOccurrence {
	horizon := now.AddDate(0, 0, 365)
	var out []models.CycleOccurrence
	for _, s := range c.segments(util.DaysBetween(c.Origin, now)) {
		if s.Boundary.After(now) && s.Boundary.Before(horizon) {
			out = append(out, models.CycleOccurrence{
				Type:        models.CycleTypeCompressing,
				Name:        fmt.Sprintf("214d Cycle #%d", s.Index+1),
				Date:        s.Boundary,
				DaysUntil:   util.DaysBetween(now, s.Boundary),
				CycleLength: s.Length,
			})
		}
	}
	return out
}
