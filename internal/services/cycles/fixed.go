package cycles

import (
	"time"

	"SqueezeWatch/internal/domain/models"
	"SqueezeWatch/pkg/util"
)

// FixedCycle is a simple modular-arithmetic recurrence from a fixed anchor.
// The active/upcoming thresholds are intentionally asymmetric per series.
type FixedCycle struct {
	Anchor        time.Time
	PeriodDays    int
	Kind          string
	Name          string
	ActiveMax     int // active iff position <= ActiveMax
	UpcomingMin   int // upcoming iff position >= UpcomingMin
	LookaheadDays int // default forward projection window
}

// NewSettlementCycle returns the 35-day settlement series.
func NewSettlementCycle() FixedCycle {
	return FixedCycle{
		Anchor:        PatternOrigin,
		PeriodDays:    35,
		Kind:          models.CycleTypeSettlement,
		Name:          "T+35 FTD Settlement",
		ActiveMax:     0,
		UpcomingMin:   30,
		LookaheadDays: 90,
	}
}

// NewMajorCycle returns the 147-day series.
func NewMajorCycle() FixedCycle {
	return FixedCycle{
		Anchor:        MajorCycleAnchor,
		PeriodDays:    147,
		Kind:          models.CycleTypeMajor,
		Name:          "147-Day Major Cycle",
		ActiveMax:     3,
		UpcomingMin:   140,
		LookaheadDays: 180,
	}
}

// Position returns the day offset within the current period, always in
// [0, PeriodDays).
func (f FixedCycle) Position(now time.Time) int {
	p := util.DaysBetween(f.Anchor, now) % f.PeriodDays
	if p < 0 {
		p += f.PeriodDays
	}
	return p
}

// Active reports whether the series is inside its leading window.
func (f FixedCycle) Active(now time.Time) bool {
	return f.Position(now) <= f.ActiveMax
}

// Upcoming reports whether the series is inside its trailing approach window.
func (f FixedCycle) Upcoming(now time.Time) bool {
	return f.Position(now) >= f.UpcomingMin
}

// Occurrences enumerates every position-zero date within daysAhead of now.
// When already at position zero, today counts as the first occurrence.
func (f FixedCycle) Occurrences(now time.Time, daysAhead int) []models.CycleOccurrence {
	position := f.Position(now)
	daysToNext := 0
	if position != 0 {
		daysToNext = f.PeriodDays - position
	}

	horizon := now.AddDate(0, 0, daysAhead)
	var out []models.CycleOccurrence
	for i := 0; i <= daysAhead/f.PeriodDays; i++ {
		next := now.AddDate(0, 0, daysToNext+i*f.PeriodDays)
		if next.Before(horizon) {
			out = append(out, models.CycleOccurrence{
				Type:      f.Kind,
				Name:      f.Name,
				Date:      next,
				DaysUntil: util.DaysBetween(now, next),
			})
		}
	}
	return out
}
