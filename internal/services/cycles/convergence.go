package cycles

import (
	"sort"
	"time"

	"SqueezeWatch/internal/domain/models"
	"SqueezeWatch/pkg/util"
)

const (
	// convergenceToleranceDays is the shared window within which distinct
	// cycle occurrences count as converging.
	convergenceToleranceDays = 3
	// approachWindowDays is how close the next compressing boundary must be
	// to count as upcoming.
	approachWindowDays = 7
	// maxConvergences caps the reported convergence list.
	maxConvergences = 5
)

// Engine combines the cycle generators into classification, convergence
// detection, and the cycle-convergence score. All queries share one "now"
// snapshot supplied by the caller.
type Engine struct {
	pattern    CompressingCycle
	settlement FixedCycle
	major      FixedCycle
}

// NewEngine builds an engine with the standard generator set.
func NewEngine() *Engine {
	return &Engine{
		pattern:    NewCompressingCycle(),
		settlement: NewSettlementCycle(),
		major:      NewMajorCycle(),
	}
}

// ConvergenceScore evaluates every generator's active/upcoming predicate and
// folds them into a 0-100 score. The compressing pattern counts as two
// active units.
func (e *Engine) ConvergenceScore(now time.Time) float64 {
	active := 0
	upcoming := 0

	daysFromOrigin := util.DaysBetween(e.pattern.Origin, now)
	if e.pattern.Active(daysFromOrigin) {
		active += 2
	}
	if next, ok := e.NextPatternBoundary(now); ok && util.DaysBetween(now, next) <= approachWindowDays {
		upcoming++
	}

	if e.settlement.Active(now) {
		active++
	} else if e.settlement.Upcoming(now) {
		upcoming++
	}

	if e.major.Active(now) {
		active++
	} else if e.major.Upcoming(now) {
		upcoming++
	}

	if InExpirationWeek(now) {
		active++
	}

	score := float64(active*20 + upcoming*10)
	if score > 100 {
		score = 100
	}
	return score
}

// ActiveCycles lists every generator currently inside its completion window.
func (e *Engine) ActiveCycles(now time.Time) []models.ActiveCycle {
	active := []models.ActiveCycle{}

	if e.pattern.Active(util.DaysBetween(e.pattern.Origin, now)) {
		active = append(active, models.ActiveCycle{
			Type:   models.CycleTypeCompressing,
			Status: "ACTIVE NOW",
			Name:   "214-Day Accelerating Pattern",
		})
	}
	if e.settlement.Active(now) {
		active = append(active, models.ActiveCycle{
			Type:   models.CycleTypeSettlement,
			Status: "ACTIVE NOW",
			Name:   e.settlement.Name,
		})
	}
	if e.major.Active(now) {
		active = append(active, models.ActiveCycle{
			Type:   models.CycleTypeMajor,
			Status: "ACTIVE NOW",
			Name:   e.major.Name,
		})
	}
	if InExpirationWeek(now) {
		active = append(active, models.ActiveCycle{
			Type:   models.CycleTypeOpex,
			Status: "ACTIVE NOW",
			Name:   "Quarterly OPEX",
		})
	}

	return active
}

// UpcomingOccurrences merges every generator's forward projection, sorted by
// date ascending.
func (e *Engine) UpcomingOccurrences(now time.Time) []models.CycleOccurrence {
	occurrences := e.pattern.Occurrences(now)
	occurrences = append(occurrences, e.settlement.Occurrences(now, e.settlement.LookaheadDays)...)
	occurrences = append(occurrences, e.major.Occurrences(now, e.major.LookaheadDays)...)
	occurrences = append(occurrences, QuarterlyOccurrences(now, 4)...)

	sort.SliceStable(occurrences, func(i, j int) bool {
		return occurrences[i].Date.Before(occurrences[j].Date)
	})
	return occurrences
}

// window is one in-progress convergence cluster keyed by its first member's date.
type window struct {
	key     time.Time
	members []models.CycleOccurrence
}

// ClusterOccurrences partitions occurrences into windows with a single
// forward pass: an occurrence joins the first existing window whose key date
// is within tolerance days, else it starts a new window. The first-fit
// tie-break is deliberate and order-dependent on the input sequence.
func ClusterOccurrences(occurrences []models.CycleOccurrence, toleranceDays int) [][]models.CycleOccurrence {
	var windows []window
	for _, occ := range occurrences {
		placed := false
		for i := range windows {
			diff := util.DaysBetween(windows[i].key, occ.Date)
			if diff < 0 {
				diff = -diff
			}
			if diff <= toleranceDays {
				windows[i].members = append(windows[i].members, occ)
				placed = true
				break
			}
		}
		if !placed {
			windows = append(windows, window{key: occ.Date, members: []models.CycleOccurrence{occ}})
		}
	}

	out := make([][]models.CycleOccurrence, 0, len(windows))
	for _, w := range windows {
		out = append(out, w.members)
	}
	return out
}

// Convergences reports windows of two or more occurrences over the 365-day
// horizon, sorted by days-until ascending and capped to the top five.
func (e *Engine) Convergences(now time.Time) []models.Convergence {
	convergences := []models.Convergence{}

	for _, members := range ClusterOccurrences(e.UpcomingOccurrences(now), convergenceToleranceDays) {
		if len(members) < 2 {
			continue
		}
		names := make([]string, 0, len(members))
		for _, m := range members {
			names = append(names, m.Name)
		}
		pressure := "HIGH"
		if len(members) >= 3 {
			pressure = "MEGA"
		}
		convergences = append(convergences, models.Convergence{
			Date:       members[0].Date.Format("2006-01-02"),
			DaysUntil:  members[0].DaysUntil,
			CycleCount: len(members),
			Cycles:     names,
			Pressure:   pressure,
		})
	}

	sort.SliceStable(convergences, func(i, j int) bool {
		return convergences[i].DaysUntil < convergences[j].DaysUntil
	})
	if len(convergences) > maxConvergences {
		convergences = convergences[:maxConvergences]
	}
	return convergences
}

// SettlementPosition exposes the 35-day series position for the placeholder
// pressure estimate.
func (e *Engine) SettlementPosition(now time.Time) int {
	return e.settlement.Position(now)
}

// NextPatternBoundary exposes the next compressing boundary, if any.
func (e *Engine) NextPatternBoundary(now time.Time) (time.Time, bool) {
	return e.pattern.NextBoundary(util.DaysBetween(e.pattern.Origin, now))
}
