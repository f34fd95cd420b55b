package cycles

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"SqueezeWatch/internal/domain/models"
)

func occAt(name string, base time.Time, day int) models.CycleOccurrence {
	return models.CycleOccurrence{
		Type:      models.CycleTypeSettlement,
		Name:      name,
		Date:      base.AddDate(0, 0, day),
		DaysUntil: day,
	}
}

func TestClusterOccurrences(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	occs := []models.CycleOccurrence{
		occAt("a", base, 10),
		occAt("b", base, 11),
		occAt("c", base, 50),
	}

	windows := ClusterOccurrences(occs, 3)
	require.Len(t, windows, 2)
	require.Len(t, windows[0], 2)
	require.Len(t, windows[1], 1)
	require.Equal(t, "a", windows[0][0].Name)
	require.Equal(t, "b", windows[0][1].Name)
	require.Equal(t, "c", windows[1][0].Name)
}

func TestClusterFirstFit(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	// Day 13 is within tolerance of the day-10 window key even though it is
	// closer to day 15; first fit wins.
	occs := []models.CycleOccurrence{
		occAt("a", base, 10),
		occAt("b", base, 15),
		occAt("c", base, 13),
	}

	windows := ClusterOccurrences(occs, 3)
	require.Len(t, windows, 2)
	require.Equal(t, []string{"a", "c"}, names(windows[0]))
	require.Equal(t, []string{"b"}, names(windows[1]))
}

func names(occs []models.CycleOccurrence) []string {
	out := make([]string, 0, len(occs))
	for _, o := range occs {
		out = append(out, o.Name)
	}
	return out
}

func TestConvergenceScoreAtOrigin(t *testing.T) {
	e := NewEngine()

	// At the pattern origin only the 35-day series is active (position 0):
	// the pattern segment has just started, the 147-day series sits at
	// position 7, and April is not a quarterly month.
	require.InDelta(t, 20.0, e.ConvergenceScore(PatternOrigin), 1e-9)

	active := e.ActiveCycles(PatternOrigin)
	require.Len(t, active, 1)
	require.Equal(t, models.CycleTypeSettlement, active[0].Type)
	require.Equal(t, "ACTIVE NOW", active[0].Status)
}

func TestConvergenceScoreClamped(t *testing.T) {
	e := NewEngine()
	for d := 0; d < 600; d += 3 {
		now := PatternOrigin.AddDate(0, 0, d)
		score := e.ConvergenceScore(now)
		require.GreaterOrEqual(t, score, 0.0)
		require.LessOrEqual(t, score, 100.0)
	}
}

func TestUpcomingOccurrencesSorted(t *testing.T) {
	e := NewEngine()
	occs := e.UpcomingOccurrences(PatternOrigin)
	require.NotEmpty(t, occs)
	for i := 1; i < len(occs); i++ {
		require.False(t, occs[i].Date.Before(occs[i-1].Date))
	}
}

func TestConvergences(t *testing.T) {
	e := NewEngine()

	for d := 0; d < 365; d += 11 {
		now := PatternOrigin.AddDate(0, 0, d)
		convs := e.Convergences(now)
		require.LessOrEqual(t, len(convs), 5)
		for i, c := range convs {
			require.GreaterOrEqual(t, c.CycleCount, 2)
			require.Len(t, c.Cycles, c.CycleCount)
			if c.CycleCount >= 3 {
				require.Equal(t, "MEGA", c.Pressure)
			} else {
				require.Equal(t, "HIGH", c.Pressure)
			}
			if i > 0 {
				require.GreaterOrEqual(t, c.DaysUntil, convs[i-1].DaysUntil)
			}
		}
	}
}

func TestSettlementPosition(t *testing.T) {
	e := NewEngine()
	require.Equal(t, 0, e.SettlementPosition(PatternOrigin))
	require.Equal(t, 7, e.SettlementPosition(PatternOrigin.AddDate(0, 0, 7)))
}
