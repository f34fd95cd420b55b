package cycles

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPositionAlwaysInRange(t *testing.T) {
	for _, f := range []FixedCycle{NewSettlementCycle(), NewMajorCycle()} {
		// Sweep across the anchor in both directions.
		for d := -400; d <= 400; d += 7 {
			now := f.Anchor.AddDate(0, 0, d)
			p := f.Position(now)
			require.GreaterOrEqual(t, p, 0, "day %d", d)
			require.Less(t, p, f.PeriodDays, "day %d", d)
		}
	}
}

func TestSettlementThresholds(t *testing.T) {
	f := NewSettlementCycle()

	require.True(t, f.Active(f.Anchor))
	require.False(t, f.Upcoming(f.Anchor))

	// Positions 1-29: neither.
	require.False(t, f.Active(f.Anchor.AddDate(0, 0, 1)))
	require.False(t, f.Upcoming(f.Anchor.AddDate(0, 0, 29)))

	// Positions 30-34: upcoming only.
	for d := 30; d <= 34; d++ {
		now := f.Anchor.AddDate(0, 0, d)
		require.True(t, f.Upcoming(now), "day %d", d)
		require.False(t, f.Active(now), "day %d", d)
	}

	// Next period starts active again.
	require.True(t, f.Active(f.Anchor.AddDate(0, 0, 35)))
}

func TestMajorThresholds(t *testing.T) {
	f := NewMajorCycle()

	for d := 0; d <= 3; d++ {
		require.True(t, f.Active(f.Anchor.AddDate(0, 0, d)), "day %d", d)
	}
	require.False(t, f.Active(f.Anchor.AddDate(0, 0, 4)))

	require.False(t, f.Upcoming(f.Anchor.AddDate(0, 0, 139)))
	for d := 140; d <= 146; d++ {
		now := f.Anchor.AddDate(0, 0, d)
		require.True(t, f.Upcoming(now), "day %d", d)
		require.False(t, f.Active(now), "day %d", d)
	}
}

func TestActiveUpcomingNeverBoth(t *testing.T) {
	for _, f := range []FixedCycle{NewSettlementCycle(), NewMajorCycle()} {
		for d := 0; d < f.PeriodDays; d++ {
			now := f.Anchor.AddDate(0, 0, d)
			require.False(t, f.Active(now) && f.Upcoming(now), "day %d", d)
		}
	}
}

func TestSettlementOccurrences(t *testing.T) {
	f := NewSettlementCycle()

	// At the anchor, position zero: today counts, then every 35 days.
	occs := f.Occurrences(f.Anchor, f.LookaheadDays)
	require.Len(t, occs, 3)
	require.Equal(t, 0, occs[0].DaysUntil)
	require.Equal(t, 35, occs[1].DaysUntil)
	require.Equal(t, 70, occs[2].DaysUntil)
	for _, o := range occs {
		require.Equal(t, "T+35 FTD Settlement", o.Name)
	}
}

func TestMajorOccurrencesWithinLookahead(t *testing.T) {
	f := NewMajorCycle()
	now := f.Anchor.AddDate(0, 0, 7) // position 7, next boundary 140 days out

	occs := f.Occurrences(now, f.LookaheadDays)
	require.Len(t, occs, 1)
	require.Equal(t, 140, occs[0].DaysUntil)
	require.Equal(t, time.Date(2021, 6, 24, 0, 0, 0, 0, time.UTC), occs[0].Date)
}
