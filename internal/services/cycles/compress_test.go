package cycles

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// The rounded segment lengths for base 214 and ratio 0.64 with real-valued
// gap compounding.
var wantLengths = []int{214, 137, 88, 56, 36, 23, 15, 9, 6, 4}

func TestSegmentLengths(t *testing.T) {
	c := NewCompressingCycle()
	segs := c.segments(600)

	require.Len(t, segs, len(wantLengths))
	for i, s := range segs {
		require.Equal(t, wantLengths[i], s.Length, "segment %d", i)
	}
}

func TestBoundariesStrictlyIncreasing(t *testing.T) {
	c := NewCompressingCycle()
	segs := c.segments(600)

	prev := c.Origin
	for _, s := range segs {
		require.True(t, s.Boundary.After(prev), "boundary %d not increasing", s.Index)
		prev = s.Boundary
	}

	// Cumulative day offsets follow the rounded lengths exactly.
	total := 0
	for i, s := range segs {
		total += wantLengths[i]
		require.Equal(t, total, s.EndOffset)
	}
}

func TestActiveOnlyInCompletionWindow(t *testing.T) {
	c := NewCompressingCycle()

	// First segment spans days [0, 214); active only on days 211-213.
	require.False(t, c.Active(0))
	require.False(t, c.Active(100))
	require.False(t, c.Active(210))
	require.True(t, c.Active(211))
	require.True(t, c.Active(212))
	require.True(t, c.Active(213))

	// Day 214 starts the second segment.
	require.False(t, c.Active(214))

	// Second segment spans [214, 351); active on days 348-350.
	require.False(t, c.Active(347))
	require.True(t, c.Active(348))
	require.True(t, c.Active(350))
	require.False(t, c.Active(351))
}

func TestNextBoundary(t *testing.T) {
	c := NewCompressingCycle()

	next, ok := c.NextBoundary(0)
	require.True(t, ok)
	require.Equal(t, c.Origin.AddDate(0, 0, 214), next)

	next, ok = c.NextBoundary(214)
	require.True(t, ok)
	require.Equal(t, c.Origin.AddDate(0, 0, 351), next)

	// Past the final boundary the series is exhausted.
	_, ok = c.NextBoundary(10_000)
	require.False(t, ok)
}

func TestOccurrencesWithinYear(t *testing.T) {
	c := NewCompressingCycle()
	now := c.Origin

	occs := c.Occurrences(now)
	require.NotEmpty(t, occs)
	require.Equal(t, "214d Cycle #1", occs[0].Name)
	require.Equal(t, 214, occs[0].DaysUntil)
	require.Equal(t, 214, occs[0].CycleLength)

	horizon := now.AddDate(0, 0, 365)
	for _, o := range occs {
		require.True(t, o.Date.After(now))
		require.True(t, o.Date.Before(horizon))
	}
}

func TestAnchorConstants(t *testing.T) {
	require.Equal(t, time.Date(2024, 4, 25, 0, 0, 0, 0, time.UTC), PatternOrigin)
	require.Equal(t, time.Date(2021, 1, 28, 0, 0, 0, 0, time.UTC), MajorCycleAnchor)
	require.Equal(t, time.Date(2025, 11, 25, 0, 0, 0, 0, time.UTC), FirstRepeat)
}
