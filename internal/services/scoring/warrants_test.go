package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHedgeRatio(t *testing.T) {
	w := DefaultWarrant()

	require.Equal(t, 0.70, w.HedgeRatio(32.00))
	require.Equal(t, 0.70, w.HedgeRatio(40.00))
	require.Equal(t, 0.40, w.HedgeRatio(30.00))
	require.Equal(t, 0.40, w.HedgeRatio(31.99))
	require.Equal(t, 0.20, w.HedgeRatio(28.00))
	require.Equal(t, 0.20, w.HedgeRatio(29.99))
	require.Equal(t, 0.05, w.HedgeRatio(27.99))
	require.Equal(t, 0.05, w.HedgeRatio(25.00))
}

func TestProximityScore(t *testing.T) {
	w := DefaultWarrant()

	require.Equal(t, 100.0, w.ProximityScore(32.00))
	require.Equal(t, 100.0, w.ProximityScore(50.00))

	// 10% below strike: 100 - 10*2 = 80.
	require.InDelta(t, 80.0, w.ProximityScore(28.80), 1e-9)

	// 50% below strike floors at zero.
	require.Equal(t, 0.0, w.ProximityScore(16.00))
	require.Equal(t, 0.0, w.ProximityScore(1.00))
}

func TestWarrantStatus(t *testing.T) {
	w := DefaultWarrant()
	now := time.Date(2025, 10, 30, 0, 0, 0, 0, time.UTC)

	st := w.Status(20.50, now)
	require.Equal(t, "OTM", st.Status)
	require.InDelta(t, 11.5, st.DistanceToITM, 1e-9)
	require.InDelta(t, 11.5/20.50*100, st.PercentToITM, 1e-9)
	require.Equal(t, 365, st.DaysToExpiration)
	require.Equal(t, int64(59_000_000), st.TotalWarrants)
	require.Equal(t, 0.05, st.HedgeRatio)
	require.Equal(t, int64(59_000_000*0.05), st.SharesToHedge)

	itm := w.Status(33.00, now)
	require.Equal(t, "ITM", itm.Status)
	require.Equal(t, 0.0, itm.DistanceToITM)
	require.Equal(t, 0.70, itm.HedgeRatio)
}
