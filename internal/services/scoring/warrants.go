package scoring

import (
	"time"

	"SqueezeWatch/internal/domain/models"
	"SqueezeWatch/pkg/util"
)

// Warrant describes a fixed warrant position on the primary ticker.
type Warrant struct {
	Strike     float64
	Expiration time.Time
	Total      int64
}

// DefaultWarrant is the tracked warrant position.
func DefaultWarrant() Warrant {
	return Warrant{
		Strike:     32.00,
		Expiration: time.Date(2026, 10, 30, 0, 0, 0, 0, time.UTC),
		Total:      59_000_000,
	}
}

// ProximityScore scores how close the price is to the strike: 100 at or
// above the strike, decaying by two points per percent away.
func (w Warrant) ProximityScore(price float64) float64 {
	if price >= w.Strike {
		return 100.0
	}
	percentAway := (w.Strike - price) / w.Strike * 100
	return Clamp(100 - percentAway*2)
}

// HedgeRatio estimates the aggregate dealer hedge ratio via a fixed
// price-banded step function. Breakpoints are part of the contract.
func (w Warrant) HedgeRatio(price float64) float64 {
	switch {
	case price >= w.Strike:
		return 0.70
	case price >= w.Strike-2:
		return 0.40
	case price >= w.Strike-4:
		return 0.20
	default:
		return 0.05
	}
}

// Status reports the full warrant position relative to the current price.
func (w Warrant) Status(price float64, now time.Time) models.WarrantStatus {
	distance := w.Strike - price
	if distance < 0 {
		distance = 0
	}
	percent := 0.0
	if price > 0 {
		percent = distance / price * 100
	}

	ratio := w.HedgeRatio(price)
	status := "OTM"
	if price >= w.Strike {
		status = "ITM"
	}

	return models.WarrantStatus{
		CurrentPrice:     price,
		StrikePrice:      w.Strike,
		DistanceToITM:    distance,
		PercentToITM:     percent,
		DaysToExpiration: util.DaysBetween(now, w.Expiration),
		TotalWarrants:    w.Total,
		HedgeRatio:       ratio,
		SharesToHedge:    int64(float64(w.Total) * ratio),
		Status:           status,
	}
}
