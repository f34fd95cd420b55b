package scoring

// Banded component scorers for the universal calculator, plus the fixed
// placeholder estimates the specialist engine uses until real data sources
// are wired. All outputs are in [0, 100].

// ScoreShortInterest scores short interest as a percent of float.
func ScoreShortInterest(siPct float64) float64 {
	switch {
	case siPct >= 40:
		return 100
	case siPct >= 30:
		return 90
	case siPct >= 20:
		return 75
	case siPct >= 15:
		return 60
	case siPct >= 10:
		return 40
	default:
		return 20
	}
}

// ScoreVolumeRatio scores recent volume relative to average volume.
func ScoreVolumeRatio(ratio float64) float64 {
	switch {
	case ratio >= 3.0:
		return 100
	case ratio >= 2.0:
		return 80
	case ratio >= 1.5:
		return 60
	case ratio >= 1.2:
		return 40
	default:
		return 20
	}
}

// ScorePriceAction scores 30-day price momentum.
func ScorePriceAction(changePct float64) float64 {
	switch {
	case changePct >= 50:
		return 100
	case changePct >= 30:
		return 80
	case changePct >= 15:
		return 60
	case changePct >= 5:
		return 40
	case changePct >= 0:
		return 30
	default:
		return 10
	}
}

// ScoreFTDVolume scores fails-to-deliver volume.
// TODO: real FTD scoring once the SEC data feed lands.
func ScoreFTDVolume(_ float64) float64 {
	return 50.0
}

// ScoreGamma scores options gamma exposure.
func ScoreGamma(_ float64) float64 {
	return 50.0
}

// EstimateFTDPressure estimates settlement pressure from the 35-day series
// position: pressure builds as the boundary approaches and peaks just after.
func EstimateFTDPressure(settlementPosition int) float64 {
	switch {
	case settlementPosition < 5:
		return 90.0
	case settlementPosition < 10:
		return 70.0
	case settlementPosition > 30:
		return 80.0
	default:
		return 50.0
	}
}

// EstimateGammaExposure is a fixed moderate placeholder.
func EstimateGammaExposure() float64 {
	return 65.0
}

// EstimateShortPressure is a fixed placeholder, higher for the primary ticker.
func EstimateShortPressure(primary bool) float64 {
	if primary {
		return 75.0
	}
	return 70.0
}

// EstimateSentiment is a fixed bullish placeholder.
func EstimateSentiment() float64 {
	return 80.0
}
