package scoring

import "SqueezeWatch/internal/domain/models"

// Component keys used in weight tables and probability breakdowns.
const (
	ComponentCycle     = "cycle_convergence"
	ComponentWarrant   = "warrant_proximity"
	ComponentFTD       = "ftd_accumulation"
	ComponentGamma     = "options_gamma"
	ComponentShort     = "short_interest"
	ComponentSentiment = "sentiment"
	ComponentVolume    = "volume_volatility"
	ComponentPrice     = "price_action"
)

// WeightTable maps component keys to weights summing to 1.0.
type WeightTable map[string]float64

// PrimaryWeights is the weight set for the warrant-bearing specialist ticker.
func PrimaryWeights() WeightTable {
	return WeightTable{
		ComponentCycle:     0.30,
		ComponentWarrant:   0.15,
		ComponentFTD:       0.20,
		ComponentGamma:     0.15,
		ComponentShort:     0.10,
		ComponentSentiment: 0.10,
	}
}

// SecondaryWeights is the weight set for the remaining specialist tickers.
func SecondaryWeights() WeightTable {
	return WeightTable{
		ComponentCycle:     0.35,
		ComponentFTD:       0.25,
		ComponentGamma:     0.15,
		ComponentShort:     0.15,
		ComponentSentiment: 0.10,
	}
}

// UniversalWeights is the generic-instrument weight set.
func UniversalWeights() WeightTable {
	return WeightTable{
		ComponentShort:  0.30,
		ComponentFTD:    0.25,
		ComponentGamma:  0.20,
		ComponentVolume: 0.15,
		ComponentPrice:  0.10,
	}
}

// Clamp bounds a component score to [0, 100].
func Clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Combine folds clamped component scores into a weighted probability.
// Components without a weight are ignored; missing components contribute zero.
func Combine(components map[string]float64, weights WeightTable) float64 {
	p := 0.0
	for key, w := range weights {
		p += Clamp(components[key]) * w
	}
	return Clamp(p)
}

// ConfidenceLabel maps a probability to its banded confidence label.
func ConfidenceLabel(probability float64) string {
	switch {
	case probability >= 70:
		return models.ConfidenceHigh
	case probability >= 50:
		return models.ConfidenceModerate
	default:
		return models.ConfidenceLow
	}
}
