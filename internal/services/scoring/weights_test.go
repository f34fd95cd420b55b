package scoring

import (
	"testing"

	"github.com/stretchr/testify/require"

	"SqueezeWatch/internal/domain/models"
)

func TestWeightTablesSumToOne(t *testing.T) {
	for name, table := range map[string]WeightTable{
		"primary":   PrimaryWeights(),
		"secondary": SecondaryWeights(),
		"universal": UniversalWeights(),
	} {
		sum := 0.0
		for _, w := range table {
			sum += w
		}
		require.InDelta(t, 1.0, sum, 1e-9, name)
	}
}

func TestCombinePrimary(t *testing.T) {
	components := map[string]float64{
		ComponentCycle:     40,
		ComponentWarrant:   30,
		ComponentFTD:       90,
		ComponentGamma:     65,
		ComponentShort:     75,
		ComponentSentiment: 80,
	}

	// 40*.30 + 30*.15 + 90*.20 + 65*.15 + 75*.10 + 80*.10 = 59.75
	require.InDelta(t, 59.75, Combine(components, PrimaryWeights()), 1e-9)
}

func TestCombineSecondary(t *testing.T) {
	components := map[string]float64{
		ComponentCycle:     40,
		ComponentFTD:       90,
		ComponentGamma:     65,
		ComponentShort:     70,
		ComponentSentiment: 80,
	}

	// 40*.35 + 90*.25 + 65*.15 + 70*.15 + 80*.10 = 64.75
	require.InDelta(t, 64.75, Combine(components, SecondaryWeights()), 1e-9)
}

func TestCombineUniversal(t *testing.T) {
	components := map[string]float64{
		ComponentShort:  90,
		ComponentFTD:    50,
		ComponentGamma:  50,
		ComponentVolume: 80,
		ComponentPrice:  60,
	}

	// 90*.30 + 50*.25 + 50*.20 + 80*.15 + 60*.10 = 67.5
	require.InDelta(t, 67.5, Combine(components, UniversalWeights()), 1e-9)
}

func TestCombineClampsComponents(t *testing.T) {
	components := map[string]float64{
		ComponentCycle:     500,
		ComponentWarrant:   500,
		ComponentFTD:       500,
		ComponentGamma:     500,
		ComponentShort:     500,
		ComponentSentiment: 500,
	}
	require.InDelta(t, 100.0, Combine(components, PrimaryWeights()), 1e-9)

	negative := map[string]float64{ComponentCycle: -50}
	require.InDelta(t, 0.0, Combine(negative, PrimaryWeights()), 1e-9)
}

func TestClamp(t *testing.T) {
	require.Equal(t, 0.0, Clamp(-1))
	require.Equal(t, 50.0, Clamp(50))
	require.Equal(t, 100.0, Clamp(101))
}

func TestConfidenceLabel(t *testing.T) {
	require.Equal(t, models.ConfidenceHigh, ConfidenceLabel(70))
	require.Equal(t, models.ConfidenceHigh, ConfidenceLabel(99))
	require.Equal(t, models.ConfidenceModerate, ConfidenceLabel(69.9))
	require.Equal(t, models.ConfidenceModerate, ConfidenceLabel(50))
	require.Equal(t, models.ConfidenceLow, ConfidenceLabel(49.9))
	require.Equal(t, models.ConfidenceLow, ConfidenceLabel(0))
}
