// Package scoring computes nutrient densities, the diet bonuses, and the SP
// value for a stomach state. Every function here is pure: inputs are treated
// as read-only and hypothetical bites go through Simulate, which clones.
package scoring

import (
	"github.com/pthm-cable/forage/food"
)

// Nutrients holds the four calorie-weighted nutrient densities.
type Nutrients struct {
	Carbs    float64
	Protein  float64
	Fat      float64
	Vitamins float64
}

// Sum returns the total density across all four nutrients.
func (n Nutrients) Sum() float64 {
	return n.Carbs + n.Protein + n.Fat + n.Vitamins
}

// values returns the densities in a fixed order for min/max scans.
func (n Nutrients) values() [4]float64 {
	return [4]float64{n.Carbs, n.Protein, n.Fat, n.Vitamins}
}

// WeightedNutrients returns the calorie-weighted average density of each
// nutrient across the stomach, plus the total calories. An empty stomach (or
// one with zero total calories) yields the zero vector, never a division by
// zero.
func WeightedNutrients(stomach food.Portions) (Nutrients, float64) {
	totalCal := float64(stomach.TotalCalories())
	if totalCal == 0 {
		return Nutrients{}, 0
	}

	var n Nutrients
	for _, entry := range stomach {
		// Weight by calories*count so high-calorie foods dominate balance.
		weight := float64(entry.Food.Calories*entry.Count) / totalCal
		n.Carbs += float64(entry.Food.Carbs) * weight
		n.Protein += float64(entry.Food.Protein) * weight
		n.Fat += float64(entry.Food.Fat) * weight
		n.Vitamins += float64(entry.Food.Vitamins) * weight
	}
	return n, totalCal
}
