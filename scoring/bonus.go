package scoring

import (
	"math"

	"github.com/pthm-cable/forage/config"
	"github.com/pthm-cable/forage/food"
)

// BalanceRatio returns min/max over the four densities, zeros included, so a
// single missing nutrient collapses the ratio to 0 no matter how large the
// others are. Returns 0 when no nutrient is positive.
func BalanceRatio(n Nutrients) float64 {
	values := n.values()
	minVal, maxVal := values[0], values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal <= 0 {
		return 0
	}
	return minVal / maxVal
}

// BalanceBonus converts the balance ratio to percentage points in [-50, +50].
func BalanceBonus(n Nutrients) float64 {
	return BalanceRatio(n)*100 - 50
}

// VarietyBonus returns the variety bonus in percentage points for a
// qualifying-food count. Each +20 foods halves the remaining gap to the cap.
// The count may be fractional (see SoftVarietyCount).
func VarietyBonus(count float64, cfg *config.Config) float64 {
	return cfg.Algorithm.VarietyBonusCapPp * (1 - math.Pow(0.5, count/20))
}

// IsVarietyQualifying reports whether this food alone meets the variety
// calorie threshold at the given stomach count.
func IsVarietyQualifying(f *food.Food, count int, cfg *config.Config) bool {
	return f.Calories*count >= cfg.GameRules.VarietyCalThreshold
}

// VarietyFraction returns this food's progress toward the variety threshold,
// clamped to [0, 1].
func VarietyFraction(f *food.Food, count int, cfg *config.Config) float64 {
	if count <= 0 {
		return 0
	}
	fraction := float64(f.Calories*count) / float64(cfg.GameRules.VarietyCalThreshold)
	return math.Min(1, fraction)
}

// VarietyCount returns the hard count: how many foods individually meet the
// variety threshold. This count feeds the displayed, authoritative SP.
func VarietyCount(stomach food.Portions, cfg *config.Config) int {
	count := 0
	for _, entry := range stomach {
		if IsVarietyQualifying(entry.Food, entry.Count, cfg) {
			count++
		}
	}
	return count
}

// SoftVarietyCount returns the fractional count: the sum of per-food
// threshold fractions. Only the ranking bias uses it; it gives below-threshold
// foods a smooth gradient that the hard count cannot.
func SoftVarietyCount(stomach food.Portions, cfg *config.Config) float64 {
	total := 0.0
	for _, entry := range stomach {
		total += VarietyFraction(entry.Food, entry.Count, cfg)
	}
	return total
}

// TastinessBonus returns the tastiness bonus in percentage points: the
// calorie-weighted average of the per-rating multipliers, scaled by the
// configured weight. Unrated foods are neutral.
func TastinessBonus(stomach food.Portions, cfg *config.Config) float64 {
	totalCal := float64(stomach.TotalCalories())
	if totalCal <= 0 {
		return 0
	}
	score := 0.0
	for _, entry := range stomach {
		score += food.TastinessMultiplier(entry.Food.Tastiness) * float64(entry.Food.Calories*entry.Count)
	}
	return (score / totalCal) * 100 * cfg.Algorithm.TastinessWeight
}

// NutritionMultiplier returns the combined balance + variety (hard count) +
// tastiness bonuses, all in percentage points.
func NutritionMultiplier(stomach food.Portions, cfg *config.Config) float64 {
	n, _ := WeightedNutrients(stomach)
	balance := BalanceBonus(n)
	variety := VarietyBonus(float64(VarietyCount(stomach, cfg)), cfg)
	tastiness := TastinessBonus(stomach, cfg)
	return balance + variety + tastiness
}
