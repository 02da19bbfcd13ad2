package scoring

import (
	"github.com/pthm-cable/forage/config"
	"github.com/pthm-cable/forage/food"
)

// SP computes the skill-point value of a stomach state.
//
// Formula: (density_sum * (1 + bonus) * dinnerPartyMult + base) * serverMult
// where bonus is the nutrition multiplier as a fraction plus the satisfied
// craving bonus. cravingsSatisfied is caller-tracked, not derived from the
// stomach.
func SP(stomach food.Portions, cravingsSatisfied int, cfg *config.Config, serverMult, dinnerPartyMult float64) float64 {
	n, _ := WeightedNutrients(stomach)

	bonus := NutritionMultiplier(stomach, cfg) / 100
	bonus += float64(cravingsSatisfied) * cfg.GameRules.CravingSatisfiedFrac

	nutritionSp := n.Sum() * (1 + bonus) * dinnerPartyMult
	return (nutritionSp + float64(cfg.Safety.BaseSkillPoints)) * serverMult
}

// Simulate clones the stomach and adds one unit of the given food. The
// caller's map is never touched; this is the only sanctioned way to score a
// hypothetical bite.
func Simulate(stomach food.Portions, f *food.Food) food.Portions {
	clone := stomach.Clone()
	clone.Add(f, 1)
	return clone
}

// SPDelta returns the SP change from adding one unit of a food. Deltas are
// computed with server and dinner-party multipliers at 1.0: ranking compares
// bites, and a flat multiplier cannot reorder them.
func SPDelta(f *food.Food, stomach food.Portions, cravingsSatisfied int, cfg *config.Config) float64 {
	after := Simulate(stomach, f)
	return SP(after, cravingsSatisfied, cfg, 1.0, 1.0) -
		SP(stomach, cravingsSatisfied, cfg, 1.0, 1.0)
}

// SPDeltaN returns the SP change from adding n units of a food, multipliers
// at 1.0 as in SPDelta. Non-positive n yields 0.
func SPDeltaN(f *food.Food, stomach food.Portions, n, cravingsSatisfied int, cfg *config.Config) float64 {
	if n <= 0 {
		return 0
	}
	after := stomach.Clone()
	after.Add(f, n)
	return SP(after, cravingsSatisfied, cfg, 1.0, 1.0) -
		SP(stomach, cravingsSatisfied, cfg, 1.0, 1.0)
}

// TastinessDelta returns the change in tastiness bonus (pp) from adding one
// unit of a food. Used for trace reporting only, never for ranking.
func TastinessDelta(stomach food.Portions, f *food.Food, cfg *config.Config) float64 {
	return TastinessBonus(Simulate(stomach, f), cfg) - TastinessBonus(stomach, cfg)
}
