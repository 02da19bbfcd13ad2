package scoring

import (
	"math"
	"testing"

	"github.com/pthm-cable/forage/food"
)

func TestSPEmptyStomach(t *testing.T) {
	cfg := testConfig(t)
	got := SP(make(food.Portions), 0, cfg, 1.0, 1.0)
	want := float64(cfg.Safety.BaseSkillPoints)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("SP(empty) = %v, want base %v", got, want)
	}

	// The server multiplier scales everything, base included.
	got = SP(make(food.Portions), 0, cfg, 2.0, 1.0)
	if math.Abs(got-2*want) > 1e-9 {
		t.Errorf("SP(empty, server 2x) = %v, want %v", got, 2*want)
	}
}

// Four portions of Bannock (650 cal, C6 P5 F7 V4, delicious):
// densities sum to 22, balance 4/7, one variety food, tastiness +20pp.
func TestSPBannockStomach(t *testing.T) {
	cfg := testConfig(t)
	bannock := &food.Food{
		Name: "Bannock", Calories: 650,
		Carbs: 6, Protein: 5, Fat: 7, Vitamins: 4,
		Tastiness: 2,
	}
	stomach := portionsOf(food.Portion{Food: bannock, Count: 4})

	balance := (4.0/7.0)*100 - 50
	variety := cfg.Algorithm.VarietyBonusCapPp * (1 - math.Pow(0.5, 1.0/20))
	tastiness := 20.0
	bonus := (balance + variety + tastiness) / 100
	want := 22*(1+bonus) + float64(cfg.Safety.BaseSkillPoints)

	got := SP(stomach, 0, cfg, 1.0, 1.0)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("SP = %v, want %v", got, want)
	}
	// Pin the absolute value so a formula regression cannot hide in both sides.
	if math.Abs(got-40.3836) > 0.001 {
		t.Errorf("SP = %v, want ~40.3836", got)
	}
}

func TestSPCravingBonus(t *testing.T) {
	cfg := testConfig(t)
	f := &food.Food{Name: "Bannock", Calories: 650, Carbs: 6, Protein: 5, Fat: 7, Vitamins: 4, Tastiness: 0}
	stomach := portionsOf(food.Portion{Food: f, Count: 1})

	base := SP(stomach, 0, cfg, 1.0, 1.0)
	one := SP(stomach, 1, cfg, 1.0, 1.0)
	two := SP(stomach, 2, cfg, 1.0, 1.0)

	n, _ := WeightedNutrients(stomach)
	step := n.Sum() * cfg.GameRules.CravingSatisfiedFrac
	if math.Abs((one-base)-step) > 1e-9 {
		t.Errorf("first craving added %v SP, want %v", one-base, step)
	}
	if math.Abs((two-one)-step) > 1e-9 {
		t.Errorf("second craving added %v SP, want %v", two-one, step)
	}
}

func TestSimulateDoesNotMutate(t *testing.T) {
	f := &food.Food{Name: "Berry", Calories: 50, Vitamins: 3, Tastiness: 0}
	stomach := portionsOf(food.Portion{Food: f, Count: 2})

	after := Simulate(stomach, f)

	if got := stomach.Count(f); got != 2 {
		t.Errorf("original stomach count = %d after Simulate, want 2", got)
	}
	if got := after.Count(f); got != 3 {
		t.Errorf("simulated stomach count = %d, want 3", got)
	}
}

func TestSPDeltaMatchesDifference(t *testing.T) {
	cfg := testConfig(t)
	bannock := &food.Food{Name: "Bannock", Calories: 650, Carbs: 6, Protein: 5, Fat: 7, Vitamins: 4, Tastiness: 2}
	berry := &food.Food{Name: "Berry", Calories: 50, Vitamins: 3, Tastiness: 1}
	stomach := portionsOf(food.Portion{Food: bannock, Count: 2})

	for _, f := range []*food.Food{bannock, berry} {
		delta := SPDelta(f, stomach, 0, cfg)
		want := SP(Simulate(stomach, f), 0, cfg, 1.0, 1.0) - SP(stomach, 0, cfg, 1.0, 1.0)
		if math.Abs(delta-want) > 1e-9 {
			t.Errorf("SPDelta(%s) = %v, want %v", f.Name, delta, want)
		}
	}
}

func TestSPDeltaN(t *testing.T) {
	cfg := testConfig(t)
	bannock := &food.Food{Name: "Bannock", Calories: 650, Carbs: 6, Protein: 5, Fat: 7, Vitamins: 4, Tastiness: 2}
	stomach := portionsOf(food.Portion{Food: bannock, Count: 1})

	t.Run("matches iterated simulation", func(t *testing.T) {
		after := stomach
		for i := 0; i < 3; i++ {
			after = Simulate(after, bannock)
		}
		want := SP(after, 0, cfg, 1.0, 1.0) - SP(stomach, 0, cfg, 1.0, 1.0)
		got := SPDeltaN(bannock, stomach, 3, 0, cfg)
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("SPDeltaN(3) = %v, want %v", got, want)
		}
	})

	t.Run("one unit agrees with SPDelta", func(t *testing.T) {
		if got, want := SPDeltaN(bannock, stomach, 1, 0, cfg), SPDelta(bannock, stomach, 0, cfg); math.Abs(got-want) > 1e-9 {
			t.Errorf("SPDeltaN(1) = %v, SPDelta = %v", got, want)
		}
	})

	t.Run("non-positive n", func(t *testing.T) {
		if got := SPDeltaN(bannock, stomach, 0, 0, cfg); got != 0 {
			t.Errorf("SPDeltaN(0) = %v, want 0", got)
		}
	})

	t.Run("does not mutate", func(t *testing.T) {
		SPDeltaN(bannock, stomach, 5, 0, cfg)
		if got := stomach.Count(bannock); got != 1 {
			t.Errorf("stomach count = %d after SPDeltaN, want 1", got)
		}
	})
}

func TestTastinessDelta(t *testing.T) {
	cfg := testConfig(t)
	plain := &food.Food{Name: "Bread", Calories: 400, Carbs: 8, Tastiness: 0}
	favorite := &food.Food{Name: "Cake", Calories: 400, Carbs: 8, Tastiness: 3}
	stomach := portionsOf(food.Portion{Food: plain, Count: 1})

	// Half the stomach at +0.30 pulls the weighted average up by 15pp.
	got := TastinessDelta(stomach, favorite, cfg)
	if math.Abs(got-15) > 1e-9 {
		t.Errorf("TastinessDelta = %v, want 15", got)
	}
}
