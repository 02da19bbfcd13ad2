// Package planner selects bites and runs the meal planning loop: a greedy,
// one-bite-at-a-time walk over the calorie budget, re-ranking candidates
// after every bite.
package planner

import (
	"math"
	"sort"

	"github.com/pthm-cable/forage/config"
	"github.com/pthm-cable/forage/food"
	"github.com/pthm-cable/forage/scoring"
)

// candidate carries a feasible food through the ranking passes.
type candidate struct {
	food      *food.Food
	rawDelta  float64
	rankScore float64
}

// lowCaloriePenalty returns a non-positive quadratic penalty for foods below
// the calorie threshold; the further below, the harsher.
func lowCaloriePenalty(f *food.Food, cfg *config.Config) float64 {
	threshold := cfg.Algorithm.LowCalorieThreshold
	if threshold <= 0 || f.Calories >= threshold {
		return 0
	}
	deficit := 1 - float64(f.Calories)/float64(threshold)
	return -cfg.Algorithm.LowCaloriePenStrength * deficit * deficit
}

// softVarietyBias rewards bites that move the fractional variety count, even
// below the qualification threshold where the hard count (and therefore the
// raw SP delta) cannot see any progress. The pp change is scaled by the
// post-bite density sum so the bias stays proportional to what the stomach
// is actually worth.
func softVarietyBias(stomach food.Portions, f *food.Food, cfg *config.Config) float64 {
	before := scoring.SoftVarietyCount(stomach, cfg)
	after := scoring.SoftVarietyCount(scoring.Simulate(stomach, f), cfg)
	deltaPp := scoring.VarietyBonus(after, cfg) - scoring.VarietyBonus(before, cfg)

	n, _ := scoring.WeightedNutrients(scoring.Simulate(stomach, f))
	return cfg.Algorithm.SoftVarietyBiasStrength * n.Sum() * (deltaPp / 100)
}

// proximityBias is the pure tie-breaker: positive for genuine progress toward
// this food's variety threshold, slightly negative for overshooting past it.
func proximityBias(stomach food.Portions, f *food.Food, cfg *config.Config) float64 {
	threshold := float64(cfg.GameRules.VarietyCalThreshold)
	countBefore := stomach.Count(f)

	progressBefore := float64(f.Calories*countBefore) / threshold
	progressAfter := float64(f.Calories*(countBefore+1)) / threshold

	growth := math.Max(0, math.Min(1, progressAfter)-math.Min(1, progressBefore))
	overshoot := math.Max(0, progressAfter-1)

	overshootRatio := 0.0
	if cfg.Algorithm.ProximityApproachWeight > 0 {
		overshootRatio = cfg.Algorithm.ProximityOvershootPen / cfg.Algorithm.ProximityApproachWeight
	}
	return cfg.Algorithm.ProximityApproachWeight * (growth - overshoot*overshootRatio)
}

// chooseNextBite selects the best next bite purely by ranking, or (nil, 0)
// when nothing feasible remains.
//
// Pass 1 scores every feasible candidate by raw SP delta plus the low-calorie
// penalty. Pass 2 keeps only candidates within the tie-break window of the
// best score. Pass 3 adds the soft-variety bias to form the primary rank and
// breaks remaining ties by proximity bias. The ordering is deliberate:
// primary rank dominates, proximity never acts as an independent score.
func chooseNextBite(st *food.State, remainingCalories, cravingsSatisfied int, cfg *config.Config) (*food.Food, float64) {
	var candidates []candidate
	bestScore := math.Inf(-1)
	var bestFood *food.Food
	bestRawDelta := 0.0

	for _, f := range st.AllAvailable() {
		// Zero-calorie items (seeds) carry no nutrition; skip them outright
		// along with anything that busts the remaining budget.
		if f.Calories <= 0 || f.Calories > remainingCalories {
			continue
		}

		rawDelta := scoring.SPDelta(f, st.Stomach, cravingsSatisfied, cfg)
		rankScore := rawDelta + lowCaloriePenalty(f, cfg)
		candidates = append(candidates, candidate{food: f, rawDelta: rawDelta, rankScore: rankScore})

		if rankScore > bestScore {
			bestScore = rankScore
			bestFood = f
			bestRawDelta = rawDelta
		}
	}

	if len(candidates) == 0 {
		return nil, 0
	}

	// Keep near-equals within the tie-break window of the best score.
	near := candidates[:0]
	for _, c := range candidates {
		if bestScore-c.rankScore <= cfg.Algorithm.TiebreakScoreWindowSp {
			near = append(near, c)
		}
	}
	if len(near) == 0 {
		// Cannot happen (the pass-1 winner is always within its own window),
		// but fall back to it rather than returning nothing.
		return bestFood, bestRawDelta
	}

	type scored struct {
		candidate
		primaryRank float64
		proximity   float64
	}
	rescored := make([]scored, 0, len(near))
	for _, c := range near {
		rescored = append(rescored, scored{
			candidate:   c,
			primaryRank: c.rankScore + softVarietyBias(st.Stomach, c.food, cfg),
			proximity:   proximityBias(st.Stomach, c.food, cfg),
		})
	}

	sort.SliceStable(rescored, func(i, j int) bool {
		if rescored[i].primaryRank != rescored[j].primaryRank {
			return rescored[i].primaryRank < rescored[j].primaryRank
		}
		return rescored[i].proximity < rescored[j].proximity
	})

	winner := rescored[len(rescored)-1]
	return winner.food, winner.rawDelta
}
