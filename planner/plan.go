package planner

import (
	"log/slog"

	"github.com/pthm-cable/forage/config"
	"github.com/pthm-cable/forage/food"
	"github.com/pthm-cable/forage/scoring"
)

// Termination is the reason the planning loop stopped.
type Termination int

const (
	// ExhaustedBudget means the remaining calories reached zero.
	ExhaustedBudget Termination = iota
	// NoFeasibleCandidate means no available food fit the remaining budget.
	NoFeasibleCandidate
	// IterationCapReached means the safety cap on bites was hit. Not an
	// error; the plan built so far is still valid.
	IterationCapReached
)

// String returns the terminal state name.
func (t Termination) String() string {
	switch t {
	case ExhaustedBudget:
		return "exhausted_budget"
	case NoFeasibleCandidate:
		return "no_feasible_candidate"
	case IterationCapReached:
		return "iteration_cap_reached"
	default:
		return "unknown"
	}
}

// Item records one applied bite. Items are append-only and never mutated.
type Item struct {
	Name             string  `json:"name" csv:"name"`
	Calories         int     `json:"calories" csv:"calories"`
	SpGain           float64 `json:"sp_gain" csv:"sp_gain"`
	NewSp            float64 `json:"new_sp" csv:"new_sp"`
	Craving          bool    `json:"craving" csv:"craving"`
	VarietyDeltaPp   float64 `json:"variety_delta_pp" csv:"variety_delta_pp"`
	TastinessDeltaPp float64 `json:"tastiness_delta_pp" csv:"tastiness_delta_pp"`
}

// Result is the aggregate output of one planning run.
type Result struct {
	Items             []Item      `json:"items"`
	StartingSp        float64     `json:"starting_sp"`
	FinalSp           float64     `json:"final_sp"`
	CaloriesConsumed  int         `json:"calories_consumed"`
	RemainingCalories int         `json:"remaining_calories"`
	VarietyCount      int         `json:"variety_count"`
	CravingsSatisfied int         `json:"cravings_satisfied"`
	Termination       Termination `json:"termination"`
}

// PlanMeal plans a sequence of bites against the calorie budget: it asks the
// craving resolver first, then the ranker, applies the winning bite, and
// repeats until the budget is spent, nothing fits, or the iteration cap trips.
//
// Mutation contract: st.Stomach and st.Available are mutated in place as
// bites are applied; callers wanting the originals intact must pass
// st.Clone(). The cravings slice itself is not modified — PlanMeal works on a
// normalized copy. cravingsSatisfied is the count already satisfied before
// this plan (it feeds the SP formula); Result.CravingsSatisfied counts only
// the cravings satisfied by this plan's bites.
func PlanMeal(st *food.State, cravings []string, cravingsSatisfied, remainingCalories int, cfg *config.Config, serverMult, dinnerPartyMult float64) *Result {
	startSatisfied := cravingsSatisfied
	currentSp := scoring.SP(st.Stomach, cravingsSatisfied, cfg, serverMult, dinnerPartyMult)
	varietyCount := scoring.VarietyCount(st.Stomach, cfg)

	active := NormalizeCravings(cravings)

	result := &Result{
		StartingSp:        currentSp,
		RemainingCalories: remainingCalories,
	}
	termination := IterationCapReached

	for i := 0; i < cfg.Safety.MaxIterations; i++ {
		if remainingCalories <= 0 {
			termination = ExhaustedBudget
			break
		}

		// Craving-first if feasible, else ranked best.
		f := pickFeasibleCraving(st, active, remainingCalories, cravingsSatisfied, cfg)
		if f == nil {
			f, _ = chooseNextBite(st, remainingCalories, cravingsSatisfied, cfg)
			if f == nil {
				slog.Info("no suitable food fits the budget", "remaining_calories", remainingCalories)
				termination = NoFeasibleCandidate
				break
			}
		}

		beforeSp := currentSp
		tastinessDelta := scoring.TastinessDelta(st.Stomach, f, cfg)

		st.Consume(f)
		remainingCalories -= f.Calories

		// A bite satisfies a craving whenever it matches one remaining
		// occurrence, no matter which selector picked it.
		satisfied := false
		for idx, name := range active {
			if food.KeyOf(name) == f.Key() {
				active = append(active[:idx], active[idx+1:]...)
				cravingsSatisfied++
				satisfied = true
				break
			}
		}

		currentSp = scoring.SP(st.Stomach, cravingsSatisfied, cfg, serverMult, dinnerPartyMult)

		newVarietyCount := scoring.VarietyCount(st.Stomach, cfg)
		varietyDelta := scoring.VarietyBonus(float64(newVarietyCount), cfg) -
			scoring.VarietyBonus(float64(varietyCount), cfg)
		varietyCount = newVarietyCount

		slog.Info("consume", "food", f.Name, "calories", f.Calories,
			"sp_gain", currentSp-beforeSp, "craving", satisfied)

		result.Items = append(result.Items, Item{
			Name:             f.Name,
			Calories:         f.Calories,
			SpGain:           currentSp - beforeSp,
			NewSp:            currentSp,
			Craving:          satisfied,
			VarietyDeltaPp:   varietyDelta,
			TastinessDeltaPp: tastinessDelta,
		})
		result.CaloriesConsumed += f.Calories
	}

	if termination == IterationCapReached {
		slog.Warn("planning stopped at iteration cap", "max_iterations", cfg.Safety.MaxIterations)
	}

	result.FinalSp = currentSp
	result.RemainingCalories = remainingCalories
	result.VarietyCount = varietyCount
	result.CravingsSatisfied = cravingsSatisfied - startSatisfied
	result.Termination = termination
	return result
}
