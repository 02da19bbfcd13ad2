package main

import (
	"github.com/pthm-cable/forage/config"
	"github.com/pthm-cable/forage/food"
	"github.com/pthm-cable/forage/planner"
	"github.com/pthm-cable/forage/scoring"
)

// FitnessEvaluator scores a knob vector by planning against each calorie
// budget on a fresh copy of the loaded food state and averaging the final SP.
// Planning is deterministic, so one run per budget is enough.
type FitnessEvaluator struct {
	params  *ParamVector
	base    *food.State
	budgets []int
	cfg     config.Config

	lastAvgSp      float64
	lastAvgVariety float64
}

// NewFitnessEvaluator creates an evaluator over the given state and budgets.
func NewFitnessEvaluator(params *ParamVector, base *food.State, budgets []int, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:  params,
		base:    base,
		budgets: budgets,
		cfg:     *baseCfg,
	}
}

// Evaluate returns the fitness for a raw knob vector: the negated mean final
// SP across budgets (lower is better, matching optimize.Minimize).
func (e *FitnessEvaluator) Evaluate(raw []float64) float64 {
	cfg := e.cfg
	e.params.ApplyToConfig(&cfg, raw)

	totalSp := 0.0
	totalVariety := 0
	for _, budget := range e.budgets {
		st := e.base.Clone()
		result := planner.PlanMeal(st, nil, 0, budget, &cfg, 1.0, 1.0)
		totalSp += result.FinalSp
		totalVariety += result.VarietyCount
	}

	n := float64(len(e.budgets))
	e.lastAvgSp = totalSp / n
	e.lastAvgVariety = float64(totalVariety) / n
	return -e.lastAvgSp
}

// LastAvgSp returns the mean final SP from the most recent evaluation.
func (e *FitnessEvaluator) LastAvgSp() float64 {
	return e.lastAvgSp
}

// LastAvgVariety returns the mean variety count from the most recent
// evaluation.
func (e *FitnessEvaluator) LastAvgVariety() float64 {
	return e.lastAvgVariety
}

// baselineSp is the SP of the untouched stomach, for context in reports.
func baselineSp(st *food.State, cfg *config.Config) float64 {
	return scoring.SP(st.Stomach, 0, cfg, 1.0, 1.0)
}
