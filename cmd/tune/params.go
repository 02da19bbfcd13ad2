// Package main provides CMA-ES search over the planner's algorithm knobs.
package main

import (
	"github.com/pthm-cable/forage/config"
)

// ParamSpec defines a single optimizable parameter.
type ParamSpec struct {
	Name    string  // Knob name as it appears in config YAML
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the set of all optimizable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of tunable knobs. The reserved
// bias knobs are excluded: nothing in the ranking consumes them yet, so the
// search cannot observe them.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "soft_variety_bias_strength", Min: 0, Max: 10, Default: 3.61},
			{Name: "tiebreak_score_window_sp", Min: 0, Max: 2, Default: 0.449},
			{Name: "proximity_approach_weight", Min: 0, Max: 3, Default: 0.977},
			{Name: "proximity_overshoot_penalty", Min: 0, Max: 1, Default: 0.076},
			{Name: "low_calorie_threshold", Min: 0, Max: 800, Default: 395},
			{Name: "low_calorie_penalty_strength", Min: 0, Max: 10, Default: 2.48},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		val := v[i]
		if val < spec.Min {
			val = spec.Min
		}
		if val > spec.Max {
			val = spec.Max
		}
		clamped[i] = val
	}
	return clamped
}

// ApplyToConfig applies parameter values to a Config struct.
// Order must match Specs order.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	clamped := pv.Clamp(values)

	cfg.Algorithm.SoftVarietyBiasStrength = clamped[0]
	cfg.Algorithm.TiebreakScoreWindowSp = clamped[1]
	cfg.Algorithm.ProximityApproachWeight = clamped[2]
	cfg.Algorithm.ProximityOvershootPen = clamped[3]
	cfg.Algorithm.LowCalorieThreshold = int(clamped[4])
	cfg.Algorithm.LowCaloriePenStrength = clamped[5]
}
