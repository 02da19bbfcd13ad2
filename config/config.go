// Package config provides configuration loading and access for the planner.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all planner configuration parameters.
type Config struct {
	Algorithm AlgorithmConfig `yaml:"algorithm"`
	GameRules GameRulesConfig `yaml:"game_rules"`
	Safety    SafetyConfig    `yaml:"safety"`
	Display   DisplayConfig   `yaml:"display"`
}

// AlgorithmConfig holds ranking and bias parameters. Most values are
// tuner-derived (see cmd/tune); treat them as defaults, not invariants.
type AlgorithmConfig struct {
	SoftVarietyBiasStrength  float64 `yaml:"soft_variety_bias_strength"`         // Strength of the soft-variety ranking bias
	TiebreakScoreWindowSp    float64 `yaml:"tiebreak_score_window_sp"`           // Near-equal window (SP) for the tie-break pool
	ProximityApproachWeight  float64 `yaml:"proximity_approach_weight"`          // Weight for progress toward the variety threshold
	ProximityOvershootPen    float64 `yaml:"proximity_overshoot_penalty"`        // Malus for overshooting past the threshold
	LowCalorieThreshold      int     `yaml:"low_calorie_threshold"`              // Calories below this get penalized in ranking
	LowCaloriePenStrength    float64 `yaml:"low_calorie_penalty_strength"`       // Quadratic penalty strength below the threshold
	VarietyBonusCapPp        float64 `yaml:"variety_bonus_cap_pp"`               // Asymptotic cap for the variety bonus, in pp
	TastinessWeight          float64 `yaml:"tastiness_weight"`                   // Scale on the tastiness bonus
	BalancedDietImprStrength float64 `yaml:"balanced_diet_improvement_strength"` // Reserved: balance-improvement bias
	RepetitionPenStrength    float64 `yaml:"repetition_penalty_strength"`        // Reserved: same-food repetition penalty
}

// GameRulesConfig holds game mechanics constants.
type GameRulesConfig struct {
	VarietyCalThreshold  int     `yaml:"variety_cal_threshold"`  // Stomach calories per food for variety eligibility
	CravingSatisfiedFrac float64 `yaml:"craving_satisfied_frac"` // SP bonus fraction per satisfied craving
}

// SafetyConfig holds safety limits.
type SafetyConfig struct {
	MaxIterations   int `yaml:"max_iterations"`    // Bite cap per planning loop
	BaseSkillPoints int `yaml:"base_skill_points"` // Flat SP added before the server multiplier
}

// DisplayConfig holds rendering thresholds.
type DisplayConfig struct {
	VarietyDeltaThreshold   float64 `yaml:"variety_delta_threshold"`   // Min abs pp delta to show a variety tag
	TastinessDeltaThreshold float64 `yaml:"tastiness_delta_threshold"` // Min abs pp delta to show a tastiness tag
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if
// path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used. The result is validated
// here; scoring and planning trust their inputs, so rejection happens at load.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("invalid config: %s", strings.Join(errs, "; "))
	}

	return cfg, nil
}

// Validate checks value ranges and returns one message per violation.
func (c *Config) Validate() []string {
	var errs []string

	if c.Algorithm.SoftVarietyBiasStrength < 0 {
		errs = append(errs, "algorithm.soft_variety_bias_strength must be >= 0")
	}
	if c.Algorithm.TiebreakScoreWindowSp < 0 {
		errs = append(errs, "algorithm.tiebreak_score_window_sp must be >= 0")
	}
	if c.Algorithm.ProximityApproachWeight < 0 {
		errs = append(errs, "algorithm.proximity_approach_weight must be >= 0")
	}
	if c.Algorithm.ProximityOvershootPen < 0 {
		errs = append(errs, "algorithm.proximity_overshoot_penalty must be >= 0")
	}
	if c.Algorithm.LowCalorieThreshold < 0 {
		errs = append(errs, "algorithm.low_calorie_threshold must be >= 0")
	}
	if c.Algorithm.LowCaloriePenStrength < 0 {
		errs = append(errs, "algorithm.low_calorie_penalty_strength must be >= 0")
	}
	if c.Algorithm.VarietyBonusCapPp <= 0 {
		errs = append(errs, "algorithm.variety_bonus_cap_pp must be > 0")
	}
	if c.Algorithm.TastinessWeight < 0 {
		errs = append(errs, "algorithm.tastiness_weight must be >= 0")
	}
	if c.Algorithm.BalancedDietImprStrength < 0 {
		errs = append(errs, "algorithm.balanced_diet_improvement_strength must be >= 0")
	}
	if c.Algorithm.RepetitionPenStrength < 0 {
		errs = append(errs, "algorithm.repetition_penalty_strength must be >= 0")
	}
	if c.GameRules.VarietyCalThreshold <= 0 {
		errs = append(errs, "game_rules.variety_cal_threshold must be > 0")
	}
	if c.GameRules.CravingSatisfiedFrac < 0 || c.GameRules.CravingSatisfiedFrac > 1 {
		errs = append(errs, "game_rules.craving_satisfied_frac must be in [0, 1]")
	}
	if c.Safety.MaxIterations < 1 {
		errs = append(errs, "safety.max_iterations must be >= 1")
	}
	if c.Safety.BaseSkillPoints < 0 {
		errs = append(errs, "safety.base_skill_points must be >= 0")
	}
	if c.Display.VarietyDeltaThreshold < 0 {
		errs = append(errs, "display.variety_delta_threshold must be >= 0")
	}
	if c.Display.TastinessDeltaThreshold < 0 {
		errs = append(errs, "display.tastiness_delta_threshold must be >= 0")
	}

	return errs
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
