package planner

import (
	"sort"

	"github.com/agnivade/levenshtein"

	"github.com/pthm-cable/forage/config"
	"github.com/pthm-cable/forage/food"
	"github.com/pthm-cable/forage/scoring"
)

// NormalizeCravings trims and lowercases craving names. Normalization is
// idempotent: applying it twice yields the same slice. The input is not
// modified.
func NormalizeCravings(cravings []string) []string {
	normalized := make([]string, len(cravings))
	for i, name := range cravings {
		normalized[i] = string(food.KeyOf(name))
	}
	return normalized
}

// suggestionLimit is the edit distance considered "close enough" for a
// did-you-mean hint, scaled by name length.
func suggestionLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

// ValidateCravings splits normalized craving names into those matching a
// catalog food and those that don't, with up to three nearest known names
// suggested per invalid entry.
func ValidateCravings(st *food.State, cravings []string) (valid, invalid []string, suggestions map[string][]string) {
	suggestions = make(map[string][]string)

	known := make([]string, 0, len(st.Foods))
	for key := range st.Foods {
		known = append(known, string(key))
	}
	sort.Strings(known)

	for _, name := range cravings {
		if st.Lookup(name) != nil {
			valid = append(valid, name)
			continue
		}
		invalid = append(invalid, name)

		type match struct {
			name string
			dist int
		}
		var matches []match
		for _, candidate := range known {
			dist := levenshtein.ComputeDistance(name, candidate)
			if dist <= suggestionLimit(len(candidate)) {
				matches = append(matches, match{name: candidate, dist: dist})
			}
		}
		sort.SliceStable(matches, func(i, j int) bool { return matches[i].dist < matches[j].dist })
		if len(matches) > 3 {
			matches = matches[:3]
		}
		for _, m := range matches {
			suggestions[name] = append(suggestions[name], m.name)
		}
	}
	return valid, invalid, suggestions
}

// pickFeasibleCraving returns the available craving food with the highest raw
// SP delta that fits the remaining budget, or nil. Craving selection never
// uses the ranking biases; a craving bite is taken for its craving bonus, not
// its rank.
func pickFeasibleCraving(st *food.State, cravings []string, remainingCalories, cravingsSatisfied int, cfg *config.Config) *food.Food {
	craved := make(map[food.Key]bool, len(cravings))
	for _, name := range cravings {
		craved[food.KeyOf(name)] = true
	}

	var best *food.Food
	bestDelta := 0.0
	for _, f := range st.AllAvailable() {
		if f.Calories <= 0 || f.Calories > remainingCalories {
			continue
		}
		if !craved[f.Key()] {
			continue
		}
		delta := scoring.SPDelta(f, st.Stomach, cravingsSatisfied, cfg)
		if best == nil || delta > bestDelta {
			best = f
			bestDelta = delta
		}
	}
	return best
}
