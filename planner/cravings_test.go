package planner

import (
	"reflect"
	"testing"

	"github.com/pthm-cable/forage/food"
)

func TestNormalizeCravings(t *testing.T) {
	in := []string{"  Bannock ", "GRUEL", "wild berry"}
	want := []string{"bannock", "gruel", "wild berry"}

	got := NormalizeCravings(in)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeCravings = %v, want %v", got, want)
	}
	if in[0] != "  Bannock " {
		t.Errorf("input slice modified: %v", in)
	}

	// Idempotent.
	if again := NormalizeCravings(got); !reflect.DeepEqual(again, got) {
		t.Errorf("second normalization changed result: %v", again)
	}
}

func TestValidateCravings(t *testing.T) {
	bannock := &food.Food{Name: "Bannock", Calories: 650, Carbs: 6, Protein: 5, Fat: 7, Vitamins: 4, Tastiness: 0}
	gruel := &food.Food{Name: "Gruel", Calories: 300, Carbs: 3, Protein: 1, Fat: 1, Vitamins: 0, Tastiness: 0}
	st := newTestState(t, map[*food.Food]int{bannock: 1, gruel: 1})

	valid, invalid, suggestions := ValidateCravings(st, NormalizeCravings([]string{
		"Bannock", "banock", "dragonfruit",
	}))

	if !reflect.DeepEqual(valid, []string{"bannock"}) {
		t.Errorf("valid = %v, want [bannock]", valid)
	}
	if !reflect.DeepEqual(invalid, []string{"banock", "dragonfruit"}) {
		t.Errorf("invalid = %v, want [banock dragonfruit]", invalid)
	}

	// One edit away from a known name gets a did-you-mean.
	if got := suggestions["banock"]; len(got) == 0 || got[0] != "bannock" {
		t.Errorf("suggestions[banock] = %v, want bannock first", got)
	}
	// Nothing in the catalog is close to this one.
	if got := suggestions["dragonfruit"]; len(got) != 0 {
		t.Errorf("suggestions[dragonfruit] = %v, want none", got)
	}
}

func TestSuggestionLimitScalesWithLength(t *testing.T) {
	tests := []struct {
		length int
		want   int
	}{
		{1, 1}, {4, 1}, {5, 2}, {8, 2}, {9, 3}, {20, 3},
	}
	for _, tt := range tests {
		if got := suggestionLimit(tt.length); got != tt.want {
			t.Errorf("suggestionLimit(%d) = %d, want %d", tt.length, got, tt.want)
		}
	}
}

func TestPickFeasibleCraving(t *testing.T) {
	cfg := testConfig(t)
	roast := &food.Food{Name: "Roast", Calories: 600, Carbs: 6, Protein: 8, Fat: 7, Vitamins: 5, Tastiness: 2}
	gruel := &food.Food{Name: "Gruel", Calories: 300, Carbs: 3, Protein: 1, Fat: 1, Vitamins: 0, Tastiness: -2}
	feast := &food.Food{Name: "Feast", Calories: 2000, Carbs: 9, Protein: 9, Fat: 9, Vitamins: 9, Tastiness: 3}
	st := newTestState(t, map[*food.Food]int{roast: 2, gruel: 2, feast: 2})

	t.Run("highest delta among craved", func(t *testing.T) {
		got := pickFeasibleCraving(st, []string{"roast", "gruel"}, 1000, 0, cfg)
		if got == nil || got.Name != "Roast" {
			t.Errorf("picked %v, want Roast", got)
		}
	})

	t.Run("budget filters cravings", func(t *testing.T) {
		got := pickFeasibleCraving(st, []string{"feast", "gruel"}, 1000, 0, cfg)
		if got == nil || got.Name != "Gruel" {
			t.Errorf("picked %v, want Gruel (Feast over budget)", got)
		}
	})

	t.Run("no craved food feasible", func(t *testing.T) {
		if got := pickFeasibleCraving(st, []string{"feast"}, 1000, 0, cfg); got != nil {
			t.Errorf("picked %v, want nil", got)
		}
	})

	t.Run("no cravings", func(t *testing.T) {
		if got := pickFeasibleCraving(st, nil, 1000, 0, cfg); got != nil {
			t.Errorf("picked %v, want nil", got)
		}
	})

	t.Run("unavailable craving ignored", func(t *testing.T) {
		empty := newTestState(t, map[*food.Food]int{})
		if got := pickFeasibleCraving(empty, []string{"roast"}, 1000, 0, cfg); got != nil {
			t.Errorf("picked %v, want nil", got)
		}
	})
}
