// Package food defines the food data model and the stomach/availability
// state it is tracked in.
package food

import (
	"fmt"
	"strings"
)

// TastinessUnknown is the sentinel rating for foods the player has not rated.
const TastinessUnknown = 99

// tastinessMultipliers maps a rating to the bonus fraction it contributes
// before calorie weighting. Unknown ratings are neutral.
var tastinessMultipliers = map[int]float64{
	-3: -0.30,
	-2: -0.20,
	-1: -0.10,
	0:  0.00,
	1:  0.10,
	2:  0.20,
	3:  0.30,
	TastinessUnknown: 0.00,
}

// tastinessNames holds human labels for logs and rendering; not used in
// calculations.
var tastinessNames = map[int]string{
	-3: "worst",
	-2: "horrible",
	-1: "bad",
	0:  "ok",
	1:  "good",
	2:  "delicious",
	3:  "favorite",
	TastinessUnknown: "unknown",
}

// TastinessMultiplier returns the bonus fraction for a rating, 0 for any
// rating outside the scale.
func TastinessMultiplier(rating int) float64 {
	return tastinessMultipliers[rating]
}

// TastinessName returns the display label for a rating.
func TastinessName(rating int) string {
	if name, ok := tastinessNames[rating]; ok {
		return name
	}
	return "invalid"
}

// ValidTastiness reports whether a rating is on the canonical scale.
func ValidTastiness(rating int) bool {
	_, ok := tastinessMultipliers[rating]
	return ok
}

// Key is the canonical identity of a food: its name trimmed and lowercased.
// All stomach, availability, and craving lookups go through Key so identity
// never depends on display casing.
type Key string

// KeyOf canonicalizes a name. It is idempotent: KeyOf(string(KeyOf(s)))
// equals KeyOf(s).
func KeyOf(name string) Key {
	return Key(strings.ToLower(strings.TrimSpace(name)))
}

// Food describes one food type. Instances are created once per distinct name
// and never mutated; identity is the case-insensitive name only.
type Food struct {
	Name      string `json:"Name" csv:"name"`
	Calories  int    `json:"Calories" csv:"calories"`
	Carbs     int    `json:"Carbs" csv:"carbs"`
	Protein   int    `json:"Protein" csv:"protein"`
	Fat       int    `json:"Fat" csv:"fat"`
	Vitamins  int    `json:"Vitamins" csv:"vitamins"`
	Tastiness int    `json:"Tastiness" csv:"tastiness"`
}

// Key returns the canonical identity key for this food.
func (f *Food) Key() Key {
	return KeyOf(f.Name)
}

// SumNutrients returns the total of all four nutrient values.
func (f *Food) SumNutrients() int {
	return f.Carbs + f.Protein + f.Fat + f.Vitamins
}

// Valid reports whether the record has sane field values.
func (f *Food) Valid() bool {
	return f.Calories >= 0 &&
		f.Carbs >= 0 &&
		f.Protein >= 0 &&
		f.Fat >= 0 &&
		f.Vitamins >= 0 &&
		ValidTastiness(f.Tastiness)
}

// String returns a short user-facing label.
func (f *Food) String() string {
	return fmt.Sprintf("%s; %d Nutrients, %d Cal", f.Name, f.SumNutrients(), f.Calories)
}

// DebugString returns a detailed nutritional line for logs.
func (f *Food) DebugString() string {
	return fmt.Sprintf("%s | Cal: %d, C:%d P:%d F:%d V:%d T:%d",
		f.Name, f.Calories, f.Carbs, f.Protein, f.Fat, f.Vitamins, f.Tastiness)
}
