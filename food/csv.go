package food

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
)

// LoadCatalogCSV imports a food catalog from a CSV file with a header row of
// name,calories,carbs,protein,fat,vitamins,tastiness. Counts are not part of
// the catalog format; imported foods start unconsumed and unavailable.
func LoadCatalogCSV(path string) ([]*Food, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer f.Close()

	var foods []*Food
	if err := gocsv.UnmarshalFile(f, &foods); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	for _, food := range foods {
		if !food.Valid() {
			return nil, fmt.Errorf("invalid catalog row: %s", food.DebugString())
		}
	}
	return foods, nil
}
