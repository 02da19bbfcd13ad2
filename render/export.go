package render

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/forage/planner"
)

// WritePlanCSV writes the per-bite trace to a CSV file, one row per bite.
func WritePlanCSV(res *planner.Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating plan csv: %w", err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&res.Items, f); err != nil {
		return fmt.Errorf("writing plan csv: %w", err)
	}
	return nil
}
