package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pthm-cable/forage/config"
	"github.com/pthm-cable/forage/food"
	"github.com/pthm-cable/forage/planner"
	"github.com/pthm-cable/forage/render"
	"github.com/pthm-cable/forage/scoring"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	foodsPath := flag.String("foods", "food_state.json", "Path to the food state file")
	cravingsArg := flag.String("cravings", "", "Comma-separated active craving names")
	satisfied := flag.Int("satisfied", 0, "Cravings already satisfied today")
	calories := flag.Int("calories", 0, "Remaining calorie budget for this plan")
	serverMult := flag.Float64("server-mult", 1.0, "Server skill gain multiplier")
	dinnerParty := flag.Float64("dinner-party", 1.0, "Dinner party multiplier")
	predict := flag.String("predict", "", "Print the SP delta for eating this food, then exit")
	quantity := flag.Int("quantity", 1, "Number of bites for -predict")
	importCSV := flag.String("import-csv", "", "Merge foods from this CSV catalog into the food state file, then exit")
	resetStomach := flag.Bool("reset-stomach", false, "Clear all stomach counts in the food state file, then exit")
	resetAvail := flag.Bool("reset-availability", false, "Clear all availability counts in the food state file, then exit")
	csvPath := flag.String("csv", "", "Also export the per-bite trace to this CSV file")
	noSave := flag.Bool("no-save", false, "Do not write updated state back to the food state file")

	flag.Parse()

	// Set up slog (JSON to stderr so the plan table owns stdout)
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	if *importCSV != "" {
		catalog, err := food.LoadCatalogCSV(*importCSV)
		if err != nil {
			slog.Error("failed to import catalog", "path", *importCSV, "error", err)
			os.Exit(1)
		}
		records, err := food.LoadRecords(*foodsPath)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			slog.Error("failed to load food state", "path", *foodsPath, "error", err)
			os.Exit(1)
		}
		records = food.MergeCatalog(records, catalog)
		if err := food.SaveRecords(records, *foodsPath); err != nil {
			slog.Error("failed to save food state", "path", *foodsPath, "error", err)
			os.Exit(1)
		}
		slog.Info("imported catalog", "foods", len(catalog), "path", *foodsPath)
		return
	}

	st, err := food.LoadState(*foodsPath)
	if err != nil {
		slog.Error("failed to load food state", "path", *foodsPath, "error", err)
		os.Exit(1)
	}

	if *resetStomach || *resetAvail {
		if *resetStomach {
			st.ResetStomach()
		}
		if *resetAvail {
			st.ResetAvailability()
		}
		if err := food.SaveState(st, *foodsPath); err != nil {
			slog.Error("failed to save food state", "path", *foodsPath, "error", err)
			os.Exit(1)
		}
		slog.Info("reset food state", "path", *foodsPath,
			"stomach", *resetStomach, "availability", *resetAvail)
		return
	}

	if *predict != "" {
		f := st.Lookup(*predict)
		if f == nil {
			slog.Error("unknown food", "name", *predict)
			os.Exit(1)
		}
		if *quantity < 1 {
			slog.Error("-quantity must be at least 1")
			os.Exit(1)
		}
		delta := scoring.SPDeltaN(f, st.Stomach, *quantity, *satisfied, cfg)
		fmt.Printf("%s: %s SP for %d bite(s) (%d cal)\n",
			f.Name, render.FormatSigned(delta), *quantity, f.Calories**quantity)
		return
	}

	if *calories <= 0 {
		slog.Error("a positive -calories budget is required")
		os.Exit(1)
	}

	var cravings []string
	if *cravingsArg != "" {
		cravings = strings.Split(*cravingsArg, ",")
	}
	cravings = planner.NormalizeCravings(cravings)

	valid, invalid, suggestions := planner.ValidateCravings(st, cravings)
	for _, name := range invalid {
		if hints := suggestions[name]; len(hints) > 0 {
			slog.Warn("ignoring unknown craving", "craving", name, "did_you_mean", hints)
		} else {
			slog.Warn("ignoring unknown craving", "craving", name)
		}
	}

	result := planner.PlanMeal(st, valid, *satisfied, *calories, cfg, *serverMult, *dinnerParty)
	fmt.Print(render.FormatPlan(result, cfg))

	if *csvPath != "" {
		if err := render.WritePlanCSV(result, *csvPath); err != nil {
			slog.Error("failed to export plan csv", "path", *csvPath, "error", err)
			os.Exit(1)
		}
	}

	if !*noSave {
		if err := food.SaveState(st, *foodsPath); err != nil {
			slog.Error("failed to save food state", "path", *foodsPath, "error", err)
			os.Exit(1)
		}
		slog.Info("saved updated food state", "path", *foodsPath)
	}
}
