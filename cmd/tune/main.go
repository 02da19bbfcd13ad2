package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gonum.org/v1/gonum/optimize"

	"github.com/pthm-cable/forage/config"
	"github.com/pthm-cable/forage/food"
)

// formatDuration formats a duration as h/m/s for progress lines.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
	}
	return fmt.Sprintf("%dm%02ds", m, s)
}

func parseBudgets(arg string) ([]int, error) {
	parts := strings.Split(arg, ",")
	budgets := make([]int, 0, len(parts))
	for _, part := range parts {
		budget, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || budget <= 0 {
			return nil, fmt.Errorf("invalid budget %q", part)
		}
		budgets = append(budgets, budget)
	}
	return budgets, nil
}

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	foodsPath := flag.String("foods", "food_state.json", "Food state file to evaluate against")
	budgetsArg := flag.String("budgets", "5000,10000,20000,40000", "Comma-separated calorie budgets per evaluation")
	maxEvals := flag.Int("max-evals", 200, "Maximum number of evaluations")
	population := flag.Int("population", 0, "CMA-ES population size (0 = auto)")
	outputDir := flag.String("output", "", "Output directory for results")
	flag.Parse()

	if *outputDir == "" {
		log.Fatal("--output is required")
	}

	// Planning logs every bite at info; keep the tuner's output readable.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}

	baseCfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	budgets, err := parseBudgets(*budgetsArg)
	if err != nil {
		log.Fatalf("failed to parse budgets: %v", err)
	}

	baseState, err := food.LoadState(*foodsPath)
	if err != nil {
		log.Fatalf("failed to load food state: %v", err)
	}

	params := NewParamVector()
	evaluator := NewFitnessEvaluator(params, baseState, budgets, baseCfg)

	// Baseline with default knobs, for comparison.
	baselineFitness := evaluator.Evaluate(params.DefaultVector())
	fmt.Printf("Baseline: SP=%.2f variety=%.1f (start SP %.2f)\n",
		evaluator.LastAvgSp(), evaluator.LastAvgVariety(), baselineSp(baseState, baseCfg))

	dim := params.Dim()
	initX := params.Normalize(params.DefaultVector())

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			raw := params.Denormalize(x)
			return evaluator.Evaluate(raw)
		},
	}

	settings := &optimize.Settings{
		FuncEvaluations: *maxEvals,
		Concurrent:      0, // Sequential evaluation
	}

	popSize := *population
	if popSize == 0 {
		popSize = 4 + int(3.0*float64(dim)/2.0)
	}

	method := &optimize.CmaEsChol{
		InitStepSize: 0.3,
		Population:   popSize,
	}

	// Open eval log
	logPath := filepath.Join(*outputDir, "tune_log.csv")
	logFile, err := os.Create(logPath)
	if err != nil {
		log.Fatalf("failed to create log file: %v", err)
	}
	defer logFile.Close()

	logWriter := csv.NewWriter(logFile)
	defer logWriter.Flush()

	header := []string{"eval", "fitness"}
	for _, spec := range params.Specs {
		header = append(header, spec.Name)
	}
	logWriter.Write(header)

	evalCount := 0
	bestFitness := baselineFitness
	bestParams := params.DefaultVector()
	startTime := time.Now()

	// Wrap the function to log evaluations
	originalFunc := problem.Func
	problem.Func = func(x []float64) float64 {
		fitness := originalFunc(x)
		evalCount++

		raw := params.Denormalize(x)
		clamped := params.Clamp(raw)
		if fitness < bestFitness {
			bestFitness = fitness
			bestParams = make([]float64, len(clamped))
			copy(bestParams, clamped)
		}

		row := []string{strconv.Itoa(evalCount), fmt.Sprintf("%.6f", fitness)}
		for _, v := range clamped {
			row = append(row, fmt.Sprintf("%.6f", v))
		}
		logWriter.Write(row)
		logWriter.Flush()

		elapsed := time.Since(startTime)
		avgPerEval := elapsed / time.Duration(evalCount)
		remaining := time.Duration(*maxEvals-evalCount) * avgPerEval

		fmt.Printf("Eval %d/%d: SP=%.2f variety=%.1f (best SP=%.2f) | elapsed: %s, ETA: %s\n",
			evalCount, *maxEvals, evaluator.LastAvgSp(), evaluator.LastAvgVariety(),
			-bestFitness, formatDuration(elapsed), formatDuration(remaining))

		return fitness
	}

	fmt.Printf("Starting CMA-ES over %d knobs, population=%d, max_evals=%d\n",
		dim, popSize, *maxEvals)
	fmt.Printf("Budgets per evaluation: %v\n", budgets)

	result, err := optimize.Minimize(problem, initX, settings, method)
	if err != nil {
		log.Printf("optimization ended: %v", err)
	}

	// Keep the best evaluation seen, not just the final iterate.
	if result != nil {
		raw := params.Clamp(params.Denormalize(result.X))
		if result.F < bestFitness {
			bestFitness = result.F
			bestParams = raw
		}
	}

	totalTime := time.Since(startTime)
	fmt.Printf("\nSearch complete after %d evaluations in %s\n", evalCount, formatDuration(totalTime))
	fmt.Printf("Best mean SP: %.2f (baseline %.2f)\n", -bestFitness, -baselineFitness)

	fmt.Println("\nBest knobs:")
	for i, spec := range params.Specs {
		fmt.Printf("  %s: %.6f\n", spec.Name, bestParams[i])
	}

	// Save best config
	bestCfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to reload config: %v", err)
	}
	params.ApplyToConfig(bestCfg, bestParams)

	configOutPath := filepath.Join(*outputDir, "best_config.yaml")
	if err := bestCfg.WriteYAML(configOutPath); err != nil {
		log.Printf("failed to write best config: %v", err)
	} else {
		fmt.Printf("\nBest config saved to: %s\n", configOutPath)
	}
}
