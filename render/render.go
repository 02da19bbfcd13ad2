// Package render formats planning results for a terminal and exports the
// per-bite trace.
package render

import (
	"fmt"
	"strings"

	"github.com/pthm-cable/forage/config"
	"github.com/pthm-cable/forage/planner"
)

// FormatSigned formats a value with an explicit sign and two decimals,
// e.g. "+1.23" or "-0.45".
func FormatSigned(v float64) string {
	if v >= 0 {
		return fmt.Sprintf("+%.2f", v)
	}
	return fmt.Sprintf("%.2f", v)
}

// FormatPlan renders a result as an aligned text table with per-bite tags,
// followed by a summary block. Delta tags below the display thresholds are
// hidden to keep noise out of the table.
func FormatPlan(res *planner.Result, cfg *config.Config) string {
	var sb strings.Builder

	if len(res.Items) == 0 {
		sb.WriteString("No meal plan generated.\n")
		writeSummary(&sb, res)
		return sb.String()
	}

	type row struct {
		prefix string
		tags   string
	}

	// Column widths over all rows first, so the table lines up.
	indexWidth := len(fmt.Sprintf("%d", len(res.Items)))
	nameWidth, calWidth, gainWidth, spWidth := 0, 0, 0, 0
	for _, item := range res.Items {
		nameWidth = max(nameWidth, len(item.Name))
		calWidth = max(calWidth, len(fmt.Sprintf("%d", item.Calories)))
		gainWidth = max(gainWidth, len(FormatSigned(item.SpGain)))
		spWidth = max(spWidth, len(fmt.Sprintf("%.2f", item.NewSp)))
	}

	rows := make([]row, 0, len(res.Items))
	prefixWidth := 0
	for i, item := range res.Items {
		var tags []string
		if item.Craving {
			tags = append(tags, fmt.Sprintf("[Craving Satisfied +%d%%]",
				int(cfg.GameRules.CravingSatisfiedFrac*100)))
		}
		if abs(item.VarietyDeltaPp) >= cfg.Display.VarietyDeltaThreshold {
			tags = append(tags, fmt.Sprintf("Variety %s pp", FormatSigned(item.VarietyDeltaPp)))
		}
		if abs(item.TastinessDeltaPp) >= cfg.Display.TastinessDeltaThreshold {
			tags = append(tags, fmt.Sprintf("Tastiness %s pp", FormatSigned(item.TastinessDeltaPp)))
		}

		prefix := fmt.Sprintf(" %*d. %-*s - %*d cal | SP %*s => %*.2f",
			indexWidth, i+1,
			nameWidth, item.Name,
			calWidth, item.Calories,
			gainWidth, FormatSigned(item.SpGain),
			spWidth, item.NewSp)
		prefixWidth = max(prefixWidth, len(prefix))
		rows = append(rows, row{prefix: prefix, tags: strings.Join(tags, ", ")})
	}

	sb.WriteString("========== MEAL PLAN ==========\n")
	for _, r := range rows {
		if r.tags == "" {
			sb.WriteString(r.prefix)
		} else {
			sb.WriteString(r.prefix)
			sb.WriteString(strings.Repeat(" ", prefixWidth-len(r.prefix)))
			sb.WriteString("  ")
			sb.WriteString(r.tags)
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("===============================\n")
	writeSummary(&sb, res)
	return sb.String()
}

func writeSummary(sb *strings.Builder, res *planner.Result) {
	fmt.Fprintf(sb, "SP %.2f -> %.2f (%s)\n", res.StartingSp, res.FinalSp,
		FormatSigned(res.FinalSp-res.StartingSp))
	fmt.Fprintf(sb, "Calories: %d consumed, %d remaining\n",
		res.CaloriesConsumed, res.RemainingCalories)
	fmt.Fprintf(sb, "Variety foods: %d | Cravings satisfied: %d | Stopped: %s\n",
		res.VarietyCount, res.CravingsSatisfied, res.Termination)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
