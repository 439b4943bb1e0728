// ABOUTME: Shared formatting helpers for CLI output.
// ABOUTME: Truncation, padding, and nutrient summary lines.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/nosh/internal/models"
	"github.com/harperreed/nosh/internal/tracker"
)

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// nutrientLine renders a compact one-line macro summary.
func nutrientLine(p models.NutrientProfile) string {
	line := fmt.Sprintf("%.0f kcal  p %.1fg  f %.1fg  c %.1fg  fat %.1fg",
		p.Calories, p.Protein, p.Fiber, p.Carbs, p.Fat)
	if p.Sugar > 0 {
		line += fmt.Sprintf("  sugar %.1fg", p.Sugar)
	}
	return line
}

// resolveDate validates a --date flag value, defaulting to today.
func resolveDate(flag string) (string, error) {
	if flag == "" {
		return tracker.Today(), nil
	}
	if _, err := time.Parse(models.DayFormat, flag); err != nil {
		return "", fmt.Errorf("invalid date %q (want YYYY-MM-DD)", flag)
	}
	return flag, nil
}
