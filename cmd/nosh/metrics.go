// ABOUTME: CLI commands for the chart metric selection.
// ABOUTME: Toggling keeps the selection between 1 and 4 metrics.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/nosh/internal/models"
	"github.com/harperreed/nosh/internal/tracker"
	"github.com/spf13/cobra"
)

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Manage which nutrient metrics are charted",
}

var metricsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Show the metric selection",
	RunE: func(cmd *cobra.Command, args []string) error {
		sel := cfg.Selection()
		for _, key := range models.AllMetricKeys {
			mark := " "
			if sel.Contains(key) {
				mark = color.GreenString("✓")
			}
			fmt.Printf("%s %s (%s)\n", mark, padRight(string(key), 10), models.MetricUnits[key])
		}
		return nil
	},
}

var metricsToggleCmd = &cobra.Command{
	Use:   "toggle <metric>",
	Short: "Toggle a metric on or off the charts",
	Long: `Toggle a nutrient metric on or off the chart selection.

Between 1 and 4 metrics are always selected: a toggle that would
leave the charts empty or overcrowded is refused.

Valid metrics: calories, protein, fiber, carbs, fat, sugar`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !models.IsValidMetricKey(args[0]) {
			return fmt.Errorf("unknown metric: %s (valid: calories, protein, fiber, carbs, fat, sugar)", args[0])
		}
		key := models.MetricKey(args[0])

		sel := cfg.Selection()
		next := sel.Toggle(key)
		if len(next) == len(sel) {
			if sel.Contains(key) {
				return fmt.Errorf("cannot remove %s: at least %d metric must stay selected", key, tracker.MinSelected)
			}
			return fmt.Errorf("cannot add %s: at most %d metrics can be selected", key, tracker.MaxSelected)
		}

		cfg.SetSelection(next)
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		if next.Contains(key) {
			color.Green("✓ Charting %s", key)
		} else {
			color.Yellow("✗ No longer charting %s", key)
		}
		return nil
	},
}

func init() {
	metricsCmd.AddCommand(metricsListCmd, metricsToggleCmd)
	rootCmd.AddCommand(metricsCmd)
}
