// ABOUTME: CLI command for nutrient trend charts across days.
// ABOUTME: Renders a bar per day for each selected metric.
package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/harperreed/nosh/internal/models"
	"github.com/harperreed/nosh/internal/tracker"
	"github.com/spf13/cobra"
)

var trendsDays int

const trendBarWidth = 30

var barStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("36"))

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Chart nutrient trends",
	Long: `Chart per-day totals for the selected metrics over the last N days.

Which metrics are charted is controlled by 'nosh metrics toggle';
between 1 and 4 metrics are always selected.

EXAMPLES:

  nosh trends              # Last 7 days
  nosh trends --days 30    # Last 30 days`,
	RunE: func(cmd *cobra.Command, args []string) error {
		foods, err := store.Foods()
		if err != nil {
			return err
		}
		activities, err := store.Activities()
		if err != nil {
			return err
		}

		since, err := tracker.Shift(tracker.Today(), -(trendsDays - 1))
		if err != nil {
			return err
		}

		var days []tracker.Day
		for _, d := range tracker.Aggregate(foods, activities) {
			if d.Date >= since && d.Date <= tracker.Today() {
				days = append(days, d)
			}
		}
		if len(days) == 0 {
			fmt.Printf("Nothing logged in the last %d days.\n", trendsDays)
			return nil
		}

		bold := color.New(color.Bold)
		faint := color.New(color.Faint)
		for _, key := range cfg.Selection() {
			bold.Printf("%s (%s)\n", key, models.MetricUnits[key])

			max := 0.0
			for _, d := range days {
				if v := d.Totals.Value(key); v > max {
					max = v
				}
			}
			for _, d := range days {
				v := d.Totals.Value(key)
				width := 0
				if max > 0 {
					width = int(v / max * trendBarWidth)
				}
				fmt.Printf("  %s %s %.1f\n",
					faint.Sprint(d.Date),
					barStyle.Render(strings.Repeat("█", width)),
					v)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	trendsCmd.Flags().IntVar(&trendsDays, "days", 7, "number of days to chart")
	rootCmd.AddCommand(trendsCmd)
}
