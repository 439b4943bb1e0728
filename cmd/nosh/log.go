// ABOUTME: CLI command for the per-day log view.
// ABOUTME: Shows a navigable five-day window around the selected day.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/nosh/internal/tracker"
	"github.com/spf13/cobra"
)

var logCmd = &cobra.Command{
	Use:   "log [date]",
	Short: "Show a day's food and activity log",
	Long: `Show the aggregated log for a calendar day: food entries, activities,
nutrient totals, and net calories. A five-day window around the
selected day shows calorie totals for quick navigation.

EXAMPLES:

  nosh log                 # Today
  nosh log 2024-01-01      # A specific day
  nosh log yesterday       # Relative days: yesterday, tomorrow`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		selected := tracker.Today()
		if len(args) > 0 {
			var err error
			selected, err = resolveLogDate(args[0])
			if err != nil {
				return err
			}
		}

		foods, err := store.Foods()
		if err != nil {
			return err
		}
		activities, err := store.Activities()
		if err != nil {
			return err
		}

		days := tracker.Aggregate(foods, activities)
		window, err := tracker.Window(selected, 2)
		if err != nil {
			return err
		}

		// Navigation strip: calorie totals for the surrounding days.
		faint := color.New(color.Faint)
		bold := color.New(color.Bold)
		for _, date := range window {
			cal := 0.0
			for _, d := range days {
				if d.Date == date {
					cal = d.Totals.Calories
					break
				}
			}
			label := fmt.Sprintf("%s %4.0f", date, cal)
			if date == selected {
				bold.Printf("[%s]  ", label)
			} else {
				faint.Printf(" %s   ", label)
			}
		}
		fmt.Println()
		fmt.Println()

		day := tracker.DayFor(foods, activities, selected)
		if len(day.Entries) == 0 && len(day.Activities) == 0 {
			fmt.Printf("Nothing logged on %s.\n", selected)
			return nil
		}

		if len(day.Entries) > 0 {
			bold.Println("Food")
			for _, f := range day.Entries {
				marker := ""
				if f.FromFavorite {
					marker = " ★"
				}
				fmt.Printf("  %s %s %s%s\n",
					faint.Sprint(f.ID.String()[:8]),
					padRight(truncate(f.Name, 24), 24),
					nutrientLine(f.Nutrients),
					marker)
			}
		}
		if len(day.Activities) > 0 {
			bold.Println("Activity")
			for _, a := range day.Activities {
				fmt.Printf("  %s %s %d kcal burned\n",
					faint.Sprint(a.ID.String()[:8]),
					padRight(truncate(a.Name, 24), 24),
					a.CaloriesBurned)
			}
		}

		fmt.Println()
		bold.Printf("Totals  %s\n", nutrientLine(day.Totals))
		if day.CaloriesBurned > 0 {
			fmt.Printf("Burned  %d kcal\n", day.CaloriesBurned)
			fmt.Printf("Net     %.0f kcal\n", day.NetCalories())
		}
		return nil
	},
}

// resolveLogDate accepts YYYY-MM-DD plus the relative forms
// today, yesterday, and tomorrow.
func resolveLogDate(arg string) (string, error) {
	switch arg {
	case "today":
		return tracker.Today(), nil
	case "yesterday":
		return tracker.Shift(tracker.Today(), -1)
	case "tomorrow":
		return tracker.Shift(tracker.Today(), 1)
	}
	return resolveDate(arg)
}

func init() {
	rootCmd.AddCommand(logCmd)
}
