// ABOUTME: CLI commands for activity entries: add, edit, delete, list.
// ABOUTME: Activities carry a flat calories-burned count.
package main

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/harperreed/nosh/internal/models"
	"github.com/harperreed/nosh/internal/tracker"
	"github.com/spf13/cobra"
)

var (
	activityDate   string
	activityBurned int
	activityLimit  int
)

var activityCmd = &cobra.Command{
	Use:     "activity",
	Aliases: []string{"act"},
	Short:   "Manage activity entries",
}

var activityAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Log an activity",
	Long: `Log a physical activity with the calories it burned.

EXAMPLES:

  nosh activity add "Run" --burned 300
  nosh activity add "Swim" --burned 450 --date 2024-01-02`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(activityDate)
		if err != nil {
			return err
		}

		candidate := models.ActivityRecord{
			Name:           args[0],
			CaloriesBurned: activityBurned,
			Date:           date,
		}

		activities, err := store.Activities()
		if err != nil {
			return err
		}
		activities, saved, err := tracker.SaveActivity(activities, candidate, nil)
		if err != nil {
			return err
		}
		if err := store.SaveActivities(activities); err != nil {
			return fmt.Errorf("failed to save activities: %w", err)
		}

		color.Green("✓ Logged %s on %s", saved.Name, saved.Date)
		fmt.Printf("  %s %d kcal burned\n",
			color.New(color.Faint).Sprint(saved.ID.String()[:8]),
			saved.CaloriesBurned)
		return nil
	},
}

var activityEditCmd = &cobra.Command{
	Use:   "edit <id> [name]",
	Short: "Edit an activity",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		activities, err := store.Activities()
		if err != nil {
			return err
		}
		existing, err := tracker.FindActivityByID(activities, args[0])
		if err != nil {
			return err
		}

		candidate := existing
		candidate.Date = "" // empty means keep the original
		if activityDate != "" {
			if candidate.Date, err = resolveDate(activityDate); err != nil {
				return err
			}
		}
		if len(args) > 1 {
			candidate.Name = args[1]
		}
		if cmd.Flags().Changed("burned") {
			candidate.CaloriesBurned = activityBurned
		}

		id := existing.ID
		activities, saved, err := tracker.SaveActivity(activities, candidate, &id)
		if err != nil {
			return err
		}
		if err := store.SaveActivities(activities); err != nil {
			return fmt.Errorf("failed to save activities: %w", err)
		}

		color.Green("✓ Updated %s", saved.Name)
		fmt.Printf("  %s %d kcal burned\n",
			color.New(color.Faint).Sprint(saved.ID.String()[:8]),
			saved.CaloriesBurned)
		return nil
	},
}

var activityDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete an activity",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		activities, err := store.Activities()
		if err != nil {
			return err
		}
		activities, rec, err := tracker.DeleteActivity(activities, args[0])
		if err != nil {
			return err
		}
		if err := store.SaveActivities(activities); err != nil {
			return fmt.Errorf("failed to save activities: %w", err)
		}

		color.Yellow("✗ Deleted %s", rec.Name)
		fmt.Printf("  %s %s\n",
			color.New(color.Faint).Sprint(rec.ID.String()[:8]),
			rec.Date)
		return nil
	},
}

var activityListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List recent activities",
	RunE: func(cmd *cobra.Command, args []string) error {
		activities, err := store.Activities()
		if err != nil {
			return err
		}
		if len(activities) == 0 {
			fmt.Println("No activities yet.")
			return nil
		}

		sort.Slice(activities, func(i, j int) bool {
			return activities[i].CreatedAt.After(activities[j].CreatedAt)
		})
		if activityLimit > 0 && len(activities) > activityLimit {
			activities = activities[:activityLimit]
		}

		faint := color.New(color.Faint)
		for _, a := range activities {
			fmt.Printf("%s %s %s %d kcal burned\n",
				faint.Sprint(a.ID.String()[:8]),
				faint.Sprint(a.Date),
				padRight(truncate(a.Name, 24), 24),
				a.CaloriesBurned)
		}
		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{activityAddCmd, activityEditCmd} {
		cmd.Flags().IntVar(&activityBurned, "burned", 0, "calories burned")
		cmd.Flags().StringVar(&activityDate, "date", "", "calendar day (YYYY-MM-DD)")
	}
	activityListCmd.Flags().IntVarP(&activityLimit, "limit", "n", 20, "max entries to show")

	activityCmd.AddCommand(activityAddCmd, activityEditCmd, activityDeleteCmd, activityListCmd)
	rootCmd.AddCommand(activityCmd)
}
