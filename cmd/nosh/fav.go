// ABOUTME: CLI commands for favorite foods: toggle, list, use.
// ABOUTME: Favorites are keyed by exact name, at most one per name.
package main

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/harperreed/nosh/internal/models"
	"github.com/harperreed/nosh/internal/tracker"
	"github.com/spf13/cobra"
)

var favDate string

var favCmd = &cobra.Command{
	Use:     "fav",
	Aliases: []string{"favorite"},
	Short:   "Manage favorite foods",
}

var favToggleCmd = &cobra.Command{
	Use:   "toggle <id|name>",
	Short: "Toggle a food on or off the favorites list",
	Long: `Toggle a favorite. Pass a food entry's ID (or prefix) to snapshot its
name and nutrients, or a name to toggle by name directly.

A favorite is a snapshot: later edits to the original entry do not
change it, and deleting the original does not remove it. At most one
favorite exists per exact name.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		foods, err := store.Foods()
		if err != nil {
			return err
		}
		favorites, err := store.Favorites()
		if err != nil {
			return err
		}

		rec, err := resolveFavoriteTarget(foods, favorites, args[0])
		if err != nil {
			return err
		}

		favorites = tracker.ToggleFavorite(favorites, rec)
		if err := store.SaveFavorites(favorites); err != nil {
			return fmt.Errorf("failed to save favorites: %w", err)
		}

		if _, ok := tracker.FindFavorite(favorites, rec.Name); ok {
			color.Green("★ Favorited %s", rec.Name)
		} else {
			color.Yellow("✗ Unfavorited %s", rec.Name)
		}
		return nil
	},
}

var favListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List favorite foods",
	RunE: func(cmd *cobra.Command, args []string) error {
		favorites, err := store.Favorites()
		if err != nil {
			return err
		}
		if len(favorites) == 0 {
			fmt.Println("No favorites saved.")
			return nil
		}

		sort.Slice(favorites, func(i, j int) bool {
			return favorites[i].Name < favorites[j].Name
		})
		for _, f := range favorites {
			fmt.Printf("★ %s %s\n",
				padRight(truncate(f.Name, 24), 24),
				nutrientLine(f.Nutrients))
		}
		return nil
	},
}

var favUseCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Log a favorite onto a day",
	Long: `Create a new food entry from a favorite: the favorite's name and
nutrients under a fresh identity, on the given day (default today).
The favorite itself is untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(favDate)
		if err != nil {
			return err
		}

		favorites, err := store.Favorites()
		if err != nil {
			return err
		}
		fav, ok := tracker.FindFavorite(favorites, args[0])
		if !ok {
			return fmt.Errorf("no favorite named %q", args[0])
		}

		foods, err := store.Foods()
		if err != nil {
			return err
		}
		rec := tracker.NewFoodFromFavorite(fav, date)
		foods = append(foods, rec)
		if err := store.SaveFoods(foods); err != nil {
			return fmt.Errorf("failed to save foods: %w", err)
		}

		color.Green("✓ Logged %s on %s", rec.Name, rec.Date)
		fmt.Printf("  %s %s\n",
			color.New(color.Faint).Sprint(rec.ID.String()[:8]),
			nutrientLine(rec.Nutrients))
		return nil
	},
}

// resolveFavoriteTarget interprets the toggle argument as a food ID prefix
// first, then as a name. A bare name works for toggling off an existing
// favorite, or toggling on from the most recent entry with that name.
func resolveFavoriteTarget(foods, favorites []models.FoodRecord, arg string) (models.FoodRecord, error) {
	if rec, err := tracker.FindFoodByID(foods, arg); err == nil {
		return rec, nil
	}
	if fav, ok := tracker.FindFavorite(favorites, arg); ok {
		return fav, nil
	}

	var match models.FoodRecord
	var found bool
	for _, f := range foods {
		if f.Name == arg && (!found || f.CreatedAt.After(match.CreatedAt)) {
			match = f
			found = true
		}
	}
	if !found {
		return models.FoodRecord{}, fmt.Errorf("no food or favorite matching %q", arg)
	}
	return match, nil
}

func init() {
	favUseCmd.Flags().StringVar(&favDate, "date", "", "calendar day (YYYY-MM-DD)")
	favCmd.AddCommand(favToggleCmd, favListCmd, favUseCmd)
	rootCmd.AddCommand(favCmd)
}
