// ABOUTME: CLI commands for food entries: add, edit, delete, list.
// ABOUTME: Edits preserve identity; add dates default to today.
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
	foodDate     string
	foodCalories float64
	foodProtein  float64
	foodFiber    float64
	foodCarbs    float64
	foodFat      float64
	foodSugar    float64
	foodLimit    int
)

var foodCmd = &cobra.Command{
	Use:     "food",
	Aliases: []string{"f"},
	Short:   "Manage food entries",
}

var foodAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Log a food entry",
	Long: `Log a food entry with its nutrient breakdown.

EXAMPLES:

  nosh food add "Apple" --cal 95 --fiber 4 --carbs 25
  nosh food add "Protein shake" --cal 220 --protein 30 --date 2024-01-02`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(foodDate)
		if err != nil {
			return err
		}

		candidate := models.FoodRecord{
			Name:      args[0],
			Nutrients: nutrientsFromFlags(),
			Date:      date,
		}

		foods, err := store.Foods()
		if err != nil {
			return err
		}
		foods, saved, err := tracker.SaveFood(foods, candidate, nil)
		if err != nil {
			return err
		}
		if err := store.SaveFoods(foods); err != nil {
			return fmt.Errorf("failed to save foods: %w", err)
		}

		color.Green("✓ Logged %s on %s", saved.Name, saved.Date)
		fmt.Printf("  %s %s\n",
			color.New(color.Faint).Sprint(saved.ID.String()[:8]),
			nutrientLine(saved.Nutrients))
		return nil
	},
}

var foodEditCmd = &cobra.Command{
	Use:   "edit <id> [name]",
	Short: "Edit a food entry",
	Long: `Edit a food entry by ID or ID prefix. The entry keeps its identity;
only the fields you pass change. Date and creation time are carried
over unless you pass --date.

EXAMPLES:

  nosh food edit a1b2c3d4 --cal 120
  nosh food edit a1b2c3d4 "Green apple" --fiber 5`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		foods, err := store.Foods()
		if err != nil {
			return err
		}
		existing, err := tracker.FindFoodByID(foods, args[0])
		if err != nil {
			return err
		}

		candidate := existing
		candidate.Date = "" // empty means keep the original
		if foodDate != "" {
			if candidate.Date, err = resolveDate(foodDate); err != nil {
				return err
			}
		}
		if len(args) > 1 {
			candidate.Name = args[1]
		}
		applyNutrientFlags(cmd, &candidate.Nutrients)

		id := existing.ID
		foods, saved, err := tracker.SaveFood(foods, candidate, &id)
		if err != nil {
			return err
		}
		if err := store.SaveFoods(foods); err != nil {
			return fmt.Errorf("failed to save foods: %w", err)
		}

		color.Green("✓ Updated %s", saved.Name)
		fmt.Printf("  %s %s\n",
			color.New(color.Faint).Sprint(saved.ID.String()[:8]),
			nutrientLine(saved.Nutrients))
		return nil
	},
}

var foodDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a food entry",
	Long: `Delete a food entry by its ID or ID prefix.

This permanently deletes the entry. If the prefix matches multiple
entries, an error is returned. Favorites created from the entry are
not affected.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		foods, err := store.Foods()
		if err != nil {
			return err
		}
		foods, rec, err := tracker.DeleteFood(foods, args[0])
		if err != nil {
			return err
		}
		if err := store.SaveFoods(foods); err != nil {
			return fmt.Errorf("failed to save foods: %w", err)
		}

		color.Yellow("✗ Deleted %s", rec.Name)
		fmt.Printf("  %s %s\n",
			color.New(color.Faint).Sprint(rec.ID.String()[:8]),
			rec.Date)
		return nil
	},
}

var foodListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List recent food entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		foods, err := store.Foods()
		if err != nil {
			return err
		}
		if len(foods) == 0 {
			fmt.Println("No food entries yet.")
			return nil
		}

		sort.Slice(foods, func(i, j int) bool {
			return foods[i].CreatedAt.After(foods[j].CreatedAt)
		})
		if foodLimit > 0 && len(foods) > foodLimit {
			foods = foods[:foodLimit]
		}

		faint := color.New(color.Faint)
		for _, f := range foods {
			marker := ""
			if f.FromFavorite {
				marker = " ★"
			}
			fmt.Printf("%s %s %s %s%s\n",
				faint.Sprint(f.ID.String()[:8]),
				faint.Sprint(f.Date),
				padRight(truncate(f.Name, 24), 24),
				nutrientLine(f.Nutrients),
				marker)
		}
		return nil
	},
}

// nutrientsFromFlags builds a profile from the food flag set.
func nutrientsFromFlags() models.NutrientProfile {
	return models.NutrientProfile{
		Calories: foodCalories,
		Protein:  foodProtein,
		Fiber:    foodFiber,
		Carbs:    foodCarbs,
		Fat:      foodFat,
		Sugar:    foodSugar,
	}
}

// applyNutrientFlags overwrites only the fields whose flags were set.
func applyNutrientFlags(cmd *cobra.Command, p *models.NutrientProfile) {
	if cmd.Flags().Changed("cal") {
		p.Calories = foodCalories
	}
	if cmd.Flags().Changed("protein") {
		p.Protein = foodProtein
	}
	if cmd.Flags().Changed("fiber") {
		p.Fiber = foodFiber
	}
	if cmd.Flags().Changed("carbs") {
		p.Carbs = foodCarbs
	}
	if cmd.Flags().Changed("fat") {
		p.Fat = foodFat
	}
	if cmd.Flags().Changed("sugar") {
		p.Sugar = foodSugar
	}
}

func addNutrientFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&foodCalories, "cal", 0, "calories (kcal)")
	cmd.Flags().Float64Var(&foodProtein, "protein", 0, "protein (g)")
	cmd.Flags().Float64Var(&foodFiber, "fiber", 0, "fiber (g)")
	cmd.Flags().Float64Var(&foodCarbs, "carbs", 0, "carbs (g)")
	cmd.Flags().Float64Var(&foodFat, "fat", 0, "fat (g)")
	cmd.Flags().Float64Var(&foodSugar, "sugar", 0, "sugar (g)")
	cmd.Flags().StringVar(&foodDate, "date", "", "calendar day (YYYY-MM-DD)")
}

func init() {
	addNutrientFlags(foodAddCmd)
	addNutrientFlags(foodEditCmd)
	foodListCmd.Flags().IntVarP(&foodLimit, "limit", "n", 20, "max entries to show")

	foodCmd.AddCommand(foodAddCmd, foodEditCmd, foodDeleteCmd, foodListCmd)
	rootCmd.AddCommand(foodCmd)
}
