// ABOUTME: Tests for create-vs-edit save semantics and prefix lookup.
// ABOUTME: Covers identity preservation, carried-over fields, and deletes.
package tracker

import (
	"testing"

	"github.com/harperreed/nosh/internal/models"
)

func TestSaveFoodCreateAppends(t *testing.T) {
	candidate := models.FoodRecord{
		Name:      "Apple",
		Nutrients: models.NutrientProfile{Calories: 95},
		Date:      "2024-01-01",
	}

	foods, saved, err := SaveFood(nil, candidate, nil)
	if err != nil {
		t.Fatalf("SaveFood: %v", err)
	}

	if len(foods) != 1 {
		t.Fatalf("len(foods) = %d, want 1", len(foods))
	}
	if saved.ID.String() == "" {
		t.Error("expected a fresh identity")
	}
	if saved.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
	if saved.Date != "2024-01-01" {
		t.Errorf("Date = %s, want 2024-01-01", saved.Date)
	}
}

func TestSaveFoodCreateRequiresDate(t *testing.T) {
	_, _, err := SaveFood(nil, models.FoodRecord{Name: "Apple"}, nil)
	if err == nil {
		t.Error("expected error for missing date")
	}
}

func TestSaveFoodCreateRejectsInvalid(t *testing.T) {
	before := []models.FoodRecord{models.NewFoodRecord("Toast", models.NutrientProfile{}, "2024-01-01")}

	if _, _, err := SaveFood(before, models.FoodRecord{Date: "2024-01-01"}, nil); err == nil {
		t.Error("expected error for empty name")
	}
	bad := models.FoodRecord{Name: "X", Date: "2024-01-01", Nutrients: models.NutrientProfile{Calories: -5}}
	if _, _, err := SaveFood(before, bad, nil); err == nil {
		t.Error("expected error for negative calories")
	}
	// Rejections must not have touched the collection.
	if len(before) != 1 {
		t.Errorf("len = %d, want 1", len(before))
	}
}

func TestSaveFoodEditReplacesInPlace(t *testing.T) {
	original := models.NewFoodRecord("Apple", models.NutrientProfile{Calories: 95}, "2024-01-01")
	other := models.NewFoodRecord("Toast", models.NutrientProfile{Calories: 120}, "2024-01-01")
	foods := []models.FoodRecord{original, other}

	candidate := models.FoodRecord{
		Name:      "Green apple",
		Nutrients: models.NutrientProfile{Calories: 80},
	}
	id := original.ID
	foods, saved, err := SaveFood(foods, candidate, &id)
	if err != nil {
		t.Fatalf("SaveFood: %v", err)
	}

	if len(foods) != 2 {
		t.Fatalf("len(foods) = %d, want 2 (replace, not append)", len(foods))
	}
	if saved.ID != original.ID {
		t.Error("identity must be preserved on edit")
	}
	if saved.Name != "Green apple" {
		t.Errorf("Name = %s, want Green apple", saved.Name)
	}
	// Date and CreatedAt were not supplied, so they carry over.
	if saved.Date != original.Date {
		t.Errorf("Date = %s, want %s", saved.Date, original.Date)
	}
	if !saved.CreatedAt.Equal(original.CreatedAt) {
		t.Error("CreatedAt must carry over from the edited record")
	}
	// The record replaced in place, position preserved.
	if foods[0].ID != original.ID || foods[1].ID != other.ID {
		t.Error("edit changed collection positions")
	}
}

func TestSaveFoodEditCanMoveDate(t *testing.T) {
	original := models.NewFoodRecord("Apple", models.NutrientProfile{}, "2024-01-01")
	foods := []models.FoodRecord{original}

	id := original.ID
	candidate := models.FoodRecord{Name: "Apple", Date: "2024-01-05"}
	_, saved, err := SaveFood(foods, candidate, &id)
	if err != nil {
		t.Fatalf("SaveFood: %v", err)
	}
	if saved.Date != "2024-01-05" {
		t.Errorf("Date = %s, want 2024-01-05", saved.Date)
	}
}

func TestSaveFoodEditUnknownID(t *testing.T) {
	stray := models.NewFoodRecord("Apple", models.NutrientProfile{}, "2024-01-01")
	id := stray.ID

	if _, _, err := SaveFood(nil, models.FoodRecord{Name: "Apple"}, &id); err == nil {
		t.Error("expected error for unknown edit target")
	}
}

func TestSaveFoodNeverDuplicatesIdentity(t *testing.T) {
	var foods []models.FoodRecord
	var err error
	for i := 0; i < 10; i++ {
		foods, _, err = SaveFood(foods, models.FoodRecord{Name: "Apple", Date: "2024-01-01"}, nil)
		if err != nil {
			t.Fatalf("SaveFood: %v", err)
		}
	}

	seen := make(map[string]bool)
	for _, f := range foods {
		if seen[f.ID.String()] {
			t.Fatalf("duplicate identity %s", f.ID)
		}
		seen[f.ID.String()] = true
	}
}

func TestSaveActivityEditCarriesOverFields(t *testing.T) {
	original := models.NewActivityRecord("Run", 300, "2024-01-02")
	activities := []models.ActivityRecord{original}

	id := original.ID
	candidate := models.ActivityRecord{Name: "Long run", CaloriesBurned: 450}
	activities, saved, err := SaveActivity(activities, candidate, &id)
	if err != nil {
		t.Fatalf("SaveActivity: %v", err)
	}

	if len(activities) != 1 {
		t.Fatalf("len = %d, want 1", len(activities))
	}
	if saved.ID != original.ID {
		t.Error("identity must be preserved on edit")
	}
	if saved.Date != "2024-01-02" {
		t.Errorf("Date = %s, want carried-over 2024-01-02", saved.Date)
	}
	if saved.CaloriesBurned != 450 {
		t.Errorf("CaloriesBurned = %d, want 450", saved.CaloriesBurned)
	}
}

func TestFindFoodByIDPrefix(t *testing.T) {
	a := models.NewFoodRecord("Apple", models.NutrientProfile{}, "2024-01-01")
	b := models.NewFoodRecord("Toast", models.NutrientProfile{}, "2024-01-01")
	foods := []models.FoodRecord{a, b}

	got, err := FindFoodByID(foods, a.ID.String()[:8])
	if err != nil {
		t.Fatalf("FindFoodByID: %v", err)
	}
	if got.ID != a.ID {
		t.Errorf("found %s, want %s", got.ID, a.ID)
	}

	if _, err := FindFoodByID(foods, "zzzzzzzz"); err == nil {
		t.Error("expected not-found error")
	}
	// The empty prefix matches everything: ambiguous.
	if _, err := FindFoodByID(foods, ""); err == nil {
		t.Error("expected ambiguity error")
	}
}

func TestDeleteFood(t *testing.T) {
	a := models.NewFoodRecord("Apple", models.NutrientProfile{}, "2024-01-01")
	b := models.NewFoodRecord("Toast", models.NutrientProfile{}, "2024-01-01")
	foods := []models.FoodRecord{a, b}

	foods, deleted, err := DeleteFood(foods, a.ID.String()[:8])
	if err != nil {
		t.Fatalf("DeleteFood: %v", err)
	}
	if deleted.ID != a.ID {
		t.Errorf("deleted %s, want %s", deleted.ID, a.ID)
	}
	if len(foods) != 1 || foods[0].ID != b.ID {
		t.Errorf("remaining = %v, want only %s", foods, b.ID)
	}
}

func TestDeleteActivity(t *testing.T) {
	a := models.NewActivityRecord("Run", 300, "2024-01-02")
	activities := []models.ActivityRecord{a}

	activities, deleted, err := DeleteActivity(activities, a.ID.String())
	if err != nil {
		t.Fatalf("DeleteActivity: %v", err)
	}
	if deleted.ID != a.ID {
		t.Errorf("deleted %s, want %s", deleted.ID, a.ID)
	}
	if len(activities) != 0 {
		t.Errorf("len = %d, want 0", len(activities))
	}
}
