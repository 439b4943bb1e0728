// ABOUTME: Tests for the Badger-backed Record Store.
// ABOUTME: Covers collection round trips, empty loads, and export/import.
package storage

import (
	"testing"

	"github.com/harperreed/nosh/internal/models"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestEmptyCollectionsLoadAsEmpty(t *testing.T) {
	s := openTestStore(t)

	foods, err := s.Foods()
	if err != nil {
		t.Fatalf("Foods: %v", err)
	}
	if len(foods) != 0 {
		t.Errorf("len(foods) = %d, want 0", len(foods))
	}

	activities, err := s.Activities()
	if err != nil {
		t.Fatalf("Activities: %v", err)
	}
	if len(activities) != 0 {
		t.Errorf("len(activities) = %d, want 0", len(activities))
	}

	favorites, err := s.Favorites()
	if err != nil {
		t.Fatalf("Favorites: %v", err)
	}
	if len(favorites) != 0 {
		t.Errorf("len(favorites) = %d, want 0", len(favorites))
	}
}

func TestFoodsRoundTrip(t *testing.T) {
	s := openTestStore(t)

	in := []models.FoodRecord{
		models.NewFoodRecord("Apple", models.NutrientProfile{Calories: 95, Fiber: 4}, "2024-01-01"),
		models.NewFoodRecord("Toast", models.NutrientProfile{Calories: 120, Carbs: 20}, "2024-01-02"),
	}
	if err := s.SaveFoods(in); err != nil {
		t.Fatalf("SaveFoods: %v", err)
	}

	out, err := s.Foods()
	if err != nil {
		t.Fatalf("Foods: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}
	if out[0].ID != in[0].ID || out[0].Name != "Apple" {
		t.Errorf("out[0] = %+v, want %+v", out[0], in[0])
	}
	if out[0].Nutrients.Fiber != 4 {
		t.Errorf("Fiber = %f, want 4", out[0].Nutrients.Fiber)
	}
}

func TestCollectionsAreIndependent(t *testing.T) {
	s := openTestStore(t)

	if err := s.SaveFoods([]models.FoodRecord{
		models.NewFoodRecord("Apple", models.NutrientProfile{}, "2024-01-01"),
	}); err != nil {
		t.Fatalf("SaveFoods: %v", err)
	}
	if err := s.SaveActivities([]models.ActivityRecord{
		models.NewActivityRecord("Run", 300, "2024-01-01"),
	}); err != nil {
		t.Fatalf("SaveActivities: %v", err)
	}

	// Overwriting foods must not touch activities.
	if err := s.SaveFoods(nil); err != nil {
		t.Fatalf("SaveFoods: %v", err)
	}
	activities, err := s.Activities()
	if err != nil {
		t.Fatalf("Activities: %v", err)
	}
	if len(activities) != 1 {
		t.Errorf("len(activities) = %d, want 1", len(activities))
	}
}

func TestSaveReplacesWholeCollection(t *testing.T) {
	s := openTestStore(t)

	first := []models.FoodRecord{models.NewFoodRecord("Apple", models.NutrientProfile{}, "2024-01-01")}
	if err := s.SaveFoods(first); err != nil {
		t.Fatalf("SaveFoods: %v", err)
	}

	second := []models.FoodRecord{
		models.NewFoodRecord("Toast", models.NutrientProfile{}, "2024-01-02"),
		models.NewFoodRecord("Eggs", models.NutrientProfile{}, "2024-01-02"),
	}
	if err := s.SaveFoods(second); err != nil {
		t.Fatalf("SaveFoods: %v", err)
	}

	out, err := s.Foods()
	if err != nil {
		t.Fatalf("Foods: %v", err)
	}
	if len(out) != 2 || out[0].Name != "Toast" {
		t.Errorf("collection not replaced: %+v", out)
	}
}

func TestPersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	rec := models.NewFoodRecord("Apple", models.NutrientProfile{Calories: 95}, "2024-01-01")
	if err := s.SaveFoods([]models.FoodRecord{rec}); err != nil {
		t.Fatalf("SaveFoods: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s, err = Open(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	out, err := s.Foods()
	if err != nil {
		t.Fatalf("Foods: %v", err)
	}
	if len(out) != 1 || out[0].ID != rec.ID {
		t.Errorf("out = %+v, want the saved record", out)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	src := openTestStore(t)

	if err := src.SaveFoods([]models.FoodRecord{
		models.NewFoodRecord("Apple", models.NutrientProfile{Calories: 95}, "2024-01-01"),
	}); err != nil {
		t.Fatalf("SaveFoods: %v", err)
	}
	if err := src.SaveActivities([]models.ActivityRecord{
		models.NewActivityRecord("Run", 300, "2024-01-02"),
	}); err != nil {
		t.Fatalf("SaveActivities: %v", err)
	}

	dump, err := src.ExportAll()
	if err != nil {
		t.Fatalf("ExportAll: %v", err)
	}
	if len(dump.Foods) != 1 || len(dump.Activities) != 1 {
		t.Fatalf("dump = %d foods, %d activities", len(dump.Foods), len(dump.Activities))
	}

	dst := openTestStore(t)
	if err := dst.ImportAll(dump); err != nil {
		t.Fatalf("ImportAll: %v", err)
	}

	foods, err := dst.Foods()
	if err != nil {
		t.Fatalf("Foods: %v", err)
	}
	if len(foods) != 1 || foods[0].Name != "Apple" {
		t.Errorf("imported foods = %+v", foods)
	}
}
