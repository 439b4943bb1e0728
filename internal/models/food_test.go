// ABOUTME: Tests for FoodRecord and ActivityRecord models.
// ABOUTME: Validates constructors and record validation rules.
package models

import "testing"

func TestNewFoodRecord(t *testing.T) {
	n := NutrientProfile{Calories: 95, Fiber: 4}
	f := NewFoodRecord("Apple", n, "2024-01-01")

	if f.ID.String() == "" {
		t.Error("expected UUID to be set")
	}
	if f.Name != "Apple" {
		t.Errorf("Name = %s, want Apple", f.Name)
	}
	if f.Date != "2024-01-01" {
		t.Errorf("Date = %s, want 2024-01-01", f.Date)
	}
	if f.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
	if f.FromFavorite {
		t.Error("new records should not be marked from-favorite")
	}
}

func TestFoodRecordValidate(t *testing.T) {
	tests := []struct {
		name    string
		record  FoodRecord
		wantErr bool
	}{
		{"valid", FoodRecord{Name: "Apple"}, false},
		{"empty name", FoodRecord{}, true},
		{"negative nutrient", FoodRecord{Name: "Apple", Nutrients: NutrientProfile{Fat: -1}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.record.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewActivityRecord(t *testing.T) {
	a := NewActivityRecord("Run", 300, "2024-01-02")

	if a.Name != "Run" {
		t.Errorf("Name = %s, want Run", a.Name)
	}
	if a.CaloriesBurned != 300 {
		t.Errorf("CaloriesBurned = %d, want 300", a.CaloriesBurned)
	}
	if a.Date != "2024-01-02" {
		t.Errorf("Date = %s, want 2024-01-02", a.Date)
	}
}

func TestActivityRecordValidate(t *testing.T) {
	tests := []struct {
		name    string
		record  ActivityRecord
		wantErr bool
	}{
		{"valid", ActivityRecord{Name: "Run", CaloriesBurned: 300}, false},
		{"zero burned", ActivityRecord{Name: "Stretch"}, false},
		{"empty name", ActivityRecord{CaloriesBurned: 100}, true},
		{"negative burned", ActivityRecord{Name: "Run", CaloriesBurned: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.record.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
