// ABOUTME: Tests for the add/edit form state machine.
// ABOUTME: Covers transitions, stale-estimate discard, and cancel paths.
package tracker

import (
	"testing"

	"github.com/harperreed/nosh/internal/models"
)

func TestFormAddFlow(t *testing.T) {
	form := NewFoodForm("2024-01-01")
	if form.State != FormIdle {
		t.Fatalf("State = %s, want idle", form.State)
	}

	form.Begin()
	if form.State != FormCollecting {
		t.Fatalf("State = %s, want collecting", form.State)
	}

	if !form.Propose("Apple", models.NutrientProfile{Calories: 95}) {
		t.Fatal("Propose should be accepted while collecting")
	}
	if form.State != FormPreviewing {
		t.Fatalf("State = %s, want previewing", form.State)
	}

	foods, saved, err := form.Confirm(nil)
	if err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if form.State != FormSaved {
		t.Errorf("State = %s, want saved", form.State)
	}
	if len(foods) != 1 {
		t.Fatalf("len(foods) = %d, want 1", len(foods))
	}
	if saved.Name != "Apple" || saved.Date != "2024-01-01" {
		t.Errorf("saved = %+v", saved)
	}

	form.Reset()
	if form.State != FormIdle {
		t.Errorf("State = %s, want idle after reset", form.State)
	}
}

func TestFormEditStartsInPreview(t *testing.T) {
	existing := models.NewFoodRecord("Apple", models.NutrientProfile{Calories: 95}, "2024-01-01")
	foods := []models.FoodRecord{existing}

	form := NewFoodForm("2024-01-05")
	form.BeginEdit(existing)
	if form.State != FormPreviewing {
		t.Fatalf("State = %s, want previewing", form.State)
	}
	if form.Draft.Name != "Apple" {
		t.Errorf("Draft.Name = %s, want seeded Apple", form.Draft.Name)
	}

	form.Draft.Nutrients.Calories = 80
	foods, saved, err := form.Confirm(foods)
	if err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if len(foods) != 1 {
		t.Fatalf("len(foods) = %d, want 1 (edit replaces)", len(foods))
	}
	if saved.ID != existing.ID {
		t.Error("edit must preserve identity")
	}
	if saved.Nutrients.Calories != 80 {
		t.Errorf("Calories = %f, want 80", saved.Nutrients.Calories)
	}
}

func TestFormDiscardsStaleProposal(t *testing.T) {
	form := NewFoodForm("2024-01-01")
	form.Begin()
	form.Cancel()

	// The estimation result lands after the user navigated away.
	if form.Propose("Apple", models.NutrientProfile{Calories: 95}) {
		t.Error("stale proposal should be discarded")
	}
	if form.State != FormIdle {
		t.Errorf("State = %s, want idle", form.State)
	}
}

func TestFormCancelFromAnyState(t *testing.T) {
	form := NewFoodForm("2024-01-01")

	form.Begin()
	form.Cancel()
	if form.State != FormIdle {
		t.Errorf("cancel from collecting: State = %s", form.State)
	}

	form.Begin()
	form.Propose("Apple", models.NutrientProfile{})
	form.Cancel()
	if form.State != FormIdle {
		t.Errorf("cancel from previewing: State = %s", form.State)
	}
	if form.Draft.Name != "" {
		t.Error("cancel should clear the draft")
	}
}

func TestFormConfirmRequiresPreview(t *testing.T) {
	form := NewFoodForm("2024-01-01")
	if _, _, err := form.Confirm(nil); err == nil {
		t.Error("confirm from idle should fail")
	}

	form.Begin()
	if _, _, err := form.Confirm(nil); err == nil {
		t.Error("confirm from collecting should fail")
	}
}

func TestFormConfirmKeepsPreviewOnValidationError(t *testing.T) {
	form := NewFoodForm("2024-01-01")
	form.Begin()
	form.Propose("", models.NutrientProfile{}) // empty name will not validate

	if _, _, err := form.Confirm(nil); err == nil {
		t.Fatal("expected validation error")
	}
	if form.State != FormPreviewing {
		t.Errorf("State = %s, want previewing kept for correction", form.State)
	}
}
