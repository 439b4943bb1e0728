// ABOUTME: Add/edit form state machine for food entries.
// ABOUTME: Estimation results arriving after cancel or confirm are discarded.
package tracker

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/harperreed/nosh/internal/models"
)

// FormState is the lifecycle position of an add/edit form.
type FormState string

const (
	FormIdle       FormState = "idle"
	FormCollecting FormState = "collecting"
	FormPreviewing FormState = "previewing"
	FormSaved      FormState = "saved"
)

// FoodForm drives the add/edit flow for a food entry. A new entry moves
// idle → collecting → previewing → saved; an edit starts directly in
// previewing, seeded from the existing record. Cancel returns to idle from
// any state.
type FoodForm struct {
	State  FormState
	Draft  models.FoodRecord
	editID *uuid.UUID
}

// NewFoodForm returns an idle form targeting the given calendar day.
func NewFoodForm(date string) *FoodForm {
	return &FoodForm{State: FormIdle, Draft: models.FoodRecord{Date: date}}
}

// Begin starts collecting input for a new entry.
func (f *FoodForm) Begin() {
	f.State = FormCollecting
	f.editID = nil
	f.Draft = models.FoodRecord{Date: f.Draft.Date}
}

// BeginEdit opens the form directly in preview, seeded from rec.
func (f *FoodForm) BeginEdit(rec models.FoodRecord) {
	id := rec.ID
	f.State = FormPreviewing
	f.editID = &id
	f.Draft = rec
}

// Propose supplies a candidate name and nutrient estimate, moving the form
// to preview. A result delivered while the form is not collecting belongs to
// an abandoned request and is dropped; the return value reports acceptance.
func (f *FoodForm) Propose(name string, nutrients models.NutrientProfile) bool {
	if f.State != FormCollecting {
		return false
	}
	f.Draft.Name = name
	f.Draft.Nutrients = nutrients
	f.State = FormPreviewing
	return true
}

// Confirm saves the previewed draft into the collection and returns the
// updated collection and saved record. On success the form is in FormSaved;
// a validation failure keeps the preview so the user can correct it.
func (f *FoodForm) Confirm(foods []models.FoodRecord) ([]models.FoodRecord, models.FoodRecord, error) {
	if f.State != FormPreviewing {
		return nil, models.FoodRecord{}, fmt.Errorf("nothing to confirm")
	}
	out, saved, err := SaveFood(foods, f.Draft, f.editID)
	if err != nil {
		return nil, models.FoodRecord{}, err
	}
	f.State = FormSaved
	return out, saved, nil
}

// Cancel abandons the form from any state.
func (f *FoodForm) Cancel() {
	f.State = FormIdle
	f.editID = nil
	f.Draft = models.FoodRecord{Date: f.Draft.Date}
}

// Reset returns a saved form to idle, ready for the next entry.
func (f *FoodForm) Reset() {
	if f.State == FormSaved {
		f.Cancel()
	}
}
