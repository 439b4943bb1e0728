// ABOUTME: Create-vs-edit save semantics for food and activity collections.
// ABOUTME: Edits replace in place by identity; creates append with a fresh UUID.
package tracker

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/nosh/internal/models"
)

// SaveFood applies the candidate to the collection. With editID set it
// replaces the record with that identity, keeping the identity and carrying
// over the original Date and CreatedAt wherever the candidate leaves them
// zero. Without editID it appends the candidate under a fresh identity with
// CreatedAt set to now; the candidate must carry a date (the caller supplies
// the navigated day). Returns the new collection and the record as saved.
func SaveFood(foods []models.FoodRecord, candidate models.FoodRecord, editID *uuid.UUID) ([]models.FoodRecord, models.FoodRecord, error) {
	if err := candidate.Validate(); err != nil {
		return nil, models.FoodRecord{}, err
	}

	if editID != nil {
		for i, f := range foods {
			if f.ID != *editID {
				continue
			}
			candidate.ID = f.ID
			if candidate.Date == "" {
				candidate.Date = f.Date
			}
			if candidate.CreatedAt.IsZero() {
				candidate.CreatedAt = f.CreatedAt
			}
			out := make([]models.FoodRecord, len(foods))
			copy(out, foods)
			out[i] = candidate
			return out, candidate, nil
		}
		return nil, models.FoodRecord{}, fmt.Errorf("no food with id %s", editID)
	}

	if candidate.Date == "" {
		return nil, models.FoodRecord{}, fmt.Errorf("food date must not be empty")
	}
	candidate.ID = uuid.New()
	candidate.CreatedAt = time.Now()
	out := make([]models.FoodRecord, 0, len(foods)+1)
	out = append(out, foods...)
	return append(out, candidate), candidate, nil
}

// SaveActivity is SaveFood for the activity collection.
func SaveActivity(activities []models.ActivityRecord, candidate models.ActivityRecord, editID *uuid.UUID) ([]models.ActivityRecord, models.ActivityRecord, error) {
	if err := candidate.Validate(); err != nil {
		return nil, models.ActivityRecord{}, err
	}

	if editID != nil {
		for i, a := range activities {
			if a.ID != *editID {
				continue
			}
			candidate.ID = a.ID
			if candidate.Date == "" {
				candidate.Date = a.Date
			}
			if candidate.CreatedAt.IsZero() {
				candidate.CreatedAt = a.CreatedAt
			}
			out := make([]models.ActivityRecord, len(activities))
			copy(out, activities)
			out[i] = candidate
			return out, candidate, nil
		}
		return nil, models.ActivityRecord{}, fmt.Errorf("no activity with id %s", editID)
	}

	if candidate.Date == "" {
		return nil, models.ActivityRecord{}, fmt.Errorf("activity date must not be empty")
	}
	candidate.ID = uuid.New()
	candidate.CreatedAt = time.Now()
	out := make([]models.ActivityRecord, 0, len(activities)+1)
	out = append(out, activities...)
	return append(out, candidate), candidate, nil
}

// FindFoodByID locates a food by full UUID or unique ID prefix.
func FindFoodByID(foods []models.FoodRecord, idOrPrefix string) (models.FoodRecord, error) {
	var match models.FoodRecord
	var found int
	for _, f := range foods {
		if strings.HasPrefix(f.ID.String(), idOrPrefix) {
			match = f
			found++
		}
	}
	if found == 0 {
		return models.FoodRecord{}, fmt.Errorf("not found: %s", idOrPrefix)
	}
	if found > 1 {
		return models.FoodRecord{}, fmt.Errorf("ambiguous prefix %s: matches multiple records", idOrPrefix)
	}
	return match, nil
}

// FindActivityByID locates an activity by full UUID or unique ID prefix.
func FindActivityByID(activities []models.ActivityRecord, idOrPrefix string) (models.ActivityRecord, error) {
	var match models.ActivityRecord
	var found int
	for _, a := range activities {
		if strings.HasPrefix(a.ID.String(), idOrPrefix) {
			match = a
			found++
		}
	}
	if found == 0 {
		return models.ActivityRecord{}, fmt.Errorf("not found: %s", idOrPrefix)
	}
	if found > 1 {
		return models.ActivityRecord{}, fmt.Errorf("ambiguous prefix %s: matches multiple records", idOrPrefix)
	}
	return match, nil
}

// DeleteFood removes a food by full UUID or unique ID prefix.
func DeleteFood(foods []models.FoodRecord, idOrPrefix string) ([]models.FoodRecord, models.FoodRecord, error) {
	rec, err := FindFoodByID(foods, idOrPrefix)
	if err != nil {
		return nil, models.FoodRecord{}, err
	}
	out := make([]models.FoodRecord, 0, len(foods)-1)
	for _, f := range foods {
		if f.ID != rec.ID {
			out = append(out, f)
		}
	}
	return out, rec, nil
}

// DeleteActivity removes an activity by full UUID or unique ID prefix.
func DeleteActivity(activities []models.ActivityRecord, idOrPrefix string) ([]models.ActivityRecord, models.ActivityRecord, error) {
	rec, err := FindActivityByID(activities, idOrPrefix)
	if err != nil {
		return nil, models.ActivityRecord{}, err
	}
	out := make([]models.ActivityRecord, 0, len(activities)-1)
	for _, a := range activities {
		if a.ID != rec.ID {
			out = append(out, a)
		}
	}
	return out, rec, nil
}
