// ABOUTME: ActivityRecord model for logged physical activity.
// ABOUTME: Activities carry a flat calories-burned count, no nutrients.
package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ActivityRecord is a single logged activity on a calendar day.
type ActivityRecord struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	CaloriesBurned int       `json:"calories_burned"`
	Date           string    `json:"date"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewActivityRecord creates an ActivityRecord with a generated UUID and current timestamp.
func NewActivityRecord(name string, caloriesBurned int, date string) ActivityRecord {
	return ActivityRecord{
		ID:             uuid.New(),
		Name:           name,
		CaloriesBurned: caloriesBurned,
		Date:           date,
		CreatedAt:      time.Now(),
	}
}

// WithDate returns a copy with the given calendar day.
func (a ActivityRecord) WithDate(date string) ActivityRecord {
	a.Date = date
	return a
}

// Validate checks the record is acceptable for the store.
func (a ActivityRecord) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("activity name must not be empty")
	}
	if a.CaloriesBurned < 0 {
		return fmt.Errorf("calories burned must not be negative")
	}
	return nil
}
