// ABOUTME: FoodRecord model for logged foods and favorites.
// ABOUTME: Favorites are FoodRecord-shaped snapshots with FromFavorite set.
package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DayFormat is the calendar-day form used for record dates.
// Lexicographic order on these strings matches chronological order.
const DayFormat = "2006-01-02"

// FoodRecord is a single logged food on a calendar day.
type FoodRecord struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Nutrients    NutrientProfile `json:"nutrients"`
	Date         string          `json:"date"`
	CreatedAt    time.Time       `json:"created_at"`
	FromFavorite bool            `json:"from_favorite,omitempty"`
}

// NewFoodRecord creates a FoodRecord with a generated UUID and current timestamp.
func NewFoodRecord(name string, nutrients NutrientProfile, date string) FoodRecord {
	return FoodRecord{
		ID:        uuid.New(),
		Name:      name,
		Nutrients: nutrients,
		Date:      date,
		CreatedAt: time.Now(),
	}
}

// WithDate returns a copy with the given calendar day.
func (f FoodRecord) WithDate(date string) FoodRecord {
	f.Date = date
	return f
}

// Validate checks the record is acceptable for the store.
func (f FoodRecord) Validate() error {
	if f.Name == "" {
		return fmt.Errorf("food name must not be empty")
	}
	if err := f.Nutrients.Validate(); err != nil {
		return err
	}
	return nil
}
