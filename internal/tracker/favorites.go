// ABOUTME: Favorites reconciliation with toggle-by-name semantics.
// ABOUTME: Favorites are name-deduplicated snapshots decoupled from their origin.
package tracker

import (
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/nosh/internal/models"
)

// ToggleFavorite removes the favorite matching rec's name if one exists,
// otherwise appends a snapshot of rec's name and nutrients under a fresh
// identity. Matching is by exact name only; the origin record's identity,
// date, and timestamp are never carried into the favorite. The input slice
// is not mutated.
func ToggleFavorite(favorites []models.FoodRecord, rec models.FoodRecord) []models.FoodRecord {
	for i, f := range favorites {
		if f.Name == rec.Name {
			out := make([]models.FoodRecord, 0, len(favorites)-1)
			out = append(out, favorites[:i]...)
			out = append(out, favorites[i+1:]...)
			return out
		}
	}

	fav := models.FoodRecord{
		ID:           uuid.New(),
		Name:         rec.Name,
		Nutrients:    rec.Nutrients,
		CreatedAt:    time.Now(),
		FromFavorite: true,
	}
	out := make([]models.FoodRecord, 0, len(favorites)+1)
	out = append(out, favorites...)
	return append(out, fav)
}

// FindFavorite returns the favorite with the given name, if any.
func FindFavorite(favorites []models.FoodRecord, name string) (models.FoodRecord, bool) {
	for _, f := range favorites {
		if f.Name == name {
			return f, true
		}
	}
	return models.FoodRecord{}, false
}

// NewFoodFromFavorite instantiates a loggable FoodRecord from a favorite:
// the favorite's name and nutrients under a fresh identity and timestamp,
// on the given date. The favorites collection is untouched.
func NewFoodFromFavorite(fav models.FoodRecord, date string) models.FoodRecord {
	return models.FoodRecord{
		ID:           uuid.New(),
		Name:         fav.Name,
		Nutrients:    fav.Nutrients,
		Date:         date,
		CreatedAt:    time.Now(),
		FromFavorite: true,
	}
}
