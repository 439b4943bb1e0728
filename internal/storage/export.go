// ABOUTME: Full-journal export and import for backup and restore.
// ABOUTME: Dumps all three collections into one JSON document.
package storage

import (
	"time"

	"github.com/harperreed/nosh/internal/models"
)

// ExportData is the full journal dump.
type ExportData struct {
	ExportedAt time.Time               `json:"exported_at"`
	Foods      []models.FoodRecord     `json:"foods"`
	Activities []models.ActivityRecord `json:"activities"`
	Favorites  []models.FoodRecord     `json:"favorites"`
}

// ExportAll collects every collection into a single dump.
func (s *Store) ExportAll() (*ExportData, error) {
	foods, err := s.Foods()
	if err != nil {
		return nil, err
	}
	activities, err := s.Activities()
	if err != nil {
		return nil, err
	}
	favorites, err := s.Favorites()
	if err != nil {
		return nil, err
	}
	return &ExportData{
		ExportedAt: time.Now(),
		Foods:      foods,
		Activities: activities,
		Favorites:  favorites,
	}, nil
}

// ImportAll replaces every collection with the dump's contents.
// Writes are per-collection; there is no transaction across them.
func (s *Store) ImportAll(data *ExportData) error {
	if err := s.SaveFoods(data.Foods); err != nil {
		return err
	}
	if err := s.SaveActivities(data.Activities); err != nil {
		return err
	}
	return s.SaveFavorites(data.Favorites)
}
