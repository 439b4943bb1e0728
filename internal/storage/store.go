// ABOUTME: Record Store over a local Badger KV database.
// ABOUTME: Each collection is one JSON array blob keyed by collection name.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	badger "github.com/dgraph-io/badger/v3"
	"github.com/harperreed/nosh/internal/models"
)

const (
	keyFoods      = "foods"
	keyActivities = "activities"
	keyFavorites  = "favorites"
)

// Store holds the three journal collections as serialized blobs.
// Collections are loaded whole and written back whole on every mutation;
// no write spans more than one collection.
type Store struct {
	db *badger.DB
}

// Open opens or creates the store in the given data directory.
func Open(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	opts := badger.DefaultOptions(filepath.Join(dataDir, "journal")).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return &Store{db: db}, nil
}

// DataDir returns the default data directory following the XDG spec.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "nosh")
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// loadBlob reads a collection blob; a missing key yields a nil blob.
func (s *Store) loadBlob(key string) ([]byte, error) {
	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	return data, nil
}

// saveBlob writes a collection blob.
func (s *Store) saveBlob(key string, data []byte) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
	if err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// loadList unmarshals a collection blob into a record slice.
// A missing blob is an empty collection, never an error.
func loadList[T any](s *Store, key string) ([]T, error) {
	data, err := s.loadBlob(key)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	var list []T
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", key, err)
	}
	return list, nil
}

// saveList marshals a record slice into its collection blob.
func saveList[T any](s *Store, key string, list []T) error {
	if list == nil {
		list = []T{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return s.saveBlob(key, data)
}

// Foods loads the food collection.
func (s *Store) Foods() ([]models.FoodRecord, error) {
	return loadList[models.FoodRecord](s, keyFoods)
}

// SaveFoods writes the food collection.
func (s *Store) SaveFoods(foods []models.FoodRecord) error {
	return saveList(s, keyFoods, foods)
}

// Activities loads the activity collection.
func (s *Store) Activities() ([]models.ActivityRecord, error) {
	return loadList[models.ActivityRecord](s, keyActivities)
}

// SaveActivities writes the activity collection.
func (s *Store) SaveActivities(activities []models.ActivityRecord) error {
	return saveList(s, keyActivities, activities)
}

// Favorites loads the favorites collection.
func (s *Store) Favorites() ([]models.FoodRecord, error) {
	return loadList[models.FoodRecord](s, keyFavorites)
}

// SaveFavorites writes the favorites collection.
func (s *Store) SaveFavorites(favorites []models.FoodRecord) error {
	return saveList(s, keyFavorites, favorites)
}
