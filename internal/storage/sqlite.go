package storage

import (
	"encoding/json"
	"fmt"

	"github.com/jinzhu/gorm"
	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"menufacil/internal/models"
)

// record holds one named JSON blob.
type record struct {
	Key   string `gorm:"primary_key"`
	Value []byte
}

// dailyView holds one day's customer view counter.
type dailyView struct {
	Day   string `gorm:"primary_key"`
	Count int
}

// SQLiteStore persists the deployment records in a local SQLite file.
type SQLiteStore struct {
	db *gorm.DB
}

var _ Store = (*SQLiteStore)(nil)

// OpenSQLite opens (and migrates) the store at the given path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := gorm.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	db.LogMode(false)
	if err := db.AutoMigrate(&record{}, &dailyView{}).Error; err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate sqlite store: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) LoadMenu(seed []models.MenuItem) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := s.loadOrSeed(MenuKey, &items, seed); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SQLiteStore) SaveMenu(items []models.MenuItem) error {
	return s.save(MenuKey, items)
}

func (s *SQLiteStore) LoadInfo(seed models.RestaurantInfo) (models.RestaurantInfo, error) {
	var info models.RestaurantInfo
	if err := s.loadOrSeed(InfoKey, &info, seed); err != nil {
		return models.RestaurantInfo{}, err
	}
	return info, nil
}

func (s *SQLiteStore) SaveInfo(info models.RestaurantInfo) error {
	return s.save(InfoKey, info)
}

func (s *SQLiteStore) IncrementViews(day string) error {
	var row dailyView
	err := s.db.Where("day = ?", day).First(&row).Error
	switch {
	case gorm.IsRecordNotFoundError(err):
		return s.db.Create(&dailyView{Day: day, Count: 1}).Error
	case err != nil:
		return fmt.Errorf("load view counter for %s: %w", day, err)
	}
	row.Count++
	return s.db.Save(&row).Error
}

func (s *SQLiteStore) Views(day string) (int, error) {
	var row dailyView
	err := s.db.Where("day = ?", day).First(&row).Error
	if gorm.IsRecordNotFoundError(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("load view counter for %s: %w", day, err)
	}
	return row.Count, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// loadOrSeed reads the record under key into out. When the record is absent
// it writes the seed value and returns it instead.
func (s *SQLiteStore) loadOrSeed(key string, out, seed interface{}) error {
	var rec record
	err := s.db.Where("key = ?", key).First(&rec).Error
	if gorm.IsRecordNotFoundError(err) {
		if err := s.save(key, seed); err != nil {
			return err
		}
		data, err := json.Marshal(seed)
		if err != nil {
			return fmt.Errorf("encode seed for %s: %w", key, err)
		}
		return json.Unmarshal(data, out)
	}
	if err != nil {
		return fmt.Errorf("load record %s: %w", key, err)
	}
	if err := json.Unmarshal(rec.Value, out); err != nil {
		return fmt.Errorf("decode record %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) save(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode record %s: %w", key, err)
	}
	var rec record
	err = s.db.Where("key = ?", key).First(&rec).Error
	if gorm.IsRecordNotFoundError(err) {
		return s.db.Create(&record{Key: key, Value: data}).Error
	}
	if err != nil {
		return fmt.Errorf("load record %s: %w", key, err)
	}
	rec.Value = data
	return s.db.Save(&rec).Error
}
