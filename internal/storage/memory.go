package storage

import (
	"encoding/json"
	"fmt"
	"sync"

	"menufacil/internal/models"
)

// MemoryStore keeps the deployment records in process memory. It backs
// tests and throwaway demo runs; it honours the same seeding contract as
// the SQLite store.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string][]byte
	views   map[string]int
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string][]byte),
		views:   make(map[string]int),
	}
}

func (s *MemoryStore) LoadMenu(seed []models.MenuItem) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := s.loadOrSeed(MenuKey, &items, seed); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *MemoryStore) SaveMenu(items []models.MenuItem) error {
	return s.save(MenuKey, items)
}

func (s *MemoryStore) LoadInfo(seed models.RestaurantInfo) (models.RestaurantInfo, error) {
	var info models.RestaurantInfo
	if err := s.loadOrSeed(InfoKey, &info, seed); err != nil {
		return models.RestaurantInfo{}, err
	}
	return info, nil
}

func (s *MemoryStore) SaveInfo(info models.RestaurantInfo) error {
	return s.save(InfoKey, info)
}

func (s *MemoryStore) IncrementViews(day string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.views[day]++
	return nil
}

func (s *MemoryStore) Views(day string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.views[day], nil
}

func (s *MemoryStore) Close() error { return nil }

func (s *MemoryStore) loadOrSeed(key string, out, seed interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.records[key]
	if !ok {
		var err error
		data, err = json.Marshal(seed)
		if err != nil {
			return fmt.Errorf("encode seed for %s: %w", key, err)
		}
		s.records[key] = data
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode record %s: %w", key, err)
	}
	return nil
}

func (s *MemoryStore) save(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode record %s: %w", key, err)
	}
	s.mu.Lock()
	s.records[key] = data
	s.mu.Unlock()
	return nil
}

// Corrupt overwrites a record with non-JSON bytes. Test hook for the
// fail-loudly contract on malformed content.
func (s *MemoryStore) Corrupt(key string) {
	s.mu.Lock()
	s.records[key] = []byte("{not json")
	s.mu.Unlock()
}
