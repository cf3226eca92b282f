// Package storage is the persistence adapter for the three durable records
// of a deployment: the menu list, the restaurant profile and the per-day
// view counters. Loads of the menu or profile seed the store with the
// supplied defaults when no record exists yet, so "no prior state" and
// "default state" are indistinguishable to callers.
package storage

import (
	"time"

	"menufacil/internal/models"
)

// Logical record names. Stable across releases; values are opaque JSON.
const (
	MenuKey  = "menufacil_items"
	InfoKey  = "menufacil_info"
	ViewsKey = "menufacil_views"
)

// Store is the storage port. Implementations must be safe for concurrent
// use. Malformed stored content fails the load loudly; there is no
// corruption recovery.
type Store interface {
	// LoadMenu returns the stored menu list. When no menu record exists
	// the seed list is written and returned.
	LoadMenu(seed []models.MenuItem) ([]models.MenuItem, error)
	SaveMenu(items []models.MenuItem) error

	// LoadInfo returns the stored restaurant profile, seeding like LoadMenu.
	LoadInfo(seed models.RestaurantInfo) (models.RestaurantInfo, error)
	SaveInfo(info models.RestaurantInfo) error

	// IncrementViews adds one to the counter for the given day, creating
	// it at 1 when absent.
	IncrementViews(day string) error
	// Views returns the counter for the given day, 0 when absent.
	Views(day string) (int, error)

	Close() error
}

// DayKey returns the calendar-date key for the view counters.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
