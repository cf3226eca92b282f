// Package catalog holds the active menu of one deployment and serves both
// the customer-facing filter and the owner's mutation operations. Every
// mutation rewrites the full list through the storage port; there are no
// delta writes.
package catalog

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"menufacil/internal/models"
	"menufacil/internal/storage"
)

// ErrItemNotFound is returned for operations on an unknown item id.
var ErrItemNotFound = fmt.Errorf("menu item not found")

// Catalog is the ordered set of menu items for the deployment.
type Catalog struct {
	mu    sync.RWMutex
	store storage.Store
	items []models.MenuItem
}

// Load reads the menu through the store, seeding the demo catalog on the
// very first access.
func Load(store storage.Store) (*Catalog, error) {
	items, err := store.LoadMenu(models.SeedMenu())
	if err != nil {
		return nil, fmt.Errorf("load menu: %w", err)
	}
	return &Catalog{store: store, items: items}, nil
}

// Items returns a copy of the full catalog in catalog order.
func (c *Catalog) Items() []models.MenuItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.MenuItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of items in the catalog.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// ActiveCount returns the number of available items.
func (c *Catalog) ActiveCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n := 0
	for _, item := range c.items {
		if item.Available {
			n++
		}
	}
	return n
}

// Get returns the item with the given id.
func (c *Catalog) Get(id string) (models.MenuItem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if item.ID == id {
			return item, true
		}
	}
	return models.MenuItem{}, false
}

// Filter projects the catalog by category and free-text search. It never
// mutates the catalog and preserves catalog order. CategoryAll matches
// every category; an empty search term matches every item.
func (c *Catalog) Filter(category models.MenuCategory, search string) []models.MenuItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.MenuItem, 0, len(c.items))
	for _, item := range c.items {
		if item.IsInCategory(category) && item.MatchesSearch(search) {
			out = append(out, item)
		}
	}
	return out
}

// Create validates the item, assigns a fresh unique id and a placeholder
// image when none was supplied, appends it and persists the new list.
func (c *Catalog) Create(item models.MenuItem) (models.MenuItem, error) {
	item.ID = uuid.NewString()
	if item.ImageURL == "" {
		item.ImageURL = models.PlaceholderImageURL
	}
	if err := models.ValidateMenuItem(&item); err != nil {
		return models.MenuItem{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	next := append(append([]models.MenuItem(nil), c.items...), item)
	if err := c.store.SaveMenu(next); err != nil {
		return models.MenuItem{}, fmt.Errorf("persist menu: %w", err)
	}
	c.items = next
	return item, nil
}

// Update replaces the stored item carrying the same id and persists.
func (c *Catalog) Update(item models.MenuItem) error {
	if err := models.ValidateMenuItem(&item); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	idx := c.indexOf(item.ID)
	if idx < 0 {
		return ErrItemNotFound
	}
	next := append([]models.MenuItem(nil), c.items...)
	next[idx] = item
	if err := c.store.SaveMenu(next); err != nil {
		return fmt.Errorf("persist menu: %w", err)
	}
	c.items = next
	return nil
}

// Delete removes the item with the given id and persists.
func (c *Catalog) Delete(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := c.indexOf(id)
	if idx < 0 {
		return ErrItemNotFound
	}
	next := append(append([]models.MenuItem(nil), c.items[:idx]...), c.items[idx+1:]...)
	if err := c.store.SaveMenu(next); err != nil {
		return fmt.Errorf("persist menu: %w", err)
	}
	c.items = next
	return nil
}

// ToggleAvailability flips the availability flag of the item and persists.
func (c *Catalog) ToggleAvailability(id string) (models.MenuItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := c.indexOf(id)
	if idx < 0 {
		return models.MenuItem{}, ErrItemNotFound
	}
	next := append([]models.MenuItem(nil), c.items...)
	next[idx].Available = !next[idx].Available
	if err := c.store.SaveMenu(next); err != nil {
		return models.MenuItem{}, fmt.Errorf("persist menu: %w", err)
	}
	c.items = next
	return next[idx], nil
}

// indexOf returns the position of id, -1 when absent. Callers hold c.mu.
func (c *Catalog) indexOf(id string) int {
	for i, item := range c.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}
