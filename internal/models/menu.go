package models

import (
	"fmt"
	"strings"
)

// MenuItem represents a dish on the menu. Prices are stored in minor
// currency units (centavos are not used for Kwanza, so 8500 means Kz 8 500).
type MenuItem struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Price       int64        `json:"price"`
	Category    MenuCategory `json:"category"`
	ImageURL    string       `json:"imageUrl,omitempty"`
	Available   bool         `json:"available"`
	PrepTime    int          `json:"prepTime,omitempty"` // minutes
	Vegetarian  bool         `json:"isVegetarian,omitempty"`
	Spicy       bool         `json:"isSpicy,omitempty"`
	GlutenFree  bool         `json:"isGlutenFree,omitempty"`
}

// MenuCategory represents the category of a menu item
type MenuCategory string

const (
	CategoryStarters MenuCategory = "Starters"
	CategoryMains    MenuCategory = "Mains"
	CategoryDrinks   MenuCategory = "Drinks"
	CategoryDesserts MenuCategory = "Desserts"

	// CategoryAll is the filter wildcard, never stored on an item.
	CategoryAll MenuCategory = "All"
)

// Categories lists every storable menu category in display order.
var Categories = []MenuCategory{
	CategoryStarters,
	CategoryMains,
	CategoryDrinks,
	CategoryDesserts,
}

// PlaceholderImageURL is assigned when an item is created without an image.
const PlaceholderImageURL = "https://picsum.photos/600/400"

// ValidCategory reports whether c is a storable menu category.
func ValidCategory(c MenuCategory) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ValidateMenuItem validates a menu item before it enters the catalog.
func ValidateMenuItem(item *MenuItem) error {
	if strings.TrimSpace(item.Name) == "" {
		return fmt.Errorf("menu item name is required")
	}
	if item.Price < 0 {
		return fmt.Errorf("menu item price must not be negative")
	}
	if !ValidCategory(item.Category) {
		return fmt.Errorf("unknown menu category %q", item.Category)
	}
	if item.PrepTime < 0 {
		return fmt.Errorf("menu item prep time must not be negative")
	}
	return nil
}

// MatchesSearch reports whether the item's name or description contains
// term, case-insensitively. An empty term matches every item.
func (mi *MenuItem) MatchesSearch(term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(mi.Name), term) ||
		strings.Contains(strings.ToLower(mi.Description), term)
}

// IsInCategory checks if the item belongs to a specific category.
// CategoryAll matches every item.
func (mi *MenuItem) IsInCategory(category MenuCategory) bool {
	return category == CategoryAll || mi.Category == category
}
