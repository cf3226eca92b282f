package orders

import (
	"strings"

	"menufacil/internal/models"
)

// Cart accumulates a customer's pending selections within one browsing
// session. Carts are never persisted; they live and die with the session.
// Cart is not safe for concurrent use; the owning session serializes access.
type Cart struct {
	lines []models.CartItem
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// Add appends a line for the given item. Quantities below 1 are clamped to
// 1; there is no upper bound. The observation is trimmed.
func (c *Cart) Add(item models.MenuItem, quantity int, observation string) {
	if quantity < 1 {
		quantity = 1
	}
	c.lines = append(c.lines, models.CartItem{
		Item:        item,
		Quantity:    quantity,
		Observation: strings.TrimSpace(observation),
	})
}

// Remove deletes the line at index. Out-of-range indexes are a no-op.
func (c *Cart) Remove(index int) {
	if index < 0 || index >= len(c.lines) {
		return
	}
	c.lines = append(c.lines[:index], c.lines[index+1:]...)
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []models.CartItem {
	out := make([]models.CartItem, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len returns the number of lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Count returns the total requested quantity across all lines.
func (c *Cart) Count() int {
	n := 0
	for _, line := range c.lines {
		n += line.Quantity
	}
	return n
}

// Total returns the cart total in minor currency units.
func (c *Cart) Total() int64 {
	var total int64
	for _, line := range c.lines {
		total += line.Subtotal()
	}
	return total
}

// Empty reports whether the cart has no lines.
func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

// Clear drops every line.
func (c *Cart) Clear() {
	c.lines = nil
}
