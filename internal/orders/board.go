// Package orders implements the cart and the order lifecycle: carts collect
// lines during a session, placing converts them into a pending order on the
// board, and the kitchen advances each order through the fixed forward-only
// status sequence.
package orders

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"menufacil/internal/models"
)

var (
	// ErrNoTable rejects an order placed outside a table-bound session.
	ErrNoTable = fmt.Errorf("no active table for this session")
	// ErrEmptyName rejects an order with a blank customer name.
	ErrEmptyName = fmt.Errorf("customer name is required")
	// ErrEmptyCart rejects an order with no lines.
	ErrEmptyCart = fmt.Errorf("cart is empty")
	// ErrOrderNotFound is returned for status updates on unknown orders.
	ErrOrderNotFound = fmt.Errorf("order not found")
)

// Board holds the orders of one deployment, most recent first. Orders are
// kept in memory only; a production deployment would persist them.
type Board struct {
	mu     sync.RWMutex
	orders []models.Order
	now    func() time.Time
}

// NewBoard returns an empty order board.
func NewBoard() *Board {
	return &Board{now: time.Now}
}

// PlaceFromCart converts the cart into a pending order and clears the cart.
// The order total is frozen at submission; later catalog price changes never
// touch it. A rejected placement mutates nothing.
func (b *Board) PlaceFromCart(cart *Cart, tableID, customerName string) (models.Order, error) {
	if tableID == "" {
		return models.Order{}, ErrNoTable
	}
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return models.Order{}, ErrEmptyName
	}
	if cart.Empty() {
		return models.Order{}, ErrEmptyCart
	}

	order := models.Order{
		ID:           uuid.NewString(),
		TableID:      tableID,
		CustomerName: customerName,
		Items:        cart.Lines(),
		Total:        cart.Total(),
		Status:       models.OrderStatusPending,
		CreatedAt:    b.now(),
	}

	b.mu.Lock()
	b.orders = append([]models.Order{order}, b.orders...)
	b.mu.Unlock()

	cart.Clear()
	return order, nil
}

// UpdateStatus advances the matching order through the status machine.
// Backward or skipped transitions are rejected with *models.TransitionError.
func (b *Board) UpdateStatus(id string, to models.OrderStatus) (models.Order, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.orders {
		if b.orders[i].ID != id {
			continue
		}
		if err := b.orders[i].Advance(to); err != nil {
			return models.Order{}, err
		}
		return b.orders[i], nil
	}
	return models.Order{}, ErrOrderNotFound
}

// Get returns the order with the given id.
func (b *Board) Get(id string) (models.Order, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, o := range b.orders {
		if o.ID == id {
			return o, true
		}
	}
	return models.Order{}, false
}

// List returns all orders sorted by creation time, most recent first,
// regardless of insertion order.
func (b *Board) List() []models.Order {
	b.mu.RLock()
	out := make([]models.Order, len(b.orders))
	copy(out, b.orders)
	b.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// PendingCount returns the number of orders still waiting for the kitchen.
func (b *Board) PendingCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	n := 0
	for _, o := range b.orders {
		if o.Status == models.OrderStatusPending {
			n++
		}
	}
	return n
}
