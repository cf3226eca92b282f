package models

import (
	"fmt"
	"time"
)

// CartItem is a customer's pending selection: a snapshot of a menu item
// plus a requested quantity and an optional free-text note for the kitchen.
// The snapshot keeps the line price stable even if the catalog changes later.
type CartItem struct {
	Item        MenuItem `json:"item"`
	Quantity    int      `json:"quantity"`
	Observation string   `json:"observation,omitempty"`
}

// Subtotal returns the line total in minor currency units.
func (ci CartItem) Subtotal() int64 {
	return ci.Item.Price * int64(ci.Quantity)
}

// Order represents a submitted table order.
type Order struct {
	ID           string      `json:"id"`
	TableID      string      `json:"tableId"`
	CustomerName string      `json:"customerName,omitempty"`
	Items        []CartItem  `json:"items"`
	Total        int64       `json:"total"`
	Status       OrderStatus `json:"status"`
	CreatedAt    time.Time   `json:"createdAt"`
}

// OrderStatus represents the possible states of an order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusDelivered OrderStatus = "delivered"
)

// orderFlow is the only legal status sequence. Transitions move strictly
// forward, one step at a time; there is no cancellation state.
var orderFlow = map[OrderStatus]OrderStatus{
	OrderStatusPending:   OrderStatusPreparing,
	OrderStatusPreparing: OrderStatusReady,
	OrderStatusReady:     OrderStatusDelivered,
}

// ValidOrderStatus reports whether s names a known order status.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusPreparing, OrderStatusReady, OrderStatusDelivered:
		return true
	}
	return false
}

// Next returns the status that follows s, or false when s is terminal.
func (s OrderStatus) Next() (OrderStatus, bool) {
	next, ok := orderFlow[s]
	return next, ok
}

// TransitionError reports a rejected order status change.
type TransitionError struct {
	OrderID string
	From    OrderStatus
	To      OrderStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("order %s: invalid status transition %s -> %s", e.OrderID, e.From, e.To)
}

// Advance moves the order to the requested status. Only the single forward
// step is accepted; anything else is rejected with a *TransitionError and
// leaves the order untouched.
func (o *Order) Advance(to OrderStatus) error {
	next, ok := o.Status.Next()
	if !ok || next != to {
		return &TransitionError{OrderID: o.ID, From: o.Status, To: to}
	}
	o.Status = to
	return nil
}
