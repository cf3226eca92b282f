package models

import (
	"errors"
	"testing"
)

func TestOrderStatusNext(t *testing.T) {
	tests := []struct {
		status OrderStatus
		next   OrderStatus
		ok     bool
	}{
		{OrderStatusPending, OrderStatusPreparing, true},
		{OrderStatusPreparing, OrderStatusReady, true},
		{OrderStatusReady, OrderStatusDelivered, true},
		{OrderStatusDelivered, "", false},
	}

	for _, tt := range tests {
		next, ok := tt.status.Next()
		if ok != tt.ok || next != tt.next {
			t.Errorf("Next(%s) = (%s, %v), want (%s, %v)", tt.status, next, ok, tt.next, tt.ok)
		}
	}
}

func TestOrderAdvance(t *testing.T) {
	tests := []struct {
		name    string
		from    OrderStatus
		to      OrderStatus
		wantErr bool
	}{
		{"pending to preparing", OrderStatusPending, OrderStatusPreparing, false},
		{"preparing to ready", OrderStatusPreparing, OrderStatusReady, false},
		{"ready to delivered", OrderStatusReady, OrderStatusDelivered, false},
		{"backward move", OrderStatusPreparing, OrderStatusPending, true},
		{"skipped step", OrderStatusPending, OrderStatusReady, true},
		{"past terminal", OrderStatusDelivered, OrderStatusPending, true},
		{"self transition", OrderStatusPending, OrderStatusPending, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := Order{ID: "o1", Status: tt.from}
			err := o.Advance(tt.to)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Advance(%s) from %s error = %v, wantErr %v", tt.to, tt.from, err, tt.wantErr)
			}
			if tt.wantErr {
				var te *TransitionError
				if !errors.As(err, &te) {
					t.Fatalf("Advance() error type = %T, want *TransitionError", err)
				}
				if te.From != tt.from || te.To != tt.to {
					t.Errorf("TransitionError = %s -> %s, want %s -> %s", te.From, te.To, tt.from, tt.to)
				}
				if o.Status != tt.from {
					t.Errorf("rejected Advance mutated status to %s", o.Status)
				}
				return
			}
			if o.Status != tt.to {
				t.Errorf("order status = %s, want %s", o.Status, tt.to)
			}
		})
	}
}

func TestCartItemSubtotal(t *testing.T) {
	line := CartItem{Item: MenuItem{Price: 8500}, Quantity: 2}
	if got := line.Subtotal(); got != 17000 {
		t.Errorf("Subtotal() = %d, want 17000", got)
	}
}
