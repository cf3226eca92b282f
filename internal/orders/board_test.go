package orders

import (
	"errors"
	"testing"
	"time"

	"menufacil/internal/models"
)

func TestPlaceFromCart(t *testing.T) {
	board := NewBoard()
	cart := NewCart()
	cart.Add(testItem("a", 8500), 2, "")

	order, err := board.PlaceFromCart(cart, "12", "João")
	if err != nil {
		t.Fatalf("PlaceFromCart() error = %v", err)
	}

	if order.Total != 17000 {
		t.Errorf("order total = %d, want 17000", order.Total)
	}
	if order.Status != models.OrderStatusPending {
		t.Errorf("order status = %s, want pending", order.Status)
	}
	if order.TableID != "12" || order.CustomerName != "João" {
		t.Errorf("order identity = (%s, %s), want (12, João)", order.TableID, order.CustomerName)
	}
	if !cart.Empty() {
		t.Error("cart not cleared after placing")
	}
	if got := len(board.List()); got != 1 {
		t.Errorf("board has %d orders, want 1", got)
	}
}

func TestPlaceFromCartValidation(t *testing.T) {
	tests := []struct {
		name     string
		table    string
		customer string
		fill     bool
		wantErr  error
	}{
		{"no table", "", "João", true, ErrNoTable},
		{"blank name", "12", "   ", true, ErrEmptyName},
		{"empty cart", "12", "João", false, ErrEmptyCart},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := NewBoard()
			cart := NewCart()
			if tt.fill {
				cart.Add(testItem("a", 100), 1, "")
			}
			before := cart.Len()

			_, err := board.PlaceFromCart(cart, tt.table, tt.customer)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("PlaceFromCart() error = %v, want %v", err, tt.wantErr)
			}
			// A rejected placement mutates nothing.
			if cart.Len() != before {
				t.Errorf("cart length changed from %d to %d on rejection", before, cart.Len())
			}
			if len(board.List()) != 0 {
				t.Error("rejected placement produced an order")
			}
		})
	}
}

func TestPlaceTrimsCustomerName(t *testing.T) {
	board := NewBoard()
	cart := NewCart()
	cart.Add(testItem("a", 100), 1, "")

	order, err := board.PlaceFromCart(cart, "3", "  Maria  ")
	if err != nil {
		t.Fatalf("PlaceFromCart() error = %v", err)
	}
	if order.CustomerName != "Maria" {
		t.Errorf("customer name = %q, want trimmed", order.CustomerName)
	}
}

func TestTotalFrozenAtSubmission(t *testing.T) {
	board := NewBoard()
	cart := NewCart()
	item := testItem("a", 8500)
	cart.Add(item, 2, "")

	order, _ := board.PlaceFromCart(cart, "1", "João")

	// A later catalog price change never touches the submitted order.
	item.Price = 9999
	got, _ := board.Get(order.ID)
	if got.Total != 17000 {
		t.Errorf("total after price change = %d, want 17000", got.Total)
	}
}

func TestUpdateStatus(t *testing.T) {
	board := NewBoard()
	cartA := NewCart()
	cartA.Add(testItem("a", 100), 1, "")
	cartB := NewCart()
	cartB.Add(testItem("b", 200), 1, "")

	first, _ := board.PlaceFromCart(cartA, "1", "Ana")
	second, _ := board.PlaceFromCart(cartB, "2", "Rui")

	updated, err := board.UpdateStatus(first.ID, models.OrderStatusPreparing)
	if err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}
	if updated.Status != models.OrderStatusPreparing {
		t.Errorf("updated status = %s, want preparing", updated.Status)
	}

	// Only the targeted order changed.
	other, _ := board.Get(second.ID)
	if other.Status != models.OrderStatusPending {
		t.Errorf("untouched order status = %s, want pending", other.Status)
	}
	if other.Total != second.Total || other.CustomerName != second.CustomerName {
		t.Error("untouched order fields changed")
	}
}

func TestUpdateStatusRejectsInvalidTransition(t *testing.T) {
	board := NewBoard()
	cart := NewCart()
	cart.Add(testItem("a", 100), 1, "")
	order, _ := board.PlaceFromCart(cart, "1", "Ana")

	_, err := board.UpdateStatus(order.ID, models.OrderStatusDelivered)
	var te *models.TransitionError
	if !errors.As(err, &te) {
		t.Fatalf("UpdateStatus() error = %v, want *TransitionError", err)
	}

	got, _ := board.Get(order.ID)
	if got.Status != models.OrderStatusPending {
		t.Errorf("status after rejected update = %s, want pending", got.Status)
	}
}

func TestUpdateStatusUnknownOrder(t *testing.T) {
	board := NewBoard()
	if _, err := board.UpdateStatus("nope", models.OrderStatusPreparing); !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("UpdateStatus() error = %v, want ErrOrderNotFound", err)
	}
}

func TestListMostRecentFirst(t *testing.T) {
	board := NewBoard()
	base := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	clock := base
	board.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}

	for _, name := range []string{"Ana", "Rui", "Zé"} {
		cart := NewCart()
		cart.Add(testItem("a", 100), 1, "")
		if _, err := board.PlaceFromCart(cart, "1", name); err != nil {
			t.Fatalf("PlaceFromCart() error = %v", err)
		}
	}

	list := board.List()
	if len(list) != 3 {
		t.Fatalf("List() returned %d orders, want 3", len(list))
	}
	want := []string{"Zé", "Rui", "Ana"}
	for i, name := range want {
		if list[i].CustomerName != name {
			t.Errorf("List()[%d] = %s, want %s", i, list[i].CustomerName, name)
		}
	}
}

func TestPendingCount(t *testing.T) {
	board := NewBoard()
	cart := NewCart()
	cart.Add(testItem("a", 100), 1, "")
	order, _ := board.PlaceFromCart(cart, "1", "Ana")

	if board.PendingCount() != 1 {
		t.Fatalf("PendingCount() = %d, want 1", board.PendingCount())
	}
	board.UpdateStatus(order.ID, models.OrderStatusPreparing)
	if board.PendingCount() != 0 {
		t.Errorf("PendingCount() after advance = %d, want 0", board.PendingCount())
	}
}
