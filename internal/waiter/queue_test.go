package waiter

import (
	"errors"
	"testing"

	"menufacil/internal/models"
)

func TestRequest(t *testing.T) {
	queue := NewQueue()

	req, err := queue.Request("7", models.RequestCallWaiter)
	if err != nil {
		t.Fatalf("Request() error = %v", err)
	}
	if req.ID == "" {
		t.Error("Request() assigned no id")
	}
	if req.TableID != "7" || req.Kind != models.RequestCallWaiter {
		t.Errorf("request = %+v, want table 7 call_waiter", req)
	}
	if queue.Len() != 1 {
		t.Errorf("Len() = %d, want 1", queue.Len())
	}
}

func TestRequestRequiresTable(t *testing.T) {
	queue := NewQueue()
	if _, err := queue.Request("", models.RequestBill); !errors.Is(err, ErrNoTable) {
		t.Errorf("Request() error = %v, want ErrNoTable", err)
	}
	if queue.Len() != 0 {
		t.Error("rejected request entered the queue")
	}
}

func TestRequestRejectsUnknownKind(t *testing.T) {
	queue := NewQueue()
	if _, err := queue.Request("7", "dance"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("Request() error = %v, want ErrUnknownKind", err)
	}
}

func TestPendingMostRecentFirst(t *testing.T) {
	queue := NewQueue()
	first, _ := queue.Request("1", models.RequestCallWaiter)
	second, _ := queue.Request("2", models.RequestBill)

	pending := queue.Pending()
	if len(pending) != 2 {
		t.Fatalf("Pending() returned %d requests, want 2", len(pending))
	}
	if pending[0].ID != second.ID || pending[1].ID != first.ID {
		t.Error("Pending() is not most-recent-first")
	}
}

func TestResolveDeletes(t *testing.T) {
	queue := NewQueue()
	req, _ := queue.Request("7", models.RequestCallWaiter)

	if err := queue.Resolve(req.ID); err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	// Request-then-resolve leaves the queue exactly as before.
	if queue.Len() != 0 {
		t.Errorf("Len() after Resolve = %d, want 0", queue.Len())
	}
	// Resolution is terminal; there is no history to resolve again.
	if err := queue.Resolve(req.ID); !errors.Is(err, ErrRequestNotFound) {
		t.Errorf("second Resolve() error = %v, want ErrRequestNotFound", err)
	}
}

func TestResolveLeavesOthers(t *testing.T) {
	queue := NewQueue()
	keep, _ := queue.Request("1", models.RequestCallWaiter)
	drop, _ := queue.Request("2", models.RequestBill)

	queue.Resolve(drop.ID)

	pending := queue.Pending()
	if len(pending) != 1 || pending[0].ID != keep.ID {
		t.Errorf("Pending() after Resolve = %+v, want only %s", pending, keep.ID)
	}
}
