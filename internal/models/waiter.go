package models

import "time"

// RequestKind distinguishes the two signals a table can send to staff.
type RequestKind string

const (
	RequestCallWaiter RequestKind = "call_waiter"
	RequestBill       RequestKind = "bill"
)

// ValidRequestKind reports whether k names a known request kind.
func ValidRequestKind(k RequestKind) bool {
	return k == RequestCallWaiter || k == RequestBill
}

// WaiterRequest is an ephemeral signal from a table to the staff. A request
// is pending for exactly as long as it sits in the queue; resolving it
// deletes it, there is no retained history.
type WaiterRequest struct {
	ID        string      `json:"id"`
	TableID   string      `json:"tableId"`
	Kind      RequestKind `json:"type"`
	CreatedAt time.Time   `json:"timestamp"`
}
