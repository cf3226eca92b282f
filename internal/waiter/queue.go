// Package waiter keeps the pending "call waiter" / "request bill" signals
// for the staff. Requests exist only while pending: resolving one deletes
// it, there is no history.
package waiter

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"menufacil/internal/models"
)

var (
	// ErrNoTable rejects a request from a session with no table identity.
	ErrNoTable = fmt.Errorf("no active table for this session")
	// ErrUnknownKind rejects a request of an unrecognized kind.
	ErrUnknownKind = fmt.Errorf("unknown request kind")
	// ErrRequestNotFound is returned when resolving an unknown request.
	ErrRequestNotFound = fmt.Errorf("waiter request not found")
)

// Queue holds the pending requests, most recent first.
type Queue struct {
	mu      sync.RWMutex
	pending []models.WaiterRequest
	now     func() time.Time
}

// NewQueue returns an empty request queue.
func NewQueue() *Queue {
	return &Queue{now: time.Now}
}

// Request records a new pending signal for the given table.
func (q *Queue) Request(tableID string, kind models.RequestKind) (models.WaiterRequest, error) {
	if tableID == "" {
		return models.WaiterRequest{}, ErrNoTable
	}
	if !models.ValidRequestKind(kind) {
		return models.WaiterRequest{}, ErrUnknownKind
	}
	req := models.WaiterRequest{
		ID:        uuid.NewString(),
		TableID:   tableID,
		Kind:      kind,
		CreatedAt: q.now(),
	}
	q.mu.Lock()
	q.pending = append([]models.WaiterRequest{req}, q.pending...)
	q.mu.Unlock()
	return req, nil
}

// Resolve deletes the matching request. Resolution is terminal.
func (q *Queue) Resolve(id string) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	for i, req := range q.pending {
		if req.ID == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return nil
		}
	}
	return ErrRequestNotFound
}

// Pending returns a copy of the pending requests, most recent first.
func (q *Queue) Pending() []models.WaiterRequest {
	q.mu.RLock()
	defer q.mu.RUnlock()
	out := make([]models.WaiterRequest, len(q.pending))
	copy(out, q.pending)
	return out
}

// Len returns the number of pending requests.
func (q *Queue) Len() int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return len(q.pending)
}
