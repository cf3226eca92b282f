package session

import (
	"sync"

	"github.com/google/uuid"

	"menufacil/internal/storage"
)

// Manager tracks the live sessions of the deployment, one per connected
// device, keyed by an opaque session id handed to the client at start.
type Manager struct {
	mu       sync.RWMutex
	store    storage.Store
	sessions map[string]*Session
}

// NewManager returns an empty session manager.
func NewManager(store storage.Store) *Manager {
	return &Manager{
		store:    store,
		sessions: make(map[string]*Session),
	}
}

// Start creates a session for the given entry link and returns its id.
func (m *Manager) Start(link string) (string, *Session, error) {
	sess := New(m.store)
	if err := sess.Start(link); err != nil {
		return "", nil, err
	}
	id := uuid.NewString()
	m.mu.Lock()
	m.sessions[id] = sess
	m.mu.Unlock()
	return id, sess, nil
}

// Get returns the session with the given id.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sess, ok := m.sessions[id]
	return sess, ok
}

// End drops the session with the given id.
func (m *Manager) End(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
