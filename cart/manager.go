package cart

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Manager hands out one Store per session, rehydrating it from the
// durable slot the first time the session is seen. Concurrent first
// requests for the same session collapse into a single rehydration.
type Manager struct {
	repo Repository

	mu     sync.Mutex
	stores map[string]*Store
	sfg    singleflight.Group
}

func NewManager(repo Repository) *Manager {
	return &Manager{
		repo:   repo,
		stores: make(map[string]*Store),
	}
}

// Store returns the session's cart store, creating and rehydrating it on
// first use. A rehydration failure still yields a usable (empty) store;
// the *PersistenceError is returned alongside it so the caller can warn.
func (m *Manager) Store(ctx context.Context, sessionID string) (*Store, error) {
	m.mu.Lock()
	if s, ok := m.stores[sessionID]; ok {
		m.mu.Unlock()
		return s, nil
	}
	m.mu.Unlock()

	v, err, _ := m.sfg.Do(sessionID, func() (interface{}, error) {
		s := NewStore(sessionID, m.repo)
		loadErr := s.Rehydrate(ctx)

		m.mu.Lock()
		m.stores[sessionID] = s
		m.mu.Unlock()

		return s, loadErr
	})
	return v.(*Store), err
}

// Drop forgets a session's store, e.g. when its guest session expires.
// The durable slot is left in place.
func (m *Manager) Drop(sessionID string) {
	m.mu.Lock()
	delete(m.stores, sessionID)
	m.mu.Unlock()
}
