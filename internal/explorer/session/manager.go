package session

import (
	"context"
	"sync"

	"github.com/eclipse-basyx/basyx-go-explorer/internal/common"
)

// Manager tracks the live sessions of the service.
type Manager struct {
	mu       sync.RWMutex
	cfg      *common.Config
	fetcher  Fetcher
	sessions map[string]*Session
}

// NewManager creates an empty session registry.
func NewManager(cfg *common.Config, fetcher Fetcher) *Manager {
	return &Manager{
		cfg:      cfg,
		fetcher:  fetcher,
		sessions: make(map[string]*Session),
	}
}

// Create registers a fresh session and returns it.
func (m *Manager) Create() *Session {
	s := New(m.cfg, m.fetcher)
	m.mu.Lock()
	m.sessions[s.ID()] = s
	m.mu.Unlock()
	return s
}

// Get returns a session by id, or nil.
func (m *Manager) Get(id string) *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[id]
}

// Delete removes a session.
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// Statistics serves the dashboard counts. They depend only on the shared
// repository, not on any session's state.
func (m *Manager) Statistics(ctx context.Context) (*Statistics, error) {
	return computeStatistics(ctx, m.fetcher)
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
