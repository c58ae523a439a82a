package prefs

import (
	"context"
	"sync"

	"match-alerts-service/internal/domain/alerts"
)

// MemoryStore keeps preferences in a process-local map. It is the default
// backend and the one tests use.
type MemoryStore struct {
	mu    sync.RWMutex
	users map[string]alerts.AlertPreferences
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: make(map[string]alerts.AlertPreferences)}
}

// Load returns the stored preferences for a user, if any.
func (s *MemoryStore) Load(_ context.Context, userID string) (alerts.AlertPreferences, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.users[userID]
	return p, ok, nil
}

// Save stores the full preferences document for a user.
func (s *MemoryStore) Save(_ context.Context, userID string, p alerts.AlertPreferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[userID] = p
	return nil
}
