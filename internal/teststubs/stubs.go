package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"match-alerts-service/internal/domain"
	"match-alerts-service/internal/domain/alerts"
)

// StubProvider is a test double for providers.MatchProvider.
type StubProvider struct {
	Live        []domain.Match
	Upcoming    []domain.Match
	LiveErr     error
	UpcomingErr error
	Calls       atomic.Int32
	Notify      chan struct{}
}

// FetchLive returns configured live matches and error while tracking calls.
func (s *StubProvider) FetchLive(ctx context.Context) ([]domain.Match, error) {
	_ = ctx
	s.Calls.Add(1)
	s.notify()
	return s.Live, s.LiveErr
}

// FetchUpcoming returns configured upcoming matches and error.
func (s *StubProvider) FetchUpcoming(ctx context.Context) ([]domain.Match, error) {
	_ = ctx
	return s.Upcoming, s.UpcomingErr
}

func (s *StubProvider) notify() {
	if s.Notify == nil {
		return
	}
	select {
	case <-s.Notify:
	default:
		close(s.Notify)
	}
}

// StubPrefsStore is a test double for prefs.Store.
type StubPrefsStore struct {
	mu      sync.Mutex
	Records map[string]alerts.AlertPreferences
	LoadErr error
	SaveErr error
	Saves   int
}

// Load returns the stored record for the user if present.
func (s *StubPrefsStore) Load(ctx context.Context, userID string) (alerts.AlertPreferences, bool, error) {
	_ = ctx
	if s.LoadErr != nil {
		return alerts.AlertPreferences{}, false, s.LoadErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.Records[userID]
	return p, ok, nil
}

// Save stores the record, tracking call counts.
func (s *StubPrefsStore) Save(ctx context.Context, userID string, p alerts.AlertPreferences) error {
	_ = ctx
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Records == nil {
		s.Records = make(map[string]alerts.AlertPreferences)
	}
	s.Records[userID] = p
	s.Saves++
	return nil
}
