// Package feed maintains the canonical in-memory match state that inbound
// poll results and push messages are merged into. All mutation goes through
// one Reconciler so readers always observe fully applied updates.
package feed

import (
	"strings"
	"sync"

	"match-alerts-service/internal/domain"
)

// Reconciler keeps thread-safe live and upcoming match sets keyed by match
// id. Upserts are last-write-wins on the whole snapshot; event appends
// preserve arrival order. The idempotent upsert is the correctness backstop
// for a push channel with no delivery guarantees.
type Reconciler struct {
	mu       sync.RWMutex
	live     map[string]domain.Match
	upcoming map[string]domain.Match
}

// NewReconciler constructs an empty Reconciler.
func NewReconciler() *Reconciler {
	return &Reconciler{
		live:     make(map[string]domain.Match),
		upcoming: make(map[string]domain.Match),
	}
}

// UpsertLive merges one live-match snapshot into the live set and reports
// whether it was applied.
//
// A snapshot with a known id replaces the stored one entirely. A snapshot
// with a new id is first checked against existing live matches by team pair
// (same two team names in either order); sources occasionally surface the
// same match under two ids, and the second arrival is discarded rather than
// double-counted. A snapshot whose status has moved past LIVE removes the
// match from the live set.
func (r *Reconciler) UpsertLive(m domain.Match) bool {
	if m.ID == "" {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	// LIVE promotes the match out of upcoming; COMPLETED clears one that
	// finished without ever being seen live, so upcoming cannot leak.
	if m.Status != domain.StatusScheduled {
		delete(r.upcoming, m.ID)
	}

	if _, known := r.live[m.ID]; !known {
		if m.Status != domain.StatusLive {
			return false
		}
		if r.teamPairExistsLocked(m) {
			return false
		}
		r.live[m.ID] = m
		return true
	}

	if m.Status != domain.StatusLive {
		delete(r.live, m.ID)
		return true
	}
	r.live[m.ID] = m
	return true
}

// UpsertUpcoming records a scheduled match, unless it is already live.
func (r *Reconciler) UpsertUpcoming(m domain.Match) {
	if m.ID == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, isLive := r.live[m.ID]; isLive {
		return
	}
	r.upcoming[m.ID] = m
}

// AppendEvent appends one event to a live match's event list and reports
// whether the match was found. An event for an unknown match is dropped:
// the channel may deliver events before the snapshot that introduces the
// match, and the next snapshot carries the full list anyway.
func (r *Reconciler) AppendEvent(matchID string, ev domain.MatchEvent) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.live[matchID]
	if !ok {
		return false
	}
	m.Events = append(m.Events, ev)
	r.live[matchID] = m
	return true
}

// LiveMatches returns a copy of the live set.
func (r *Reconciler) LiveMatches() []domain.Match {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyMatches(r.live)
}

// UpcomingMatches returns a copy of the upcoming set.
func (r *Reconciler) UpcomingMatches() []domain.Match {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyMatches(r.upcoming)
}

// GetMatch retrieves a match by id from the live set, then the upcoming set.
func (r *Reconciler) GetMatch(id string) (domain.Match, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if m, ok := r.live[id]; ok {
		return cloneMatch(m), true
	}
	if m, ok := r.upcoming[id]; ok {
		return cloneMatch(m), true
	}
	return domain.Match{}, false
}

// LiveCount returns the size of the live set.
func (r *Reconciler) LiveCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.live)
}

func (r *Reconciler) teamPairExistsLocked(m domain.Match) bool {
	key := teamPairKey(m.HomeTeam.Name, m.AwayTeam.Name)
	for _, existing := range r.live {
		if teamPairKey(existing.HomeTeam.Name, existing.AwayTeam.Name) == key {
			return true
		}
	}
	return false
}

// teamPairKey normalizes a home/away name pair so that the same match
// arriving with the sides swapped still collides.
func teamPairKey(a, b string) string {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a > b {
		a, b = b, a
	}
	return a + "|" + b
}

func copyMatches(src map[string]domain.Match) []domain.Match {
	out := make([]domain.Match, 0, len(src))
	for _, m := range src {
		out = append(out, cloneMatch(m))
	}
	return out
}

// cloneMatch copies the match including its event slice so callers can never
// observe a partially appended event list.
func cloneMatch(m domain.Match) domain.Match {
	if len(m.Events) > 0 {
		events := make([]domain.MatchEvent, len(m.Events))
		copy(events, m.Events)
		m.Events = events
	}
	return m
}
