package fixture

import (
	"context"
	"testing"
	"time"

	"match-alerts-service/internal/domain"
	"match-alerts-service/internal/testutil"
)

func TestFetchLive(t *testing.T) {
	p := New()
	matches, err := p.FetchLive(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected 2 live matches, got %d", len(matches))
	}
	for _, m := range matches {
		if !m.IsLive() || m.ID == "" || m.Provider != "fixture" {
			t.Fatalf("unexpected live match %+v", m)
		}
	}

	soccer := matches[0]
	if soccer.Sport != "soccer" || soccer.ClockMinute() != 78 {
		t.Fatalf("unexpected soccer fixture %+v", soccer)
	}
	if got := soccer.CountEvents(domain.EventGoal, ""); got != 3 {
		t.Fatalf("expected 3 goal events, got %d", got)
	}
}

func TestFetchUpcoming(t *testing.T) {
	now := testutil.MustParseRFC3339("2025-03-01T15:30:00Z")
	p := New()
	p.now = testutil.NowAt(now)

	matches, err := p.FetchUpcoming(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected 2 upcoming matches, got %d", len(matches))
	}
	for _, m := range matches {
		if m.Status != domain.StatusScheduled {
			t.Fatalf("expected scheduled status, got %+v", m)
		}
		start, err := time.Parse(time.RFC3339, m.StartTime)
		if err != nil {
			t.Fatalf("unparseable start time %q: %v", m.StartTime, err)
		}
		if !start.After(now) {
			t.Fatalf("expected future start, got %v", start)
		}
	}
}
