package teststubs

import (
	"context"
	"errors"
	"testing"

	"match-alerts-service/internal/domain"
	"match-alerts-service/internal/domain/alerts"
)

func TestStubProviderTracksCalls(t *testing.T) {
	err := errors.New("boom")
	p := &StubProvider{Live: []domain.Match{{ID: "m1"}}, LiveErr: err}
	if _, got := p.FetchLive(context.Background()); !errors.Is(got, err) {
		t.Fatalf("expected error passthrough, got %v", got)
	}
	if p.Calls.Load() != 1 {
		t.Fatalf("expected call count 1, got %d", p.Calls.Load())
	}
}

func TestStubPrefsStoreRoundTrip(t *testing.T) {
	s := &StubPrefsStore{}
	if _, found, err := s.Load(context.Background(), "u1"); err != nil || found {
		t.Fatalf("expected no record, found=%v err=%v", found, err)
	}

	want := alerts.Defaults()
	if err := s.Save(context.Background(), "u1", want); err != nil {
		t.Fatalf("expected save success, got %v", err)
	}
	got, found, err := s.Load(context.Background(), "u1")
	if err != nil || !found {
		t.Fatalf("expected record, found=%v err=%v", found, err)
	}
	if len(got.Sports) != len(want.Sports) {
		t.Fatalf("unexpected record %+v", got)
	}
	if s.Saves != 1 {
		t.Fatalf("expected one save, got %d", s.Saves)
	}
}
