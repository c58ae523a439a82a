package prefs

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"match-alerts-service/internal/domain/alerts"
	prefstore "match-alerts-service/internal/prefs"
	"match-alerts-service/internal/teststubs"
)

func newTestService(store prefstore.Store) *Service {
	s := NewService(store)
	n := 0
	s.newID = func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	return s
}

func customAlert(eventType string, threshold int) alerts.Alert {
	return alerts.Alert{
		Name:     "custom",
		Enabled:  true,
		Operator: alerts.OperatorAnd,
		Conditions: []alerts.Condition{
			{EventType: eventType, Team: alerts.TeamAny, Comparison: alerts.CompareGreaterOrEqual, Threshold: threshold},
		},
	}
}

func TestGetReturnsDefaultsForNewUser(t *testing.T) {
	svc := newTestService(prefstore.NewMemoryStore())
	p, err := svc.Get(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Sports == nil || p.Settings == nil || p.CustomAlerts == nil {
		t.Fatalf("expected renderable defaults, got %+v", p)
	}
	if len(p.Sports) != 0 {
		t.Fatalf("expected no sports selected, got %v", p.Sports)
	}
}

func TestGetRepairsNilCollections(t *testing.T) {
	store := &teststubs.StubPrefsStore{
		Records: map[string]alerts.AlertPreferences{
			"u1": {Sports: map[string]bool{"soccer": true}},
		},
	}
	svc := newTestService(store)
	p, err := svc.Get(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Settings == nil || p.CustomAlerts == nil {
		t.Fatalf("expected nil collections repaired, got %+v", p)
	}
}

func TestGetPropagatesStoreError(t *testing.T) {
	boom := errors.New("backend down")
	svc := newTestService(&teststubs.StubPrefsStore{LoadErr: boom})
	if _, err := svc.Get(context.Background(), "u1"); !errors.Is(err, boom) {
		t.Fatalf("expected store error, got %v", err)
	}
}

func TestSaveMergesAndPersists(t *testing.T) {
	store := prefstore.NewMemoryStore()
	svc := newTestService(store)
	ctx := context.Background()

	first, err := svc.Save(ctx, "u1", alerts.AlertPreferences{
		Sports:   map[string]bool{"soccer": true},
		Settings: map[string]alerts.SportSettings{"soccer": {GoalAlerts: true}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !first.Sports["soccer"] {
		t.Fatalf("unexpected result %+v", first)
	}

	// A later partial update keeps what it does not touch.
	second, err := svc.Save(ctx, "u1", alerts.AlertPreferences{
		Sports: map[string]bool{"hockey": true},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !second.Sports["soccer"] || !second.Sports["hockey"] {
		t.Fatalf("expected merged sports, got %v", second.Sports)
	}
	if !second.Settings["soccer"].GoalAlerts {
		t.Fatalf("expected untouched settings preserved, got %+v", second.Settings)
	}
}

func TestSaveAssignsAlertIDs(t *testing.T) {
	svc := newTestService(prefstore.NewMemoryStore())
	got, err := svc.Save(context.Background(), "u1", alerts.AlertPreferences{
		CustomAlerts: []alerts.Alert{customAlert("goals", 2)},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.CustomAlerts[0].ID != "id-1" {
		t.Fatalf("expected generated id, got %q", got.CustomAlerts[0].ID)
	}
}

func TestSaveRejectsInvalidDocument(t *testing.T) {
	svc := newTestService(prefstore.NewMemoryStore())
	_, err := svc.Save(context.Background(), "u1", alerts.AlertPreferences{
		Settings: map[string]alerts.SportSettings{"soccer": {DifferenceThreshold: -1}},
	})
	if !errors.Is(err, alerts.ErrInvalidPreferences) {
		t.Fatalf("expected ErrInvalidPreferences, got %v", err)
	}
}

func TestSaveUnchangedIsConflict(t *testing.T) {
	svc := newTestService(prefstore.NewMemoryStore())
	ctx := context.Background()

	update := alerts.AlertPreferences{Sports: map[string]bool{"soccer": true}}
	if _, err := svc.Save(ctx, "u1", update); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := svc.Save(ctx, "u1", update)
	if !errors.Is(err, prefstore.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate for unchanged write, got %v", err)
	}
}

func TestSaveFirstWriteOfDefaultsIsNotConflict(t *testing.T) {
	// The very first save may equal the defaults; it still persists so the
	// user's record exists.
	svc := newTestService(prefstore.NewMemoryStore())
	if _, err := svc.Save(context.Background(), "u1", alerts.AlertPreferences{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestQuickAddAppendsWithGeneratedID(t *testing.T) {
	store := prefstore.NewMemoryStore()
	svc := newTestService(store)
	ctx := context.Background()

	stored, err := svc.QuickAdd(ctx, "u1", customAlert("goals", 2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.ID != "id-1" {
		t.Fatalf("expected generated id, got %q", stored.ID)
	}

	list, err := svc.ListCustom(ctx, "u1")
	if err != nil || len(list) != 1 {
		t.Fatalf("expected one stored alert, got %v err %v", list, err)
	}
}

func TestQuickAddDuplicateRuleIsConflict(t *testing.T) {
	svc := newTestService(prefstore.NewMemoryStore())
	ctx := context.Background()

	if _, err := svc.QuickAdd(ctx, "u1", customAlert("goals", 2)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Identical rule content under a different name is still a duplicate.
	dup := customAlert("goals", 2)
	dup.Name = "renamed"
	_, err := svc.QuickAdd(ctx, "u1", dup)
	if !errors.Is(err, prefstore.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}

	list, err := svc.ListCustom(ctx, "u1")
	if err != nil || len(list) != 1 {
		t.Fatalf("expected stored list untouched, got %v err %v", list, err)
	}

	// A different threshold is a different rule.
	if _, err := svc.QuickAdd(ctx, "u1", customAlert("goals", 3)); err != nil {
		t.Fatalf("expected distinct rule accepted, got %v", err)
	}
}

func TestQuickAddRejectsInvalidAlert(t *testing.T) {
	svc := newTestService(prefstore.NewMemoryStore())
	bad := customAlert("goals", 2)
	bad.Operator = "XOR"
	_, err := svc.QuickAdd(context.Background(), "u1", bad)
	if !errors.Is(err, alerts.ErrInvalidPreferences) {
		t.Fatalf("expected ErrInvalidPreferences, got %v", err)
	}
}
