package prefs

import (
	"context"
	"testing"

	"match-alerts-service/internal/domain/alerts"
)

func existingPrefs() alerts.AlertPreferences {
	return alerts.AlertPreferences{
		Sports: map[string]bool{"soccer": true, "hockey": false},
		Settings: map[string]alerts.SportSettings{
			"soccer": {
				GoalAlerts:          true,
				DifferenceThreshold: 2,
				Leagues:             map[string]bool{"premier-league": true},
			},
		},
		CustomAlerts: []alerts.Alert{customAlert("a1", "goals", 2)},
	}
}

func customAlert(id, eventType string, threshold int) alerts.Alert {
	return alerts.Alert{
		ID:       id,
		Name:     id,
		Enabled:  true,
		Operator: alerts.OperatorAnd,
		Conditions: []alerts.Condition{
			{EventType: eventType, Team: alerts.TeamAny, Comparison: alerts.CompareGreaterOrEqual, Threshold: threshold},
		},
	}
}

func TestMergeEmptyUpdateKeepsExisting(t *testing.T) {
	existing := existingPrefs()
	merged := Merge(existing, alerts.AlertPreferences{})
	if !merged.Sports["soccer"] || len(merged.CustomAlerts) != 1 {
		t.Fatalf("expected existing preferences preserved, got %+v", merged)
	}
	if merged.Settings["soccer"].DifferenceThreshold != 2 {
		t.Fatalf("expected existing settings preserved, got %+v", merged.Settings)
	}
}

func TestMergeSportsPerKey(t *testing.T) {
	existing := existingPrefs()
	merged := Merge(existing, alerts.AlertPreferences{
		Sports: map[string]bool{"hockey": true, "basketball": true},
	})
	if !merged.Sports["soccer"] {
		t.Fatalf("expected untouched sport preserved")
	}
	if !merged.Sports["hockey"] || !merged.Sports["basketball"] {
		t.Fatalf("expected updated sports applied, got %v", merged.Sports)
	}
	// The existing document is not mutated.
	if existing.Sports["hockey"] {
		t.Fatalf("expected input document untouched")
	}
}

func TestMergeSettingsReplacedWholesale(t *testing.T) {
	existing := existingPrefs()
	merged := Merge(existing, alerts.AlertPreferences{
		Settings: map[string]alerts.SportSettings{
			"soccer": {RedCardAlerts: true, Leagues: map[string]bool{"la-liga": true}},
		},
	})
	s := merged.Settings["soccer"]
	if s.GoalAlerts || !s.RedCardAlerts {
		t.Fatalf("expected settings block replaced, got %+v", s)
	}
	if !s.Leagues["la-liga"] || s.Leagues["premier-league"] {
		t.Fatalf("expected leagues replaced wholesale, got %v", s.Leagues)
	}
}

func TestMergeOmittedLeaguesSurvive(t *testing.T) {
	existing := existingPrefs()
	merged := Merge(existing, alerts.AlertPreferences{
		Settings: map[string]alerts.SportSettings{
			"soccer": {RedCardAlerts: true},
		},
	})
	s := merged.Settings["soccer"]
	if !s.Leagues["premier-league"] {
		t.Fatalf("expected existing leagues to survive an omitting update, got %v", s.Leagues)
	}
}

func TestMergeCustomAlertsReplacedAndDeduped(t *testing.T) {
	existing := existingPrefs()
	merged := Merge(existing, alerts.AlertPreferences{
		CustomAlerts: []alerts.Alert{
			customAlert("b1", "redCards", 1),
			customAlert("b2", "redCards", 1), // same rule content
			customAlert("b3", "goals", 3),
		},
	})
	if len(merged.CustomAlerts) != 2 {
		t.Fatalf("expected duplicate rule collapsed, got %v", merged.CustomAlerts)
	}
	if merged.CustomAlerts[0].ID != "b1" {
		t.Fatalf("expected first occurrence kept, got %v", merged.CustomAlerts[0].ID)
	}

	// An explicit empty list clears the alerts.
	cleared := Merge(existing, alerts.AlertPreferences{CustomAlerts: []alerts.Alert{}})
	if len(cleared.CustomAlerts) != 0 {
		t.Fatalf("expected alerts cleared, got %v", cleared.CustomAlerts)
	}
}

func TestDedupeAlertsKeepsDistinct(t *testing.T) {
	in := []alerts.Alert{
		customAlert("a1", "goals", 1),
		customAlert("a2", "goals", 2),
		customAlert("a3", "goals", 1),
	}
	out := DedupeAlerts(in)
	if len(out) != 2 || out[0].ID != "a1" || out[1].ID != "a2" {
		t.Fatalf("unexpected dedupe result %v", out)
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if _, found, err := s.Load(ctx, "u1"); err != nil || found {
		t.Fatalf("expected empty store, found=%v err=%v", found, err)
	}

	want := existingPrefs()
	if err := s.Save(ctx, "u1", want); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}
	got, found, err := s.Load(ctx, "u1")
	if err != nil || !found {
		t.Fatalf("expected record, found=%v err=%v", found, err)
	}
	if len(got.CustomAlerts) != 1 || !got.Sports["soccer"] {
		t.Fatalf("unexpected record %+v", got)
	}

	// Per-user isolation.
	if _, found, _ := s.Load(ctx, "u2"); found {
		t.Fatalf("expected no record for other user")
	}
}
