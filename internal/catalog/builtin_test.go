package catalog

import (
	"testing"

	"match-alerts-service/internal/domain/alerts"
)

func builtinIDs(list []alerts.Alert) map[string]alerts.Alert {
	out := make(map[string]alerts.Alert, len(list))
	for _, a := range list {
		out[a.ID] = a
	}
	return out
}

func TestBuiltinAlertsDisabledSettingsProduceNothing(t *testing.T) {
	if got := BuiltinAlerts("soccer", alerts.SportSettings{}); len(got) != 0 {
		t.Fatalf("expected no alerts for all-off settings, got %v", got)
	}
}

func TestBuiltinAlertsSoccer(t *testing.T) {
	s := alerts.SportSettings{
		GoalAlerts:       true,
		RedCardAlerts:    true,
		DifferenceAlerts: true,
		LateGameAlerts:   true,
		HalfTimeAlerts:   true,
		FullTimeAlerts:   true,
	}
	got := builtinIDs(BuiltinAlerts("soccer", s))
	if len(got) != 6 {
		t.Fatalf("expected 6 alerts, got %d", len(got))
	}

	goal, ok := got["builtin:soccer:goal"]
	if !ok || goal.Conditions[0].EventType != "goals" || goal.Conditions[0].Threshold != 1 {
		t.Fatalf("unexpected goal alert %+v", goal)
	}
	if goal.Conditions[0].Team != alerts.TeamAny {
		t.Fatalf("expected any-team goal alert, got %+v", goal.Conditions[0])
	}

	// Unset thresholds fall back to conventional defaults.
	diff := got["builtin:soccer:difference"]
	if diff.Conditions[0].Threshold != 2 {
		t.Fatalf("expected default difference threshold 2, got %d", diff.Conditions[0].Threshold)
	}
	late := got["builtin:soccer:late-game"]
	if late.Conditions[0].Threshold != 80 {
		t.Fatalf("expected default late-game minute 80, got %d", late.Conditions[0].Threshold)
	}

	half := got["builtin:soccer:half-time"]
	if half.Conditions[0].EventType != "halfTime" || half.Conditions[0].Threshold != 1 {
		t.Fatalf("unexpected half-time alert %+v", half)
	}

	full := got["builtin:soccer:full-time"]
	if full.Conditions[0].Comparison != alerts.CompareEquals || full.Conditions[0].Threshold != 1 {
		t.Fatalf("unexpected full-time alert %+v", full)
	}
}

func TestBuiltinAlertsHonorConfiguredThresholds(t *testing.T) {
	s := alerts.SportSettings{
		DifferenceAlerts:    true,
		DifferenceThreshold: 5,
		LateGameAlerts:      true,
		LateGameMinute:      88,
	}
	got := builtinIDs(BuiltinAlerts("soccer", s))
	if got["builtin:soccer:difference"].Conditions[0].Threshold != 5 {
		t.Fatalf("expected configured difference threshold 5")
	}
	if got["builtin:soccer:late-game"].Conditions[0].Threshold != 88 {
		t.Fatalf("expected configured late-game minute 88")
	}
}

func TestBuiltinAlertsSkipUncatalogedTypes(t *testing.T) {
	// Basketball has no card events, no match clock, and no half-time entry
	// in the catalog, so those toggles expand to nothing.
	s := alerts.SportSettings{
		GoalAlerts:       true,
		RedCardAlerts:    true,
		YellowCardAlerts: true,
		LateGameAlerts:   true,
		HalfTimeAlerts:   true,
		FullTimeAlerts:   true,
	}
	got := builtinIDs(BuiltinAlerts("basketball", s))
	if len(got) != 2 {
		t.Fatalf("expected 2 alerts (score, full time), got %v", got)
	}
	if _, ok := got["builtin:basketball:goal"]; !ok {
		t.Fatalf("expected score alert, got %v", got)
	}
	if got["builtin:basketball:goal"].Conditions[0].EventType != "points" {
		t.Fatalf("expected points score type for basketball")
	}
	if _, ok := got["builtin:basketball:full-time"]; !ok {
		t.Fatalf("expected full-time alert, got %v", got)
	}
}

func TestBuiltinAlertsAreValid(t *testing.T) {
	s := alerts.SportSettings{
		GoalAlerts: true, RedCardAlerts: true, YellowCardAlerts: true,
		DifferenceAlerts: true, LateGameAlerts: true,
		HalfTimeAlerts: true, FullTimeAlerts: true,
	}
	for _, sport := range Sports() {
		for _, a := range BuiltinAlerts(sport, s) {
			if err := a.Validate(); err != nil {
				t.Fatalf("%s: built-in %s invalid: %v", sport, a.ID, err)
			}
			if !a.Enabled {
				t.Fatalf("%s: built-in %s should be enabled", sport, a.ID)
			}
		}
	}
}
