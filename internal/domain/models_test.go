package domain

import "testing"

func TestClockMinute(t *testing.T) {
	m := Match{}
	if got := m.ClockMinute(); got != 0 {
		t.Fatalf("expected 0 for missing clock, got %d", got)
	}
	minute := 78
	m.Minute = &minute
	if got := m.ClockMinute(); got != 78 {
		t.Fatalf("expected 78, got %d", got)
	}
}

func TestIsLive(t *testing.T) {
	cases := []struct {
		status MatchStatus
		want   bool
	}{
		{StatusScheduled, false},
		{StatusLive, true},
		{StatusCompleted, false},
	}
	for _, tc := range cases {
		if got := (Match{Status: tc.status}).IsLive(); got != tc.want {
			t.Fatalf("status %s: expected %v, got %v", tc.status, tc.want, got)
		}
	}
}

func TestCountEvents(t *testing.T) {
	m := Match{
		HomeTeam: Team{ID: "home"},
		AwayTeam: Team{ID: "away"},
		Events: []MatchEvent{
			{Kind: EventGoal, TeamID: "home", Minute: 12},
			{Kind: EventGoal, TeamID: "away", Minute: 30},
			{Kind: EventRedCard, TeamID: "away", Minute: 55},
			{Kind: EventGoal, TeamID: "home", Minute: 70},
		},
	}

	cases := []struct {
		name   string
		kind   EventKind
		teamID string
		want   int
	}{
		{"goals both teams", EventGoal, "", 3},
		{"goals home", EventGoal, "home", 2},
		{"goals away", EventGoal, "away", 1},
		{"red cards away", EventRedCard, "away", 1},
		{"red cards home", EventRedCard, "home", 0},
		{"missing kind", EventSubstitution, "", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := m.CountEvents(tc.kind, tc.teamID); got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}
