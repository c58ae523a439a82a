package testutil

import (
	"match-alerts-service/internal/domain"
)

// SampleMatch returns a minimal live soccer match fixture with the provided id.
func SampleMatch(id string) domain.Match {
	return domain.Match{
		ID:        id,
		Provider:  "test",
		Sport:     "soccer",
		League:    "premier-league",
		HomeTeam:  domain.Team{ID: "home", Name: "Home FC"},
		AwayTeam:  domain.Team{ID: "away", Name: "Away FC"},
		Status:    domain.StatusLive,
		Score:     domain.Score{Home: 0, Away: 0},
		StartTime: "2025-03-01T15:00:00Z",
	}
}

// LiveMatch returns a live match with the given score and clock minute.
func LiveMatch(id string, home, away, minute int) domain.Match {
	m := SampleMatch(id)
	m.Score = domain.Score{Home: home, Away: away}
	m.Minute = &minute
	return m
}

// ScheduledMatch returns an upcoming match fixture with the provided id.
func ScheduledMatch(id string) domain.Match {
	m := SampleMatch(id)
	m.Status = domain.StatusScheduled
	return m
}

// GoalEvent returns a goal event for the given team at the given minute.
func GoalEvent(teamID string, minute int) domain.MatchEvent {
	return domain.MatchEvent{Kind: domain.EventGoal, TeamID: teamID, Minute: minute, Player: "Player"}
}
