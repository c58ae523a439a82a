package sportsfeed

import (
	"errors"
	"strings"

	"match-alerts-service/internal/domain"
)

var errMalformedRecord = errors.New("malformed match record")

// mapMatches converts a batch of upstream records, dropping malformed ones.
// It returns the mapped matches and how many records were dropped; a bad
// record never aborts the batch.
func mapMatches(records []matchRecord) ([]domain.Match, int) {
	matches := make([]domain.Match, 0, len(records))
	dropped := 0
	for _, rec := range records {
		m, err := mapMatch(rec)
		if err != nil {
			dropped++
			continue
		}
		matches = append(matches, m)
	}
	return matches, dropped
}

func mapMatch(rec matchRecord) (domain.Match, error) {
	if rec.ID == "" || rec.HomeTeam.Name == "" || rec.AwayTeam.Name == "" {
		return domain.Match{}, errMalformedRecord
	}
	if rec.HomeScore == nil || rec.AwayScore == nil {
		return domain.Match{}, errMalformedRecord
	}

	events := make([]domain.MatchEvent, 0, len(rec.Events))
	for _, ev := range rec.Events {
		if ev.Minute < 0 {
			continue
		}
		events = append(events, domain.MatchEvent{
			Kind:   domain.EventKind(ev.Kind),
			TeamID: ev.TeamID,
			Minute: ev.Minute,
			Player: ev.Player,
		})
	}

	return domain.Match{
		ID:        ProviderName + "-" + rec.ID,
		Provider:  ProviderName,
		Sport:     rec.Sport,
		League:    rec.League,
		HomeTeam:  domain.Team{ID: rec.HomeTeam.ID, Name: rec.HomeTeam.Name},
		AwayTeam:  domain.Team{ID: rec.AwayTeam.ID, Name: rec.AwayTeam.Name},
		Score:     domain.Score{Home: *rec.HomeScore, Away: *rec.AwayScore},
		Status:    mapStatus(rec.Status),
		Minute:    rec.Minute,
		StartTime: rec.StartTime,
		Events:    events,
	}, nil
}

func mapStatus(status string) domain.MatchStatus {
	switch strings.ToLower(status) {
	case "live", "in progress", "halftime":
		return domain.StatusLive
	case "completed", "final", "ended":
		return domain.StatusCompleted
	default:
		return domain.StatusScheduled
	}
}
