// Package fixture returns a static set of matches useful for local testing
// and bootstrapping without an upstream feed.
package fixture

import (
	"context"
	"time"

	"match-alerts-service/internal/domain"
)

// Provider serves deterministic example matches.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{now: time.Now}
}

// FetchLive returns a deterministic set of in-play matches.
func (p *Provider) FetchLive(ctx context.Context) ([]domain.Match, error) {
	_ = ctx
	minute := 78

	return []domain.Match{
		{
			ID:       "fixture-1",
			Provider: "fixture",
			Sport:    "soccer",
			League:   "premier-league",
			HomeTeam: domain.Team{ID: "ars", Name: "Arsenal"},
			AwayTeam: domain.Team{ID: "che", Name: "Chelsea"},
			Score:    domain.Score{Home: 2, Away: 1},
			Status:   domain.StatusLive,
			Minute:   &minute,
			Events: []domain.MatchEvent{
				{Kind: domain.EventGoal, TeamID: "ars", Minute: 12, Player: "Saka"},
				{Kind: domain.EventGoal, TeamID: "che", Minute: 34, Player: "Palmer"},
				{Kind: domain.EventYellowCard, TeamID: "che", Minute: 41},
				{Kind: domain.EventGoal, TeamID: "ars", Minute: 67, Player: "Havertz"},
			},
		},
		{
			ID:       "fixture-2",
			Provider: "fixture",
			Sport:    "basketball",
			League:   "nba",
			HomeTeam: domain.Team{ID: "bos", Name: "Celtics"},
			AwayTeam: domain.Team{ID: "lal", Name: "Lakers"},
			Score:    domain.Score{Home: 88, Away: 79},
			Status:   domain.StatusLive,
		},
	}, nil
}

// FetchUpcoming returns a deterministic set of scheduled matches.
func (p *Provider) FetchUpcoming(ctx context.Context) ([]domain.Match, error) {
	_ = ctx
	start := p.now().UTC().Truncate(time.Hour)

	return []domain.Match{
		{
			ID:        "fixture-3",
			Provider:  "fixture",
			Sport:     "soccer",
			League:    "la-liga",
			HomeTeam:  domain.Team{ID: "rma", Name: "Real Madrid"},
			AwayTeam:  domain.Team{ID: "bar", Name: "Barcelona"},
			Status:    domain.StatusScheduled,
			StartTime: start.Add(2 * time.Hour).Format(time.RFC3339),
		},
		{
			ID:        "fixture-4",
			Provider:  "fixture",
			Sport:     "hockey",
			League:    "nhl",
			HomeTeam:  domain.Team{ID: "tor", Name: "Maple Leafs"},
			AwayTeam:  domain.Team{ID: "mtl", Name: "Canadiens"},
			Status:    domain.StatusScheduled,
			StartTime: start.Add(4 * time.Hour).Format(time.RFC3339),
		},
	}, nil
}
