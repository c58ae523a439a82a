package domain

// MatchStatus mirrors the shared contract for match lifecycle states.
type MatchStatus string

const (
	StatusScheduled MatchStatus = "SCHEDULED"
	StatusLive      MatchStatus = "LIVE"
	StatusCompleted MatchStatus = "COMPLETED"
)

// EventKind identifies one kind of in-match occurrence. The set is open and
// sport-dependent; the constants below cover the kinds the evaluator knows
// how to count.
type EventKind string

const (
	EventGoal         EventKind = "GOAL"
	EventRedCard      EventKind = "RED_CARD"
	EventYellowCard   EventKind = "YELLOW_CARD"
	EventSubstitution EventKind = "SUBSTITUTION"
	EventHalfTime     EventKind = "HALF_TIME"
)

// Team represents the normalized team shape.
type Team struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Score captures home and away points.
type Score struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// MatchEvent is one discrete occurrence within a match. Events are immutable
// once created and are only ever appended to a match's event list.
// Minute may exceed regulation length to represent stoppage time.
type MatchEvent struct {
	Kind   EventKind `json:"kind"`
	TeamID string    `json:"teamId"`
	Minute int       `json:"minute"`
	Player string    `json:"player,omitempty"`
}

// Match is the canonical point-in-time view of one match.
// Minute is nil for sports without a running clock.
type Match struct {
	ID        string       `json:"id"`
	Provider  string       `json:"provider"`
	Sport     string       `json:"sport"`
	League    string       `json:"league"`
	HomeTeam  Team         `json:"homeTeam"`
	AwayTeam  Team         `json:"awayTeam"`
	Score     Score        `json:"score"`
	Status    MatchStatus  `json:"status"`
	Minute    *int         `json:"minute,omitempty"`
	StartTime string       `json:"startTime"`
	Events    []MatchEvent `json:"events,omitempty"`
}

// IsLive reports whether the match is currently in play.
func (m Match) IsLive() bool {
	return m.Status == StatusLive
}

// ClockMinute returns the current play-clock minute, or 0 when the sport has
// no clock or the feed has not reported one yet.
func (m Match) ClockMinute() int {
	if m.Minute == nil {
		return 0
	}
	return *m.Minute
}

// CountEvents returns how many events of the given kind belong to teamID.
// An empty teamID counts events for both teams.
func (m Match) CountEvents(kind EventKind, teamID string) int {
	count := 0
	for _, ev := range m.Events {
		if ev.Kind != kind {
			continue
		}
		if teamID != "" && ev.TeamID != teamID {
			continue
		}
		count++
	}
	return count
}
