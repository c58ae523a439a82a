package push

import "match-alerts-service/internal/domain"

// Message types delivered by the push channel.
const (
	TypeMatchUpdate = "matchUpdate"
	TypeNewEvent    = "newEvent"
)

// Message is the envelope for one push-channel payload. Exactly one of
// Match or Event is set, depending on Type.
type Message struct {
	Type  string        `json:"type"`
	Match *domain.Match `json:"match,omitempty"`
	Event *EventMessage `json:"event,omitempty"`
}

// EventMessage is a discrete match event plus the id of the match it
// belongs to.
type EventMessage struct {
	MatchID string           `json:"matchId"`
	Kind    domain.EventKind `json:"kind"`
	TeamID  string           `json:"teamId"`
	Minute  int              `json:"minute"`
	Player  string           `json:"player,omitempty"`
}
