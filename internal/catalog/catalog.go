// Package catalog is the data-driven registry of alertable event types per
// sport. Each sport maps to a set of descriptors; the rules engine asks the
// catalog how to turn an event-type key into a number for a given match,
// instead of branching per sport and per kind.
package catalog

import "match-alerts-service/internal/domain"

// ValueKind tells the extractor how an event type's actual value is computed.
type ValueKind string

const (
	// KindScore reads the team score directly.
	KindScore ValueKind = "score"
	// KindEventCount counts match events of a specific EventKind.
	KindEventCount ValueKind = "eventCount"
	// KindScoreDifference reads the absolute score difference.
	KindScoreDifference ValueKind = "scoreDifference"
	// KindMatchMinute reads the current play-clock minute.
	KindMatchMinute ValueKind = "matchMinute"
	// KindFullTime reads 1 when the match is completed, 0 otherwise.
	KindFullTime ValueKind = "fullTime"
)

// EventTypeDescriptor describes one alertable event type for a sport.
// HasData marks whether the feed actually carries the underlying data; types
// without data extract to 0 so a configured condition degrades to "never
// fires" instead of failing evaluation.
type EventTypeDescriptor struct {
	Key     string
	Label   string
	Kind    ValueKind
	Event   domain.EventKind
	HasData bool
}

var sports = map[string][]EventTypeDescriptor{
	"soccer": {
		{Key: "goals", Label: "Goals", Kind: KindScore, HasData: true},
		{Key: "redCards", Label: "Red cards", Kind: KindEventCount, Event: domain.EventRedCard, HasData: true},
		{Key: "yellowCards", Label: "Yellow cards", Kind: KindEventCount, Event: domain.EventYellowCard, HasData: true},
		{Key: "substitutions", Label: "Substitutions", Kind: KindEventCount, Event: domain.EventSubstitution, HasData: true},
		{Key: "scoreDifference", Label: "Goal difference", Kind: KindScoreDifference, HasData: true},
		{Key: "matchMinute", Label: "Match minute", Kind: KindMatchMinute, HasData: true},
		{Key: "halfTime", Label: "Half time", Kind: KindEventCount, Event: domain.EventHalfTime, HasData: true},
		{Key: "fullTime", Label: "Full time", Kind: KindFullTime, HasData: true},
		// No corner data in the current feed.
		{Key: "corners", Label: "Corners", Kind: KindEventCount, HasData: false},
	},
	"basketball": {
		{Key: "points", Label: "Points", Kind: KindScore, HasData: true},
		{Key: "scoreDifference", Label: "Point difference", Kind: KindScoreDifference, HasData: true},
		{Key: "fullTime", Label: "Final", Kind: KindFullTime, HasData: true},
	},
	"hockey": {
		{Key: "goals", Label: "Goals", Kind: KindScore, HasData: true},
		{Key: "scoreDifference", Label: "Goal difference", Kind: KindScoreDifference, HasData: true},
		{Key: "fullTime", Label: "Final", Kind: KindFullTime, HasData: true},
		// Penalty minutes are not in the current feed.
		{Key: "penalties", Label: "Penalties", Kind: KindEventCount, HasData: false},
	},
}

// Sports lists the sport keys with a catalog entry.
func Sports() []string {
	keys := make([]string, 0, len(sports))
	for k := range sports {
		keys = append(keys, k)
	}
	return keys
}

// EventTypes returns the descriptors for a sport, or nil for an unknown
// sport.
func EventTypes(sport string) []EventTypeDescriptor {
	return sports[sport]
}

// Lookup finds the descriptor for an event-type key within a sport.
func Lookup(sport, key string) (EventTypeDescriptor, bool) {
	for _, d := range sports[sport] {
		if d.Key == key {
			return d, true
		}
	}
	return EventTypeDescriptor{}, false
}

// ScoreTypeKey returns the sport's score-type event key ("goals", "points").
func ScoreTypeKey(sport string) (string, bool) {
	for _, d := range sports[sport] {
		if d.Kind == KindScore {
			return d.Key, true
		}
	}
	return "", false
}
