// Package rules evaluates alert definitions against live match state.
// Evaluation is a pure read: it never mutates the match or the preferences,
// and a misconfigured rule degrades to "does not fire" instead of failing
// the whole pass.
package rules

import (
	"errors"
	"fmt"

	"match-alerts-service/internal/catalog"
	"match-alerts-service/internal/domain"
	"match-alerts-service/internal/domain/alerts"
)

// ErrUnknownEventType marks a condition whose event type is not in the
// sport's catalog. It is a configuration error, not a runtime failure.
var ErrUnknownEventType = errors.New("unknown event type")

// ActualValue computes the number a condition compares against its
// threshold. The scope must already be resolved to any/home/away; "other"
// resolution happens in the evaluator, which knows the first condition's
// team.
//
// Catalogued event types without an underlying data source extract to 0, so
// conditions on them simply never fire.
func ActualValue(cond alerts.Condition, scope alerts.TeamScope, m domain.Match) (int, error) {
	desc, ok := catalog.Lookup(m.Sport, cond.EventType)
	if !ok {
		return 0, fmt.Errorf("%w: %q for sport %q", ErrUnknownEventType, cond.EventType, m.Sport)
	}
	if !desc.HasData {
		return 0, nil
	}

	switch desc.Kind {
	case catalog.KindScore:
		switch scope {
		case alerts.TeamHome:
			return m.Score.Home, nil
		case alerts.TeamAway:
			return m.Score.Away, nil
		default:
			return max(m.Score.Home, m.Score.Away), nil
		}
	case catalog.KindEventCount:
		return m.CountEvents(desc.Event, eventTeamID(scope, m)), nil
	case catalog.KindScoreDifference:
		return abs(m.Score.Home - m.Score.Away), nil
	case catalog.KindMatchMinute:
		return m.ClockMinute(), nil
	case catalog.KindFullTime:
		if m.Status == domain.StatusCompleted {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, fmt.Errorf("%w: unhandled value kind %q", ErrUnknownEventType, desc.Kind)
	}
}

func eventTeamID(scope alerts.TeamScope, m domain.Match) string {
	switch scope {
	case alerts.TeamHome:
		return m.HomeTeam.ID
	case alerts.TeamAway:
		return m.AwayTeam.ID
	default:
		return ""
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
