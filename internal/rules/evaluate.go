package rules

import (
	"log/slog"

	"match-alerts-service/internal/catalog"
	"match-alerts-service/internal/domain"
	"match-alerts-service/internal/domain/alerts"
)

// Evaluator runs alert definitions against matches. It holds no mutable
// state; the logger is only used to surface configuration errors that are
// otherwise swallowed as "condition false".
type Evaluator struct {
	logger *slog.Logger
}

// NewEvaluator constructs an Evaluator. The logger may be nil.
func NewEvaluator(logger *slog.Logger) *Evaluator {
	return &Evaluator{logger: logger}
}

// AlertFires reports whether a single alert fires for the match.
//
// The first condition's team scope, when home or away, is remembered so that
// later conditions scoped "other" resolve to the opposite side. When the
// first condition is scoped "any", "other" has no referent and degrades to
// "any" as well.
func (e *Evaluator) AlertFires(a alerts.Alert, m domain.Match) bool {
	if !a.Enabled || len(a.Conditions) == 0 {
		return false
	}

	firstTeam := a.Conditions[0].Team
	if firstTeam == alerts.TeamOther {
		// Not a valid scope for the first condition; validation rejects it
		// on write, so only legacy stored data can reach here.
		firstTeam = alerts.TeamAny
	}

	combined := a.Operator == alerts.OperatorAnd
	for i, cond := range a.Conditions {
		scope := cond.Team
		if scope == alerts.TeamOther {
			scope = opposite(firstTeam)
		}
		if i == 0 {
			scope = firstTeam
		}

		pass := e.conditionPasses(cond, scope, m)
		if a.Operator == alerts.OperatorOr {
			combined = combined || pass
		} else {
			combined = combined && pass
		}
	}
	return combined
}

func (e *Evaluator) conditionPasses(cond alerts.Condition, scope alerts.TeamScope, m domain.Match) bool {
	actual, err := ActualValue(cond, scope, m)
	if err != nil {
		e.logConfigError(cond, m, err)
		return false
	}
	ok, err := Compare(actual, cond.Comparison, cond.Threshold)
	if err != nil {
		e.logConfigError(cond, m, err)
		return false
	}
	return ok
}

func opposite(scope alerts.TeamScope) alerts.TeamScope {
	switch scope {
	case alerts.TeamHome:
		return alerts.TeamAway
	case alerts.TeamAway:
		return alerts.TeamHome
	default:
		return alerts.TeamAny
	}
}

// MatchAlerts returns every enabled alert, built-in or custom, that fires
// for the match under the given preferences. A nil or empty result means the
// match is not alertable for this user.
func (e *Evaluator) MatchAlerts(prefs alerts.AlertPreferences, m domain.Match) []alerts.Alert {
	if !prefs.Sports[m.Sport] {
		return nil
	}
	settings := prefs.Settings[m.Sport]
	if len(settings.Leagues) > 0 && !settings.Leagues[m.League] {
		return nil
	}

	var fired []alerts.Alert
	for _, a := range catalog.BuiltinAlerts(m.Sport, settings) {
		if e.AlertFires(a, m) {
			fired = append(fired, a)
		}
	}
	for _, a := range prefs.CustomAlerts {
		if e.AlertFires(a, m) {
			fired = append(fired, a)
		}
	}
	return fired
}

// Alertable reports whether at least one alert fires for the match.
func (e *Evaluator) Alertable(prefs alerts.AlertPreferences, m domain.Match) bool {
	return len(e.MatchAlerts(prefs, m)) > 0
}

func (e *Evaluator) logConfigError(cond alerts.Condition, m domain.Match, err error) {
	if e.logger == nil {
		return
	}
	e.logger.Warn("condition skipped",
		slog.String("event_type", cond.EventType),
		slog.String("sport", m.Sport),
		slog.String("match_id", m.ID),
		"error", err,
	)
}
