package catalog

import "match-alerts-service/internal/domain/alerts"

// BuiltinAlerts expands a sport's built-in toggles into ordinary alert
// definitions so the evaluator has a single code path for built-in and
// custom rules. Toggles whose event type the sport does not catalog are
// skipped rather than emitted as dead rules.
func BuiltinAlerts(sport string, s alerts.SportSettings) []alerts.Alert {
	var out []alerts.Alert

	add := func(id, name, eventType string, cmp alerts.Comparison, threshold int, enabled bool) {
		if !enabled {
			return
		}
		if _, ok := Lookup(sport, eventType); !ok {
			return
		}
		out = append(out, alerts.Alert{
			ID:       "builtin:" + sport + ":" + id,
			Name:     name,
			Enabled:  true,
			Operator: alerts.OperatorAnd,
			Conditions: []alerts.Condition{
				{EventType: eventType, Team: alerts.TeamAny, Comparison: cmp, Threshold: threshold},
			},
		})
	}

	scoreKey, hasScore := ScoreTypeKey(sport)
	if hasScore {
		add("goal", "Any score", scoreKey, alerts.CompareGreaterOrEqual, 1, s.GoalAlerts)
	}
	add("red-card", "Red card", "redCards", alerts.CompareGreaterOrEqual, 1, s.RedCardAlerts)
	add("yellow-card", "Yellow card", "yellowCards", alerts.CompareGreaterOrEqual, 1, s.YellowCardAlerts)

	diff := s.DifferenceThreshold
	if diff <= 0 {
		diff = alerts.DefaultSportSettings().DifferenceThreshold
	}
	add("difference", "Score difference", "scoreDifference", alerts.CompareGreaterOrEqual, diff, s.DifferenceAlerts)

	minute := s.LateGameMinute
	if minute <= 0 {
		minute = alerts.DefaultSportSettings().LateGameMinute
	}
	add("late-game", "Late game", "matchMinute", alerts.CompareGreaterOrEqual, minute, s.LateGameAlerts)
	add("half-time", "Half time", "halfTime", alerts.CompareGreaterOrEqual, 1, s.HalfTimeAlerts)
	add("full-time", "Full time", "fullTime", alerts.CompareEquals, 1, s.FullTimeAlerts)

	return out
}
