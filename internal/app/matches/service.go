// Package matches exposes the reconciled match state and the per-user
// evaluation results as one application service.
package matches

import (
	"context"

	"match-alerts-service/internal/domain"
	"match-alerts-service/internal/domain/alerts"
	"match-alerts-service/internal/feed"
	"match-alerts-service/internal/rules"
)

// PreferencesLoader supplies the preferences an evaluation pass runs under.
type PreferencesLoader interface {
	Get(ctx context.Context, userID string) (alerts.AlertPreferences, error)
}

// FiredAlert is the wire shape of one alert that fired for a match.
type FiredAlert struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Summary string `json:"summary"`
}

// AlertedMatch pairs a live match with the alerts that fired for it.
type AlertedMatch struct {
	Match  domain.Match `json:"match"`
	Alerts []FiredAlert `json:"alerts"`
}

// Service coordinates match reads and alert evaluation.
type Service struct {
	rec   *feed.Reconciler
	eval  *rules.Evaluator
	prefs PreferencesLoader
}

// NewService constructs a Service over the given reconciler and evaluator.
func NewService(rec *feed.Reconciler, eval *rules.Evaluator, prefs PreferencesLoader) *Service {
	return &Service{rec: rec, eval: eval, prefs: prefs}
}

// LiveMatches returns the current live set.
func (s *Service) LiveMatches() []domain.Match {
	return s.rec.LiveMatches()
}

// UpcomingMatches returns the current upcoming set.
func (s *Service) UpcomingMatches() []domain.Match {
	return s.rec.UpcomingMatches()
}

// MatchByID returns a single match if present.
func (s *Service) MatchByID(id string) (domain.Match, bool) {
	return s.rec.GetMatch(id)
}

// AlertedMatches evaluates the user's full alert set against every live
// match and returns those with at least one firing alert. Preferences and
// match state are each individually consistent; a preference change landing
// mid-pass is picked up on the next pass.
func (s *Service) AlertedMatches(ctx context.Context, userID string) ([]AlertedMatch, error) {
	p, err := s.prefs.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.evaluate(p), nil
}

// EvaluateWith runs an evaluation pass under already-loaded preferences.
// The poller uses this to count alertable matches without a store read per
// tick.
func (s *Service) EvaluateWith(p alerts.AlertPreferences) []AlertedMatch {
	return s.evaluate(p)
}

func (s *Service) evaluate(p alerts.AlertPreferences) []AlertedMatch {
	var out []AlertedMatch
	for _, m := range s.rec.LiveMatches() {
		fired := s.eval.MatchAlerts(p, m)
		if len(fired) == 0 {
			continue
		}
		am := AlertedMatch{Match: m, Alerts: make([]FiredAlert, 0, len(fired))}
		for _, a := range fired {
			am.Alerts = append(am.Alerts, FiredAlert{ID: a.ID, Name: a.Name, Summary: a.Summary()})
		}
		out = append(out, am)
	}
	return out
}
