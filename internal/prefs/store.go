// Package prefs persists per-user alert preferences. Backends share one
// small Store contract; merging and duplicate handling live in the app
// layer so every backend behaves identically.
package prefs

import (
	"context"
	"errors"

	"match-alerts-service/internal/domain/alerts"
)

// ErrDuplicate signals a submission identical to what is already stored.
// Handlers map it to a conflict response, distinct from generic failures.
var ErrDuplicate = errors.New("duplicate submission")

// Store defines how a user's alert preferences are loaded and saved.
// Load's boolean reports whether a record existed; callers fall back to
// schema defaults when it is false.
type Store interface {
	Load(ctx context.Context, userID string) (alerts.AlertPreferences, bool, error)
	Save(ctx context.Context, userID string, p alerts.AlertPreferences) error
}

// Merge applies a partial update onto existing preferences.
//
// Sport selections merge per key touched. A sport's settings block is
// replaced wholesale when present in the update, except that its leagues
// sub-map survives when the update omits it; when provided, leagues are
// replaced wholesale with no per-league merge. The custom alert list is
// replaced wholesale when provided; callers must include every alert they
// want retained.
func Merge(existing, update alerts.AlertPreferences) alerts.AlertPreferences {
	merged := existing

	if update.Sports != nil {
		if merged.Sports == nil {
			merged.Sports = make(map[string]bool, len(update.Sports))
		} else {
			merged.Sports = copyBoolMap(merged.Sports)
		}
		for sport, on := range update.Sports {
			merged.Sports[sport] = on
		}
	}

	if update.Settings != nil {
		if merged.Settings == nil {
			merged.Settings = make(map[string]alerts.SportSettings, len(update.Settings))
		} else {
			merged.Settings = copySettingsMap(merged.Settings)
		}
		for sport, s := range update.Settings {
			if s.Leagues == nil {
				s.Leagues = existing.Settings[sport].Leagues
			}
			merged.Settings[sport] = s
		}
	}

	if update.CustomAlerts != nil {
		merged.CustomAlerts = DedupeAlerts(update.CustomAlerts)
	}

	return merged
}

// DedupeAlerts collapses alerts with identical rule content, keeping the
// first occurrence of each.
func DedupeAlerts(in []alerts.Alert) []alerts.Alert {
	seen := make(map[string]bool, len(in))
	out := make([]alerts.Alert, 0, len(in))
	for _, a := range in {
		key := a.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, a)
	}
	return out
}

func copyBoolMap(src map[string]bool) map[string]bool {
	dst := make(map[string]bool, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func copySettingsMap(src map[string]alerts.SportSettings) map[string]alerts.SportSettings {
	dst := make(map[string]alerts.SportSettings, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
