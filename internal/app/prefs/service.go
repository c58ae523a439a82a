// Package prefs is the application service over the preference store: it
// owns defaulting, validation, partial-update merging, and duplicate
// rejection, leaving backends as plain document stores.
package prefs

import (
	"context"
	"fmt"
	"reflect"

	"github.com/google/uuid"

	"match-alerts-service/internal/domain/alerts"
	prefstore "match-alerts-service/internal/prefs"
)

// Service coordinates preference reads and writes for one store backend.
type Service struct {
	store prefstore.Store
	newID func() string
}

// NewService constructs a Service with the provided Store.
func NewService(store prefstore.Store) *Service {
	return &Service{store: store, newID: uuid.NewString}
}

// Get returns the user's preferences, or schema defaults when the user has
// never saved any. Callers always receive a renderable document, never nil
// maps.
func (s *Service) Get(ctx context.Context, userID string) (alerts.AlertPreferences, error) {
	stored, found, err := s.store.Load(ctx, userID)
	if err != nil {
		return alerts.AlertPreferences{}, err
	}
	if !found {
		return alerts.Defaults(), nil
	}
	return withDefaults(stored), nil
}

// Save validates a full or partial preferences document, merges it into the
// stored record, and persists the result. A write that changes nothing is
// rejected with prefstore.ErrDuplicate so clients can tell it apart from a
// real failure.
func (s *Service) Save(ctx context.Context, userID string, update alerts.AlertPreferences) (alerts.AlertPreferences, error) {
	if err := update.Validate(); err != nil {
		return alerts.AlertPreferences{}, err
	}

	existing, found, err := s.store.Load(ctx, userID)
	if err != nil {
		return alerts.AlertPreferences{}, err
	}
	if !found {
		existing = alerts.Defaults()
	}

	merged := prefstore.Merge(existing, update)
	merged.CustomAlerts = s.assignIDs(merged.CustomAlerts)

	if found && reflect.DeepEqual(merged, existing) {
		return withDefaults(existing), fmt.Errorf("%w: preferences unchanged", prefstore.ErrDuplicate)
	}

	if err := s.store.Save(ctx, userID, merged); err != nil {
		return alerts.AlertPreferences{}, err
	}
	return withDefaults(merged), nil
}

// QuickAdd appends one ad-hoc custom alert. A definition whose rule content
// matches an already stored alert is rejected with prefstore.ErrDuplicate
// and the stored list is left untouched.
func (s *Service) QuickAdd(ctx context.Context, userID string, a alerts.Alert) (alerts.Alert, error) {
	if err := a.Validate(); err != nil {
		return alerts.Alert{}, fmt.Errorf("%w: %v", alerts.ErrInvalidPreferences, err)
	}

	existing, found, err := s.store.Load(ctx, userID)
	if err != nil {
		return alerts.Alert{}, err
	}
	if !found {
		existing = alerts.Defaults()
	}

	key := a.Key()
	for _, stored := range existing.CustomAlerts {
		if stored.Key() == key {
			return alerts.Alert{}, fmt.Errorf("%w: alert %q", prefstore.ErrDuplicate, a.Summary())
		}
	}

	if a.ID == "" {
		a.ID = s.newID()
	}
	existing.CustomAlerts = append(existing.CustomAlerts, a)

	if err := s.store.Save(ctx, userID, existing); err != nil {
		return alerts.Alert{}, err
	}
	return a, nil
}

// ListCustom returns the user's stored custom alerts.
func (s *Service) ListCustom(ctx context.Context, userID string) ([]alerts.Alert, error) {
	p, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return p.CustomAlerts, nil
}

func (s *Service) assignIDs(list []alerts.Alert) []alerts.Alert {
	for i := range list {
		if list[i].ID == "" {
			list[i].ID = s.newID()
		}
	}
	return list
}

func withDefaults(p alerts.AlertPreferences) alerts.AlertPreferences {
	if p.Sports == nil {
		p.Sports = map[string]bool{}
	}
	if p.Settings == nil {
		p.Settings = map[string]alerts.SportSettings{}
	}
	if p.CustomAlerts == nil {
		p.CustomAlerts = []alerts.Alert{}
	}
	return p
}
