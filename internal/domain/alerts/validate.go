package alerts

import (
	"errors"
	"fmt"
)

// ErrInvalidPreferences wraps every validation failure so callers can map
// the whole class to a client-correctable response.
var ErrInvalidPreferences = errors.New("invalid alert preferences")

// Validate checks a preferences document before it is merged and persisted.
// Unknown event types are deliberately not rejected here: the evaluator
// treats them as a logged configuration error so that one stale token cannot
// block saving the rest of a user's rules.
func (p AlertPreferences) Validate() error {
	for sport, s := range p.Settings {
		if s.DifferenceThreshold < 0 {
			return fmt.Errorf("%w: sport %q: difference threshold must be >= 0", ErrInvalidPreferences, sport)
		}
		if s.LateGameMinute < 0 {
			return fmt.Errorf("%w: sport %q: late game minute must be >= 0", ErrInvalidPreferences, sport)
		}
	}
	for i, a := range p.CustomAlerts {
		if err := a.Validate(); err != nil {
			return fmt.Errorf("%w: custom alert %d (%q): %v", ErrInvalidPreferences, i, a.Name, err)
		}
	}
	return nil
}

// Validate checks a single alert definition.
func (a Alert) Validate() error {
	switch a.Operator {
	case OperatorAnd, OperatorOr:
	default:
		return fmt.Errorf("unknown operator %q", a.Operator)
	}
	for i, c := range a.Conditions {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("condition %d: %v", i, err)
		}
		if c.Team == TeamOther && i == 0 {
			return errors.New(`condition 1 may not use team "other"`)
		}
	}
	return nil
}

// Validate checks a single condition's tokens and threshold.
func (c Condition) Validate() error {
	if c.EventType == "" {
		return errors.New("event type required")
	}
	switch c.Team {
	case TeamAny, TeamHome, TeamAway, TeamOther:
	default:
		return fmt.Errorf("unknown team scope %q", c.Team)
	}
	switch c.Comparison.Normalize() {
	case CompareEquals, CompareGreaterOrEqual, CompareLessOrEqual:
	default:
		return fmt.Errorf("unknown comparison %q", c.Comparison)
	}
	if c.Threshold < 0 {
		return errors.New("threshold must be >= 0")
	}
	return nil
}
