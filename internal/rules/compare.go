package rules

import (
	"errors"
	"fmt"

	"match-alerts-service/internal/domain/alerts"
)

// ErrUnknownComparison marks a comparison token the engine does not define.
var ErrUnknownComparison = errors.New("unknown comparison")

// Compare applies a condition's comparison operator.
func Compare(actual int, cmp alerts.Comparison, threshold int) (bool, error) {
	switch cmp.Normalize() {
	case alerts.CompareEquals:
		return actual == threshold, nil
	case alerts.CompareGreaterOrEqual:
		return actual >= threshold, nil
	case alerts.CompareLessOrEqual:
		return actual <= threshold, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrUnknownComparison, cmp)
	}
}
