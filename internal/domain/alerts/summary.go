package alerts

import (
	"fmt"
	"strings"
)

// Key returns the canonical identity of an alert's rule content: its
// conditions and operator, independent of id, name, and enabled flag.
// Two alerts with equal keys are duplicates. Equality is structural rather
// than summary-string based so that formatting drift in Summary can never
// split or collapse identities by accident.
func (a Alert) Key() string {
	var b strings.Builder
	b.WriteString(string(a.Operator))
	for _, c := range a.Conditions {
		fmt.Fprintf(&b, "|%s:%s:%s:%d", c.EventType, c.Team, c.Comparison.Normalize(), c.Threshold)
	}
	return b.String()
}

// Summary renders the alert's rule content as a human-readable sentence,
// e.g. "home goals >= 2 AND away redCards >= 1". It is display-only;
// duplicate detection uses Key.
func (a Alert) Summary() string {
	if len(a.Conditions) == 0 {
		return "(no conditions)"
	}
	parts := make([]string, 0, len(a.Conditions))
	for _, c := range a.Conditions {
		parts = append(parts, c.describe())
	}
	sep := " AND "
	if a.Operator == OperatorOr {
		sep = " OR "
	}
	return strings.Join(parts, sep)
}

func (c Condition) describe() string {
	op := "="
	switch c.Comparison.Normalize() {
	case CompareGreaterOrEqual:
		op = ">="
	case CompareLessOrEqual:
		op = "<="
	}
	return fmt.Sprintf("%s %s %s %d", c.Team, c.EventType, op, c.Threshold)
}
