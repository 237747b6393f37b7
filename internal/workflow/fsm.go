// Package workflow holds the transition tables for the promotion and
// demotion engines. Both engines validate every status change through the
// same guard instead of scattering per-handler status checks.
package workflow

import (
	"fmt"

	"learnhub-backend/internal/domain"
)

type Event string

// Machine is a status x event transition table. Statuses missing from the
// table, and events missing from a status row, are rejected.
type Machine[S ~string] struct {
	transitions map[S]map[Event]S
	terminal    map[S]bool
}

func NewMachine[S ~string](transitions map[S]map[Event]S, terminal ...S) Machine[S] {
	t := make(map[S]bool, len(terminal))
	for _, s := range terminal {
		t[s] = true
	}
	return Machine[S]{transitions: transitions, terminal: t}
}

// Next returns the status the event leads to from current, or
// domain.ErrInvalidTransition when the table has no such edge.
func (m Machine[S]) Next(current S, ev Event) (S, error) {
	row, ok := m.transitions[current]
	if !ok {
		return "", fmt.Errorf("%w: %q does not accept %q", domain.ErrInvalidTransition, current, ev)
	}
	next, ok := row[ev]
	if !ok {
		return "", fmt.Errorf("%w: %q does not accept %q", domain.ErrInvalidTransition, current, ev)
	}
	return next, nil
}

func (m Machine[S]) IsTerminal(s S) bool {
	return m.terminal[s]
}
