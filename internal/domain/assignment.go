package domain

import (
	"errors"
)

// SessionStatus type for the workout session lifecycle
type SessionStatus string

const (
	StatusPlanned    SessionStatus = "planned"
	StatusInProgress SessionStatus = "in_progress" // Client started coaching on it
	StatusCompleted  SessionStatus = "completed"   // Final state, session is frozen
)

// ErrInvalidState is reported when a session operation is not allowed
// in the session's current state (missing identifier, backwards transition,
// changes to a completed session).
var ErrInvalidState = errors.New("invalid session state")

// rank orders the statuses along the lifecycle. Unknown statuses rank as planned.
func (s SessionStatus) rank() int {
	switch s {
	case StatusInProgress:
		return 1
	case StatusCompleted:
		return 2
	default:
		return 0
	}
}

// Valid reports whether s is one of the known lifecycle statuses.
func (s SessionStatus) Valid() bool {
	switch s {
	case StatusPlanned, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// CanAdvanceTo reports whether moving from s to next is allowed.
// The lifecycle is monotonic; staying in the same state is allowed (no-op).
func (s SessionStatus) CanAdvanceTo(next SessionStatus) bool {
	return next.rank() >= s.rank()
}
