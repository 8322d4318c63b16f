package services

import (
	"github.com/HarshanaWAJ/GymApp/models"
)

type statusEdge struct {
	from string
	to   string
}

// TransitionTable is the explicit set of allowed booking status changes.
// The table is an input to the booking service rather than a hard-coded rule,
// so the permissive legacy behavior and a stricter policy can coexist.
type TransitionTable struct {
	allowed map[statusEdge]bool
}

func (t TransitionTable) Allowed(from, to string) bool {
	if from == to {
		return true
	}
	return t.allowed[statusEdge{from: from, to: to}]
}

// PermissiveTransitions allows any status to move to any other status,
// matching the original admin dashboard where every status is selectable.
func PermissiveTransitions() TransitionTable {
	allowed := make(map[statusEdge]bool)
	for _, from := range models.BookingStatuses {
		for _, to := range models.BookingStatuses {
			allowed[statusEdge{from: from, to: to}] = true
		}
	}
	return TransitionTable{allowed: allowed}
}

// StrictTransitions freezes cancelled and completed as terminal states.
func StrictTransitions() TransitionTable {
	allowed := map[statusEdge]bool{
		{models.BookingStatusPending, models.BookingStatusConfirmed}:   true,
		{models.BookingStatusPending, models.BookingStatusCancelled}:   true,
		{models.BookingStatusConfirmed, models.BookingStatusCompleted}: true,
		{models.BookingStatusConfirmed, models.BookingStatusCancelled}: true,
	}
	return TransitionTable{allowed: allowed}
}

// TransitionPolicy maps the BOOKING_TRANSITION_POLICY config value to a table.
func TransitionPolicy(policy string) TransitionTable {
	if policy == "strict" {
		return StrictTransitions()
	}
	return PermissiveTransitions()
}
