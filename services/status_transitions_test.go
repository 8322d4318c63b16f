package services

import (
	"testing"

	"github.com/HarshanaWAJ/GymApp/models"
	"github.com/stretchr/testify/assert"
)

func TestPermissiveTransitionsAllowEverything(t *testing.T) {
	table := PermissiveTransitions()
	for _, from := range models.BookingStatuses {
		for _, to := range models.BookingStatuses {
			assert.True(t, table.Allowed(from, to), "%s -> %s", from, to)
		}
	}
}

func TestStrictTransitions(t *testing.T) {
	table := StrictTransitions()

	assert.True(t, table.Allowed(models.BookingStatusPending, models.BookingStatusConfirmed))
	assert.True(t, table.Allowed(models.BookingStatusPending, models.BookingStatusCancelled))
	assert.True(t, table.Allowed(models.BookingStatusConfirmed, models.BookingStatusCompleted))
	assert.True(t, table.Allowed(models.BookingStatusConfirmed, models.BookingStatusCancelled))

	// Terminal states stay terminal.
	assert.False(t, table.Allowed(models.BookingStatusCompleted, models.BookingStatusPending))
	assert.False(t, table.Allowed(models.BookingStatusCancelled, models.BookingStatusConfirmed))
	assert.False(t, table.Allowed(models.BookingStatusPending, models.BookingStatusCompleted))

	// No-op changes are always fine.
	assert.True(t, table.Allowed(models.BookingStatusCompleted, models.BookingStatusCompleted))
}

func TestTransitionPolicy(t *testing.T) {
	strict := TransitionPolicy("strict")
	assert.False(t, strict.Allowed(models.BookingStatusCompleted, models.BookingStatusPending))

	permissive := TransitionPolicy("")
	assert.True(t, permissive.Allowed(models.BookingStatusCompleted, models.BookingStatusPending))
}
