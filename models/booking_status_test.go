package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingStatusTransitions(t *testing.T) {
	allowed := map[BookingStatus][]BookingStatus{
		BookingPending:    {BookingConfirmed, BookingCancelled},
		BookingConfirmed:  {BookingCheckedIn, BookingCancelled},
		BookingCheckedIn:  {BookingCheckedOut, BookingCancelled},
		BookingCheckedOut: {},
		BookingCancelled:  {},
	}

	all := []BookingStatus{
		BookingPending, BookingConfirmed, BookingCheckedIn, BookingCheckedOut, BookingCancelled,
	}

	for from, targets := range allowed {
		ok := map[BookingStatus]bool{}
		for _, to := range targets {
			ok[to] = true
		}
		for _, to := range all {
			assert.Equal(t, ok[to], from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestBookingStatusTerminal(t *testing.T) {
	assert.True(t, BookingCheckedOut.IsTerminal())
	assert.True(t, BookingCancelled.IsTerminal())
	assert.False(t, BookingPending.IsTerminal())
	assert.False(t, BookingConfirmed.IsTerminal())
	assert.False(t, BookingCheckedIn.IsTerminal())
}

func TestParseBookingStatus(t *testing.T) {
	s, err := ParseBookingStatus("Confirmed")
	require.NoError(t, err)
	assert.Equal(t, BookingConfirmed, s)

	_, err = ParseBookingStatus("confirmed")
	assert.Error(t, err)

	_, err = ParseBookingStatus("Archived")
	assert.Error(t, err)

	assert.False(t, BookingStatus("").IsValid())
}
