package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func allStatuses() []BookingStatus {
	return []BookingStatus{
		StatusPending, StatusApproved, StatusRejected,
		StatusCompleted, StatusExpired, StatusCancelled,
	}
}

func TestBookingStatus_IsValid(t *testing.T) {
	for _, s := range allStatuses() {
		assert.True(t, s.IsValid(), "%s", s)
	}
	assert.False(t, BookingStatus("").IsValid())
	assert.False(t, BookingStatus("archived").IsValid())
	assert.False(t, BookingStatus("Pending").IsValid(), "statuses are case-sensitive")
}

func TestBookingStatus_TransitionTable(t *testing.T) {
	allowed := map[BookingStatus][]BookingStatus{
		StatusPending:  {StatusApproved, StatusRejected, StatusCancelled, StatusExpired},
		StatusApproved: {StatusCompleted, StatusCancelled},
	}

	// Every pair not in the table must be rejected, terminal states included.
	for _, from := range allStatuses() {
		for _, to := range allStatuses() {
			want := false
			for _, next := range allowed[from] {
				if next == to {
					want = true
				}
			}
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestBookingStatus_NoSelfTransitions(t *testing.T) {
	for _, s := range allStatuses() {
		assert.False(t, s.CanTransitionTo(s), "%s", s)
	}
}

func TestBookingStatus_Blocks(t *testing.T) {
	blocking := map[BookingStatus]bool{
		StatusPending:  true,
		StatusApproved: true,
	}
	for _, s := range allStatuses() {
		assert.Equal(t, blocking[s], s.Blocks(), "%s", s)
	}
	assert.ElementsMatch(t, []BookingStatus{StatusPending, StatusApproved}, BlockingStatuses())
}
