package scheduling

import (
	"context"
	"testing"

	bookingRepo "therabook/database/repository/booking"
	"therabook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func admit(t *testing.T, engine *DefaultBookingEngine) *models.Booking {
	t.Helper()
	booked, err := engine.Admit(context.Background(), validRequest(), testNow)
	require.NoError(t, err)
	return booked
}

func TestTransition_TherapistApproves(t *testing.T) {
	engine, _, _ := newTestEngine(t)
	booked := admit(t, engine)

	updated, err := engine.Transition(context.Background(), booked.ID, models.StatusApproved,
		Actor{Role: RoleTherapist, ID: "th-anna"}, testNow)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, updated.Status)
}

func TestTransition_ApprovedBookingCompletes(t *testing.T) {
	engine, _, _ := newTestEngine(t)
	booked := admit(t, engine)
	ctx := context.Background()
	actor := Actor{Role: RoleTherapist, ID: "th-anna"}

	_, err := engine.Transition(ctx, booked.ID, models.StatusApproved, actor, testNow)
	require.NoError(t, err)

	updated, err := engine.Transition(ctx, booked.ID, models.StatusCompleted, actor, testNow)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, updated.Status)
}

func TestTransition_ClientCancelsOwnBooking(t *testing.T) {
	engine, _, _ := newTestEngine(t)
	booked := admit(t, engine)

	updated, err := engine.Transition(context.Background(), booked.ID, models.StatusCancelled,
		Actor{Role: RoleClient, ID: "cl-1"}, testNow)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, updated.Status)
}

func TestTransition_ClientCancelsAfterApproval(t *testing.T) {
	engine, _, _ := newTestEngine(t)
	booked := admit(t, engine)
	ctx := context.Background()

	_, err := engine.Transition(ctx, booked.ID, models.StatusApproved,
		Actor{Role: RoleTherapist, ID: "th-anna"}, testNow)
	require.NoError(t, err)

	_, err = engine.Transition(ctx, booked.ID, models.StatusCancelled,
		Actor{Role: RoleClient, ID: "cl-1"}, testNow)
	assert.NoError(t, err)
}

func TestTransition_ActorRules(t *testing.T) {
	tests := []struct {
		name  string
		to    models.BookingStatus
		actor Actor
	}{
		{"client cannot approve", models.StatusApproved, Actor{Role: RoleClient, ID: "cl-1"}},
		{"client cannot reject", models.StatusRejected, Actor{Role: RoleClient, ID: "cl-1"}},
		{"wrong therapist cannot approve", models.StatusApproved, Actor{Role: RoleTherapist, ID: "th-other"}},
		{"therapist cannot cancel", models.StatusCancelled, Actor{Role: RoleTherapist, ID: "th-anna"}},
		{"wrong client cannot cancel", models.StatusCancelled, Actor{Role: RoleClient, ID: "cl-2"}},
		{"client cannot expire", models.StatusExpired, Actor{Role: RoleClient, ID: "cl-1"}},
		{"therapist cannot expire", models.StatusExpired, Actor{Role: RoleTherapist, ID: "th-anna"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			engine, _, _ := newTestEngine(t)
			booked := admit(t, engine)

			_, err := engine.Transition(context.Background(), booked.ID, tc.to, tc.actor, testNow)
			require.Error(t, err)
			assert.Equal(t, CodeForbiddenActor, ErrorCode(err))

			// The booking must be untouched.
			stored, err := engine.Bookings.GetByID(context.Background(), booked.ID)
			require.NoError(t, err)
			assert.Equal(t, models.StatusPending, stored.Status)
		})
	}
}

func TestTransition_SystemExpiresPending(t *testing.T) {
	engine, _, _ := newTestEngine(t)
	booked := admit(t, engine)

	updated, err := engine.Transition(context.Background(), booked.ID, models.StatusExpired,
		Actor{Role: RoleSystem}, testNow)
	require.NoError(t, err)
	assert.Equal(t, models.StatusExpired, updated.Status)
}

func TestTransition_TerminalStatesAreFinal(t *testing.T) {
	engine, _, _ := newTestEngine(t)
	booked := admit(t, engine)
	ctx := context.Background()

	_, err := engine.Transition(ctx, booked.ID, models.StatusCancelled,
		Actor{Role: RoleClient, ID: "cl-1"}, testNow)
	require.NoError(t, err)

	for _, to := range []models.BookingStatus{
		models.StatusPending, models.StatusApproved, models.StatusCompleted, models.StatusExpired,
	} {
		_, err := engine.Transition(ctx, booked.ID, to, Actor{Role: RoleSystem}, testNow)
		require.Error(t, err, "cancelled -> %s must be rejected", to)
		assert.Equal(t, CodeInvalidTransition, ErrorCode(err))
	}
}

func TestTransition_PendingCannotComplete(t *testing.T) {
	engine, _, _ := newTestEngine(t)
	booked := admit(t, engine)

	_, err := engine.Transition(context.Background(), booked.ID, models.StatusCompleted,
		Actor{Role: RoleTherapist, ID: "th-anna"}, testNow)
	assert.Equal(t, CodeInvalidTransition, ErrorCode(err))
}

func TestTransition_UnknownStatus(t *testing.T) {
	engine, _, _ := newTestEngine(t)
	booked := admit(t, engine)

	_, err := engine.Transition(context.Background(), booked.ID, "archived",
		Actor{Role: RoleSystem}, testNow)
	assert.Equal(t, CodeInvalidTransition, ErrorCode(err))
}

func TestTransition_BookingNotFound(t *testing.T) {
	engine, _, _ := newTestEngine(t)

	_, err := engine.Transition(context.Background(), "bk-missing", models.StatusApproved,
		Actor{Role: RoleTherapist, ID: "th-anna"}, testNow)
	assert.Equal(t, CodeBookingNotFound, ErrorCode(err))
}

// staleReadRepo serves a frozen copy from GetByID so the compare-and-set in
// Transition races against a store that has already moved on.
type staleReadRepo struct {
	bookingRepo.BookingRepository
	stale models.Booking
}

func (r *staleReadRepo) GetByID(context.Context, string) (*models.Booking, error) {
	out := r.stale
	return &out, nil
}

func TestTransition_LostRaceSurfacesConflict(t *testing.T) {
	engine, bookings, _ := newTestEngine(t)
	booked := admit(t, engine)
	ctx := context.Background()

	// A rival transition lands between our read and our write.
	engine.Bookings = &staleReadRepo{BookingRepository: bookings, stale: *booked}
	require.NoError(t, bookings.UpdateStatus(ctx, booked.ID, models.StatusPending, models.StatusRejected, testNow))

	_, err := engine.Transition(ctx, booked.ID, models.StatusCancelled,
		Actor{Role: RoleClient, ID: "cl-1"}, testNow)
	assert.Equal(t, CodeConcurrentConflict, ErrorCode(err))
}
