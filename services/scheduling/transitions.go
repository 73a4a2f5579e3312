package scheduling

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "therabook/database/repository/booking"
	"therabook/models"
	"therabook/utils"

	"go.uber.org/zap"
)

// Transition moves a booking through the status state machine. The transition
// table is closed: pending can become approved, rejected, cancelled or
// expired; approved can become completed or cancelled; everything else is
// terminal. Approve/reject/complete belong to the booked therapist, cancel to
// the owning client, expire to the system sweep. The write is a compare-and-
// set on the current status so two racing transitions cannot both apply.
func (e *DefaultBookingEngine) Transition(ctx context.Context, bookingID string, to models.BookingStatus, actor Actor, now time.Time) (*models.Booking, error) {
	if !to.IsValid() {
		return nil, NewBookingError(CodeInvalidTransition, fmt.Sprintf("unknown status %q", to))
	}

	booking, err := e.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("transition failed: %w", err)
	}
	if booking == nil {
		return nil, NewBookingError(CodeBookingNotFound, "booking not found")
	}

	if !booking.Status.CanTransitionTo(to) {
		return nil, NewBookingError(CodeInvalidTransition,
			fmt.Sprintf("cannot move booking from %s to %s", booking.Status, to))
	}
	if err := checkActor(booking, to, actor); err != nil {
		return nil, err
	}

	if err := e.Bookings.UpdateStatus(ctx, bookingID, booking.Status, to, now); err != nil {
		if errors.Is(err, bookingRepo.ErrStatusConflict) {
			return nil, NewBookingError(CodeConcurrentConflict, "booking status changed, reload and retry")
		}
		return nil, fmt.Errorf("transition failed: %w", err)
	}

	utils.GetLogger().Info("booking status changed",
		zap.String("bookingID", bookingID),
		zap.String("from", string(booking.Status)),
		zap.String("to", string(to)),
		zap.String("actorRole", actor.Role))

	booking.Status = to
	booking.UpdatedAt = now
	return booking, nil
}

func checkActor(booking *models.Booking, to models.BookingStatus, actor Actor) error {
	switch to {
	case models.StatusApproved, models.StatusRejected, models.StatusCompleted:
		if actor.Role != RoleTherapist || actor.ID != booking.TherapistID {
			return NewBookingError(CodeForbiddenActor, "only the booked therapist may do that")
		}
	case models.StatusCancelled:
		if actor.Role != RoleClient || actor.ID != booking.ClientID {
			return NewBookingError(CodeForbiddenActor, "only the booking owner may cancel")
		}
	case models.StatusExpired:
		if actor.Role != RoleSystem {
			return NewBookingError(CodeForbiddenActor, "expiry is system-driven")
		}
	default:
		return NewBookingError(CodeInvalidTransition, fmt.Sprintf("no actor may set status %s", to))
	}
	return nil
}
