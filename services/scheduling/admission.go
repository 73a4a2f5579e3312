package scheduling

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "therabook/database/repository/booking"
	catalogRepo "therabook/database/repository/catalog"
	therapistRepo "therabook/database/repository/therapist"
	"therabook/models"
	"therabook/utils"

	"go.uber.org/zap"
)

// DefaultGridMinutes is the slot grid used for availability queries that do
// not name a service.
const DefaultGridMinutes = 60

// DefaultBookingEngine is the production booking authority.
type DefaultBookingEngine struct {
	Services   catalogRepo.ServiceRepository
	Therapists therapistRepo.TherapistRepository
	Bookings   bookingRepo.BookingRepository
	Locks      *utils.SlotLocker
	Calendar   CalendarPolicy
	// DefaultWindow covers therapists without a configured working window.
	DefaultWindow models.WorkingWindow
}

// workingWindow resolves the effective window for a therapist.
func (e *DefaultBookingEngine) workingWindow(t *models.Therapist) models.WorkingWindow {
	if t.WorkingWindow.CloseMinute > t.WorkingWindow.OpenMinute {
		return t.WorkingWindow
	}
	return e.DefaultWindow
}

// AvailableSlots computes the ordered (time, available, reason) list for one
// therapist and date. The result is advisory; Admit re-checks everything.
func (e *DefaultBookingEngine) AvailableSlots(ctx context.Context, therapistID, date, serviceID, clientID string, now time.Time) ([]models.Slot, error) {
	therapist, err := e.Therapists.GetByID(ctx, therapistID)
	if err != nil {
		return nil, fmt.Errorf("availability lookup failed: %w", err)
	}
	if therapist == nil || !therapist.Active {
		return nil, NewBookingError(CodeUnknownTherapist, "therapist not found")
	}

	if !e.Calendar.IsDateEligible(date, now) {
		return nil, NewBookingError(CodeDateNotEligible,
			fmt.Sprintf("bookings open from %s", e.Calendar.EarliestBookableDate(now)))
	}

	duration := DefaultGridMinutes
	if serviceID != "" {
		service, err := e.Services.GetByID(ctx, serviceID)
		if err != nil {
			return nil, fmt.Errorf("availability lookup failed: %w", err)
		}
		if service == nil || !service.Active {
			return nil, NewBookingError(CodeUnknownOrInactiveService, "service not found or inactive")
		}
		duration = service.DurationMinutes
	}

	candidates := GenerateSlots(e.workingWindow(therapist), duration)
	existing, err := e.Bookings.ListBlocking(ctx, therapistID, date)
	if err != nil {
		return nil, fmt.Errorf("availability lookup failed: %w", err)
	}
	return FilterAvailability(candidates, existing, clientID), nil
}

// Admit is the authoritative validate-and-commit path. Checks run in a fixed
// order and short-circuit on the first failure; the availability read and the
// insert both happen inside the per-slot lock so racing admissions resolve
// deterministically, first committer wins. A failed admission writes nothing.
func (e *DefaultBookingEngine) Admit(ctx context.Context, req AdmissionRequest, now time.Time) (*models.Booking, error) {
	logger := utils.GetLogger()

	// 1. Service must exist and be active.
	service, err := e.Services.GetByID(ctx, req.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("admission failed: %w", err)
	}
	if service == nil || !service.Active {
		return nil, NewBookingError(CodeUnknownOrInactiveService, "service not found or inactive")
	}

	// 2. Therapist must exist.
	therapist, err := e.Therapists.GetByID(ctx, req.TherapistID)
	if err != nil {
		return nil, fmt.Errorf("admission failed: %w", err)
	}
	if therapist == nil || !therapist.Active {
		return nil, NewBookingError(CodeUnknownTherapist, "therapist not found")
	}

	// 3. Date must be at least tomorrow in the business calendar.
	if !e.Calendar.IsDateEligible(req.Date, now) {
		return nil, NewBookingError(CodeDateNotEligible,
			fmt.Sprintf("bookings open from %s", e.Calendar.EarliestBookableDate(now)))
	}

	// 4. Requested time must sit on the duration grid for this therapist/service.
	if !onGrid(GenerateSlots(e.workingWindow(therapist), service.DurationMinutes), req.Time) {
		return nil, NewBookingError(CodeInvalidSlotAlignment,
			fmt.Sprintf("%s is not a bookable start time for this service", req.Time))
	}

	// 5+6. Availability check and insert are atomic per slot key.
	lockKey := utils.SlotLockKey(req.TherapistID, req.Date, req.Time)
	token, err := e.Locks.Acquire(ctx, lockKey)
	if errors.Is(err, utils.ErrLockHeld) {
		return nil, NewBookingError(CodeConcurrentConflict, "another booking for this slot is in progress")
	}
	if err != nil {
		return nil, fmt.Errorf("admission failed: %w", err)
	}
	defer func() {
		if relErr := e.Locks.Release(ctx, lockKey, token); relErr != nil {
			logger.Warn("failed to release slot lock", zap.String("key", lockKey), zap.Error(relErr))
		}
	}()

	existing, err := e.Bookings.ListBlocking(ctx, req.TherapistID, req.Date)
	if err != nil {
		return nil, fmt.Errorf("admission failed: %w", err)
	}
	for _, b := range existing {
		if b.Time != req.Time {
			continue
		}
		if b.ClientID == req.ClientID {
			return nil, NewBookingError(CodeSlotTaken, "you already booked this time")
		}
		return nil, NewBookingError(CodeSlotTaken, "this time is no longer available")
	}

	booking := &models.Booking{
		ServiceID:   req.ServiceID,
		TherapistID: req.TherapistID,
		ClientID:    req.ClientID,
		Date:        req.Date,
		Time:        req.Time,
		Status:      models.StatusPending,
		// Snapshot price and duration so later catalog edits never rewrite history.
		PriceCents:      service.PriceCents,
		DurationMinutes: service.DurationMinutes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := e.Bookings.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("admission failed: %w", err)
	}

	logger.Info("booking admitted",
		zap.String("bookingID", booking.ID),
		zap.String("therapistID", booking.TherapistID),
		zap.String("date", booking.Date),
		zap.String("time", booking.Time))
	return booking, nil
}

func onGrid(slots []string, start string) bool {
	for _, s := range slots {
		if s == start {
			return true
		}
	}
	return false
}
