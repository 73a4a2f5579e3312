package scheduling

import (
	"context"
	"time"

	"therabook/models"
)

// AdmissionRequest is one booking attempt arriving at the authority.
type AdmissionRequest struct {
	ServiceID   string `json:"service_id" binding:"required"`
	TherapistID string `json:"therapist_id" binding:"required"`
	ClientID    string `json:"client_id" binding:"required"`
	Date        string `json:"date" binding:"required"` // "YYYY-MM-DD", business calendar
	Time        string `json:"time" binding:"required"` // "HH:MM" slot start
}

// Actor identifies who is driving a status transition.
type Actor struct {
	Role string // "client", "therapist" or "system"
	ID   string
}

const (
	RoleClient    = "client"
	RoleTherapist = "therapist"
	RoleSystem    = "system"
)

// BookingEngine is the single authority for slot availability and admission.
// Any availability a client saw earlier is a display-time hint; Admit re-runs
// every check under the slot lock.
type BookingEngine interface {
	// AvailableSlots computes the ordered slot list for a therapist and date.
	// serviceID selects the duration grid; empty falls back to the default
	// grid. clientID, when present, lets the filter flag the caller's own
	// bookings distinctly.
	AvailableSlots(ctx context.Context, therapistID, date, serviceID, clientID string, now time.Time) ([]models.Slot, error)
	// Admit validates and commits a booking request, returning the persisted
	// pending booking. First committer wins a contended slot.
	Admit(ctx context.Context, req AdmissionRequest, now time.Time) (*models.Booking, error)
	// Transition moves a booking through the status state machine on behalf
	// of an actor, rejecting anything outside the transition table.
	Transition(ctx context.Context, bookingID string, to models.BookingStatus, actor Actor, now time.Time) (*models.Booking, error)
}
