package models

import "time"

// Booking represents a booking record.
// PriceCents and DurationMinutes are snapshots taken from the service at
// admission time; later catalog edits never rewrite history.
type Booking struct {
	ID              string        `bson:"id" json:"id"`                             // Unique booking identifier (UUID)
	ServiceID       string        `bson:"service_id" json:"service_id"`             // Service that was booked
	TherapistID     string        `bson:"therapist_id" json:"therapist_id"`         // Therapist who was booked
	ClientID        string        `bson:"client_id" json:"client_id"`               // Client who made the booking
	Date            string        `bson:"date" json:"date"`                         // Booking date in "YYYY-MM-DD" format, business calendar
	Time            string        `bson:"time" json:"time"`                         // Slot start in "HH:MM" 24h format
	Status          BookingStatus `bson:"status" json:"status"`                     // Lifecycle status
	PriceCents      int64         `bson:"price_cents" json:"price_cents"`           // Price snapshot at admission
	DurationMinutes int           `bson:"duration_minutes" json:"duration_minutes"` // Duration snapshot at admission
	CreatedAt       time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time     `bson:"updated_at" json:"updated_at"`
}
