// File: therabook/handlers/bundle.go
package handlers

import (
	bookingRepo "therabook/database/repository/booking"
	catalogRepo "therabook/database/repository/catalog"
	therapistRepo "therabook/database/repository/therapist"
	"therabook/services/scheduling"
)

// HandlerBundle groups the endpoint handlers and their collaborators.
type HandlerBundle struct {
	Engine     scheduling.BookingEngine
	Services   catalogRepo.ServiceRepository
	Therapists therapistRepo.TherapistRepository
	Bookings   bookingRepo.BookingRepository
}
