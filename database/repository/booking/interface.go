// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"errors"
	"time"

	"therabook/database"
	"therabook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrStatusConflict is returned when a conditional status update matched no
// document, i.e. the booking changed state underneath the caller.
var ErrStatusConflict = errors.New("booking status changed concurrently")

// ListFilter narrows a paginated booking listing.
type ListFilter struct {
	ClientID    string
	TherapistID string
	Status      models.BookingStatus
	Page        int // 1-based
	PerPage     int
}

// Page is one page of a booking listing.
type Page struct {
	Bookings []models.Booking `json:"bookings"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PerPage  int              `json:"per_page"`
}

// BookingRepository persists booking records.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	// GetByID returns the booking with the given id, or nil when absent.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// ListBlocking returns the bookings that occupy slots for the given
	// therapist and date, i.e. those in a blocking status.
	ListBlocking(ctx context.Context, therapistID, date string) ([]models.Booking, error)
	List(ctx context.Context, filter ListFilter) (*Page, error)
	// UpdateStatus moves a booking from one status to another with a
	// compare-and-set on the current status. Returns ErrStatusConflict when
	// the booking is no longer in the expected status.
	UpdateStatus(ctx context.Context, id string, from, to models.BookingStatus, now time.Time) error
	// ExpireOverdue marks pending bookings dated strictly before the given
	// business date as expired, returning how many were swept.
	ExpireOverdue(ctx context.Context, beforeDate string, now time.Time) (int64, error)
	EnsureIndexes() error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("therabook")
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
