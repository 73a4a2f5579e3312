// File: therabook/handlers/booking.go
package handlers

import (
	"net/http"
	"strconv"
	"time"

	bookingRepo "therabook/database/repository/booking"
	"therabook/models"
	"therabook/services/scheduling"
	"therabook/utils"

	"github.com/gin-gonic/gin"
)

// engineErrorStatus maps typed engine errors onto HTTP statuses. Untyped
// errors fall through to 500.
func engineErrorStatus(err error) (int, bool) {
	switch scheduling.ErrorCode(err) {
	case scheduling.CodeUnknownOrInactiveService,
		scheduling.CodeUnknownTherapist,
		scheduling.CodeDateNotEligible,
		scheduling.CodeInvalidSlotAlignment,
		scheduling.CodeInvalidTransition:
		return http.StatusBadRequest, true
	case scheduling.CodeSlotTaken, scheduling.CodeConcurrentConflict:
		return http.StatusConflict, true
	case scheduling.CodeForbiddenActor:
		return http.StatusForbidden, true
	case scheduling.CodeBookingNotFound:
		return http.StatusNotFound, true
	}
	return 0, false
}

func respondEngineError(c *gin.Context, err error, fallback string) {
	if status, ok := engineErrorStatus(err); ok {
		c.JSON(status, gin.H{
			"success": false,
			"code":    scheduling.ErrorCode(err),
			"message": err.Error(),
		})
		return
	}
	utils.JSONError(c, http.StatusInternalServerError, fallback, err.Error())
}

// AvailableSlots answers the slot-availability query for one therapist/date.
func (hb *HandlerBundle) AvailableSlots(c *gin.Context) {
	therapistID := c.Query("therapist_id")
	date := c.Query("booking_date")
	if therapistID == "" || date == "" {
		utils.JSONError(c, http.StatusBadRequest, "therapist_id and booking_date are required", "")
		return
	}

	slots, err := hb.Engine.AvailableSlots(
		c.Request.Context(),
		therapistID,
		date,
		c.Query("service_id"),
		c.Query("client_id"),
		time.Now(),
	)
	if err != nil {
		respondEngineError(c, err, "Failed to compute availability")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": slots})
}

// CreateBooking runs the authoritative admission for a booking request.
func (hb *HandlerBundle) CreateBooking(c *gin.Context) {
	var req scheduling.AdmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	booking, err := hb.Engine.Admit(c.Request.Context(), req, time.Now())
	if err != nil {
		respondEngineError(c, err, "Failed to create booking")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": booking})
}

// ListBookings returns a paginated booking listing with optional filters.
func (hb *HandlerBundle) ListBookings(c *gin.Context) {
	filter := bookingRepo.ListFilter{
		ClientID:    c.Query("client_id"),
		TherapistID: c.Query("therapist_id"),
	}
	if status := c.Query("status"); status != "" {
		s := models.BookingStatus(status)
		if !s.IsValid() {
			utils.JSONError(c, http.StatusBadRequest, "unknown status filter", status)
			return
		}
		filter.Status = s
	}
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		utils.JSONError(c, http.StatusBadRequest, "page must be a positive integer", c.Query("page"))
		return
	}
	perPage, err := strconv.Atoi(c.DefaultQuery("per_page", "10"))
	if err != nil || perPage < 1 {
		utils.JSONError(c, http.StatusBadRequest, "per_page must be a positive integer", c.Query("per_page"))
		return
	}
	filter.Page, filter.PerPage = page, perPage

	result, err := hb.Bookings.List(c.Request.Context(), filter)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": result})
}

// GetBooking returns one booking by id.
func (hb *HandlerBundle) GetBooking(c *gin.Context) {
	booking, err := hb.Bookings.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch booking", err.Error())
		return
	}
	if booking == nil {
		utils.JSONError(c, http.StatusNotFound, "booking not found", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": booking})
}

// CancelBooking lets the owning client cancel a pending or approved booking.
func (hb *HandlerBundle) CancelBooking(c *gin.Context) {
	var input struct {
		ClientID string `json:"client_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	booking, err := hb.Engine.Transition(
		c.Request.Context(),
		c.Param("id"),
		models.StatusCancelled,
		scheduling.Actor{Role: scheduling.RoleClient, ID: input.ClientID},
		time.Now(),
	)
	if err != nil {
		respondEngineError(c, err, "Failed to cancel booking")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": booking})
}

// UpdateBookingStatus lets the booked therapist approve, reject or complete.
func (hb *HandlerBundle) UpdateBookingStatus(c *gin.Context) {
	var input struct {
		Status      string `json:"status" binding:"required"`
		TherapistID string `json:"therapist_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	booking, err := hb.Engine.Transition(
		c.Request.Context(),
		c.Param("id"),
		models.BookingStatus(input.Status),
		scheduling.Actor{Role: scheduling.RoleTherapist, ID: input.TherapistID},
		time.Now(),
	)
	if err != nil {
		respondEngineError(c, err, "Failed to update booking status")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": booking})
}
