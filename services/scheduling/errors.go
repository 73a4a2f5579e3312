package scheduling

import (
	"errors"
	"fmt"
)

// Error codes surfaced to callers. All are recoverable and user-facing; the
// user resubmits with a corrected choice, nothing is retried automatically.
const (
	CodeUnknownOrInactiveService = "unknownOrInactiveService"
	CodeUnknownTherapist         = "unknownTherapist"
	CodeDateNotEligible          = "dateNotEligible"
	CodeInvalidSlotAlignment     = "invalidSlotAlignment"
	CodeSlotTaken                = "slotTaken"
	CodeConcurrentConflict       = "concurrentConflict"
	CodeBookingNotFound          = "bookingNotFound"
	CodeInvalidTransition        = "invalidTransition"
	CodeForbiddenActor           = "forbiddenActor"
)

// BookingError is a typed, user-facing engine error.
type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewBookingError builds a BookingError with the given code.
func NewBookingError(code, msg string) error {
	return &BookingError{
		Code:    code,
		Message: msg,
	}
}

// ErrorCode extracts the engine error code, or "" for untyped errors.
func ErrorCode(err error) string {
	var be *BookingError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
