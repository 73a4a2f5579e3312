package models

// BookingStatus is the closed set of booking lifecycle states.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusApproved  BookingStatus = "approved"
	StatusRejected  BookingStatus = "rejected"
	StatusCompleted BookingStatus = "completed"
	StatusExpired   BookingStatus = "expired"
	StatusCancelled BookingStatus = "cancelled"
)

// allowedTransitions is the exhaustive transition table. Anything not listed
// here is rejected; rejected/completed/expired/cancelled are terminal.
var allowedTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:  {StatusApproved, StatusRejected, StatusCancelled, StatusExpired},
	StatusApproved: {StatusCompleted, StatusCancelled},
}

// IsValid reports whether s is a known status.
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCompleted, StatusExpired, StatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether the transition s -> to is listed in the table.
func (s BookingStatus) CanTransitionTo(to BookingStatus) bool {
	for _, next := range allowedTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// Blocks reports whether a booking in this status occupies its slot.
// Terminal statuses vacate the slot.
func (s BookingStatus) Blocks() bool {
	return s == StatusPending || s == StatusApproved
}

// BlockingStatuses lists the statuses that occupy a slot, for repository queries.
func BlockingStatuses() []BookingStatus {
	return []BookingStatus{StatusPending, StatusApproved}
}
