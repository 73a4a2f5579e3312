package models

// Slot availability reasons. Empty when the slot is free.
const (
	SlotReasonTaken = "taken" // held by another client's pending/approved booking
	SlotReasonOwn   = "own"   // held by the requesting client's own booking
)

// Slot is a derived availability entry for one (therapist, date) query.
// It is never persisted; its lifetime is a single response.
type Slot struct {
	Time      string `json:"time"` // slot start, "HH:MM" 24h
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"` // "taken" or "own" when unavailable
}
