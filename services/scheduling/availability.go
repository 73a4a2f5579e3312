package scheduling

import (
	"therabook/models"
	"therabook/utils"

	"go.uber.org/zap"
)

// FilterAvailability marks each candidate slot available or taken against the
// live bookings for one therapist/date. A slot is unavailable iff a booking in
// a blocking status (pending or approved) holds its start time; terminal
// statuses vacate the slot. Slots held by the requesting client's own booking
// are flagged distinctly so the caller can say "you already booked this".
//
// If several blocking bookings somehow share one slot, unavailability is
// sticky: any blocker keeps it unavailable. The duplicate is a data-integrity
// anomaly reported upstream, not reconciled here.
func FilterAvailability(candidateSlots []string, existingBookings []models.Booking, requestingClientID string) []models.Slot {
	blockers := make(map[string][]models.Booking, len(existingBookings))
	for _, b := range existingBookings {
		if !b.Status.Blocks() {
			continue
		}
		blockers[b.Time] = append(blockers[b.Time], b)
	}

	logger := utils.GetLogger()
	slots := make([]models.Slot, 0, len(candidateSlots))
	for _, start := range candidateSlots {
		holding := blockers[start]
		if len(holding) == 0 {
			slots = append(slots, models.Slot{Time: start, Available: true})
			continue
		}
		if len(holding) > 1 {
			logger.Warn("multiple blocking bookings occupy one slot",
				zap.String("therapistID", holding[0].TherapistID),
				zap.String("date", holding[0].Date),
				zap.String("time", start),
				zap.Int("count", len(holding)))
		}

		reason := models.SlotReasonTaken
		for _, b := range holding {
			if requestingClientID != "" && b.ClientID == requestingClientID {
				reason = models.SlotReasonOwn
				break
			}
		}
		slots = append(slots, models.Slot{Time: start, Available: false, Reason: reason})
	}
	return slots
}
