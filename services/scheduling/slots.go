package scheduling

import (
	"fmt"

	"therabook/models"
)

// ParseClock parses an "HH:MM" 24h clock string into minutes from midnight.
func ParseClock(s string) (int, error) {
	var hh, mm int
	if _, err := fmt.Sscanf(s, "%2d:%2d", &hh, &mm); err != nil {
		return 0, fmt.Errorf("invalid clock time %q: expected HH:MM", s)
	}
	if hh < 0 || hh > 23 || mm < 0 || mm > 59 {
		return 0, fmt.Errorf("invalid clock time %q: out of range", s)
	}
	return hh*60 + mm, nil
}

// FormatClock renders minutes from midnight as "HH:MM".
func FormatClock(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}

// GenerateSlots enumerates the slot start times for one service duration
// within a therapist's working window. Starting at the window open, it steps
// by the duration and keeps every start whose full duration fits before the
// close (start + duration <= close). Pure function: same inputs, same ordered
// sequence.
func GenerateSlots(window models.WorkingWindow, durationMinutes int) []string {
	if durationMinutes <= 0 || window.CloseMinute <= window.OpenMinute {
		return nil
	}

	var slots []string
	for start := window.OpenMinute; start+durationMinutes <= window.CloseMinute; start += durationMinutes {
		slots = append(slots, FormatClock(start))
	}
	return slots
}
