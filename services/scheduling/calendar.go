package scheduling

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for business calendar dates.
const DateLayout = "2006-01-02"

// CalendarPolicy decides which calendar dates are open for booking. All
// decisions are made against one fixed UTC offset; a client's local clock
// never moves the boundary.
type CalendarPolicy struct {
	UTCOffsetHours int
}

// businessMidnight truncates the instant to midnight of its business-calendar
// day. Day arithmetic stays on time.Time to avoid off-by-one drift around the
// midnight rollover.
func (p CalendarPolicy) businessMidnight(now time.Time) time.Time {
	shifted := now.UTC().Add(time.Duration(p.UTCOffsetHours) * time.Hour)
	return time.Date(shifted.Year(), shifted.Month(), shifted.Day(), 0, 0, 0, 0, time.UTC)
}

// BusinessToday returns "today" in the business calendar.
func (p CalendarPolicy) BusinessToday(now time.Time) string {
	return p.businessMidnight(now).Format(DateLayout)
}

// EarliestBookableDate returns the first date open for booking: tomorrow in
// the business calendar. Same-day bookings are never accepted.
func (p CalendarPolicy) EarliestBookableDate(now time.Time) string {
	return p.businessMidnight(now).AddDate(0, 0, 1).Format(DateLayout)
}

// IsDateEligible reports whether the candidate date may receive a booking at
// the given instant. ISO dates compare correctly as strings.
func (p CalendarPolicy) IsDateEligible(candidate string, now time.Time) bool {
	if _, err := ParseDate(candidate); err != nil {
		return false
	}
	return candidate >= p.EarliestBookableDate(now)
}

// ParseDate validates a wire-format calendar date.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return d, nil
}
