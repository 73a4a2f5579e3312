package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCalendar = CalendarPolicy{UTCOffsetHours: 8}

func TestBusinessToday_FixedOffset(t *testing.T) {
	// 15:59 UTC is 23:59 in the business calendar: still the same day.
	now := time.Date(2026, 3, 10, 15, 59, 0, 0, time.UTC)
	assert.Equal(t, "2026-03-10", testCalendar.BusinessToday(now))

	// One minute later the business day rolls over even though UTC has not.
	now = time.Date(2026, 3, 10, 16, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-03-11", testCalendar.BusinessToday(now))
}

func TestBusinessToday_IgnoresServerLocation(t *testing.T) {
	instant := time.Date(2026, 3, 10, 15, 59, 0, 0, time.UTC)
	elsewhere := instant.In(time.FixedZone("UTC-11", -11*60*60))
	assert.Equal(t, testCalendar.BusinessToday(instant), testCalendar.BusinessToday(elsewhere))
}

func TestEarliestBookableDate_MonotonicDayStepping(t *testing.T) {
	// earliestBookableDate(t) + 1 day == earliestBookableDate(t + 1 day), for
	// instants across the day including both sides of the rollover.
	for _, now := range []time.Time{
		time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 10, 12, 30, 45, 0, time.UTC),
		time.Date(2026, 3, 10, 15, 59, 59, 0, time.UTC),
		time.Date(2026, 3, 10, 16, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 10, 23, 59, 59, 0, time.UTC),
	} {
		got := testCalendar.EarliestBookableDate(now)
		next := testCalendar.EarliestBookableDate(now.AddDate(0, 0, 1))

		d, err := time.Parse(DateLayout, got)
		require.NoError(t, err)
		assert.Equal(t, d.AddDate(0, 0, 1).Format(DateLayout), next, "now=%s", now)
	}
}

func TestIsDateEligible(t *testing.T) {
	now := time.Date(2026, 3, 10, 4, 0, 0, 0, time.UTC) // business date 2026-03-10

	tests := []struct {
		name      string
		candidate string
		want      bool
	}{
		{"past date", "2026-03-01", false},
		{"yesterday", "2026-03-09", false},
		{"same day", "2026-03-10", false},
		{"tomorrow", "2026-03-11", true},
		{"next week", "2026-03-17", true},
		{"garbage", "not-a-date", false},
		{"wrong layout", "10-03-2026", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, testCalendar.IsDateEligible(tc.candidate, now))
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-11")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-11", d.Format(DateLayout))

	for _, s := range []string{"", "11-03-2026", "2026/03/11", "not-a-date"} {
		_, err := ParseDate(s)
		assert.Error(t, err, "input %q", s)
	}
}

func TestIsDateEligible_NearMidnightRollover(t *testing.T) {
	// At 15:59 UTC the business day is still 03-10, so 03-11 is bookable.
	before := time.Date(2026, 3, 10, 15, 59, 0, 0, time.UTC)
	assert.True(t, testCalendar.IsDateEligible("2026-03-11", before))

	// At 16:00 UTC the business day becomes 03-11; 03-11 is now same-day.
	after := time.Date(2026, 3, 10, 16, 0, 0, 0, time.UTC)
	assert.False(t, testCalendar.IsDateEligible("2026-03-11", after))
	assert.True(t, testCalendar.IsDateEligible("2026-03-12", after))
}
