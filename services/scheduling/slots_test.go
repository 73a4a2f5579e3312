package scheduling

import (
	"testing"

	"therabook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func window(open, close string) models.WorkingWindow {
	o, err := ParseClock(open)
	if err != nil {
		panic(err)
	}
	c, err := ParseClock(close)
	if err != nil {
		panic(err)
	}
	return models.WorkingWindow{OpenMinute: o, CloseMinute: c}
}

func TestGenerateSlots_HourGrid(t *testing.T) {
	got := GenerateSlots(window("09:00", "17:00"), 60)
	want := []string{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00"}
	assert.Equal(t, want, got)
}

func TestGenerateSlots_NinetyMinuteGrid(t *testing.T) {
	// 15:00 + 90 = 16:30 fits; the next start 16:30 would overflow the close.
	got := GenerateSlots(window("09:00", "17:00"), 90)
	want := []string{"09:00", "10:30", "12:00", "13:30", "15:00"}
	require.Len(t, got, 5)
	assert.Equal(t, want, got)
}

func TestGenerateSlots_ExactBoundary(t *testing.T) {
	// A start whose duration lands exactly on the close is kept; the next is not.
	got := GenerateSlots(window("09:00", "17:00"), 60)
	require.NotEmpty(t, got)
	assert.Equal(t, "16:00", got[len(got)-1])
	assert.NotContains(t, got, "17:00")
}

func TestGenerateSlots_Degenerate(t *testing.T) {
	assert.Nil(t, GenerateSlots(window("09:00", "17:00"), 0))
	assert.Nil(t, GenerateSlots(window("09:00", "17:00"), -30))
	assert.Nil(t, GenerateSlots(window("17:00", "09:00"), 60))
	assert.Nil(t, GenerateSlots(window("09:00", "09:00"), 60))
	// Duration longer than the whole window leaves no slot.
	assert.Nil(t, GenerateSlots(window("09:00", "10:00"), 90))
}

func TestGenerateSlots_Deterministic(t *testing.T) {
	w := window("08:30", "12:30")
	assert.Equal(t, GenerateSlots(w, 45), GenerateSlots(w, 45))
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"09:00", 540, false},
		{"00:00", 0, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"09:60", 0, true},
		{"9am", 0, true},
		{"", 0, true},
	}
	for _, tc := range tests {
		got, err := ParseClock(tc.in)
		if tc.wantErr {
			assert.Error(t, err, "input %q", tc.in)
			continue
		}
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestFormatClock_RoundTrip(t *testing.T) {
	for _, s := range []string{"00:00", "09:05", "15:30", "23:59"} {
		m, err := ParseClock(s)
		require.NoError(t, err)
		assert.Equal(t, s, FormatClock(m))
	}
}
