package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDate = time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)

func mustWindow(t *testing.T, start, end string) Window {
	t.Helper()
	w, err := GameWindow(testDate, start, end)
	require.NoError(t, err)
	return w
}

func TestWindowOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a        Window
		b        Window
		overlaps bool
	}{
		{"identical windows", mustWindow(t, "19:00", "21:00"), mustWindow(t, "19:00", "21:00"), true},
		{"fifteen minute offset", mustWindow(t, "19:00", "21:00"), mustWindow(t, "19:15", "21:15"), true},
		{"contained window", mustWindow(t, "18:00", "22:00"), mustWindow(t, "19:00", "20:00"), true},
		{"back to back", mustWindow(t, "18:00", "20:00"), mustWindow(t, "20:00", "22:00"), false},
		{"disjoint", mustWindow(t, "08:00", "10:00"), mustWindow(t, "18:00", "20:00"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlaps, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.overlaps, tt.b.Overlaps(tt.a))
		})
	}
}

func TestWindowGap(t *testing.T) {
	a := mustWindow(t, "18:00", "19:30")
	b := mustWindow(t, "20:00", "21:30")

	assert.Equal(t, 30*time.Minute, a.Gap(b))
	assert.Equal(t, 30*time.Minute, b.Gap(a))

	overlapping := mustWindow(t, "19:00", "20:30")
	assert.Equal(t, time.Duration(0), a.Gap(overlapping))
}

func TestGameWindow(t *testing.T) {
	t.Run("explicit end time", func(t *testing.T) {
		w, err := GameWindow(testDate, "19:00", "20:30")
		require.NoError(t, err)
		assert.Equal(t, 19, w.Start.Hour())
		assert.Equal(t, 90*time.Minute, w.End.Sub(w.Start))
	})

	t.Run("missing end time implies default duration", func(t *testing.T) {
		w, err := GameWindow(testDate, "19:00", "")
		require.NoError(t, err)
		assert.Equal(t, DefaultGameDuration, w.End.Sub(w.Start))
	})

	t.Run("midnight crossing ends next day", func(t *testing.T) {
		w, err := GameWindow(testDate, "23:00", "01:00")
		require.NoError(t, err)
		assert.True(t, w.End.After(w.Start))
		assert.Equal(t, 2*time.Hour, w.End.Sub(w.Start))
	})

	t.Run("malformed start time", func(t *testing.T) {
		_, err := GameWindow(testDate, "25:99", "")
		assert.Error(t, err)
	})
}

func TestParseClock(t *testing.T) {
	parsed, err := ParseClock(testDate, "14:45")
	require.NoError(t, err)
	assert.Equal(t, 14, parsed.Hour())
	assert.Equal(t, 45, parsed.Minute())
	assert.Equal(t, testDate.Day(), parsed.Day())

	_, err = ParseClock(testDate, "not a time")
	assert.Error(t, err)
}

func TestSameDate(t *testing.T) {
	assert.True(t, SameDate(testDate, testDate.Add(23*time.Hour)))
	assert.False(t, SameDate(testDate, testDate.Add(25*time.Hour)))
}
