package scheduling

import (
	"fmt"
	"time"
)

// DefaultGameDuration is the implied length of a game that declares only a
// start time. Conflict windows and adjacency grading both use it.
const DefaultGameDuration = 2 * time.Hour

// TimeLayout is the wire format for game and window clock times.
const TimeLayout = "15:04"

// Window is a half-open time interval [Start, End) on a single calendar day.
type Window struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two windows intersect: start1 < end2 && start2 < end1.
func (w Window) Overlaps(other Window) bool {
	return w.Start.Before(other.End) && other.Start.Before(w.End)
}

// Gap returns the distance between two non-overlapping windows. Overlapping
// windows have a zero gap.
func (w Window) Gap(other Window) time.Duration {
	if w.Overlaps(other) {
		return 0
	}
	if w.End.After(other.Start) {
		return w.Start.Sub(other.End)
	}
	return other.Start.Sub(w.End)
}

// ParseClock parses an "HH:MM" clock time onto the given date.
func ParseClock(date time.Time, clock string) (time.Time, error) {
	t, err := time.Parse(TimeLayout, clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse clock time %q: %w", clock, err)
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location()), nil
}

// GameWindow builds the conflict window for a game: its declared start plus
// DefaultGameDuration unless an explicit end time is supplied.
func GameWindow(date time.Time, startTime, endTime string) (Window, error) {
	start, err := ParseClock(date, startTime)
	if err != nil {
		return Window{}, err
	}
	if endTime == "" {
		return Window{Start: start, End: start.Add(DefaultGameDuration)}, nil
	}
	end, err := ParseClock(date, endTime)
	if err != nil {
		return Window{}, err
	}
	if !end.After(start) {
		// midnight-crossing games end on the next day
		end = end.Add(24 * time.Hour)
	}
	return Window{Start: start, End: end}, nil
}

// SameDate reports whether two times fall on the same calendar date.
func SameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
