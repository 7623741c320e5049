package scheduling

import (
	"sort"
	"time"

	"referee-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
)

// BucketTime maps a clock time onto its mining bucket: morning before noon,
// afternoon before 17:00, evening otherwise.
func BucketTime(clock string) models.TimeSlot {
	t, err := time.Parse(TimeLayout, clock)
	if err != nil {
		return models.TimeSlotEvening
	}
	switch {
	case t.Hour() < 12:
		return models.TimeSlotMorning
	case t.Hour() < 17:
		return models.TimeSlotAfternoon
	default:
		return models.TimeSlotEvening
	}
}

// PatternKey identifies one recurring assignment group
type PatternKey struct {
	RefereeID uuid.UUID
	DayOfWeek int
	Location  string
	TimeSlot  models.TimeSlot
	Level     models.GameLevel
}

// MinedPattern is the aggregate for one key
type MinedPattern struct {
	Key          PatternKey
	Frequency    int
	SuccessRate  float64
	LastAssigned time.Time
}

// MinePatterns aggregates assignment history into recurring groups. Frequency
// counts completed assignments per key; success_rate is completed over all
// assignments the referee held in that group. Groups below minFrequency are
// dropped. Assignments must arrive preloaded with their games.
func MinePatterns(history []models.Assignment, minFrequency int) []MinedPattern {
	type counts struct {
		completed    int
		total        int
		lastAssigned time.Time
	}
	agg := make(map[PatternKey]*counts)
	for _, a := range history {
		k := PatternKey{
			RefereeID: a.RefereeID,
			DayOfWeek: int(a.Game.Date.Weekday()),
			Location:  a.Game.Location,
			TimeSlot:  BucketTime(a.Game.StartTime),
			Level:     a.Game.Level,
		}
		c, ok := agg[k]
		if !ok {
			c = &counts{}
			agg[k] = c
		}
		c.total++
		if a.Status == models.AssignmentStatusCompleted {
			c.completed++
			if a.Game.Date.After(c.lastAssigned) {
				c.lastAssigned = a.Game.Date
			}
		}
	}

	var mined []MinedPattern
	for k, c := range agg {
		if c.completed < minFrequency {
			continue
		}
		mined = append(mined, MinedPattern{
			Key:          k,
			Frequency:    c.completed,
			SuccessRate:  float64(c.completed) / float64(c.total),
			LastAssigned: c.lastAssigned,
		})
	}
	sort.Slice(mined, func(i, j int) bool {
		if mined[i].Frequency != mined[j].Frequency {
			return mined[i].Frequency > mined[j].Frequency
		}
		return mined[i].Key.RefereeID.String() < mined[j].Key.RefereeID.String()
	})
	return mined
}
