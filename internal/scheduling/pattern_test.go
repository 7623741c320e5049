package scheduling

import (
	"testing"
	"time"

	"referee-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketTime(t *testing.T) {
	tests := []struct {
		clock    string
		expected models.TimeSlot
	}{
		{"08:00", models.TimeSlotMorning},
		{"11:59", models.TimeSlotMorning},
		{"12:00", models.TimeSlotAfternoon},
		{"16:59", models.TimeSlotAfternoon},
		{"17:00", models.TimeSlotEvening},
		{"23:00", models.TimeSlotEvening},
		{"garbage", models.TimeSlotEvening},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, BucketTime(tt.clock), "clock %s", tt.clock)
	}
}

func historyEntry(refereeID uuid.UUID, date time.Time, start, location string, level models.GameLevel, status models.AssignmentStatus) models.Assignment {
	return models.Assignment{
		BaseModel: models.BaseModel{ID: uuid.New()},
		RefereeID: refereeID,
		Status:    status,
		Game: models.Game{
			Date:      date,
			StartTime: start,
			Location:  location,
			Level:     level,
		},
	}
}

func TestMinePatterns(t *testing.T) {
	refereeID := uuid.New()
	// consecutive Saturdays
	sat1 := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
	sat2 := sat1.AddDate(0, 0, 7)
	sat3 := sat1.AddDate(0, 0, 14)

	t.Run("aggregates one recurring group", func(t *testing.T) {
		history := []models.Assignment{
			historyEntry(refereeID, sat1, "18:00", "North Hall", models.GameLevelCompetitive, models.AssignmentStatusCompleted),
			historyEntry(refereeID, sat2, "18:30", "North Hall", models.GameLevelCompetitive, models.AssignmentStatusCompleted),
			historyEntry(refereeID, sat3, "19:00", "North Hall", models.GameLevelCompetitive, models.AssignmentStatusCompleted),
		}

		mined := MinePatterns(history, 2)
		require.Len(t, mined, 1)
		p := mined[0]
		assert.Equal(t, refereeID, p.Key.RefereeID)
		assert.Equal(t, int(time.Saturday), p.Key.DayOfWeek)
		assert.Equal(t, "North Hall", p.Key.Location)
		assert.Equal(t, models.TimeSlotEvening, p.Key.TimeSlot)
		assert.Equal(t, 3, p.Frequency)
		assert.Equal(t, 1.0, p.SuccessRate)
		assert.Equal(t, sat3, p.LastAssigned)
	})

	t.Run("declined assignments lower the success rate", func(t *testing.T) {
		history := []models.Assignment{
			historyEntry(refereeID, sat1, "18:00", "North Hall", models.GameLevelCompetitive, models.AssignmentStatusCompleted),
			historyEntry(refereeID, sat2, "18:00", "North Hall", models.GameLevelCompetitive, models.AssignmentStatusCompleted),
			historyEntry(refereeID, sat3, "18:00", "North Hall", models.GameLevelCompetitive, models.AssignmentStatusDeclined),
			historyEntry(refereeID, sat3, "18:00", "North Hall", models.GameLevelCompetitive, models.AssignmentStatusDeclined),
		}

		mined := MinePatterns(history, 2)
		require.Len(t, mined, 1)
		assert.Equal(t, 2, mined[0].Frequency)
		assert.InDelta(t, 0.5, mined[0].SuccessRate, 1e-9)
	})

	t.Run("groups below the frequency floor are dropped", func(t *testing.T) {
		history := []models.Assignment{
			historyEntry(refereeID, sat1, "18:00", "North Hall", models.GameLevelCompetitive, models.AssignmentStatusCompleted),
		}
		assert.Empty(t, MinePatterns(history, 2))
	})

	t.Run("different locations split the key", func(t *testing.T) {
		history := []models.Assignment{
			historyEntry(refereeID, sat1, "18:00", "North Hall", models.GameLevelCompetitive, models.AssignmentStatusCompleted),
			historyEntry(refereeID, sat2, "18:00", "North Hall", models.GameLevelCompetitive, models.AssignmentStatusCompleted),
			historyEntry(refereeID, sat1, "18:00", "South Arena", models.GameLevelCompetitive, models.AssignmentStatusCompleted),
			historyEntry(refereeID, sat2, "18:00", "South Arena", models.GameLevelCompetitive, models.AssignmentStatusCompleted),
			historyEntry(refereeID, sat3, "18:00", "South Arena", models.GameLevelCompetitive, models.AssignmentStatusCompleted),
		}

		mined := MinePatterns(history, 2)
		require.Len(t, mined, 2)
		// higher frequency first
		assert.Equal(t, "South Arena", mined[0].Key.Location)
		assert.Equal(t, 3, mined[0].Frequency)
		assert.Equal(t, "North Hall", mined[1].Key.Location)
	})
}
