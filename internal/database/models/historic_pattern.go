package models

import (
	"time"

	"github.com/google/uuid"
)

// HistoricPattern caches one mined (referee, day-of-week, location,
// time-slot, level) group. Rows are rewritten by each detect pass over
// their scope; the table exists so applyPattern can address a pattern by id.
type HistoricPattern struct {
	BaseModel
	RefereeID    uuid.UUID `json:"referee_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_pattern_key" validate:"required"`
	DayOfWeek    int       `json:"day_of_week" gorm:"not null;uniqueIndex:idx_pattern_key" validate:"min=0,max=6"`
	Location     string    `json:"location" gorm:"size:200;not null;uniqueIndex:idx_pattern_key"`
	TimeSlot     TimeSlot  `json:"time_slot" gorm:"type:varchar(50);not null;uniqueIndex:idx_pattern_key"`
	Level        GameLevel `json:"level" gorm:"type:varchar(50);not null;uniqueIndex:idx_pattern_key"`
	Frequency    int       `json:"frequency" gorm:"not null"`
	SuccessRate  float64   `json:"success_rate" gorm:"not null"`
	LastAssigned time.Time `json:"last_assigned" gorm:"type:date"`

	// Relationships
	Referee Referee `json:"referee,omitempty" gorm:"foreignKey:RefereeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for HistoricPattern
func (HistoricPattern) TableName() string {
	return "historic_patterns"
}
