package models

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilityWindow is an explicit block-out or open window declared by a
// referee for one date. Two windows for the same referee on the same date
// must not overlap.
type AvailabilityWindow struct {
	BaseModel
	RefereeID   uuid.UUID `json:"referee_id" gorm:"type:uuid;not null;index" validate:"required"`
	Date        time.Time `json:"date" gorm:"type:date;not null;index" validate:"required"`
	StartTime   string    `json:"start_time" gorm:"size:5;not null" validate:"required"`
	EndTime     string    `json:"end_time" gorm:"size:5;not null" validate:"required"`
	IsAvailable bool      `json:"is_available" gorm:"not null"`
	Reason      string    `json:"reason,omitempty" gorm:"size:200"`
}

// TableName returns the table name for AvailabilityWindow
func (AvailabilityWindow) TableName() string {
	return "availability_windows"
}
