package models

import (
	"time"

	"github.com/google/uuid"
)

// Chunk groups same-location, same-date games into one atomic assignment
// unit. Member games point at it via games.chunk_id.
type Chunk struct {
	BaseModel
	Name              string     `json:"name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Location          string     `json:"location" gorm:"size:200;not null;index"`
	Date              time.Time  `json:"date" gorm:"type:date;not null;index"`
	StartTime         string     `json:"start_time" gorm:"size:5;not null"`
	EndTime           string     `json:"end_time" gorm:"size:5;not null"`
	AssignedRefereeID *uuid.UUID `json:"assigned_referee_id,omitempty" gorm:"type:uuid;index"`

	// Relationships
	Games           []Game   `json:"games,omitempty" gorm:"foreignKey:ChunkID"`
	AssignedReferee *Referee `json:"assigned_referee,omitempty" gorm:"foreignKey:AssignedRefereeID"`
}

// TableName returns the table name for Chunk
func (Chunk) TableName() string {
	return "chunks"
}
