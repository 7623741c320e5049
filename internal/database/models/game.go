package models

import (
	"time"

	"github.com/google/uuid"
)

// Game represents a scheduled event that needs officiating staff
type Game struct {
	BaseModel
	Date           time.Time  `json:"date" gorm:"type:date;not null;index" validate:"required"`
	StartTime      string     `json:"start_time" gorm:"size:5;not null" validate:"required"`
	EndTime        string     `json:"end_time,omitempty" gorm:"size:5"`
	Location       string     `json:"location" gorm:"size:200;not null;index" validate:"required,min=1,max=200"`
	Level          GameLevel  `json:"level" gorm:"type:varchar(50);not null" validate:"required"`
	GameType       GameType   `json:"game_type" gorm:"type:varchar(50);not null" validate:"required"`
	RefsNeeded     int        `json:"refs_needed" gorm:"not null;default:1" validate:"required,min=1,max=10"`
	WageMultiplier float64    `json:"wage_multiplier" gorm:"not null;default:1" validate:"required,gt=0,lte=5"`
	Status         GameStatus `json:"status" gorm:"type:varchar(50);not null;default:'unassigned'"`
	LocationLat    float64    `json:"location_lat"`
	LocationLng    float64    `json:"location_lng"`
	ChunkID        *uuid.UUID `json:"chunk_id,omitempty" gorm:"type:uuid;index"`

	// Relationships
	Positions   []Position   `json:"positions,omitempty" gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`
	Assignments []Assignment `json:"assignments,omitempty" gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Game
func (Game) TableName() string {
	return "games"
}
