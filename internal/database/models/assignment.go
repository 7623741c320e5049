package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Assignment is a referee's claim on one position of one game. Soft deleted
// so uniqueness holds among non-deleted rows only; the partial unique
// indexes backing that are created in database.Initialize.
type Assignment struct {
	BaseModel
	GameID         uuid.UUID        `json:"game_id" gorm:"type:uuid;not null;index" validate:"required"`
	RefereeID      uuid.UUID        `json:"referee_id" gorm:"type:uuid;not null;index" validate:"required"`
	PositionID     uuid.UUID        `json:"position_id" gorm:"type:uuid;not null;index" validate:"required"`
	Status         AssignmentStatus `json:"status" gorm:"type:varchar(50);not null;default:'pending'"`
	CalculatedWage float64          `json:"calculated_wage" gorm:"not null"`
	DeletedAt      gorm.DeletedAt   `json:"deleted_at,omitempty" gorm:"index"`

	// Relationships
	Game     Game     `json:"game,omitempty" gorm:"foreignKey:GameID"`
	Referee  Referee  `json:"referee,omitempty" gorm:"foreignKey:RefereeID"`
	Position Position `json:"position,omitempty" gorm:"foreignKey:PositionID"`
}

// TableName returns the table name for Assignment
func (Assignment) TableName() string {
	return "assignments"
}
