package models

import "github.com/google/uuid"

// Position is a named officiating slot within a game. A game exposes
// exactly refs_needed positions, created alongside the game.
type Position struct {
	BaseModel
	GameID uuid.UUID `json:"game_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name   string    `json:"name" gorm:"size:50;not null" validate:"required"`
}

// TableName returns the table name for Position
func (Position) TableName() string {
	return "positions"
}
