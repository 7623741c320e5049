package repository

import (
	"referee-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PositionRepository handles database operations for game positions
type PositionRepository struct {
	db *gorm.DB
}

// NewPositionRepository creates a new position repository
func NewPositionRepository(db *gorm.DB) *PositionRepository {
	return &PositionRepository{db: db}
}

// GetByID retrieves a position by ID
func (r *PositionRepository) GetByID(id uuid.UUID) (*models.Position, error) {
	var position models.Position
	err := r.db.First(&position, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &position, nil
}

// GetByGameID retrieves all positions of a game
func (r *PositionRepository) GetByGameID(gameID uuid.UUID) ([]models.Position, error) {
	var positions []models.Position
	err := r.db.Where("game_id = ?", gameID).Order("name ASC").Find(&positions).Error
	return positions, err
}

// WithTx returns a repository bound to the given transaction
func (r *PositionRepository) WithTx(tx *gorm.DB) *PositionRepository {
	return &PositionRepository{db: tx}
}
