package repository

import (
	"referee-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PatternRepository handles the historic pattern cache table
type PatternRepository struct {
	db *gorm.DB
}

// NewPatternRepository creates a new pattern repository
func NewPatternRepository(db *gorm.DB) *PatternRepository {
	return &PatternRepository{db: db}
}

// ReplaceForScope rewrites the cached rows produced by one detect pass.
// Rows are upserted on the grouping key so pattern ids stay stable across
// re-detection of the same group.
func (r *PatternRepository) ReplaceForScope(patterns []models.HistoricPattern) error {
	if len(patterns) == 0 {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "referee_id"}, {Name: "day_of_week"}, {Name: "location"},
			{Name: "time_slot"}, {Name: "level"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"frequency", "success_rate", "last_assigned", "updated_at"}),
	}).Create(&patterns).Error
}

// GetByID retrieves a cached pattern by ID
func (r *PatternRepository) GetByID(id uuid.UUID) (*models.HistoricPattern, error) {
	var pattern models.HistoricPattern
	err := r.db.First(&pattern, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &pattern, nil
}

// GetByKey retrieves the cached row for one grouping key
func (r *PatternRepository) GetByKey(refereeID uuid.UUID, dayOfWeek int, location string, slot models.TimeSlot, level models.GameLevel) (*models.HistoricPattern, error) {
	var pattern models.HistoricPattern
	err := r.db.First(&pattern,
		"referee_id = ? AND day_of_week = ? AND location = ? AND time_slot = ? AND level = ?",
		refereeID, dayOfWeek, location, slot, level).Error
	if err != nil {
		return nil, err
	}
	return &pattern, nil
}
