package repository

import (
	"time"

	"referee-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SuggestionRepository handles database operations for AI suggestions
type SuggestionRepository struct {
	db *gorm.DB
}

// NewSuggestionRepository creates a new suggestion repository
func NewSuggestionRepository(db *gorm.DB) *SuggestionRepository {
	return &SuggestionRepository{db: db}
}

// CreateBatch persists a batch of suggestions in one transaction
func (r *SuggestionRepository) CreateBatch(suggestions []models.AISuggestion) error {
	if len(suggestions) == 0 {
		return nil
	}
	return r.db.Create(&suggestions).Error
}

// GetByID retrieves a suggestion by ID
func (r *SuggestionRepository) GetByID(id uuid.UUID) (*models.AISuggestion, error) {
	var suggestion models.AISuggestion
	err := r.db.First(&suggestion, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &suggestion, nil
}

// GetPendingByGame retrieves pending suggestions for a game by confidence
func (r *SuggestionRepository) GetPendingByGame(gameID uuid.UUID) ([]models.AISuggestion, error) {
	var suggestions []models.AISuggestion
	err := r.db.Where("game_id = ? AND status = ?", gameID, models.SuggestionStatusPending).
		Order("confidence_score DESC").Find(&suggestions).Error
	return suggestions, err
}

// Update updates a suggestion
func (r *SuggestionRepository) Update(suggestion *models.AISuggestion) error {
	return r.db.Save(suggestion).Error
}

// DeleteExpired removes pending suggestions past their TTL. Expiry is
// enforced lazily at accept time; this exists for eventual cleanup only.
func (r *SuggestionRepository) DeleteExpired(now time.Time) (int64, error) {
	result := r.db.Where("status = ? AND expires_at < ?", models.SuggestionStatusPending, now).
		Delete(&models.AISuggestion{})
	return result.RowsAffected, result.Error
}

// WithTx returns a repository bound to the given transaction
func (r *SuggestionRepository) WithTx(tx *gorm.DB) *SuggestionRepository {
	return &SuggestionRepository{db: tx}
}
