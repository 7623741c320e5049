package repository

import (
	"time"

	"referee-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AvailabilityRepository handles database operations for availability windows
type AvailabilityRepository struct {
	db *gorm.DB
}

// NewAvailabilityRepository creates a new availability repository
func NewAvailabilityRepository(db *gorm.DB) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

// Create creates an availability window
func (r *AvailabilityRepository) Create(window *models.AvailabilityWindow) error {
	return r.db.Create(window).Error
}

// GetByID retrieves an availability window by ID
func (r *AvailabilityRepository) GetByID(id uuid.UUID) (*models.AvailabilityWindow, error) {
	var window models.AvailabilityWindow
	err := r.db.First(&window, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &window, nil
}

// GetByRefereeAndDate retrieves the referee's windows on one date
func (r *AvailabilityRepository) GetByRefereeAndDate(refereeID uuid.UUID, date time.Time) ([]models.AvailabilityWindow, error) {
	var windows []models.AvailabilityWindow
	err := r.db.Where("referee_id = ? AND date = ?", refereeID, date).
		Order("start_time ASC").Find(&windows).Error
	return windows, err
}

// GetByReferee retrieves all windows of a referee, soonest first
func (r *AvailabilityRepository) GetByReferee(refereeID uuid.UUID, limit, offset int) ([]models.AvailabilityWindow, int64, error) {
	var windows []models.AvailabilityWindow
	var total int64

	if err := r.db.Model(&models.AvailabilityWindow{}).Where("referee_id = ?", refereeID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("referee_id = ?", refereeID).
		Order("date ASC, start_time ASC").Limit(limit).Offset(offset).Find(&windows).Error
	return windows, total, err
}

// Delete deletes an availability window
func (r *AvailabilityRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.AvailabilityWindow{}, "id = ?", id).Error
}
