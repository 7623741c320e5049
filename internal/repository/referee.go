package repository

import (
	"referee-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RefereeRepository handles database operations for referee profiles
type RefereeRepository struct {
	db *gorm.DB
}

// NewRefereeRepository creates a new referee repository
func NewRefereeRepository(db *gorm.DB) *RefereeRepository {
	return &RefereeRepository{db: db}
}

// Create creates a referee profile row (seeding and profile mirror sync)
func (r *RefereeRepository) Create(referee *models.Referee) error {
	return r.db.Create(referee).Error
}

// GetByID retrieves a referee by ID
func (r *RefereeRepository) GetByID(id uuid.UUID) (*models.Referee, error) {
	var referee models.Referee
	err := r.db.First(&referee, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &referee, nil
}

// GetByEmail retrieves a referee by email
func (r *RefereeRepository) GetByEmail(email string) (*models.Referee, error) {
	var referee models.Referee
	err := r.db.First(&referee, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &referee, nil
}

// GetAll retrieves referees with pagination
func (r *RefereeRepository) GetAll(limit, offset int) ([]models.Referee, int64, error) {
	var referees []models.Referee
	var total int64

	if err := r.db.Model(&models.Referee{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("name ASC").Limit(limit).Offset(offset).Find(&referees).Error
	return referees, total, err
}

// GetAvailable retrieves every profile with is_available = true
func (r *RefereeRepository) GetAvailable() ([]models.Referee, error) {
	var referees []models.Referee
	err := r.db.Where("is_available = ?", true).Find(&referees).Error
	return referees, err
}

// Update updates a referee profile row
func (r *RefereeRepository) Update(referee *models.Referee) error {
	return r.db.Save(referee).Error
}

// WithTx returns a repository bound to the given transaction
func (r *RefereeRepository) WithTx(tx *gorm.DB) *RefereeRepository {
	return &RefereeRepository{db: tx}
}
