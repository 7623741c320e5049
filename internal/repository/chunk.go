package repository

import (
	"time"

	"referee-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChunkRepository handles database operations for chunks
type ChunkRepository struct {
	db *gorm.DB
}

// NewChunkRepository creates a new chunk repository
func NewChunkRepository(db *gorm.DB) *ChunkRepository {
	return &ChunkRepository{db: db}
}

// Create creates a chunk
func (r *ChunkRepository) Create(chunk *models.Chunk) error {
	return r.db.Create(chunk).Error
}

// GetByID retrieves a chunk by ID
func (r *ChunkRepository) GetByID(id uuid.UUID) (*models.Chunk, error) {
	var chunk models.Chunk
	err := r.db.First(&chunk, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &chunk, nil
}

// GetWithGames retrieves a chunk with its member games preloaded
func (r *ChunkRepository) GetWithGames(id uuid.UUID) (*models.Chunk, error) {
	var chunk models.Chunk
	err := r.db.Preload("Games").First(&chunk, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &chunk, nil
}

// ChunkFilters narrows chunk listings
type ChunkFilters struct {
	Location string
	Date     *time.Time
}

// GetAll retrieves chunks matching the filters with pagination
func (r *ChunkRepository) GetAll(filters ChunkFilters, limit, offset int) ([]models.Chunk, int64, error) {
	var chunks []models.Chunk
	var total int64

	query := r.db.Model(&models.Chunk{})
	if filters.Location != "" {
		query = query.Where("location = ?", filters.Location)
	}
	if filters.Date != nil {
		query = query.Where("date = ?", *filters.Date)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("date ASC, start_time ASC").Limit(limit).Offset(offset).Find(&chunks).Error
	return chunks, total, err
}

// Update updates a chunk
func (r *ChunkRepository) Update(chunk *models.Chunk) error {
	return r.db.Save(chunk).Error
}

// Delete deletes a chunk
func (r *ChunkRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Chunk{}, "id = ?", id).Error
}

// WithTx returns a repository bound to the given transaction
func (r *ChunkRepository) WithTx(tx *gorm.DB) *ChunkRepository {
	return &ChunkRepository{db: tx}
}
