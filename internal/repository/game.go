package repository

import (
	"fmt"
	"time"

	"referee-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GameRepository handles database operations for games and their positions
type GameRepository struct {
	db *gorm.DB
}

// NewGameRepository creates a new game repository
func NewGameRepository(db *gorm.DB) *GameRepository {
	return &GameRepository{db: db}
}

// Create creates a game together with its refs_needed positions
func (r *GameRepository) Create(game *models.Game) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(game).Error; err != nil {
			return err
		}
		for i := 1; i <= game.RefsNeeded; i++ {
			pos := &models.Position{
				GameID: game.ID,
				Name:   fmt.Sprintf("Referee %d", i),
			}
			if err := tx.Create(pos).Error; err != nil {
				return err
			}
			game.Positions = append(game.Positions, *pos)
		}
		return nil
	})
}

// GetByID retrieves a game by ID
func (r *GameRepository) GetByID(id uuid.UUID) (*models.Game, error) {
	var game models.Game
	err := r.db.First(&game, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// GetWithPositions retrieves a game with its positions preloaded
func (r *GameRepository) GetWithPositions(id uuid.UUID) (*models.Game, error) {
	var game models.Game
	err := r.db.Preload("Positions").First(&game, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// GetByIDs retrieves a set of games by id, no particular order
func (r *GameRepository) GetByIDs(ids []uuid.UUID) ([]models.Game, error) {
	var games []models.Game
	err := r.db.Where("id IN ?", ids).Find(&games).Error
	return games, err
}

// GameFilters narrows game listings
type GameFilters struct {
	Status    models.GameStatus
	Location  string
	StartDate *time.Time
	EndDate   *time.Time
}

// GetAll retrieves games matching the filters with pagination
func (r *GameRepository) GetAll(filters GameFilters, limit, offset int) ([]models.Game, int64, error) {
	var games []models.Game
	var total int64

	query := r.db.Model(&models.Game{})
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.Location != "" {
		query = query.Where("location = ?", filters.Location)
	}
	if filters.StartDate != nil {
		query = query.Where("date >= ?", *filters.StartDate)
	}
	if filters.EndDate != nil {
		query = query.Where("date <= ?", *filters.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("date ASC, start_time ASC").Limit(limit).Offset(offset).Find(&games).Error
	return games, total, err
}

// GetUnassignedInRange retrieves unchunked, unassigned games in a date range
func (r *GameRepository) GetUnassignedInRange(start, end time.Time) ([]models.Game, error) {
	var games []models.Game
	err := r.db.
		Where("status = ? AND chunk_id IS NULL AND date >= ? AND date <= ?",
			models.GameStatusUnassigned, start, end).
		Order("date ASC, start_time ASC").
		Find(&games).Error
	return games, err
}

// GetByChunkID retrieves the member games of a chunk ordered by start time
func (r *GameRepository) GetByChunkID(chunkID uuid.UUID) ([]models.Game, error) {
	var games []models.Game
	err := r.db.Where("chunk_id = ?", chunkID).Order("start_time ASC").Find(&games).Error
	return games, err
}

// Update updates a game
func (r *GameRepository) Update(game *models.Game) error {
	return r.db.Save(game).Error
}

// UpdateStatus updates only a game's status
func (r *GameRepository) UpdateStatus(id uuid.UUID, status models.GameStatus) error {
	return r.db.Model(&models.Game{}).Where("id = ?", id).Update("status", status).Error
}

// SetChunk points a set of games at a chunk (or clears with nil)
func (r *GameRepository) SetChunk(gameIDs []uuid.UUID, chunkID *uuid.UUID) error {
	return r.db.Model(&models.Game{}).Where("id IN ?", gameIDs).Update("chunk_id", chunkID).Error
}

// WithTx returns a repository bound to the given transaction
func (r *GameRepository) WithTx(tx *gorm.DB) *GameRepository {
	return &GameRepository{db: tx}
}
