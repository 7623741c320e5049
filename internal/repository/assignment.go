package repository

import (
	"errors"
	"time"

	"referee-scheduler-backend/internal/database/models"

	apperrors "referee-scheduler-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

// AssignmentRepository handles database operations for assignments
type AssignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Create inserts an assignment. A unique-index violation means a concurrent
// writer won the slot; it is translated to the conflict taxonomy rather than
// surfacing as a bare database error.
func (r *AssignmentRepository) Create(assignment *models.Assignment) error {
	if err := r.db.Create(assignment).Error; err != nil {
		return translateUniqueViolation(err)
	}
	return nil
}

func translateUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return apperrors.NewConflictError("assignment slot is already taken")
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.NewConflictError("assignment slot is already taken")
	}
	return err
}

// GetByID retrieves an assignment by ID
func (r *AssignmentRepository) GetByID(id uuid.UUID) (*models.Assignment, error) {
	var assignment models.Assignment
	err := r.db.First(&assignment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// GetWithGame retrieves an assignment with its game preloaded
func (r *AssignmentRepository) GetWithGame(id uuid.UUID) (*models.Assignment, error) {
	var assignment models.Assignment
	err := r.db.Preload("Game").First(&assignment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// GetActiveByReferee retrieves the referee's pending and accepted
// assignments with games preloaded, the input to conflict detection.
func (r *AssignmentRepository) GetActiveByReferee(refereeID uuid.UUID) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := r.db.Preload("Game").
		Where("referee_id = ? AND status IN ?", refereeID,
			[]models.AssignmentStatus{models.AssignmentStatusPending, models.AssignmentStatusAccepted}).
		Find(&assignments).Error
	return assignments, err
}

// CountActiveForGame counts pending/accepted/completed assignments on a game
func (r *AssignmentRepository) CountActiveForGame(gameID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Assignment{}).
		Where("game_id = ? AND status != ?", gameID, models.AssignmentStatusDeclined).
		Count(&count).Error
	return count, err
}

// GetByGameAndReferee finds the referee's assignment on a game, if any
func (r *AssignmentRepository) GetByGameAndReferee(gameID, refereeID uuid.UUID) (*models.Assignment, error) {
	var assignment models.Assignment
	err := r.db.First(&assignment, "game_id = ? AND referee_id = ?", gameID, refereeID).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// AssignmentFilters narrows assignment listings
type AssignmentFilters struct {
	Status    models.AssignmentStatus
	GameID    *uuid.UUID
	RefereeID *uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// List retrieves assignments matching the filters, newest game first
func (r *AssignmentRepository) List(filters AssignmentFilters, limit, offset int) ([]models.Assignment, int64, error) {
	var assignments []models.Assignment
	var total int64

	query := r.db.Model(&models.Assignment{}).
		Joins("JOIN games ON games.id = assignments.game_id")
	if filters.Status != "" {
		query = query.Where("assignments.status = ?", filters.Status)
	}
	if filters.GameID != nil {
		query = query.Where("assignments.game_id = ?", *filters.GameID)
	}
	if filters.RefereeID != nil {
		query = query.Where("assignments.referee_id = ?", *filters.RefereeID)
	}
	if filters.StartDate != nil {
		query = query.Where("games.date >= ?", *filters.StartDate)
	}
	if filters.EndDate != nil {
		query = query.Where("games.date <= ?", *filters.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Game").Order("games.date DESC, games.start_time DESC").
		Limit(limit).Offset(offset).Find(&assignments).Error
	return assignments, total, err
}

// GetHistory retrieves assignments with games preloaded, optionally scoped
// by referee and date range. Input to pattern mining.
func (r *AssignmentRepository) GetHistory(refereeID *uuid.UUID, startDate, endDate *time.Time) ([]models.Assignment, error) {
	query := r.db.Preload("Game").
		Joins("JOIN games ON games.id = assignments.game_id")
	if refereeID != nil {
		query = query.Where("assignments.referee_id = ?", *refereeID)
	}
	if startDate != nil {
		query = query.Where("games.date >= ?", *startDate)
	}
	if endDate != nil {
		query = query.Where("games.date <= ?", *endDate)
	}

	var assignments []models.Assignment
	err := query.Find(&assignments).Error
	return assignments, err
}

// Update updates an assignment
func (r *AssignmentRepository) Update(assignment *models.Assignment) error {
	return r.db.Save(assignment).Error
}

// Delete soft-deletes an assignment, freeing its slot
func (r *AssignmentRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Assignment{}, "id = ?", id).Error
}

// DeleteByGameIDs soft-deletes every assignment on the given games
func (r *AssignmentRepository) DeleteByGameIDs(gameIDs []uuid.UUID) error {
	return r.db.Delete(&models.Assignment{}, "game_id IN ?", gameIDs).Error
}

// WithTx returns a repository bound to the given transaction
func (r *AssignmentRepository) WithTx(tx *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: tx}
}
