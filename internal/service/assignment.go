package service

import (
	"errors"
	"fmt"
	"time"

	"referee-scheduler-backend/internal/database/models"
	"referee-scheduler-backend/internal/repository"
	"referee-scheduler-backend/internal/scheduling"

	apperrors "referee-scheduler-backend/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AssignmentService governs the assignment lifecycle: creation with the full
// precondition chain, status transitions, deletion, and wage recalculation.
type AssignmentService struct {
	db             *gorm.DB
	assignmentRepo *repository.AssignmentRepository
	gameRepo       *repository.GameRepository
	refereeRepo    *repository.RefereeRepository
	positionRepo   *repository.PositionRepository
	detector       *ConflictDetector
	validator      *validator.Validate
}

// NewAssignmentService creates a new assignment service
func NewAssignmentService(db *gorm.DB, assignmentRepo *repository.AssignmentRepository, gameRepo *repository.GameRepository, refereeRepo *repository.RefereeRepository, positionRepo *repository.PositionRepository, detector *ConflictDetector, validator *validator.Validate) *AssignmentService {
	return &AssignmentService{
		db:             db,
		assignmentRepo: assignmentRepo,
		gameRepo:       gameRepo,
		refereeRepo:    refereeRepo,
		positionRepo:   positionRepo,
		detector:       detector,
		validator:      validator,
	}
}

// WithTx returns a service whose operations run inside the given
// transaction. Multi-row callers (chunk assign, pattern apply, suggestion
// accept) use this so their member creations commit or roll back together.
func (s *AssignmentService) WithTx(tx *gorm.DB) *AssignmentService {
	assignmentRepo := s.assignmentRepo.WithTx(tx)
	return &AssignmentService{
		db:             tx,
		assignmentRepo: assignmentRepo,
		gameRepo:       s.gameRepo.WithTx(tx),
		refereeRepo:    s.refereeRepo.WithTx(tx),
		positionRepo:   s.positionRepo.WithTx(tx),
		detector:       NewConflictDetector(assignmentRepo),
		validator:      s.validator,
	}
}

// CreateAssignmentRequest represents the request to create an assignment
type CreateAssignmentRequest struct {
	GameID            uuid.UUID `json:"game_id" validate:"required"`
	RefereeID         uuid.UUID `json:"referee_id" validate:"required"`
	PositionID        uuid.UUID `json:"position_id" validate:"required"`
	OverrideConflicts bool      `json:"override_conflicts,omitempty"`
}

// UpdateAssignmentRequest represents a status transition or wage recalculation
type UpdateAssignmentRequest struct {
	Status          *models.AssignmentStatus `json:"status,omitempty"`
	RecalculateWage bool                     `json:"recalculate_wage,omitempty"`
}

// AssignmentResponse represents the response for assignment operations
type AssignmentResponse struct {
	ID             uuid.UUID               `json:"id"`
	GameID         uuid.UUID               `json:"game_id"`
	RefereeID      uuid.UUID               `json:"referee_id"`
	PositionID     uuid.UUID               `json:"position_id"`
	Status         models.AssignmentStatus `json:"status"`
	CalculatedWage float64                 `json:"calculated_wage"`
	CreatedAt      string                  `json:"created_at"`
	UpdatedAt      string                  `json:"updated_at"`
}

// AssignmentListResponse represents a paginated list of assignments
type AssignmentListResponse struct {
	Assignments []AssignmentResponse `json:"assignments"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	PageSize    int                  `json:"page_size"`
}

// Create creates an assignment. Preconditions run in spec order with the
// first failure winning; override bypasses only the overlap check. The
// insert and the game status recompute commit together.
func (s *AssignmentService) Create(req *CreateAssignmentRequest) (*AssignmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	game, err := s.gameRepo.GetByID(req.GameID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to verify game: %w", err)
	}

	referee, err := s.refereeRepo.GetByID(req.RefereeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRefereeNotFound
		}
		return nil, fmt.Errorf("failed to verify referee: %w", err)
	}

	position, err := s.positionRepo.GetByID(req.PositionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPositionNotFound
		}
		return nil, fmt.Errorf("failed to verify position: %w", err)
	}
	if position.GameID != game.ID {
		return nil, apperrors.NewValidationError("position_id", "position does not belong to this game")
	}

	if !referee.IsAvailable {
		return nil, apperrors.ErrRefereeUnavailable
	}

	if _, err := s.assignmentRepo.GetByGameAndReferee(game.ID, referee.ID); err == nil {
		return nil, apperrors.ErrAlreadyAssigned
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing assignment: %w", err)
	}

	activeCount, err := s.assignmentRepo.CountActiveForGame(game.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count assignments: %w", err)
	}
	if activeCount >= int64(game.RefsNeeded) {
		return nil, apperrors.ErrGameFullyAssigned
	}

	window, err := scheduling.GameWindow(game.Date, game.StartTime, game.EndTime)
	if err != nil {
		return nil, apperrors.NewValidationError("start_time", err.Error())
	}
	conflicts, err := s.detector.FindConflicts(referee.ID, window, nil)
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 && !req.OverrideConflicts {
		return nil, apperrors.NewConflictError("referee has a scheduling conflict", conflictGameIDs(conflicts)...)
	}

	assignment := &models.Assignment{
		GameID:         game.ID,
		RefereeID:      referee.ID,
		PositionID:     position.ID,
		Status:         models.AssignmentStatusPending,
		CalculatedWage: scheduling.CalculateWage(referee.LevelWage, game.WageMultiplier),
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		txRepo := s.assignmentRepo.WithTx(tx)
		if err := txRepo.Create(assignment); err != nil {
			return err
		}
		return s.recomputeGameStatus(tx, game.ID)
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"assignment_id": assignment.ID,
		"game_id":       game.ID,
		"referee_id":    referee.ID,
		"override":      req.OverrideConflicts,
	}).Info("assignment created")

	return s.toResponse(assignment), nil
}

// GetByID retrieves an assignment, scoped to the actor's visibility
func (s *AssignmentService) GetByID(id uuid.UUID, actor Actor) (*AssignmentResponse, error) {
	assignment, err := s.assignmentRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}
	if !actor.IsAdmin() && !actor.Owns(assignment.RefereeID) {
		return nil, apperrors.NewAuthorizationError("assignments of other referees are not visible")
	}
	return s.toResponse(assignment), nil
}

// ListFilters narrows assignment listings at the service boundary
type ListFilters struct {
	Status    string
	GameID    *uuid.UUID
	RefereeID *uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// List retrieves assignments. Referee actors only ever see their own rows.
func (s *AssignmentService) List(filters ListFilters, actor Actor, page, pageSize int) (*AssignmentListResponse, error) {
	if filters.Status != "" && !models.AssignmentStatus(filters.Status).IsValid() {
		return nil, apperrors.NewValidationError("status", "unknown assignment status")
	}

	repoFilters := repository.AssignmentFilters{
		Status:    models.AssignmentStatus(filters.Status),
		GameID:    filters.GameID,
		RefereeID: filters.RefereeID,
		StartDate: filters.StartDate,
		EndDate:   filters.EndDate,
	}
	if !actor.IsAdmin() {
		repoFilters.RefereeID = actor.RefereeID
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	assignments, total, err := s.assignmentRepo.List(repoFilters, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}

	responses := make([]AssignmentResponse, len(assignments))
	for i, a := range assignments {
		responses[i] = *s.toResponse(&a)
	}
	return &AssignmentListResponse{
		Assignments: responses,
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
	}, nil
}

// Update applies a status transition or recalculates the wage
func (s *AssignmentService) Update(id uuid.UUID, req *UpdateAssignmentRequest, actor Actor) (*AssignmentResponse, error) {
	assignment, err := s.assignmentRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}

	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, apperrors.NewValidationError("status", "unknown assignment status")
		}
		if err := s.applyTransition(assignment, *req.Status, actor); err != nil {
			return nil, err
		}
	}

	if req.RecalculateWage {
		if !actor.IsAdmin() {
			return nil, apperrors.NewAuthorizationError("only admins can recalculate wages")
		}
		if err := s.recalculateWage(assignment); err != nil {
			return nil, err
		}
	}

	// A decline drops the game's active count, so the status recompute must
	// commit together with the transition.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.assignmentRepo.WithTx(tx).Update(assignment); err != nil {
			return err
		}
		if req.Status != nil && assignment.Status == models.AssignmentStatusDeclined {
			return s.recomputeGameStatus(tx, assignment.GameID)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update assignment: %w", err)
	}
	return s.toResponse(assignment), nil
}

// applyTransition enforces the closed transition set:
// pending -> accepted | declined (owner or admin), accepted -> pending
// (admin reset only). completed rows are frozen; nothing reaches completed
// through status edits.
func (s *AssignmentService) applyTransition(assignment *models.Assignment, to models.AssignmentStatus, actor Actor) error {
	from := assignment.Status
	if from == to {
		return nil
	}

	if from == models.AssignmentStatusCompleted {
		return apperrors.NewInvalidTransitionError(string(from), string(to))
	}

	switch {
	case from == models.AssignmentStatusPending && to == models.AssignmentStatusAccepted,
		from == models.AssignmentStatusPending && to == models.AssignmentStatusDeclined:
		if !actor.IsAdmin() && !actor.Owns(assignment.RefereeID) {
			return apperrors.NewAuthorizationError("only the assigned referee can accept or decline")
		}
	case from == models.AssignmentStatusAccepted && to == models.AssignmentStatusPending:
		if !actor.IsAdmin() {
			return apperrors.NewAuthorizationError("only admins can reset an accepted assignment")
		}
	default:
		return apperrors.NewInvalidTransitionError(string(from), string(to))
	}

	assignment.Status = to
	return nil
}

// recalculateWage recomputes the wage from the current profile and game rows
func (s *AssignmentService) recalculateWage(assignment *models.Assignment) error {
	game, err := s.gameRepo.GetByID(assignment.GameID)
	if err != nil {
		return fmt.Errorf("failed to load game for wage recalculation: %w", err)
	}
	referee, err := s.refereeRepo.GetByID(assignment.RefereeID)
	if err != nil {
		return fmt.Errorf("failed to load referee for wage recalculation: %w", err)
	}
	assignment.CalculatedWage = scheduling.CalculateWage(referee.LevelWage, game.WageMultiplier)
	return nil
}

// Delete removes an assignment. Admins may remove any non-completed row;
// referees may remove only their own pending rows.
func (s *AssignmentService) Delete(id uuid.UUID, actor Actor) error {
	assignment, err := s.assignmentRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAssignmentNotFound
		}
		return fmt.Errorf("failed to get assignment: %w", err)
	}

	if assignment.Status == models.AssignmentStatusCompleted {
		return apperrors.NewInvalidTransitionError(string(assignment.Status), "deleted")
	}

	if !actor.IsAdmin() {
		if !actor.Owns(assignment.RefereeID) {
			return apperrors.NewAuthorizationError("assignments of other referees cannot be removed")
		}
		if assignment.Status == models.AssignmentStatusAccepted {
			return apperrors.ErrAcceptedSelfDelete
		}
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.assignmentRepo.WithTx(tx).Delete(assignment.ID); err != nil {
			return err
		}
		return s.recomputeGameStatus(tx, assignment.GameID)
	})
	if err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"assignment_id": assignment.ID,
		"game_id":       assignment.GameID,
	}).Info("assignment deleted")
	return nil
}

// recomputeGameStatus flips a game between unassigned and assigned from its
// active-assignment count. Completed and cancelled games are left alone.
func (s *AssignmentService) recomputeGameStatus(tx *gorm.DB, gameID uuid.UUID) error {
	gameRepo := s.gameRepo.WithTx(tx)
	game, err := gameRepo.GetByID(gameID)
	if err != nil {
		return err
	}
	if game.Status == models.GameStatusCompleted || game.Status == models.GameStatusCancelled {
		return nil
	}

	count, err := s.assignmentRepo.WithTx(tx).CountActiveForGame(gameID)
	if err != nil {
		return err
	}

	status := models.GameStatusUnassigned
	if count >= int64(game.RefsNeeded) {
		status = models.GameStatusAssigned
	}
	if status == game.Status {
		return nil
	}
	return gameRepo.UpdateStatus(gameID, status)
}

// toResponse converts an assignment model to response
func (s *AssignmentService) toResponse(assignment *models.Assignment) *AssignmentResponse {
	return &AssignmentResponse{
		ID:             assignment.ID,
		GameID:         assignment.GameID,
		RefereeID:      assignment.RefereeID,
		PositionID:     assignment.PositionID,
		Status:         assignment.Status,
		CalculatedWage: assignment.CalculatedWage,
		CreatedAt:      assignment.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      assignment.UpdatedAt.Format(time.RFC3339),
	}
}
