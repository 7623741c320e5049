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

// ChunkService treats a set of same-location, same-date games as one
// assignable unit. Member assignment is all-or-nothing.
type ChunkService struct {
	db          *gorm.DB
	chunkRepo   *repository.ChunkRepository
	gameRepo    *repository.GameRepository
	refereeRepo *repository.RefereeRepository
	assignments *AssignmentService
	detector    *ConflictDetector
	maxGap      time.Duration
	minGames    int
	validator   *validator.Validate
}

// NewChunkService creates a new chunk service
func NewChunkService(db *gorm.DB, chunkRepo *repository.ChunkRepository, gameRepo *repository.GameRepository, refereeRepo *repository.RefereeRepository, assignments *AssignmentService, detector *ConflictDetector, maxGap time.Duration, minGames int, validator *validator.Validate) *ChunkService {
	return &ChunkService{
		db:          db,
		chunkRepo:   chunkRepo,
		gameRepo:    gameRepo,
		refereeRepo: refereeRepo,
		assignments: assignments,
		detector:    detector,
		maxGap:      maxGap,
		minGames:    minGames,
		validator:   validator,
	}
}

// CreateChunkRequest represents the request to create a chunk
type CreateChunkRequest struct {
	Name    string      `json:"name" validate:"required,min=1,max=100"`
	GameIDs []uuid.UUID `json:"game_ids" validate:"required,min=1"`
}

// ChunkResponse represents the response for chunk operations
type ChunkResponse struct {
	ID                uuid.UUID   `json:"id"`
	Name              string      `json:"name"`
	Location          string      `json:"location"`
	Date              string      `json:"date"`
	StartTime         string      `json:"start_time"`
	EndTime           string      `json:"end_time"`
	AssignedRefereeID *uuid.UUID  `json:"assigned_referee_id,omitempty"`
	GameIDs           []uuid.UUID `json:"game_ids"`
}

// ChunkListResponse represents a paginated list of chunks
type ChunkListResponse struct {
	Chunks   []ChunkResponse `json:"chunks"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// Create groups the given games into a chunk. Every member must share the
// same location and date; the chunk's span is min..max over member starts.
func (s *ChunkService) Create(req *CreateChunkRequest) (*ChunkResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	games, err := s.gameRepo.GetByIDs(req.GameIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load games: %w", err)
	}
	if len(games) != len(req.GameIDs) {
		return nil, apperrors.ErrGameNotFound
	}

	first := games[0]
	for _, g := range games[1:] {
		if g.Location != first.Location || !scheduling.SameDate(g.Date, first.Date) {
			return nil, apperrors.ErrChunkMembership
		}
	}
	for _, g := range games {
		if g.ChunkID != nil {
			return nil, apperrors.NewConflictError("game already belongs to a chunk", g.ID)
		}
	}

	start, end := scheduling.Span(games)
	chunk := &models.Chunk{
		Name:      req.Name,
		Location:  first.Location,
		Date:      first.Date,
		StartTime: start,
		EndTime:   end,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.chunkRepo.WithTx(tx).Create(chunk); err != nil {
			return err
		}
		return s.gameRepo.WithTx(tx).SetChunk(req.GameIDs, &chunk.ID)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create chunk: %w", err)
	}

	return s.toResponse(chunk, req.GameIDs), nil
}

// AssignChunkRequest represents the request to assign a referee to a chunk
type AssignChunkRequest struct {
	RefereeID         uuid.UUID `json:"referee_id" validate:"required"`
	PositionName      string    `json:"position_name,omitempty"`
	OverrideConflicts bool      `json:"override_conflicts,omitempty"`
}

// Assign creates one assignment per member game as a single all-or-nothing
// unit. Member conflicts are collected up front; without override the whole
// operation fails carrying every colliding game.
func (s *ChunkService) Assign(chunkID uuid.UUID, req *AssignChunkRequest) (*ChunkResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	chunk, err := s.chunkRepo.GetByID(chunkID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrChunkNotFound
		}
		return nil, fmt.Errorf("failed to get chunk: %w", err)
	}
	if chunk.AssignedRefereeID != nil {
		return nil, apperrors.ErrChunkAssigned
	}

	if _, err := s.refereeRepo.GetByID(req.RefereeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRefereeNotFound
		}
		return nil, fmt.Errorf("failed to verify referee: %w", err)
	}

	games, err := s.gameRepo.GetByChunkID(chunkID)
	if err != nil {
		return nil, fmt.Errorf("failed to load member games: %w", err)
	}
	if len(games) == 0 {
		return nil, apperrors.NewValidationError("chunk", "chunk has no member games")
	}

	// Advisory pass: collect conflicts against existing commitments per
	// member game before anything is written.
	var blocked []uuid.UUID
	for _, g := range games {
		window, err := scheduling.GameWindow(g.Date, g.StartTime, g.EndTime)
		if err != nil {
			return nil, apperrors.NewValidationError("start_time", err.Error())
		}
		conflicts, err := s.detector.FindConflicts(req.RefereeID, window, nil)
		if err != nil {
			return nil, err
		}
		if len(conflicts) > 0 {
			blocked = append(blocked, g.ID)
		}
	}
	if len(blocked) > 0 && !req.OverrideConflicts {
		return nil, apperrors.NewConflictError("chunk members conflict with existing assignments", blocked...)
	}

	gameIDs := make([]uuid.UUID, len(games))
	err = s.db.Transaction(func(tx *gorm.DB) error {
		txAssignments := s.assignments.WithTx(tx)
		for i, g := range games {
			gameIDs[i] = g.ID
			positionID, err := s.memberPosition(tx, g.ID, req.PositionName)
			if err != nil {
				return err
			}
			// Sibling members share the referee's day; the advisory pass
			// already decided, so member creation always overrides.
			if _, err := txAssignments.Create(&CreateAssignmentRequest{
				GameID:            g.ID,
				RefereeID:         req.RefereeID,
				PositionID:        positionID,
				OverrideConflicts: true,
			}); err != nil {
				return err
			}
		}

		refereeID := req.RefereeID
		chunk.AssignedRefereeID = &refereeID
		return s.chunkRepo.WithTx(tx).Update(chunk)
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"chunk_id":   chunk.ID,
		"referee_id": req.RefereeID,
		"games":      len(games),
		"override":   req.OverrideConflicts,
	}).Info("chunk assigned")

	return s.toResponse(chunk, gameIDs), nil
}

// memberPosition resolves the position to fill on one member game: by name
// when requested, otherwise the first free slot.
func (s *ChunkService) memberPosition(tx *gorm.DB, gameID uuid.UUID, name string) (uuid.UUID, error) {
	positions, err := repository.NewPositionRepository(tx).GetByGameID(gameID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to load positions: %w", err)
	}
	if name != "" {
		for _, p := range positions {
			if p.Name == name {
				return p.ID, nil
			}
		}
		return uuid.Nil, apperrors.ErrPositionNotFound
	}
	return firstFreePosition(tx, gameID)
}

// AutoCreateRequest represents the request to auto-create chunks
type AutoCreateRequest struct {
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date" validate:"required"`
}

// AutoCreate partitions unassigned games by (location, date) and greedily
// merges consecutive games into chunks under the configured gap and size
// policy. Games that fit no group of sufficient size stay unchunked.
func (s *ChunkService) AutoCreate(req *AutoCreateRequest) ([]ChunkResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if req.EndDate.Before(req.StartDate) {
		return nil, apperrors.NewValidationError("end_date", "end date must not be before start date")
	}

	games, err := s.gameRepo.GetUnassignedInRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to load games: %w", err)
	}

	groups, err := scheduling.GroupGames(games, s.maxGap, s.minGames)
	if err != nil {
		return nil, err
	}

	var responses []ChunkResponse
	err = s.db.Transaction(func(tx *gorm.DB) error {
		chunkRepo := s.chunkRepo.WithTx(tx)
		gameRepo := s.gameRepo.WithTx(tx)
		for _, group := range groups {
			start, end := scheduling.Span(group.Games)
			chunk := &models.Chunk{
				Name:      fmt.Sprintf("%s %s", group.Location, group.Date.Format("2006-01-02")),
				Location:  group.Location,
				Date:      group.Date,
				StartTime: start,
				EndTime:   end,
			}
			if err := chunkRepo.Create(chunk); err != nil {
				return err
			}
			ids := make([]uuid.UUID, len(group.Games))
			for i, g := range group.Games {
				ids[i] = g.ID
			}
			if err := gameRepo.SetChunk(ids, &chunk.ID); err != nil {
				return err
			}
			responses = append(responses, *s.toResponse(chunk, ids))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to auto-create chunks: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"games":  len(games),
		"chunks": len(responses),
	}).Info("chunks auto-created")
	return responses, nil
}

// GetByID retrieves a chunk with its member game ids
func (s *ChunkService) GetByID(id uuid.UUID) (*ChunkResponse, error) {
	chunk, err := s.chunkRepo.GetWithGames(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrChunkNotFound
		}
		return nil, fmt.Errorf("failed to get chunk: %w", err)
	}
	ids := make([]uuid.UUID, len(chunk.Games))
	for i, g := range chunk.Games {
		ids[i] = g.ID
	}
	return s.toResponse(chunk, ids), nil
}

// List retrieves chunks matching the filters
func (s *ChunkService) List(location string, date *time.Time, page, pageSize int) (*ChunkListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	chunks, total, err := s.chunkRepo.GetAll(repository.ChunkFilters{Location: location, Date: date}, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list chunks: %w", err)
	}

	responses := make([]ChunkResponse, len(chunks))
	for i, c := range chunks {
		games, err := s.gameRepo.GetByChunkID(c.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load member games: %w", err)
		}
		ids := make([]uuid.UUID, len(games))
		for j, g := range games {
			ids[j] = g.ID
		}
		responses[i] = *s.toResponse(&c, ids)
	}
	return &ChunkListResponse{Chunks: responses, Total: total, Page: page, PageSize: pageSize}, nil
}

// UpdateChunkRequest renames a chunk
type UpdateChunkRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// Update renames a chunk
func (s *ChunkService) Update(id uuid.UUID, req *UpdateChunkRequest) (*ChunkResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	chunk, err := s.chunkRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrChunkNotFound
		}
		return nil, fmt.Errorf("failed to get chunk: %w", err)
	}

	chunk.Name = req.Name
	if err := s.chunkRepo.Update(chunk); err != nil {
		return nil, fmt.Errorf("failed to update chunk: %w", err)
	}

	games, err := s.gameRepo.GetByChunkID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load member games: %w", err)
	}
	ids := make([]uuid.UUID, len(games))
	for i, g := range games {
		ids[i] = g.ID
	}
	return s.toResponse(chunk, ids), nil
}

// Delete removes a chunk. An assigned chunk requires force, which removes
// every member assignment first; members are unlinked either way.
func (s *ChunkService) Delete(id uuid.UUID, force bool) error {
	chunk, err := s.chunkRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrChunkNotFound
		}
		return fmt.Errorf("failed to get chunk: %w", err)
	}

	if chunk.AssignedRefereeID != nil && !force {
		return apperrors.ErrChunkAssigned
	}

	games, err := s.gameRepo.GetByChunkID(id)
	if err != nil {
		return fmt.Errorf("failed to load member games: %w", err)
	}
	gameIDs := make([]uuid.UUID, len(games))
	for i, g := range games {
		gameIDs[i] = g.ID
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if chunk.AssignedRefereeID != nil && len(gameIDs) > 0 {
			assignmentRepo := repository.NewAssignmentRepository(tx)
			if err := assignmentRepo.DeleteByGameIDs(gameIDs); err != nil {
				return err
			}
			gameRepo := s.gameRepo.WithTx(tx)
			for _, gid := range gameIDs {
				if err := gameRepo.UpdateStatus(gid, models.GameStatusUnassigned); err != nil {
					return err
				}
			}
		}
		if len(gameIDs) > 0 {
			if err := s.gameRepo.WithTx(tx).SetChunk(gameIDs, nil); err != nil {
				return err
			}
		}
		return s.chunkRepo.WithTx(tx).Delete(id)
	})
	if err != nil {
		return fmt.Errorf("failed to delete chunk: %w", err)
	}
	return nil
}

// toResponse converts a chunk model to response
func (s *ChunkService) toResponse(chunk *models.Chunk, gameIDs []uuid.UUID) *ChunkResponse {
	return &ChunkResponse{
		ID:                chunk.ID,
		Name:              chunk.Name,
		Location:          chunk.Location,
		Date:              chunk.Date.Format("2006-01-02"),
		StartTime:         chunk.StartTime,
		EndTime:           chunk.EndTime,
		AssignedRefereeID: chunk.AssignedRefereeID,
		GameIDs:           gameIDs,
	}
}
