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

// GameService handles business logic for games
type GameService struct {
	gameRepo       *repository.GameRepository
	assignmentRepo *repository.AssignmentRepository
	validator      *validator.Validate
}

// NewGameService creates a new game service
func NewGameService(gameRepo *repository.GameRepository, assignmentRepo *repository.AssignmentRepository, validator *validator.Validate) *GameService {
	return &GameService{
		gameRepo:       gameRepo,
		assignmentRepo: assignmentRepo,
		validator:      validator,
	}
}

// CreateGameRequest represents the request to create a game
type CreateGameRequest struct {
	Date           string           `json:"date" validate:"required"`
	StartTime      string           `json:"start_time" validate:"required"`
	EndTime        string           `json:"end_time,omitempty"`
	Location       string           `json:"location" validate:"required,min=1,max=200"`
	Level          models.GameLevel `json:"level" validate:"required"`
	GameType       models.GameType  `json:"game_type" validate:"required"`
	RefsNeeded     int              `json:"refs_needed" validate:"required,min=1,max=10"`
	WageMultiplier float64          `json:"wage_multiplier" validate:"required,gt=0,lte=5"`
	LocationLat    float64          `json:"location_lat,omitempty"`
	LocationLng    float64          `json:"location_lng,omitempty"`
}

// UpdateGameRequest represents the request to update a game
type UpdateGameRequest struct {
	Date           string            `json:"date,omitempty"`
	StartTime      string            `json:"start_time,omitempty"`
	EndTime        string            `json:"end_time,omitempty"`
	Location       string            `json:"location,omitempty" validate:"omitempty,min=1,max=200"`
	Level          models.GameLevel  `json:"level,omitempty"`
	WageMultiplier float64           `json:"wage_multiplier,omitempty" validate:"omitempty,gt=0,lte=5"`
	Status         models.GameStatus `json:"status,omitempty"`
}

// PositionResponse represents one staffing slot of a game
type PositionResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// GameResponse represents the response for game operations
type GameResponse struct {
	ID             uuid.UUID          `json:"id"`
	Date           string             `json:"date"`
	StartTime      string             `json:"start_time"`
	EndTime        string             `json:"end_time,omitempty"`
	Location       string             `json:"location"`
	Level          models.GameLevel   `json:"level"`
	GameType       models.GameType    `json:"game_type"`
	RefsNeeded     int                `json:"refs_needed"`
	WageMultiplier float64            `json:"wage_multiplier"`
	Status         models.GameStatus  `json:"status"`
	LocationLat    float64            `json:"location_lat,omitempty"`
	LocationLng    float64            `json:"location_lng,omitempty"`
	ChunkID        *uuid.UUID         `json:"chunk_id,omitempty"`
	Positions      []PositionResponse `json:"positions,omitempty"`
}

// GameListResponse represents a paginated list of games
type GameListResponse struct {
	Games    []GameResponse `json:"games"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// Create creates a game with its staffing positions. Times must parse as
// HH:MM and the end must not equal the start.
func (s *GameService) Create(req *CreateGameRequest) (*GameResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if !req.Level.IsValid() {
		return nil, apperrors.NewValidationError("level", "invalid game level")
	}
	if !req.GameType.IsValid() {
		return nil, apperrors.NewValidationError("game_type", "invalid game type")
	}

	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		return nil, apperrors.NewValidationError("date", "date must be YYYY-MM-DD")
	}
	if err := validateClockRange(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	game := &models.Game{
		Date:           date,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		Location:       req.Location,
		Level:          req.Level,
		GameType:       req.GameType,
		RefsNeeded:     req.RefsNeeded,
		WageMultiplier: req.WageMultiplier,
		Status:         models.GameStatusUnassigned,
		LocationLat:    req.LocationLat,
		LocationLng:    req.LocationLng,
	}
	if err := s.gameRepo.Create(game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"game_id":  game.ID,
		"location": game.Location,
		"date":     req.Date,
	}).Info("game created")
	return s.toResponse(game), nil
}

// GetByID retrieves a game with its positions
func (s *GameService) GetByID(id uuid.UUID) (*GameResponse, error) {
	game, err := s.gameRepo.GetWithPositions(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}
	return s.toResponse(game), nil
}

// List retrieves games matching the filters
func (s *GameService) List(filters repository.GameFilters, page, pageSize int) (*GameListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	games, total, err := s.gameRepo.GetAll(filters, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	responses := make([]GameResponse, len(games))
	for i, g := range games {
		responses[i] = *s.toResponse(&g)
	}
	return &GameListResponse{Games: responses, Total: total, Page: page, PageSize: pageSize}, nil
}

// Update updates a game's schedule details. Staffing capacity is fixed at
// creation; refs_needed edits would orphan or invent positions.
func (s *GameService) Update(id uuid.UUID, req *UpdateGameRequest) (*GameResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	game, err := s.gameRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	if req.Date != "" {
		date, err := time.Parse(time.DateOnly, req.Date)
		if err != nil {
			return nil, apperrors.NewValidationError("date", "date must be YYYY-MM-DD")
		}
		game.Date = date
	}
	if req.StartTime != "" {
		game.StartTime = req.StartTime
	}
	if req.EndTime != "" {
		game.EndTime = req.EndTime
	}
	if req.StartTime != "" || req.EndTime != "" {
		if err := validateClockRange(game.StartTime, game.EndTime); err != nil {
			return nil, err
		}
	}
	if req.Location != "" {
		game.Location = req.Location
	}
	if req.Level != "" {
		if !req.Level.IsValid() {
			return nil, apperrors.NewValidationError("level", "invalid game level")
		}
		game.Level = req.Level
	}
	if req.WageMultiplier != 0 {
		game.WageMultiplier = req.WageMultiplier
	}
	if req.Status != "" {
		if !req.Status.IsValid() {
			return nil, apperrors.NewValidationError("status", "invalid game status")
		}
		game.Status = req.Status
	}

	if err := s.gameRepo.Update(game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}
	return s.toResponse(game), nil
}

// Delete cancels a game. Active assignments block deletion so referees are
// never silently unbooked.
func (s *GameService) Delete(id uuid.UUID) error {
	if _, err := s.gameRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrGameNotFound
		}
		return fmt.Errorf("failed to get game: %w", err)
	}

	count, err := s.assignmentRepo.CountActiveForGame(id)
	if err != nil {
		return fmt.Errorf("failed to count assignments: %w", err)
	}
	if count > 0 {
		return apperrors.NewConflictError("game has active assignments", id)
	}

	if err := s.gameRepo.UpdateStatus(id, models.GameStatusCancelled); err != nil {
		return fmt.Errorf("failed to cancel game: %w", err)
	}
	return nil
}

func validateClockRange(start, end string) error {
	if _, err := scheduling.ParseClock(time.Time{}, start); err != nil {
		return apperrors.NewValidationError("start_time", "start time must be HH:MM")
	}
	if end == "" {
		return nil
	}
	if _, err := scheduling.ParseClock(time.Time{}, end); err != nil {
		return apperrors.NewValidationError("end_time", "end time must be HH:MM")
	}
	if start == end {
		return apperrors.NewValidationError("end_time", "end time must differ from start time")
	}
	return nil
}

// toResponse converts a game model to response
func (s *GameService) toResponse(game *models.Game) *GameResponse {
	positions := make([]PositionResponse, len(game.Positions))
	for i, p := range game.Positions {
		positions[i] = PositionResponse{ID: p.ID, Name: p.Name}
	}
	return &GameResponse{
		ID:             game.ID,
		Date:           game.Date.Format(time.DateOnly),
		StartTime:      game.StartTime,
		EndTime:        game.EndTime,
		Location:       game.Location,
		Level:          game.Level,
		GameType:       game.GameType,
		RefsNeeded:     game.RefsNeeded,
		WageMultiplier: game.WageMultiplier,
		Status:         game.Status,
		LocationLat:    game.LocationLat,
		LocationLng:    game.LocationLng,
		ChunkID:        game.ChunkID,
		Positions:      positions,
	}
}
