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
	"gorm.io/gorm"
)

// AvailabilityService handles declared availability windows
type AvailabilityService struct {
	availabilityRepo *repository.AvailabilityRepository
	refereeRepo      *repository.RefereeRepository
	validator        *validator.Validate
}

// NewAvailabilityService creates a new availability service
func NewAvailabilityService(availabilityRepo *repository.AvailabilityRepository, refereeRepo *repository.RefereeRepository, validator *validator.Validate) *AvailabilityService {
	return &AvailabilityService{
		availabilityRepo: availabilityRepo,
		refereeRepo:      refereeRepo,
		validator:        validator,
	}
}

// CreateWindowRequest represents the request to declare a window
type CreateWindowRequest struct {
	Date        string `json:"date" validate:"required"`
	StartTime   string `json:"start_time" validate:"required"`
	EndTime     string `json:"end_time" validate:"required"`
	IsAvailable bool   `json:"is_available"`
	Reason      string `json:"reason,omitempty" validate:"omitempty,max=200"`
}

// WindowResponse represents one declared window
type WindowResponse struct {
	ID          uuid.UUID `json:"id"`
	RefereeID   uuid.UUID `json:"referee_id"`
	Date        string    `json:"date"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	IsAvailable bool      `json:"is_available"`
	Reason      string    `json:"reason,omitempty"`
}

// WindowListResponse represents a paginated list of windows
type WindowListResponse struct {
	Windows  []WindowResponse `json:"windows"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// Create declares a window for a referee. A new window must not overlap any
// existing window of that referee on the same date, open or blocked alike.
func (s *AvailabilityService) Create(refereeID uuid.UUID, actor Actor, req *CreateWindowRequest) (*WindowResponse, error) {
	if !actor.IsAdmin() && !actor.Owns(refereeID) {
		return nil, apperrors.NewAuthorizationError("referees can only declare their own windows")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	if _, err := s.refereeRepo.GetByID(refereeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRefereeNotFound
		}
		return nil, fmt.Errorf("failed to verify referee: %w", err)
	}

	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		return nil, apperrors.NewValidationError("date", "date must be YYYY-MM-DD")
	}
	candidate, err := scheduling.GameWindow(date, req.StartTime, req.EndTime)
	if err != nil {
		return nil, apperrors.NewValidationError("start_time", err.Error())
	}

	existing, err := s.availabilityRepo.GetByRefereeAndDate(refereeID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load windows: %w", err)
	}
	for _, w := range existing {
		parsed, err := scheduling.GameWindow(w.Date, w.StartTime, w.EndTime)
		if err != nil {
			return nil, err
		}
		if candidate.Overlaps(parsed) {
			return nil, apperrors.ErrWindowOverlap
		}
	}

	window := &models.AvailabilityWindow{
		RefereeID:   refereeID,
		Date:        date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		IsAvailable: req.IsAvailable,
		Reason:      req.Reason,
	}
	if err := s.availabilityRepo.Create(window); err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	return s.toResponse(window), nil
}

// List retrieves a referee's windows, soonest first
func (s *AvailabilityService) List(refereeID uuid.UUID, page, pageSize int) (*WindowListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	windows, total, err := s.availabilityRepo.GetByReferee(refereeID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list windows: %w", err)
	}

	responses := make([]WindowResponse, len(windows))
	for i, w := range windows {
		responses[i] = *s.toResponse(&w)
	}
	return &WindowListResponse{Windows: responses, Total: total, Page: page, PageSize: pageSize}, nil
}

// Delete removes a declared window
func (s *AvailabilityService) Delete(id uuid.UUID, actor Actor) error {
	window, err := s.availabilityRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrWindowNotFound
		}
		return fmt.Errorf("failed to get window: %w", err)
	}
	if !actor.IsAdmin() && !actor.Owns(window.RefereeID) {
		return apperrors.NewAuthorizationError("referees can only remove their own windows")
	}

	if err := s.availabilityRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete window: %w", err)
	}
	return nil
}

// toResponse converts a window model to response
func (s *AvailabilityService) toResponse(window *models.AvailabilityWindow) *WindowResponse {
	return &WindowResponse{
		ID:          window.ID,
		RefereeID:   window.RefereeID,
		Date:        window.Date.Format(time.DateOnly),
		StartTime:   window.StartTime,
		EndTime:     window.EndTime,
		IsAvailable: window.IsAvailable,
		Reason:      window.Reason,
	}
}
