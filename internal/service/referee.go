package service

import (
	"errors"
	"fmt"

	"referee-scheduler-backend/internal/database/models"
	"referee-scheduler-backend/internal/repository"

	apperrors "referee-scheduler-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RefereeService exposes the read side of the referee profile mirror. The
// engine scores and pays against these rows; profile ownership lives in the
// external identity subsystem.
type RefereeService struct {
	refereeRepo *repository.RefereeRepository
}

// NewRefereeService creates a new referee service
func NewRefereeService(refereeRepo *repository.RefereeRepository) *RefereeService {
	return &RefereeService{refereeRepo: refereeRepo}
}

// RefereeResponse represents the response for referee operations
type RefereeResponse struct {
	ID                  uuid.UUID `json:"id"`
	Name                string    `json:"name"`
	Email               string    `json:"email"`
	LevelWage           float64   `json:"level_wage"`
	YearsExperience     int       `json:"years_experience"`
	GamesRefereedSeason int       `json:"games_refereed_season"`
	EvaluationScore     float64   `json:"evaluation_score"`
	MaxDistanceKm       float64   `json:"max_distance_km"`
	IsAvailable         bool      `json:"is_available"`
}

// RefereeListResponse represents a paginated list of referees
type RefereeListResponse struct {
	Referees []RefereeResponse `json:"referees"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// GetByID retrieves a referee profile
func (s *RefereeService) GetByID(id uuid.UUID) (*RefereeResponse, error) {
	referee, err := s.refereeRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRefereeNotFound
		}
		return nil, fmt.Errorf("failed to get referee: %w", err)
	}
	return s.toResponse(referee), nil
}

// List retrieves referees with pagination
func (s *RefereeService) List(page, pageSize int) (*RefereeListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	referees, total, err := s.refereeRepo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list referees: %w", err)
	}

	responses := make([]RefereeResponse, len(referees))
	for i, r := range referees {
		responses[i] = *s.toResponse(&r)
	}
	return &RefereeListResponse{Referees: responses, Total: total, Page: page, PageSize: pageSize}, nil
}

// SetAvailability flips the referee's global availability flag. This is the
// one profile field the engine owns.
func (s *RefereeService) SetAvailability(id uuid.UUID, available bool) (*RefereeResponse, error) {
	referee, err := s.refereeRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRefereeNotFound
		}
		return nil, fmt.Errorf("failed to get referee: %w", err)
	}

	referee.IsAvailable = available
	if err := s.refereeRepo.Update(referee); err != nil {
		return nil, fmt.Errorf("failed to update referee: %w", err)
	}
	return s.toResponse(referee), nil
}

// toResponse converts a referee model to response
func (s *RefereeService) toResponse(referee *models.Referee) *RefereeResponse {
	return &RefereeResponse{
		ID:                  referee.ID,
		Name:                referee.Name,
		Email:               referee.Email,
		LevelWage:           referee.LevelWage,
		YearsExperience:     referee.YearsExperience,
		GamesRefereedSeason: referee.GamesRefereedSeason,
		EvaluationScore:     referee.EvaluationScore,
		MaxDistanceKm:       referee.MaxDistanceKm,
		IsAvailable:         referee.IsAvailable,
	}
}
