package service

import (
	"context"
	"time"

	"referee-scheduler-backend/internal/repository"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// GameServiceInterface defines the interface for game service
type GameServiceInterface interface {
	Create(req *CreateGameRequest) (*GameResponse, error)
	GetByID(id uuid.UUID) (*GameResponse, error)
	List(filters repository.GameFilters, page, pageSize int) (*GameListResponse, error)
	Update(id uuid.UUID, req *UpdateGameRequest) (*GameResponse, error)
	Delete(id uuid.UUID) error
}

// RefereeServiceInterface defines the interface for referee service
type RefereeServiceInterface interface {
	GetByID(id uuid.UUID) (*RefereeResponse, error)
	List(page, pageSize int) (*RefereeListResponse, error)
	SetAvailability(id uuid.UUID, available bool) (*RefereeResponse, error)
}

// AssignmentServiceInterface defines the interface for assignment service
type AssignmentServiceInterface interface {
	Create(req *CreateAssignmentRequest) (*AssignmentResponse, error)
	GetByID(id uuid.UUID, actor Actor) (*AssignmentResponse, error)
	List(filters ListFilters, actor Actor, page, pageSize int) (*AssignmentListResponse, error)
	Update(id uuid.UUID, req *UpdateAssignmentRequest, actor Actor) (*AssignmentResponse, error)
	Delete(id uuid.UUID, actor Actor) error
}

// SuggestionServiceInterface defines the interface for suggestion service
type SuggestionServiceInterface interface {
	Generate(ctx context.Context, req *GenerateSuggestionsRequest) ([]SuggestionResponse, error)
	Accept(id uuid.UUID) (*AssignmentResponse, error)
	Reject(id uuid.UUID, reason string) (*SuggestionResponse, error)
	GetPendingByGame(gameID uuid.UUID) ([]SuggestionResponse, error)
}

// ChunkServiceInterface defines the interface for chunk service
type ChunkServiceInterface interface {
	Create(req *CreateChunkRequest) (*ChunkResponse, error)
	Assign(chunkID uuid.UUID, req *AssignChunkRequest) (*ChunkResponse, error)
	AutoCreate(req *AutoCreateRequest) ([]ChunkResponse, error)
	GetByID(id uuid.UUID) (*ChunkResponse, error)
	List(location string, date *time.Time, page, pageSize int) (*ChunkListResponse, error)
	Update(id uuid.UUID, req *UpdateChunkRequest) (*ChunkResponse, error)
	Delete(id uuid.UUID, force bool) error
}

// PatternServiceInterface defines the interface for pattern service
type PatternServiceInterface interface {
	Detect(req *DetectRequest) ([]PatternResponse, error)
	Apply(patternID uuid.UUID, req *ApplyPatternRequest) (*ApplyPatternResponse, error)
}

// AvailabilityServiceInterface defines the interface for availability service
type AvailabilityServiceInterface interface {
	Create(refereeID uuid.UUID, actor Actor, req *CreateWindowRequest) (*WindowResponse, error)
	List(refereeID uuid.UUID, page, pageSize int) (*WindowListResponse, error)
	Delete(id uuid.UUID, actor Actor) error
}

// RuleServiceInterface defines the interface for rule service
type RuleServiceInterface interface {
	Create(req *CreateRuleRequest) (*RuleResponse, error)
	GetByID(id uuid.UUID) (*RuleResponse, error)
	List(page, pageSize int) (*RuleListResponse, error)
	Update(id uuid.UUID, req *UpdateRuleRequest) (*RuleResponse, error)
	Delete(id uuid.UUID) error
	AddPartnerPreference(ruleID uuid.UUID, req *AddPartnerPreferenceRequest) (*PartnerPreferenceResponse, error)
	Run(ctx context.Context, id uuid.UUID, triggeredBy string) (*RuleRunResponse, error)
	GetRuns(ruleID uuid.UUID, page, pageSize int) ([]RuleRunResponse, int64, error)
}
