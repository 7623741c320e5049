package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"referee-scheduler-backend/internal/database/models"
	"referee-scheduler-backend/internal/repository"
	"referee-scheduler-backend/internal/scheduling"

	apperrors "referee-scheduler-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SuggestionService runs the scoring engine: candidate gathering, exclusion,
// strategy scoring, suggestion persistence, and the accept/reject lifecycle.
type SuggestionService struct {
	db               *gorm.DB
	suggestionRepo   *repository.SuggestionRepository
	gameRepo         *repository.GameRepository
	refereeRepo      *repository.RefereeRepository
	positionRepo     *repository.PositionRepository
	assignmentRepo   *repository.AssignmentRepository
	availabilityRepo *repository.AvailabilityRepository
	assignments      *AssignmentService
	detector         *ConflictDetector
	strategy         scheduling.ScoringStrategy
	ttl              time.Duration
}

// NewSuggestionService creates a new suggestion service
func NewSuggestionService(db *gorm.DB, suggestionRepo *repository.SuggestionRepository, gameRepo *repository.GameRepository, refereeRepo *repository.RefereeRepository, positionRepo *repository.PositionRepository, assignmentRepo *repository.AssignmentRepository, availabilityRepo *repository.AvailabilityRepository, assignments *AssignmentService, detector *ConflictDetector, strategy scheduling.ScoringStrategy, ttl time.Duration) *SuggestionService {
	return &SuggestionService{
		db:               db,
		suggestionRepo:   suggestionRepo,
		gameRepo:         gameRepo,
		refereeRepo:      refereeRepo,
		positionRepo:     positionRepo,
		assignmentRepo:   assignmentRepo,
		availabilityRepo: availabilityRepo,
		assignments:      assignments,
		detector:         detector,
		strategy:         strategy,
		ttl:              ttl,
	}
}

// GenerateSuggestionsRequest represents the request to generate suggestions
type GenerateSuggestionsRequest struct {
	GameIDs []uuid.UUID         `json:"game_ids"`
	Factors *scheduling.Weights `json:"factors,omitempty"`
}

// SuggestionResponse represents one scored candidate assignment
type SuggestionResponse struct {
	ID                uuid.UUID               `json:"id"`
	GameID            uuid.UUID               `json:"game_id"`
	RefereeID         uuid.UUID               `json:"referee_id"`
	ConfidenceScore   float64                 `json:"confidence_score"`
	ProximityScore    float64                 `json:"proximity_score"`
	AvailabilityScore float64                 `json:"availability_score"`
	ExperienceScore   float64                 `json:"experience_score"`
	PerformanceScore  float64                 `json:"performance_score"`
	Reasoning         string                  `json:"reasoning"`
	Status            models.SuggestionStatus `json:"status"`
	ExpiresAt         string                  `json:"expires_at"`
}

// Generate scores candidates for each requested game and persists the
// resulting suggestions with the engine TTL. Games already fully staffed are
// skipped, not errors.
func (s *SuggestionService) Generate(ctx context.Context, req *GenerateSuggestionsRequest) ([]SuggestionResponse, error) {
	return s.GenerateWith(ctx, req, s.strategy)
}

// GenerateWith scores with a caller-chosen strategy. Rule runs use this so a
// rule's weighting mode picks the scorer instead of the engine default.
func (s *SuggestionService) GenerateWith(ctx context.Context, req *GenerateSuggestionsRequest, strategy scheduling.ScoringStrategy) ([]SuggestionResponse, error) {
	if len(req.GameIDs) == 0 {
		return nil, apperrors.NewValidationError("game_ids", "at least one game id is required")
	}

	weights := scheduling.DefaultWeights()
	if req.Factors != nil {
		if err := req.Factors.Validate(); err != nil {
			return nil, err
		}
		weights = *req.Factors
	}

	games, err := s.gameRepo.GetByIDs(req.GameIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load games: %w", err)
	}
	byID := make(map[uuid.UUID]models.Game, len(games))
	for _, g := range games {
		byID[g.ID] = g
	}
	for _, id := range req.GameIDs {
		if _, ok := byID[id]; !ok {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("game %s", id))
		}
	}

	available, err := s.refereeRepo.GetAvailable()
	if err != nil {
		return nil, fmt.Errorf("failed to load referees: %w", err)
	}

	now := time.Now()
	var all []models.AISuggestion
	for _, id := range req.GameIDs {
		game := byID[id]

		count, err := s.assignmentRepo.CountActiveForGame(game.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count assignments: %w", err)
		}
		if count >= int64(game.RefsNeeded) {
			continue
		}

		candidates, err := s.gatherCandidates(game, available)
		if err != nil {
			return nil, err
		}
		if len(candidates) == 0 {
			continue
		}

		scored, err := strategy.Score(ctx, game.ID, candidates, weights)
		if err != nil {
			return nil, fmt.Errorf("scoring failed for game %s: %w", game.ID, err)
		}
		sort.Slice(scored, func(i, j int) bool {
			return scored[i].Confidence > scored[j].Confidence
		})

		for _, sc := range scored {
			all = append(all, models.AISuggestion{
				GameID:            game.ID,
				RefereeID:         sc.RefereeID,
				ConfidenceScore:   sc.Confidence,
				ProximityScore:    sc.Scores.Proximity,
				AvailabilityScore: sc.Scores.Availability,
				ExperienceScore:   sc.Scores.Experience,
				PerformanceScore:  sc.Scores.Performance,
				Reasoning:         sc.Reasoning,
				Status:            models.SuggestionStatusPending,
				ExpiresAt:         now.Add(s.ttl),
			})
		}
	}

	if err := s.suggestionRepo.CreateBatch(all); err != nil {
		return nil, fmt.Errorf("failed to persist suggestions: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"games":       len(req.GameIDs),
		"suggestions": len(all),
	}).Info("suggestions generated")

	responses := make([]SuggestionResponse, len(all))
	for i, sg := range all {
		responses[i] = *s.toResponse(&sg)
	}
	return responses, nil
}

// gatherCandidates applies the exclusion rules and materializes the scoring
// inputs for one game: distance, block-outs, and open windows.
func (s *SuggestionService) gatherCandidates(game models.Game, available []models.Referee) ([]scheduling.Candidate, error) {
	window, err := scheduling.GameWindow(game.Date, game.StartTime, game.EndTime)
	if err != nil {
		return nil, apperrors.NewValidationError("start_time", err.Error())
	}

	var candidates []scheduling.Candidate
	for _, referee := range available {
		distance := scheduling.DistanceKm(referee.LocationLat, referee.LocationLng, game.LocationLat, game.LocationLng)
		if distance > referee.MaxDistanceKm {
			continue
		}

		if _, err := s.assignmentRepo.GetByGameAndReferee(game.ID, referee.ID); err == nil {
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check existing assignment: %w", err)
		}

		conflicts, err := s.detector.FindConflicts(referee.ID, window, nil)
		if err != nil {
			return nil, err
		}
		if len(conflicts) > 0 {
			continue
		}

		blockouts, open, err := s.availabilityInputs(referee.ID, game.Date, window)
		if err != nil {
			return nil, err
		}

		candidates = append(candidates, scheduling.Candidate{
			Referee:    referee,
			DistanceKm: distance,
			GameWindow: window,
			Blockouts:  blockouts,
			OpenWindow: open,
			GameLevel:  game.Level,
		})
	}
	return candidates, nil
}

func (s *SuggestionService) availabilityInputs(refereeID uuid.UUID, date time.Time, game scheduling.Window) ([]scheduling.Window, bool, error) {
	windows, err := s.availabilityRepo.GetByRefereeAndDate(refereeID, date)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load availability windows: %w", err)
	}

	var blockouts []scheduling.Window
	open := false
	for _, w := range windows {
		parsed, err := scheduling.GameWindow(w.Date, w.StartTime, w.EndTime)
		if err != nil {
			return nil, false, err
		}
		if w.IsAvailable {
			if !parsed.Start.After(game.Start) && !parsed.End.Before(game.End) {
				open = true
			}
			continue
		}
		blockouts = append(blockouts, parsed)
	}
	return blockouts, open, nil
}

// Accept creates a pending assignment from a suggestion. TTL expiry is
// enforced here, lazily; the assignment creation and the status flip commit
// together.
func (s *SuggestionService) Accept(id uuid.UUID) (*AssignmentResponse, error) {
	suggestion, err := s.suggestionRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSuggestionNotFound
		}
		return nil, fmt.Errorf("failed to get suggestion: %w", err)
	}

	if suggestion.Status != models.SuggestionStatusPending {
		return nil, apperrors.ErrSuggestionDecided
	}
	if suggestion.Expired(time.Now()) {
		return nil, apperrors.ErrSuggestionExpired
	}

	positionID, err := s.freePosition(suggestion.GameID)
	if err != nil {
		return nil, err
	}

	var created *AssignmentResponse
	err = s.db.Transaction(func(tx *gorm.DB) error {
		resp, err := s.assignments.WithTx(tx).Create(&CreateAssignmentRequest{
			GameID:     suggestion.GameID,
			RefereeID:  suggestion.RefereeID,
			PositionID: positionID,
		})
		if err != nil {
			return err
		}
		created = resp

		suggestion.Status = models.SuggestionStatusAccepted
		return s.suggestionRepo.WithTx(tx).Update(suggestion)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// freePosition picks the first position on the game without an active occupant
func (s *SuggestionService) freePosition(gameID uuid.UUID) (uuid.UUID, error) {
	positions, err := s.positionRepo.GetByGameID(gameID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to load positions: %w", err)
	}

	filters := repository.AssignmentFilters{GameID: &gameID}
	assignments, _, err := s.assignmentRepo.List(filters, len(positions)+1, 0)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to load assignments: %w", err)
	}
	occupied := make(map[uuid.UUID]bool, len(assignments))
	for _, a := range assignments {
		if a.Status.IsActive() || a.Status == models.AssignmentStatusCompleted {
			occupied[a.PositionID] = true
		}
	}
	for _, p := range positions {
		if !occupied[p.ID] {
			return p.ID, nil
		}
	}
	return uuid.Nil, apperrors.ErrGameFullyAssigned
}

// Reject declines a pending suggestion and stores the reason
func (s *SuggestionService) Reject(id uuid.UUID, reason string) (*SuggestionResponse, error) {
	suggestion, err := s.suggestionRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSuggestionNotFound
		}
		return nil, fmt.Errorf("failed to get suggestion: %w", err)
	}

	if suggestion.Status != models.SuggestionStatusPending {
		return nil, apperrors.ErrSuggestionDecided
	}

	suggestion.Status = models.SuggestionStatusRejected
	suggestion.RejectionReason = reason
	if err := s.suggestionRepo.Update(suggestion); err != nil {
		return nil, fmt.Errorf("failed to reject suggestion: %w", err)
	}
	return s.toResponse(suggestion), nil
}

// GetPendingByGame lists a game's pending suggestions by confidence
func (s *SuggestionService) GetPendingByGame(gameID uuid.UUID) ([]SuggestionResponse, error) {
	suggestions, err := s.suggestionRepo.GetPendingByGame(gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to list suggestions: %w", err)
	}
	responses := make([]SuggestionResponse, len(suggestions))
	for i, sg := range suggestions {
		responses[i] = *s.toResponse(&sg)
	}
	return responses, nil
}

// toResponse converts a suggestion model to response
func (s *SuggestionService) toResponse(suggestion *models.AISuggestion) *SuggestionResponse {
	return &SuggestionResponse{
		ID:                suggestion.ID,
		GameID:            suggestion.GameID,
		RefereeID:         suggestion.RefereeID,
		ConfidenceScore:   suggestion.ConfidenceScore,
		ProximityScore:    suggestion.ProximityScore,
		AvailabilityScore: suggestion.AvailabilityScore,
		ExperienceScore:   suggestion.ExperienceScore,
		PerformanceScore:  suggestion.PerformanceScore,
		Reasoning:         suggestion.Reasoning,
		Status:            suggestion.Status,
		ExpiresAt:         suggestion.ExpiresAt.Format(time.RFC3339),
	}
}
