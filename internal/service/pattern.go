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

// PatternService mines recurring assignment groups out of completed history
// and applies a mined pattern onto upcoming games.
type PatternService struct {
	db             *gorm.DB
	patternRepo    *repository.PatternRepository
	assignmentRepo *repository.AssignmentRepository
	gameRepo       *repository.GameRepository
	assignments    *AssignmentService
	detector       *ConflictDetector
	minFrequency   int
	validator      *validator.Validate
}

// NewPatternService creates a new pattern service
func NewPatternService(db *gorm.DB, patternRepo *repository.PatternRepository, assignmentRepo *repository.AssignmentRepository, gameRepo *repository.GameRepository, assignments *AssignmentService, detector *ConflictDetector, minFrequency int, validator *validator.Validate) *PatternService {
	return &PatternService{
		db:             db,
		patternRepo:    patternRepo,
		assignmentRepo: assignmentRepo,
		gameRepo:       gameRepo,
		assignments:    assignments,
		detector:       detector,
		minFrequency:   minFrequency,
		validator:      validator,
	}
}

// PatternResponse represents one mined pattern
type PatternResponse struct {
	ID           uuid.UUID        `json:"id"`
	RefereeID    uuid.UUID        `json:"referee_id"`
	DayOfWeek    int              `json:"day_of_week"`
	Location     string           `json:"location"`
	TimeSlot     models.TimeSlot  `json:"time_slot"`
	Level        models.GameLevel `json:"level"`
	Frequency    int              `json:"frequency"`
	SuccessRate  float64          `json:"success_rate"`
	LastAssigned string           `json:"last_assigned"`
}

// DetectRequest scopes a mining pass
type DetectRequest struct {
	RefereeID    *uuid.UUID `json:"referee_id,omitempty"`
	MinFrequency *int       `json:"min_frequency,omitempty"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
}

// Detect mines assignment history into recurring groups and rewrites the
// cached rows for the requested scope.
func (s *PatternService) Detect(req *DetectRequest) ([]PatternResponse, error) {
	minFrequency := s.minFrequency
	if req.MinFrequency != nil {
		if *req.MinFrequency < 1 {
			return nil, apperrors.NewValidationError("min_frequency", "min frequency must be at least 1")
		}
		minFrequency = *req.MinFrequency
	}

	history, err := s.assignmentRepo.GetHistory(req.RefereeID, req.StartDate, req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to load assignment history: %w", err)
	}

	mined := scheduling.MinePatterns(history, minFrequency)

	rows := make([]models.HistoricPattern, len(mined))
	for i, m := range mined {
		rows[i] = models.HistoricPattern{
			RefereeID:    m.Key.RefereeID,
			DayOfWeek:    m.Key.DayOfWeek,
			Location:     m.Key.Location,
			TimeSlot:     m.Key.TimeSlot,
			Level:        m.Key.Level,
			Frequency:    m.Frequency,
			SuccessRate:  m.SuccessRate,
			LastAssigned: m.LastAssigned,
		}
	}
	if err := s.patternRepo.ReplaceForScope(rows); err != nil {
		return nil, fmt.Errorf("failed to persist patterns: %w", err)
	}

	// Upserted rows keep their original ids; re-read each by key so the
	// response addresses the canonical cached row.
	responses := make([]PatternResponse, len(rows))
	for i, row := range rows {
		cached, err := s.patternRepo.GetByKey(row.RefereeID, row.DayOfWeek, row.Location, row.TimeSlot, row.Level)
		if err != nil {
			return nil, fmt.Errorf("failed to read back pattern: %w", err)
		}
		responses[i] = *s.toResponse(cached)
	}

	logrus.WithFields(logrus.Fields{
		"history":  len(history),
		"patterns": len(responses),
	}).Info("patterns detected")
	return responses, nil
}

// ApplyPatternRequest represents the request to apply a pattern
type ApplyPatternRequest struct {
	GameIDs           []uuid.UUID `json:"game_ids" validate:"required,min=1"`
	OverrideConflicts bool        `json:"override_conflicts,omitempty"`
}

// ApplyPatternResponse summarizes one apply pass
type ApplyPatternResponse struct {
	PatternID  uuid.UUID   `json:"pattern_id"`
	RefereeID  uuid.UUID   `json:"referee_id"`
	Assigned   int         `json:"assigned"`
	Overridden int         `json:"overridden"`
	GameIDs    []uuid.UUID `json:"game_ids"`
}

// Apply assigns the pattern's referee to every given game as one unit.
// Conflicts are collected across all targets first; without override the
// whole pass fails carrying every colliding game and nothing is written.
func (s *PatternService) Apply(patternID uuid.UUID, req *ApplyPatternRequest) (*ApplyPatternResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	pattern, err := s.patternRepo.GetByID(patternID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPatternNotFound
		}
		return nil, fmt.Errorf("failed to get pattern: %w", err)
	}

	games, err := s.gameRepo.GetByIDs(req.GameIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load games: %w", err)
	}
	if len(games) != len(req.GameIDs) {
		return nil, apperrors.ErrGameNotFound
	}

	var blocked []uuid.UUID
	for _, g := range games {
		window, err := scheduling.GameWindow(g.Date, g.StartTime, g.EndTime)
		if err != nil {
			return nil, apperrors.NewValidationError("start_time", err.Error())
		}
		conflicts, err := s.detector.FindConflicts(pattern.RefereeID, window, nil)
		if err != nil {
			return nil, err
		}
		if len(conflicts) > 0 {
			blocked = append(blocked, g.ID)
		}
	}
	if len(blocked) > 0 && !req.OverrideConflicts {
		return nil, apperrors.NewConflictError("pattern games conflict with existing assignments", blocked...)
	}

	assignedGames := make([]uuid.UUID, 0, len(games))
	err = s.db.Transaction(func(tx *gorm.DB) error {
		txAssignments := s.assignments.WithTx(tx)
		for _, g := range games {
			positionID, err := firstFreePosition(tx, g.ID)
			if err != nil {
				return err
			}
			if _, err := txAssignments.Create(&CreateAssignmentRequest{
				GameID:            g.ID,
				RefereeID:         pattern.RefereeID,
				PositionID:        positionID,
				OverrideConflicts: true,
			}); err != nil {
				return err
			}
			assignedGames = append(assignedGames, g.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"pattern_id": patternID,
		"referee_id": pattern.RefereeID,
		"assigned":   len(assignedGames),
		"overridden": len(blocked),
	}).Info("pattern applied")

	return &ApplyPatternResponse{
		PatternID:  patternID,
		RefereeID:  pattern.RefereeID,
		Assigned:   len(assignedGames),
		Overridden: len(blocked),
		GameIDs:    assignedGames,
	}, nil
}

// firstFreePosition finds the first slot on a game with no active or
// completed occupant.
func firstFreePosition(tx *gorm.DB, gameID uuid.UUID) (uuid.UUID, error) {
	positions, err := repository.NewPositionRepository(tx).GetByGameID(gameID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to load positions: %w", err)
	}
	assignments, _, err := repository.NewAssignmentRepository(tx).List(repository.AssignmentFilters{GameID: &gameID}, len(positions)+1, 0)
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

// toResponse converts a cached pattern row to response
func (s *PatternService) toResponse(p *models.HistoricPattern) *PatternResponse {
	last := ""
	if !p.LastAssigned.IsZero() {
		last = p.LastAssigned.Format(time.DateOnly)
	}
	return &PatternResponse{
		ID:           p.ID,
		RefereeID:    p.RefereeID,
		DayOfWeek:    p.DayOfWeek,
		Location:     p.Location,
		TimeSlot:     p.TimeSlot,
		Level:        p.Level,
		Frequency:    p.Frequency,
		SuccessRate:  p.SuccessRate,
		LastAssigned: last,
	}
}
