package testutils

import (
	"fmt"
	"time"

	"referee-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
)

// RefereeFactory provides methods to create test Referee data
type RefereeFactory struct{}

// NewRefereeFactory creates a new RefereeFactory
func NewRefereeFactory() *RefereeFactory {
	return &RefereeFactory{}
}

// Create creates a test Referee with default values
func (f *RefereeFactory) Create() *models.Referee {
	id := uuid.New()
	return &models.Referee{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:                "Test Referee",
		Email:               fmt.Sprintf("referee-%s@test.com", id.String()[:8]),
		LevelWage:           60,
		YearsExperience:     5,
		GamesRefereedSeason: 10,
		EvaluationScore:     4.0,
		MaxDistanceKm:       50,
		IsAvailable:         true,
		LocationLat:         32.0853,
		LocationLng:         34.7818,
	}
}

// WithWage sets a custom per-game base wage
func (f *RefereeFactory) WithWage(wage float64) *models.Referee {
	referee := f.Create()
	referee.LevelWage = wage
	return referee
}

// WithExperience sets custom experience fields
func (f *RefereeFactory) WithExperience(years, gamesThisSeason int) *models.Referee {
	referee := f.Create()
	referee.YearsExperience = years
	referee.GamesRefereedSeason = gamesThisSeason
	return referee
}

// Unavailable marks the referee globally unavailable
func (f *RefereeFactory) Unavailable() *models.Referee {
	referee := f.Create()
	referee.IsAvailable = false
	return referee
}

// GameFactory provides methods to create test Game data
type GameFactory struct{}

// NewGameFactory creates a new GameFactory
func NewGameFactory() *GameFactory {
	return &GameFactory{}
}

// Create creates a test Game with default values. Positions are not
// populated; use WithPositions when the test needs slots.
func (f *GameFactory) Create() *models.Game {
	return &models.Game{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Date:           time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		StartTime:      "18:00",
		EndTime:        "19:30",
		Location:       "Test Hall",
		Level:          models.GameLevelCompetitive,
		GameType:       models.GameTypeCommunity,
		RefsNeeded:     1,
		WageMultiplier: 1,
		Status:         models.GameStatusUnassigned,
		LocationLat:    32.0853,
		LocationLng:    34.7818,
	}
}

// WithPositions attaches n named positions and sets refs_needed to match
func (f *GameFactory) WithPositions(n int) *models.Game {
	game := f.Create()
	game.RefsNeeded = n
	for i := 0; i < n; i++ {
		game.Positions = append(game.Positions, models.Position{
			BaseModel: models.BaseModel{ID: uuid.New()},
			GameID:    game.ID,
			Name:      fmt.Sprintf("Referee %d", i+1),
		})
	}
	return game
}

// At sets the date, start and end times
func (f *GameFactory) At(date time.Time, start, end string) *models.Game {
	game := f.Create()
	game.Date = date
	game.StartTime = start
	game.EndTime = end
	return game
}

// AvailabilityWindowFactory provides methods to create test window data
type AvailabilityWindowFactory struct{}

// NewAvailabilityWindowFactory creates a new AvailabilityWindowFactory
func NewAvailabilityWindowFactory() *AvailabilityWindowFactory {
	return &AvailabilityWindowFactory{}
}

// Create creates a test AvailabilityWindow with default values
func (f *AvailabilityWindowFactory) Create(refereeID uuid.UUID) *models.AvailabilityWindow {
	return &models.AvailabilityWindow{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		RefereeID:   refereeID,
		Date:        time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		StartTime:   "16:00",
		EndTime:     "22:00",
		IsAvailable: true,
	}
}

// Blocked creates an unavailable window for the given time range
func (f *AvailabilityWindowFactory) Blocked(refereeID uuid.UUID, date time.Time, start, end string) *models.AvailabilityWindow {
	window := f.Create(refereeID)
	window.Date = date
	window.StartTime = start
	window.EndTime = end
	window.IsAvailable = false
	return window
}

// AssignmentFactory provides methods to create test Assignment data
type AssignmentFactory struct{}

// NewAssignmentFactory creates a new AssignmentFactory
func NewAssignmentFactory() *AssignmentFactory {
	return &AssignmentFactory{}
}

// Create creates a test Assignment linking the given game, referee and position
func (f *AssignmentFactory) Create(gameID, refereeID, positionID uuid.UUID) *models.Assignment {
	return &models.Assignment{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		GameID:         gameID,
		RefereeID:      refereeID,
		PositionID:     positionID,
		Status:         models.AssignmentStatusPending,
		CalculatedWage: 60,
	}
}

// WithStatus sets a custom assignment status
func (f *AssignmentFactory) WithStatus(gameID, refereeID, positionID uuid.UUID, status models.AssignmentStatus) *models.Assignment {
	assignment := f.Create(gameID, refereeID, positionID)
	assignment.Status = status
	return assignment
}

// RuleFactory provides methods to create test AssignmentRule data
type RuleFactory struct{}

// NewRuleFactory creates a new RuleFactory
func NewRuleFactory() *RuleFactory {
	return &RuleFactory{}
}

// Create creates a test AssignmentRule with default algorithmic weights
func (f *RuleFactory) Create() *models.AssignmentRule {
	id := uuid.New()
	return &models.AssignmentRule{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:             fmt.Sprintf("Rule %s", id.String()[:8]),
		Enabled:          true,
		Schedule:         models.RuleScheduleManual,
		MaxDaysAhead:     14,
		WeightingMode:    models.WeightingModeAlgorithmic,
		WeightDistance:   25,
		WeightSkill:      25,
		WeightExperience: 25,
		WeightPartner:    25,
	}
}
