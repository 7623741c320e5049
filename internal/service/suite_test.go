package service_test

import (
	"fmt"
	"testing"
	"time"

	"referee-scheduler-backend/internal/database/models"
	"referee-scheduler-backend/internal/repository"
	"referee-scheduler-backend/internal/scheduling"
	"referee-scheduler-backend/internal/service"
	"referee-scheduler-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// serviceSuite wires every repository and service against the test database.
// The individual suites embed it and exercise one service each.
type serviceSuite struct {
	*testutils.BaseTestSuite

	gameRepo         *repository.GameRepository
	refereeRepo      *repository.RefereeRepository
	positionRepo     *repository.PositionRepository
	assignmentRepo   *repository.AssignmentRepository
	availabilityRepo *repository.AvailabilityRepository
	suggestionRepo   *repository.SuggestionRepository
	chunkRepo        *repository.ChunkRepository
	patternRepo      *repository.PatternRepository
	ruleRepo         *repository.RuleRepository

	gameSvc         *service.GameService
	assignmentSvc   *service.AssignmentService
	availabilitySvc *service.AvailabilityService
	suggestionSvc   *service.SuggestionService
	chunkSvc        *service.ChunkService
	patternSvc      *service.PatternService
	ruleSvc         *service.RuleService
}

func newServiceSuite(t *testing.T) *serviceSuite {
	base := testutils.SetupTestSuite(t)
	v := validator.New()

	s := &serviceSuite{BaseTestSuite: base}
	s.gameRepo = repository.NewGameRepository(base.DB)
	s.refereeRepo = repository.NewRefereeRepository(base.DB)
	s.positionRepo = repository.NewPositionRepository(base.DB)
	s.assignmentRepo = repository.NewAssignmentRepository(base.DB)
	s.availabilityRepo = repository.NewAvailabilityRepository(base.DB)
	s.suggestionRepo = repository.NewSuggestionRepository(base.DB)
	s.chunkRepo = repository.NewChunkRepository(base.DB)
	s.patternRepo = repository.NewPatternRepository(base.DB)
	s.ruleRepo = repository.NewRuleRepository(base.DB)

	detector := service.NewConflictDetector(s.assignmentRepo)
	s.gameSvc = service.NewGameService(s.gameRepo, s.assignmentRepo, v)
	s.assignmentSvc = service.NewAssignmentService(base.DB, s.assignmentRepo, s.gameRepo, s.refereeRepo, s.positionRepo, detector, v)
	s.availabilitySvc = service.NewAvailabilityService(s.availabilityRepo, s.refereeRepo, v)
	s.suggestionSvc = service.NewSuggestionService(base.DB, s.suggestionRepo, s.gameRepo, s.refereeRepo, s.positionRepo,
		s.assignmentRepo, s.availabilityRepo, s.assignmentSvc, detector, scheduling.NewAlgorithmicStrategy(),
		time.Duration(base.Config.SuggestionTTLMin)*time.Minute)
	s.chunkSvc = service.NewChunkService(base.DB, s.chunkRepo, s.gameRepo, s.refereeRepo, s.assignmentSvc, detector,
		time.Duration(base.Config.ChunkMaxGapMin)*time.Minute, base.Config.ChunkMinGames, v)
	s.patternSvc = service.NewPatternService(base.DB, s.patternRepo, s.assignmentRepo, s.gameRepo, s.assignmentSvc,
		detector, base.Config.PatternMinFrequency, v)
	s.ruleSvc = service.NewRuleService(s.ruleRepo, s.gameRepo, s.suggestionSvc, nil, v)
	return s
}

func adminActor() service.Actor {
	return service.Actor{Role: service.RoleAdmin}
}

func refereeActor(id uuid.UUID) service.Actor {
	return service.Actor{RefereeID: &id, Role: service.RoleReferee}
}

func (s *serviceSuite) createReferee() *models.Referee {
	referee := testutils.NewRefereeFactory().Create()
	s.Require().NoError(s.DB.Create(referee).Error)
	return referee
}

func (s *serviceSuite) createUnavailableReferee() *models.Referee {
	referee := testutils.NewRefereeFactory().Unavailable()
	s.Require().NoError(s.DB.Create(referee).Error)
	return referee
}

// seedGame persists the game with the given number of staffing positions
func (s *serviceSuite) seedGame(game *models.Game, positions int) *models.Game {
	game.RefsNeeded = positions
	for i := 0; i < positions; i++ {
		game.Positions = append(game.Positions, models.Position{
			BaseModel: models.BaseModel{ID: uuid.New()},
			GameID:    game.ID,
			Name:      fmt.Sprintf("Referee %d", i+1),
		})
	}
	s.Require().NoError(s.DB.Create(game).Error)
	return game
}

func (s *serviceSuite) createGame(positions int) *models.Game {
	return s.seedGame(testutils.NewGameFactory().Create(), positions)
}

func (s *serviceSuite) createGameAt(date time.Time, start, end string, positions int) *models.Game {
	return s.seedGame(testutils.NewGameFactory().At(date, start, end), positions)
}

func (s *serviceSuite) reloadGame(id uuid.UUID) *models.Game {
	game, err := s.gameRepo.GetByID(id)
	s.Require().NoError(err)
	return game
}
