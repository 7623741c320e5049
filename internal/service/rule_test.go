package service_test

import (
	"context"
	"testing"
	"time"

	"referee-scheduler-backend/internal/database/models"
	"referee-scheduler-backend/internal/scheduling"
	"referee-scheduler-backend/internal/service"
	"referee-scheduler-backend/internal/testutils"

	apperrors "referee-scheduler-backend/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type RuleServiceTestSuite struct {
	*serviceSuite
}

func TestRuleServiceSuite(t *testing.T) {
	suite.Run(t, &RuleServiceTestSuite{serviceSuite: newServiceSuite(t)})
}

// upcomingDate returns a UTC date n days ahead, inside the default horizon
func upcomingDate(n int) time.Time {
	now := time.Now().UTC().AddDate(0, 0, n)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *RuleServiceTestSuite) createRule() *service.RuleResponse {
	rule := testutils.NewRuleFactory().Create()
	resp, err := s.ruleSvc.Create(&service.CreateRuleRequest{Name: rule.Name})
	s.Require().NoError(err)
	return resp
}

func (s *RuleServiceTestSuite) TestCreateAppliesDefaults() {
	resp, err := s.ruleSvc.Create(&service.CreateRuleRequest{Name: "weekend coverage"})
	s.Require().NoError(err)
	s.True(resp.Enabled)
	s.Equal(models.RuleScheduleManual, resp.Schedule)
	s.Equal(models.WeightingModeAlgorithmic, resp.WeightingMode)
	s.Equal(14, resp.MaxDaysAhead)
	s.Equal(25, resp.WeightDistance)
	s.Equal(25, resp.WeightSkill)
	s.Equal(25, resp.WeightExperience)
	s.Equal(25, resp.WeightPartner)
}

func (s *RuleServiceTestSuite) TestCreateAlgorithmicWeightsMustSumTo100() {
	_, err := s.ruleSvc.Create(&service.CreateRuleRequest{
		Name:             "lopsided",
		WeightDistance:   50,
		WeightSkill:      30,
		WeightExperience: 10,
		WeightPartner:    20,
	})
	s.True(apperrors.IsValidation(err))
}

func (s *RuleServiceTestSuite) TestCreateDelegateModeSkipsWeightSum() {
	resp, err := s.ruleSvc.Create(&service.CreateRuleRequest{
		Name:           "delegate scored",
		WeightingMode:  models.WeightingModeDelegate,
		WeightDistance: 10,
		WeightSkill:    10,
	})
	s.Require().NoError(err)
	s.Equal(models.WeightingModeDelegate, resp.WeightingMode)
}

func (s *RuleServiceTestSuite) TestCreateValidation() {
	_, err := s.ruleSvc.Create(&service.CreateRuleRequest{Name: "bad schedule", Schedule: "hourly"})
	s.True(apperrors.IsValidation(err))

	_, err = s.ruleSvc.Create(&service.CreateRuleRequest{Name: "bad mode", WeightingMode: "oracle"})
	s.True(apperrors.IsValidation(err))

	_, err = s.ruleSvc.Create(&service.CreateRuleRequest{Name: "bad level", MinLevel: "premier"})
	s.True(apperrors.IsValidation(err))

	_, err = s.ruleSvc.Create(&service.CreateRuleRequest{Name: "bad type", GameTypes: []models.GameType{"league"}})
	s.True(apperrors.IsValidation(err))
}

func (s *RuleServiceTestSuite) TestCreateDuplicateName() {
	_, err := s.ruleSvc.Create(&service.CreateRuleRequest{Name: "nightly"})
	s.Require().NoError(err)

	_, err = s.ruleSvc.Create(&service.CreateRuleRequest{Name: "nightly"})
	s.True(apperrors.IsConflict(err))
}

func (s *RuleServiceTestSuite) TestUpdateKeepsWeightSumInvariant() {
	rule := s.createRule()

	thirty := 30
	_, err := s.ruleSvc.Update(rule.ID, &service.UpdateRuleRequest{WeightDistance: &thirty})
	s.True(apperrors.IsValidation(err))

	twenty := 20
	resp, err := s.ruleSvc.Update(rule.ID, &service.UpdateRuleRequest{WeightDistance: &thirty, WeightSkill: &twenty})
	s.Require().NoError(err)
	s.Equal(30, resp.WeightDistance)
	s.Equal(20, resp.WeightSkill)
}

func (s *RuleServiceTestSuite) TestUpdateRenameCollision() {
	first := s.createRule()
	second := s.createRule()

	_, err := s.ruleSvc.Update(second.ID, &service.UpdateRuleRequest{Name: first.Name})
	s.True(apperrors.IsConflict(err))
}

func (s *RuleServiceTestSuite) TestDeleteRule() {
	rule := s.createRule()
	s.Require().NoError(s.ruleSvc.Delete(rule.ID))

	err := s.ruleSvc.Delete(rule.ID)
	s.ErrorIs(err, apperrors.ErrRuleNotFound)
}

func (s *RuleServiceTestSuite) TestAddPartnerPreference() {
	rule := s.createRule()
	refA := s.createReferee()
	refB := s.createReferee()

	pref, err := s.ruleSvc.AddPartnerPreference(rule.ID, &service.AddPartnerPreferenceRequest{
		RefereeA: refA.ID,
		RefereeB: refB.ID,
		Kind:     models.PartnerPreferred,
	})
	s.Require().NoError(err)
	s.Equal(models.PartnerPreferred, pref.Kind)

	// the reversed pair is the same preference
	_, err = s.ruleSvc.AddPartnerPreference(rule.ID, &service.AddPartnerPreferenceRequest{
		RefereeA: refB.ID,
		RefereeB: refA.ID,
		Kind:     models.PartnerAvoid,
	})
	s.ErrorIs(err, apperrors.ErrDuplicatePartner)
}

func (s *RuleServiceTestSuite) TestAddPartnerPreferenceValidation() {
	rule := s.createRule()
	referee := s.createReferee()

	_, err := s.ruleSvc.AddPartnerPreference(rule.ID, &service.AddPartnerPreferenceRequest{
		RefereeA: referee.ID,
		RefereeB: referee.ID,
		Kind:     models.PartnerPreferred,
	})
	s.True(apperrors.IsValidation(err))

	_, err = s.ruleSvc.AddPartnerPreference(rule.ID, &service.AddPartnerPreferenceRequest{
		RefereeA: referee.ID,
		RefereeB: uuid.New(),
		Kind:     "friendly",
	})
	s.True(apperrors.IsValidation(err))

	_, err = s.ruleSvc.AddPartnerPreference(uuid.New(), &service.AddPartnerPreferenceRequest{
		RefereeA: referee.ID,
		RefereeB: uuid.New(),
		Kind:     models.PartnerPreferred,
	})
	s.ErrorIs(err, apperrors.ErrRuleNotFound)
}

func (s *RuleServiceTestSuite) TestRunGeneratesSuggestions() {
	s.createReferee()
	s.seedGame(testutils.NewGameFactory().At(upcomingDate(3), "18:00", "19:30"), 1)
	rule := s.createRule()

	run, err := s.ruleSvc.Run(context.Background(), rule.ID, "manual")
	s.Require().NoError(err)
	s.Equal(1, run.GamesConsidered)
	s.Equal(1, run.SuggestionsCreated)
	s.Equal("manual", run.TriggeredBy)

	runs, total, err := s.ruleSvc.GetRuns(rule.ID, 1, 20)
	s.Require().NoError(err)
	s.Equal(int64(1), total)
	s.Require().Len(runs, 1)
	s.Equal(run.ID, runs[0].ID)
}

func (s *RuleServiceTestSuite) TestRunFiltersByTypeAndLevel() {
	s.createReferee()
	s.seedGame(testutils.NewGameFactory().At(upcomingDate(3), "18:00", "19:30"), 1)

	resp, err := s.ruleSvc.Create(&service.CreateRuleRequest{
		Name:      "tournaments only",
		GameTypes: []models.GameType{models.GameTypeTournament},
	})
	s.Require().NoError(err)

	run, err := s.ruleSvc.Run(context.Background(), resp.ID, "manual")
	s.Require().NoError(err)
	s.Equal(0, run.GamesConsidered)
	s.Equal(0, run.SuggestionsCreated)

	resp, err = s.ruleSvc.Create(&service.CreateRuleRequest{
		Name:     "elite only",
		MinLevel: models.GameLevelElite,
	})
	s.Require().NoError(err)

	run, err = s.ruleSvc.Run(context.Background(), resp.ID, "manual")
	s.Require().NoError(err)
	s.Equal(0, run.GamesConsidered)
}

func (s *RuleServiceTestSuite) TestRunOutsideHorizonIgnored() {
	s.createReferee()
	s.seedGame(testutils.NewGameFactory().At(upcomingDate(30), "18:00", "19:30"), 1)
	rule := s.createRule()

	run, err := s.ruleSvc.Run(context.Background(), rule.ID, "manual")
	s.Require().NoError(err)
	s.Equal(0, run.GamesConsidered)
}

// fixedScoreStrategy stands in for an external scoring delegate
type fixedScoreStrategy struct {
	confidence float64
}

func (f fixedScoreStrategy) Score(_ context.Context, _ uuid.UUID, candidates []scheduling.Candidate, _ scheduling.Weights) ([]scheduling.ScoredCandidate, error) {
	scored := make([]scheduling.ScoredCandidate, 0, len(candidates))
	for _, c := range candidates {
		scored = append(scored, scheduling.ScoredCandidate{
			RefereeID:  c.Referee.ID,
			Confidence: f.confidence,
			Reasoning:  "ranked by external scorer",
		})
	}
	return scored, nil
}

func (s *RuleServiceTestSuite) TestRunHonorsWeightingMode() {
	s.createReferee()
	game := s.seedGame(testutils.NewGameFactory().At(upcomingDate(3), "18:00", "19:30"), 1)

	algorithmic, err := s.ruleSvc.Create(&service.CreateRuleRequest{Name: "local scoring"})
	s.Require().NoError(err)
	run, err := s.ruleSvc.Run(context.Background(), algorithmic.ID, "manual")
	s.Require().NoError(err)
	s.Require().Equal(1, run.SuggestionsCreated)

	localScores, err := s.suggestionSvc.GetPendingByGame(game.ID)
	s.Require().NoError(err)
	s.Require().Len(localScores, 1)
	s.NotEqual(0.42, localScores[0].ConfidenceScore)

	delegated := service.NewRuleService(s.ruleRepo, s.gameRepo, s.suggestionSvc,
		fixedScoreStrategy{confidence: 0.42}, validator.New())
	rule, err := delegated.Create(&service.CreateRuleRequest{
		Name:          "delegate scoring",
		WeightingMode: models.WeightingModeDelegate,
	})
	s.Require().NoError(err)

	run, err = delegated.Run(context.Background(), rule.ID, "manual")
	s.Require().NoError(err)
	s.Require().Equal(1, run.SuggestionsCreated)

	all, err := s.suggestionSvc.GetPendingByGame(game.ID)
	s.Require().NoError(err)
	s.Require().Len(all, 2)

	// the delegate's confidence is taken as-is, not the local composite
	delegateScored := false
	for _, sg := range all {
		if sg.ConfidenceScore == 0.42 {
			delegateScored = true
		}
	}
	s.True(delegateScored)
}

func (s *RuleServiceTestSuite) TestRunDelegateModeWithoutDelegate() {
	rule, err := s.ruleSvc.Create(&service.CreateRuleRequest{
		Name:          "needs delegate",
		WeightingMode: models.WeightingModeDelegate,
	})
	s.Require().NoError(err)

	_, err = s.ruleSvc.Run(context.Background(), rule.ID, "manual")
	s.True(apperrors.IsValidation(err))
}

func (s *RuleServiceTestSuite) TestRunDisabledRule() {
	enabled := false
	resp, err := s.ruleSvc.Create(&service.CreateRuleRequest{Name: "paused", Enabled: &enabled})
	s.Require().NoError(err)

	_, err = s.ruleSvc.Run(context.Background(), resp.ID, "manual")
	s.ErrorIs(err, apperrors.ErrRuleDisabled)
}
