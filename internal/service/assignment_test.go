package service_test

import (
	"testing"
	"time"

	"referee-scheduler-backend/internal/database/models"
	"referee-scheduler-backend/internal/service"
	"referee-scheduler-backend/internal/testutils"

	apperrors "referee-scheduler-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type AssignmentServiceTestSuite struct {
	*serviceSuite
}

func TestAssignmentServiceSuite(t *testing.T) {
	suite.Run(t, &AssignmentServiceTestSuite{serviceSuite: newServiceSuite(t)})
}

func (s *AssignmentServiceTestSuite) create(gameID, refereeID, positionID uuid.UUID) (*service.AssignmentResponse, error) {
	return s.assignmentSvc.Create(&service.CreateAssignmentRequest{
		GameID:     gameID,
		RefereeID:  refereeID,
		PositionID: positionID,
	})
}

func (s *AssignmentServiceTestSuite) TestCreateCalculatesWage() {
	referee := s.createReferee()
	game := testutils.NewGameFactory().Create()
	game.WageMultiplier = 1.5
	s.seedGame(game, 1)

	resp, err := s.create(game.ID, referee.ID, game.Positions[0].ID)
	s.Require().NoError(err)
	s.Equal(models.AssignmentStatusPending, resp.Status)
	s.Equal(90.0, resp.CalculatedWage)
}

func (s *AssignmentServiceTestSuite) TestCreateFlipsGameStatusWhenStaffed() {
	referee := s.createReferee()
	game := s.createGame(1)

	_, err := s.create(game.ID, referee.ID, game.Positions[0].ID)
	s.Require().NoError(err)
	s.Equal(models.GameStatusAssigned, s.reloadGame(game.ID).Status)
}

func (s *AssignmentServiceTestSuite) TestCreatePartiallyStaffedStaysUnassigned() {
	referee := s.createReferee()
	game := s.createGame(2)

	_, err := s.create(game.ID, referee.ID, game.Positions[0].ID)
	s.Require().NoError(err)
	s.Equal(models.GameStatusUnassigned, s.reloadGame(game.ID).Status)
}

func (s *AssignmentServiceTestSuite) TestCreateMissingEntities() {
	referee := s.createReferee()
	game := s.createGame(1)

	_, err := s.create(uuid.New(), referee.ID, game.Positions[0].ID)
	s.ErrorIs(err, apperrors.ErrGameNotFound)

	_, err = s.create(game.ID, uuid.New(), game.Positions[0].ID)
	s.ErrorIs(err, apperrors.ErrRefereeNotFound)

	_, err = s.create(game.ID, referee.ID, uuid.New())
	s.ErrorIs(err, apperrors.ErrPositionNotFound)
}

func (s *AssignmentServiceTestSuite) TestCreatePositionOfAnotherGame() {
	referee := s.createReferee()
	game := s.createGame(1)
	other := s.createGameAt(time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC), "10:00", "11:30", 1)

	_, err := s.create(game.ID, referee.ID, other.Positions[0].ID)
	s.True(apperrors.IsValidation(err))
}

func (s *AssignmentServiceTestSuite) TestCreateUnavailableReferee() {
	referee := s.createUnavailableReferee()
	game := s.createGame(1)

	_, err := s.create(game.ID, referee.ID, game.Positions[0].ID)
	s.ErrorIs(err, apperrors.ErrRefereeUnavailable)
}

func (s *AssignmentServiceTestSuite) TestCreateDuplicateReferee() {
	referee := s.createReferee()
	game := s.createGame(2)

	_, err := s.create(game.ID, referee.ID, game.Positions[0].ID)
	s.Require().NoError(err)

	_, err = s.create(game.ID, referee.ID, game.Positions[1].ID)
	s.ErrorIs(err, apperrors.ErrAlreadyAssigned)
}

func (s *AssignmentServiceTestSuite) TestCreateFullyStaffedGame() {
	first := s.createReferee()
	second := s.createReferee()
	game := s.createGame(1)

	_, err := s.create(game.ID, first.ID, game.Positions[0].ID)
	s.Require().NoError(err)

	_, err = s.create(game.ID, second.ID, game.Positions[0].ID)
	s.ErrorIs(err, apperrors.ErrGameFullyAssigned)
	s.True(apperrors.IsCapacity(err))
}

func (s *AssignmentServiceTestSuite) TestDeclinedAssignmentFreesCapacity() {
	first := s.createReferee()
	second := s.createReferee()
	game := s.createGame(1)

	resp, err := s.create(game.ID, first.ID, game.Positions[0].ID)
	s.Require().NoError(err)

	declined := models.AssignmentStatusDeclined
	_, err = s.assignmentSvc.Update(resp.ID, &service.UpdateAssignmentRequest{Status: &declined}, refereeActor(first.ID))
	s.Require().NoError(err)

	_, err = s.create(game.ID, second.ID, game.Positions[0].ID)
	s.NoError(err)
}

func (s *AssignmentServiceTestSuite) TestSlotUniquenessEnforcedByDatabase() {
	first := s.createReferee()
	second := s.createReferee()
	game := s.createGame(1)

	resp, err := s.create(game.ID, first.ID, game.Positions[0].ID)
	s.Require().NoError(err)

	// writing through the repository skips the advisory checks; the unique
	// index decides the race
	err = s.assignmentRepo.Create(&models.Assignment{
		GameID:     game.ID,
		RefereeID:  second.ID,
		PositionID: game.Positions[0].ID,
		Status:     models.AssignmentStatusPending,
	})
	s.True(apperrors.IsConflict(err))

	// a declined occupant no longer holds the slot at the database level
	declined := models.AssignmentStatusDeclined
	_, err = s.assignmentSvc.Update(resp.ID, &service.UpdateAssignmentRequest{Status: &declined}, refereeActor(first.ID))
	s.Require().NoError(err)

	err = s.assignmentRepo.Create(&models.Assignment{
		GameID:     game.ID,
		RefereeID:  second.ID,
		PositionID: game.Positions[0].ID,
		Status:     models.AssignmentStatusPending,
	})
	s.NoError(err)
}

func (s *AssignmentServiceTestSuite) TestDeclineRecomputesGameStatus() {
	referee := s.createReferee()
	game := s.createGame(1)

	resp, err := s.create(game.ID, referee.ID, game.Positions[0].ID)
	s.Require().NoError(err)
	s.Equal(models.GameStatusAssigned, s.reloadGame(game.ID).Status)

	declined := models.AssignmentStatusDeclined
	_, err = s.assignmentSvc.Update(resp.ID, &service.UpdateAssignmentRequest{Status: &declined}, refereeActor(referee.ID))
	s.Require().NoError(err)
	s.Equal(models.GameStatusUnassigned, s.reloadGame(game.ID).Status)
}

func (s *AssignmentServiceTestSuite) TestCreateSchedulingConflict() {
	referee := s.createReferee()
	date := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	first := s.createGameAt(date, "18:00", "19:30", 1)
	overlapping := s.createGameAt(date, "19:00", "20:30", 1)

	_, err := s.create(first.ID, referee.ID, first.Positions[0].ID)
	s.Require().NoError(err)

	_, err = s.create(overlapping.ID, referee.ID, overlapping.Positions[0].ID)
	s.Require().True(apperrors.IsConflict(err))
	s.Equal([]uuid.UUID{first.ID}, apperrors.ConflictGameIDs(err))

	resp, err := s.assignmentSvc.Create(&service.CreateAssignmentRequest{
		GameID:            overlapping.ID,
		RefereeID:         referee.ID,
		PositionID:        overlapping.Positions[0].ID,
		OverrideConflicts: true,
	})
	s.Require().NoError(err)
	s.Equal(models.AssignmentStatusPending, resp.Status)
}

func (s *AssignmentServiceTestSuite) TestCreateDisjointGamesSameDay() {
	referee := s.createReferee()
	date := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	morning := s.createGameAt(date, "09:00", "10:30", 1)
	evening := s.createGameAt(date, "18:00", "19:30", 1)

	_, err := s.create(morning.ID, referee.ID, morning.Positions[0].ID)
	s.Require().NoError(err)

	_, err = s.create(evening.ID, referee.ID, evening.Positions[0].ID)
	s.NoError(err)
}

func (s *AssignmentServiceTestSuite) TestTransitionsOwnerAcceptAndDecline() {
	referee := s.createReferee()
	game := s.createGame(2)

	resp, err := s.create(game.ID, referee.ID, game.Positions[0].ID)
	s.Require().NoError(err)

	accepted := models.AssignmentStatusAccepted
	updated, err := s.assignmentSvc.Update(resp.ID, &service.UpdateAssignmentRequest{Status: &accepted}, refereeActor(referee.ID))
	s.Require().NoError(err)
	s.Equal(models.AssignmentStatusAccepted, updated.Status)

	// accepted rows may only be reset by an admin
	pending := models.AssignmentStatusPending
	_, err = s.assignmentSvc.Update(resp.ID, &service.UpdateAssignmentRequest{Status: &pending}, refereeActor(referee.ID))
	s.True(apperrors.IsAuthorization(err))

	updated, err = s.assignmentSvc.Update(resp.ID, &service.UpdateAssignmentRequest{Status: &pending}, adminActor())
	s.Require().NoError(err)
	s.Equal(models.AssignmentStatusPending, updated.Status)
}

func (s *AssignmentServiceTestSuite) TestTransitionOtherRefereeForbidden() {
	referee := s.createReferee()
	other := s.createReferee()
	game := s.createGame(1)

	resp, err := s.create(game.ID, referee.ID, game.Positions[0].ID)
	s.Require().NoError(err)

	accepted := models.AssignmentStatusAccepted
	_, err = s.assignmentSvc.Update(resp.ID, &service.UpdateAssignmentRequest{Status: &accepted}, refereeActor(other.ID))
	s.True(apperrors.IsAuthorization(err))
}

func (s *AssignmentServiceTestSuite) TestTransitionDeclinedIsTerminal() {
	referee := s.createReferee()
	game := s.createGame(1)

	resp, err := s.create(game.ID, referee.ID, game.Positions[0].ID)
	s.Require().NoError(err)

	declined := models.AssignmentStatusDeclined
	_, err = s.assignmentSvc.Update(resp.ID, &service.UpdateAssignmentRequest{Status: &declined}, refereeActor(referee.ID))
	s.Require().NoError(err)

	accepted := models.AssignmentStatusAccepted
	_, err = s.assignmentSvc.Update(resp.ID, &service.UpdateAssignmentRequest{Status: &accepted}, adminActor())
	s.True(apperrors.IsInvalidTransition(err))
}

func (s *AssignmentServiceTestSuite) TestCompletedRowsAreFrozen() {
	referee := s.createReferee()
	game := s.createGame(1)
	assignment := testutils.NewAssignmentFactory().WithStatus(game.ID, referee.ID, game.Positions[0].ID, models.AssignmentStatusCompleted)
	s.Require().NoError(s.DB.Create(assignment).Error)

	pending := models.AssignmentStatusPending
	_, err := s.assignmentSvc.Update(assignment.ID, &service.UpdateAssignmentRequest{Status: &pending}, adminActor())
	s.True(apperrors.IsInvalidTransition(err))

	err = s.assignmentSvc.Delete(assignment.ID, adminActor())
	s.True(apperrors.IsInvalidTransition(err))
}

func (s *AssignmentServiceTestSuite) TestSameStatusIsANoOp() {
	referee := s.createReferee()
	game := s.createGame(1)

	resp, err := s.create(game.ID, referee.ID, game.Positions[0].ID)
	s.Require().NoError(err)

	pending := models.AssignmentStatusPending
	updated, err := s.assignmentSvc.Update(resp.ID, &service.UpdateAssignmentRequest{Status: &pending}, refereeActor(referee.ID))
	s.Require().NoError(err)
	s.Equal(models.AssignmentStatusPending, updated.Status)
}

func (s *AssignmentServiceTestSuite) TestRecalculateWage() {
	referee := s.createReferee()
	game := s.createGame(1)

	resp, err := s.create(game.ID, referee.ID, game.Positions[0].ID)
	s.Require().NoError(err)
	s.Equal(60.0, resp.CalculatedWage)

	game.WageMultiplier = 2
	s.Require().NoError(s.DB.Save(game).Error)

	_, err = s.assignmentSvc.Update(resp.ID, &service.UpdateAssignmentRequest{RecalculateWage: true}, refereeActor(referee.ID))
	s.True(apperrors.IsAuthorization(err))

	updated, err := s.assignmentSvc.Update(resp.ID, &service.UpdateAssignmentRequest{RecalculateWage: true}, adminActor())
	s.Require().NoError(err)
	s.Equal(120.0, updated.CalculatedWage)
}

func (s *AssignmentServiceTestSuite) TestDeleteRecomputesGameStatus() {
	referee := s.createReferee()
	game := s.createGame(1)

	resp, err := s.create(game.ID, referee.ID, game.Positions[0].ID)
	s.Require().NoError(err)
	s.Equal(models.GameStatusAssigned, s.reloadGame(game.ID).Status)

	s.Require().NoError(s.assignmentSvc.Delete(resp.ID, adminActor()))
	s.Equal(models.GameStatusUnassigned, s.reloadGame(game.ID).Status)

	err = s.assignmentSvc.Delete(resp.ID, adminActor())
	s.ErrorIs(err, apperrors.ErrAssignmentNotFound)
}

func (s *AssignmentServiceTestSuite) TestDeleteOwnershipRules() {
	referee := s.createReferee()
	other := s.createReferee()
	game := s.createGame(2)

	resp, err := s.create(game.ID, referee.ID, game.Positions[0].ID)
	s.Require().NoError(err)

	err = s.assignmentSvc.Delete(resp.ID, refereeActor(other.ID))
	s.True(apperrors.IsAuthorization(err))

	accepted := models.AssignmentStatusAccepted
	_, err = s.assignmentSvc.Update(resp.ID, &service.UpdateAssignmentRequest{Status: &accepted}, refereeActor(referee.ID))
	s.Require().NoError(err)

	err = s.assignmentSvc.Delete(resp.ID, refereeActor(referee.ID))
	s.ErrorIs(err, apperrors.ErrAcceptedSelfDelete)

	s.NoError(s.assignmentSvc.Delete(resp.ID, adminActor()))
}

func (s *AssignmentServiceTestSuite) TestDeleteOwnPendingAssignment() {
	referee := s.createReferee()
	game := s.createGame(1)

	resp, err := s.create(game.ID, referee.ID, game.Positions[0].ID)
	s.Require().NoError(err)

	s.NoError(s.assignmentSvc.Delete(resp.ID, refereeActor(referee.ID)))
}

func (s *AssignmentServiceTestSuite) TestListScopedToRefereeActor() {
	referee := s.createReferee()
	other := s.createReferee()
	game := s.createGame(2)

	_, err := s.create(game.ID, referee.ID, game.Positions[0].ID)
	s.Require().NoError(err)
	_, err = s.create(game.ID, other.ID, game.Positions[1].ID)
	s.Require().NoError(err)

	list, err := s.assignmentSvc.List(service.ListFilters{}, refereeActor(referee.ID), 1, 20)
	s.Require().NoError(err)
	s.Require().Len(list.Assignments, 1)
	s.Equal(referee.ID, list.Assignments[0].RefereeID)

	list, err = s.assignmentSvc.List(service.ListFilters{}, adminActor(), 1, 20)
	s.Require().NoError(err)
	s.Len(list.Assignments, 2)
	s.Equal(int64(2), list.Total)
}

func (s *AssignmentServiceTestSuite) TestGetByIDVisibility() {
	referee := s.createReferee()
	other := s.createReferee()
	game := s.createGame(1)

	resp, err := s.create(game.ID, referee.ID, game.Positions[0].ID)
	s.Require().NoError(err)

	_, err = s.assignmentSvc.GetByID(resp.ID, refereeActor(other.ID))
	s.True(apperrors.IsAuthorization(err))

	got, err := s.assignmentSvc.GetByID(resp.ID, refereeActor(referee.ID))
	s.Require().NoError(err)
	s.Equal(resp.ID, got.ID)
}
