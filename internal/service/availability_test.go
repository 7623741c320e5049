package service_test

import (
	"testing"
	"time"

	"referee-scheduler-backend/internal/service"
	"referee-scheduler-backend/internal/testutils"

	apperrors "referee-scheduler-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type AvailabilityServiceTestSuite struct {
	*serviceSuite
}

func TestAvailabilityServiceSuite(t *testing.T) {
	suite.Run(t, &AvailabilityServiceTestSuite{serviceSuite: newServiceSuite(t)})
}

func windowRequest(start, end string, available bool) *service.CreateWindowRequest {
	return &service.CreateWindowRequest{
		Date:        "2026-09-12",
		StartTime:   start,
		EndTime:     end,
		IsAvailable: available,
	}
}

func (s *AvailabilityServiceTestSuite) TestCreateWindow() {
	referee := s.createReferee()

	resp, err := s.availabilitySvc.Create(referee.ID, refereeActor(referee.ID), windowRequest("09:00", "12:00", true))
	s.Require().NoError(err)
	s.Equal(referee.ID, resp.RefereeID)
	s.Equal("2026-09-12", resp.Date)
	s.True(resp.IsAvailable)
}

func (s *AvailabilityServiceTestSuite) TestCreateBlockedWindowWithReason() {
	referee := s.createReferee()

	req := windowRequest("09:00", "12:00", false)
	req.Reason = "family commitment"
	resp, err := s.availabilitySvc.Create(referee.ID, adminActor(), req)
	s.Require().NoError(err)
	s.False(resp.IsAvailable)
	s.Equal("family commitment", resp.Reason)
}

func (s *AvailabilityServiceTestSuite) TestCreateOverlappingWindowRejected() {
	referee := s.createReferee()

	_, err := s.availabilitySvc.Create(referee.ID, refereeActor(referee.ID), windowRequest("09:00", "12:00", true))
	s.Require().NoError(err)

	// overlap is rejected regardless of the is_available flag
	_, err = s.availabilitySvc.Create(referee.ID, refereeActor(referee.ID), windowRequest("11:00", "14:00", false))
	s.ErrorIs(err, apperrors.ErrWindowOverlap)

	// back to back windows touch but do not overlap
	_, err = s.availabilitySvc.Create(referee.ID, refereeActor(referee.ID), windowRequest("12:00", "14:00", false))
	s.NoError(err)
}

func (s *AvailabilityServiceTestSuite) TestCreateOtherRefereeForbidden() {
	referee := s.createReferee()
	other := s.createReferee()

	_, err := s.availabilitySvc.Create(referee.ID, refereeActor(other.ID), windowRequest("09:00", "12:00", true))
	s.True(apperrors.IsAuthorization(err))
}

func (s *AvailabilityServiceTestSuite) TestCreateValidation() {
	referee := s.createReferee()

	req := windowRequest("09:00", "12:00", true)
	req.Date = "12.09.2026"
	_, err := s.availabilitySvc.Create(referee.ID, adminActor(), req)
	s.True(apperrors.IsValidation(err))

	req = windowRequest("9am", "12:00", true)
	_, err = s.availabilitySvc.Create(referee.ID, adminActor(), req)
	s.True(apperrors.IsValidation(err))

	_, err = s.availabilitySvc.Create(uuid.New(), adminActor(), windowRequest("09:00", "12:00", true))
	s.ErrorIs(err, apperrors.ErrRefereeNotFound)
}

func (s *AvailabilityServiceTestSuite) TestListWindows() {
	referee := s.createReferee()

	_, err := s.availabilitySvc.Create(referee.ID, adminActor(), windowRequest("09:00", "12:00", true))
	s.Require().NoError(err)
	_, err = s.availabilitySvc.Create(referee.ID, adminActor(), windowRequest("14:00", "16:00", false))
	s.Require().NoError(err)

	list, err := s.availabilitySvc.List(referee.ID, 1, 20)
	s.Require().NoError(err)
	s.Equal(int64(2), list.Total)
	s.Len(list.Windows, 2)
}

func (s *AvailabilityServiceTestSuite) TestDeleteWindow() {
	referee := s.createReferee()
	other := s.createReferee()
	window := testutils.NewAvailabilityWindowFactory().Blocked(referee.ID, time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC), "09:00", "12:00")
	s.Require().NoError(s.DB.Create(window).Error)

	err := s.availabilitySvc.Delete(window.ID, refereeActor(other.ID))
	s.True(apperrors.IsAuthorization(err))

	s.Require().NoError(s.availabilitySvc.Delete(window.ID, refereeActor(referee.ID)))

	err = s.availabilitySvc.Delete(window.ID, adminActor())
	s.ErrorIs(err, apperrors.ErrWindowNotFound)
}
