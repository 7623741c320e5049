package handlers_test

import (
	"net/http"
	"testing"

	"referee-scheduler-backend/internal/api/handlers"
	"referee-scheduler-backend/internal/database/models"
	"referee-scheduler-backend/internal/mocks"
	"referee-scheduler-backend/internal/service"
	"referee-scheduler-backend/internal/testutils"

	apperrors "referee-scheduler-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AssignmentHandlerTestSuite struct {
	suite.Suite
	ctrl  *gomock.Controller
	mock  *mocks.MockAssignmentServiceInterface
	http  *testutils.HTTPTestSuite
	actor *service.Actor
}

func TestAssignmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(AssignmentHandlerTestSuite))
}

func (s *AssignmentHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mock = mocks.NewMockAssignmentServiceInterface(s.ctrl)
	s.http = testutils.SetupHTTPTest()
	s.actor = nil

	// stands in for the auth middleware; tests set s.actor per scenario
	s.http.Router.Use(func(c *gin.Context) {
		if s.actor != nil {
			c.Set("actor", *s.actor)
		}
		c.Next()
	})

	handler := handlers.NewAssignmentHandler(s.mock)
	assignments := s.http.Router.Group("/api/v1/assignments")
	assignments.POST("", handler.CreateAssignment)
	assignments.GET("", handler.ListAssignments)
	assignments.GET("/:id", handler.GetAssignment)
	assignments.PUT("/:id", handler.UpdateAssignment)
	assignments.DELETE("/:id", handler.DeleteAssignment)
}

func (s *AssignmentHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AssignmentHandlerTestSuite) asAdmin() {
	actor := service.Actor{Role: service.RoleAdmin}
	s.actor = &actor
}

func (s *AssignmentHandlerTestSuite) asReferee(id uuid.UUID) {
	actor := service.Actor{RefereeID: &id, Role: service.RoleReferee}
	s.actor = &actor
}

func (s *AssignmentHandlerTestSuite) TestCreateAssignment() {
	assignmentID := uuid.New()
	s.mock.EXPECT().Create(gomock.Any()).Return(&service.AssignmentResponse{
		ID:             assignmentID,
		Status:         models.AssignmentStatusPending,
		CalculatedWage: 90,
	}, nil)

	recorder := s.http.MakeRequest(http.MethodPost, "/api/v1/assignments", gin.H{
		"game_id":     uuid.New().String(),
		"referee_id":  uuid.New().String(),
		"position_id": uuid.New().String(),
	})

	var resp service.AssignmentResponse
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusCreated, &resp)
	s.Equal(assignmentID, resp.ID)
	s.Equal(90.0, resp.CalculatedWage)
}

func (s *AssignmentHandlerTestSuite) TestCreateAssignmentConflict() {
	conflictID := uuid.New()
	s.mock.EXPECT().Create(gomock.Any()).Return(nil,
		apperrors.NewConflictError("referee has a scheduling conflict", conflictID))

	recorder := s.http.MakeRequest(http.MethodPost, "/api/v1/assignments", gin.H{
		"game_id":     uuid.New().String(),
		"referee_id":  uuid.New().String(),
		"position_id": uuid.New().String(),
	})

	var resp handlers.ErrorResponse
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusConflict, &resp)
	s.Equal([]string{conflictID.String()}, resp.ConflictGameIDs)
}

func (s *AssignmentHandlerTestSuite) TestCreateAssignmentCapacity() {
	s.mock.EXPECT().Create(gomock.Any()).Return(nil, apperrors.ErrGameFullyAssigned)

	recorder := s.http.MakeRequest(http.MethodPost, "/api/v1/assignments", gin.H{
		"game_id":     uuid.New().String(),
		"referee_id":  uuid.New().String(),
		"position_id": uuid.New().String(),
	})
	testutils.AssertErrorResponse(s.T(), recorder, http.StatusBadRequest, "fully assigned")
}

func (s *AssignmentHandlerTestSuite) TestGetAssignmentRequiresAuth() {
	recorder := s.http.MakeRequest(http.MethodGet, "/api/v1/assignments/"+uuid.New().String(), nil)
	testutils.AssertErrorResponse(s.T(), recorder, http.StatusUnauthorized, "Authentication required")
}

func (s *AssignmentHandlerTestSuite) TestGetAssignment() {
	s.asAdmin()
	assignmentID := uuid.New()
	s.mock.EXPECT().GetByID(assignmentID, gomock.Any()).Return(&service.AssignmentResponse{ID: assignmentID}, nil)

	recorder := s.http.MakeRequest(http.MethodGet, "/api/v1/assignments/"+assignmentID.String(), nil)

	var resp service.AssignmentResponse
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusOK, &resp)
	s.Equal(assignmentID, resp.ID)
}

func (s *AssignmentHandlerTestSuite) TestListAssignmentsPassesActor() {
	refereeID := uuid.New()
	s.asReferee(refereeID)

	s.mock.EXPECT().List(gomock.Any(), service.Actor{RefereeID: &refereeID, Role: service.RoleReferee}, 1, 20).
		Return(&service.AssignmentListResponse{}, nil)

	recorder := s.http.MakeRequest(http.MethodGet, "/api/v1/assignments", nil)
	s.Equal(http.StatusOK, recorder.Code)
}

func (s *AssignmentHandlerTestSuite) TestUpdateAssignmentForbiddenTransition() {
	s.asReferee(uuid.New())
	assignmentID := uuid.New()
	s.mock.EXPECT().Update(assignmentID, gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NewAuthorizationError("only admins can reset an accepted assignment"))

	recorder := s.http.MakeRequest(http.MethodPut, "/api/v1/assignments/"+assignmentID.String(), gin.H{"status": "pending"})
	testutils.AssertErrorResponse(s.T(), recorder, http.StatusForbidden, "only admins")
}

func (s *AssignmentHandlerTestSuite) TestUpdateAssignmentInvalidTransition() {
	s.asAdmin()
	assignmentID := uuid.New()
	s.mock.EXPECT().Update(assignmentID, gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NewInvalidTransitionError("completed", "pending"))

	recorder := s.http.MakeRequest(http.MethodPut, "/api/v1/assignments/"+assignmentID.String(), gin.H{"status": "pending"})
	testutils.AssertErrorResponse(s.T(), recorder, http.StatusBadRequest, "invalid status transition")
}

func (s *AssignmentHandlerTestSuite) TestDeleteAssignment() {
	s.asAdmin()
	assignmentID := uuid.New()
	s.mock.EXPECT().Delete(assignmentID, gomock.Any()).Return(nil)

	recorder := s.http.MakeRequest(http.MethodDelete, "/api/v1/assignments/"+assignmentID.String(), nil)
	s.Equal(http.StatusNoContent, recorder.Code)
}

func (s *AssignmentHandlerTestSuite) TestDeleteAssignmentInvalidID() {
	s.asAdmin()
	recorder := s.http.MakeRequest(http.MethodDelete, "/api/v1/assignments/not-a-uuid", nil)
	testutils.AssertErrorResponse(s.T(), recorder, http.StatusBadRequest, "invalid assignment ID")
}
