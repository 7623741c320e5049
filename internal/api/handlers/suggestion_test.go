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

type SuggestionHandlerTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	mock *mocks.MockSuggestionServiceInterface
	http *testutils.HTTPTestSuite
}

func TestSuggestionHandlerSuite(t *testing.T) {
	suite.Run(t, new(SuggestionHandlerTestSuite))
}

func (s *SuggestionHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mock = mocks.NewMockSuggestionServiceInterface(s.ctrl)
	s.http = testutils.SetupHTTPTest()

	handler := handlers.NewSuggestionHandler(s.mock)
	api := s.http.Router.Group("/api/v1")
	api.POST("/assignments/ai-suggestions", handler.GenerateSuggestions)
	api.PUT("/assignments/ai-suggestions/:id/accept", handler.AcceptSuggestion)
	api.PUT("/assignments/ai-suggestions/:id/reject", handler.RejectSuggestion)
	api.GET("/games/:id/suggestions", handler.ListGameSuggestions)
}

func (s *SuggestionHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *SuggestionHandlerTestSuite) TestGenerateSuggestions() {
	gameID := uuid.New()
	s.mock.EXPECT().Generate(gomock.Any(), gomock.Any()).Return([]service.SuggestionResponse{
		{ID: uuid.New(), GameID: gameID, ConfidenceScore: 0.9, Status: models.SuggestionStatusPending},
		{ID: uuid.New(), GameID: gameID, ConfidenceScore: 0.7, Status: models.SuggestionStatusPending},
	}, nil)

	recorder := s.http.MakeRequest(http.MethodPost, "/api/v1/assignments/ai-suggestions", gin.H{
		"game_ids": []string{gameID.String()},
	})

	var resp []service.SuggestionResponse
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusOK, &resp)
	s.Require().Len(resp, 2)
	s.Greater(resp[0].ConfidenceScore, resp[1].ConfidenceScore)
}

func (s *SuggestionHandlerTestSuite) TestGenerateSuggestionsEmptyGameList() {
	s.mock.EXPECT().Generate(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NewValidationError("game_ids", "at least one game id is required"))

	recorder := s.http.MakeRequest(http.MethodPost, "/api/v1/assignments/ai-suggestions", gin.H{"game_ids": []string{}})
	testutils.AssertErrorResponse(s.T(), recorder, http.StatusBadRequest, "at least one game id")
}

func (s *SuggestionHandlerTestSuite) TestAcceptSuggestion() {
	suggestionID := uuid.New()
	assignmentID := uuid.New()
	s.mock.EXPECT().Accept(suggestionID).Return(&service.AssignmentResponse{
		ID:     assignmentID,
		Status: models.AssignmentStatusPending,
	}, nil)

	recorder := s.http.MakeRequest(http.MethodPut, "/api/v1/assignments/ai-suggestions/"+suggestionID.String()+"/accept", nil)

	var resp service.AssignmentResponse
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusOK, &resp)
	s.Equal(assignmentID, resp.ID)
}

func (s *SuggestionHandlerTestSuite) TestAcceptExpiredSuggestion() {
	suggestionID := uuid.New()
	s.mock.EXPECT().Accept(suggestionID).Return(nil, apperrors.ErrSuggestionExpired)

	recorder := s.http.MakeRequest(http.MethodPut, "/api/v1/assignments/ai-suggestions/"+suggestionID.String()+"/accept", nil)
	testutils.AssertErrorResponse(s.T(), recorder, http.StatusBadRequest, "expired")
}

func (s *SuggestionHandlerTestSuite) TestAcceptDecidedSuggestion() {
	suggestionID := uuid.New()
	s.mock.EXPECT().Accept(suggestionID).Return(nil, apperrors.ErrSuggestionDecided)

	recorder := s.http.MakeRequest(http.MethodPut, "/api/v1/assignments/ai-suggestions/"+suggestionID.String()+"/accept", nil)
	testutils.AssertErrorResponse(s.T(), recorder, http.StatusBadRequest, "already been decided")
}

func (s *SuggestionHandlerTestSuite) TestRejectSuggestionWithReason() {
	suggestionID := uuid.New()
	s.mock.EXPECT().Reject(suggestionID, "venue too far").Return(&service.SuggestionResponse{
		ID:     suggestionID,
		Status: models.SuggestionStatusRejected,
	}, nil)

	recorder := s.http.MakeRequest(http.MethodPut, "/api/v1/assignments/ai-suggestions/"+suggestionID.String()+"/reject",
		gin.H{"reason": "venue too far"})

	var resp service.SuggestionResponse
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusOK, &resp)
	s.Equal(models.SuggestionStatusRejected, resp.Status)
}

func (s *SuggestionHandlerTestSuite) TestRejectSuggestionWithoutBody() {
	suggestionID := uuid.New()
	s.mock.EXPECT().Reject(suggestionID, "").Return(&service.SuggestionResponse{
		ID:     suggestionID,
		Status: models.SuggestionStatusRejected,
	}, nil)

	recorder := s.http.MakeRequest(http.MethodPut, "/api/v1/assignments/ai-suggestions/"+suggestionID.String()+"/reject", nil)
	s.Equal(http.StatusOK, recorder.Code)
}

func (s *SuggestionHandlerTestSuite) TestListGameSuggestions() {
	gameID := uuid.New()
	s.mock.EXPECT().GetPendingByGame(gameID).Return([]service.SuggestionResponse{
		{ID: uuid.New(), GameID: gameID, Status: models.SuggestionStatusPending},
	}, nil)

	recorder := s.http.MakeRequest(http.MethodGet, "/api/v1/games/"+gameID.String()+"/suggestions", nil)

	var resp []service.SuggestionResponse
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusOK, &resp)
	s.Len(resp, 1)
}

func (s *SuggestionHandlerTestSuite) TestListGameSuggestionsInvalidID() {
	recorder := s.http.MakeRequest(http.MethodGet, "/api/v1/games/not-a-uuid/suggestions", nil)
	testutils.AssertErrorResponse(s.T(), recorder, http.StatusBadRequest, "invalid game ID")
}
