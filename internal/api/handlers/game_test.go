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

type GameHandlerTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	mock *mocks.MockGameServiceInterface
	http *testutils.HTTPTestSuite
}

func TestGameHandlerSuite(t *testing.T) {
	suite.Run(t, new(GameHandlerTestSuite))
}

func (s *GameHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mock = mocks.NewMockGameServiceInterface(s.ctrl)
	s.http = testutils.SetupHTTPTest()

	handler := handlers.NewGameHandler(s.mock)
	games := s.http.Router.Group("/api/v1/games")
	games.POST("", handler.CreateGame)
	games.GET("", handler.ListGames)
	games.GET("/:id", handler.GetGame)
	games.GET("/:id/positions", handler.ListGamePositions)
	games.PUT("/:id", handler.UpdateGame)
	games.DELETE("/:id", handler.DeleteGame)
}

func (s *GameHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *GameHandlerTestSuite) TestCreateGame() {
	gameID := uuid.New()
	s.mock.EXPECT().Create(gomock.Any()).Return(&service.GameResponse{
		ID:     gameID,
		Status: models.GameStatusUnassigned,
	}, nil)

	recorder := s.http.MakeRequest(http.MethodPost, "/api/v1/games", gin.H{
		"date":            "2026-09-12",
		"start_time":      "18:00",
		"location":        "City Arena",
		"level":           "competitive",
		"game_type":       "community",
		"refs_needed":     2,
		"wage_multiplier": 1.2,
	})

	var resp service.GameResponse
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusCreated, &resp)
	s.Equal(gameID, resp.ID)
}

func (s *GameHandlerTestSuite) TestCreateGameMalformedBody() {
	recorder := s.http.MakeRequest(http.MethodPost, "/api/v1/games", []int{1, 2})
	testutils.AssertErrorResponse(s.T(), recorder, http.StatusBadRequest, "")
}

func (s *GameHandlerTestSuite) TestCreateGameValidationError() {
	s.mock.EXPECT().Create(gomock.Any()).Return(nil, apperrors.NewValidationError("level", "invalid game level"))

	recorder := s.http.MakeRequest(http.MethodPost, "/api/v1/games", gin.H{"date": "2026-09-12"})
	testutils.AssertErrorResponse(s.T(), recorder, http.StatusBadRequest, "invalid game level")
}

func (s *GameHandlerTestSuite) TestGetGame() {
	gameID := uuid.New()
	s.mock.EXPECT().GetByID(gameID).Return(&service.GameResponse{ID: gameID}, nil)

	recorder := s.http.MakeRequest(http.MethodGet, "/api/v1/games/"+gameID.String(), nil)

	var resp service.GameResponse
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusOK, &resp)
	s.Equal(gameID, resp.ID)
}

func (s *GameHandlerTestSuite) TestGetGameInvalidID() {
	recorder := s.http.MakeRequest(http.MethodGet, "/api/v1/games/not-a-uuid", nil)
	testutils.AssertErrorResponse(s.T(), recorder, http.StatusBadRequest, "invalid game ID")
}

func (s *GameHandlerTestSuite) TestGetGameNotFound() {
	gameID := uuid.New()
	s.mock.EXPECT().GetByID(gameID).Return(nil, apperrors.ErrGameNotFound)

	recorder := s.http.MakeRequest(http.MethodGet, "/api/v1/games/"+gameID.String(), nil)
	testutils.AssertErrorResponse(s.T(), recorder, http.StatusNotFound, "game not found")
}

func (s *GameHandlerTestSuite) TestListGamePositions() {
	gameID := uuid.New()
	s.mock.EXPECT().GetByID(gameID).Return(&service.GameResponse{
		ID: gameID,
		Positions: []service.PositionResponse{
			{ID: uuid.New(), Name: "Referee 1"},
			{ID: uuid.New(), Name: "Referee 2"},
		},
	}, nil)

	recorder := s.http.MakeRequest(http.MethodGet, "/api/v1/games/"+gameID.String()+"/positions", nil)

	var resp []service.PositionResponse
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusOK, &resp)
	s.Require().Len(resp, 2)
	s.Equal("Referee 1", resp[0].Name)
}

func (s *GameHandlerTestSuite) TestListGamesPassesPagination() {
	s.mock.EXPECT().List(gomock.Any(), 2, 5).Return(&service.GameListResponse{Page: 2, PageSize: 5}, nil)

	recorder := s.http.MakeRequest(http.MethodGet, "/api/v1/games?page=2&page_size=5&status=unassigned", nil)

	var resp service.GameListResponse
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusOK, &resp)
	s.Equal(2, resp.Page)
}

func (s *GameHandlerTestSuite) TestListGamesBadDateFilter() {
	recorder := s.http.MakeRequest(http.MethodGet, "/api/v1/games?start_date=09-12-2026", nil)
	testutils.AssertErrorResponse(s.T(), recorder, http.StatusBadRequest, "invalid start_date")
}

func (s *GameHandlerTestSuite) TestUpdateGame() {
	gameID := uuid.New()
	s.mock.EXPECT().Update(gameID, gomock.Any()).Return(&service.GameResponse{ID: gameID, Location: "North Hall"}, nil)

	recorder := s.http.MakeRequest(http.MethodPut, "/api/v1/games/"+gameID.String(), gin.H{"location": "North Hall"})

	var resp service.GameResponse
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusOK, &resp)
	s.Equal("North Hall", resp.Location)
}

func (s *GameHandlerTestSuite) TestDeleteGame() {
	gameID := uuid.New()
	s.mock.EXPECT().Delete(gameID).Return(nil)

	recorder := s.http.MakeRequest(http.MethodDelete, "/api/v1/games/"+gameID.String(), nil)
	s.Equal(http.StatusNoContent, recorder.Code)
}

func (s *GameHandlerTestSuite) TestDeleteGameWithActiveAssignments() {
	gameID := uuid.New()
	s.mock.EXPECT().Delete(gameID).Return(apperrors.NewConflictError("game has active assignments", gameID))

	recorder := s.http.MakeRequest(http.MethodDelete, "/api/v1/games/"+gameID.String(), nil)

	var resp handlers.ErrorResponse
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusConflict, &resp)
	s.Contains(resp.ConflictGameIDs, gameID.String())
}
