package handlers

import (
	"net/http"
	"strconv"
	"time"

	"referee-scheduler-backend/internal/database/models"
	"referee-scheduler-backend/internal/repository"
	"referee-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GameHandler handles HTTP requests for game operations
type GameHandler struct {
	gameService service.GameServiceInterface
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameService service.GameServiceInterface) *GameHandler {
	return &GameHandler{
		gameService: gameService,
	}
}

// CreateGame handles POST /games
// @Summary Create a new game
// @Description Create a game with its staffing positions
// @Tags games
// @Accept json
// @Produce json
// @Param game body service.CreateGameRequest true "Game data"
// @Success 201 {object} service.GameResponse "Successfully created game"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Security BearerAuth
// @Router /games [post]
func (h *GameHandler) CreateGame(c *gin.Context) {
	var req service.CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	game, err := h.gameService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, game)
}

// GetGame handles GET /games/:id
// @Summary Get game by ID
// @Description Get a specific game with its positions
// @Tags games
// @Accept json
// @Produce json
// @Param id path string true "Game ID (UUID)"
// @Success 200 {object} service.GameResponse "Successfully retrieved game"
// @Failure 400 {object} ErrorResponse "Invalid game ID"
// @Failure 404 {object} ErrorResponse "Game not found"
// @Security BearerAuth
// @Router /games/{id} [get]
func (h *GameHandler) GetGame(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid game ID"})
		return
	}

	game, err := h.gameService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, game)
}

// ListGames handles GET /games
// @Summary List games
// @Description Get games with optional status, location and date filters
// @Tags games
// @Accept json
// @Produce json
// @Param status query string false "Game status filter"
// @Param location query string false "Location filter"
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.GameListResponse "Successfully retrieved games"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Security BearerAuth
// @Router /games [get]
func (h *GameHandler) ListGames(c *gin.Context) {
	filters := repository.GameFilters{
		Status:   models.GameStatus(c.Query("status")),
		Location: c.Query("location"),
	}
	if raw := c.Query("start_date"); raw != "" {
		date, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date"})
			return
		}
		filters.StartDate = &date
	}
	if raw := c.Query("end_date"); raw != "" {
		date, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end_date"})
			return
		}
		filters.EndDate = &date
	}

	page, pageSize := parsePagination(c)
	games, err := h.gameService.List(filters, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, games)
}

// ListGamePositions handles GET /games/:id/positions
// @Summary List a game's positions
// @Description Get the staffing positions of a game
// @Tags games
// @Accept json
// @Produce json
// @Param id path string true "Game ID (UUID)"
// @Success 200 {array} service.PositionResponse "Successfully retrieved positions"
// @Failure 400 {object} ErrorResponse "Invalid game ID"
// @Failure 404 {object} ErrorResponse "Game not found"
// @Security BearerAuth
// @Router /games/{id}/positions [get]
func (h *GameHandler) ListGamePositions(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid game ID"})
		return
	}

	game, err := h.gameService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, game.Positions)
}

// UpdateGame handles PUT /games/:id
// @Summary Update a game
// @Description Update a game's schedule details
// @Tags games
// @Accept json
// @Produce json
// @Param id path string true "Game ID (UUID)"
// @Param game body service.UpdateGameRequest true "Game data"
// @Success 200 {object} service.GameResponse "Successfully updated game"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Game not found"
// @Security BearerAuth
// @Router /games/{id} [put]
func (h *GameHandler) UpdateGame(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid game ID"})
		return
	}

	var req service.UpdateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	game, err := h.gameService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, game)
}

// DeleteGame handles DELETE /games/:id
// @Summary Cancel a game
// @Description Cancel a game; games with active assignments cannot be cancelled
// @Tags games
// @Accept json
// @Produce json
// @Param id path string true "Game ID (UUID)"
// @Success 204 "Successfully cancelled game"
// @Failure 400 {object} ErrorResponse "Invalid game ID"
// @Failure 404 {object} ErrorResponse "Game not found"
// @Failure 409 {object} ErrorResponse "Game has active assignments"
// @Security BearerAuth
// @Router /games/{id} [delete]
func (h *GameHandler) DeleteGame(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid game ID"})
		return
	}

	if err := h.gameService.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// parsePagination reads page and page_size query parameters with defaults
func parsePagination(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
