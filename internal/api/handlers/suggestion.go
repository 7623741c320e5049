package handlers

import (
	"net/http"

	"referee-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SuggestionHandler handles HTTP requests for scored assignment suggestions
type SuggestionHandler struct {
	suggestionService service.SuggestionServiceInterface
}

// NewSuggestionHandler creates a new suggestion handler
func NewSuggestionHandler(suggestionService service.SuggestionServiceInterface) *SuggestionHandler {
	return &SuggestionHandler{
		suggestionService: suggestionService,
	}
}

// GenerateSuggestions handles POST /assignments/ai-suggestions
// @Summary Generate assignment suggestions
// @Description Score candidate referees for the given games and persist ranked suggestions
// @Tags suggestions
// @Accept json
// @Produce json
// @Param request body service.GenerateSuggestionsRequest true "Games to score"
// @Success 200 {array} service.SuggestionResponse "Ranked suggestions"
// @Failure 400 {object} ErrorResponse "Empty or missing game_ids"
// @Failure 404 {object} ErrorResponse "Unknown game id"
// @Security BearerAuth
// @Router /assignments/ai-suggestions [post]
func (h *SuggestionHandler) GenerateSuggestions(c *gin.Context) {
	var req service.GenerateSuggestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	suggestions, err := h.suggestionService.Generate(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, suggestions)
}

// AcceptSuggestion handles PUT /assignments/ai-suggestions/:id/accept
// @Summary Accept a suggestion
// @Description Create a pending assignment from a pending, unexpired suggestion
// @Tags suggestions
// @Accept json
// @Produce json
// @Param id path string true "Suggestion ID (UUID)"
// @Success 200 {object} service.AssignmentResponse "Created assignment"
// @Failure 400 {object} ErrorResponse "Suggestion expired or already decided"
// @Failure 404 {object} ErrorResponse "Suggestion not found"
// @Failure 409 {object} ErrorResponse "Conflicting or duplicate assignment"
// @Security BearerAuth
// @Router /assignments/ai-suggestions/{id}/accept [put]
func (h *SuggestionHandler) AcceptSuggestion(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid suggestion ID"})
		return
	}

	assignment, err := h.suggestionService.Accept(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, assignment)
}

// RejectSuggestionRequest carries the optional rejection reason
type RejectSuggestionRequest struct {
	Reason string `json:"reason,omitempty"`
}

// RejectSuggestion handles PUT /assignments/ai-suggestions/:id/reject
// @Summary Reject a suggestion
// @Description Decline a pending suggestion, recording the reason
// @Tags suggestions
// @Accept json
// @Produce json
// @Param id path string true "Suggestion ID (UUID)"
// @Param request body RejectSuggestionRequest false "Rejection reason"
// @Success 200 {object} service.SuggestionResponse "Rejected suggestion"
// @Failure 400 {object} ErrorResponse "Suggestion already decided"
// @Failure 404 {object} ErrorResponse "Suggestion not found"
// @Security BearerAuth
// @Router /assignments/ai-suggestions/{id}/reject [put]
func (h *SuggestionHandler) RejectSuggestion(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid suggestion ID"})
		return
	}

	var req RejectSuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	suggestion, err := h.suggestionService.Reject(id, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, suggestion)
}

// ListGameSuggestions handles GET /games/:id/suggestions
// @Summary List pending suggestions for a game
// @Description Get a game's pending suggestions ordered by confidence
// @Tags suggestions
// @Accept json
// @Produce json
// @Param id path string true "Game ID (UUID)"
// @Success 200 {array} service.SuggestionResponse "Pending suggestions"
// @Failure 400 {object} ErrorResponse "Invalid game ID"
// @Security BearerAuth
// @Router /games/{id}/suggestions [get]
func (h *SuggestionHandler) ListGameSuggestions(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid game ID"})
		return
	}

	suggestions, err := h.suggestionService.GetPendingByGame(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, suggestions)
}
