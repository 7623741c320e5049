package handlers

import (
	"net/http"
	"strconv"
	"time"

	"referee-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PatternHandler handles HTTP requests for historic assignment patterns
type PatternHandler struct {
	patternService service.PatternServiceInterface
}

// NewPatternHandler creates a new pattern handler
func NewPatternHandler(patternService service.PatternServiceInterface) *PatternHandler {
	return &PatternHandler{
		patternService: patternService,
	}
}

// DetectPatterns handles GET /assignments/patterns
// @Summary Detect historic assignment patterns
// @Description Mine assignment history into recurring (referee, day, location, slot, level) groups
// @Tags patterns
// @Accept json
// @Produce json
// @Param referee_id query string false "Referee ID (UUID) to scope mining"
// @Param min_frequency query int false "Minimum completed count per group"
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Success 200 {array} service.PatternResponse "Mined patterns"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Security BearerAuth
// @Router /assignments/patterns [get]
func (h *PatternHandler) DetectPatterns(c *gin.Context) {
	var req service.DetectRequest

	if raw := c.Query("referee_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid referee ID"})
			return
		}
		req.RefereeID = &id
	}
	if raw := c.Query("min_frequency"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid min_frequency"})
			return
		}
		req.MinFrequency = &n
	}
	if raw := c.Query("start_date"); raw != "" {
		date, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date"})
			return
		}
		req.StartDate = &date
	}
	if raw := c.Query("end_date"); raw != "" {
		date, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end_date"})
			return
		}
		req.EndDate = &date
	}

	patterns, err := h.patternService.Detect(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, patterns)
}

// ApplyPatternRequest identifies the pattern and its target games
type ApplyPatternRequest struct {
	PatternID         uuid.UUID   `json:"pattern_id" binding:"required"`
	GameIDs           []uuid.UUID `json:"game_ids" binding:"required"`
	OverrideConflicts bool        `json:"override_conflicts,omitempty"`
}

// ApplyPattern handles POST /assignments/patterns/apply
// @Summary Apply a pattern to upcoming games
// @Description Assign the pattern's referee to every target game as one all-or-nothing unit
// @Tags patterns
// @Accept json
// @Produce json
// @Param request body ApplyPatternRequest true "Pattern and target games"
// @Success 200 {object} service.ApplyPatternResponse "Apply summary"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Pattern or game not found"
// @Failure 409 {object} ErrorResponse "Conflicts block the apply"
// @Security BearerAuth
// @Router /assignments/patterns/apply [post]
func (h *PatternHandler) ApplyPattern(c *gin.Context) {
	var req ApplyPatternRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.patternService.Apply(req.PatternID, &service.ApplyPatternRequest{
		GameIDs:           req.GameIDs,
		OverrideConflicts: req.OverrideConflicts,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
