package handlers

import (
	"net/http"

	"referee-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RefereeHandler handles HTTP requests for referee profile operations
type RefereeHandler struct {
	refereeService service.RefereeServiceInterface
}

// NewRefereeHandler creates a new referee handler
func NewRefereeHandler(refereeService service.RefereeServiceInterface) *RefereeHandler {
	return &RefereeHandler{
		refereeService: refereeService,
	}
}

// ListReferees handles GET /referees
// @Summary List referees
// @Description Get referee profiles with pagination
// @Tags referees
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.RefereeListResponse "Successfully retrieved referees"
// @Security BearerAuth
// @Router /referees [get]
func (h *RefereeHandler) ListReferees(c *gin.Context) {
	page, pageSize := parsePagination(c)
	referees, err := h.refereeService.List(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, referees)
}

// GetReferee handles GET /referees/:id
// @Summary Get referee by ID
// @Description Get a specific referee profile
// @Tags referees
// @Accept json
// @Produce json
// @Param id path string true "Referee ID (UUID)"
// @Success 200 {object} service.RefereeResponse "Successfully retrieved referee"
// @Failure 400 {object} ErrorResponse "Invalid referee ID"
// @Failure 404 {object} ErrorResponse "Referee not found"
// @Security BearerAuth
// @Router /referees/{id} [get]
func (h *RefereeHandler) GetReferee(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid referee ID"})
		return
	}

	referee, err := h.refereeService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, referee)
}

// SetAvailabilityRequest flips the global availability flag
type SetAvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" binding:"required"`
}

// SetRefereeAvailability handles PUT /referees/:id/availability
// @Summary Set referee availability flag
// @Description Flip the referee's global availability flag
// @Tags referees
// @Accept json
// @Produce json
// @Param id path string true "Referee ID (UUID)"
// @Param body body SetAvailabilityRequest true "Availability flag"
// @Success 200 {object} service.RefereeResponse "Successfully updated referee"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Referee not found"
// @Security BearerAuth
// @Router /referees/{id}/availability [put]
func (h *RefereeHandler) SetRefereeAvailability(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid referee ID"})
		return
	}

	var req SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	referee, err := h.refereeService.SetAvailability(id, *req.IsAvailable)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, referee)
}
