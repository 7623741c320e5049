package handlers

import (
	"net/http"

	"referee-scheduler-backend/internal/auth"
	"referee-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AvailabilityHandler handles HTTP requests for availability windows
type AvailabilityHandler struct {
	availabilityService service.AvailabilityServiceInterface
}

// NewAvailabilityHandler creates a new availability handler
func NewAvailabilityHandler(availabilityService service.AvailabilityServiceInterface) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityService: availabilityService,
	}
}

// CreateWindow handles POST /availability
// @Summary Declare an availability window
// @Description Declare an open or block-out window for a referee on one date
// @Tags availability
// @Accept json
// @Produce json
// @Param referee_id query string true "Referee ID (UUID)"
// @Param window body service.CreateWindowRequest true "Window data"
// @Success 201 {object} service.WindowResponse "Successfully declared window"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Cannot declare windows for another referee"
// @Failure 409 {object} ErrorResponse "Window overlaps an existing window"
// @Security BearerAuth
// @Router /availability [post]
func (h *AvailabilityHandler) CreateWindow(c *gin.Context) {
	refereeID, err := uuid.Parse(c.Query("referee_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid referee ID"})
		return
	}

	actor, ok := auth.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.CreateWindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	window, err := h.availabilityService.Create(refereeID, actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, window)
}

// ListWindows handles GET /availability
// @Summary List availability windows
// @Description Get a referee's declared windows, soonest first
// @Tags availability
// @Accept json
// @Produce json
// @Param referee_id query string true "Referee ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.WindowListResponse "Successfully retrieved windows"
// @Failure 400 {object} ErrorResponse "Invalid referee ID"
// @Security BearerAuth
// @Router /availability [get]
func (h *AvailabilityHandler) ListWindows(c *gin.Context) {
	refereeID, err := uuid.Parse(c.Query("referee_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid referee ID"})
		return
	}

	page, pageSize := parsePagination(c)
	windows, err := h.availabilityService.List(refereeID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, windows)
}

// DeleteWindow handles DELETE /availability/:id
// @Summary Remove an availability window
// @Description Remove a declared window
// @Tags availability
// @Accept json
// @Produce json
// @Param id path string true "Window ID (UUID)"
// @Success 204 "Successfully removed window"
// @Failure 400 {object} ErrorResponse "Invalid window ID"
// @Failure 403 {object} ErrorResponse "Cannot remove another referee's window"
// @Failure 404 {object} ErrorResponse "Window not found"
// @Security BearerAuth
// @Router /availability/{id} [delete]
func (h *AvailabilityHandler) DeleteWindow(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid window ID"})
		return
	}

	actor, ok := auth.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	if err := h.availabilityService.Delete(id, actor); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
