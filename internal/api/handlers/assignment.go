package handlers

import (
	"net/http"
	"time"

	"referee-scheduler-backend/internal/auth"
	"referee-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AssignmentHandler handles HTTP requests for assignment operations
type AssignmentHandler struct {
	assignmentService service.AssignmentServiceInterface
}

// NewAssignmentHandler creates a new assignment handler
func NewAssignmentHandler(assignmentService service.AssignmentServiceInterface) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentService: assignmentService,
	}
}

// CreateAssignment handles POST /assignments
// @Summary Create an assignment
// @Description Assign a referee to a position on a game; override_conflicts bypasses the overlap check only
// @Tags assignments
// @Accept json
// @Produce json
// @Param assignment body service.CreateAssignmentRequest true "Assignment data"
// @Success 201 {object} service.AssignmentResponse "Successfully created assignment"
// @Failure 400 {object} ErrorResponse "Invalid request, referee unavailable or capacity exceeded"
// @Failure 404 {object} ErrorResponse "Game, referee or position not found"
// @Failure 409 {object} ErrorResponse "Duplicate assignment or time conflict"
// @Security BearerAuth
// @Router /assignments [post]
func (h *AssignmentHandler) CreateAssignment(c *gin.Context) {
	var req service.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assignment, err := h.assignmentService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, assignment)
}

// GetAssignment handles GET /assignments/:id
// @Summary Get assignment by ID
// @Description Get a specific assignment; referees only see their own
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Assignment ID (UUID)"
// @Success 200 {object} service.AssignmentResponse "Successfully retrieved assignment"
// @Failure 400 {object} ErrorResponse "Invalid assignment ID"
// @Failure 404 {object} ErrorResponse "Assignment not found"
// @Security BearerAuth
// @Router /assignments/{id} [get]
func (h *AssignmentHandler) GetAssignment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid assignment ID"})
		return
	}

	actor, ok := auth.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	assignment, err := h.assignmentService.GetByID(id, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, assignment)
}

// ListAssignments handles GET /assignments
// @Summary List assignments
// @Description Get assignments with filters; referees see only their own rows
// @Tags assignments
// @Accept json
// @Produce json
// @Param status query string false "Assignment status filter"
// @Param game_id query string false "Game ID (UUID) filter"
// @Param referee_id query string false "Referee ID (UUID) filter"
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.AssignmentListResponse "Successfully retrieved assignments"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Security BearerAuth
// @Router /assignments [get]
func (h *AssignmentHandler) ListAssignments(c *gin.Context) {
	actor, ok := auth.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	filters := service.ListFilters{Status: c.Query("status")}
	if raw := c.Query("game_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid game ID"})
			return
		}
		filters.GameID = &id
	}
	if raw := c.Query("referee_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid referee ID"})
			return
		}
		filters.RefereeID = &id
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
	assignments, err := h.assignmentService.List(filters, actor, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, assignments)
}

// UpdateAssignment handles PUT /assignments/:id
// @Summary Update an assignment
// @Description Transition the assignment status or recalculate its wage
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Assignment ID (UUID)"
// @Param assignment body service.UpdateAssignmentRequest true "Update data"
// @Success 200 {object} service.AssignmentResponse "Successfully updated assignment"
// @Failure 400 {object} ErrorResponse "Invalid transition or status"
// @Failure 403 {object} ErrorResponse "Actor lacks permission for this transition"
// @Failure 404 {object} ErrorResponse "Assignment not found"
// @Security BearerAuth
// @Router /assignments/{id} [put]
func (h *AssignmentHandler) UpdateAssignment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid assignment ID"})
		return
	}

	actor, ok := auth.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.UpdateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assignment, err := h.assignmentService.Update(id, &req, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, assignment)
}

// DeleteAssignment handles DELETE /assignments/:id
// @Summary Remove an assignment
// @Description Remove an assignment, freeing its position
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Assignment ID (UUID)"
// @Success 204 "Successfully removed assignment"
// @Failure 400 {object} ErrorResponse "Referees cannot remove an accepted assignment"
// @Failure 403 {object} ErrorResponse "Cross-referee deletion"
// @Failure 404 {object} ErrorResponse "Assignment not found"
// @Security BearerAuth
// @Router /assignments/{id} [delete]
func (h *AssignmentHandler) DeleteAssignment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid assignment ID"})
		return
	}

	actor, ok := auth.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	if err := h.assignmentService.Delete(id, actor); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
