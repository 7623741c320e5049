package handlers

import (
	"net/http"
	"time"

	"referee-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ChunkHandler handles HTTP requests for chunk operations
type ChunkHandler struct {
	chunkService service.ChunkServiceInterface
}

// NewChunkHandler creates a new chunk handler
func NewChunkHandler(chunkService service.ChunkServiceInterface) *ChunkHandler {
	return &ChunkHandler{
		chunkService: chunkService,
	}
}

// CreateChunk handles POST /chunks
// @Summary Create a chunk
// @Description Group same-location, same-date games into one assignable unit
// @Tags chunks
// @Accept json
// @Produce json
// @Param chunk body service.CreateChunkRequest true "Chunk data"
// @Success 201 {object} service.ChunkResponse "Successfully created chunk"
// @Failure 400 {object} ErrorResponse "Games do not share location and date"
// @Failure 404 {object} ErrorResponse "Game not found"
// @Failure 409 {object} ErrorResponse "Game already belongs to a chunk"
// @Security BearerAuth
// @Router /chunks [post]
func (h *ChunkHandler) CreateChunk(c *gin.Context) {
	var req service.CreateChunkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	chunk, err := h.chunkService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, chunk)
}

// GetChunk handles GET /chunks/:id
// @Summary Get chunk by ID
// @Description Get a chunk with its member game ids
// @Tags chunks
// @Accept json
// @Produce json
// @Param id path string true "Chunk ID (UUID)"
// @Success 200 {object} service.ChunkResponse "Successfully retrieved chunk"
// @Failure 400 {object} ErrorResponse "Invalid chunk ID"
// @Failure 404 {object} ErrorResponse "Chunk not found"
// @Security BearerAuth
// @Router /chunks/{id} [get]
func (h *ChunkHandler) GetChunk(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chunk ID"})
		return
	}

	chunk, err := h.chunkService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, chunk)
}

// ListChunks handles GET /chunks
// @Summary List chunks
// @Description Get chunks with optional location and date filters
// @Tags chunks
// @Accept json
// @Produce json
// @Param location query string false "Location filter"
// @Param date query string false "Date filter (YYYY-MM-DD)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.ChunkListResponse "Successfully retrieved chunks"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Security BearerAuth
// @Router /chunks [get]
func (h *ChunkHandler) ListChunks(c *gin.Context) {
	var date *time.Time
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
			return
		}
		date = &parsed
	}

	page, pageSize := parsePagination(c)
	chunks, err := h.chunkService.List(c.Query("location"), date, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, chunks)
}

// UpdateChunk handles PUT /chunks/:id
// @Summary Rename a chunk
// @Description Update a chunk's name
// @Tags chunks
// @Accept json
// @Produce json
// @Param id path string true "Chunk ID (UUID)"
// @Param chunk body service.UpdateChunkRequest true "Chunk data"
// @Success 200 {object} service.ChunkResponse "Successfully updated chunk"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Chunk not found"
// @Security BearerAuth
// @Router /chunks/{id} [put]
func (h *ChunkHandler) UpdateChunk(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chunk ID"})
		return
	}

	var req service.UpdateChunkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	chunk, err := h.chunkService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, chunk)
}

// AssignChunk handles POST /chunks/:id/assign
// @Summary Assign a referee to a chunk
// @Description Create one assignment per member game as an all-or-nothing unit
// @Tags chunks
// @Accept json
// @Produce json
// @Param id path string true "Chunk ID (UUID)"
// @Param request body service.AssignChunkRequest true "Referee and options"
// @Success 200 {object} service.ChunkResponse "Successfully assigned chunk"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Chunk or referee not found"
// @Failure 409 {object} ErrorResponse "Member conflicts block the assignment"
// @Security BearerAuth
// @Router /chunks/{id}/assign [post]
func (h *ChunkHandler) AssignChunk(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chunk ID"})
		return
	}

	var req service.AssignChunkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	chunk, err := h.chunkService.Assign(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, chunk)
}

// AutoCreateChunks handles POST /chunks/auto-create
// @Summary Auto-create chunks
// @Description Group unassigned games in a date range into chunks by location and gap policy
// @Tags chunks
// @Accept json
// @Produce json
// @Param request body service.AutoCreateRequest true "Date range"
// @Success 200 {array} service.ChunkResponse "Created chunks"
// @Failure 400 {object} ErrorResponse "Invalid date range"
// @Security BearerAuth
// @Router /chunks/auto-create [post]
func (h *ChunkHandler) AutoCreateChunks(c *gin.Context) {
	var req service.AutoCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	chunks, err := h.chunkService.AutoCreate(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, chunks)
}

// DeleteChunk handles DELETE /chunks/:id
// @Summary Delete a chunk
// @Description Delete a chunk; force removes member assignments first
// @Tags chunks
// @Accept json
// @Produce json
// @Param id path string true "Chunk ID (UUID)"
// @Param force query bool false "Remove member assignments of an assigned chunk"
// @Success 204 "Successfully deleted chunk"
// @Failure 400 {object} ErrorResponse "Invalid chunk ID"
// @Failure 404 {object} ErrorResponse "Chunk not found"
// @Failure 409 {object} ErrorResponse "Chunk is assigned and force not set"
// @Security BearerAuth
// @Router /chunks/{id} [delete]
func (h *ChunkHandler) DeleteChunk(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chunk ID"})
		return
	}

	force := c.Query("force") == "true"
	if err := h.chunkService.Delete(id, force); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
