package handlers

import (
	"net/http"

	"referee-scheduler-backend/internal/auth"
	"referee-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RuleHandler handles HTTP requests for assignment rules
type RuleHandler struct {
	ruleService service.RuleServiceInterface
}

// NewRuleHandler creates a new rule handler
func NewRuleHandler(ruleService service.RuleServiceInterface) *RuleHandler {
	return &RuleHandler{
		ruleService: ruleService,
	}
}

// CreateRule handles POST /rules
// @Summary Create an assignment rule
// @Description Create a rule; algorithmic weights must sum to 100
// @Tags rules
// @Accept json
// @Produce json
// @Param rule body service.CreateRuleRequest true "Rule data"
// @Success 201 {object} service.RuleResponse "Successfully created rule"
// @Failure 400 {object} ErrorResponse "Invalid request or weights"
// @Failure 409 {object} ErrorResponse "Rule name already in use"
// @Security BearerAuth
// @Router /rules [post]
func (h *RuleHandler) CreateRule(c *gin.Context) {
	var req service.CreateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rule, err := h.ruleService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rule)
}

// GetRule handles GET /rules/:id
// @Summary Get rule by ID
// @Description Get a rule with its partner preferences
// @Tags rules
// @Accept json
// @Produce json
// @Param id path string true "Rule ID (UUID)"
// @Success 200 {object} service.RuleResponse "Successfully retrieved rule"
// @Failure 400 {object} ErrorResponse "Invalid rule ID"
// @Failure 404 {object} ErrorResponse "Rule not found"
// @Security BearerAuth
// @Router /rules/{id} [get]
func (h *RuleHandler) GetRule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rule ID"})
		return
	}

	rule, err := h.ruleService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rule)
}

// ListRules handles GET /rules
// @Summary List rules
// @Description Get assignment rules with pagination
// @Tags rules
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.RuleListResponse "Successfully retrieved rules"
// @Security BearerAuth
// @Router /rules [get]
func (h *RuleHandler) ListRules(c *gin.Context) {
	page, pageSize := parsePagination(c)
	rules, err := h.ruleService.List(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rules)
}

// UpdateRule handles PUT /rules/:id
// @Summary Update a rule
// @Description Update rule settings; algorithmic weights must still sum to 100
// @Tags rules
// @Accept json
// @Produce json
// @Param id path string true "Rule ID (UUID)"
// @Param rule body service.UpdateRuleRequest true "Rule data"
// @Success 200 {object} service.RuleResponse "Successfully updated rule"
// @Failure 400 {object} ErrorResponse "Invalid request or weights"
// @Failure 404 {object} ErrorResponse "Rule not found"
// @Security BearerAuth
// @Router /rules/{id} [put]
func (h *RuleHandler) UpdateRule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rule ID"})
		return
	}

	var req service.UpdateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rule, err := h.ruleService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rule)
}

// DeleteRule handles DELETE /rules/:id
// @Summary Delete a rule
// @Description Delete a rule with its preferences and run history
// @Tags rules
// @Accept json
// @Produce json
// @Param id path string true "Rule ID (UUID)"
// @Success 204 "Successfully deleted rule"
// @Failure 400 {object} ErrorResponse "Invalid rule ID"
// @Failure 404 {object} ErrorResponse "Rule not found"
// @Security BearerAuth
// @Router /rules/{id} [delete]
func (h *RuleHandler) DeleteRule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rule ID"})
		return
	}

	if err := h.ruleService.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddPartnerPreference handles POST /rules/:id/partners
// @Summary Add a partner preference
// @Description Mark a referee pair as preferred or avoided for a rule
// @Tags rules
// @Accept json
// @Produce json
// @Param id path string true "Rule ID (UUID)"
// @Param preference body service.AddPartnerPreferenceRequest true "Pair data"
// @Success 201 {object} service.PartnerPreferenceResponse "Successfully added preference"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Rule not found"
// @Failure 409 {object} ErrorResponse "Pair already exists"
// @Security BearerAuth
// @Router /rules/{id}/partners [post]
func (h *RuleHandler) AddPartnerPreference(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rule ID"})
		return
	}

	var req service.AddPartnerPreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pref, err := h.ruleService.AddPartnerPreference(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pref)
}

// RunRule handles POST /rules/:id/run
// @Summary Execute a rule now
// @Description Generate suggestions for the rule's eligible games and record a run
// @Tags rules
// @Accept json
// @Produce json
// @Param id path string true "Rule ID (UUID)"
// @Success 200 {object} service.RuleRunResponse "Run summary"
// @Failure 400 {object} ErrorResponse "Rule is disabled"
// @Failure 404 {object} ErrorResponse "Rule not found"
// @Security BearerAuth
// @Router /rules/{id}/run [post]
func (h *RuleHandler) RunRule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rule ID"})
		return
	}

	triggeredBy := "api"
	if userID, ok := auth.GetUserID(c); ok {
		triggeredBy = userID
	}

	run, err := h.ruleService.Run(c.Request.Context(), id, triggeredBy)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, run)
}

// GetRuleRuns handles GET /rules/:id/runs
// @Summary Get rule run history
// @Description Get a rule's execution history, newest first
// @Tags rules
// @Accept json
// @Produce json
// @Param id path string true "Rule ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} map[string]interface{} "Run history"
// @Failure 400 {object} ErrorResponse "Invalid rule ID"
// @Security BearerAuth
// @Router /rules/{id}/runs [get]
func (h *RuleHandler) GetRuleRuns(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rule ID"})
		return
	}

	page, pageSize := parsePagination(c)
	runs, total, err := h.ruleService.GetRuns(id, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"runs":      runs,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}
