package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"referee-scheduler-backend/internal/database/models"
	"referee-scheduler-backend/internal/repository"
	"referee-scheduler-backend/internal/scheduling"

	apperrors "referee-scheduler-backend/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RuleService manages assignment rules and executes them against the
// scoring engine.
type RuleService struct {
	ruleRepo    *repository.RuleRepository
	gameRepo    *repository.GameRepository
	suggestions *SuggestionService
	algorithmic scheduling.ScoringStrategy
	delegate    scheduling.ScoringStrategy
	validator   *validator.Validate
}

// NewRuleService creates a new rule service. delegate may be nil when no
// external scorer is configured; delegate-mode rules then refuse to run.
func NewRuleService(ruleRepo *repository.RuleRepository, gameRepo *repository.GameRepository, suggestions *SuggestionService, delegate scheduling.ScoringStrategy, validator *validator.Validate) *RuleService {
	return &RuleService{
		ruleRepo:    ruleRepo,
		gameRepo:    gameRepo,
		suggestions: suggestions,
		algorithmic: scheduling.NewAlgorithmicStrategy(),
		delegate:    delegate,
		validator:   validator,
	}
}

// CreateRuleRequest represents the request to create an assignment rule
type CreateRuleRequest struct {
	Name             string               `json:"name" validate:"required,min=1,max=100"`
	Enabled          *bool                `json:"enabled,omitempty"`
	Schedule         models.RuleSchedule  `json:"schedule,omitempty"`
	CronExpr         string               `json:"cron_expr,omitempty" validate:"omitempty,max=100"`
	GameTypes        []models.GameType    `json:"game_types,omitempty"`
	MinLevel         models.GameLevel     `json:"min_level,omitempty"`
	MaxDaysAhead     int                  `json:"max_days_ahead,omitempty" validate:"omitempty,min=1,max=365"`
	WeightingMode    models.WeightingMode `json:"weighting_mode,omitempty"`
	WeightDistance   int                  `json:"weight_distance,omitempty" validate:"omitempty,min=0,max=100"`
	WeightSkill      int                  `json:"weight_skill,omitempty" validate:"omitempty,min=0,max=100"`
	WeightExperience int                  `json:"weight_experience,omitempty" validate:"omitempty,min=0,max=100"`
	WeightPartner    int                  `json:"weight_partner,omitempty" validate:"omitempty,min=0,max=100"`
}

// UpdateRuleRequest represents the request to update a rule
type UpdateRuleRequest struct {
	Name             string               `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Enabled          *bool                `json:"enabled,omitempty"`
	Schedule         models.RuleSchedule  `json:"schedule,omitempty"`
	CronExpr         string               `json:"cron_expr,omitempty" validate:"omitempty,max=100"`
	GameTypes        []models.GameType    `json:"game_types,omitempty"`
	MinLevel         models.GameLevel     `json:"min_level,omitempty"`
	MaxDaysAhead     int                  `json:"max_days_ahead,omitempty" validate:"omitempty,min=1,max=365"`
	WeightingMode    models.WeightingMode `json:"weighting_mode,omitempty"`
	WeightDistance   *int                 `json:"weight_distance,omitempty" validate:"omitempty,min=0,max=100"`
	WeightSkill      *int                 `json:"weight_skill,omitempty" validate:"omitempty,min=0,max=100"`
	WeightExperience *int                 `json:"weight_experience,omitempty" validate:"omitempty,min=0,max=100"`
	WeightPartner    *int                 `json:"weight_partner,omitempty" validate:"omitempty,min=0,max=100"`
}

// AddPartnerPreferenceRequest marks a referee pair for a rule
type AddPartnerPreferenceRequest struct {
	RefereeA uuid.UUID                    `json:"referee_a" validate:"required"`
	RefereeB uuid.UUID                    `json:"referee_b" validate:"required"`
	Kind     models.PartnerPreferenceKind `json:"kind" validate:"required"`
}

// PartnerPreferenceResponse represents one pair preference
type PartnerPreferenceResponse struct {
	ID       uuid.UUID                    `json:"id"`
	RefereeA uuid.UUID                    `json:"referee_a"`
	RefereeB uuid.UUID                    `json:"referee_b"`
	Kind     models.PartnerPreferenceKind `json:"kind"`
}

// RuleResponse represents the response for rule operations
type RuleResponse struct {
	ID               uuid.UUID                   `json:"id"`
	Name             string                      `json:"name"`
	Enabled          bool                        `json:"enabled"`
	Schedule         models.RuleSchedule         `json:"schedule"`
	CronExpr         string                      `json:"cron_expr,omitempty"`
	GameTypes        []models.GameType           `json:"game_types,omitempty"`
	MinLevel         models.GameLevel            `json:"min_level,omitempty"`
	MaxDaysAhead     int                         `json:"max_days_ahead"`
	WeightingMode    models.WeightingMode        `json:"weighting_mode"`
	WeightDistance   int                         `json:"weight_distance"`
	WeightSkill      int                         `json:"weight_skill"`
	WeightExperience int                         `json:"weight_experience"`
	WeightPartner    int                         `json:"weight_partner"`
	Preferences      []PartnerPreferenceResponse `json:"partner_preferences,omitempty"`
}

// RuleListResponse represents a paginated list of rules
type RuleListResponse struct {
	Rules    []RuleResponse `json:"rules"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// RuleRunResponse summarizes one execution of a rule
type RuleRunResponse struct {
	ID                 uuid.UUID `json:"id"`
	RuleID             uuid.UUID `json:"rule_id"`
	RunAt              string    `json:"run_at"`
	GamesConsidered    int       `json:"games_considered"`
	SuggestionsCreated int       `json:"suggestions_created"`
	TriggeredBy        string    `json:"triggered_by"`
}

// Create creates an assignment rule. Algorithmic weights must sum to 100.
func (s *RuleService) Create(req *CreateRuleRequest) (*RuleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	rule := &models.AssignmentRule{
		Name:             req.Name,
		Enabled:          true,
		Schedule:         models.RuleScheduleManual,
		CronExpr:         req.CronExpr,
		GameTypes:        joinGameTypes(req.GameTypes),
		MinLevel:         req.MinLevel,
		MaxDaysAhead:     14,
		WeightingMode:    models.WeightingModeAlgorithmic,
		WeightDistance:   25,
		WeightSkill:      25,
		WeightExperience: 25,
		WeightPartner:    25,
	}
	if req.Enabled != nil {
		rule.Enabled = *req.Enabled
	}
	if req.Schedule != "" {
		rule.Schedule = req.Schedule
	}
	if req.MaxDaysAhead != 0 {
		rule.MaxDaysAhead = req.MaxDaysAhead
	}
	if req.WeightingMode != "" {
		rule.WeightingMode = req.WeightingMode
	}
	if req.WeightDistance != 0 || req.WeightSkill != 0 || req.WeightExperience != 0 || req.WeightPartner != 0 {
		rule.WeightDistance = req.WeightDistance
		rule.WeightSkill = req.WeightSkill
		rule.WeightExperience = req.WeightExperience
		rule.WeightPartner = req.WeightPartner
	}
	if err := s.validateRule(rule); err != nil {
		return nil, err
	}

	if _, err := s.ruleRepo.GetByName(rule.Name); err == nil {
		return nil, apperrors.NewConflictError("rule name already in use")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check rule name: %w", err)
	}

	if err := s.ruleRepo.Create(rule); err != nil {
		return nil, fmt.Errorf("failed to create rule: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"rule_id": rule.ID,
		"name":    rule.Name,
	}).Info("assignment rule created")
	return s.toResponse(rule), nil
}

// GetByID retrieves a rule with its partner preferences
func (s *RuleService) GetByID(id uuid.UUID) (*RuleResponse, error) {
	rule, err := s.ruleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRuleNotFound
		}
		return nil, fmt.Errorf("failed to get rule: %w", err)
	}
	return s.toResponse(rule), nil
}

// List retrieves rules with pagination
func (s *RuleService) List(page, pageSize int) (*RuleListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	rules, total, err := s.ruleRepo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list rules: %w", err)
	}

	responses := make([]RuleResponse, len(rules))
	for i, r := range rules {
		responses[i] = *s.toResponse(&r)
	}
	return &RuleListResponse{Rules: responses, Total: total, Page: page, PageSize: pageSize}, nil
}

// Update updates a rule
func (s *RuleService) Update(id uuid.UUID, req *UpdateRuleRequest) (*RuleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	rule, err := s.ruleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRuleNotFound
		}
		return nil, fmt.Errorf("failed to get rule: %w", err)
	}

	if req.Name != "" && req.Name != rule.Name {
		if _, err := s.ruleRepo.GetByName(req.Name); err == nil {
			return nil, apperrors.NewConflictError("rule name already in use")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check rule name: %w", err)
		}
		rule.Name = req.Name
	}
	if req.Enabled != nil {
		rule.Enabled = *req.Enabled
	}
	if req.Schedule != "" {
		rule.Schedule = req.Schedule
	}
	if req.CronExpr != "" {
		rule.CronExpr = req.CronExpr
	}
	if req.GameTypes != nil {
		rule.GameTypes = joinGameTypes(req.GameTypes)
	}
	if req.MinLevel != "" {
		rule.MinLevel = req.MinLevel
	}
	if req.MaxDaysAhead != 0 {
		rule.MaxDaysAhead = req.MaxDaysAhead
	}
	if req.WeightingMode != "" {
		rule.WeightingMode = req.WeightingMode
	}
	if req.WeightDistance != nil {
		rule.WeightDistance = *req.WeightDistance
	}
	if req.WeightSkill != nil {
		rule.WeightSkill = *req.WeightSkill
	}
	if req.WeightExperience != nil {
		rule.WeightExperience = *req.WeightExperience
	}
	if req.WeightPartner != nil {
		rule.WeightPartner = *req.WeightPartner
	}
	if err := s.validateRule(rule); err != nil {
		return nil, err
	}

	if err := s.ruleRepo.Update(rule); err != nil {
		return nil, fmt.Errorf("failed to update rule: %w", err)
	}
	return s.toResponse(rule), nil
}

// Delete removes a rule with its preferences and run history
func (s *RuleService) Delete(id uuid.UUID) error {
	if _, err := s.ruleRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRuleNotFound
		}
		return fmt.Errorf("failed to get rule: %w", err)
	}
	if err := s.ruleRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete rule: %w", err)
	}
	return nil
}

// AddPartnerPreference records a preferred/avoid pair, rejecting duplicates
// in either order.
func (s *RuleService) AddPartnerPreference(ruleID uuid.UUID, req *AddPartnerPreferenceRequest) (*PartnerPreferenceResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if !req.Kind.IsValid() {
		return nil, apperrors.NewValidationError("kind", "kind must be preferred or avoid")
	}
	if req.RefereeA == req.RefereeB {
		return nil, apperrors.NewValidationError("referee_b", "a pair needs two distinct referees")
	}

	if _, err := s.ruleRepo.GetByID(ruleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRuleNotFound
		}
		return nil, fmt.Errorf("failed to get rule: %w", err)
	}

	if _, err := s.ruleRepo.GetPartnerPreference(ruleID, req.RefereeA, req.RefereeB); err == nil {
		return nil, apperrors.ErrDuplicatePartner
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check partner pair: %w", err)
	}

	pref := &models.PartnerPreference{
		RuleID:   ruleID,
		RefereeA: req.RefereeA,
		RefereeB: req.RefereeB,
		Kind:     req.Kind,
	}
	if err := s.ruleRepo.AddPartnerPreference(pref); err != nil {
		return nil, fmt.Errorf("failed to add partner preference: %w", err)
	}
	return &PartnerPreferenceResponse{ID: pref.ID, RefereeA: pref.RefereeA, RefereeB: pref.RefereeB, Kind: pref.Kind}, nil
}

// Run executes a rule now: selects eligible unassigned games inside the
// rule's horizon, translates the integer weights onto the scoring factors
// and generates suggestions with the strategy the rule's weighting mode
// names. Every run leaves a history row.
func (s *RuleService) Run(ctx context.Context, id uuid.UUID, triggeredBy string) (*RuleRunResponse, error) {
	rule, err := s.ruleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRuleNotFound
		}
		return nil, fmt.Errorf("failed to get rule: %w", err)
	}
	if !rule.Enabled {
		return nil, apperrors.ErrRuleDisabled
	}
	strategy, err := s.strategyFor(rule)
	if err != nil {
		return nil, err
	}

	games, err := s.eligibleGames(rule)
	if err != nil {
		return nil, err
	}

	created := 0
	if len(games) > 0 {
		ids := make([]uuid.UUID, len(games))
		for i, g := range games {
			ids[i] = g.ID
		}
		weights := ruleWeights(rule)
		suggestions, err := s.suggestions.GenerateWith(ctx, &GenerateSuggestionsRequest{GameIDs: ids, Factors: &weights}, strategy)
		if err != nil {
			return nil, err
		}
		created = len(suggestions)
	}

	run := &models.RuleRun{
		RuleID:             rule.ID,
		RunAt:              time.Now(),
		GamesConsidered:    len(games),
		SuggestionsCreated: created,
		TriggeredBy:        triggeredBy,
	}
	if err := s.ruleRepo.RecordRun(run); err != nil {
		return nil, fmt.Errorf("failed to record rule run: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"rule_id":     rule.ID,
		"games":       len(games),
		"suggestions": created,
	}).Info("assignment rule executed")
	return s.runToResponse(run), nil
}

// GetRuns retrieves a rule's run history, newest first
func (s *RuleService) GetRuns(ruleID uuid.UUID, page, pageSize int) ([]RuleRunResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	runs, total, err := s.ruleRepo.GetRuns(ruleID, pageSize, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list rule runs: %w", err)
	}
	responses := make([]RuleRunResponse, len(runs))
	for i, r := range runs {
		responses[i] = *s.runToResponse(&r)
	}
	return responses, total, nil
}

// strategyFor resolves the scorer named by the rule's weighting mode
func (s *RuleService) strategyFor(rule *models.AssignmentRule) (scheduling.ScoringStrategy, error) {
	if rule.WeightingMode == models.WeightingModeDelegate {
		if s.delegate == nil {
			return nil, apperrors.NewValidationError("weighting_mode", "no scoring delegate is configured")
		}
		return s.delegate, nil
	}
	return s.algorithmic, nil
}

// eligibleGames selects unassigned games inside the rule's horizon matching
// its type and level filters.
func (s *RuleService) eligibleGames(rule *models.AssignmentRule) ([]models.Game, error) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, rule.MaxDaysAhead)

	games, _, err := s.gameRepo.GetAll(repository.GameFilters{
		Status:    models.GameStatusUnassigned,
		StartDate: &start,
		EndDate:   &end,
	}, -1, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load games: %w", err)
	}

	types := splitGameTypes(rule.GameTypes)
	var eligible []models.Game
	for _, g := range games {
		if len(types) > 0 && !types[g.GameType] {
			continue
		}
		if rule.MinLevel != "" && g.Level.Rank() < rule.MinLevel.Rank() {
			continue
		}
		eligible = append(eligible, g)
	}
	return eligible, nil
}

// ruleWeights maps the rule's integer percentages onto the scoring factors:
// distance drives proximity, skill drives performance, and the partner share
// folds into availability.
func ruleWeights(rule *models.AssignmentRule) scheduling.Weights {
	return scheduling.Weights{
		Proximity:    float64(rule.WeightDistance) / 100,
		Availability: float64(rule.WeightPartner) / 100,
		Experience:   float64(rule.WeightExperience) / 100,
		Performance:  float64(rule.WeightSkill) / 100,
	}
}

func (s *RuleService) validateRule(rule *models.AssignmentRule) error {
	if !rule.Schedule.IsValid() {
		return apperrors.NewValidationError("schedule", "schedule must be manual or recurring")
	}
	if !rule.WeightingMode.IsValid() {
		return apperrors.NewValidationError("weighting_mode", "weighting mode must be algorithmic or delegate")
	}
	if rule.MinLevel != "" && !rule.MinLevel.IsValid() {
		return apperrors.NewValidationError("min_level", "invalid game level")
	}
	for _, t := range splitGameTypesList(rule.GameTypes) {
		if !t.IsValid() {
			return apperrors.NewValidationError("game_types", fmt.Sprintf("invalid game type %q", t))
		}
	}
	if rule.WeightingMode == models.WeightingModeAlgorithmic && rule.WeightsSum() != 100 {
		return apperrors.NewValidationError("weights", "algorithmic weights must sum to 100")
	}
	return nil
}

func joinGameTypes(types []models.GameType) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = string(t)
	}
	return strings.Join(parts, ",")
}

func splitGameTypesList(raw string) []models.GameType {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	types := make([]models.GameType, 0, len(parts))
	for _, p := range parts {
		types = append(types, models.GameType(strings.TrimSpace(p)))
	}
	return types
}

func splitGameTypes(raw string) map[models.GameType]bool {
	set := make(map[models.GameType]bool)
	for _, t := range splitGameTypesList(raw) {
		set[t] = true
	}
	return set
}

// toResponse converts a rule model to response
func (s *RuleService) toResponse(rule *models.AssignmentRule) *RuleResponse {
	prefs := make([]PartnerPreferenceResponse, len(rule.PartnerPreferences))
	for i, p := range rule.PartnerPreferences {
		prefs[i] = PartnerPreferenceResponse{ID: p.ID, RefereeA: p.RefereeA, RefereeB: p.RefereeB, Kind: p.Kind}
	}
	return &RuleResponse{
		ID:               rule.ID,
		Name:             rule.Name,
		Enabled:          rule.Enabled,
		Schedule:         rule.Schedule,
		CronExpr:         rule.CronExpr,
		GameTypes:        splitGameTypesList(rule.GameTypes),
		MinLevel:         rule.MinLevel,
		MaxDaysAhead:     rule.MaxDaysAhead,
		WeightingMode:    rule.WeightingMode,
		WeightDistance:   rule.WeightDistance,
		WeightSkill:      rule.WeightSkill,
		WeightExperience: rule.WeightExperience,
		WeightPartner:    rule.WeightPartner,
		Preferences:      prefs,
	}
}

// runToResponse converts a run row to response
func (s *RuleService) runToResponse(run *models.RuleRun) *RuleRunResponse {
	return &RuleRunResponse{
		ID:                 run.ID,
		RuleID:             run.RuleID,
		RunAt:              run.RunAt.Format(time.RFC3339),
		GamesConsidered:    run.GamesConsidered,
		SuggestionsCreated: run.SuggestionsCreated,
		TriggeredBy:        run.TriggeredBy,
	}
}
