package repository

import (
	"referee-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RuleRepository handles database operations for assignment rules
type RuleRepository struct {
	db *gorm.DB
}

// NewRuleRepository creates a new rule repository
func NewRuleRepository(db *gorm.DB) *RuleRepository {
	return &RuleRepository{db: db}
}

// Create creates an assignment rule with its partner preferences
func (r *RuleRepository) Create(rule *models.AssignmentRule) error {
	return r.db.Create(rule).Error
}

// GetByID retrieves a rule with preferences preloaded
func (r *RuleRepository) GetByID(id uuid.UUID) (*models.AssignmentRule, error) {
	var rule models.AssignmentRule
	err := r.db.Preload("PartnerPreferences").First(&rule, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

// GetByName retrieves a rule by its unique name
func (r *RuleRepository) GetByName(name string) (*models.AssignmentRule, error) {
	var rule models.AssignmentRule
	err := r.db.First(&rule, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

// GetAll retrieves rules with pagination
func (r *RuleRepository) GetAll(limit, offset int) ([]models.AssignmentRule, int64, error) {
	var rules []models.AssignmentRule
	var total int64

	if err := r.db.Model(&models.AssignmentRule{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("PartnerPreferences").Order("name ASC").
		Limit(limit).Offset(offset).Find(&rules).Error
	return rules, total, err
}

// Update updates a rule
func (r *RuleRepository) Update(rule *models.AssignmentRule) error {
	return r.db.Save(rule).Error
}

// Delete deletes a rule and, via constraints, its preferences and runs
func (r *RuleRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.AssignmentRule{}, "id = ?", id).Error
}

// AddPartnerPreference records a preferred/avoid pair for a rule
func (r *RuleRepository) AddPartnerPreference(pref *models.PartnerPreference) error {
	return r.db.Create(pref).Error
}

// GetPartnerPreference finds an existing pair in either order
func (r *RuleRepository) GetPartnerPreference(ruleID, refA, refB uuid.UUID) (*models.PartnerPreference, error) {
	var pref models.PartnerPreference
	err := r.db.First(&pref,
		"rule_id = ? AND ((referee_a = ? AND referee_b = ?) OR (referee_a = ? AND referee_b = ?))",
		ruleID, refA, refB, refB, refA).Error
	if err != nil {
		return nil, err
	}
	return &pref, nil
}

// RecordRun appends a run history row for a rule
func (r *RuleRepository) RecordRun(run *models.RuleRun) error {
	return r.db.Create(run).Error
}

// GetRuns retrieves a rule's run history, newest first
func (r *RuleRepository) GetRuns(ruleID uuid.UUID, limit, offset int) ([]models.RuleRun, int64, error) {
	var runs []models.RuleRun
	var total int64

	if err := r.db.Model(&models.RuleRun{}).Where("rule_id = ?", ruleID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("rule_id = ?", ruleID).Order("run_at DESC").
		Limit(limit).Offset(offset).Find(&runs).Error
	return runs, total, err
}
