package models

import (
	"time"

	"github.com/google/uuid"
)

// AssignmentRule configures automatic suggestion runs: which games are
// eligible, how candidates are weighted, and which referee pairs to prefer
// or avoid. Algorithmic weights are integer percentages summing to 100.
type AssignmentRule struct {
	BaseModel
	Name             string        `json:"name" gorm:"size:100;not null;uniqueIndex" validate:"required,min=1,max=100"`
	Enabled          bool          `json:"enabled" gorm:"not null;default:true"`
	Schedule         RuleSchedule  `json:"schedule" gorm:"type:varchar(50);not null;default:'manual'"`
	CronExpr         string        `json:"cron_expr,omitempty" gorm:"size:100"`
	GameTypes        string        `json:"game_types,omitempty" gorm:"size:200"` // comma-separated, empty means all
	MinLevel         GameLevel     `json:"min_level,omitempty" gorm:"type:varchar(50)"`
	MaxDaysAhead     int           `json:"max_days_ahead" gorm:"not null;default:14" validate:"min=1,max=365"`
	MaxDistanceKm    float64       `json:"max_distance_km" gorm:"not null;default:0"` // 0 defers to referee max_distance
	WeightingMode    WeightingMode `json:"weighting_mode" gorm:"type:varchar(50);not null;default:'algorithmic'"`
	WeightDistance   int           `json:"weight_distance" gorm:"not null;default:25"`
	WeightSkill      int           `json:"weight_skill" gorm:"not null;default:25"`
	WeightExperience int           `json:"weight_experience" gorm:"not null;default:25"`
	WeightPartner    int           `json:"weight_partner" gorm:"not null;default:25"`

	// Relationships
	PartnerPreferences []PartnerPreference `json:"partner_preferences,omitempty" gorm:"foreignKey:RuleID;constraint:OnDelete:CASCADE"`
	Runs               []RuleRun           `json:"runs,omitempty" gorm:"foreignKey:RuleID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for AssignmentRule
func (AssignmentRule) TableName() string {
	return "assignment_rules"
}

// WeightsSum returns the sum of the algorithmic weights
func (r *AssignmentRule) WeightsSum() int {
	return r.WeightDistance + r.WeightSkill + r.WeightExperience + r.WeightPartner
}

// PartnerPreference marks a pair of referees as preferred or avoided for a rule
type PartnerPreference struct {
	BaseModel
	RuleID   uuid.UUID             `json:"rule_id" gorm:"type:uuid;not null;index" validate:"required"`
	RefereeA uuid.UUID             `json:"referee_a" gorm:"type:uuid;not null" validate:"required"`
	RefereeB uuid.UUID             `json:"referee_b" gorm:"type:uuid;not null" validate:"required"`
	Kind     PartnerPreferenceKind `json:"kind" gorm:"type:varchar(50);not null" validate:"required"`
}

// TableName returns the table name for PartnerPreference
func (PartnerPreference) TableName() string {
	return "partner_preferences"
}

// RuleRun records one execution of an assignment rule
type RuleRun struct {
	BaseModel
	RuleID             uuid.UUID `json:"rule_id" gorm:"type:uuid;not null;index" validate:"required"`
	RunAt              time.Time `json:"run_at" gorm:"not null"`
	GamesConsidered    int       `json:"games_considered" gorm:"not null"`
	SuggestionsCreated int       `json:"suggestions_created" gorm:"not null"`
	TriggeredBy        string    `json:"triggered_by" gorm:"size:100"`
}

// TableName returns the table name for RuleRun
func (RuleRun) TableName() string {
	return "rule_runs"
}
