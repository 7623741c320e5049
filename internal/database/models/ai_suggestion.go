package models

import (
	"time"

	"github.com/google/uuid"
)

// AISuggestion is a time-boxed, scored candidate assignment proposed by the
// scoring engine. Accepting it past expires_at fails with an expiry error.
type AISuggestion struct {
	BaseModel
	GameID            uuid.UUID        `json:"game_id" gorm:"type:uuid;not null;index" validate:"required"`
	RefereeID         uuid.UUID        `json:"referee_id" gorm:"type:uuid;not null;index" validate:"required"`
	ConfidenceScore   float64          `json:"confidence_score" gorm:"not null" validate:"min=0,max=1"`
	ProximityScore    float64          `json:"proximity_score" gorm:"not null"`
	AvailabilityScore float64          `json:"availability_score" gorm:"not null"`
	ExperienceScore   float64          `json:"experience_score" gorm:"not null"`
	PerformanceScore  float64          `json:"performance_score" gorm:"not null"`
	Reasoning         string           `json:"reasoning" gorm:"type:text"`
	Status            SuggestionStatus `json:"status" gorm:"type:varchar(50);not null;default:'pending'"`
	RejectionReason   string           `json:"rejection_reason,omitempty" gorm:"size:500"`
	ExpiresAt         time.Time        `json:"expires_at" gorm:"not null;index"`

	// Relationships
	Game    Game    `json:"game,omitempty" gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`
	Referee Referee `json:"referee,omitempty" gorm:"foreignKey:RefereeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for AISuggestion
func (AISuggestion) TableName() string {
	return "ai_suggestions"
}

// Expired reports whether the suggestion's TTL has elapsed at the given time
func (s *AISuggestion) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
