package models

// Referee is a read-mostly mirror of the profile owned by the external
// identity subsystem. The engine reads it for scoring and wage inputs and
// never edits profile data beyond what seeding requires.
type Referee struct {
	BaseModel
	Name                string  `json:"name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Email               string  `json:"email" gorm:"size:200;uniqueIndex;not null" validate:"required,email"`
	LevelWage           float64 `json:"level_wage" gorm:"not null" validate:"required,gt=0"`
	YearsExperience     int     `json:"years_experience" gorm:"not null;default:0" validate:"min=0"`
	GamesRefereedSeason int     `json:"games_refereed_season" gorm:"not null;default:0" validate:"min=0"`
	EvaluationScore     float64 `json:"evaluation_score" gorm:"not null;default:0" validate:"min=0,max=5"`
	MaxDistanceKm       float64 `json:"max_distance_km" gorm:"not null;default:50" validate:"gt=0"`
	IsAvailable         bool    `json:"is_available" gorm:"not null;default:true"`
	LocationLat         float64 `json:"location_lat"`
	LocationLng         float64 `json:"location_lng"`

	// Relationships
	Assignments         []Assignment         `json:"assignments,omitempty" gorm:"foreignKey:RefereeID"`
	AvailabilityWindows []AvailabilityWindow `json:"availability_windows,omitempty" gorm:"foreignKey:RefereeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Referee
func (Referee) TableName() string {
	return "referees"
}
