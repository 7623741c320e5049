package models

// GameStatus defines the lifecycle states of a game
type GameStatus string

const (
	GameStatusUnassigned GameStatus = "unassigned"
	GameStatusAssigned   GameStatus = "assigned"
	GameStatusCompleted  GameStatus = "completed"
	GameStatusCancelled  GameStatus = "cancelled"
)

// GameLevel defines the competitive level of a game
type GameLevel string

const (
	GameLevelRecreational GameLevel = "recreational"
	GameLevelCompetitive  GameLevel = "competitive"
	GameLevelElite        GameLevel = "elite"
)

// GameType defines the kinds of games the engine schedules
type GameType string

const (
	GameTypeCommunity         GameType = "community"
	GameTypeTournament        GameType = "tournament"
	GameTypePrivateTournament GameType = "private_tournament"
)

// AssignmentStatus defines the lifecycle states of an assignment
type AssignmentStatus string

const (
	AssignmentStatusPending   AssignmentStatus = "pending"
	AssignmentStatusAccepted  AssignmentStatus = "accepted"
	AssignmentStatusDeclined  AssignmentStatus = "declined"
	AssignmentStatusCompleted AssignmentStatus = "completed"
)

// SuggestionStatus defines the lifecycle states of an AI suggestion
type SuggestionStatus string

const (
	SuggestionStatusPending  SuggestionStatus = "pending"
	SuggestionStatusAccepted SuggestionStatus = "accepted"
	SuggestionStatusRejected SuggestionStatus = "rejected"
)

// WeightingMode defines how an assignment rule scores candidates
type WeightingMode string

const (
	WeightingModeAlgorithmic WeightingMode = "algorithmic"
	WeightingModeDelegate    WeightingMode = "delegate"
)

// RuleSchedule defines when an assignment rule runs
type RuleSchedule string

const (
	RuleScheduleManual    RuleSchedule = "manual"
	RuleScheduleRecurring RuleSchedule = "recurring"
)

// PartnerPreferenceKind marks a referee pair as preferred or avoided
type PartnerPreferenceKind string

const (
	PartnerPreferred PartnerPreferenceKind = "preferred"
	PartnerAvoid     PartnerPreferenceKind = "avoid"
)

// TimeSlot buckets game start times for pattern mining
type TimeSlot string

const (
	TimeSlotMorning   TimeSlot = "morning"
	TimeSlotAfternoon TimeSlot = "afternoon"
	TimeSlotEvening   TimeSlot = "evening"
)

// IsValid checks if the GameStatus is valid
func (s GameStatus) IsValid() bool {
	switch s {
	case GameStatusUnassigned, GameStatusAssigned, GameStatusCompleted, GameStatusCancelled:
		return true
	}
	return false
}

// IsValid checks if the GameLevel is valid
func (l GameLevel) IsValid() bool {
	switch l {
	case GameLevelRecreational, GameLevelCompetitive, GameLevelElite:
		return true
	}
	return false
}

// Rank returns the numeric rank of a level, 1 (recreational) to 3 (elite)
func (l GameLevel) Rank() int {
	switch l {
	case GameLevelRecreational:
		return 1
	case GameLevelCompetitive:
		return 2
	case GameLevelElite:
		return 3
	}
	return 0
}

// IsValid checks if the GameType is valid
func (t GameType) IsValid() bool {
	switch t {
	case GameTypeCommunity, GameTypeTournament, GameTypePrivateTournament:
		return true
	}
	return false
}

// IsValid checks if the AssignmentStatus is valid
func (s AssignmentStatus) IsValid() bool {
	switch s {
	case AssignmentStatusPending, AssignmentStatusAccepted, AssignmentStatusDeclined, AssignmentStatusCompleted:
		return true
	}
	return false
}

// IsActive reports whether the assignment still occupies its slot.
// Declined assignments free the position; completed ones keep it occupied
// for historical accounting but the game itself is over.
func (s AssignmentStatus) IsActive() bool {
	return s == AssignmentStatusPending || s == AssignmentStatusAccepted
}

// IsValid checks if the SuggestionStatus is valid
func (s SuggestionStatus) IsValid() bool {
	switch s {
	case SuggestionStatusPending, SuggestionStatusAccepted, SuggestionStatusRejected:
		return true
	}
	return false
}

// IsValid checks if the WeightingMode is valid
func (m WeightingMode) IsValid() bool {
	return m == WeightingModeAlgorithmic || m == WeightingModeDelegate
}

// IsValid checks if the RuleSchedule is valid
func (s RuleSchedule) IsValid() bool {
	return s == RuleScheduleManual || s == RuleScheduleRecurring
}

// IsValid checks if the PartnerPreferenceKind is valid
func (k PartnerPreferenceKind) IsValid() bool {
	return k == PartnerPreferred || k == PartnerAvoid
}
