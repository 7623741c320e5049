package errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ConflictError represents a scheduling or uniqueness conflict. For time
// conflicts GameIDs carries every colliding game so callers can retry with
// an override.
type ConflictError struct {
	Message string
	GameIDs []uuid.UUID
}

func (e *ConflictError) Error() string {
	if len(e.GameIDs) == 0 {
		return e.Message
	}
	ids := make([]string, len(e.GameIDs))
	for i, id := range e.GameIDs {
		ids[i] = id.String()
	}
	return fmt.Sprintf("%s: %s", e.Message, strings.Join(ids, ", "))
}

// CapacityError represents an attempt to staff a game beyond refs_needed
type CapacityError struct {
	Message string
}

func (e *CapacityError) Error() string {
	return e.Message
}

// InvalidTransitionError represents an illegal assignment status change
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %s to %s", e.From, e.To)
}

// ExpiredResourceError represents a time-boxed resource used past its TTL
type ExpiredResourceError struct {
	Entity string
}

func (e *ExpiredResourceError) Error() string {
	return fmt.Sprintf("%s has expired", e.Entity)
}

// AuthorizationError represents role or ownership violations
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrGameNotFound       = &NotFoundError{Entity: "game"}
	ErrRefereeNotFound    = &NotFoundError{Entity: "referee"}
	ErrPositionNotFound   = &NotFoundError{Entity: "position"}
	ErrAssignmentNotFound = &NotFoundError{Entity: "assignment"}
	ErrSuggestionNotFound = &NotFoundError{Entity: "suggestion"}
	ErrChunkNotFound      = &NotFoundError{Entity: "chunk"}
	ErrPatternNotFound    = &NotFoundError{Entity: "pattern"}
	ErrRuleNotFound       = &NotFoundError{Entity: "assignment rule"}
	ErrWindowNotFound     = &NotFoundError{Entity: "availability window"}
)

// Conflict Errors
var (
	ErrAlreadyAssigned   = &ConflictError{Message: "referee is already assigned to this game"}
	ErrChunkAssigned     = &ConflictError{Message: "chunk is assigned"}
	ErrWindowOverlap     = &ConflictError{Message: "availability window overlaps an existing window"}
	ErrDuplicatePartner  = &ConflictError{Message: "partner preference already exists for this pair"}
	ErrGameFullyAssigned = &CapacityError{Message: "game is fully assigned"}
	ErrSuggestionExpired = &ExpiredResourceError{Entity: "suggestion"}
)

// Business Logic Errors
var (
	ErrSuggestionDecided  = &ValidationError{Field: "status", Message: "suggestion has already been decided"}
	ErrRefereeUnavailable = &ValidationError{Field: "referee_id", Message: "referee is not available"}
	ErrRuleDisabled       = &ValidationError{Field: "enabled", Message: "assignment rule is disabled"}
	ErrChunkMembership    = &ValidationError{Field: "game_ids", Message: "games must share the same location and date"}
	ErrAcceptedSelfDelete = &ValidationError{Field: "status", Message: "referees cannot remove an accepted assignment"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsCapacity checks if an error is a CapacityError
func IsCapacity(err error) bool {
	var capacityErr *CapacityError
	return errors.As(err, &capacityErr)
}

// IsInvalidTransition checks if an error is an InvalidTransitionError
func IsInvalidTransition(err error) bool {
	var transitionErr *InvalidTransitionError
	return errors.As(err, &transitionErr)
}

// IsExpired checks if an error is an ExpiredResourceError
func IsExpired(err error) bool {
	var expiredErr *ExpiredResourceError
	return errors.As(err, &expiredErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConflictError creates a new ConflictError carrying the colliding games
func NewConflictError(message string, gameIDs ...uuid.UUID) error {
	return &ConflictError{Message: message, GameIDs: gameIDs}
}

// NewInvalidTransitionError creates a new InvalidTransitionError
func NewInvalidTransitionError(from, to string) error {
	return &InvalidTransitionError{From: from, To: to}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// ConflictGameIDs extracts the colliding game ids from a ConflictError chain
func ConflictGameIDs(err error) []uuid.UUID {
	var conflictErr *ConflictError
	if errors.As(err, &conflictErr) {
		return conflictErr.GameIDs
	}
	return nil
}
