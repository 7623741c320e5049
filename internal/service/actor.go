package service

import "github.com/google/uuid"

// Actor roles recognized by the engine
const (
	RoleAdmin   = "admin"
	RoleReferee = "referee"
)

// Actor identifies who is performing an operation. Referee actors carry the
// referee id their token maps to; admins may act on any row.
type Actor struct {
	RefereeID *uuid.UUID
	Role      string
}

// IsAdmin reports whether the actor holds the administrative role
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// Owns reports whether the actor is the referee owning the given row
func (a Actor) Owns(refereeID uuid.UUID) bool {
	return a.RefereeID != nil && *a.RefereeID == refereeID
}
