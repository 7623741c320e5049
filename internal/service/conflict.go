package service

import (
	"fmt"

	"referee-scheduler-backend/internal/database/models"
	"referee-scheduler-backend/internal/repository"
	"referee-scheduler-backend/internal/scheduling"

	"github.com/google/uuid"
)

// ConflictDetector reports scheduling overlaps between a candidate window
// and a referee's existing commitments. Conflicts come back as data, never
// as errors, so callers can decide whether to override.
type ConflictDetector struct {
	assignmentRepo *repository.AssignmentRepository
}

// NewConflictDetector creates a new conflict detector
func NewConflictDetector(assignmentRepo *repository.AssignmentRepository) *ConflictDetector {
	return &ConflictDetector{assignmentRepo: assignmentRepo}
}

// FindConflicts returns the referee's pending/accepted assignments whose
// game windows intersect the candidate window on the same calendar date.
// excludeAssignmentID skips one assignment, for checks during edits.
func (d *ConflictDetector) FindConflicts(refereeID uuid.UUID, candidate scheduling.Window, excludeAssignmentID *uuid.UUID) ([]models.Assignment, error) {
	active, err := d.assignmentRepo.GetActiveByReferee(refereeID)
	if err != nil {
		return nil, fmt.Errorf("load active assignments: %w", err)
	}

	var conflicts []models.Assignment
	for _, a := range active {
		if excludeAssignmentID != nil && a.ID == *excludeAssignmentID {
			continue
		}
		if !scheduling.SameDate(a.Game.Date, candidate.Start) {
			continue
		}
		window, err := scheduling.GameWindow(a.Game.Date, a.Game.StartTime, a.Game.EndTime)
		if err != nil {
			return nil, err
		}
		if window.Overlaps(candidate) {
			conflicts = append(conflicts, a)
		}
	}
	return conflicts, nil
}

// conflictGameIDs extracts the distinct game ids of a conflict list
func conflictGameIDs(conflicts []models.Assignment) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(conflicts))
	var ids []uuid.UUID
	for _, c := range conflicts {
		if !seen[c.GameID] {
			seen[c.GameID] = true
			ids = append(ids, c.GameID)
		}
	}
	return ids
}
