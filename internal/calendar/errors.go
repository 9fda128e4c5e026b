package calendar

import (
	"errors"
	"fmt"
)

var (
	ErrEventNotFound          = errors.New("event not found")
	ErrTransportationNotFound = errors.New("transportation not found")
	ErrTransportationExists   = errors.New("transportation already exists for event")
	ErrInvalidTimeRange       = errors.New("start time must not be after end time")
	ErrInvalidPayload         = errors.New("invalid payload")
	ErrScheduleConflict       = errors.New("schedule conflict detected")
)

// ConflictError reports the existing events that block a create or update.
type ConflictError struct {
	Conflicts []Conflict
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %d conflicting event(s)", ErrScheduleConflict.Error(), len(e.Conflicts))
}

// Is lets errors.Is(err, ErrScheduleConflict) match a *ConflictError.
func (e *ConflictError) Is(target error) bool {
	return target == ErrScheduleConflict
}

// NewConflictError builds a ConflictError from the colliding events.
func NewConflictError(events []Event) *ConflictError {
	conflicts := make([]Conflict, 0, len(events))
	for _, e := range events {
		conflicts = append(conflicts, Conflict{
			ID:        e.ID,
			Title:     e.Title,
			StartTime: e.StartTime,
			EndTime:   e.EndTime,
		})
	}
	return &ConflictError{Conflicts: conflicts}
}
