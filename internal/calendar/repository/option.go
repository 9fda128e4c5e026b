package repository

import (
	"time"

	"familybridge/internal/calendar"
)

// CreateEventOptions holds the parameters for inserting an Event.
type CreateEventOptions struct {
	Title        string
	Description  string
	StartTime    time.Time
	EndTime      time.Time
	Location     calendar.Location
	Type         calendar.EventType
	Recurrence   *calendar.Recurrence
	Participants []string
	Reminders    []calendar.Reminder
	Status       calendar.EventStatus
	CreatedBy    string
	Metadata     map[string]any
}

// GetOneEventOptions holds the filters for GetOneEvent (AND condition).
type GetOneEventOptions struct {
	ID string
}

// ListEventsOptions holds the filters for ListEvents.
// A zero StartDate or EndDate leaves that side of the window open.
type ListEventsOptions struct {
	StartDate    time.Time
	EndDate      time.Time
	Participants []string // any overlap
	Type         calendar.EventType
	Status       calendar.EventStatus
	// IncludeRecurring keeps recurring events that started before the window so they can be expanded.
	IncludeRecurring bool
	Limit            int
}

// UpdateEventOptions replaces every mutable column of an Event.
type UpdateEventOptions struct {
	ID           string
	Title        string
	Description  string
	StartTime    time.Time
	EndTime      time.Time
	Location     calendar.Location
	Type         calendar.EventType
	Recurrence   *calendar.Recurrence
	Participants []string
	Reminders    []calendar.Reminder
	Status       calendar.EventStatus
	Metadata     map[string]any
}

// FindConflictsOptions is the conflict-detector query. Cancelled events are never returned.
type FindConflictsOptions struct {
	Range        calendar.TimeRange
	Participants []string
	ExcludeID    string
}

// TransportationOptions holds the parameters for creating or upserting a transportation row.
type TransportationOptions struct {
	EventID string
	calendar.TransportationInput
}

// GetOneTransportationOptions holds the filters for GetOneTransportation (AND condition).
type GetOneTransportationOptions struct {
	ID      string
	EventID string
}

type UpdateTransportationStatusOptions struct {
	ID      string
	EventID string // alternative key when ID is empty
	Status  calendar.TransportStatus
}
