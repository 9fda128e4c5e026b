package repository

import (
	"context"

	"familybridge/internal/calendar"
)

// Repository is the composed interface for the calendar data store.
type Repository interface {
	EventRepository
	TransportationRepository

	// Atomic runs fn inside a critical section that serialises every writer touching
	// one of the given participants. The Repository handed to fn must be used for all
	// reads and writes that belong to the section.
	Atomic(ctx context.Context, participants []string, fn func(ctx context.Context, repo Repository) error) error
}

// EventRepository defines all data access methods for the Event entity.
type EventRepository interface {
	CreateEvent(ctx context.Context, opt CreateEventOptions) (calendar.Event, error)
	GetOneEvent(ctx context.Context, opt GetOneEventOptions) (calendar.Event, error)
	ListEvents(ctx context.Context, opt ListEventsOptions) ([]calendar.Event, error)
	UpdateEvent(ctx context.Context, opt UpdateEventOptions) (calendar.Event, error)
	FindConflicts(ctx context.Context, opt FindConflictsOptions) ([]calendar.Event, error)
}

// TransportationRepository defines all data access methods for transportation coordination.
type TransportationRepository interface {
	CreateTransportation(ctx context.Context, opt TransportationOptions) (calendar.Transportation, error)
	UpsertTransportation(ctx context.Context, opt TransportationOptions) (calendar.Transportation, error)
	GetOneTransportation(ctx context.Context, opt GetOneTransportationOptions) (calendar.Transportation, error)
	UpdateTransportationStatus(ctx context.Context, opt UpdateTransportationStatusOptions) (calendar.Transportation, error)
}
