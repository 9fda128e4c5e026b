package calendar

import (
	"context"

	"familybridge/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Events
	CreateEvent(ctx context.Context, sc model.Scope, input CreateEventInput) (CreateEventOutput, error)
	ListEvents(ctx context.Context, sc model.Scope, input ListEventsInput) (ListEventsOutput, error)
	DetailEvent(ctx context.Context, sc model.Scope, id string) (DetailEventOutput, error)
	UpdateEvent(ctx context.Context, sc model.Scope, input UpdateEventInput) (UpdateEventOutput, error)
	CancelEvent(ctx context.Context, sc model.Scope, id string) (CancelEventOutput, error)
	CheckConflicts(ctx context.Context, sc model.Scope, input CheckConflictsInput) (CheckConflictsOutput, error)
	ExportEvents(ctx context.Context, sc model.Scope, input ListEventsInput) (ExportEventsOutput, error)

	// Transportation
	CreateTransportation(ctx context.Context, sc model.Scope, input CreateTransportationInput) (TransportationOutput, error)
	UpdateTransportationStatus(ctx context.Context, sc model.Scope, input UpdateTransportationStatusInput) (TransportationOutput, error)
}

// Cache is the short-lived event cache consulted by DetailEvent.
type Cache interface {
	Set(ctx context.Context, event Event) error
	Get(ctx context.Context, id string) (Event, bool, error)
	Delete(ctx context.Context, id string) error
}

// Syncer pushes events to the external calendars of their participants.
// Implementations must not fail the calling operation; errors are reported only for logging.
type Syncer interface {
	SyncEvent(ctx context.Context, event Event) error
	RemoveEvent(ctx context.Context, event Event) error
}
