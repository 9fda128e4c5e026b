package calsync

import (
	"context"
	"time"

	"familybridge/internal/calendar"
	"familybridge/internal/model"
)

// UseCase manages external calendar connections and pushes local events to them.
// It satisfies calendar.Syncer.
type UseCase interface {
	Connect(ctx context.Context, sc model.Scope, input ConnectInput) (ConnectOutput, error)
	List(ctx context.Context, sc model.Scope) (ListOutput, error)
	UpdateSettings(ctx context.Context, sc model.Scope, input UpdateSettingsInput) (UpdateSettingsOutput, error)
	RunCycle(ctx context.Context, now time.Time) (CycleOutput, error)

	calendar.Syncer
}

// Client writes events to one provider. Implementations may refresh conn's token in place.
type Client interface {
	// Prepare resolves defaults such as the target calendar before a connection is stored.
	Prepare(ctx context.Context, conn *Connection) error
	Push(ctx context.Context, conn *Connection, ev calendar.Event) error
	Remove(ctx context.Context, conn *Connection, ev calendar.Event) error
}
