package repository

import (
	"context"

	"familybridge/internal/calsync"
)

// Repository stores external calendar connections.
// Lookups return a zero Connection (ID == "") when nothing matches.
type Repository interface {
	Create(ctx context.Context, opts CreateOptions) (calsync.Connection, error)
	GetOne(ctx context.Context, opts GetOneOptions) (calsync.Connection, error)
	List(ctx context.Context, opts ListOptions) ([]calsync.Connection, error)
	UpdateSettings(ctx context.Context, opts UpdateSettingsOptions) (calsync.Connection, error)
	UpdateToken(ctx context.Context, opts UpdateTokenOptions) error
	MarkSynced(ctx context.Context, opts MarkSyncedOptions) error
}
