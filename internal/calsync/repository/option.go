package repository

import (
	"time"

	"familybridge/internal/calsync"
)

type CreateOptions struct {
	UserID       string
	Provider     calsync.Provider
	Account      string
	AccessToken  string
	RefreshToken string
	TokenExpiry  *time.Time
	CalendarID   string
	SyncEnabled  bool
	Settings     calsync.Settings
}

// GetOneOptions holds the filters for GetOne (AND condition).
type GetOneOptions struct {
	ID     string
	UserID string
}

// ListOptions holds the filters for List. Empty fields do not filter.
type ListOptions struct {
	UserIDs     []string
	SyncEnabled *bool
}

type UpdateSettingsOptions struct {
	ID          string
	Settings    calsync.Settings
	SyncEnabled bool
}

type UpdateTokenOptions struct {
	ID    string
	Token calsync.Token
}

type MarkSyncedOptions struct {
	ID string
	At time.Time
}
