package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"familybridge/internal/calsync"
	repo "familybridge/internal/calsync/repository"
	"familybridge/pkg/log"
)

type implRepository struct {
	mu    sync.RWMutex
	conns map[string]calsync.Connection
	l     log.Logger
}

// New creates an in-process Repository for calendar sync connections.
func New(l log.Logger) repo.Repository {
	return &implRepository{conns: make(map[string]calsync.Connection), l: l}
}

func (r *implRepository) Create(ctx context.Context, opt repo.CreateOptions) (calsync.Connection, error) {
	now := time.Now().UTC()
	c := calsync.Connection{
		ID:           uuid.NewString(),
		UserID:       opt.UserID,
		Provider:     opt.Provider,
		Account:      opt.Account,
		AccessToken:  opt.AccessToken,
		RefreshToken: opt.RefreshToken,
		TokenExpiry:  opt.TokenExpiry,
		CalendarID:   opt.CalendarID,
		SyncEnabled:  opt.SyncEnabled,
		Settings:     cloneSettings(opt.Settings),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.conns[c.ID] = c
	return clone(c), nil
}

func (r *implRepository) GetOne(ctx context.Context, opt repo.GetOneOptions) (calsync.Connection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.conns[opt.ID]
	if !ok || (opt.UserID != "" && c.UserID != opt.UserID) {
		return calsync.Connection{}, nil
	}
	return clone(c), nil
}

func (r *implRepository) List(ctx context.Context, opt repo.ListOptions) ([]calsync.Connection, error) {
	users := make(map[string]struct{}, len(opt.UserIDs))
	for _, u := range opt.UserIDs {
		users[u] = struct{}{}
	}

	r.mu.RLock()
	out := make([]calsync.Connection, 0, len(r.conns))
	for _, c := range r.conns {
		if _, ok := users[c.UserID]; len(users) > 0 && !ok {
			continue
		}
		if opt.SyncEnabled != nil && c.SyncEnabled != *opt.SyncEnabled {
			continue
		}
		out = append(out, clone(c))
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *implRepository) UpdateSettings(ctx context.Context, opt repo.UpdateSettingsOptions) (calsync.Connection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.conns[opt.ID]
	if !ok {
		return calsync.Connection{}, nil
	}
	c.Settings = cloneSettings(opt.Settings)
	c.SyncEnabled = opt.SyncEnabled
	c.UpdatedAt = time.Now().UTC()
	r.conns[c.ID] = c
	return clone(c), nil
}

func (r *implRepository) UpdateToken(ctx context.Context, opt repo.UpdateTokenOptions) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.conns[opt.ID]
	if !ok {
		return nil
	}
	c.AccessToken = opt.Token.AccessToken
	c.RefreshToken = opt.Token.RefreshToken
	c.TokenExpiry = opt.Token.Expiry
	c.UpdatedAt = time.Now().UTC()
	r.conns[c.ID] = c
	return nil
}

func (r *implRepository) MarkSynced(ctx context.Context, opt repo.MarkSyncedOptions) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.conns[opt.ID]
	if !ok {
		return nil
	}
	at := opt.At
	c.LastSync = &at
	r.conns[c.ID] = c
	return nil
}

func clone(c calsync.Connection) calsync.Connection {
	c.Settings = cloneSettings(c.Settings)
	if c.TokenExpiry != nil {
		t := *c.TokenExpiry
		c.TokenExpiry = &t
	}
	if c.LastSync != nil {
		t := *c.LastSync
		c.LastSync = &t
	}
	return c
}

func cloneSettings(s calsync.Settings) calsync.Settings {
	s.EventTypes = append([]string(nil), s.EventTypes...)
	return s
}
