package postgre

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"familybridge/internal/calsync"
	repo "familybridge/internal/calsync/repository"
)

func (r *implRepository) Create(ctx context.Context, opt repo.CreateOptions) (calsync.Connection, error) {
	settings, err := encodeSettings(opt.Settings)
	if err != nil {
		r.l.Errorf(ctx, "%s encode: %v", r.dsn("Create"), err)
		return calsync.Connection{}, repo.ErrFailedToInsert
	}

	now := time.Now().UTC()
	m := connectionModel{
		ID:           uuid.NewString(),
		UserID:       opt.UserID,
		Provider:     string(opt.Provider),
		Account:      opt.Account,
		AccessToken:  opt.AccessToken,
		RefreshToken: opt.RefreshToken,
		TokenExpiry:  opt.TokenExpiry,
		CalendarID:   opt.CalendarID,
		SyncEnabled:  opt.SyncEnabled,
		Settings:     settings,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	// Select("*") writes sync_enabled even when false.
	if err := r.db.WithContext(ctx).Select("*").Create(&m).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Create"), err)
		return calsync.Connection{}, repo.ErrFailedToInsert
	}
	return m.toDomain(), nil
}

// GetOne returns a zero Connection when no row matches.
func (r *implRepository) GetOne(ctx context.Context, opt repo.GetOneOptions) (calsync.Connection, error) {
	if _, err := uuid.Parse(opt.ID); err != nil {
		return calsync.Connection{}, nil
	}

	q := r.db.WithContext(ctx).Where("id = ?", opt.ID)
	if opt.UserID != "" {
		q = q.Where("user_id = ?", opt.UserID)
	}

	var m connectionModel
	err := q.First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return calsync.Connection{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOne"), err)
		return calsync.Connection{}, repo.ErrFailedToGet
	}
	return m.toDomain(), nil
}

func (r *implRepository) List(ctx context.Context, opt repo.ListOptions) ([]calsync.Connection, error) {
	q := r.db.WithContext(ctx).Model(&connectionModel{})
	if len(opt.UserIDs) > 0 {
		q = q.Where("user_id IN ?", opt.UserIDs)
	}
	if opt.SyncEnabled != nil {
		q = q.Where("sync_enabled = ?", *opt.SyncEnabled)
	}

	var models []connectionModel
	if err := q.Order("created_at ASC").Order("id ASC").Find(&models).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("List"), err)
		return nil, repo.ErrFailedToList
	}

	out := make([]calsync.Connection, 0, len(models))
	for _, m := range models {
		out = append(out, m.toDomain())
	}
	return out, nil
}

func (r *implRepository) UpdateSettings(ctx context.Context, opt repo.UpdateSettingsOptions) (calsync.Connection, error) {
	settings, err := encodeSettings(opt.Settings)
	if err != nil {
		r.l.Errorf(ctx, "%s encode: %v", r.dsn("UpdateSettings"), err)
		return calsync.Connection{}, repo.ErrFailedToUpdate
	}

	res := r.db.WithContext(ctx).Model(&connectionModel{}).Where("id = ?", opt.ID).Updates(map[string]any{
		"settings":     settings,
		"sync_enabled": opt.SyncEnabled,
		"updated_at":   time.Now().UTC(),
	})
	if res.Error != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateSettings"), res.Error)
		return calsync.Connection{}, repo.ErrFailedToUpdate
	}
	if res.RowsAffected == 0 {
		return calsync.Connection{}, nil
	}
	return r.GetOne(ctx, repo.GetOneOptions{ID: opt.ID})
}

func (r *implRepository) UpdateToken(ctx context.Context, opt repo.UpdateTokenOptions) error {
	err := r.db.WithContext(ctx).Model(&connectionModel{}).Where("id = ?", opt.ID).Updates(map[string]any{
		"access_token":  opt.Token.AccessToken,
		"refresh_token": opt.Token.RefreshToken,
		"token_expiry":  opt.Token.Expiry,
		"updated_at":    time.Now().UTC(),
	}).Error
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateToken"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

func (r *implRepository) MarkSynced(ctx context.Context, opt repo.MarkSyncedOptions) error {
	err := r.db.WithContext(ctx).Model(&connectionModel{}).Where("id = ?", opt.ID).Update("last_sync", opt.At).Error
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("MarkSynced"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}
