package postgre

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"familybridge/internal/calsync"
)

// connectionModel maps the external_calendar_syncs table.
type connectionModel struct {
	ID           string         `gorm:"column:id;type:uuid;primaryKey"`
	UserID       string         `gorm:"column:user_id;not null"`
	Provider     string         `gorm:"column:provider;not null"`
	Account      string         `gorm:"column:account"`
	AccessToken  string         `gorm:"column:access_token;not null"`
	RefreshToken string         `gorm:"column:refresh_token"`
	TokenExpiry  *time.Time     `gorm:"column:token_expiry"`
	CalendarID   string         `gorm:"column:calendar_id;not null"`
	LastSync     *time.Time     `gorm:"column:last_sync"`
	SyncEnabled  bool           `gorm:"column:sync_enabled"`
	Settings     datatypes.JSON `gorm:"column:settings;type:jsonb"`
	CreatedAt    time.Time      `gorm:"column:created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at"`
}

func (connectionModel) TableName() string {
	return "external_calendar_syncs"
}

func (m connectionModel) toDomain() calsync.Connection {
	settings := calsync.DefaultSettings()
	if len(m.Settings) > 0 {
		// Columns written before a field existed keep that field's default.
		_ = json.Unmarshal(m.Settings, &settings)
	}
	return calsync.Connection{
		ID:           m.ID,
		UserID:       m.UserID,
		Provider:     calsync.Provider(m.Provider),
		Account:      m.Account,
		AccessToken:  m.AccessToken,
		RefreshToken: m.RefreshToken,
		TokenExpiry:  m.TokenExpiry,
		CalendarID:   m.CalendarID,
		LastSync:     m.LastSync,
		SyncEnabled:  m.SyncEnabled,
		Settings:     settings,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func encodeSettings(s calsync.Settings) (datatypes.JSON, error) {
	if s.EventTypes == nil {
		s.EventTypes = []string{}
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}
