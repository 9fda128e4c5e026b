package calsync

import (
	"time"

	"familybridge/internal/calendar"
)

// Provider names an external calendar service.
type Provider string

const (
	ProviderGoogle  Provider = "google"
	ProviderApple   Provider = "apple"
	ProviderOutlook Provider = "outlook"
)

func (p Provider) Valid() bool {
	switch p {
	case ProviderGoogle, ProviderApple, ProviderOutlook:
		return true
	}
	return false
}

type Direction string

const (
	DirectionPush          Direction = "push"
	DirectionPull          Direction = "pull"
	DirectionBidirectional Direction = "bidirectional"
)

func (d Direction) Valid() bool {
	switch d {
	case DirectionPush, DirectionPull, DirectionBidirectional:
		return true
	}
	return false
}

// AllEventTypes in Settings.EventTypes matches every event type.
const AllEventTypes = "all"

const (
	DefaultFrequencyMinutes = 15
	minFrequencyMinutes     = 1
)

// --- Domain Model ---

type Settings struct {
	Direction        Direction `json:"direction"`
	EventTypes       []string  `json:"eventTypes"`
	FrequencyMinutes int       `json:"frequencyMinutes"`
}

// DefaultSettings is what a new connection starts with.
func DefaultSettings() Settings {
	return Settings{
		Direction:        DirectionBidirectional,
		EventTypes:       []string{AllEventTypes},
		FrequencyMinutes: DefaultFrequencyMinutes,
	}
}

// Pushes reports whether local events are written to the provider.
func (s Settings) Pushes() bool {
	return s.Direction == DirectionPush || s.Direction == DirectionBidirectional
}

// Includes reports whether events of type t are synchronised.
func (s Settings) Includes(t calendar.EventType) bool {
	if len(s.EventTypes) == 0 {
		return true
	}
	for _, et := range s.EventTypes {
		if et == AllEventTypes || et == string(t) {
			return true
		}
	}
	return false
}

// Connection is one user's link to an external calendar.
type Connection struct {
	ID           string
	UserID       string
	Provider     Provider
	Account      string // CalDAV username
	AccessToken  string
	RefreshToken string
	TokenExpiry  *time.Time
	CalendarID   string
	LastSync     *time.Time
	SyncEnabled  bool
	Settings     Settings
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Due reports whether a periodic cycle should sync the connection at now.
func (c Connection) Due(now time.Time) bool {
	if !c.SyncEnabled || !c.Settings.Pushes() {
		return false
	}
	if c.LastSync == nil {
		return true
	}
	freq := c.Settings.FrequencyMinutes
	if freq < minFrequencyMinutes {
		freq = DefaultFrequencyMinutes
	}
	return !now.Before(c.LastSync.Add(time.Duration(freq) * time.Minute))
}

// Token is the credential triple a provider may refresh.
type Token struct {
	AccessToken  string
	RefreshToken string
	Expiry       *time.Time
}

func (c Connection) Token() Token {
	return Token{AccessToken: c.AccessToken, RefreshToken: c.RefreshToken, Expiry: c.TokenExpiry}
}

// SetToken stores a refreshed credential. An empty refresh token keeps the previous one.
func (c *Connection) SetToken(t Token) {
	c.AccessToken = t.AccessToken
	if t.RefreshToken != "" {
		c.RefreshToken = t.RefreshToken
	}
	c.TokenExpiry = t.Expiry
}

// --- UseCase Inputs ---

type ConnectInput struct {
	Provider     Provider
	Account      string
	AccessToken  string
	RefreshToken string
	TokenExpiry  *time.Time
	CalendarID   string
	Settings     *SettingsInput
}

// SettingsInput is a partial settings update: nil fields keep their stored value.
type SettingsInput struct {
	Direction        *Direction
	EventTypes       *[]string
	FrequencyMinutes *int
}

type UpdateSettingsInput struct {
	ID          string
	Settings    SettingsInput
	SyncEnabled *bool
}

// --- UseCase Outputs ---

type ConnectOutput struct {
	Connection Connection
	// Synced is the number of upcoming events pushed by the initial sync.
	Synced int
}

type ListOutput struct {
	Connections []Connection
}

type UpdateSettingsOutput struct {
	Connection Connection
}

// CycleOutput summarises one periodic sync run.
type CycleOutput struct {
	Connections int
	Events      int
	Failures    int
}
