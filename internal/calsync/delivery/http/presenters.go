package http

import (
	"time"

	"familybridge/internal/calsync"
)

// --- Request DTOs ---

type settingsReq struct {
	Direction        *string   `json:"direction"        binding:"omitempty,oneof=push pull bidirectional"`
	EventTypes       *[]string `json:"eventTypes"`
	FrequencyMinutes *int      `json:"frequencyMinutes" binding:"omitempty,min=1,max=1440"`
}

func (r *settingsReq) toInput() *calsync.SettingsInput {
	if r == nil {
		return nil
	}
	in := &calsync.SettingsInput{EventTypes: r.EventTypes, FrequencyMinutes: r.FrequencyMinutes}
	if r.Direction != nil {
		d := calsync.Direction(*r.Direction)
		in.Direction = &d
	}
	return in
}

type connectReq struct {
	Provider     string       `json:"provider"     binding:"required,oneof=google apple outlook"`
	Account      string       `json:"account"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	TokenExpiry  *time.Time   `json:"tokenExpiry"`
	CalendarID   string       `json:"calendarId"`
	Settings     *settingsReq `json:"settings"`
}

func (r connectReq) toInput() calsync.ConnectInput {
	return calsync.ConnectInput{
		Provider:     calsync.Provider(r.Provider),
		Account:      r.Account,
		AccessToken:  r.AccessToken,
		RefreshToken: r.RefreshToken,
		TokenExpiry:  r.TokenExpiry,
		CalendarID:   r.CalendarID,
		Settings:     r.Settings.toInput(),
	}
}

type updateSettingsReq struct {
	ID          string `json:"-"`
	SyncEnabled *bool  `json:"syncEnabled"`
	settingsReq
}

func (r updateSettingsReq) toInput() calsync.UpdateSettingsInput {
	in := calsync.UpdateSettingsInput{ID: r.ID, SyncEnabled: r.SyncEnabled}
	if s := r.settingsReq.toInput(); s != nil {
		in.Settings = *s
	}
	return in
}

// --- Response DTOs ---

type settingsResp struct {
	Direction        string   `json:"direction"`
	EventTypes       []string `json:"eventTypes"`
	FrequencyMinutes int      `json:"frequencyMinutes"`
}

// connectionResp never carries provider credentials.
type connectionResp struct {
	ID          string       `json:"id"`
	Provider    string       `json:"provider"`
	Account     string       `json:"account,omitempty"`
	CalendarID  string       `json:"calendarId"`
	SyncEnabled bool         `json:"syncEnabled"`
	LastSync    *time.Time   `json:"lastSync,omitempty"`
	Settings    settingsResp `json:"settings"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

func newConnectionResp(c calsync.Connection) connectionResp {
	types := c.Settings.EventTypes
	if types == nil {
		types = []string{}
	}
	return connectionResp{
		ID:          c.ID,
		Provider:    string(c.Provider),
		Account:     c.Account,
		CalendarID:  c.CalendarID,
		SyncEnabled: c.SyncEnabled,
		LastSync:    c.LastSync,
		Settings: settingsResp{
			Direction:        string(c.Settings.Direction),
			EventTypes:       types,
			FrequencyMinutes: c.Settings.FrequencyMinutes,
		},
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

type connectResp struct {
	connectionResp
	Synced int `json:"synced"`
}

type listResp struct {
	Connections []connectionResp `json:"connections"`
}

func newListResp(out calsync.ListOutput) listResp {
	resp := listResp{Connections: make([]connectionResp, 0, len(out.Connections))}
	for _, c := range out.Connections {
		resp.Connections = append(resp.Connections, newConnectionResp(c))
	}
	return resp
}
