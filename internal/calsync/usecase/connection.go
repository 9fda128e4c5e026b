package usecase

import (
	"context"

	"familybridge/internal/calsync"
	repo "familybridge/internal/calsync/repository"
	"familybridge/internal/model"
)

// Connect stores a new connection for the caller and pushes their upcoming events to it.
// A failing initial sync does not fail the connection.
func (uc *implUseCase) Connect(ctx context.Context, sc model.Scope, input calsync.ConnectInput) (calsync.ConnectOutput, error) {
	if err := input.Validate(); err != nil {
		return calsync.ConnectOutput{}, err
	}

	settings := calsync.DefaultSettings()
	if input.Settings != nil {
		var err error
		if settings, err = settings.Apply(*input.Settings); err != nil {
			return calsync.ConnectOutput{}, err
		}
	}

	conn := calsync.Connection{
		UserID:       sc.UserID,
		Provider:     input.Provider,
		Account:      input.Account,
		AccessToken:  input.AccessToken,
		RefreshToken: input.RefreshToken,
		TokenExpiry:  input.TokenExpiry,
		CalendarID:   input.CalendarID,
		SyncEnabled:  true,
		Settings:     settings,
	}
	if client, ok := uc.clients[conn.Provider]; ok {
		if err := client.Prepare(ctx, &conn); err != nil {
			uc.l.Warnf(ctx, "calsync.usecase.Connect Prepare %s: %v", conn.Provider, err)
			return calsync.ConnectOutput{}, err
		}
	}

	created, err := uc.repo.Create(ctx, repo.CreateOptions{
		UserID:       conn.UserID,
		Provider:     conn.Provider,
		Account:      conn.Account,
		AccessToken:  conn.AccessToken,
		RefreshToken: conn.RefreshToken,
		TokenExpiry:  conn.TokenExpiry,
		CalendarID:   conn.CalendarID,
		SyncEnabled:  conn.SyncEnabled,
		Settings:     conn.Settings,
	})
	if err != nil {
		uc.l.Errorf(ctx, "calsync.usecase.Connect Create: %v", err)
		return calsync.ConnectOutput{}, err
	}

	synced, err := uc.syncConnection(ctx, &created, uc.now())
	if err != nil {
		uc.l.Warnf(ctx, "calsync.usecase.Connect initial sync %s (non-fatal): %v", created.ID, err)
	}
	return calsync.ConnectOutput{Connection: created, Synced: synced}, nil
}

func (uc *implUseCase) List(ctx context.Context, sc model.Scope) (calsync.ListOutput, error) {
	conns, err := uc.repo.List(ctx, repo.ListOptions{UserIDs: []string{sc.UserID}})
	if err != nil {
		uc.l.Errorf(ctx, "calsync.usecase.List List: %v", err)
		return calsync.ListOutput{}, err
	}
	return calsync.ListOutput{Connections: conns}, nil
}

// UpdateSettings merges the settings of one of the caller's connections.
// Connections owned by someone else are reported as not found.
func (uc *implUseCase) UpdateSettings(ctx context.Context, sc model.Scope, input calsync.UpdateSettingsInput) (calsync.UpdateSettingsOutput, error) {
	conn, err := uc.repo.GetOne(ctx, repo.GetOneOptions{ID: input.ID, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "calsync.usecase.UpdateSettings GetOne: %v", err)
		return calsync.UpdateSettingsOutput{}, err
	}
	if conn.ID == "" {
		return calsync.UpdateSettingsOutput{}, calsync.ErrConnectionNotFound
	}

	settings, err := conn.Settings.Apply(input.Settings)
	if err != nil {
		return calsync.UpdateSettingsOutput{}, err
	}
	enabled := conn.SyncEnabled
	if input.SyncEnabled != nil {
		enabled = *input.SyncEnabled
	}

	updated, err := uc.repo.UpdateSettings(ctx, repo.UpdateSettingsOptions{ID: conn.ID, Settings: settings, SyncEnabled: enabled})
	if err != nil {
		uc.l.Errorf(ctx, "calsync.usecase.UpdateSettings UpdateSettings: %v", err)
		return calsync.UpdateSettingsOutput{}, err
	}
	if updated.ID == "" {
		return calsync.UpdateSettingsOutput{}, calsync.ErrConnectionNotFound
	}
	return calsync.UpdateSettingsOutput{Connection: updated}, nil
}
