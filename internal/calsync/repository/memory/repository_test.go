package memory

import (
	"context"
	"testing"
	"time"

	"familybridge/internal/calsync"
	repo "familybridge/internal/calsync/repository"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func TestConnectionLifecycle(t *testing.T) {
	ctx := context.Background()
	r := New(&mockLogger{})

	a, err := r.Create(ctx, repo.CreateOptions{UserID: "u1", Provider: calsync.ProviderGoogle, AccessToken: "t", SyncEnabled: true, Settings: calsync.DefaultSettings()})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := r.Create(ctx, repo.CreateOptions{UserID: "u2", Provider: calsync.ProviderApple, SyncEnabled: false, Settings: calsync.DefaultSettings()}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if got, _ := r.GetOne(ctx, repo.GetOneOptions{ID: a.ID, UserID: "u2"}); got.ID != "" {
		t.Errorf("other user's connection visible: %+v", got)
	}

	enabled := true
	list, _ := r.List(ctx, repo.ListOptions{UserIDs: []string{"u1", "u2"}, SyncEnabled: &enabled})
	if len(list) != 1 || list[0].ID != a.ID {
		t.Errorf("unexpected enabled list %+v", list)
	}

	settings := a.Settings
	settings.FrequencyMinutes = 60
	updated, err := r.UpdateSettings(ctx, repo.UpdateSettingsOptions{ID: a.ID, Settings: settings, SyncEnabled: false})
	if err != nil || updated.Settings.FrequencyMinutes != 60 || updated.SyncEnabled {
		t.Errorf("UpdateSettings = %+v, %v", updated, err)
	}

	expiry := time.Now().Add(time.Hour)
	_ = r.UpdateToken(ctx, repo.UpdateTokenOptions{ID: a.ID, Token: calsync.Token{AccessToken: "fresh", RefreshToken: "r", Expiry: &expiry}})
	at := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	_ = r.MarkSynced(ctx, repo.MarkSyncedOptions{ID: a.ID, At: at})

	got, _ := r.GetOne(ctx, repo.GetOneOptions{ID: a.ID})
	if got.AccessToken != "fresh" || got.LastSync == nil || !got.LastSync.Equal(at) {
		t.Errorf("unexpected stored connection %+v", got)
	}

	if missing, _ := r.UpdateSettings(ctx, repo.UpdateSettingsOptions{ID: "missing"}); missing.ID != "" {
		t.Errorf("expected zero value, got %+v", missing)
	}
}
