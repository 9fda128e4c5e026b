package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"familybridge/config"
	"familybridge/internal/calendar"
	"familybridge/internal/calsync"
	"familybridge/internal/middleware"
	"familybridge/internal/model"
	"familybridge/pkg/scope"
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

type mockUseCase struct {
	connectIn  calsync.ConnectInput
	connectErr error
	updateIn   calsync.UpdateSettingsInput
	updateErr  error
	scope      model.Scope
}

func (m *mockUseCase) Connect(ctx context.Context, sc model.Scope, in calsync.ConnectInput) (calsync.ConnectOutput, error) {
	m.scope, m.connectIn = sc, in
	if m.connectErr != nil {
		return calsync.ConnectOutput{}, m.connectErr
	}
	return calsync.ConnectOutput{Connection: connection(sc.UserID, in.Provider), Synced: 2}, nil
}

func (m *mockUseCase) List(ctx context.Context, sc model.Scope) (calsync.ListOutput, error) {
	return calsync.ListOutput{Connections: []calsync.Connection{connection(sc.UserID, calsync.ProviderGoogle)}}, nil
}

func (m *mockUseCase) UpdateSettings(ctx context.Context, sc model.Scope, in calsync.UpdateSettingsInput) (calsync.UpdateSettingsOutput, error) {
	m.updateIn = in
	if m.updateErr != nil {
		return calsync.UpdateSettingsOutput{}, m.updateErr
	}
	return calsync.UpdateSettingsOutput{Connection: connection(sc.UserID, calsync.ProviderGoogle)}, nil
}

func (m *mockUseCase) RunCycle(ctx context.Context, now time.Time) (calsync.CycleOutput, error) {
	return calsync.CycleOutput{}, nil
}

func (m *mockUseCase) SyncEvent(ctx context.Context, ev calendar.Event) error   { return nil }
func (m *mockUseCase) RemoveEvent(ctx context.Context, ev calendar.Event) error { return nil }

func connection(user string, p calsync.Provider) calsync.Connection {
	return calsync.Connection{
		ID:           "c1",
		UserID:       user,
		Provider:     p,
		AccessToken:  "secret-access",
		RefreshToken: "secret-refresh",
		CalendarID:   "primary",
		SyncEnabled:  true,
		Settings:     calsync.DefaultSettings(),
	}
}

func setup(t *testing.T) (*gin.Engine, *mockUseCase, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := &mockLogger{}
	jwt := scope.New("test-secret", "familybridge")
	token, err := jwt.CreateToken(model.Scope{UserID: "u1"}, time.Hour)
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	uc := &mockUseCase{}
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(l, uc), middleware.New(l, jwt, config.RateLimitConfig{}))
	return r, uc, token
}

func do(r *gin.Engine, token, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestConnectHandler(t *testing.T) {
	r, uc, token := setup(t)

	w := do(r, token, http.MethodPost, "/api/v1/sync", `{"provider":"google","accessToken":"a","settings":{"direction":"push","frequencyMinutes":30}}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if uc.scope.UserID != "u1" || uc.connectIn.Provider != calsync.ProviderGoogle {
		t.Errorf("unexpected input %+v for %+v", uc.connectIn, uc.scope)
	}
	if s := uc.connectIn.Settings; s == nil || *s.Direction != calsync.DirectionPush || *s.FrequencyMinutes != 30 {
		t.Errorf("settings not bound: %+v", s)
	}

	var body struct {
		Data map[string]any `json:"data"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body.Data["id"] != "c1" || body.Data["calendarId"] != "primary" || body.Data["syncEnabled"] != true || body.Data["synced"] != float64(2) {
		t.Errorf("unexpected body %v", body.Data)
	}
	if strings.Contains(w.Body.String(), "secret-") {
		t.Errorf("credentials leaked: %s", w.Body.String())
	}
}

func TestConnectHandlerErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		err  error
		want int
	}{
		{"unknown provider", `{"provider":"yahoo"}`, nil, http.StatusBadRequest},
		{"bad direction", `{"provider":"google","settings":{"direction":"sideways"}}`, nil, http.StatusBadRequest},
		{"invalid payload", `{"provider":"google"}`, calsync.ErrInvalidPayload, http.StatusBadRequest},
		{"token refresh", `{"provider":"google","accessToken":"a"}`, calsync.ErrTokenRefresh, http.StatusBadRequest},
		{"provider down", `{"provider":"apple","account":"a","accessToken":"b"}`, calsync.ErrProviderUnavailable, http.StatusBadGateway},
		{"internal", `{"provider":"google","accessToken":"a"}`, context.DeadlineExceeded, http.StatusInternalServerError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, uc, token := setup(t)
			uc.connectErr = tc.err
			if w := do(r, token, http.MethodPost, "/api/v1/sync", tc.body); w.Code != tc.want {
				t.Errorf("status = %d, want %d (%s)", w.Code, tc.want, w.Body.String())
			}
		})
	}
}

func TestListHandlerHidesTokens(t *testing.T) {
	r, _, token := setup(t)
	w := do(r, token, http.MethodGet, "/api/v1/sync", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "secret-") || !strings.Contains(w.Body.String(), `"connections"`) {
		t.Errorf("unexpected body %s", w.Body.String())
	}
}

func TestUpdateSettingsHandler(t *testing.T) {
	r, uc, token := setup(t)

	w := do(r, token, http.MethodPatch, "/api/v1/sync/c1/settings", `{"syncEnabled":false,"eventTypes":["medication"]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if uc.updateIn.ID != "c1" || uc.updateIn.SyncEnabled == nil || *uc.updateIn.SyncEnabled {
		t.Errorf("unexpected input %+v", uc.updateIn)
	}
	if et := uc.updateIn.Settings.EventTypes; et == nil || len(*et) != 1 {
		t.Errorf("eventTypes not bound: %v", et)
	}

	uc.updateErr = calsync.ErrConnectionNotFound
	if w := do(r, token, http.MethodPatch, "/api/v1/sync/other/settings", `{}`); w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
	if w := do(r, token, http.MethodPatch, "/api/v1/sync/c1/settings", `{"direction":"sideways"}`); w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestSyncRoutesRequireAuth(t *testing.T) {
	r, _, _ := setup(t)
	if w := do(r, "not-a-token", http.MethodGet, "/api/v1/sync", ""); w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}
