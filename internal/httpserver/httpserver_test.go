package httpserver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"familybridge/internal/calendar/cache"
	"familybridge/internal/calendar/repository/memory"
	"familybridge/internal/calendar/usecase"
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

func testConfig(ready func(context.Context) error) Config {
	l := &mockLogger{}
	return Config{
		Logger:          l,
		Port:            8080,
		Mode:            "test",
		Environment:     "development",
		JWTManager:      scope.New("secret", "familybridge"),
		CalendarUseCase: usecase.New(l, memory.New(l), cache.New(10, time.Hour), nil, time.UTC),
		ReadyCheck:      ready,
	}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no logger", func(c *Config) { c.Logger = nil }},
		{"no mode", func(c *Config) { c.Mode = "" }},
		{"no port", func(c *Config) { c.Port = 0 }},
		{"no jwt", func(c *Config) { c.JWTManager = nil }},
		{"no calendar", func(c *Config) { c.CalendarUseCase = nil }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig(nil)
			tc.mutate(&cfg)
			if _, err := New(cfg.Logger, cfg); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRoutes(t *testing.T) {
	notReady := errors.New("db down")
	srv, err := New(&mockLogger{}, testConfig(func(context.Context) error { return notReady }))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := srv.mapHandlers(); err != nil {
		t.Fatalf("mapHandlers: %v", err)
	}

	tests := []struct {
		method, path string
		want         int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/live", http.StatusOK},
		{http.MethodGet, "/ready", http.StatusServiceUnavailable},
		{http.MethodGet, "/api/v1/events", http.StatusUnauthorized},
		{http.MethodPatch, "/api/v1/transportation/x/status", http.StatusUnauthorized},
		{http.MethodGet, "/api/v1/sync", http.StatusNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			srv.gin.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
			if w.Code != tc.want {
				t.Errorf("status = %d, want %d", w.Code, tc.want)
			}
			if w.Header().Get("X-Request-ID") == "" {
				t.Error("X-Request-ID not set")
			}
		})
	}
}
