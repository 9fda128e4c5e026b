package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"familybridge/config"
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

func newRouter(mw Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw.RequestID(), mw.RateLimit())
	r.GET("/me", mw.Auth(), func(c *gin.Context) {
		c.String(http.StatusOK, scope.GetScopeFromContext(c.Request.Context()).UserID)
	})
	return r
}

func TestAuth(t *testing.T) {
	jwt := scope.New("test-secret", "familybridge")
	r := newRouter(New(&mockLogger{}, jwt, config.RateLimitConfig{}))

	token, err := jwt.CreateToken(model.Scope{UserID: "user-1"}, time.Hour)
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	tests := []struct {
		name   string
		header string
		code   int
	}{
		{"valid", "Bearer " + token, http.StatusOK},
		{"missing", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + token, http.StatusUnauthorized},
		{"garbage", "Bearer not-a-jwt", http.StatusUnauthorized},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.code {
				t.Errorf("status = %d, want %d", w.Code, tc.code)
			}
			if tc.code == http.StatusOK && w.Body.String() != "user-1" {
				t.Errorf("scope not propagated, body %q", w.Body.String())
			}
			if w.Header().Get("X-Request-ID") == "" {
				t.Error("request id header missing")
			}
		})
	}
}

func TestRateLimit(t *testing.T) {
	jwt := scope.New("test-secret", "familybridge")
	r := newRouter(New(&mockLogger{}, jwt, config.RateLimitConfig{Enabled: true, RequestsPerMin: 10, MaxTrackedPeers: 10}))

	// Burst is requestsPerMin/10 = 1, so the second immediate request is throttled.
	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	if codes[0] != http.StatusUnauthorized || codes[1] != http.StatusTooManyRequests {
		t.Errorf("unexpected status sequence %v", codes)
	}
}
