package scope_test

import (
	"context"
	"testing"
	"time"

	"familybridge/internal/model"
	"familybridge/pkg/scope"
)

func TestManager(t *testing.T) {
	m := scope.New("secret", "familybridge")

	t.Run("round trip", func(t *testing.T) {
		token, err := m.CreateToken(model.Scope{UserID: "u1", Role: "parent"}, time.Hour)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		sc, err := m.Verify(token)
		if err != nil {
			t.Fatalf("unexpected verify error: %v", err)
		}
		if sc.UserID != "u1" || sc.Role != "parent" {
			t.Errorf("unexpected scope: %+v", sc)
		}
	})

	t.Run("expired", func(t *testing.T) {
		token, _ := m.CreateToken(model.Scope{UserID: "u1"}, -time.Minute)
		if _, err := m.Verify(token); err == nil {
			t.Errorf("expected expired token to fail")
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, _ := scope.New("other", "x").CreateToken(model.Scope{UserID: "u1"}, time.Hour)
		if _, err := m.Verify(token); err != scope.ErrInvalidToken {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("missing subject", func(t *testing.T) {
		token, _ := m.CreateToken(model.Scope{}, time.Hour)
		if _, err := m.Verify(token); err != scope.ErrMissingSub {
			t.Errorf("expected ErrMissingSub, got %v", err)
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, err := m.Verify("not.a.jwt"); err == nil {
			t.Errorf("expected error")
		}
	})
}

func TestContext(t *testing.T) {
	ctx := scope.SetScopeToContext(context.Background(), model.Scope{UserID: "u2"})
	if got := scope.GetScopeFromContext(ctx); got.UserID != "u2" {
		t.Errorf("unexpected scope: %+v", got)
	}
	if got := scope.GetScopeFromContext(context.Background()); got.UserID != "" {
		t.Errorf("expected empty scope, got %+v", got)
	}
}
