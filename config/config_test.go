package config_test

import (
	"testing"

	"familybridge/config"
)

func TestLoad(t *testing.T) {
	t.Run("memory driver", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "memory")
		t.Setenv("JWT_SECRET_KEY", "test-secret")
		t.Setenv("CALENDAR_TIMEZONE", "UTC")

		cfg, err := config.Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Storage.Driver != config.StorageDriverMemory {
			t.Errorf("unexpected driver: %s", cfg.Storage.Driver)
		}
		if cfg.Cache.EventTTL.Seconds() != 3600 {
			t.Errorf("expected default event ttl of 1h, got %s", cfg.Cache.EventTTL)
		}
		if cfg.Calendar.Timezone != "UTC" {
			t.Errorf("unexpected timezone: %s", cfg.Calendar.Timezone)
		}
	})

	t.Run("postgres without dsn", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "postgres")
		t.Setenv("JWT_SECRET_KEY", "test-secret")
		t.Setenv("POSTGRES_DSN", "")
		t.Setenv("DATABASE_URL", "")

		if _, err := config.Load(); err == nil {
			t.Errorf("expected error for missing dsn")
		}
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "memory")
		t.Setenv("JWT_SECRET_KEY", "")
		t.Setenv("JWT_SECRET", "")

		if _, err := config.Load(); err == nil {
			t.Errorf("expected error for missing jwt secret")
		}
	})

	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "mongo")
		t.Setenv("JWT_SECRET_KEY", "test-secret")

		if _, err := config.Load(); err == nil {
			t.Errorf("expected error for unknown driver")
		}
	})
}
