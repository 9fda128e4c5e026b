package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	JWT        JWTConfig
	RateLimit  RateLimitConfig

	// Storage
	Storage  StorageConfig
	Postgres PostgresConfig
	Cache    CacheConfig

	// Calendar specifics
	Calendar CalendarConfig
	Google   GoogleConfig
	CalDAV   CalDAVConfig
	Sync     SyncConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type JWTConfig struct {
	SecretKey string
	Issuer    string
}

type RateLimitConfig struct {
	Enabled         bool
	RequestsPerMin  int
	MaxTrackedPeers int
}

// StorageConfig selects the event store backend: "postgres" or "memory".
type StorageConfig struct {
	Driver string
}

type PostgresConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
}

type CacheConfig struct {
	Size     int
	EventTTL time.Duration
}

type CalendarConfig struct {
	Timezone string
}

// GoogleConfig holds the OAuth client used to refresh user tokens.
type GoogleConfig struct {
	ClientID     string
	ClientSecret string
}

type CalDAVConfig struct {
	Endpoint string
}

type SyncConfig struct {
	Schedule    string
	HorizonDays int
	Timeout     time.Duration
}

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// Load loads configuration using Viper.
// A local .env file is loaded into the process environment first (if present).
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.JWT.SecretKey = viper.GetString("jwt.secret_key")
	cfg.JWT.Issuer = viper.GetString("jwt.issuer")
	if secret := viper.GetString("jwt_secret"); secret != "" {
		cfg.JWT.SecretKey = secret
	}

	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.MaxTrackedPeers = viper.GetInt("rate_limit.max_tracked_peers")

	// Storage
	cfg.Storage.Driver = viper.GetString("storage.driver")
	cfg.Postgres.DSN = viper.GetString("postgres.dsn")
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Postgres.DSN = dsn
	}
	cfg.Postgres.MaxOpenConns = viper.GetInt("postgres.max_open_conns")
	cfg.Postgres.MaxIdleConns = viper.GetInt("postgres.max_idle_conns")
	cfg.Postgres.ConnMaxLifetime = viper.GetDuration("postgres.conn_max_lifetime")
	cfg.Postgres.AutoMigrate = viper.GetBool("postgres.auto_migrate")

	cfg.Cache.Size = viper.GetInt("cache.size")
	cfg.Cache.EventTTL = viper.GetDuration("cache.event_ttl")

	// Calendar
	cfg.Calendar.Timezone = viper.GetString("calendar.timezone")

	cfg.Google.ClientID = viper.GetString("google.client_id")
	cfg.Google.ClientSecret = viper.GetString("google.client_secret")
	if id := viper.GetString("google_client_id"); id != "" {
		cfg.Google.ClientID = id
	}
	if secret := viper.GetString("google_client_secret"); secret != "" {
		cfg.Google.ClientSecret = secret
	}

	cfg.CalDAV.Endpoint = viper.GetString("caldav.endpoint")

	cfg.Sync.Schedule = viper.GetString("sync.schedule")
	cfg.Sync.HorizonDays = viper.GetInt("sync.horizon_days")
	cfg.Sync.Timeout = viper.GetDuration("sync.timeout")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("jwt.issuer", "familybridge")
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 120)
	viper.SetDefault("rate_limit.max_tracked_peers", 1000)

	viper.SetDefault("storage.driver", StorageDriverPostgres)
	viper.SetDefault("postgres.max_open_conns", 20)
	viper.SetDefault("postgres.max_idle_conns", 5)
	viper.SetDefault("postgres.conn_max_lifetime", "30m")
	viper.SetDefault("postgres.auto_migrate", true)

	viper.SetDefault("cache.size", 10000)
	viper.SetDefault("cache.event_ttl", "1h")

	viper.SetDefault("calendar.timezone", "UTC")
	viper.SetDefault("caldav.endpoint", "https://caldav.icloud.com/")

	viper.SetDefault("sync.schedule", "@every 1m")
	viper.SetDefault("sync.horizon_days", 30)
	viper.SetDefault("sync.timeout", "30s")
}

func validate(cfg *Config) error {
	switch cfg.Storage.Driver {
	case StorageDriverPostgres:
		if cfg.Postgres.DSN == "" {
			return fmt.Errorf("postgres.dsn is required when storage.driver is %q", StorageDriverPostgres)
		}
	case StorageDriverMemory:
	default:
		return fmt.Errorf("unsupported storage.driver %q", cfg.Storage.Driver)
	}

	if cfg.JWT.SecretKey == "" {
		return fmt.Errorf("jwt.secret_key is required")
	}

	if _, err := time.LoadLocation(cfg.Calendar.Timezone); err != nil {
		return fmt.Errorf("invalid calendar.timezone %q: %w", cfg.Calendar.Timezone, err)
	}

	return nil
}
