package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"familybridge/config"
	"familybridge/config/postgre"
	_ "familybridge/docs" // Swagger docs
	calendarCache "familybridge/internal/calendar/cache"
	calendarRepo "familybridge/internal/calendar/repository"
	calendarMemory "familybridge/internal/calendar/repository/memory"
	calendarPostgre "familybridge/internal/calendar/repository/postgre"
	calendarUseCase "familybridge/internal/calendar/usecase"
	"familybridge/internal/calsync/provider"
	calsyncRepo "familybridge/internal/calsync/repository"
	calsyncMemory "familybridge/internal/calsync/repository/memory"
	calsyncPostgre "familybridge/internal/calsync/repository/postgre"
	calsyncUseCase "familybridge/internal/calsync/usecase"
	"familybridge/internal/httpserver"
	"familybridge/pkg/gcalendar"
	"familybridge/pkg/log"
	"familybridge/pkg/scope"
)

// @title       familybridge Calendar API
// @description Family-care calendar: events with double-booking detection, transportation coordination and external calendar sync.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting familybridge API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Storage driver: %s", cfg.Storage.Driver)

	loc, err := time.LoadLocation(cfg.Calendar.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Calendar.Timezone, err)
		loc = time.UTC
	}

	// 3. Storage
	var (
		eventRepo  calendarRepo.Repository
		syncRepo   calsyncRepo.Repository
		readyCheck func(ctx context.Context) error
	)

	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		db, err := postgre.Connect(ctx, cfg.Postgres)
		if err != nil {
			logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
			return
		}
		defer postgre.Disconnect(ctx, db)

		if cfg.Postgres.AutoMigrate {
			if err := postgre.Migrate(ctx, db); err != nil {
				logger.Error(ctx, "Failed to run migrations: ", err)
				return
			}
			logger.Info(ctx, "✅ Database migrations applied")
		}

		gdb, err := postgre.OpenGorm(db)
		if err != nil {
			logger.Error(ctx, "Failed to open gorm session: ", err)
			return
		}

		eventRepo = calendarPostgre.New(db, logger)
		syncRepo = calsyncPostgre.New(gdb, logger)
		readyCheck = db.PingContext
	default:
		logger.Warn(ctx, "Using in-memory storage: data is lost on restart")
		eventRepo = calendarMemory.New(logger)
		syncRepo = calsyncMemory.New(logger)
	}

	// 4. External calendar providers
	providerCfg := provider.Config{CalDAVEndpoint: cfg.CalDAV.Endpoint}
	if cfg.Google.ClientID != "" {
		providerCfg.Google = gcalendar.OAuthConfig(cfg.Google.ClientID, cfg.Google.ClientSecret)
		logger.Info(ctx, "✅ Google Calendar sync enabled")
	} else {
		logger.Warn(ctx, "Google Calendar sync disabled: google.client_id is not set")
	}

	// 5. UseCases
	horizon := time.Duration(cfg.Sync.HorizonDays) * 24 * time.Hour
	syncUC := calsyncUseCase.New(logger, syncRepo, eventRepo, provider.New(providerCfg), horizon)
	eventCache := calendarCache.New(cfg.Cache.Size, cfg.Cache.EventTTL)
	calendarUC := calendarUseCase.New(logger, eventRepo, eventCache, syncUC, loc)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		JWTManager:      scope.New(cfg.JWT.SecretKey, cfg.JWT.Issuer),
		RateLimit:       cfg.RateLimit,
		CalendarUseCase: calendarUC,
		CalSyncUseCase:  syncUC,
		ReadyCheck:      readyCheck,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
