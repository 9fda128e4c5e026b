package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"familybridge/config"
	"familybridge/config/postgre"
	calendarPostgre "familybridge/internal/calendar/repository/postgre"
	"familybridge/internal/calsync/provider"
	calsyncPostgre "familybridge/internal/calsync/repository/postgre"
	"familybridge/internal/calsync/scheduler"
	calsyncUseCase "familybridge/internal/calsync/usecase"
	"familybridge/pkg/gcalendar"
	"familybridge/pkg/log"
)

// main is the entry point for the background sync worker.
// It pushes upcoming events of every due external calendar connection.
//
//	worker run   cron loop on sync.schedule
//	worker once  single cycle, then exit
func main() {
	app := &cli.App{
		Name:  "worker",
		Usage: "Push familybridge events to connected external calendars.",
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "Run sync cycles on the configured schedule until interrupted.",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "schedule", Usage: "Cron schedule overriding sync.schedule, e.g. \"@every 5m\"."},
				},
				Action: func(c *cli.Context) error {
					return withScheduler(c, func(ctx context.Context, l log.Logger, s *scheduler.Scheduler) error {
						s.Run(ctx)
						return nil
					})
				},
			},
			{
				Name:  "once",
				Usage: "Run a single sync cycle and exit.",
				Action: func(c *cli.Context) error {
					return withScheduler(c, func(ctx context.Context, l log.Logger, s *scheduler.Scheduler) error {
						out, err := s.RunOnce(ctx)
						if err != nil {
							return fmt.Errorf("sync cycle failed: %w", err)
						}
						l.Infof(ctx, "Sync cycle done: connections=%d events=%d failures=%d", out.Connections, out.Events, out.Failures)
						return nil
					})
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "worker:", err)
		os.Exit(1)
	}
}

// withScheduler builds the infrastructure shared by both commands and hands fn a ready scheduler.
func withScheduler(c *cli.Context, fn func(ctx context.Context, l log.Logger, s *scheduler.Scheduler) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.Storage.Driver != config.StorageDriverPostgres {
		return fmt.Errorf("worker requires storage.driver %q, got %q", config.StorageDriverPostgres, cfg.Storage.Driver)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting familybridge sync worker...")

	loc, err := time.LoadLocation(cfg.Calendar.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Calendar.Timezone, err)
		loc = time.UTC
	}

	// Infrastructure
	db, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		return err
	}
	defer postgre.Disconnect(ctx, db)

	gdb, err := postgre.OpenGorm(db)
	if err != nil {
		return err
	}

	// Providers
	providerCfg := provider.Config{CalDAVEndpoint: cfg.CalDAV.Endpoint}
	if cfg.Google.ClientID != "" {
		providerCfg.Google = gcalendar.OAuthConfig(cfg.Google.ClientID, cfg.Google.ClientSecret)
	} else {
		logger.Warn(ctx, "Google connections will fail: google.client_id is not set")
	}

	// UseCase
	uc := calsyncUseCase.New(
		logger,
		calsyncPostgre.New(gdb, logger),
		calendarPostgre.New(db, logger),
		provider.New(providerCfg),
		time.Duration(cfg.Sync.HorizonDays)*24*time.Hour,
	)

	schedule := cfg.Sync.Schedule
	if c.IsSet("schedule") {
		schedule = c.String("schedule")
	}

	s, err := scheduler.New(logger, uc, schedule, cfg.Sync.Timeout, loc)
	if err != nil {
		return err
	}

	return fn(ctx, logger, s)
}
