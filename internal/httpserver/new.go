package httpserver

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"familybridge/config"
	"familybridge/internal/calendar"
	"familybridge/internal/calsync"
	"familybridge/pkg/log"
	"familybridge/pkg/scope"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Middleware
	jwtManager scope.Manager
	rateLimit  config.RateLimitConfig

	// Domains
	calendarUC calendar.UseCase
	calsyncUC  calsync.UseCase

	ready func(ctx context.Context) error
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	JWTManager scope.Manager
	RateLimit  config.RateLimitConfig

	CalendarUseCase calendar.UseCase
	// CalSyncUseCase is optional; without it the /sync routes are not registered.
	CalSyncUseCase calsync.UseCase

	// ReadyCheck backs GET /ready, typically a database ping. Nil means always ready.
	ReadyCheck func(ctx context.Context) error
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		jwtManager:  cfg.JWTManager,
		rateLimit:   cfg.RateLimit,
		calendarUC:  cfg.CalendarUseCase,
		calsyncUC:   cfg.CalSyncUseCase,
		ready:       cfg.ReadyCheck,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwt manager is required")
	}
	if srv.calendarUC == nil {
		return errors.New("calendar usecase is required")
	}
	return nil
}
