package usecase

import (
	"time"

	calRepo "familybridge/internal/calendar/repository"
	"familybridge/internal/calsync"
	"familybridge/internal/calsync/repository"
	"familybridge/pkg/log"
)

// DefaultHorizon is how far ahead a sync cycle pushes upcoming events.
const DefaultHorizon = 30 * 24 * time.Hour

type implUseCase struct {
	l       log.Logger
	repo    repository.Repository
	events  calRepo.EventRepository
	clients map[calsync.Provider]calsync.Client
	horizon time.Duration
	now     func() time.Time
}

// New creates the calendar sync UseCase. Providers without a client are stored but never pushed.
func New(l log.Logger, repo repository.Repository, events calRepo.EventRepository, clients map[calsync.Provider]calsync.Client, horizon time.Duration) *implUseCase {
	if horizon <= 0 {
		horizon = DefaultHorizon
	}
	return &implUseCase{
		l:       l,
		repo:    repo,
		events:  events,
		clients: clients,
		horizon: horizon,
		now:     time.Now,
	}
}
