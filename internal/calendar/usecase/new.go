package usecase

import (
	"time"

	"familybridge/internal/calendar"
	"familybridge/internal/calendar/repository"
	"familybridge/pkg/log"
)

// implUseCase is the private implementation of calendar.UseCase.
type implUseCase struct {
	repo   repository.Repository
	cache  calendar.Cache
	syncer calendar.Syncer
	loc    *time.Location
	l      log.Logger
}

// New creates a new calendar UseCase implementation.
// syncer may be nil when no external calendar integration is configured.
func New(l log.Logger, repo repository.Repository, cache calendar.Cache, syncer calendar.Syncer, loc *time.Location) *implUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &implUseCase{
		repo:   repo,
		cache:  cache,
		syncer: syncer,
		loc:    loc,
		l:      l,
	}
}
