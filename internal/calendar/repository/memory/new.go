package memory

import (
	"sync"

	"familybridge/internal/calendar"
	"familybridge/internal/calendar/repository"
	"familybridge/pkg/log"
)

type store struct {
	mu             sync.RWMutex
	section        sync.Mutex
	events         map[string]calendar.Event
	transportation map[string]calendar.Transportation // keyed by event id
}

type implRepository struct {
	s         *store
	inSection bool
	l         log.Logger
}

// New creates an in-process Repository for the calendar domain.
// It is intended for local development and tests; data does not survive a restart.
func New(l log.Logger) repository.Repository {
	return &implRepository{
		s: &store{
			events:         make(map[string]calendar.Event),
			transportation: make(map[string]calendar.Transportation),
		},
		l: l,
	}
}
