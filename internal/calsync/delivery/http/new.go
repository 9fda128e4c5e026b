package http

import (
	"familybridge/internal/calsync"
	"familybridge/pkg/log"
)

type handler struct {
	l  log.Logger
	uc calsync.UseCase
}

// New creates a new HTTP handler for external calendar connections.
func New(l log.Logger, uc calsync.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
