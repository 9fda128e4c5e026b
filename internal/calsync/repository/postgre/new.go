package postgre

import (
	"fmt"

	"gorm.io/gorm"

	"familybridge/internal/calsync/repository"
	"familybridge/pkg/log"
)

type implRepository struct {
	db *gorm.DB
	l  log.Logger
}

// New creates a gorm-backed Repository for calendar sync connections.
func New(db *gorm.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("calsync/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("calsync/repository/postgre.%s", method)
}
