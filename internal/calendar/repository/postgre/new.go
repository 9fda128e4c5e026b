package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"familybridge/internal/calendar/repository"
	"familybridge/pkg/log"
)

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type implRepository struct {
	db *sql.DB
	q  querier
	tx bool
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the calendar domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("calendar/repository/postgre: db is required")
	}
	return &implRepository{db: db, q: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("calendar/repository/postgre.%s", method)
}
