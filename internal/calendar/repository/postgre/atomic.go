package postgre

import (
	"context"

	"familybridge/internal/calendar"
	"familybridge/internal/calendar/repository"
)

const lockParticipantQuery = `SELECT pg_advisory_xact_lock(hashtext($1))`

// Atomic opens a transaction, takes a transaction-scoped advisory lock per participant
// and runs fn against a transaction-bound repository. Locks are taken in sorted order
// so two writers sharing participants cannot deadlock. Nested calls reuse the open transaction.
func (r *implRepository) Atomic(ctx context.Context, participants []string, fn func(ctx context.Context, repo repository.Repository) error) error {
	if r.tx {
		return fn(ctx, r)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("Atomic"), err)
		return repository.ErrFailedToLock
	}

	for _, p := range calendar.NormalizeParticipants(participants) {
		if _, err := tx.ExecContext(ctx, lockParticipantQuery, p); err != nil {
			r.l.Errorf(ctx, "%s lock %s: %v", r.dsn("Atomic"), p, err)
			_ = tx.Rollback()
			return repository.ErrFailedToLock
		}
	}

	txRepo := &implRepository{db: r.db, q: tx, tx: true, l: r.l}
	if err := fn(ctx, txRepo); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			r.l.Errorf(ctx, "%s rollback: %v", r.dsn("Atomic"), rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("Atomic"), err)
		return repository.ErrFailedToUpdate
	}
	return nil
}
