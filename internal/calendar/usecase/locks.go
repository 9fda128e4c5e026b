package usecase

import (
	"context"
	"errors"
	"fmt"

	repo "familybridge/internal/calendar/repository"
)

// maxLockAttempts bounds how often a section is retried with a widened lock set.
const maxLockAttempts = 5

// lockSetError reports participants read inside a section whose locks are not held.
type lockSetError struct {
	missing []string
}

func (e *lockSetError) Error() string {
	return fmt.Sprintf("participant locks not held: %v", e.missing)
}

// requireLocks fails with a lockSetError unless every participant in want is in held.
// Call it before any read that decides a write.
func requireLocks(held, want []string) error {
	in := make(map[string]struct{}, len(held))
	for _, p := range held {
		in[p] = struct{}{}
	}
	var missing []string
	for _, p := range uniqueParticipants(want) {
		if _, ok := in[p]; !ok {
			missing = append(missing, p)
		}
	}
	if len(missing) > 0 {
		return &lockSetError{missing: missing}
	}
	return nil
}

// atomicWithLocks runs fn inside repo.Atomic holding lockSet. When fn reports a lockSetError
// the section is abandoned and retried with the missing participants added.
func (uc *implUseCase) atomicWithLocks(ctx context.Context, lockSet []string, fn func(ctx context.Context, tx repo.Repository, held []string) error) error {
	lockSet = uniqueParticipants(lockSet)
	for attempt := 1; ; attempt++ {
		held := lockSet
		err := uc.repo.Atomic(ctx, held, func(ctx context.Context, tx repo.Repository) error {
			return fn(ctx, tx, held)
		})

		var lse *lockSetError
		if !errors.As(err, &lse) {
			return err
		}
		if attempt == maxLockAttempts {
			uc.l.Errorf(ctx, "uc.atomicWithLocks: lock set still changing after %d attempts: %v", attempt, err)
			return err
		}
		uc.l.Debugf(ctx, "uc.atomicWithLocks: widening lock set by %v", lse.missing)
		lockSet = unionParticipants(held, lse.missing)
	}
}
