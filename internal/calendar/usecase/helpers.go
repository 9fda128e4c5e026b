package usecase

import (
	"context"

	"familybridge/internal/calendar"
	repo "familybridge/internal/calendar/repository"
)

// uniqueParticipants drops empty and repeated ids, keeping first-seen order.
func uniqueParticipants(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, p := range in {
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

// unionParticipants is the lock set for an update: old and new participants alike.
func unionParticipants(a, b []string) []string {
	return uniqueParticipants(append(append([]string{}, a...), b...))
}

func (uc *implUseCase) findConflicts(ctx context.Context, r repo.Repository, ev calendar.Event, excludeID string) error {
	conflicts, err := r.FindConflicts(ctx, repo.FindConflictsOptions{
		Range:        ev.Range(),
		Participants: ev.Participants,
		ExcludeID:    excludeID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.findConflicts FindConflicts: %v", err)
		return err
	}
	if len(conflicts) > 0 {
		return calendar.NewConflictError(conflicts)
	}
	return nil
}

// cacheEvent refreshes the cache entry. Failures are logged and swallowed.
func (uc *implUseCase) cacheEvent(ctx context.Context, ev calendar.Event) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Set(ctx, ev); err != nil {
		uc.l.Warnf(ctx, "uc.cacheEvent Set %s (non-fatal): %v", ev.ID, err)
	}
}

func (uc *implUseCase) evictEvent(ctx context.Context, id string) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Delete(ctx, id); err != nil {
		uc.l.Warnf(ctx, "uc.evictEvent Delete %s (non-fatal): %v", id, err)
	}
}

// pushEvent fans the event out to the participants' external calendars. Failures are logged and swallowed.
func (uc *implUseCase) pushEvent(ctx context.Context, ev calendar.Event) {
	if uc.syncer == nil {
		return
	}
	if err := uc.syncer.SyncEvent(ctx, ev); err != nil {
		uc.l.Warnf(ctx, "uc.pushEvent SyncEvent %s (non-fatal): %v", ev.ID, err)
	}
}

func (uc *implUseCase) retractEvent(ctx context.Context, ev calendar.Event) {
	if uc.syncer == nil {
		return
	}
	if err := uc.syncer.RemoveEvent(ctx, ev); err != nil {
		uc.l.Warnf(ctx, "uc.retractEvent RemoveEvent %s (non-fatal): %v", ev.ID, err)
	}
}

func transportationOptions(eventID string, in calendar.TransportationInput) repo.TransportationOptions {
	return repo.TransportationOptions{EventID: eventID, TransportationInput: in}
}
