package usecase

import (
	"context"

	"familybridge/internal/calendar"
	repo "familybridge/internal/calendar/repository"
	"familybridge/internal/model"
)

// DetailEvent serves from the cache first and repopulates it on a miss.
func (uc *implUseCase) DetailEvent(ctx context.Context, sc model.Scope, id string) (calendar.DetailEventOutput, error) {
	if uc.cache != nil {
		ev, ok, err := uc.cache.Get(ctx, id)
		if err != nil {
			uc.l.Warnf(ctx, "uc.DetailEvent cache.Get %s (non-fatal): %v", id, err)
		}
		if ok {
			return calendar.DetailEventOutput{Event: ev}, nil
		}
	}

	ev, err := uc.repo.GetOneEvent(ctx, repo.GetOneEventOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.DetailEvent GetOneEvent: %v", err)
		return calendar.DetailEventOutput{}, err
	}
	if ev.ID == "" {
		return calendar.DetailEventOutput{}, calendar.ErrEventNotFound
	}

	uc.cacheEvent(ctx, ev)
	return calendar.DetailEventOutput{Event: ev}, nil
}

// CancelEvent marks the event cancelled, cancels its transportation, removes external
// copies and drops the cache entry. Cancelling twice is a no-op.
func (uc *implUseCase) CancelEvent(ctx context.Context, sc model.Scope, id string) (calendar.CancelEventOutput, error) {
	existing, err := uc.repo.GetOneEvent(ctx, repo.GetOneEventOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CancelEvent GetOneEvent: %v", err)
		return calendar.CancelEventOutput{}, err
	}
	if existing.ID == "" {
		return calendar.CancelEventOutput{}, calendar.ErrEventNotFound
	}
	if existing.Status == calendar.EventStatusCancelled {
		return calendar.CancelEventOutput{Event: existing}, nil
	}

	var (
		cancelled calendar.Event
		noop      bool
	)
	err = uc.atomicWithLocks(ctx, existing.Participants, func(ctx context.Context, tx repo.Repository, held []string) error {
		// Write back the committed state, not the snapshot read above.
		current, err := tx.GetOneEvent(ctx, repo.GetOneEventOptions{ID: id})
		if err != nil {
			uc.l.Errorf(ctx, "uc.CancelEvent GetOneEvent: %v", err)
			return err
		}
		if current.ID == "" {
			return calendar.ErrEventNotFound
		}
		if err := requireLocks(held, current.Participants); err != nil {
			return err
		}
		if current.Status == calendar.EventStatusCancelled {
			cancelled, noop = current, true
			return nil
		}

		cancelled, err = tx.UpdateEvent(ctx, repo.UpdateEventOptions{
			ID:           current.ID,
			Title:        current.Title,
			Description:  current.Description,
			StartTime:    current.StartTime,
			EndTime:      current.EndTime,
			Location:     current.Location,
			Type:         current.Type,
			Recurrence:   current.Recurrence,
			Participants: current.Participants,
			Reminders:    current.Reminders,
			Status:       calendar.EventStatusCancelled,
			Metadata:     current.Metadata,
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.CancelEvent UpdateEvent: %v", err)
			return err
		}
		if cancelled.ID == "" {
			return calendar.ErrEventNotFound
		}

		if t := cancelled.Transportation; t != nil && t.Status != calendar.TransportStatusCompleted && t.Status != calendar.TransportStatusCancelled {
			updated, err := tx.UpdateTransportationStatus(ctx, repo.UpdateTransportationStatusOptions{
				EventID: cancelled.ID,
				Status:  calendar.TransportStatusCancelled,
			})
			if err != nil {
				uc.l.Errorf(ctx, "uc.CancelEvent UpdateTransportationStatus: %v", err)
				return err
			}
			cancelled.Transportation = &updated
		}
		return nil
	})
	if err != nil {
		return calendar.CancelEventOutput{}, err
	}
	if noop {
		return calendar.CancelEventOutput{Event: cancelled}, nil
	}

	uc.retractEvent(ctx, cancelled)
	uc.evictEvent(ctx, cancelled.ID)

	return calendar.CancelEventOutput{Event: cancelled}, nil
}
