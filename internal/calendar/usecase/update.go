package usecase

import (
	"context"
	"errors"

	"familybridge/internal/calendar"
	repo "familybridge/internal/calendar/repository"
	"familybridge/internal/model"
)

// UpdateEvent applies a partial update. When the time range or participants change, or a
// cancelled event is reactivated, the detector re-runs on the effective values with the
// event itself excluded. Nothing is persisted on conflict.
func (uc *implUseCase) UpdateEvent(ctx context.Context, sc model.Scope, input calendar.UpdateEventInput) (calendar.UpdateEventOutput, error) {
	existing, err := uc.repo.GetOneEvent(ctx, repo.GetOneEventOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateEvent GetOneEvent: %v", err)
		return calendar.UpdateEventOutput{}, err
	}
	if existing.ID == "" {
		return calendar.UpdateEventOutput{}, calendar.ErrEventNotFound
	}
	if input.Transportation != nil {
		if err := input.Transportation.Validate(); err != nil {
			return calendar.UpdateEventOutput{}, err
		}
	}

	lockSet := existing.Participants
	if input.Participants != nil {
		lockSet = unionParticipants(existing.Participants, *input.Participants)
	}

	var updated calendar.Event
	err = uc.atomicWithLocks(ctx, lockSet, func(ctx context.Context, tx repo.Repository, held []string) error {
		// Re-read inside the section so the check sees the committed state.
		current, err := tx.GetOneEvent(ctx, repo.GetOneEventOptions{ID: input.ID})
		if err != nil {
			uc.l.Errorf(ctx, "uc.UpdateEvent GetOneEvent: %v", err)
			return err
		}
		if current.ID == "" {
			return calendar.ErrEventNotFound
		}

		merged := applyUpdate(current, input)
		if err := requireLocks(held, unionParticipants(current.Participants, merged.Participants)); err != nil {
			return err
		}
		if err := merged.Validate(); err != nil {
			return err
		}

		if needsConflictCheck(current, merged, input) {
			if err := uc.findConflicts(ctx, tx, merged, merged.ID); err != nil {
				return err
			}
		}

		updated, err = tx.UpdateEvent(ctx, repo.UpdateEventOptions{
			ID:           merged.ID,
			Title:        merged.Title,
			Description:  merged.Description,
			StartTime:    merged.StartTime,
			EndTime:      merged.EndTime,
			Location:     merged.Location,
			Type:         merged.Type,
			Recurrence:   merged.Recurrence,
			Participants: merged.Participants,
			Reminders:    merged.Reminders,
			Status:       merged.Status,
			Metadata:     merged.Metadata,
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.UpdateEvent UpdateEvent: %v", err)
			return err
		}
		if updated.ID == "" {
			return calendar.ErrEventNotFound
		}

		if input.Transportation != nil {
			t, err := tx.UpsertTransportation(ctx, transportationOptions(updated.ID, *input.Transportation))
			if err != nil {
				uc.l.Errorf(ctx, "uc.UpdateEvent UpsertTransportation: %v", err)
				return err
			}
			updated.Transportation = &t
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, calendar.ErrScheduleConflict) && !errors.Is(err, calendar.ErrEventNotFound) && !errors.Is(err, calendar.ErrInvalidTimeRange) && !errors.Is(err, calendar.ErrInvalidPayload) {
			uc.l.Errorf(ctx, "uc.UpdateEvent Atomic: %v", err)
		}
		return calendar.UpdateEventOutput{}, err
	}

	if updated.Status == calendar.EventStatusCancelled {
		uc.retractEvent(ctx, updated)
		uc.evictEvent(ctx, updated.ID)
	} else {
		uc.pushEvent(ctx, updated)
		uc.cacheEvent(ctx, updated)
	}

	return calendar.UpdateEventOutput{Event: updated}, nil
}

// applyUpdate overlays the provided fields on the stored event.
func applyUpdate(ev calendar.Event, in calendar.UpdateEventInput) calendar.Event {
	if in.Title != nil {
		ev.Title = *in.Title
	}
	if in.Description != nil {
		ev.Description = *in.Description
	}
	if in.StartTime != nil {
		ev.StartTime = *in.StartTime
	}
	if in.EndTime != nil {
		ev.EndTime = *in.EndTime
	}
	if in.Location != nil {
		ev.Location = *in.Location
	}
	if in.Type != nil {
		ev.Type = *in.Type
	}
	if in.ClearRecurrence {
		ev.Recurrence = nil
	} else if in.Recurrence != nil {
		ev.Recurrence = in.Recurrence
	}
	if in.Participants != nil {
		ev.Participants = uniqueParticipants(*in.Participants)
	}
	if in.Reminders != nil {
		ev.Reminders = *in.Reminders
	}
	if in.Status != nil {
		ev.Status = *in.Status
	}
	if in.ClearMetadata {
		ev.Metadata = nil
	} else if in.Metadata != nil {
		ev.Metadata = in.Metadata
	}
	return ev
}

func needsConflictCheck(current, merged calendar.Event, in calendar.UpdateEventInput) bool {
	if merged.Status == calendar.EventStatusCancelled {
		return false
	}
	if current.Status == calendar.EventStatusCancelled {
		return true
	}
	return in.StartTime != nil || in.EndTime != nil || in.Participants != nil
}
