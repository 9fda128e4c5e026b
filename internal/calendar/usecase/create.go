package usecase

import (
	"context"
	"errors"

	"familybridge/internal/calendar"
	repo "familybridge/internal/calendar/repository"
	"familybridge/internal/model"
)

// CreateEvent persists a new event unless it would double-book one of its participants.
// The conflict check and the insert run in one critical section of the store.
func (uc *implUseCase) CreateEvent(ctx context.Context, sc model.Scope, input calendar.CreateEventInput) (calendar.CreateEventOutput, error) {
	ev := calendar.Event{
		Title:        input.Title,
		Description:  input.Description,
		StartTime:    input.StartTime,
		EndTime:      input.EndTime,
		Location:     input.Location,
		Type:         input.Type,
		Recurrence:   input.Recurrence,
		Participants: uniqueParticipants(input.Participants),
		Reminders:    input.Reminders,
		Status:       calendar.EventStatusScheduled,
		CreatedBy:    sc.UserID,
		Metadata:     input.Metadata,
	}
	if err := ev.Validate(); err != nil {
		return calendar.CreateEventOutput{}, err
	}
	if input.Transportation != nil {
		if err := input.Transportation.Validate(); err != nil {
			return calendar.CreateEventOutput{}, err
		}
	}

	var created calendar.Event
	err := uc.repo.Atomic(ctx, ev.Participants, func(ctx context.Context, tx repo.Repository) error {
		if err := uc.findConflicts(ctx, tx, ev, ""); err != nil {
			return err
		}

		var err error
		created, err = tx.CreateEvent(ctx, repo.CreateEventOptions{
			Title:        ev.Title,
			Description:  ev.Description,
			StartTime:    ev.StartTime,
			EndTime:      ev.EndTime,
			Location:     ev.Location,
			Type:         ev.Type,
			Recurrence:   ev.Recurrence,
			Participants: ev.Participants,
			Reminders:    ev.Reminders,
			Status:       ev.Status,
			CreatedBy:    ev.CreatedBy,
			Metadata:     ev.Metadata,
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.CreateEvent CreateEvent: %v", err)
			return err
		}

		if input.Transportation != nil {
			t, err := tx.CreateTransportation(ctx, transportationOptions(created.ID, *input.Transportation))
			if err != nil {
				uc.l.Errorf(ctx, "uc.CreateEvent CreateTransportation: %v", err)
				return err
			}
			created.Transportation = &t
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, calendar.ErrScheduleConflict) {
			uc.l.Errorf(ctx, "uc.CreateEvent Atomic: %v", err)
		}
		return calendar.CreateEventOutput{}, err
	}

	uc.pushEvent(ctx, created)
	uc.cacheEvent(ctx, created)

	return calendar.CreateEventOutput{Event: created}, nil
}
