package usecase

import (
	"context"
	"errors"
	"fmt"

	"familybridge/internal/calendar"
	repo "familybridge/internal/calendar/repository"
	"familybridge/internal/model"
)

// CreateTransportation attaches transportation logistics to an existing event.
// Each event carries at most one transportation record.
func (uc *implUseCase) CreateTransportation(ctx context.Context, sc model.Scope, input calendar.CreateTransportationInput) (calendar.TransportationOutput, error) {
	if err := input.TransportationInput.Validate(); err != nil {
		return calendar.TransportationOutput{}, err
	}

	ev, err := uc.repo.GetOneEvent(ctx, repo.GetOneEventOptions{ID: input.EventID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateTransportation GetOneEvent: %v", err)
		return calendar.TransportationOutput{}, err
	}
	if ev.ID == "" {
		return calendar.TransportationOutput{}, calendar.ErrEventNotFound
	}
	if ev.Transportation != nil {
		return calendar.TransportationOutput{}, calendar.ErrTransportationExists
	}

	t, err := uc.repo.CreateTransportation(ctx, transportationOptions(ev.ID, input.TransportationInput))
	if errors.Is(err, repo.ErrDuplicate) {
		return calendar.TransportationOutput{}, calendar.ErrTransportationExists
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateTransportation CreateTransportation: %v", err)
		return calendar.TransportationOutput{}, err
	}

	uc.evictEvent(ctx, ev.ID)
	return calendar.TransportationOutput{Transportation: t}, nil
}

// UpdateTransportationStatus sets any known status. Transitions are not restricted.
func (uc *implUseCase) UpdateTransportationStatus(ctx context.Context, sc model.Scope, input calendar.UpdateTransportationStatusInput) (calendar.TransportationOutput, error) {
	if !input.Status.Valid() {
		return calendar.TransportationOutput{}, fmt.Errorf("%w: unknown transportation status %q", calendar.ErrInvalidPayload, input.Status)
	}

	t, err := uc.repo.UpdateTransportationStatus(ctx, repo.UpdateTransportationStatusOptions{
		ID:     input.ID,
		Status: input.Status,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateTransportationStatus UpdateTransportationStatus: %v", err)
		return calendar.TransportationOutput{}, err
	}
	if t.ID == "" {
		return calendar.TransportationOutput{}, calendar.ErrTransportationNotFound
	}

	uc.evictEvent(ctx, t.EventID)
	return calendar.TransportationOutput{Transportation: t}, nil
}
