package usecase

import (
	"context"

	"familybridge/internal/calendar"
	"familybridge/internal/calendar/ics"
	repo "familybridge/internal/calendar/repository"
	"familybridge/internal/model"
)

// ExportEvents renders the matching events as an iCalendar document. Recurring events
// keep their RRULE instead of being expanded.
func (uc *implUseCase) ExportEvents(ctx context.Context, sc model.Scope, input calendar.ListEventsInput) (calendar.ExportEventsOutput, error) {
	if !input.StartDate.IsZero() && !input.EndDate.IsZero() && input.StartDate.After(input.EndDate) {
		return calendar.ExportEventsOutput{}, calendar.ErrInvalidTimeRange
	}

	events, err := uc.repo.ListEvents(ctx, repo.ListEventsOptions{
		StartDate:        input.StartDate,
		EndDate:          input.EndDate,
		Participants:     uniqueParticipants(input.Participants),
		Type:             input.Type,
		Status:           input.Status,
		IncludeRecurring: true,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ExportEvents ListEvents: %v", err)
		return calendar.ExportEventsOutput{}, err
	}

	data, err := ics.Encode(events)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ExportEvents Encode: %v", err)
		return calendar.ExportEventsOutput{}, err
	}
	return calendar.ExportEventsOutput{Data: data}, nil
}
