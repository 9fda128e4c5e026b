package usecase

import (
	"context"

	"familybridge/internal/calendar"
	repo "familybridge/internal/calendar/repository"
	"familybridge/internal/model"
)

// CheckConflicts runs the detector without writing anything.
func (uc *implUseCase) CheckConflicts(ctx context.Context, sc model.Scope, input calendar.CheckConflictsInput) (calendar.CheckConflictsOutput, error) {
	r := calendar.TimeRange{Start: input.StartTime, End: input.EndTime}
	if err := r.Validate(); err != nil {
		return calendar.CheckConflictsOutput{}, err
	}

	events, err := uc.repo.FindConflicts(ctx, repo.FindConflictsOptions{
		Range:        r,
		Participants: uniqueParticipants(input.Participants),
		ExcludeID:    input.ExcludeID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CheckConflicts FindConflicts: %v", err)
		return calendar.CheckConflictsOutput{}, err
	}

	return calendar.CheckConflictsOutput{Conflicts: calendar.NewConflictError(events).Conflicts}, nil
}
