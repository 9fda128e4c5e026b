package usecase

import (
	"context"
	"fmt"
	"sort"

	"familybridge/internal/calendar"
	repo "familybridge/internal/calendar/repository"
	"familybridge/internal/model"
)

// ListEvents returns the events overlapping the window, grouped according to View.
// With Expand, recurring events are unrolled into their occurrences inside the window.
func (uc *implUseCase) ListEvents(ctx context.Context, sc model.Scope, input calendar.ListEventsInput) (calendar.ListEventsOutput, error) {
	view := input.View
	if view == "" {
		view = calendar.ViewMonth
	}
	if !view.Valid() {
		return calendar.ListEventsOutput{}, fmt.Errorf("%w: unknown view %q", calendar.ErrInvalidPayload, view)
	}
	if !input.StartDate.IsZero() && !input.EndDate.IsZero() && input.StartDate.After(input.EndDate) {
		return calendar.ListEventsOutput{}, calendar.ErrInvalidTimeRange
	}
	if input.Expand && (input.StartDate.IsZero() || input.EndDate.IsZero()) {
		return calendar.ListEventsOutput{}, fmt.Errorf("%w: expand requires startDate and endDate", calendar.ErrInvalidPayload)
	}

	events, err := uc.repo.ListEvents(ctx, repo.ListEventsOptions{
		StartDate:        input.StartDate,
		EndDate:          input.EndDate,
		Participants:     uniqueParticipants(input.Participants),
		Type:             input.Type,
		Status:           input.Status,
		IncludeRecurring: input.Expand,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListEvents ListEvents: %v", err)
		return calendar.ListEventsOutput{}, err
	}

	occurrences, err := uc.occurrences(ctx, events, input)
	if err != nil {
		return calendar.ListEventsOutput{}, err
	}

	out := calendar.ListEventsOutput{
		View:        view,
		Events:      events,
		Occurrences: occurrences,
	}
	if view != calendar.ViewList {
		out.Groups = uc.group(occurrences, view)
	}
	return out, nil
}

func (uc *implUseCase) occurrences(ctx context.Context, events []calendar.Event, input calendar.ListEventsInput) ([]calendar.Occurrence, error) {
	if !input.Expand {
		out := make([]calendar.Occurrence, 0, len(events))
		for _, ev := range events {
			out = append(out, calendar.Occurrence{Event: ev, StartTime: ev.StartTime, EndTime: ev.EndTime})
		}
		return out, nil
	}

	window := calendar.TimeRange{Start: input.StartDate, End: input.EndDate}
	var out []calendar.Occurrence
	for _, ev := range events {
		occ, err := ev.Occurrences(window)
		if err != nil {
			// A stored rule that no longer parses falls back to the base instance.
			uc.l.Warnf(ctx, "uc.ListEvents Occurrences %s (non-fatal): %v", ev.ID, err)
			if ev.Range().Overlaps(window) {
				out = append(out, calendar.Occurrence{Event: ev, StartTime: ev.StartTime, EndTime: ev.EndTime})
			}
			continue
		}
		out = append(out, occ...)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

// group buckets occurrences by hour (day view), weekday with Sunday = 0 (week view)
// or day of month (month view), in the service timezone.
func (uc *implUseCase) group(occurrences []calendar.Occurrence, view calendar.View) map[int][]calendar.Occurrence {
	groups := make(map[int][]calendar.Occurrence)
	for _, o := range occurrences {
		t := o.StartTime.In(uc.loc)
		var key int
		switch view {
		case calendar.ViewDay:
			key = t.Hour()
		case calendar.ViewWeek:
			key = int(t.Weekday())
		default:
			key = t.Day()
		}
		groups[key] = append(groups[key], o)
	}
	return groups
}
