package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"familybridge/internal/calendar"
	calRepo "familybridge/internal/calendar/repository"
	"familybridge/internal/calsync"
	repo "familybridge/internal/calsync/repository"
)

// SyncEvent pushes ev to the enabled connections of every participant.
// Cancelled events are removed instead.
func (uc *implUseCase) SyncEvent(ctx context.Context, ev calendar.Event) error {
	if ev.Status == calendar.EventStatusCancelled {
		return uc.RemoveEvent(ctx, ev)
	}
	return uc.fanOut(ctx, ev, func(c calsync.Client, conn *calsync.Connection) error {
		return c.Push(ctx, conn, ev)
	})
}

// RemoveEvent deletes the external copies of ev from every participant's connections.
func (uc *implUseCase) RemoveEvent(ctx context.Context, ev calendar.Event) error {
	return uc.fanOut(ctx, ev, func(c calsync.Client, conn *calsync.Connection) error {
		return c.Remove(ctx, conn, ev)
	})
}

func (uc *implUseCase) fanOut(ctx context.Context, ev calendar.Event, fn func(calsync.Client, *calsync.Connection) error) error {
	participants := calendar.NormalizeParticipants(ev.Participants)
	if len(participants) == 0 {
		return nil
	}

	enabled := true
	conns, err := uc.repo.List(ctx, repo.ListOptions{UserIDs: participants, SyncEnabled: &enabled})
	if err != nil {
		uc.l.Errorf(ctx, "calsync.usecase.fanOut List: %v", err)
		return err
	}

	var errs []error
	for i := range conns {
		conn := &conns[i]
		if !conn.Settings.Pushes() || !conn.Settings.Includes(ev.Type) {
			continue
		}
		client, ok := uc.clients[conn.Provider]
		if !ok {
			errs = append(errs, fmt.Errorf("connection %s (%s): %w", conn.ID, conn.Provider, calsync.ErrUnsupportedProvider))
			continue
		}

		before := conn.Token()
		if err := fn(client, conn); err != nil {
			errs = append(errs, fmt.Errorf("connection %s (%s): %w", conn.ID, conn.Provider, err))
		}
		uc.persistToken(ctx, conn, before)
	}
	return errors.Join(errs...)
}

// syncConnection pushes the user's upcoming events and stamps LastSync. It returns the number pushed.
func (uc *implUseCase) syncConnection(ctx context.Context, conn *calsync.Connection, now time.Time) (int, error) {
	if !conn.SyncEnabled || !conn.Settings.Pushes() {
		return 0, nil
	}
	client, ok := uc.clients[conn.Provider]
	if !ok {
		return 0, calsync.ErrUnsupportedProvider
	}

	window := calendar.TimeRange{Start: now, End: now.Add(uc.horizon)}
	events, err := uc.events.ListEvents(ctx, calRepo.ListEventsOptions{
		StartDate:        window.Start,
		EndDate:          window.End,
		Participants:     []string{conn.UserID},
		IncludeRecurring: true,
	})
	if err != nil {
		uc.l.Errorf(ctx, "calsync.usecase.syncConnection ListEvents: %v", err)
		return 0, err
	}

	before := conn.Token()
	pushed := 0
	var errs []error
	for _, ev := range events {
		if ev.Status == calendar.EventStatusCancelled || !conn.Settings.Includes(ev.Type) {
			continue
		}
		// Recurring events come back by series; a series that ended before the window has nothing to push.
		occs, err := ev.Occurrences(window)
		if err != nil {
			errs = append(errs, fmt.Errorf("event %s: %w", ev.ID, err))
			continue
		}
		if len(occs) == 0 {
			continue
		}
		if err := client.Push(ctx, conn, ev); err != nil {
			errs = append(errs, fmt.Errorf("event %s: %w", ev.ID, err))
			continue
		}
		pushed++
	}
	uc.persistToken(ctx, conn, before)

	if err := uc.repo.MarkSynced(ctx, repo.MarkSyncedOptions{ID: conn.ID, At: now}); err != nil {
		uc.l.Warnf(ctx, "calsync.usecase.syncConnection MarkSynced %s (non-fatal): %v", conn.ID, err)
	} else {
		at := now
		conn.LastSync = &at
	}
	return pushed, errors.Join(errs...)
}

// persistToken stores a token the client refreshed while talking to the provider.
func (uc *implUseCase) persistToken(ctx context.Context, conn *calsync.Connection, before calsync.Token) {
	after := conn.Token()
	if after.AccessToken == before.AccessToken && after.RefreshToken == before.RefreshToken && sameTime(after.Expiry, before.Expiry) {
		return
	}
	if err := uc.repo.UpdateToken(ctx, repo.UpdateTokenOptions{ID: conn.ID, Token: after}); err != nil {
		uc.l.Warnf(ctx, "calsync.usecase.persistToken %s (non-fatal): %v", conn.ID, err)
	}
}

func sameTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
