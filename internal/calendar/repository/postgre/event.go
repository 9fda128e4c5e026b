package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"familybridge/internal/calendar"
	repo "familybridge/internal/calendar/repository"
)

// CreateEvent inserts a new Event row and returns the created entity.
func (r *implRepository) CreateEvent(ctx context.Context, opt repo.CreateEventOptions) (calendar.Event, error) {
	const query = `
		INSERT INTO calendar_events (id, title, description, start_time, end_time, location, type,
			recurrence, participants, reminders, status, created_by, metadata, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $14)`

	location, recurrence, reminders, meta, err := encodeEventJSON(opt.Location, opt.Recurrence, opt.Reminders, opt.Metadata)
	if err != nil {
		r.l.Errorf(ctx, "%s encode: %v", r.dsn("CreateEvent"), err)
		return calendar.Event{}, repo.ErrFailedToInsert
	}

	ev := calendar.Event{
		ID:           uuid.NewString(),
		Title:        opt.Title,
		Description:  opt.Description,
		StartTime:    opt.StartTime,
		EndTime:      opt.EndTime,
		Location:     opt.Location,
		Type:         opt.Type,
		Recurrence:   opt.Recurrence,
		Participants: opt.Participants,
		Reminders:    opt.Reminders,
		Status:       opt.Status,
		CreatedBy:    opt.CreatedBy,
		Metadata:     opt.Metadata,
		CreatedAt:    now(),
	}
	ev.UpdatedAt = ev.CreatedAt
	if ev.Participants == nil {
		ev.Participants = []string{}
	}
	if ev.Reminders == nil {
		ev.Reminders = []calendar.Reminder{}
	}

	_, err = r.q.ExecContext(ctx, query,
		ev.ID, ev.Title, ev.Description, ev.StartTime, ev.EndTime, location, ev.Type,
		recurrence, pq.Array(ev.Participants), reminders, ev.Status, ev.CreatedBy, meta, ev.CreatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateEvent"), err)
		return calendar.Event{}, repo.ErrFailedToInsert
	}
	return ev, nil
}

// GetOneEvent retrieves a single Event with its transportation.
// Returns zero-value Event (ID == "") when not found.
func (r *implRepository) GetOneEvent(ctx context.Context, opt repo.GetOneEventOptions) (calendar.Event, error) {
	if _, err := uuid.Parse(opt.ID); err != nil {
		return calendar.Event{}, nil
	}

	query := fmt.Sprintf("SELECT %s %s WHERE e.id = $1 LIMIT 1", eventColumns, eventFrom)
	ev, err := scanEvent(r.q.QueryRowContext(ctx, query, opt.ID))
	if err == sql.ErrNoRows {
		return calendar.Event{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneEvent"), err)
		return calendar.Event{}, repo.ErrFailedToGet
	}
	return ev, nil
}

// ListEvents returns the events overlapping the window, ordered by start time.
func (r *implRepository) ListEvents(ctx context.Context, opt repo.ListEventsOptions) ([]calendar.Event, error) {
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s %s %s", eventColumns, eventFrom, mods)

	events, err := r.queryEvents(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEvents"), err)
		return nil, repo.ErrFailedToList
	}
	return events, nil
}

// UpdateEvent overwrites the mutable columns of an Event and returns the stored entity.
func (r *implRepository) UpdateEvent(ctx context.Context, opt repo.UpdateEventOptions) (calendar.Event, error) {
	const query = `
		UPDATE calendar_events
		SET title = $1, description = $2, start_time = $3, end_time = $4, location = $5, type = $6,
			recurrence = $7, participants = $8, reminders = $9, status = $10, metadata = $11, updated_at = $12
		WHERE id = $13`

	if _, err := uuid.Parse(opt.ID); err != nil {
		return calendar.Event{}, nil
	}

	location, recurrence, reminders, meta, err := encodeEventJSON(opt.Location, opt.Recurrence, opt.Reminders, opt.Metadata)
	if err != nil {
		r.l.Errorf(ctx, "%s encode: %v", r.dsn("UpdateEvent"), err)
		return calendar.Event{}, repo.ErrFailedToUpdate
	}
	participants := opt.Participants
	if participants == nil {
		participants = []string{}
	}

	res, err := r.q.ExecContext(ctx, query,
		opt.Title, opt.Description, opt.StartTime, opt.EndTime, location, opt.Type,
		recurrence, pq.Array(participants), reminders, opt.Status, meta, now(), opt.ID,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateEvent"), err)
		return calendar.Event{}, repo.ErrFailedToUpdate
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return calendar.Event{}, nil
	}
	return r.GetOneEvent(ctx, repo.GetOneEventOptions{ID: opt.ID})
}

// FindConflicts returns the non-cancelled events that overlap the closed range and
// share at least one participant. An empty participant set never conflicts.
func (r *implRepository) FindConflicts(ctx context.Context, opt repo.FindConflictsOptions) ([]calendar.Event, error) {
	if len(opt.Participants) == 0 {
		return nil, nil
	}

	mods, args := r.buildConflictQuery(opt)
	query := fmt.Sprintf("SELECT %s %s %s", eventColumns, eventFrom, mods)

	events, err := r.queryEvents(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("FindConflicts"), err)
		return nil, repo.ErrFailedToList
	}
	return events, nil
}

func (r *implRepository) queryEvents(ctx context.Context, query string, args ...any) ([]calendar.Event, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []calendar.Event
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

func encodeEventJSON(location calendar.Location, recurrence *calendar.Recurrence, reminders []calendar.Reminder, meta map[string]any) (loc, rec, rem, md []byte, err error) {
	if loc, err = encodeJSON(location, "{}"); err != nil {
		return
	}
	if rec, err = encodeRecurrence(recurrence); err != nil {
		return
	}
	if rem, err = encodeJSON(reminders, "[]"); err != nil {
		return
	}
	md, err = encodeJSON(meta, "{}")
	return
}
