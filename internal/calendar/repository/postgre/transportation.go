package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"familybridge/internal/calendar"
	repo "familybridge/internal/calendar/repository"
)

const uniqueViolation = "23505"

// CreateTransportation inserts the transportation row for an event.
// Returns ErrDuplicate when the event already has one.
func (r *implRepository) CreateTransportation(ctx context.Context, opt repo.TransportationOptions) (calendar.Transportation, error) {
	query := fmt.Sprintf(`
		INSERT INTO transportation_coordinations (id, event_id, kind, provider, assigned_to, pickup_location,
			dropoff_location, pickup_time, dropoff_time, status, notes, metadata, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $13)
		RETURNING %s`, transportationColumns)

	args, err := transportationArgs(uuid.NewString(), opt)
	if err != nil {
		r.l.Errorf(ctx, "%s encode: %v", r.dsn("CreateTransportation"), err)
		return calendar.Transportation{}, repo.ErrFailedToInsert
	}

	t, err := scanTransportation(r.q.QueryRowContext(ctx, query, args...))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return calendar.Transportation{}, repo.ErrDuplicate
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTransportation"), err)
		return calendar.Transportation{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// UpsertTransportation creates or replaces the transportation row keyed by event.
func (r *implRepository) UpsertTransportation(ctx context.Context, opt repo.TransportationOptions) (calendar.Transportation, error) {
	query := fmt.Sprintf(`
		INSERT INTO transportation_coordinations (id, event_id, kind, provider, assigned_to, pickup_location,
			dropoff_location, pickup_time, dropoff_time, status, notes, metadata, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $13)
		ON CONFLICT (event_id) DO UPDATE SET
			kind = EXCLUDED.kind, provider = EXCLUDED.provider, assigned_to = EXCLUDED.assigned_to,
			pickup_location = EXCLUDED.pickup_location, dropoff_location = EXCLUDED.dropoff_location,
			pickup_time = EXCLUDED.pickup_time, dropoff_time = EXCLUDED.dropoff_time,
			status = EXCLUDED.status, notes = EXCLUDED.notes, metadata = EXCLUDED.metadata,
			updated_at = EXCLUDED.updated_at
		RETURNING %s`, transportationColumns)

	args, err := transportationArgs(uuid.NewString(), opt)
	if err != nil {
		r.l.Errorf(ctx, "%s encode: %v", r.dsn("UpsertTransportation"), err)
		return calendar.Transportation{}, repo.ErrFailedToUpdate
	}

	t, err := scanTransportation(r.q.QueryRowContext(ctx, query, args...))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertTransportation"), err)
		return calendar.Transportation{}, repo.ErrFailedToUpdate
	}
	return t, nil
}

// GetOneTransportation retrieves a transportation row by id or event id.
// Returns zero-value Transportation (ID == "") when not found.
func (r *implRepository) GetOneTransportation(ctx context.Context, opt repo.GetOneTransportationOptions) (calendar.Transportation, error) {
	mods, args, ok := buildTransportationKey(opt.ID, opt.EventID)
	if !ok {
		return calendar.Transportation{}, nil
	}

	query := fmt.Sprintf("SELECT %s FROM transportation_coordinations WHERE %s LIMIT 1", transportationColumns, mods)
	t, err := scanTransportation(r.q.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return calendar.Transportation{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTransportation"), err)
		return calendar.Transportation{}, repo.ErrFailedToGet
	}
	return t, nil
}

// UpdateTransportationStatus sets the status of a transportation row.
// Returns zero-value Transportation when no row matches.
func (r *implRepository) UpdateTransportationStatus(ctx context.Context, opt repo.UpdateTransportationStatusOptions) (calendar.Transportation, error) {
	mods, keyArgs, ok := buildTransportationKey(opt.ID, opt.EventID)
	if !ok {
		return calendar.Transportation{}, nil
	}

	// Key placeholders start at $1; status and timestamp follow them.
	n := len(keyArgs)
	query := fmt.Sprintf(
		"UPDATE transportation_coordinations SET status = $%d, updated_at = $%d WHERE %s RETURNING %s",
		n+1, n+2, mods, transportationColumns,
	)
	args := append(keyArgs, opt.Status, now())

	t, err := scanTransportation(r.q.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return calendar.Transportation{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTransportationStatus"), err)
		return calendar.Transportation{}, repo.ErrFailedToUpdate
	}
	return t, nil
}

// buildTransportationKey returns the WHERE clause for an id and/or event id lookup.
// ok is false when no usable key was given.
func buildTransportationKey(id, eventID string) (string, []any, bool) {
	var conditions []string
	var args []any
	idx := 1

	if id != "" {
		if _, err := uuid.Parse(id); err != nil {
			return "", nil, false
		}
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, id)
		idx++
	}
	if eventID != "" {
		if _, err := uuid.Parse(eventID); err != nil {
			return "", nil, false
		}
		conditions = append(conditions, fmt.Sprintf("event_id = $%d", idx))
		args = append(args, eventID)
	}
	if len(conditions) == 0 {
		return "", nil, false
	}
	return strings.Join(conditions, " AND "), args, true
}

func transportationArgs(id string, opt repo.TransportationOptions) ([]any, error) {
	pickup, err := encodeJSON(opt.PickupLocation, "{}")
	if err != nil {
		return nil, err
	}
	dropoff, err := encodeJSON(opt.DropoffLocation, "{}")
	if err != nil {
		return nil, err
	}
	meta, err := encodeJSON(opt.Metadata, "{}")
	if err != nil {
		return nil, err
	}
	return []any{
		id, opt.EventID, opt.Kind, opt.Provider, opt.AssignedTo, pickup,
		dropoff, opt.PickupTime, opt.DropoffTime, opt.Status, opt.Notes, meta, now(),
	}, nil
}
