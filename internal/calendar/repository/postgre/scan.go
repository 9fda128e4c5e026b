package postgre

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/lib/pq"

	"familybridge/internal/calendar"
)

const eventColumns = `e.id, e.title, e.description, e.start_time, e.end_time, e.location, e.type,
	e.recurrence, e.participants, e.reminders, e.status, e.created_by, e.metadata, e.created_at, e.updated_at,
	t.id, t.kind, t.provider, t.assigned_to, t.pickup_location, t.dropoff_location, t.pickup_time,
	t.dropoff_time, t.status, t.notes, t.metadata, t.created_at, t.updated_at`

const eventFrom = `FROM calendar_events e LEFT JOIN transportation_coordinations t ON t.event_id = e.id`

const transportationColumns = `id, event_id, kind, provider, assigned_to, pickup_location, dropoff_location,
	pickup_time, dropoff_time, status, notes, metadata, created_at, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

// scanEvent reads one row of eventColumns. The transportation half is optional (LEFT JOIN).
func scanEvent(s scanner) (calendar.Event, error) {
	var (
		ev                                    calendar.Event
		location, recurrence, reminders, meta []byte
		tID, tKind, tProvider, tAssigned      sql.NullString
		tStatus, tNotes                       sql.NullString
		tPickupLoc, tDropoffLoc, tMeta        []byte
		tPickup, tDropoff, tCreated, tUpdated sql.NullTime
	)
	err := s.Scan(
		&ev.ID, &ev.Title, &ev.Description, &ev.StartTime, &ev.EndTime, &location, &ev.Type,
		&recurrence, pq.Array(&ev.Participants), &reminders, &ev.Status, &ev.CreatedBy, &meta, &ev.CreatedAt, &ev.UpdatedAt,
		&tID, &tKind, &tProvider, &tAssigned, &tPickupLoc, &tDropoffLoc, &tPickup,
		&tDropoff, &tStatus, &tNotes, &tMeta, &tCreated, &tUpdated,
	)
	if err != nil {
		return calendar.Event{}, err
	}

	if err := decodeJSON(location, &ev.Location); err != nil {
		return calendar.Event{}, err
	}
	if len(recurrence) > 0 {
		ev.Recurrence = &calendar.Recurrence{}
		if err := decodeJSON(recurrence, ev.Recurrence); err != nil {
			return calendar.Event{}, err
		}
	}
	if err := decodeJSON(reminders, &ev.Reminders); err != nil {
		return calendar.Event{}, err
	}
	if err := decodeJSON(meta, &ev.Metadata); err != nil {
		return calendar.Event{}, err
	}
	if ev.Participants == nil {
		ev.Participants = []string{}
	}
	if ev.Reminders == nil {
		ev.Reminders = []calendar.Reminder{}
	}

	if tID.Valid {
		t := &calendar.Transportation{
			ID:          tID.String,
			EventID:     ev.ID,
			Kind:        calendar.TransportKind(tKind.String),
			Provider:    calendar.TransportProvider(tProvider.String),
			AssignedTo:  tAssigned.String,
			PickupTime:  tPickup.Time,
			DropoffTime: tDropoff.Time,
			Status:      calendar.TransportStatus(tStatus.String),
			Notes:       tNotes.String,
			CreatedAt:   tCreated.Time,
			UpdatedAt:   tUpdated.Time,
		}
		if err := decodeJSON(tPickupLoc, &t.PickupLocation); err != nil {
			return calendar.Event{}, err
		}
		if err := decodeJSON(tDropoffLoc, &t.DropoffLocation); err != nil {
			return calendar.Event{}, err
		}
		if err := decodeJSON(tMeta, &t.Metadata); err != nil {
			return calendar.Event{}, err
		}
		ev.Transportation = t
	}
	return ev, nil
}

func scanTransportation(s scanner) (calendar.Transportation, error) {
	var (
		t                     calendar.Transportation
		pickup, dropoff, meta []byte
	)
	err := s.Scan(
		&t.ID, &t.EventID, &t.Kind, &t.Provider, &t.AssignedTo, &pickup, &dropoff,
		&t.PickupTime, &t.DropoffTime, &t.Status, &t.Notes, &meta, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return calendar.Transportation{}, err
	}
	if err := decodeJSON(pickup, &t.PickupLocation); err != nil {
		return calendar.Transportation{}, err
	}
	if err := decodeJSON(dropoff, &t.DropoffLocation); err != nil {
		return calendar.Transportation{}, err
	}
	if err := decodeJSON(meta, &t.Metadata); err != nil {
		return calendar.Transportation{}, err
	}
	return t, nil
}

func decodeJSON(raw []byte, dst any) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dst)
}

// encodeJSON marshals v, substituting fallback when v encodes to null.
func encodeJSON(v any, fallback string) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if string(b) == "null" {
		return []byte(fallback), nil
	}
	return b, nil
}

// encodeRecurrence returns nil (SQL NULL) for a non-recurring event.
func encodeRecurrence(r *calendar.Recurrence) ([]byte, error) {
	if r == nil {
		return nil, nil
	}
	return json.Marshal(r)
}

func now() time.Time {
	return time.Now().UTC()
}
