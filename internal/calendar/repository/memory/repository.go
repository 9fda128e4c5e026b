package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"familybridge/internal/calendar"
	repo "familybridge/internal/calendar/repository"
)

// Atomic serialises fn against every other critical section of the store.
func (r *implRepository) Atomic(ctx context.Context, participants []string, fn func(ctx context.Context, txRepo repo.Repository) error) error {
	if r.inSection {
		return fn(ctx, r)
	}
	r.s.section.Lock()
	defer r.s.section.Unlock()
	return fn(ctx, &implRepository{s: r.s, inSection: true, l: r.l})
}

func (r *implRepository) CreateEvent(ctx context.Context, opt repo.CreateEventOptions) (calendar.Event, error) {
	ts := time.Now().UTC()
	ev := calendar.Event{
		ID:           uuid.NewString(),
		Title:        opt.Title,
		Description:  opt.Description,
		StartTime:    opt.StartTime,
		EndTime:      opt.EndTime,
		Location:     opt.Location,
		Type:         opt.Type,
		Recurrence:   cloneRecurrence(opt.Recurrence),
		Participants: cloneStrings(opt.Participants),
		Reminders:    cloneReminders(opt.Reminders),
		Status:       opt.Status,
		CreatedBy:    opt.CreatedBy,
		Metadata:     opt.Metadata,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}

	r.s.mu.Lock()
	r.s.events[ev.ID] = ev
	r.s.mu.Unlock()
	return ev, nil
}

// GetOneEvent returns zero-value Event (ID == "") when not found.
func (r *implRepository) GetOneEvent(ctx context.Context, opt repo.GetOneEventOptions) (calendar.Event, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	ev, ok := r.s.events[opt.ID]
	if !ok {
		return calendar.Event{}, nil
	}
	return r.withTransportation(ev), nil
}

func (r *implRepository) ListEvents(ctx context.Context, opt repo.ListEventsOptions) ([]calendar.Event, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []calendar.Event
	for _, ev := range r.s.events {
		if !matchesList(ev, opt) {
			continue
		}
		out = append(out, r.withTransportation(ev))
	}
	sortEvents(out)
	if opt.Limit > 0 && len(out) > opt.Limit {
		out = out[:opt.Limit]
	}
	return out, nil
}

// UpdateEvent returns zero-value Event when the id is unknown.
func (r *implRepository) UpdateEvent(ctx context.Context, opt repo.UpdateEventOptions) (calendar.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	ev, ok := r.s.events[opt.ID]
	if !ok {
		return calendar.Event{}, nil
	}
	ev.Title = opt.Title
	ev.Description = opt.Description
	ev.StartTime = opt.StartTime
	ev.EndTime = opt.EndTime
	ev.Location = opt.Location
	ev.Type = opt.Type
	ev.Recurrence = cloneRecurrence(opt.Recurrence)
	ev.Participants = cloneStrings(opt.Participants)
	ev.Reminders = cloneReminders(opt.Reminders)
	ev.Status = opt.Status
	ev.Metadata = opt.Metadata
	ev.UpdatedAt = time.Now().UTC()
	r.s.events[ev.ID] = ev
	return r.withTransportation(ev), nil
}

func (r *implRepository) FindConflicts(ctx context.Context, opt repo.FindConflictsOptions) ([]calendar.Event, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []calendar.Event
	for _, ev := range r.s.events {
		if ev.ConflictsWith(opt.Range, opt.Participants, opt.ExcludeID) {
			out = append(out, r.withTransportation(ev))
		}
	}
	sortEvents(out)
	return out, nil
}

// CreateTransportation returns ErrDuplicate when the event already has a row.
func (r *implRepository) CreateTransportation(ctx context.Context, opt repo.TransportationOptions) (calendar.Transportation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.transportation[opt.EventID]; ok {
		return calendar.Transportation{}, repo.ErrDuplicate
	}
	t := newTransportation(uuid.NewString(), opt)
	r.s.transportation[opt.EventID] = t
	return t, nil
}

func (r *implRepository) UpsertTransportation(ctx context.Context, opt repo.TransportationOptions) (calendar.Transportation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	id := uuid.NewString()
	created := time.Time{}
	if existing, ok := r.s.transportation[opt.EventID]; ok {
		id = existing.ID
		created = existing.CreatedAt
	}
	t := newTransportation(id, opt)
	if !created.IsZero() {
		t.CreatedAt = created
	}
	r.s.transportation[opt.EventID] = t
	return t, nil
}

// GetOneTransportation returns zero-value Transportation when nothing matches.
func (r *implRepository) GetOneTransportation(ctx context.Context, opt repo.GetOneTransportationOptions) (calendar.Transportation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	eventID, ok := r.findTransportation(opt.ID, opt.EventID)
	if !ok {
		return calendar.Transportation{}, nil
	}
	return r.s.transportation[eventID], nil
}

func (r *implRepository) UpdateTransportationStatus(ctx context.Context, opt repo.UpdateTransportationStatusOptions) (calendar.Transportation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	eventID, ok := r.findTransportation(opt.ID, opt.EventID)
	if !ok {
		return calendar.Transportation{}, nil
	}
	t := r.s.transportation[eventID]
	t.Status = opt.Status
	t.UpdatedAt = time.Now().UTC()
	r.s.transportation[eventID] = t
	return t, nil
}

// findTransportation resolves the event id key. Caller holds r.s.mu.
func (r *implRepository) findTransportation(id, eventID string) (string, bool) {
	if eventID != "" {
		t, ok := r.s.transportation[eventID]
		if !ok || (id != "" && t.ID != id) {
			return "", false
		}
		return eventID, true
	}
	if id == "" {
		return "", false
	}
	for k, t := range r.s.transportation {
		if t.ID == id {
			return k, true
		}
	}
	return "", false
}

// withTransportation attaches the event's transportation row. Caller holds r.s.mu.
func (r *implRepository) withTransportation(ev calendar.Event) calendar.Event {
	if t, ok := r.s.transportation[ev.ID]; ok {
		ev.Transportation = &t
	}
	ev.Participants = cloneStrings(ev.Participants)
	ev.Reminders = cloneReminders(ev.Reminders)
	ev.Recurrence = cloneRecurrence(ev.Recurrence)
	return ev
}

func matchesList(ev calendar.Event, opt repo.ListEventsOptions) bool {
	if !opt.EndDate.IsZero() && ev.StartTime.After(opt.EndDate) {
		return false
	}
	if !opt.StartDate.IsZero() && ev.EndTime.Before(opt.StartDate) {
		if !opt.IncludeRecurring || ev.Recurrence == nil {
			return false
		}
	}
	if len(opt.Participants) > 0 && !calendar.SharesParticipant(ev.Participants, opt.Participants) {
		return false
	}
	if opt.Type != "" && ev.Type != opt.Type {
		return false
	}
	if opt.Status != "" && ev.Status != opt.Status {
		return false
	}
	return true
}

func newTransportation(id string, opt repo.TransportationOptions) calendar.Transportation {
	ts := time.Now().UTC()
	return calendar.Transportation{
		ID:              id,
		EventID:         opt.EventID,
		Kind:            opt.Kind,
		Provider:        opt.Provider,
		AssignedTo:      opt.AssignedTo,
		PickupLocation:  opt.PickupLocation,
		DropoffLocation: opt.DropoffLocation,
		PickupTime:      opt.PickupTime,
		DropoffTime:     opt.DropoffTime,
		Status:          opt.Status,
		Notes:           opt.Notes,
		Metadata:        opt.Metadata,
		CreatedAt:       ts,
		UpdatedAt:       ts,
	}
}

func sortEvents(events []calendar.Event) {
	sort.Slice(events, func(i, j int) bool {
		if events[i].StartTime.Equal(events[j].StartTime) {
			return events[i].ID < events[j].ID
		}
		return events[i].StartTime.Before(events[j].StartTime)
	})
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func cloneReminders(in []calendar.Reminder) []calendar.Reminder {
	out := make([]calendar.Reminder, len(in))
	copy(out, in)
	return out
}

func cloneRecurrence(in *calendar.Recurrence) *calendar.Recurrence {
	if in == nil {
		return nil
	}
	out := *in
	out.ByDay = cloneStrings(in.ByDay)
	if in.Until != nil {
		u := *in.Until
		out.Until = &u
	}
	return &out
}
