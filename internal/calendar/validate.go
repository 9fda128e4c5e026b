package calendar

import "fmt"

func (t EventType) Valid() bool {
	switch t {
	case EventTypeAppointment, EventTypeMedication, EventTypeTask, EventTypeSocial, EventTypeOther:
		return true
	}
	return false
}

func (s EventStatus) Valid() bool {
	switch s {
	case EventStatusScheduled, EventStatusInProgress, EventStatusCompleted, EventStatusCancelled:
		return true
	}
	return false
}

func (k TransportKind) Valid() bool {
	switch k {
	case TransportKindPickup, TransportKindDropoff, TransportKindRoundTrip:
		return true
	}
	return false
}

func (p TransportProvider) Valid() bool {
	switch p {
	case TransportProviderFamily, TransportProviderService, TransportProviderSelf:
		return true
	}
	return false
}

func (s TransportStatus) Valid() bool {
	switch s {
	case TransportStatusPending, TransportStatusConfirmed, TransportStatusInProgress, TransportStatusCompleted, TransportStatusCancelled:
		return true
	}
	return false
}

func (v View) Valid() bool {
	switch v {
	case ViewDay, ViewWeek, ViewMonth, ViewList:
		return true
	}
	return false
}

var reminderKinds = map[string]bool{"email": true, "push": true, "sms": true}

// Validate checks the reminder kind and offset.
func (r Reminder) Validate() error {
	if !reminderKinds[r.Kind] {
		return fmt.Errorf("%w: unknown reminder kind %q", ErrInvalidPayload, r.Kind)
	}
	if r.OffsetMinutes < 0 {
		return fmt.Errorf("%w: reminder offset must not be negative", ErrInvalidPayload)
	}
	return nil
}

// Validate checks a transportation payload, filling defaults for provider and status.
func (in *TransportationInput) Validate() error {
	if !in.Kind.Valid() {
		return fmt.Errorf("%w: unknown transportation type %q", ErrInvalidPayload, in.Kind)
	}
	if in.Provider == "" {
		in.Provider = TransportProviderFamily
	}
	if !in.Provider.Valid() {
		return fmt.Errorf("%w: unknown transportation provider %q", ErrInvalidPayload, in.Provider)
	}
	if in.Status == "" {
		in.Status = TransportStatusPending
	}
	if !in.Status.Valid() {
		return fmt.Errorf("%w: unknown transportation status %q", ErrInvalidPayload, in.Status)
	}
	if in.PickupTime.IsZero() || in.DropoffTime.IsZero() {
		return fmt.Errorf("%w: pickup and dropoff times are required", ErrInvalidPayload)
	}
	return nil
}

// Validate checks the event payload as it would be stored, filling type and status defaults.
func (e *Event) Validate() error {
	if e.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidPayload)
	}
	if err := e.Range().Validate(); err != nil {
		return err
	}
	if e.Type == "" {
		e.Type = EventTypeOther
	}
	if !e.Type.Valid() {
		return fmt.Errorf("%w: unknown event type %q", ErrInvalidPayload, e.Type)
	}
	if e.Status == "" {
		e.Status = EventStatusScheduled
	}
	if !e.Status.Valid() {
		return fmt.Errorf("%w: unknown event status %q", ErrInvalidPayload, e.Status)
	}
	for _, r := range e.Reminders {
		if err := r.Validate(); err != nil {
			return err
		}
	}
	if e.Recurrence != nil {
		if _, err := e.Recurrence.Option(e.StartTime); err != nil {
			return err
		}
	}
	return nil
}
