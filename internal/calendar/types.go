package calendar

import "time"

// --- Enumerations ---

type EventType string

const (
	EventTypeAppointment EventType = "appointment"
	EventTypeMedication  EventType = "medication"
	EventTypeTask        EventType = "task"
	EventTypeSocial      EventType = "social"
	EventTypeOther       EventType = "other"
)

type EventStatus string

const (
	EventStatusScheduled  EventStatus = "scheduled"
	EventStatusInProgress EventStatus = "in-progress"
	EventStatusCompleted  EventStatus = "completed"
	EventStatusCancelled  EventStatus = "cancelled"
)

type TransportKind string

const (
	TransportKindPickup    TransportKind = "pickup"
	TransportKindDropoff   TransportKind = "dropoff"
	TransportKindRoundTrip TransportKind = "round-trip"
)

type TransportProvider string

const (
	TransportProviderFamily  TransportProvider = "family"
	TransportProviderService TransportProvider = "service"
	TransportProviderSelf    TransportProvider = "self"
)

type TransportStatus string

const (
	TransportStatusPending    TransportStatus = "pending"
	TransportStatusConfirmed  TransportStatus = "confirmed"
	TransportStatusInProgress TransportStatus = "in-progress"
	TransportStatusCompleted  TransportStatus = "completed"
	TransportStatusCancelled  TransportStatus = "cancelled"
)

type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// View selects how ListEvents groups its result.
type View string

const (
	ViewDay   View = "day"
	ViewWeek  View = "week"
	ViewMonth View = "month"
	ViewList  View = "list"
)

// --- Domain Model ---

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Location struct {
	Address     string       `json:"address,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// Recurrence describes a repeating schedule. ByDay holds two-letter weekday codes (MO..SU).
type Recurrence struct {
	Frequency Frequency  `json:"frequency"`
	Interval  int        `json:"interval,omitempty"`
	Until     *time.Time `json:"until,omitempty"`
	ByDay     []string   `json:"byDay,omitempty"`
}

type Reminder struct {
	Kind          string `json:"kind"`
	OffsetMinutes int    `json:"offsetMinutes"`
}

// Event is a calendar entry. Participants are the unit of double-booking detection.
type Event struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	Description    string          `json:"description,omitempty"`
	StartTime      time.Time       `json:"startTime"`
	EndTime        time.Time       `json:"endTime"`
	Location       Location        `json:"location"`
	Type           EventType       `json:"type"`
	Recurrence     *Recurrence     `json:"recurrence,omitempty"`
	Participants   []string        `json:"participants"`
	Reminders      []Reminder      `json:"reminders"`
	Status         EventStatus     `json:"status"`
	CreatedBy      string          `json:"createdBy"`
	Metadata       map[string]any  `json:"metadata,omitempty"`
	Transportation *Transportation `json:"transportation,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// Transportation is the pickup/dropoff logistics attached one-to-one to an Event.
type Transportation struct {
	ID              string            `json:"id"`
	EventID         string            `json:"eventId"`
	Kind            TransportKind     `json:"type"`
	Provider        TransportProvider `json:"provider"`
	AssignedTo      string            `json:"assignedTo,omitempty"`
	PickupLocation  Location          `json:"pickupLocation"`
	DropoffLocation Location          `json:"dropoffLocation"`
	PickupTime      time.Time         `json:"pickupTime"`
	DropoffTime     time.Time         `json:"dropoffTime"`
	Status          TransportStatus   `json:"status"`
	Notes           string            `json:"notes,omitempty"`
	Metadata        map[string]any    `json:"metadata,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

// Conflict is the identity of an existing event that collides with a proposal.
type Conflict struct {
	ID        string
	Title     string
	StartTime time.Time
	EndTime   time.Time
}

// Occurrence is one concrete instance of a (possibly recurring) event.
type Occurrence struct {
	Event     Event
	StartTime time.Time
	EndTime   time.Time
}

// --- UseCase Inputs ---

type TransportationInput struct {
	Kind            TransportKind
	Provider        TransportProvider
	AssignedTo      string
	PickupLocation  Location
	DropoffLocation Location
	PickupTime      time.Time
	DropoffTime     time.Time
	Status          TransportStatus
	Notes           string
	Metadata        map[string]any
}

type CreateEventInput struct {
	Title          string
	Description    string
	StartTime      time.Time
	EndTime        time.Time
	Location       Location
	Type           EventType
	Recurrence     *Recurrence
	Participants   []string
	Reminders      []Reminder
	Metadata       map[string]any
	Transportation *TransportationInput
}

// UpdateEventInput is a partial update: nil fields keep their stored value.
// ClearRecurrence and ClearMetadata drop the stored value instead.
type UpdateEventInput struct {
	ID             string
	Title          *string
	Description    *string
	StartTime      *time.Time
	EndTime        *time.Time
	Location       *Location
	Type           *EventType
	Recurrence     *Recurrence
	Participants   *[]string
	Reminders      *[]Reminder
	Status         *EventStatus
	Metadata       map[string]any
	Transportation *TransportationInput

	ClearRecurrence bool
	ClearMetadata   bool
}

type ListEventsInput struct {
	StartDate    time.Time
	EndDate      time.Time
	Participants []string
	Type         EventType
	Status       EventStatus
	View         View
	Expand       bool
}

type CheckConflictsInput struct {
	StartTime    time.Time
	EndTime      time.Time
	Participants []string
	ExcludeID    string
}

type CreateTransportationInput struct {
	EventID string
	TransportationInput
}

type UpdateTransportationStatusInput struct {
	ID     string
	Status TransportStatus
}

// --- UseCase Outputs ---

type CreateEventOutput struct {
	Event Event
}

type UpdateEventOutput struct {
	Event Event
}

type DetailEventOutput struct {
	Event Event
}

type CancelEventOutput struct {
	Event Event
}

// ListEventsOutput carries the flat list plus the grouping requested by View.
// Groups keys are hour (day view), weekday 0-6 (week view) or day of month (month view).
type ListEventsOutput struct {
	View        View
	Events      []Event
	Occurrences []Occurrence
	Groups      map[int][]Occurrence
}

type CheckConflictsOutput struct {
	Conflicts []Conflict
}

type ExportEventsOutput struct {
	Data []byte
}

type TransportationOutput struct {
	Transportation Transportation
}
