package gcalendar

import "time"

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	Location    string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // e.g. "Europe/Amsterdam"
	Recurrence  []string
	Reminders   []Reminder
	Status      string // confirmed, tentative or cancelled
	HtmlLink    string
	// Private holds private extended properties, used to tag events written by this service.
	Private map[string]string
}

// Reminder is a reminder override. Method is "email" or "popup".
type Reminder struct {
	Method  string
	Minutes int64
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}
