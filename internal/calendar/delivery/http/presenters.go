package http

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"familybridge/internal/calendar"
)

var errMissingRange = errors.New("startTime and endTime are required")

// --- Request DTOs ---

type coordinatesReq struct {
	Lat float64 `json:"lat" binding:"gte=-90,lte=90"`
	Lng float64 `json:"lng" binding:"gte=-180,lte=180"`
}

type locationReq struct {
	Address     string          `json:"address"     binding:"max=500"`
	Coordinates *coordinatesReq `json:"coordinates"`
}

func (r *locationReq) toLocation() calendar.Location {
	if r == nil {
		return calendar.Location{}
	}
	loc := calendar.Location{Address: r.Address}
	if r.Coordinates != nil {
		loc.Coordinates = &calendar.Coordinates{Lat: r.Coordinates.Lat, Lng: r.Coordinates.Lng}
	}
	return loc
}

type recurrenceReq struct {
	Frequency string     `json:"frequency" binding:"required,oneof=daily weekly monthly yearly"`
	Interval  int        `json:"interval"  binding:"gte=0"`
	Until     *time.Time `json:"until"`
	ByDay     []string   `json:"byDay"`
}

func (r *recurrenceReq) toRecurrence() *calendar.Recurrence {
	if r == nil {
		return nil
	}
	return &calendar.Recurrence{
		Frequency: calendar.Frequency(r.Frequency),
		Interval:  r.Interval,
		Until:     r.Until,
		ByDay:     r.ByDay,
	}
}

type reminderReq struct {
	Type          string `json:"type"          binding:"required"`
	MinutesBefore int    `json:"minutesBefore" binding:"gte=0"`
}

func toReminders(in []reminderReq) []calendar.Reminder {
	out := make([]calendar.Reminder, 0, len(in))
	for _, r := range in {
		out = append(out, calendar.Reminder{Kind: r.Type, OffsetMinutes: r.MinutesBefore})
	}
	return out
}

type transportationReq struct {
	Type            string         `json:"type"            binding:"required"`
	Provider        string         `json:"provider"`
	AssignedTo      string         `json:"assignedTo"`
	PickupLocation  *locationReq   `json:"pickupLocation"`
	DropoffLocation *locationReq   `json:"dropoffLocation"`
	PickupTime      time.Time      `json:"pickupTime"      binding:"required"`
	DropoffTime     time.Time      `json:"dropoffTime"     binding:"required"`
	Status          string         `json:"status"`
	Notes           string         `json:"notes"           binding:"max=2000"`
	Metadata        map[string]any `json:"metadata"`
}

func (r *transportationReq) toInput() *calendar.TransportationInput {
	if r == nil {
		return nil
	}
	return &calendar.TransportationInput{
		Kind:            calendar.TransportKind(r.Type),
		Provider:        calendar.TransportProvider(r.Provider),
		AssignedTo:      r.AssignedTo,
		PickupLocation:  r.PickupLocation.toLocation(),
		DropoffLocation: r.DropoffLocation.toLocation(),
		PickupTime:      r.PickupTime,
		DropoffTime:     r.DropoffTime,
		Status:          calendar.TransportStatus(r.Status),
		Notes:           r.Notes,
		Metadata:        r.Metadata,
	}
}

// ---

type createReq struct {
	Title          string             `json:"title"       binding:"required,min=1,max=255"`
	Description    string             `json:"description" binding:"max=5000"`
	StartTime      time.Time          `json:"startTime"   binding:"required"`
	EndTime        time.Time          `json:"endTime"     binding:"required"`
	Location       *locationReq       `json:"location"`
	Type           string             `json:"type"`
	Recurrence     *recurrenceReq     `json:"recurrence"`
	Participants   []string           `json:"participants"`
	Reminders      []reminderReq      `json:"reminders"`
	Metadata       map[string]any     `json:"metadata"`
	Transportation *transportationReq `json:"transportation"`
}

func (r createReq) validate() error {
	if r.EndTime.Before(r.StartTime) {
		return calendar.ErrInvalidTimeRange
	}
	return nil
}

func (r createReq) toInput() calendar.CreateEventInput {
	return calendar.CreateEventInput{
		Title:          r.Title,
		Description:    r.Description,
		StartTime:      r.StartTime,
		EndTime:        r.EndTime,
		Location:       r.Location.toLocation(),
		Type:           calendar.EventType(r.Type),
		Recurrence:     r.Recurrence.toRecurrence(),
		Participants:   r.Participants,
		Reminders:      toReminders(r.Reminders),
		Metadata:       r.Metadata,
		Transportation: r.Transportation.toInput(),
	}
}

// ---

// nullable tells an absent field (Set false) from an explicit null (Set true, Value nil).
type nullable[T any] struct {
	Set   bool
	Value *T
}

func (n *nullable[T]) UnmarshalJSON(b []byte) error {
	n.Set = true
	if string(b) == "null" {
		n.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

func (n nullable[T]) cleared() bool { return n.Set && n.Value == nil }

type updateReq struct {
	ID             string                   `json:"-"` // populated from URI param
	Title          *string                  `json:"title"       binding:"omitempty,min=1,max=255"`
	Description    *string                  `json:"description" binding:"omitempty,max=5000"`
	StartTime      *time.Time               `json:"startTime"`
	EndTime        *time.Time               `json:"endTime"`
	Location       *locationReq             `json:"location"`
	Type           *string                  `json:"type"`
	Recurrence     nullable[recurrenceReq]  `json:"recurrence"` // null turns a series into a one-off
	Participants   *[]string                `json:"participants"`
	Reminders      *[]reminderReq           `json:"reminders"`
	Status         *string                  `json:"status"`
	Metadata       nullable[map[string]any] `json:"metadata"`
	Transportation *transportationReq       `json:"transportation"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput() calendar.UpdateEventInput {
	in := calendar.UpdateEventInput{
		ID:              r.ID,
		Title:           r.Title,
		Description:     r.Description,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		Recurrence:      r.Recurrence.Value.toRecurrence(),
		Participants:    r.Participants,
		Transportation:  r.Transportation.toInput(),
		ClearRecurrence: r.Recurrence.cleared(),
		ClearMetadata:   r.Metadata.cleared(),
	}
	if r.Metadata.Value != nil {
		in.Metadata = *r.Metadata.Value
	}
	if r.Location != nil {
		loc := r.Location.toLocation()
		in.Location = &loc
	}
	if r.Type != nil {
		t := calendar.EventType(*r.Type)
		in.Type = &t
	}
	if r.Reminders != nil {
		rem := toReminders(*r.Reminders)
		in.Reminders = &rem
	}
	if r.Status != nil {
		s := calendar.EventStatus(*r.Status)
		in.Status = &s
	}
	return in
}

// ---

type listReq struct {
	StartDate    time.Time `form:"startDate"    time_format:"2006-01-02T15:04:05Z07:00"`
	EndDate      time.Time `form:"endDate"      time_format:"2006-01-02T15:04:05Z07:00"`
	Participants []string  `form:"participants"`
	Type         string    `form:"type"`
	Status       string    `form:"status"`
	View         string    `form:"view"`
	Expand       bool      `form:"expand"`
}

func (r listReq) validate() error {
	if !r.StartDate.IsZero() && !r.EndDate.IsZero() && r.StartDate.After(r.EndDate) {
		return calendar.ErrInvalidTimeRange
	}
	return nil
}

func (r listReq) toInput() calendar.ListEventsInput {
	return calendar.ListEventsInput{
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		Participants: splitList(r.Participants),
		Type:         calendar.EventType(r.Type),
		Status:       calendar.EventStatus(r.Status),
		View:         calendar.View(r.View),
		Expand:       r.Expand,
	}
}

// ---

type conflictsReq struct {
	StartTime    time.Time `form:"startTime"    time_format:"2006-01-02T15:04:05Z07:00"`
	EndTime      time.Time `form:"endTime"      time_format:"2006-01-02T15:04:05Z07:00"`
	Participants []string  `form:"participants"`
	ExcludeID    string    `form:"excludeId"`
}

func (r conflictsReq) validate() error {
	if r.StartTime.IsZero() || r.EndTime.IsZero() {
		return errMissingRange
	}
	return nil
}

func (r conflictsReq) toInput() calendar.CheckConflictsInput {
	return calendar.CheckConflictsInput{
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		Participants: splitList(r.Participants),
		ExcludeID:    r.ExcludeID,
	}
}

// ---

type transportationStatusReq struct {
	ID     string `json:"-"`
	Status string `json:"status" binding:"required,oneof=pending confirmed in-progress completed cancelled"`
}

func (r transportationStatusReq) toInput() calendar.UpdateTransportationStatusInput {
	return calendar.UpdateTransportationStatusInput{ID: r.ID, Status: calendar.TransportStatus(r.Status)}
}

// splitList accepts both repeated query keys and comma-separated values.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, p := range strings.Split(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

// --- Response DTOs ---

type coordinatesResp struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type locationResp struct {
	Address     string           `json:"address,omitempty"`
	Coordinates *coordinatesResp `json:"coordinates,omitempty"`
}

func newLocationResp(l calendar.Location) locationResp {
	resp := locationResp{Address: l.Address}
	if l.Coordinates != nil {
		resp.Coordinates = &coordinatesResp{Lat: l.Coordinates.Lat, Lng: l.Coordinates.Lng}
	}
	return resp
}

type recurrenceResp struct {
	Frequency string     `json:"frequency"`
	Interval  int        `json:"interval,omitempty"`
	Until     *time.Time `json:"until,omitempty"`
	ByDay     []string   `json:"byDay,omitempty"`
}

type reminderResp struct {
	Type          string `json:"type"`
	MinutesBefore int    `json:"minutesBefore"`
}

type transportationResp struct {
	ID              string         `json:"id"`
	EventID         string         `json:"eventId"`
	Type            string         `json:"type"`
	Provider        string         `json:"provider"`
	AssignedTo      string         `json:"assignedTo,omitempty"`
	PickupLocation  locationResp   `json:"pickupLocation"`
	DropoffLocation locationResp   `json:"dropoffLocation"`
	PickupTime      time.Time      `json:"pickupTime"`
	DropoffTime     time.Time      `json:"dropoffTime"`
	Status          string         `json:"status"`
	Notes           string         `json:"notes,omitempty"`
	Metadata        map[string]any `json:"metadata,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

func newTransportationResp(t calendar.Transportation) transportationResp {
	return transportationResp{
		ID:              t.ID,
		EventID:         t.EventID,
		Type:            string(t.Kind),
		Provider:        string(t.Provider),
		AssignedTo:      t.AssignedTo,
		PickupLocation:  newLocationResp(t.PickupLocation),
		DropoffLocation: newLocationResp(t.DropoffLocation),
		PickupTime:      t.PickupTime,
		DropoffTime:     t.DropoffTime,
		Status:          string(t.Status),
		Notes:           t.Notes,
		Metadata:        t.Metadata,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

type eventResp struct {
	ID             string              `json:"id"`
	Title          string              `json:"title"`
	Description    string              `json:"description,omitempty"`
	StartTime      time.Time           `json:"startTime"`
	EndTime        time.Time           `json:"endTime"`
	Location       locationResp        `json:"location"`
	Type           string              `json:"type"`
	Recurrence     *recurrenceResp     `json:"recurrence,omitempty"`
	Participants   []string            `json:"participants"`
	Reminders      []reminderResp      `json:"reminders"`
	Status         string              `json:"status"`
	CreatedBy      string              `json:"createdBy"`
	Metadata       map[string]any      `json:"metadata,omitempty"`
	Transportation *transportationResp `json:"transportation,omitempty"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}

func newEventResp(ev calendar.Event) eventResp {
	resp := eventResp{
		ID:           ev.ID,
		Title:        ev.Title,
		Description:  ev.Description,
		StartTime:    ev.StartTime,
		EndTime:      ev.EndTime,
		Location:     newLocationResp(ev.Location),
		Type:         string(ev.Type),
		Participants: ev.Participants,
		Reminders:    make([]reminderResp, 0, len(ev.Reminders)),
		Status:       string(ev.Status),
		CreatedBy:    ev.CreatedBy,
		Metadata:     ev.Metadata,
		CreatedAt:    ev.CreatedAt,
		UpdatedAt:    ev.UpdatedAt,
	}
	if resp.Participants == nil {
		resp.Participants = []string{}
	}
	if r := ev.Recurrence; r != nil {
		resp.Recurrence = &recurrenceResp{Frequency: string(r.Frequency), Interval: r.Interval, Until: r.Until, ByDay: r.ByDay}
	}
	for _, r := range ev.Reminders {
		resp.Reminders = append(resp.Reminders, reminderResp{Type: r.Kind, MinutesBefore: r.OffsetMinutes})
	}
	if ev.Transportation != nil {
		t := newTransportationResp(*ev.Transportation)
		resp.Transportation = &t
	}
	return resp
}

type occurrenceResp struct {
	EventID      string    `json:"eventId"`
	Title        string    `json:"title"`
	Type         string    `json:"type"`
	Status       string    `json:"status"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
	Participants []string  `json:"participants"`
}

func newOccurrenceResp(o calendar.Occurrence) occurrenceResp {
	return occurrenceResp{
		EventID:      o.Event.ID,
		Title:        o.Event.Title,
		Type:         string(o.Event.Type),
		Status:       string(o.Event.Status),
		StartTime:    o.StartTime,
		EndTime:      o.EndTime,
		Participants: o.Event.Participants,
	}
}

type listResp struct {
	View        string                   `json:"view"`
	Events      []eventResp              `json:"events"`
	Occurrences []occurrenceResp         `json:"occurrences,omitempty"`
	Groups      map[int][]occurrenceResp `json:"groups,omitempty"`
}

func (h *handler) newListResp(out calendar.ListEventsOutput, expand bool) listResp {
	resp := listResp{
		View:   string(out.View),
		Events: make([]eventResp, 0, len(out.Events)),
	}
	for _, ev := range out.Events {
		resp.Events = append(resp.Events, newEventResp(ev))
	}
	if expand {
		resp.Occurrences = make([]occurrenceResp, 0, len(out.Occurrences))
		for _, o := range out.Occurrences {
			resp.Occurrences = append(resp.Occurrences, newOccurrenceResp(o))
		}
	}
	if out.Groups != nil {
		resp.Groups = make(map[int][]occurrenceResp, len(out.Groups))
		for k, occ := range out.Groups {
			for _, o := range occ {
				resp.Groups[k] = append(resp.Groups[k], newOccurrenceResp(o))
			}
		}
	}
	return resp
}

type conflictResp struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

func newConflictsResp(conflicts []calendar.Conflict) []conflictResp {
	out := make([]conflictResp, 0, len(conflicts))
	for _, c := range conflicts {
		out = append(out, conflictResp{ID: c.ID, Title: c.Title, StartTime: c.StartTime, EndTime: c.EndTime})
	}
	return out
}

type checkConflictsResp struct {
	HasConflicts bool           `json:"hasConflicts"`
	Conflicts    []conflictResp `json:"conflicts"`
}

func (h *handler) newCheckConflictsResp(out calendar.CheckConflictsOutput) checkConflictsResp {
	return checkConflictsResp{
		HasConflicts: len(out.Conflicts) > 0,
		Conflicts:    newConflictsResp(out.Conflicts),
	}
}
