package ics

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/emersion/go-ical"

	"familybridge/internal/calendar"
)

// ProductID is written as PRODID on every calendar this service produces.
const ProductID = "-//familybridge//calendar//EN"

var statuses = map[calendar.EventStatus]string{
	calendar.EventStatusScheduled:  "CONFIRMED",
	calendar.EventStatusInProgress: "CONFIRMED",
	calendar.EventStatusCompleted:  "CONFIRMED",
	calendar.EventStatusCancelled:  "CANCELLED",
}

// NewCalendar wraps the given events in a VCALENDAR.
func NewCalendar(events ...calendar.Event) (*ical.Calendar, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, ProductID)

	for _, ev := range events {
		ve, err := VEvent(ev)
		if err != nil {
			return nil, err
		}
		cal.Children = append(cal.Children, ve)
	}
	return cal, nil
}

// Encode renders the events as an iCalendar document.
// The encoder refuses component-less calendars, so the empty document is written directly.
func Encode(events []calendar.Event) ([]byte, error) {
	if len(events) == 0 {
		return []byte("BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ProductID + "\r\nEND:VCALENDAR\r\n"), nil
	}
	cal, err := NewCalendar(events...)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("ics: encode calendar: %w", err)
	}
	return buf.Bytes(), nil
}

// VEvent converts an event into a VEVENT component. The UID is the event id.
func VEvent(ev calendar.Event) (*ical.Component, error) {
	ve := ical.NewComponent(ical.CompEvent)
	ve.Props.SetText(ical.PropUID, ev.ID)
	ve.Props.SetDateTime(ical.PropDateTimeStamp, stamp(ev))
	ve.Props.SetDateTime(ical.PropDateTimeStart, ev.StartTime.UTC())
	ve.Props.SetDateTime(ical.PropDateTimeEnd, ev.EndTime.UTC())
	ve.Props.SetText(ical.PropSummary, ev.Title)

	if ev.Description != "" {
		ve.Props.SetText(ical.PropDescription, ev.Description)
	}
	if ev.Location.Address != "" {
		ve.Props.SetText(ical.PropLocation, ev.Location.Address)
	}
	if c := ev.Location.Coordinates; c != nil {
		setRaw(ve, ical.PropGeo, fmt.Sprintf("%f;%f", c.Lat, c.Lng))
	}
	if ev.Type != "" {
		ve.Props.SetText(ical.PropCategories, strings.ToUpper(string(ev.Type)))
	}
	if s, ok := statuses[ev.Status]; ok {
		ve.Props.SetText(ical.PropStatus, s)
	}
	for _, p := range ev.Participants {
		att := ical.NewProp(ical.PropAttendee)
		att.Value = p
		ve.Props.Add(att)
	}

	if ev.Recurrence != nil {
		rule, err := ev.Recurrence.RRule(ev.StartTime)
		if err != nil {
			return nil, err
		}
		setRaw(ve, ical.PropRecurrenceRule, rule)
	}

	for _, r := range ev.Reminders {
		alarm := ical.NewComponent(ical.CompAlarm)
		alarm.Props.SetText(ical.PropAction, "DISPLAY")
		alarm.Props.SetText(ical.PropDescription, ev.Title)
		setRaw(alarm, ical.PropTrigger, fmt.Sprintf("-PT%dM", r.OffsetMinutes))
		ve.Children = append(ve.Children, alarm)
	}
	return ve, nil
}

// setRaw stores a property value verbatim. SetText would escape the separators RRULE and GEO rely on.
func setRaw(c *ical.Component, name, value string) {
	p := ical.NewProp(name)
	p.Value = value
	c.Props.Set(p)
}

func stamp(ev calendar.Event) time.Time {
	if !ev.UpdatedAt.IsZero() {
		return ev.UpdatedAt.UTC()
	}
	return time.Now().UTC()
}
