package gcalendar

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const defaultCalendarID = "primary"

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
}

// OAuthConfig returns the OAuth2 client configuration used to refresh user tokens.
func OAuthConfig(clientID, clientSecret string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Scopes:       []string{calendar.CalendarScope},
		Endpoint:     google.Endpoint,
	}
}

// NewClientFromTokenSource creates a Calendar client authorised by ts.
func NewClientFromTokenSource(ctx context.Context, ts oauth2.TokenSource) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// UpsertEvent writes ev under its own ID, inserting it when the calendar does not have it yet.
func (c *Client) UpsertEvent(ctx context.Context, calendarID string, ev Event) (*Event, error) {
	if ev.ID == "" {
		return nil, fmt.Errorf("event id is required")
	}
	calendarID = orPrimary(calendarID)
	body := toAPI(ev)

	updated, err := c.service.Events.Update(calendarID, ev.ID, body).Context(ctx).Do()
	if err == nil {
		return fromAPI(updated), nil
	}
	if !isStatus(err, http.StatusNotFound) {
		return nil, fmt.Errorf("failed to update calendar event: %w", err)
	}

	created, err := c.service.Events.Insert(calendarID, body).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}
	return fromAPI(created), nil
}

// DeleteEvent removes an event. Events that are already gone are not an error.
func (c *Client) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	err := c.service.Events.Delete(orPrimary(calendarID), eventID).Context(ctx).Do()
	if err != nil && !isStatus(err, http.StatusNotFound) && !isStatus(err, http.StatusGone) {
		return fmt.Errorf("failed to delete calendar event: %w", err)
	}
	return nil
}

// ListEvents returns single (expanded) events inside the window ordered by start time.
func (c *Client) ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error) {
	call := c.service.Events.List(orPrimary(req.CalendarID)).
		Context(ctx).
		SingleEvents(true).
		OrderBy("startTime")
	if !req.TimeMin.IsZero() {
		call = call.TimeMin(req.TimeMin.Format(time.RFC3339))
	}
	if !req.TimeMax.IsZero() {
		call = call.TimeMax(req.TimeMax.Format(time.RFC3339))
	}
	if req.MaxResults > 0 {
		call = call.MaxResults(req.MaxResults)
	}

	res, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}

	events := make([]Event, 0, len(res.Items))
	for _, item := range res.Items {
		events = append(events, *fromAPI(item))
	}
	return events, nil
}

func toAPI(ev Event) *calendar.Event {
	out := &calendar.Event{
		Id:          ev.ID,
		Summary:     ev.Summary,
		Description: ev.Description,
		Location:    ev.Location,
		Status:      ev.Status,
		Recurrence:  ev.Recurrence,
		Start: &calendar.EventDateTime{
			DateTime: ev.StartTime.Format(time.RFC3339),
			TimeZone: ev.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: ev.EndTime.Format(time.RFC3339),
			TimeZone: ev.Timezone,
		},
	}
	if len(ev.Private) > 0 {
		out.ExtendedProperties = &calendar.EventExtendedProperties{Private: ev.Private}
	}
	if len(ev.Reminders) > 0 {
		out.Reminders = &calendar.EventReminders{ForceSendFields: []string{"UseDefault"}}
		for _, r := range ev.Reminders {
			out.Reminders.Overrides = append(out.Reminders.Overrides, &calendar.EventReminder{Method: r.Method, Minutes: r.Minutes, ForceSendFields: []string{"Minutes"}})
		}
	}
	return out
}

func fromAPI(item *calendar.Event) *Event {
	ev := &Event{
		ID:          item.Id,
		Summary:     item.Summary,
		Description: item.Description,
		Location:    item.Location,
		Status:      item.Status,
		HtmlLink:    item.HtmlLink,
		Recurrence:  item.Recurrence,
	}
	if item.Start != nil {
		ev.StartTime = parseEventTime(item.Start)
		ev.Timezone = item.Start.TimeZone
	}
	if item.End != nil {
		ev.EndTime = parseEventTime(item.End)
	}
	if item.ExtendedProperties != nil {
		ev.Private = item.ExtendedProperties.Private
	}
	if item.Reminders != nil {
		for _, r := range item.Reminders.Overrides {
			ev.Reminders = append(ev.Reminders, Reminder{Method: r.Method, Minutes: r.Minutes})
		}
	}
	return ev
}

// parseEventTime handles both timed events and all-day events (date only).
func parseEventTime(dt *calendar.EventDateTime) time.Time {
	if dt.DateTime != "" {
		if t, err := time.Parse(time.RFC3339, dt.DateTime); err == nil {
			return t
		}
	}
	if dt.Date != "" {
		if t, err := time.Parse("2006-01-02", dt.Date); err == nil {
			return t
		}
	}
	return time.Time{}
}

func orPrimary(calendarID string) string {
	if calendarID == "" {
		return defaultCalendarID
	}
	return calendarID
}

func isStatus(err error, code int) bool {
	var apiErr *googleapi.Error
	return errors.As(err, &apiErr) && apiErr.Code == code
}
