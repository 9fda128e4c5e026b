package caldav

import (
	"context"
	"fmt"
	"net/http"
	"path"
	"strings"

	"github.com/emersion/go-ical"
	"github.com/emersion/go-webdav/caldav"
)

// DefaultEndpoint is the iCloud CalDAV endpoint.
const DefaultEndpoint = "https://caldav.icloud.com/"

const userAgent = "familybridge/1.0"

// basicAuthTransport adds Basic Auth and the user agent to every request.
type basicAuthTransport struct {
	Username  string
	Password  string
	Transport http.RoundTripper
}

func (t *basicAuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.SetBasicAuth(t.Username, t.Password)
	req.Header.Set("User-Agent", userAgent)
	return t.Transport.RoundTrip(req)
}

// Client talks to one CalDAV account.
type Client struct {
	dav *caldav.Client
}

// NewClient creates a client for the account. A nil base uses http.DefaultTransport.
func NewClient(base http.RoundTripper, endpoint, username, password string) (*Client, error) {
	if base == nil {
		base = http.DefaultTransport
	}
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	httpClient := &http.Client{Transport: &basicAuthTransport{
		Username:  username,
		Password:  password,
		Transport: base,
	}}

	dav, err := caldav.NewClient(httpClient, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to create caldav client: %w", err)
	}
	return &Client{dav: dav}, nil
}

// FindCalendar discovers the user's calendars and returns the path of the one named name.
// An empty name selects the first calendar.
func (c *Client) FindCalendar(ctx context.Context, name string) (string, error) {
	principal, err := c.dav.FindCurrentUserPrincipal(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to find principal path: %w", err)
	}

	homeSet, err := c.dav.FindCalendarHomeSet(ctx, principal)
	if err != nil {
		return "", fmt.Errorf("failed to find calendar home set: %w", err)
	}

	calendars, err := c.dav.FindCalendars(ctx, homeSet)
	if err != nil {
		return "", fmt.Errorf("failed to find calendars: %w", err)
	}

	for _, cal := range calendars {
		if name == "" || cal.Name == name {
			return cal.Path, nil
		}
	}
	return "", fmt.Errorf("no calendar found with name '%s'", name)
}

// PutEvent creates or replaces the object <uid>.ics inside the calendar collection.
func (c *Client) PutEvent(ctx context.Context, calendarPath, uid string, cal *ical.Calendar) error {
	if _, err := c.dav.PutCalendarObject(ctx, ObjectPath(calendarPath, uid), cal); err != nil {
		return fmt.Errorf("failed to put calendar object: %w", err)
	}
	return nil
}

// DeleteEvent removes the object <uid>.ics from the calendar collection.
func (c *Client) DeleteEvent(ctx context.Context, calendarPath, uid string) error {
	if err := c.dav.RemoveAll(ctx, ObjectPath(calendarPath, uid)); err != nil {
		return fmt.Errorf("failed to delete calendar object: %w", err)
	}
	return nil
}

// ObjectPath is the path of an event object inside a calendar collection.
func ObjectPath(calendarPath, uid string) string {
	if !strings.HasPrefix(calendarPath, "/") {
		calendarPath = "/" + calendarPath
	}
	return path.Join(calendarPath, uid+".ics")
}
