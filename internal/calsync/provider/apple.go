package provider

import (
	"context"
	"fmt"
	"net/http"

	"familybridge/internal/calendar"
	"familybridge/internal/calendar/ics"
	"familybridge/internal/calsync"
	"familybridge/pkg/caldav"
)

type appleClient struct {
	endpoint string
	base     http.RoundTripper
}

// NewApple creates the CalDAV client. The connection's Account and AccessToken
// are the Apple ID and an app-specific password.
func NewApple(endpoint string, base http.RoundTripper) calsync.Client {
	if endpoint == "" {
		endpoint = caldav.DefaultEndpoint
	}
	return &appleClient{endpoint: endpoint, base: base}
}

// Prepare picks the first calendar of the account when none is given.
func (a *appleClient) Prepare(ctx context.Context, conn *calsync.Connection) error {
	if conn.CalendarID != "" {
		return nil
	}
	client, err := a.client(conn)
	if err != nil {
		return err
	}
	path, err := client.FindCalendar(ctx, "")
	if err != nil {
		return fmt.Errorf("%w: %v", calsync.ErrProviderUnavailable, err)
	}
	conn.CalendarID = path
	return nil
}

func (a *appleClient) Push(ctx context.Context, conn *calsync.Connection, ev calendar.Event) error {
	client, err := a.client(conn)
	if err != nil {
		return err
	}
	cal, err := ics.NewCalendar(ev)
	if err != nil {
		return err
	}
	return client.PutEvent(ctx, conn.CalendarID, ev.ID, cal)
}

func (a *appleClient) Remove(ctx context.Context, conn *calsync.Connection, ev calendar.Event) error {
	client, err := a.client(conn)
	if err != nil {
		return err
	}
	return client.DeleteEvent(ctx, conn.CalendarID, ev.ID)
}

func (a *appleClient) client(conn *calsync.Connection) (*caldav.Client, error) {
	return caldav.NewClient(a.base, a.endpoint, conn.Account, conn.AccessToken)
}
