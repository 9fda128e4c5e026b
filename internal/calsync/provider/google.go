package provider

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/oauth2"

	"familybridge/internal/calendar"
	"familybridge/internal/calsync"
	"familybridge/pkg/gcalendar"
)

const (
	googlePrimaryCalendar = "primary"
	googleSourceProperty  = "familybridgeId"
)

type googleClient struct {
	oauth *oauth2.Config
	base  http.RoundTripper
}

// NewGoogle creates the Google Calendar client. Expired access tokens are refreshed
// through oauth and written back into the connection.
func NewGoogle(oauth *oauth2.Config, base http.RoundTripper) calsync.Client {
	return &googleClient{oauth: oauth, base: base}
}

func (g *googleClient) Prepare(ctx context.Context, conn *calsync.Connection) error {
	if conn.CalendarID == "" {
		conn.CalendarID = googlePrimaryCalendar
	}
	_, err := g.token(ctx, conn)
	return err
}

func (g *googleClient) Push(ctx context.Context, conn *calsync.Connection, ev calendar.Event) error {
	client, err := g.client(ctx, conn)
	if err != nil {
		return err
	}
	remote, err := googleEvent(ev)
	if err != nil {
		return err
	}
	_, err = client.UpsertEvent(ctx, conn.CalendarID, remote)
	return err
}

func (g *googleClient) Remove(ctx context.Context, conn *calsync.Connection, ev calendar.Event) error {
	client, err := g.client(ctx, conn)
	if err != nil {
		return err
	}
	return client.DeleteEvent(ctx, conn.CalendarID, GoogleEventID(ev.ID))
}

func (g *googleClient) client(ctx context.Context, conn *calsync.Connection) (*gcalendar.Client, error) {
	tok, err := g.token(ctx, conn)
	if err != nil {
		return nil, err
	}
	httpClient := &http.Client{Transport: &oauth2.Transport{Source: oauth2.StaticTokenSource(tok), Base: g.base}}
	return gcalendar.NewClientFromHTTP(ctx, httpClient)
}

// token returns a valid access token, refreshing it when expired.
func (g *googleClient) token(ctx context.Context, conn *calsync.Connection) (*oauth2.Token, error) {
	if g.base != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, &http.Client{Transport: g.base})
	}

	current := &oauth2.Token{
		AccessToken:  conn.AccessToken,
		RefreshToken: conn.RefreshToken,
		TokenType:    "Bearer",
	}
	if conn.TokenExpiry != nil {
		current.Expiry = *conn.TokenExpiry
	}

	tok, err := g.oauth.TokenSource(ctx, current).Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", calsync.ErrTokenRefresh, err)
	}
	if tok.AccessToken != conn.AccessToken {
		t := calsync.Token{AccessToken: tok.AccessToken, RefreshToken: tok.RefreshToken}
		if !tok.Expiry.IsZero() {
			expiry := tok.Expiry
			t.Expiry = &expiry
		}
		conn.SetToken(t)
	}
	return tok, nil
}

// GoogleEventID maps an event id to a valid Google event id (base32hex characters only).
func GoogleEventID(id string) string {
	return strings.ToLower(strings.ReplaceAll(id, "-", ""))
}

func googleEvent(ev calendar.Event) (gcalendar.Event, error) {
	out := gcalendar.Event{
		ID:          GoogleEventID(ev.ID),
		Summary:     ev.Title,
		Description: ev.Description,
		Location:    ev.Location.Address,
		StartTime:   ev.StartTime,
		EndTime:     ev.EndTime,
		Status:      "confirmed",
		Private:     map[string]string{googleSourceProperty: ev.ID},
	}
	if ev.Status == calendar.EventStatusCancelled {
		out.Status = "cancelled"
	}
	if ev.Recurrence != nil {
		rule, err := ev.Recurrence.RRule(ev.StartTime)
		if err != nil {
			return gcalendar.Event{}, err
		}
		out.Recurrence = []string{"RRULE:" + rule}
	}
	for _, r := range ev.Reminders {
		switch r.Kind {
		case "email":
			out.Reminders = append(out.Reminders, gcalendar.Reminder{Method: "email", Minutes: int64(r.OffsetMinutes)})
		case "push":
			out.Reminders = append(out.Reminders, gcalendar.Reminder{Method: "popup", Minutes: int64(r.OffsetMinutes)})
		}
	}
	return out, nil
}
