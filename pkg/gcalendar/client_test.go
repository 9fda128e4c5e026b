package gcalendar_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"familybridge/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, h http.HandlerFunc) *gcalendar.Client {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gcalendar.NewClientFromHTTP(context.Background(), tsClient)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

func TestOAuthConfig(t *testing.T) {
	cfg := gcalendar.OAuthConfig("id", "secret")
	if cfg.ClientID != "id" || cfg.ClientSecret != "secret" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if len(cfg.Scopes) != 1 || !strings.Contains(cfg.Scopes[0], "calendar") {
		t.Errorf("unexpected scopes: %v", cfg.Scopes)
	}
}

func TestUpsertEvent(t *testing.T) {
	start := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)

	t.Run("Update existing", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/calendar/v3/calendars/primary/events/abc123" && r.Method == http.MethodPut {
				w.Write([]byte(`{"id":"abc123","summary":"Clinic","status":"confirmed","start":{"dateTime":"2025-03-10T10:00:00Z"},"end":{"dateTime":"2025-03-10T11:00:00Z"}}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		})

		ev, err := client.UpsertEvent(context.Background(), "", gcalendar.Event{ID: "abc123", Summary: "Clinic", StartTime: start, EndTime: start.Add(time.Hour)})
		if err != nil {
			t.Fatalf("UpsertEvent: %v", err)
		}
		if ev.ID != "abc123" || !ev.StartTime.Equal(start) {
			t.Errorf("unexpected event: %+v", ev)
		}
	})

	t.Run("Insert when missing", func(t *testing.T) {
		var inserted map[string]any
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			switch {
			case r.Method == http.MethodPut:
				w.WriteHeader(http.StatusNotFound)
				w.Write([]byte(`{"error":{"code":404,"message":"Not Found"}}`))
			case r.Method == http.MethodPost && r.URL.Path == "/calendar/v3/calendars/family/events":
				body, _ := io.ReadAll(r.Body)
				_ = json.Unmarshal(body, &inserted)
				w.Write([]byte(`{"id":"abc123","htmlLink":"https://calendar.google.com/event-uri"}`))
			default:
				w.WriteHeader(http.StatusInternalServerError)
			}
		})

		ev, err := client.UpsertEvent(context.Background(), "family", gcalendar.Event{
			ID:         "abc123",
			Summary:    "Clinic",
			StartTime:  start,
			EndTime:    start.Add(time.Hour),
			Recurrence: []string{"RRULE:FREQ=WEEKLY"},
			Reminders:  []gcalendar.Reminder{{Method: "popup", Minutes: 30}},
			Private:    map[string]string{"familybridgeId": "a-b-c"},
		})
		if err != nil {
			t.Fatalf("UpsertEvent: %v", err)
		}
		if ev.HtmlLink != "https://calendar.google.com/event-uri" {
			t.Errorf("unexpected link: %s", ev.HtmlLink)
		}
		if inserted["id"] != "abc123" || inserted["summary"] != "Clinic" {
			t.Errorf("unexpected insert body: %v", inserted)
		}
		if _, ok := inserted["reminders"]; !ok {
			t.Errorf("reminders not sent: %v", inserted)
		}
	})

	t.Run("Server error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		if _, err := client.UpsertEvent(context.Background(), "", gcalendar.Event{ID: "x1234"}); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("Missing id", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
		if _, err := client.UpsertEvent(context.Background(), "", gcalendar.Event{}); err == nil {
			t.Error("expected error")
		}
	})
}

func TestDeleteEvent(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{"Deleted", http.StatusNoContent, false},
		{"Already gone", http.StatusGone, false},
		{"Not found", http.StatusNotFound, false},
		{"Forbidden", http.StatusForbidden, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodDelete || r.URL.Path != "/calendar/v3/calendars/primary/events/abc123" {
					w.WriteHeader(http.StatusBadRequest)
					return
				}
				w.WriteHeader(tc.status)
			})
			err := client.DeleteEvent(context.Background(), "primary", "abc123")
			if (err != nil) != tc.wantErr {
				t.Errorf("err = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestListEvents(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/calendar/v3/calendars/test-fail/events" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if r.URL.Path == "/calendar/v3/calendars/primary/events" && r.Method == http.MethodGet {
			if r.URL.Query().Get("singleEvents") != "true" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			w.Write([]byte(`{
				"items": [
					{
						"id": "event-123",
						"summary": "Existing Event",
						"start": { "date": "2024-05-01" },
						"end": { "date": "2024-05-02" }
					}
				]
			}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})

	events, err := client.ListEvents(context.Background(), gcalendar.ListEventsRequest{
		TimeMin:    time.Now(),
		TimeMax:    time.Now().Add(24 * time.Hour),
		MaxResults: 10,
	})
	if err != nil {
		t.Fatalf("failed to list events: %v", err)
	}
	if len(events) != 1 || events[0].Summary != "Existing Event" {
		t.Fatalf("unexpected events: %+v", events)
	}
	if want := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC); !events[0].StartTime.Equal(want) {
		t.Errorf("all-day start = %v, want %v", events[0].StartTime, want)
	}

	if _, err := client.ListEvents(context.Background(), gcalendar.ListEventsRequest{CalendarID: "test-fail"}); err == nil {
		t.Error("expected error for failing calendar")
	}
}
