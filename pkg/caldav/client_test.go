package caldav_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"familybridge/internal/calendar"
	"familybridge/internal/calendar/ics"
	"familybridge/pkg/caldav"
)

func TestObjectPath(t *testing.T) {
	tests := []struct {
		calendar, uid, want string
	}{
		{"/123/calendars/home/", "abc", "/123/calendars/home/abc.ics"},
		{"123/calendars/home", "abc", "/123/calendars/home/abc.ics"},
	}
	for _, tc := range tests {
		if got := caldav.ObjectPath(tc.calendar, tc.uid); got != tc.want {
			t.Errorf("ObjectPath(%q, %q) = %q, want %q", tc.calendar, tc.uid, got, tc.want)
		}
	}
}

func TestPutAndDeleteEvent(t *testing.T) {
	var (
		gotAuth   bool
		gotAgent  string
		gotBody   string
		deleted   bool
		putMethod string
	)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		gotAuth = ok && user == "jane@example.com" && pass == "app-password"
		gotAgent = r.UserAgent()
		if r.URL.Path != "/cal/home/ev-1.ics" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch r.Method {
		case http.MethodPut:
			putMethod = r.Method
			body, _ := io.ReadAll(r.Body)
			gotBody = string(body)
			w.Header().Set("ETag", `"v1"`)
			w.WriteHeader(http.StatusCreated)
		case http.MethodDelete:
			deleted = true
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
	defer ts.Close()

	client, err := caldav.NewClient(nil, ts.URL+"/", "jane@example.com", "app-password")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	start := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	cal, err := ics.NewCalendar(calendar.Event{
		ID:           "ev-1",
		Title:        "Clinic",
		StartTime:    start,
		EndTime:      start.Add(time.Hour),
		Status:       calendar.EventStatusScheduled,
		Participants: []string{"p1"},
	})
	if err != nil {
		t.Fatalf("NewCalendar: %v", err)
	}

	if err := client.PutEvent(context.Background(), "/cal/home/", "ev-1", cal); err != nil {
		t.Fatalf("PutEvent: %v", err)
	}
	if putMethod != http.MethodPut || !strings.Contains(gotBody, "SUMMARY:Clinic") || !strings.Contains(gotBody, "UID:ev-1") {
		t.Errorf("unexpected PUT body:\n%s", gotBody)
	}
	if !gotAuth || gotAgent != "familybridge/1.0" {
		t.Errorf("auth = %v, agent = %q", gotAuth, gotAgent)
	}

	if err := client.DeleteEvent(context.Background(), "/cal/home/", "ev-1"); err != nil {
		t.Fatalf("DeleteEvent: %v", err)
	}
	if !deleted {
		t.Error("DELETE not received")
	}

	if err := client.DeleteEvent(context.Background(), "/cal/other/", "ev-1"); err == nil {
		t.Error("expected error for missing object")
	}
}
