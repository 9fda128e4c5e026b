package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"familybridge/internal/calendar"
	calRepo "familybridge/internal/calendar/repository"
	calMemory "familybridge/internal/calendar/repository/memory"
	"familybridge/internal/calsync"
	"familybridge/internal/calsync/repository/memory"
	"familybridge/internal/calsync/usecase"
	"familybridge/internal/model"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

// mockClient records calls per connection id and can rotate the access token on push.
type mockClient struct {
	mu       sync.Mutex
	pushed   map[string][]string
	removed  map[string][]string
	rotateTo string
	fail     bool
}

func newMockClient() *mockClient {
	return &mockClient{pushed: map[string][]string{}, removed: map[string][]string{}}
}

func (m *mockClient) Prepare(ctx context.Context, conn *calsync.Connection) error {
	if conn.CalendarID == "" {
		conn.CalendarID = "default"
	}
	return nil
}

func (m *mockClient) Push(ctx context.Context, conn *calsync.Connection, ev calendar.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.rotateTo != "" {
		conn.SetToken(calsync.Token{AccessToken: m.rotateTo})
	}
	if m.fail {
		return errors.New("provider down")
	}
	m.pushed[conn.ID] = append(m.pushed[conn.ID], ev.ID)
	return nil
}

func (m *mockClient) Remove(ctx context.Context, conn *calsync.Connection, ev calendar.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errors.New("provider down")
	}
	m.removed[conn.ID] = append(m.removed[conn.ID], ev.ID)
	return nil
}

func (m *mockClient) pushedTo(connID string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.pushed[connID]...)
}

type fixture struct {
	uc     calsync.UseCase
	events calRepo.EventRepository
	client *mockClient
}

func newFixture() fixture {
	l := &mockLogger{}
	events := calMemory.New(l)
	client := newMockClient()
	clients := map[calsync.Provider]calsync.Client{
		calsync.ProviderGoogle: client,
		calsync.ProviderApple:  client,
	}
	return fixture{
		uc:     usecase.New(l, memory.New(l), events, clients, 7*24*time.Hour),
		events: events,
		client: client,
	}
}

func (f fixture) addEvent(t *testing.T, title string, start time.Time, et calendar.EventType, participants ...string) calendar.Event {
	t.Helper()
	ev, err := f.events.CreateEvent(context.Background(), calRepo.CreateEventOptions{
		Title:        title,
		StartTime:    start,
		EndTime:      start.Add(time.Hour),
		Type:         et,
		Participants: participants,
		Status:       calendar.EventStatusScheduled,
	})
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	return ev
}

func (f fixture) connect(t *testing.T, user string, provider calsync.Provider, settings *calsync.SettingsInput) calsync.Connection {
	t.Helper()
	out, err := f.uc.Connect(context.Background(), model.Scope{UserID: user}, calsync.ConnectInput{
		Provider:    provider,
		Account:     user + "@example.com",
		AccessToken: "token-" + user,
		Settings:    settings,
	})
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	return out.Connection
}

func TestConnectRunsInitialSync(t *testing.T) {
	f := newFixture()
	soon := time.Now().Add(2 * time.Hour)
	upcoming := f.addEvent(t, "Clinic", soon, calendar.EventTypeAppointment, "u1")
	f.addEvent(t, "Other family", soon, calendar.EventTypeAppointment, "u2")
	f.addEvent(t, "Far future", time.Now().Add(60*24*time.Hour), calendar.EventTypeAppointment, "u1")

	out, err := f.uc.Connect(context.Background(), model.Scope{UserID: "u1"}, calsync.ConnectInput{Provider: calsync.ProviderGoogle, AccessToken: "tok"})
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	conn := out.Connection
	if conn.ID == "" || conn.UserID != "u1" || !conn.SyncEnabled || conn.CalendarID != "default" {
		t.Errorf("unexpected connection %+v", conn)
	}
	if conn.Settings.Direction != calsync.DirectionBidirectional || conn.Settings.FrequencyMinutes != 15 {
		t.Errorf("default settings not applied: %+v", conn.Settings)
	}
	if out.Synced != 1 {
		t.Errorf("Synced = %d, want 1", out.Synced)
	}
	if got := f.client.pushedTo(conn.ID); len(got) != 1 || got[0] != upcoming.ID {
		t.Errorf("pushed = %v, want [%s]", got, upcoming.ID)
	}

	list, _ := f.uc.List(context.Background(), model.Scope{UserID: "u1"})
	if len(list.Connections) != 1 || list.Connections[0].LastSync == nil {
		t.Errorf("LastSync not stamped: %+v", list.Connections)
	}
}

func TestSyncSkipsSeriesEndedBeforeWindow(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	start := time.Now().Add(-30 * 24 * time.Hour).Truncate(time.Hour)
	ended := start.Add(10 * 24 * time.Hour)

	series := func(title string, until *time.Time) calendar.Event {
		t.Helper()
		ev, err := f.events.CreateEvent(ctx, calRepo.CreateEventOptions{
			Title:        title,
			StartTime:    start,
			EndTime:      start.Add(time.Hour),
			Type:         calendar.EventTypeMedication,
			Recurrence:   &calendar.Recurrence{Frequency: calendar.FrequencyDaily, Interval: 1, Until: until},
			Participants: []string{"u1"},
			Status:       calendar.EventStatusScheduled,
		})
		if err != nil {
			t.Fatalf("CreateEvent(%s): %v", title, err)
		}
		return ev
	}
	ongoing := series("Evening pills", nil)
	series("Antibiotics course", &ended)

	conn := f.connect(t, "u1", calsync.ProviderGoogle, nil)
	if got := f.client.pushedTo(conn.ID); len(got) != 1 || got[0] != ongoing.ID {
		t.Errorf("pushed = %v, want only the ongoing series [%s]", got, ongoing.ID)
	}
}

func TestConnectValidation(t *testing.T) {
	f := newFixture()
	bad := calsync.Direction("sideways")
	tests := []struct {
		name string
		in   calsync.ConnectInput
	}{
		{"unknown provider", calsync.ConnectInput{Provider: "yahoo", AccessToken: "t"}},
		{"google without token", calsync.ConnectInput{Provider: calsync.ProviderGoogle}},
		{"bad settings", calsync.ConnectInput{Provider: calsync.ProviderGoogle, AccessToken: "t", Settings: &calsync.SettingsInput{Direction: &bad}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := f.uc.Connect(context.Background(), model.Scope{UserID: "u1"}, tc.in); !errors.Is(err, calsync.ErrInvalidPayload) {
				t.Errorf("err = %v, want ErrInvalidPayload", err)
			}
		})
	}
}

func TestOutlookIsStoredButNotPushed(t *testing.T) {
	f := newFixture()
	f.addEvent(t, "Clinic", time.Now().Add(time.Hour), calendar.EventTypeAppointment, "u1")

	out, err := f.uc.Connect(context.Background(), model.Scope{UserID: "u1"}, calsync.ConnectInput{Provider: calsync.ProviderOutlook, AccessToken: "t"})
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if out.Synced != 0 {
		t.Errorf("Synced = %d, want 0", out.Synced)
	}

	err = f.uc.SyncEvent(context.Background(), calendar.Event{ID: "e1", Participants: []string{"u1"}, Type: calendar.EventTypeTask})
	if !errors.Is(err, calsync.ErrUnsupportedProvider) {
		t.Errorf("err = %v, want ErrUnsupportedProvider", err)
	}
}

func TestSyncEventFansOutToParticipants(t *testing.T) {
	f := newFixture()
	medsOnly := []string{"medication"}
	pull := calsync.DirectionPull

	a := f.connect(t, "u1", calsync.ProviderGoogle, nil)
	b := f.connect(t, "u2", calsync.ProviderApple, &calsync.SettingsInput{EventTypes: &medsOnly})
	c := f.connect(t, "u3", calsync.ProviderGoogle, &calsync.SettingsInput{Direction: &pull})
	outsider := f.connect(t, "u4", calsync.ProviderGoogle, nil)

	ev := calendar.Event{ID: "e1", Type: calendar.EventTypeAppointment, Status: calendar.EventStatusScheduled, Participants: []string{"u1", "u2", "u3", "u1"}}
	if err := f.uc.SyncEvent(context.Background(), ev); err != nil {
		t.Fatalf("SyncEvent: %v", err)
	}

	if got := f.client.pushedTo(a.ID); len(got) != 1 {
		t.Errorf("u1 pushes = %v, want one", got)
	}
	if got := f.client.pushedTo(b.ID); len(got) != 0 {
		t.Errorf("type filter ignored: %v", got)
	}
	if got := f.client.pushedTo(c.ID); len(got) != 0 {
		t.Errorf("pull-only connection pushed: %v", got)
	}
	if got := f.client.pushedTo(outsider.ID); len(got) != 0 {
		t.Errorf("non-participant pushed: %v", got)
	}
}

func TestSyncEventCancelledRemoves(t *testing.T) {
	f := newFixture()
	a := f.connect(t, "u1", calsync.ProviderGoogle, nil)

	ev := calendar.Event{ID: "e1", Type: calendar.EventTypeTask, Status: calendar.EventStatusCancelled, Participants: []string{"u1"}}
	if err := f.uc.SyncEvent(context.Background(), ev); err != nil {
		t.Fatalf("SyncEvent: %v", err)
	}
	f.client.mu.Lock()
	removed := f.client.removed[a.ID]
	f.client.mu.Unlock()
	if len(removed) != 1 || removed[0] != "e1" {
		t.Errorf("removed = %v", removed)
	}
}

func TestSyncEventErrorsAreJoined(t *testing.T) {
	f := newFixture()
	f.connect(t, "u1", calsync.ProviderGoogle, nil)
	f.client.fail = true

	err := f.uc.SyncEvent(context.Background(), calendar.Event{ID: "e1", Type: calendar.EventTypeTask, Participants: []string{"u1"}})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestRefreshedTokenIsPersisted(t *testing.T) {
	f := newFixture()
	a := f.connect(t, "u1", calsync.ProviderGoogle, nil)
	f.client.rotateTo = "rotated"

	if err := f.uc.SyncEvent(context.Background(), calendar.Event{ID: "e1", Type: calendar.EventTypeTask, Participants: []string{"u1"}}); err != nil {
		t.Fatalf("SyncEvent: %v", err)
	}

	var seen string
	list, _ := f.uc.List(context.Background(), model.Scope{UserID: "u1"})
	for _, c := range list.Connections {
		if c.ID == a.ID {
			seen = c.AccessToken
		}
	}
	if seen != "rotated" {
		t.Errorf("AccessToken = %q, want rotated", seen)
	}
}

func TestUpdateSettings(t *testing.T) {
	f := newFixture()
	a := f.connect(t, "u1", calsync.ProviderGoogle, nil)
	ctx := context.Background()

	freq := 60
	disabled := false
	out, err := f.uc.UpdateSettings(ctx, model.Scope{UserID: "u1"}, calsync.UpdateSettingsInput{
		ID:          a.ID,
		Settings:    calsync.SettingsInput{FrequencyMinutes: &freq},
		SyncEnabled: &disabled,
	})
	if err != nil {
		t.Fatalf("UpdateSettings: %v", err)
	}
	s := out.Connection.Settings
	if s.FrequencyMinutes != 60 || s.Direction != calsync.DirectionBidirectional || len(s.EventTypes) != 1 || out.Connection.SyncEnabled {
		t.Errorf("settings not merged: %+v enabled=%v", s, out.Connection.SyncEnabled)
	}

	if _, err := f.uc.UpdateSettings(ctx, model.Scope{UserID: "intruder"}, calsync.UpdateSettingsInput{ID: a.ID}); !errors.Is(err, calsync.ErrConnectionNotFound) {
		t.Errorf("err = %v, want ErrConnectionNotFound", err)
	}
	if _, err := f.uc.UpdateSettings(ctx, model.Scope{UserID: "u1"}, calsync.UpdateSettingsInput{ID: "missing"}); !errors.Is(err, calsync.ErrConnectionNotFound) {
		t.Errorf("err = %v, want ErrConnectionNotFound", err)
	}

	// Disabled connections are skipped by fan-out.
	before := len(f.client.pushedTo(a.ID))
	_ = f.uc.SyncEvent(ctx, calendar.Event{ID: "e2", Type: calendar.EventTypeTask, Participants: []string{"u1"}})
	if after := len(f.client.pushedTo(a.ID)); after != before {
		t.Errorf("disabled connection pushed")
	}
}

func TestRunCycleHonoursFrequency(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	a := f.connect(t, "u1", calsync.ProviderGoogle, nil)
	f.addEvent(t, "Clinic", time.Now().Add(3*time.Hour), calendar.EventTypeAppointment, "u1")

	// Connect stamped LastSync; a cycle right away has nothing due.
	out, err := f.uc.RunCycle(ctx, time.Now())
	if err != nil {
		t.Fatalf("RunCycle: %v", err)
	}
	if out.Connections != 0 {
		t.Errorf("Connections = %d, want 0", out.Connections)
	}

	out, err = f.uc.RunCycle(ctx, time.Now().Add(16*time.Minute))
	if err != nil {
		t.Fatalf("RunCycle: %v", err)
	}
	if out.Connections != 1 || out.Events != 1 || out.Failures != 0 {
		t.Errorf("unexpected cycle %+v", out)
	}
	if got := f.client.pushedTo(a.ID); len(got) != 1 {
		t.Errorf("pushed = %v", got)
	}

	f.client.fail = true
	out, _ = f.uc.RunCycle(ctx, time.Now().Add(40*time.Minute))
	if out.Failures != 1 {
		t.Errorf("Failures = %d, want 1", out.Failures)
	}
}
