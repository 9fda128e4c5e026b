package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"familybridge/internal/calendar"
	repo "familybridge/internal/calendar/repository"
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

var day = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func hour(h int) time.Time { return day.Add(time.Duration(h) * time.Hour) }

func seed(t *testing.T, r repo.Repository, title string, start, end time.Time, participants ...string) calendar.Event {
	t.Helper()
	ev, err := r.CreateEvent(context.Background(), repo.CreateEventOptions{
		Title:        title,
		StartTime:    start,
		EndTime:      end,
		Type:         calendar.EventTypeAppointment,
		Status:       calendar.EventStatusScheduled,
		Participants: participants,
		CreatedBy:    "owner",
	})
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	return ev
}

func TestFindConflicts(t *testing.T) {
	ctx := context.Background()
	r := New(&mockLogger{})
	a := seed(t, r, "A", hour(10), hour(11), "u1")
	seed(t, r, "other", hour(10), hour(11), "u2")

	got, err := r.FindConflicts(ctx, repo.FindConflictsOptions{
		Range:        calendar.TimeRange{Start: hour(11), End: hour(12)},
		Participants: []string{"u1"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != a.ID {
		t.Fatalf("expected only A to conflict, got %+v", got)
	}

	got, _ = r.FindConflicts(ctx, repo.FindConflictsOptions{
		Range:        calendar.TimeRange{Start: hour(10), End: hour(11)},
		Participants: []string{"u1"},
		ExcludeID:    a.ID,
	})
	if len(got) != 0 {
		t.Errorf("excluded event returned: %+v", got)
	}
}

func TestGetOneEventNotFound(t *testing.T) {
	r := New(&mockLogger{})
	ev, err := r.GetOneEvent(context.Background(), repo.GetOneEventOptions{ID: "missing"})
	if err != nil || ev.ID != "" {
		t.Errorf("expected zero value, got %+v (%v)", ev, err)
	}
}

func TestListEventsWindow(t *testing.T) {
	ctx := context.Background()
	r := New(&mockLogger{})
	seed(t, r, "late", hour(15), hour(16), "u1")
	seed(t, r, "early", hour(8), hour(9), "u1")
	seed(t, r, "outside", hour(30), hour(31), "u1")

	got, err := r.ListEvents(ctx, repo.ListEventsOptions{StartDate: hour(0), EndDate: hour(23)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].Title != "early" || got[1].Title != "late" {
		t.Errorf("unexpected list %+v", got)
	}
}

func TestTransportationUniquePerEvent(t *testing.T) {
	ctx := context.Background()
	r := New(&mockLogger{})
	ev := seed(t, r, "A", hour(10), hour(11), "u1")

	opt := repo.TransportationOptions{EventID: ev.ID}
	opt.Kind = calendar.TransportKindPickup
	opt.Status = calendar.TransportStatusPending

	first, err := r.CreateTransportation(ctx, opt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := r.CreateTransportation(ctx, opt); !errors.Is(err, repo.ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}

	opt.Status = calendar.TransportStatusConfirmed
	up, err := r.UpsertTransportation(ctx, opt)
	if err != nil || up.ID != first.ID || up.Status != calendar.TransportStatusConfirmed {
		t.Errorf("upsert should keep id and replace fields, got %+v (%v)", up, err)
	}

	loaded, _ := r.GetOneEvent(ctx, repo.GetOneEventOptions{ID: ev.ID})
	if loaded.Transportation == nil || loaded.Transportation.ID != first.ID {
		t.Errorf("event should carry its transportation, got %+v", loaded.Transportation)
	}

	updated, _ := r.UpdateTransportationStatus(ctx, repo.UpdateTransportationStatusOptions{ID: first.ID, Status: calendar.TransportStatusCompleted})
	if updated.Status != calendar.TransportStatusCompleted {
		t.Errorf("status not updated: %+v", updated)
	}
}

func TestAtomicSerialisesCheckThenInsert(t *testing.T) {
	ctx := context.Background()
	r := New(&mockLogger{})
	slot := calendar.TimeRange{Start: hour(10), End: hour(11)}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = r.Atomic(ctx, []string{"u1"}, func(ctx context.Context, tx repo.Repository) error {
				conflicts, err := tx.FindConflicts(ctx, repo.FindConflictsOptions{Range: slot, Participants: []string{"u1"}})
				if err != nil || len(conflicts) > 0 {
					return errors.New("conflict")
				}
				_, err = tx.CreateEvent(ctx, repo.CreateEventOptions{
					Title: "race", StartTime: slot.Start, EndTime: slot.End,
					Participants: []string{"u1"}, Status: calendar.EventStatusScheduled,
				})
				return err
			})
		}()
	}
	wg.Wait()

	all, _ := r.ListEvents(ctx, repo.ListEventsOptions{})
	if len(all) != 1 {
		t.Errorf("expected exactly one event to win, got %d", len(all))
	}
}
