package calendar

import (
	"sort"
	"time"
)

// TimeRange is a closed interval [Start, End].
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// Validate rejects ranges whose start is after their end. Zero-length ranges are valid.
func (r TimeRange) Validate() error {
	if r.Start.IsZero() || r.End.IsZero() {
		return ErrInvalidTimeRange
	}
	if r.Start.After(r.End) {
		return ErrInvalidTimeRange
	}
	return nil
}

// Overlaps reports whether the two closed ranges share at least one instant.
// Touching endpoints count as an overlap.
func (r TimeRange) Overlaps(o TimeRange) bool {
	return !r.Start.After(o.End) && !r.End.Before(o.Start)
}

// Range returns the event's scheduled time range.
func (e Event) Range() TimeRange {
	return TimeRange{Start: e.StartTime, End: e.EndTime}
}

// SharesParticipant reports whether the two participant lists intersect.
// An empty list never intersects anything.
func SharesParticipant(a, b []string) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	set := make(map[string]struct{}, len(a))
	for _, p := range a {
		set[p] = struct{}{}
	}
	for _, p := range b {
		if _, ok := set[p]; ok {
			return true
		}
	}
	return false
}

// ConflictsWith reports whether the event would double-book someone in the proposed slot.
// Cancelled events and the excluded id never conflict.
func (e Event) ConflictsWith(r TimeRange, participants []string, excludeID string) bool {
	if e.Status == EventStatusCancelled {
		return false
	}
	if excludeID != "" && e.ID == excludeID {
		return false
	}
	return e.Range().Overlaps(r) && SharesParticipant(e.Participants, participants)
}

// NormalizeParticipants trims duplicates and empty ids and returns them sorted.
func NormalizeParticipants(participants []string) []string {
	seen := make(map[string]struct{}, len(participants))
	out := make([]string, 0, len(participants))
	for _, p := range participants {
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
