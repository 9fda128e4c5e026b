package postgre

import (
	"fmt"
	"strings"

	"github.com/lib/pq"

	"familybridge/internal/calendar"
	repo "familybridge/internal/calendar/repository"
)

// buildListQuery builds the WHERE + ORDER + LIMIT clause for ListEvents.
func (r *implRepository) buildListQuery(opt repo.ListEventsOptions) (string, []any) {
	var parts []string
	var conditions []string
	var args []any
	idx := 1

	if !opt.EndDate.IsZero() {
		conditions = append(conditions, fmt.Sprintf("e.start_time <= $%d", idx))
		args = append(args, opt.EndDate)
		idx++
	}
	if !opt.StartDate.IsZero() {
		if opt.IncludeRecurring {
			conditions = append(conditions, fmt.Sprintf("(e.end_time >= $%d OR e.recurrence IS NOT NULL)", idx))
		} else {
			conditions = append(conditions, fmt.Sprintf("e.end_time >= $%d", idx))
		}
		args = append(args, opt.StartDate)
		idx++
	}
	if len(opt.Participants) > 0 {
		conditions = append(conditions, fmt.Sprintf("e.participants && $%d", idx))
		args = append(args, pq.Array(opt.Participants))
		idx++
	}
	if opt.Type != "" {
		conditions = append(conditions, fmt.Sprintf("e.type = $%d", idx))
		args = append(args, opt.Type)
		idx++
	}
	if opt.Status != "" {
		conditions = append(conditions, fmt.Sprintf("e.status = $%d", idx))
		args = append(args, opt.Status)
		idx++
	}

	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}
	parts = append(parts, "ORDER BY e.start_time ASC, e.id ASC")

	if opt.Limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
		args = append(args, opt.Limit)
	}

	return strings.Join(parts, " "), args
}

// buildConflictQuery builds the WHERE + ORDER clause for FindConflicts.
// Overlap is inclusive on both ends: existing.start <= proposed.end AND existing.end >= proposed.start.
func (r *implRepository) buildConflictQuery(opt repo.FindConflictsOptions) (string, []any) {
	conditions := []string{
		fmt.Sprintf("e.status <> '%s'", calendar.EventStatusCancelled),
		"e.start_time <= $1",
		"e.end_time >= $2",
		"e.participants && $3",
	}
	args := []any{opt.Range.End, opt.Range.Start, pq.Array(opt.Participants)}

	if opt.ExcludeID != "" {
		conditions = append(conditions, "e.id::text <> $4")
		args = append(args, opt.ExcludeID)
	}

	return "WHERE " + strings.Join(conditions, " AND ") + " ORDER BY e.start_time ASC, e.id ASC", args
}
