package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/teambition/rrule-go"
)

// maxOccurrences caps expansion of a single recurring event within one window.
const maxOccurrences = 500

var frequencies = map[Frequency]rrule.Frequency{
	FrequencyDaily:   rrule.DAILY,
	FrequencyWeekly:  rrule.WEEKLY,
	FrequencyMonthly: rrule.MONTHLY,
	FrequencyYearly:  rrule.YEARLY,
}

var weekdays = map[string]rrule.Weekday{
	"MO": rrule.MO,
	"TU": rrule.TU,
	"WE": rrule.WE,
	"TH": rrule.TH,
	"FR": rrule.FR,
	"SA": rrule.SA,
	"SU": rrule.SU,
}

// Option converts the recurrence into an rrule option anchored at dtstart.
func (r Recurrence) Option(dtstart time.Time) (rrule.ROption, error) {
	freq, ok := frequencies[r.Frequency]
	if !ok {
		return rrule.ROption{}, fmt.Errorf("%w: unknown recurrence frequency %q", ErrInvalidPayload, r.Frequency)
	}

	interval := r.Interval
	if interval <= 0 {
		interval = 1
	}

	opt := rrule.ROption{
		Freq:     freq,
		Interval: interval,
		Dtstart:  dtstart,
	}
	if r.Until != nil {
		if r.Until.Before(dtstart) {
			return rrule.ROption{}, fmt.Errorf("%w: recurrence ends before the event starts", ErrInvalidPayload)
		}
		opt.Until = *r.Until
	}
	for _, d := range r.ByDay {
		wd, ok := weekdays[strings.ToUpper(d)]
		if !ok {
			return rrule.ROption{}, fmt.Errorf("%w: unknown weekday %q", ErrInvalidPayload, d)
		}
		opt.Byweekday = append(opt.Byweekday, wd)
	}
	return opt, nil
}

// RRule renders the recurrence as an RFC 5545 RRULE value (without the "RRULE:" prefix).
func (r Recurrence) RRule(dtstart time.Time) (string, error) {
	opt, err := r.Option(dtstart)
	if err != nil {
		return "", err
	}
	// Dtstart is carried separately by every consumer.
	opt.Dtstart = time.Time{}
	return opt.RRuleString(), nil
}

// Occurrences expands the event into the concrete instances that overlap the window.
// A non-recurring event yields itself when it overlaps.
func (e Event) Occurrences(window TimeRange) ([]Occurrence, error) {
	if e.Recurrence == nil {
		if e.Range().Overlaps(window) {
			return []Occurrence{{Event: e, StartTime: e.StartTime, EndTime: e.EndTime}}, nil
		}
		return nil, nil
	}

	opt, err := e.Recurrence.Option(e.StartTime)
	if err != nil {
		return nil, err
	}
	rule, err := rrule.NewRRule(opt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	dur := e.EndTime.Sub(e.StartTime)
	// Shift the lower bound so instances that started before the window but still run into it are kept.
	starts := rule.Between(window.Start.Add(-dur), window.End, true)
	if len(starts) > maxOccurrences {
		starts = starts[:maxOccurrences]
	}

	out := make([]Occurrence, 0, len(starts))
	for _, s := range starts {
		out = append(out, Occurrence{Event: e, StartTime: s, EndTime: s.Add(dur)})
	}
	return out, nil
}
