// Package scheduler runs calsync cycles on a cron schedule.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"familybridge/internal/calsync"
	"familybridge/pkg/log"
)

// DefaultTimeout bounds one cycle when the config leaves it unset.
const DefaultTimeout = 30 * time.Second

// Cycler is the slice of calsync.UseCase the scheduler drives.
type Cycler interface {
	RunCycle(ctx context.Context, now time.Time) (calsync.CycleOutput, error)
}

type Scheduler struct {
	l       log.Logger
	uc      Cycler
	cron    *cron.Cron
	timeout time.Duration
	now     func() time.Time
}

// New parses schedule ("@every 1m", "*/5 * * * *", ...) and registers the cycle.
// Overlapping runs are skipped, not queued.
func New(l log.Logger, uc Cycler, schedule string, timeout time.Duration, loc *time.Location) (*Scheduler, error) {
	if uc == nil {
		return nil, errors.New("scheduler: usecase is required")
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if loc == nil {
		loc = time.UTC
	}

	s := &Scheduler{
		l:       l,
		uc:      uc,
		timeout: timeout,
		now:     time.Now,
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithChain(cron.Recover(cron.DiscardLogger), cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
	}

	if _, err := s.cron.AddFunc(schedule, func() { _, _ = s.RunOnce(context.Background()) }); err != nil {
		return nil, fmt.Errorf("scheduler: invalid schedule %q: %w", schedule, err)
	}
	return s, nil
}

// RunOnce runs a single cycle bounded by the configured timeout.
func (s *Scheduler) RunOnce(ctx context.Context) (calsync.CycleOutput, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	out, err := s.uc.RunCycle(ctx, s.now())
	if err != nil {
		s.l.Errorf(ctx, "calsync.scheduler.RunOnce: %v", err)
		return out, err
	}
	if out.Failures > 0 {
		s.l.Warnf(ctx, "calsync.scheduler.RunOnce: %d of %d connections failed", out.Failures, out.Connections)
	}
	return out, nil
}

// Run starts the cron loop and blocks until ctx is done, then waits for a running cycle to finish.
func (s *Scheduler) Run(ctx context.Context) {
	s.cron.Start()
	s.l.Infof(ctx, "calsync.scheduler.Run: started, next run at %s", s.Next().Format(time.RFC3339))

	<-ctx.Done()

	<-s.cron.Stop().Done()
	s.l.Info(context.Background(), "calsync.scheduler.Run: stopped")
}

// Next reports the next scheduled run, zero before Run.
func (s *Scheduler) Next() time.Time {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	return entries[0].Next
}
