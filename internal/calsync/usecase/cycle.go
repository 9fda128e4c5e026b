package usecase

import (
	"context"
	"time"

	"familybridge/internal/calsync"
	repo "familybridge/internal/calsync/repository"
)

// RunCycle syncs every enabled connection whose frequency has elapsed at now.
// Individual connection failures are counted, not returned.
func (uc *implUseCase) RunCycle(ctx context.Context, now time.Time) (calsync.CycleOutput, error) {
	enabled := true
	conns, err := uc.repo.List(ctx, repo.ListOptions{SyncEnabled: &enabled})
	if err != nil {
		uc.l.Errorf(ctx, "calsync.usecase.RunCycle List: %v", err)
		return calsync.CycleOutput{}, err
	}

	var out calsync.CycleOutput
	for i := range conns {
		conn := &conns[i]
		if !conn.Due(now) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return out, err
		}

		out.Connections++
		pushed, err := uc.syncConnection(ctx, conn, now)
		out.Events += pushed
		if err != nil {
			out.Failures++
			uc.l.Warnf(ctx, "calsync.usecase.RunCycle %s (%s): %v", conn.ID, conn.Provider, err)
		}
	}

	uc.l.Infof(ctx, "calsync.usecase.RunCycle: connections=%d events=%d failures=%d", out.Connections, out.Events, out.Failures)
	return out, nil
}
