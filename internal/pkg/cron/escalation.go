package cron

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/clockwise-hr/timetrack-backend-go/internal/config"
	"github.com/clockwise-hr/timetrack-backend-go/internal/domain/exception"
)

// EscalationJobs runs the exception escalation sweep on a fixed interval so
// stale PENDING exceptions are caught even when no external scheduler hits
// the sweep endpoint. The sweep is idempotent, so overlapping with a
// REST-triggered run is harmless.
type EscalationJobs struct {
	managerService exception.ManagerService
	cfg            config.SweepConfig
}

func NewEscalationJobs(managerService exception.ManagerService, cfg config.SweepConfig) *EscalationJobs {
	return &EscalationJobs{
		managerService: managerService,
		cfg:            cfg,
	}
}

func (j *EscalationJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("escalate_stale_exceptions", j.cfg.Interval, j.EscalateStaleExceptions)
}

func (j *EscalationJobs) EscalateStaleExceptions(ctx context.Context) error {
	escalated, err := j.managerService.EscalateStale(ctx, j.cfg.ExceptionWindow, j.cfg.BatchLimit)
	if err != nil {
		return fmt.Errorf("failed to escalate stale exceptions: %w", err)
	}

	if escalated > 0 {
		slog.Info("Cron: Escalated stale exceptions", "count", escalated)
	}
	return nil
}
