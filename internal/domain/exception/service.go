package exception

import (
	"context"
	"time"
)

// ManagerService raises and tracks time exceptions and enforces their SLA.
type ManagerService interface {
	// Create raises an exception against an existing attendance record and
	// links it into the record's exception set.
	Create(ctx context.Context, req CreateRequest) (Response, error)

	// UpdateStatus transitions an exception. Moving to PENDING immediately
	// runs one escalation pass as a side effect.
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (Response, error)

	Get(ctx context.Context, id string) (Response, error)
	List(ctx context.Context, filter ListFilter) ([]Response, int64, error)

	// EscalateStale escalates every PENDING exception whose last update is
	// older than now minus window, notifying each assignee. Idempotent.
	EscalateStale(ctx context.Context, window time.Duration, limit int) (int, error)
}
