package correction

import (
	"context"
	"time"
)

// WorkflowService drives the correction-request state machine and its
// payroll-lock side effects.
type WorkflowService interface {
	// Create inserts a SUBMITTED request and clears the referenced record's
	// payroll finalization flag.
	Create(ctx context.Context, req CreateRequest) (Response, error)

	// UpdateStatus applies a reviewer transition. APPROVED re-finalizes the
	// linked record; ESCALATED is rejected here, being sweep-only.
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (Response, error)

	Get(ctx context.Context, id string) (Response, error)
	List(ctx context.Context, filter ListFilter) ([]Response, int64, error)

	// EscalatePastCutoff escalates every request still SUBMITTED that was
	// created before cutoff, notifying each requester, and bulk-escalates
	// PENDING exceptions created before the cutoff. Idempotent: already
	// escalated items are never selected again.
	EscalatePastCutoff(ctx context.Context, cutoff time.Time, limit int) (SweepResult, error)
}
