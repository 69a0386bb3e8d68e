package exception

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, exc TimeException) (TimeException, error)
	GetByID(ctx context.Context, id string) (TimeException, error)
	List(ctx context.Context, filter ListFilter) ([]TimeException, int64, error)
	UpdateStatus(ctx context.Context, id string, status Status, reason *string) error

	// ListStalePending returns PENDING exceptions last updated before
	// olderThan, oldest first, at most limit rows.
	ListStalePending(ctx context.Context, olderThan time.Time, limit int) ([]TimeException, error)

	// ListPendingCreatedBefore returns PENDING exceptions created before
	// cutoff, for the payroll-cutoff bulk escalation.
	ListPendingCreatedBefore(ctx context.Context, cutoff time.Time, limit int) ([]TimeException, error)
}
