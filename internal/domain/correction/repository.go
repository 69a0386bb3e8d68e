package correction

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, req Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	List(ctx context.Context, filter ListFilter) ([]Request, int64, error)
	UpdateStatus(ctx context.Context, id string, status Status) error

	// ListStaleSubmitted returns requests still SUBMITTED that were created
	// before cutoff, oldest first, at most limit rows.
	ListStaleSubmitted(ctx context.Context, cutoff time.Time, limit int) ([]Request, error)

	// HasOpenForRecord reports whether a non-terminal (SUBMITTED/IN_REVIEW)
	// request references the attendance record.
	HasOpenForRecord(ctx context.Context, attendanceRecordID string) (bool, error)
}
