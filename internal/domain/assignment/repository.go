package assignment

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, a ShiftAssignment) (ShiftAssignment, error)
	GetByID(ctx context.Context, id string) (ShiftAssignment, error)
	List(ctx context.Context, filter ListFilter) ([]ShiftAssignment, int64, error)
	Update(ctx context.Context, id string, req UpdateAssignmentRequest) error
	Delete(ctx context.Context, id string) error

	// GetActiveAssignment returns the APPROVED assignment covering date for
	// the employee, or (nil, nil) when none matches. When ranges overlap the
	// most recently started assignment wins.
	GetActiveAssignment(ctx context.Context, employeeID string, date time.Time) (*ShiftAssignment, error)
}
