package assignment

import (
	"context"
	"time"
)

type Service interface {
	Create(ctx context.Context, req CreateAssignmentRequest) (AssignmentResponse, error)
	BulkCreate(ctx context.Context, req BulkCreateAssignmentRequest) (BulkCreateResponse, error)
	Get(ctx context.Context, id string) (AssignmentResponse, error)
	List(ctx context.Context, filter ListFilter) ([]AssignmentResponse, int64, error)
	Update(ctx context.Context, id string, req UpdateAssignmentRequest) (AssignmentResponse, error)
	Delete(ctx context.Context, id string) error

	// Resolve returns the shift window and punch policy governing the
	// employee on date. A nil Assignment in the result means no APPROVED
	// assignment covers the date and the ALL policy applies.
	Resolve(ctx context.Context, employeeID string, date time.Time) (ResolvedShift, error)
}
