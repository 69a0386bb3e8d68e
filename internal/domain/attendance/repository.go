package attendance

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, rec Record) (Record, error)
	GetByID(ctx context.Context, id string) (Record, error)

	// GetByEmployeeAndDate returns (nil, nil) when no record exists for the
	// employee on that calendar day.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Record, error)

	// UpdatePunches persists a recomputed punch sequence and derived fields.
	// The update only applies when the stored version still equals
	// rec.Version; otherwise ErrVersionConflict is returned.
	UpdatePunches(ctx context.Context, rec Record) error

	SetFinalized(ctx context.Context, id string, finalized bool) error
	List(ctx context.Context, filter ListFilter) ([]Record, int64, error)
}
