package employee

import (
	"context"
	"errors"
)

// Directory is the external employee-directory collaborator. This backend
// does not own employee profiles; it only needs membership lookups for bulk
// assignment by department/position.
type Directory interface {
	FindByDepartmentAndPosition(ctx context.Context, departmentID, positionID *string) ([]string, error)
}

// ErrDirectoryNotConfigured is returned by operations that need the employee
// directory when none has been wired in. Fail-fast by contract: the
// department/position bulk-assignment path must never silently no-op.
var ErrDirectoryNotConfigured = errors.New("employee directory collaborator is not configured")
