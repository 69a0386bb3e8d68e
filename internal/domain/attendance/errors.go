package attendance

import "errors"

var (
	ErrRecordNotFound   = errors.New("attendance record not found")
	ErrInvalidPunchType = errors.New("punch type must be IN or OUT")

	// ErrVersionConflict signals a concurrent update to the same record;
	// callers retry the read-modify-write.
	ErrVersionConflict = errors.New("attendance record was modified concurrently")
)
