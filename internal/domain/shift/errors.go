package shift

import "errors"

var (
	ErrShiftTypeNotFound    = errors.New("shift type not found")
	ErrShiftNotFound        = errors.New("shift not found")
	ErrScheduleRuleNotFound = errors.New("schedule rule not found")
	ErrShiftTypeInUse       = errors.New("shift type is referenced by an existing shift")
)
