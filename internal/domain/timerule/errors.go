package timerule

import "errors"

var (
	ErrOvertimeRuleNotFound = errors.New("overtime rule not found")
	ErrLatenessRuleNotFound = errors.New("lateness rule not found")
	ErrHolidayNotFound      = errors.New("holiday not found")
)
