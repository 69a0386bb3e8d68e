package response

import (
	"errors"
	"net/http"

	"github.com/clockwise-hr/timetrack-backend-go/internal/domain/assignment"
	"github.com/clockwise-hr/timetrack-backend-go/internal/domain/attendance"
	"github.com/clockwise-hr/timetrack-backend-go/internal/domain/correction"
	"github.com/clockwise-hr/timetrack-backend-go/internal/domain/employee"
	"github.com/clockwise-hr/timetrack-backend-go/internal/domain/exception"
	"github.com/clockwise-hr/timetrack-backend-go/internal/domain/shift"
	"github.com/clockwise-hr/timetrack-backend-go/internal/domain/timerule"
	"github.com/clockwise-hr/timetrack-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Shift catalog
	case errors.Is(err, shift.ErrShiftTypeNotFound):
		NotFound(w, "Shift type not found")
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrScheduleRuleNotFound):
		NotFound(w, "Schedule rule not found")
	case errors.Is(err, shift.ErrShiftTypeInUse):
		Conflict(w, "Shift type is still referenced by shifts")

	// Assignments
	case errors.Is(err, assignment.ErrAssignmentNotFound):
		NotFound(w, "Shift assignment not found")
	case errors.Is(err, assignment.ErrEmptyEmployeeList):
		BadRequest(w, "No employees matched the assignment request", nil)
	case errors.Is(err, employee.ErrDirectoryNotConfigured):
		NotImplemented(w, "Employee directory lookup is not configured")

	// Attendance
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrVersionConflict):
		Conflict(w, "Attendance record was modified concurrently")

	// Corrections
	case errors.Is(err, correction.ErrCorrectionNotFound):
		NotFound(w, "Correction request not found")
	case errors.Is(err, correction.ErrInvalidStatusTransition):
		Conflict(w, "Status transition is not allowed")
	case errors.Is(err, correction.ErrEscalationReservedToSweep):
		Forbidden(w, "Escalation is performed by the payroll-cutoff sweep")

	// Exceptions
	case errors.Is(err, exception.ErrExceptionNotFound):
		NotFound(w, "Time exception not found")

	// Reporting configuration
	case errors.Is(err, timerule.ErrOvertimeRuleNotFound):
		NotFound(w, "Overtime rule not found")
	case errors.Is(err, timerule.ErrLatenessRuleNotFound):
		NotFound(w, "Lateness rule not found")
	case errors.Is(err, timerule.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
