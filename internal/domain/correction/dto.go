package correction

import (
	"time"

	"github.com/clockwise-hr/timetrack-backend-go/internal/pkg/validator"
)

type CreateRequest struct {
	EmployeeID         string
	AttendanceRecordID string `json:"attendance_record_id"`
	Reason             string `json:"reason"`
}

func (r CreateRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if validator.IsEmpty(r.AttendanceRecordID) {
		errs = append(errs, validator.ValidationError{Field: "attendance_record_id", Message: "is required"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (r UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors
	if !validator.IsInSlice(r.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "unknown status"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListFilter struct {
	EmployeeID *string
	Status     *string
	Page       int
	Limit      int
}

type Response struct {
	ID                 string `json:"id"`
	EmployeeID         string `json:"employee_id"`
	AttendanceRecordID string `json:"attendance_record_id"`
	Reason             string `json:"reason"`
	Status             string `json:"status"`
	CreatedAt          string `json:"created_at"`
	UpdatedAt          string `json:"updated_at"`
}

func ToResponse(req Request) Response {
	return Response{
		ID:                 req.ID,
		EmployeeID:         req.EmployeeID,
		AttendanceRecordID: req.AttendanceRecordID,
		Reason:             req.Reason,
		Status:             string(req.Status),
		CreatedAt:          req.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:          req.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// SweepResult summarizes one escalation pass.
type SweepResult struct {
	EscalatedCorrections int `json:"escalated_corrections"`
	EscalatedExceptions  int `json:"escalated_exceptions"`
}
