package exception

import (
	"time"

	"github.com/clockwise-hr/timetrack-backend-go/internal/pkg/validator"
)

type CreateRequest struct {
	EmployeeID         string  `json:"employee_id"`
	Type               string  `json:"type"`
	AttendanceRecordID string  `json:"attendance_record_id"`
	AssigneeID         string  `json:"assignee_id"`
	Reason             *string `json:"reason"`
}

func (r CreateRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !validator.IsInSlice(r.Type, TypeValues) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "unknown exception type"})
	}
	if validator.IsEmpty(r.AttendanceRecordID) {
		errs = append(errs, validator.ValidationError{Field: "attendance_record_id", Message: "is required"})
	}
	if validator.IsEmpty(r.AssigneeID) {
		errs = append(errs, validator.ValidationError{Field: "assignee_id", Message: "is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStatusRequest struct {
	Status string  `json:"status"`
	Reason *string `json:"reason"`
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
	Type       *string
	Status     *string
	Page       int
	Limit      int
}

type Response struct {
	ID                 string  `json:"id"`
	EmployeeID         string  `json:"employee_id"`
	Type               string  `json:"type"`
	AttendanceRecordID string  `json:"attendance_record_id"`
	AssigneeID         string  `json:"assignee_id"`
	Status             string  `json:"status"`
	Reason             *string `json:"reason,omitempty"`
	CreatedAt          string  `json:"created_at"`
	UpdatedAt          string  `json:"updated_at"`
}

func ToResponse(e TimeException) Response {
	return Response{
		ID:                 e.ID,
		EmployeeID:         e.EmployeeID,
		Type:               string(e.Type),
		AttendanceRecordID: e.AttendanceRecordID,
		AssigneeID:         e.AssigneeID,
		Status:             string(e.Status),
		Reason:             e.Reason,
		CreatedAt:          e.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:          e.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
