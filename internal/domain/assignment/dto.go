package assignment

import (
	"github.com/clockwise-hr/timetrack-backend-go/internal/pkg/validator"
)

type CreateAssignmentRequest struct {
	EmployeeID     string  `json:"employee_id"`
	ShiftID        string  `json:"shift_id"`
	ScheduleRuleID *string `json:"schedule_rule_id"`
	StartDate      string  `json:"start_date"`
	EndDate        *string `json:"end_date"`
	Status         *string `json:"status"`
}

func (r CreateAssignmentRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if validator.IsEmpty(r.ShiftID) {
		errs = append(errs, validator.ValidationError{Field: "shift_id", Message: "is required"})
	}
	start, ok := validator.IsValidDate(r.StartDate)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
	}
	if r.EndDate != nil {
		end, okEnd := validator.IsValidDate(*r.EndDate)
		if !okEnd {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be YYYY-MM-DD"})
		} else if ok && end.Before(start) {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
		}
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of PENDING, APPROVED, REJECTED"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BulkCreateAssignmentRequest creates one assignment per employee. Either an
// explicit employee list or a department/position criterion must be given;
// the criterion path needs the external employee directory.
type BulkCreateAssignmentRequest struct {
	EmployeeIDs    []string `json:"employee_ids"`
	DepartmentID   *string  `json:"department_id"`
	PositionID     *string  `json:"position_id"`
	ShiftID        string   `json:"shift_id"`
	ScheduleRuleID *string  `json:"schedule_rule_id"`
	StartDate      string   `json:"start_date"`
	EndDate        *string  `json:"end_date"`
	Status         *string  `json:"status"`
}

func (r BulkCreateAssignmentRequest) Validate() error {
	var errs validator.ValidationErrors
	if len(r.EmployeeIDs) == 0 && r.DepartmentID == nil && r.PositionID == nil {
		errs = append(errs, validator.ValidationError{Field: "employee_ids", Message: "either employee_ids or a department/position criterion is required"})
	}
	if validator.IsEmpty(r.ShiftID) {
		errs = append(errs, validator.ValidationError{Field: "shift_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
	}
	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be YYYY-MM-DD"})
		}
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of PENDING, APPROVED, REJECTED"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAssignmentRequest struct {
	ShiftID        *string `json:"shift_id"`
	ScheduleRuleID *string `json:"schedule_rule_id"`
	StartDate      *string `json:"start_date"`
	EndDate        *string `json:"end_date"`
	Status         *string `json:"status"`
}

func (r UpdateAssignmentRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
		}
	}
	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be YYYY-MM-DD"})
		}
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of PENDING, APPROVED, REJECTED"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListFilter struct {
	EmployeeID *string
	ShiftID    *string
	Status     *string
	Page       int
	Limit      int
}

type AssignmentResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	ShiftID        string  `json:"shift_id"`
	ShiftName      *string `json:"shift_name,omitempty"`
	ScheduleRuleID *string `json:"schedule_rule_id,omitempty"`
	StartDate      string  `json:"start_date"`
	EndDate        *string `json:"end_date,omitempty"`
	Status         string  `json:"status"`
}

type BulkCreateResponse struct {
	Created     int                  `json:"created"`
	Assignments []AssignmentResponse `json:"assignments"`
}

// ResolvedShift is the outcome of "what shift is this employee on today".
// Assignment is nil when nothing resolves; callers then fall back to the
// ALL punch policy.
type ResolvedShift struct {
	Assignment *ShiftAssignment
	ShiftID    string
	StartTime  string
	EndTime    string
	Policy     string
}

func ToResponse(a ShiftAssignment) AssignmentResponse {
	resp := AssignmentResponse{
		ID:             a.ID,
		EmployeeID:     a.EmployeeID,
		ShiftID:        a.ShiftID,
		ShiftName:      a.ShiftName,
		ScheduleRuleID: a.ScheduleRuleID,
		StartDate:      a.StartDate.Format("2006-01-02"),
		Status:         string(a.Status),
	}
	if a.EndDate != nil {
		end := a.EndDate.Format("2006-01-02")
		resp.EndDate = &end
	}
	return resp
}
