package shift

import (
	"github.com/clockwise-hr/timetrack-backend-go/internal/pkg/validator"
)

type CreateShiftTypeRequest struct {
	Name string `json:"name"`
}

func (r CreateShiftTypeRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateShiftTypeRequest struct {
	Name     *string `json:"name"`
	IsActive *bool   `json:"is_active"`
}

type CreateShiftRequest struct {
	ShiftTypeID string `json:"shift_type_id"`
	Name        string `json:"name"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	PunchPolicy string `json:"punch_policy"`
}

func (r CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.ShiftTypeID) {
		errs = append(errs, validator.ValidationError{Field: "shift_type_id", Message: "is required"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !validator.IsValidClockTime(r.StartTime) {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "must be HH:MM (24-hour)"})
	}
	if !validator.IsValidClockTime(r.EndTime) {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "must be HH:MM (24-hour)"})
	}
	if !validator.IsInSlice(r.PunchPolicy, PunchPolicyValues) {
		errs = append(errs, validator.ValidationError{Field: "punch_policy", Message: "must be one of ALL, FIRST_LAST"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateShiftRequest struct {
	Name        *string `json:"name"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
	PunchPolicy *string `json:"punch_policy"`
	IsActive    *bool   `json:"is_active"`
}

func (r UpdateShiftRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.StartTime != nil && !validator.IsValidClockTime(*r.StartTime) {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "must be HH:MM (24-hour)"})
	}
	if r.EndTime != nil && !validator.IsValidClockTime(*r.EndTime) {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "must be HH:MM (24-hour)"})
	}
	if r.PunchPolicy != nil && !validator.IsInSlice(*r.PunchPolicy, PunchPolicyValues) {
		errs = append(errs, validator.ValidationError{Field: "punch_policy", Message: "must be one of ALL, FIRST_LAST"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateScheduleRuleRequest struct {
	Name       string `json:"name"`
	Recurrence string `json:"recurrence"`
	RestDays   []int  `json:"rest_days"`
}

func (r CreateScheduleRuleRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	for _, d := range r.RestDays {
		if d < 1 || d > 7 {
			errs = append(errs, validator.ValidationError{Field: "rest_days", Message: "days must be 1 (Monday) through 7 (Sunday)"})
			break
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateScheduleRuleRequest struct {
	Name       *string `json:"name"`
	Recurrence *string `json:"recurrence"`
	RestDays   []int   `json:"rest_days"`
	IsActive   *bool   `json:"is_active"`
}

type ShiftTypeResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

type ShiftResponse struct {
	ID            string  `json:"id"`
	ShiftTypeID   string  `json:"shift_type_id"`
	ShiftTypeName *string `json:"shift_type_name,omitempty"`
	Name          string  `json:"name"`
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
	PunchPolicy   string  `json:"punch_policy"`
	IsActive      bool    `json:"is_active"`
}

type ScheduleRuleResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Recurrence string `json:"recurrence,omitempty"`
	RestDays   []int  `json:"rest_days,omitempty"`
	IsActive   bool   `json:"is_active"`
}
