package timerule

import (
	"github.com/clockwise-hr/timetrack-backend-go/internal/pkg/validator"
)

type CreateOvertimeRuleRequest struct {
	Name                  string  `json:"name"`
	DailyThresholdMinutes int     `json:"daily_threshold_minutes"`
	Multiplier            float64 `json:"multiplier"`
}

func (r CreateOvertimeRuleRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.DailyThresholdMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "daily_threshold_minutes", Message: "must not be negative"})
	}
	if r.Multiplier <= 0 {
		errs = append(errs, validator.ValidationError{Field: "multiplier", Message: "must be positive"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateOvertimeRuleRequest struct {
	Name                  *string  `json:"name"`
	DailyThresholdMinutes *int     `json:"daily_threshold_minutes"`
	Multiplier            *float64 `json:"multiplier"`
	IsActive              *bool    `json:"is_active"`
}

type CreateLatenessRuleRequest struct {
	Name         string `json:"name"`
	GraceMinutes int    `json:"grace_minutes"`
}

func (r CreateLatenessRuleRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.GraceMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "grace_minutes", Message: "must not be negative"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateLatenessRuleRequest struct {
	Name         *string `json:"name"`
	GraceMinutes *int    `json:"grace_minutes"`
	IsActive     *bool   `json:"is_active"`
}

type CreateHolidayRequest struct {
	Name string `json:"name"`
	Date string `json:"date"`
}

func (r CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateHolidayRequest struct {
	Name *string `json:"name"`
	Date *string `json:"date"`
}

type OvertimeRuleResponse struct {
	ID                    string  `json:"id"`
	Name                  string  `json:"name"`
	DailyThresholdMinutes int     `json:"daily_threshold_minutes"`
	Multiplier            float64 `json:"multiplier"`
	IsActive              bool    `json:"is_active"`
}

type LatenessRuleResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	GraceMinutes int    `json:"grace_minutes"`
	IsActive     bool   `json:"is_active"`
}

type HolidayResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Date string `json:"date"`
}
