package attendance

import (
	"time"

	"github.com/clockwise-hr/timetrack-backend-go/internal/pkg/validator"
)

// ClockRequest is a single punch event. EmployeeID comes from the verified
// token, Timestamp from the server clock; neither is client-supplied.
type ClockRequest struct {
	EmployeeID string    `json:"-"`
	Type       string    `json:"type"`
	Timestamp  time.Time `json:"-"`
}

func (r ClockRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !validator.IsInSlice(r.Type, PunchTypeValues) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be IN or OUT"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ManualCorrectionRequest replaces a record's punches wholesale. Privileged
// path: it bypasses the correction-request workflow and never touches the
// payroll finalization flag.
type ManualCorrectionRequest struct {
	RecordID string
	Punches  []PunchInput `json:"punches"`
	Reason   *string      `json:"reason"`
}

type PunchInput struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
}

func (r ManualCorrectionRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.RecordID) {
		errs = append(errs, validator.ValidationError{Field: "record_id", Message: "is required"})
	}
	for _, p := range r.Punches {
		if !validator.IsInSlice(p.Type, PunchTypeValues) {
			errs = append(errs, validator.ValidationError{Field: "punches", Message: "every punch type must be IN or OUT"})
			break
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListFilter struct {
	EmployeeID *string
	StartDate  *string
	EndDate    *string
	Page       int
	Limit      int
}

type PunchResponse struct {
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
}

type RecordResponse struct {
	ID                  string          `json:"id"`
	EmployeeID          string          `json:"employee_id"`
	Date                string          `json:"date"`
	Punches             []PunchResponse `json:"punches"`
	WorkMinutes         int             `json:"work_minutes"`
	HasMissedPunch      bool            `json:"has_missed_punch"`
	ExceptionIDs        []string        `json:"exception_ids,omitempty"`
	FinalizedForPayroll bool            `json:"finalized_for_payroll"`
}

type ListRecordsResponse struct {
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	Records    []RecordResponse `json:"records"`
}

func ToResponse(rec Record) RecordResponse {
	punches := make([]PunchResponse, 0, len(rec.Punches))
	for _, p := range SortPunches(rec.Punches) {
		punches = append(punches, PunchResponse{
			Type:      string(p.Type),
			Timestamp: p.Timestamp.UTC().Format(time.RFC3339),
		})
	}
	return RecordResponse{
		ID:                  rec.ID,
		EmployeeID:          rec.EmployeeID,
		Date:                rec.Date.Format("2006-01-02"),
		Punches:             punches,
		WorkMinutes:         rec.WorkMinutes,
		HasMissedPunch:      rec.HasMissedPunch,
		ExceptionIDs:        rec.ExceptionIDs,
		FinalizedForPayroll: rec.FinalizedForPayroll,
	}
}
