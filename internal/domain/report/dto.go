package report

import "github.com/clockwise-hr/timetrack-backend-go/internal/pkg/validator"

type Filter struct {
	EmployeeID *string
	StartDate  *string
	EndDate    *string
}

func (f Filter) Validate() error {
	var errs validator.ValidationErrors
	if f.StartDate != nil {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
		}
	}
	if f.EndDate != nil {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be YYYY-MM-DD"})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ExceptionFilter struct {
	Filter
	Type   *string
	Status *string
}

type AttendanceReportRow struct {
	RecordID       string  `json:"record_id"`
	EmployeeID     string  `json:"employee_id"`
	Date           string  `json:"date"`
	WorkMinutes    int     `json:"work_minutes"`
	HasMissedPunch bool    `json:"has_missed_punch"`
	LateMinutes    *int    `json:"late_minutes,omitempty"`
	HolidayName    *string `json:"holiday_name,omitempty"`
}

type AttendanceReport struct {
	Count            int                   `json:"count"`
	TotalWorkMinutes int                   `json:"total_work_minutes"`
	Rows             []AttendanceReportRow `json:"rows"`
}

type OvertimeReportRow struct {
	RecordID        string `json:"record_id"`
	EmployeeID      string `json:"employee_id"`
	Date            string `json:"date"`
	ShiftID         string `json:"shift_id"`
	ExpectedMinutes int    `json:"expected_minutes"`
	ActualMinutes   int    `json:"actual_minutes"`
	OvertimeMinutes int    `json:"overtime_minutes"`
}

// OvertimeReport lists only records with positive overtime; Count still
// covers every record examined.
type OvertimeReport struct {
	Count                int                 `json:"count"`
	TotalOvertimeMinutes int                 `json:"total_overtime_minutes"`
	Rows                 []OvertimeReportRow `json:"rows"`
}

type ExceptionReportRow struct {
	ExceptionID string `json:"exception_id"`
	EmployeeID  string `json:"employee_id"`
	Type        string `json:"type"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

type ExceptionReport struct {
	Count    int                  `json:"count"`
	ByType   map[string]int       `json:"by_type"`
	ByStatus map[string]int       `json:"by_status"`
	Rows     []ExceptionReportRow `json:"rows"`
}
