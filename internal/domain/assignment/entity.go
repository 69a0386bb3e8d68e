package assignment

import "time"

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

var StatusValues = []string{
	string(StatusPending),
	string(StatusApproved),
	string(StatusRejected),
}

// ShiftAssignment binds an employee to a shift for a date range. EndDate nil
// means open-ended. Only APPROVED assignments participate in resolution.
type ShiftAssignment struct {
	ID             string
	EmployeeID     string
	ShiftID        string
	ScheduleRuleID *string
	DepartmentID   *string
	PositionID     *string
	StartDate      time.Time
	EndDate        *time.Time
	Status         Status
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// DTO
	ShiftName *string
}

// Covers reports whether date falls inside the assignment's range.
// Comparison is by calendar day.
func (a ShiftAssignment) Covers(date time.Time) bool {
	day := date.Truncate(24 * time.Hour)
	if day.Before(a.StartDate.Truncate(24 * time.Hour)) {
		return false
	}
	if a.EndDate == nil {
		return true
	}
	return !day.After(a.EndDate.Truncate(24 * time.Hour))
}
