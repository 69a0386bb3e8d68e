package correction

import "time"

type Status string

const (
	StatusSubmitted Status = "SUBMITTED"
	StatusInReview  Status = "IN_REVIEW"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
	StatusEscalated Status = "ESCALATED"
)

var StatusValues = []string{
	string(StatusSubmitted),
	string(StatusInReview),
	string(StatusApproved),
	string(StatusRejected),
	string(StatusEscalated),
}

// transitions is the legal state machine. ESCALATED appears as a target here
// but is reserved for the escalation sweep; the user-facing update path
// rejects it separately.
var transitions = map[Status][]Status{
	StatusSubmitted: {StatusInReview, StatusEscalated},
	StatusInReview:  {StatusApproved, StatusRejected, StatusEscalated},
}

// CanTransition reports whether from → to is a legal move.
func CanTransition(from, to Status) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions leave status.
func IsTerminal(status Status) bool {
	return len(transitions[status]) == 0
}

// Request is an employee-initiated dispute over an attendance record. While
// a request is non-terminal the record is held out of payroll.
type Request struct {
	ID                 string
	EmployeeID         string
	AttendanceRecordID string
	Reason             string
	Status             Status
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
