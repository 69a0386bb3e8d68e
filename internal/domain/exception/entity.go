package exception

import "time"

type Type string

const (
	TypeMissedPunch    Type = "MISSED_PUNCH"
	TypeLateArrival    Type = "LATE_ARRIVAL"
	TypeEarlyDeparture Type = "EARLY_DEPARTURE"
	TypeOther          Type = "OTHER"
)

var TypeValues = []string{
	string(TypeMissedPunch),
	string(TypeLateArrival),
	string(TypeEarlyDeparture),
	string(TypeOther),
}

type Status string

const (
	StatusOpen      Status = "OPEN"
	StatusPending   Status = "PENDING"
	StatusEscalated Status = "ESCALATED"
	StatusResolved  Status = "RESOLVED"
)

var StatusValues = []string{
	string(StatusOpen),
	string(StatusPending),
	string(StatusEscalated),
	string(StatusResolved),
}

// TimeException flags an anomaly on exactly one attendance record and tracks
// who must act on it. Exceptions are never deleted, only status-transitioned.
type TimeException struct {
	ID                 string
	EmployeeID         string
	Type               Type
	AttendanceRecordID string
	AssigneeID         string
	Status             Status
	Reason             *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
