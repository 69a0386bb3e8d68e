package attendance

import "time"

type PunchType string

const (
	PunchIn  PunchType = "IN"
	PunchOut PunchType = "OUT"
)

var PunchTypeValues = []string{
	string(PunchIn),
	string(PunchOut),
}

// Punch is a single clock event. Punches only exist as members of a
// record's sequence and are stored with it.
type Punch struct {
	Type      PunchType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
}

// Record is the canonical daily attendance document: one logical record per
// employee per calendar day. WorkMinutes and HasMissedPunch are derived from
// the punch sequence and recomputed on every mutation. Version backs the
// optimistic concurrency check on punch updates.
type Record struct {
	ID                  string
	EmployeeID          string
	Date                time.Time
	Punches             []Punch
	WorkMinutes         int
	HasMissedPunch      bool
	ExceptionIDs        []string
	FinalizedForPayroll bool
	Version             int64
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
