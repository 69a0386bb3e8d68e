package timerule

import "time"

// OvertimeRule configures how reporting classifies overtime. Rules are pure
// configuration: nothing on the attendance record depends on them directly.
type OvertimeRule struct {
	ID                    string
	Name                  string
	DailyThresholdMinutes int
	Multiplier            float64
	IsActive              bool
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// LatenessRule configures the grace period applied when reporting flags a
// late arrival against the shift's start time.
type LatenessRule struct {
	ID           string
	Name         string
	GraceMinutes int
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Holiday struct {
	ID        string
	Name      string
	Date      time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
