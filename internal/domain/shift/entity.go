package shift

import "time"

// PunchPolicy governs how raw punches are retained within a day.
type PunchPolicy string

const (
	// PunchPolicyAll keeps every punch as submitted.
	PunchPolicyAll PunchPolicy = "ALL"
	// PunchPolicyFirstLast collapses the day to the first IN and last OUT.
	PunchPolicyFirstLast PunchPolicy = "FIRST_LAST"
)

var PunchPolicyValues = []string{
	string(PunchPolicyAll),
	string(PunchPolicyFirstLast),
}

type ShiftType struct {
	ID        string
	Name      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Shift is a reusable time-window template. StartTime and EndTime are
// "HH:MM" 24-hour wall-clock strings in the employer's operating timezone;
// an EndTime earlier than StartTime means the shift crosses midnight.
type Shift struct {
	ID          string
	ShiftTypeID string
	Name        string
	StartTime   string
	EndTime     string
	PunchPolicy PunchPolicy
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DTO
	ShiftTypeName *string
}

// ExpectedMinutes returns the scheduled length of the shift window.
func (s Shift) ExpectedMinutes() int {
	start := clockMinutes(s.StartTime)
	end := clockMinutes(s.EndTime)
	if end < start {
		end += 24 * 60
	}
	return end - start
}

func clockMinutes(hhmm string) int {
	if len(hhmm) != 5 {
		return 0
	}
	h := int(hhmm[0]-'0')*10 + int(hhmm[1]-'0')
	m := int(hhmm[3]-'0')*10 + int(hhmm[4]-'0')
	return h*60 + m
}

// ScheduleRule carries optional recurrence metadata for an assignment,
// e.g. a rest-day pattern or rotation cadence.
type ScheduleRule struct {
	ID         string
	Name       string
	Recurrence string
	RestDays   []int // 1=Monday ... 7=Sunday
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
