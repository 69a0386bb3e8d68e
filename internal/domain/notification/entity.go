package notification

import "time"

type EventType string

const (
	TypeMissedPunch         EventType = "missed_punch"
	TypeAttendanceCorrected EventType = "attendance_corrected"
	TypeCorrectionSubmitted EventType = "correction_submitted"
	TypeCorrectionReviewed  EventType = "correction_reviewed"
	TypeCorrectionEscalated EventType = "correction_escalated"
	TypeExceptionAssigned   EventType = "exception_assigned"
	TypeExceptionEscalated  EventType = "exception_escalated"
)

// Event is a fire-and-forget notification handed to the dispatcher. Delivery
// is the transport's concern; this core only records that the event was
// emitted.
type Event struct {
	RecipientID string
	Type        EventType
	Message     string
}

// LogEntry is the append-only audit trail of emitted events. Entries are
// never mutated after creation.
type LogEntry struct {
	ID          string
	RecipientID string
	Type        EventType
	Message     string
	CreatedAt   time.Time
}
