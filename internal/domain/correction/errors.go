package correction

import "errors"

var (
	ErrCorrectionNotFound       = errors.New("correction request not found")
	ErrInvalidStatusTransition  = errors.New("illegal correction status transition")
	ErrEscalationReservedToSweep = errors.New("ESCALATED can only be set by the escalation sweep")
)
