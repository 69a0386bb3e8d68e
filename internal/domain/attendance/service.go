package attendance

import "context"

// PunchService ingests clock events and owns all mutation of the daily
// punch sequence.
type PunchService interface {
	// Clock appends a punch to today's record (creating it if needed),
	// applies the governing shift's punch policy and recomputes derived
	// fields. Raises a missed-punch exception when the day becomes
	// incomplete.
	Clock(ctx context.Context, req ClockRequest) (RecordResponse, error)

	// OverwritePunches replaces a record's punches wholesale and emits one
	// audit notification (privileged use).
	OverwritePunches(ctx context.Context, req ManualCorrectionRequest) (RecordResponse, error)

	Get(ctx context.Context, id string) (RecordResponse, error)
	List(ctx context.Context, filter ListFilter) (ListRecordsResponse, error)
}
