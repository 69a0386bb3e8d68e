package notification

import "context"

type ListFilter struct {
	RecipientID *string
	Type        *string
	Page        int
	Limit       int
}

type Repository interface {
	// AppendBatch inserts log entries. The log is append-only: there is no
	// update or delete path.
	AppendBatch(ctx context.Context, entries []LogEntry) error

	List(ctx context.Context, filter ListFilter) ([]LogEntry, int64, error)
}
