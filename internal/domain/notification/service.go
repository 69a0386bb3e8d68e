package notification

import "context"

// Dispatcher accepts events fire-and-forget. Implementations must never
// block the caller on delivery.
type Dispatcher interface {
	Dispatch(ctx context.Context, event Event)
}

type LogEntryResponse struct {
	ID          string `json:"id"`
	RecipientID string `json:"recipient_id"`
	Type        string `json:"type"`
	Message     string `json:"message"`
	CreatedAt   string `json:"created_at"`
}

type ListResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	Entries    []LogEntryResponse `json:"entries"`
}

// Service exposes the audit listing over the log in addition to dispatch.
type Service interface {
	Dispatcher
	List(ctx context.Context, filter ListFilter) (ListResponse, error)
	Close()
}
