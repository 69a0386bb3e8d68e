package notification

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/clockwise-hr/timetrack-backend-go/internal/domain/notification"
	"github.com/google/uuid"
)

const (
	queueSize     = 256
	flushBatch    = 32
	flushInterval = 2 * time.Second
)

// ServiceImpl buffers dispatched events on a channel and appends them to the
// audit log in batches from a single worker goroutine. Dispatch never blocks:
// when the queue is full the event is dropped and logged.
type ServiceImpl struct {
	repo  notification.Repository
	queue chan notification.LogEntry
	done  chan struct{}
	wg    sync.WaitGroup

	closeOnce sync.Once
}

func NewService(repo notification.Repository) notification.Service {
	s := &ServiceImpl{
		repo:  repo,
		queue: make(chan notification.LogEntry, queueSize),
		done:  make(chan struct{}),
	}
	s.wg.Add(1)
	go s.worker()
	return s
}

// Dispatch implements notification.Dispatcher.
func (s *ServiceImpl) Dispatch(_ context.Context, event notification.Event) {
	entry := notification.LogEntry{
		ID:          uuid.NewString(),
		RecipientID: event.RecipientID,
		Type:        event.Type,
		Message:     event.Message,
		CreatedAt:   time.Now().UTC(),
	}

	select {
	case s.queue <- entry:
	default:
		slog.Warn("notification queue full, dropping event",
			"recipient_id", event.RecipientID,
			"type", event.Type,
		)
	}
}

// List implements notification.Service.
func (s *ServiceImpl) List(ctx context.Context, filter notification.ListFilter) (notification.ListResponse, error) {
	if filter.Limit == 0 {
		filter.Limit = 20
	}
	if filter.Page == 0 {
		filter.Page = 1
	}

	entries, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return notification.ListResponse{}, fmt.Errorf("failed to list notification log: %w", err)
	}

	responses := make([]notification.LogEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, notification.LogEntryResponse{
			ID:          entry.ID,
			RecipientID: entry.RecipientID,
			Type:        string(entry.Type),
			Message:     entry.Message,
			CreatedAt:   entry.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	return notification.ListResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Entries:    responses,
	}, nil
}

// Close implements notification.Service. It stops the worker after draining
// whatever is already queued.
func (s *ServiceImpl) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
		s.wg.Wait()
	})
}

func (s *ServiceImpl) worker() {
	defer s.wg.Done()

	ticker := time.NewTicker(flushInterval)
	defer ticker.Stop()

	batch := make([]notification.LogEntry, 0, flushBatch)
	for {
		select {
		case entry := <-s.queue:
			batch = append(batch, entry)
			if len(batch) >= flushBatch {
				batch = s.flush(batch)
			}
		case <-ticker.C:
			batch = s.flush(batch)
		case <-s.done:
			// Drain remaining queued entries before exiting.
			for {
				select {
				case entry := <-s.queue:
					batch = append(batch, entry)
				default:
					s.flush(batch)
					return
				}
			}
		}
	}
}

func (s *ServiceImpl) flush(batch []notification.LogEntry) []notification.LogEntry {
	if len(batch) == 0 {
		return batch
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.repo.AppendBatch(ctx, batch); err != nil {
		slog.Error("failed to append notification log batch", "error", err, "size", len(batch))
	}
	return batch[:0]
}
