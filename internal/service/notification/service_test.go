package notification

import (
	"context"
	"sync"
	"testing"

	"github.com/clockwise-hr/timetrack-backend-go/internal/domain/notification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLogRepo struct {
	mu      sync.Mutex
	entries []notification.LogEntry
}

func (f *fakeLogRepo) AppendBatch(_ context.Context, entries []notification.LogEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, entries...)
	return nil
}

func (f *fakeLogRepo) List(_ context.Context, filter notification.ListFilter) ([]notification.LogEntry, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []notification.LogEntry
	for _, entry := range f.entries {
		if filter.RecipientID != nil && entry.RecipientID != *filter.RecipientID {
			continue
		}
		out = append(out, entry)
	}
	return out, int64(len(out)), nil
}

func TestDispatch_EventsReachTheLogOnClose(t *testing.T) {
	t.Parallel()

	repo := &fakeLogRepo{}
	svc := NewService(repo)

	for i := 0; i < 10; i++ {
		svc.Dispatch(context.Background(), notification.Event{
			RecipientID: "emp-1",
			Type:        notification.TypeMissedPunch,
			Message:     "incomplete day",
		})
	}
	svc.Close()

	repo.mu.Lock()
	defer repo.mu.Unlock()
	assert.Len(t, repo.entries, 10)
	for _, entry := range repo.entries {
		assert.NotEmpty(t, entry.ID)
		assert.False(t, entry.CreatedAt.IsZero())
	}
}

func TestDispatch_NeverBlocksWhenQueueIsFull(t *testing.T) {
	t.Parallel()

	repo := &fakeLogRepo{}
	svc := NewService(repo)
	defer svc.Close()

	// Push well past the queue capacity; overflow is dropped, not blocked on.
	for i := 0; i < queueSize*4; i++ {
		svc.Dispatch(context.Background(), notification.Event{
			RecipientID: "emp-1",
			Type:        notification.TypeCorrectionSubmitted,
			Message:     "request submitted",
		})
	}
}

func TestList_FiltersByRecipient(t *testing.T) {
	t.Parallel()

	repo := &fakeLogRepo{}
	svc := NewService(repo)

	svc.Dispatch(context.Background(), notification.Event{RecipientID: "emp-1", Type: notification.TypeMissedPunch, Message: "a"})
	svc.Dispatch(context.Background(), notification.Event{RecipientID: "emp-2", Type: notification.TypeMissedPunch, Message: "b"})
	svc.Close()

	recipient := "emp-1"
	resp, err := svc.List(context.Background(), notification.ListFilter{RecipientID: &recipient})
	require.NoError(t, err)

	assert.EqualValues(t, 1, resp.TotalCount)
	require.Len(t, resp.Entries, 1)
	assert.Equal(t, "emp-1", resp.Entries[0].RecipientID)
}

func TestClose_IsIdempotent(t *testing.T) {
	t.Parallel()

	svc := NewService(&fakeLogRepo{})
	svc.Close()
	svc.Close()
}
