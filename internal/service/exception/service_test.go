package exception

import (
	"context"
	"testing"
	"time"

	"github.com/clockwise-hr/timetrack-backend-go/internal/domain/attendance"
	"github.com/clockwise-hr/timetrack-backend-go/internal/domain/exception"
	"github.com/clockwise-hr/timetrack-backend-go/internal/domain/notification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExceptionRepo struct {
	exceptions map[string]exception.TimeException
}

func newFakeExceptionRepo() *fakeExceptionRepo {
	return &fakeExceptionRepo{exceptions: map[string]exception.TimeException{}}
}

func (f *fakeExceptionRepo) Create(_ context.Context, exc exception.TimeException) (exception.TimeException, error) {
	exc.CreatedAt = time.Now().UTC()
	exc.UpdatedAt = exc.CreatedAt
	f.exceptions[exc.ID] = exc
	return exc, nil
}

func (f *fakeExceptionRepo) GetByID(_ context.Context, id string) (exception.TimeException, error) {
	exc, ok := f.exceptions[id]
	if !ok {
		return exception.TimeException{}, exception.ErrExceptionNotFound
	}
	return exc, nil
}

func (f *fakeExceptionRepo) List(_ context.Context, _ exception.ListFilter) ([]exception.TimeException, int64, error) {
	out := make([]exception.TimeException, 0, len(f.exceptions))
	for _, exc := range f.exceptions {
		out = append(out, exc)
	}
	return out, int64(len(out)), nil
}

func (f *fakeExceptionRepo) UpdateStatus(_ context.Context, id string, status exception.Status, reason *string) error {
	exc, ok := f.exceptions[id]
	if !ok {
		return exception.ErrExceptionNotFound
	}
	exc.Status = status
	exc.Reason = reason
	exc.UpdatedAt = time.Now().UTC()
	f.exceptions[id] = exc
	return nil
}

func (f *fakeExceptionRepo) ListStalePending(_ context.Context, olderThan time.Time, limit int) ([]exception.TimeException, error) {
	var out []exception.TimeException
	for _, exc := range f.exceptions {
		if exc.Status == exception.StatusPending && exc.UpdatedAt.Before(olderThan) {
			out = append(out, exc)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func (f *fakeExceptionRepo) ListPendingCreatedBefore(_ context.Context, cutoff time.Time, limit int) ([]exception.TimeException, error) {
	var out []exception.TimeException
	for _, exc := range f.exceptions {
		if exc.Status == exception.StatusPending && exc.CreatedAt.Before(cutoff) {
			out = append(out, exc)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

type fakeAttendanceRepo struct {
	records map[string]attendance.Record
}

func newFakeAttendanceRepo(ids ...string) *fakeAttendanceRepo {
	f := &fakeAttendanceRepo{records: map[string]attendance.Record{}}
	for _, id := range ids {
		f.records[id] = attendance.Record{ID: id, EmployeeID: "emp-1"}
	}
	return f
}

func (f *fakeAttendanceRepo) Create(_ context.Context, rec attendance.Record) (attendance.Record, error) {
	f.records[rec.ID] = rec
	return rec, nil
}

func (f *fakeAttendanceRepo) GetByID(_ context.Context, id string) (attendance.Record, error) {
	rec, ok := f.records[id]
	if !ok {
		return attendance.Record{}, attendance.ErrRecordNotFound
	}
	return rec, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, _ string, _ time.Time) (*attendance.Record, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) UpdatePunches(_ context.Context, rec attendance.Record) error {
	f.records[rec.ID] = rec
	return nil
}

func (f *fakeAttendanceRepo) SetFinalized(_ context.Context, id string, finalized bool) error {
	rec, ok := f.records[id]
	if !ok {
		return attendance.ErrRecordNotFound
	}
	rec.FinalizedForPayroll = finalized
	f.records[id] = rec
	return nil
}

func (f *fakeAttendanceRepo) List(_ context.Context, _ attendance.ListFilter) ([]attendance.Record, int64, error) {
	return nil, 0, nil
}

type fakeDispatcher struct {
	events []notification.Event
}

func (f *fakeDispatcher) Dispatch(_ context.Context, event notification.Event) {
	f.events = append(f.events, event)
}

func TestCreate_AssignsAndNotifies(t *testing.T) {
	t.Parallel()

	repo := newFakeExceptionRepo()
	dispatcher := &fakeDispatcher{}
	svc := NewManagerService(repo, newFakeAttendanceRepo("rec-1"), dispatcher, 48*time.Hour)

	resp, err := svc.Create(context.Background(), exception.CreateRequest{
		EmployeeID:         "emp-1",
		Type:               "MISSED_PUNCH",
		AttendanceRecordID: "rec-1",
		AssigneeID:         "mgr-1",
	})
	require.NoError(t, err)

	assert.Equal(t, string(exception.StatusOpen), resp.Status)
	assert.Equal(t, "mgr-1", resp.AssigneeID)
	require.Len(t, dispatcher.events, 1)
	assert.Equal(t, notification.TypeExceptionAssigned, dispatcher.events[0].Type)
	assert.Equal(t, "mgr-1", dispatcher.events[0].RecipientID)
}

func TestCreate_UnknownRecordWritesNothing(t *testing.T) {
	t.Parallel()

	repo := newFakeExceptionRepo()
	dispatcher := &fakeDispatcher{}
	svc := NewManagerService(repo, newFakeAttendanceRepo(), dispatcher, 48*time.Hour)

	_, err := svc.Create(context.Background(), exception.CreateRequest{
		EmployeeID:         "emp-1",
		Type:               "MISSED_PUNCH",
		AttendanceRecordID: "missing",
		AssigneeID:         "mgr-1",
	})

	assert.ErrorIs(t, err, attendance.ErrRecordNotFound)
	assert.Empty(t, repo.exceptions)
	assert.Empty(t, dispatcher.events)
}

func TestCreate_RejectsUnknownType(t *testing.T) {
	t.Parallel()

	svc := NewManagerService(newFakeExceptionRepo(), newFakeAttendanceRepo("rec-1"), &fakeDispatcher{}, 48*time.Hour)

	_, err := svc.Create(context.Background(), exception.CreateRequest{
		EmployeeID:         "emp-1",
		Type:               "VACATION",
		AttendanceRecordID: "rec-1",
		AssigneeID:         "mgr-1",
	})
	assert.Error(t, err)
}

func TestEscalateStale_OnlyPastWindow(t *testing.T) {
	t.Parallel()

	repo := newFakeExceptionRepo()
	dispatcher := &fakeDispatcher{}
	svc := NewManagerService(repo, newFakeAttendanceRepo(), dispatcher, 48*time.Hour)

	now := time.Now().UTC()
	repo.exceptions["old"] = exception.TimeException{
		ID: "old", AssigneeID: "mgr-1", Status: exception.StatusPending,
		CreatedAt: now.Add(-72 * time.Hour), UpdatedAt: now.Add(-72 * time.Hour),
	}
	repo.exceptions["fresh"] = exception.TimeException{
		ID: "fresh", AssigneeID: "mgr-2", Status: exception.StatusPending,
		CreatedAt: now.Add(-time.Hour), UpdatedAt: now.Add(-time.Hour),
	}
	repo.exceptions["resolved"] = exception.TimeException{
		ID: "resolved", AssigneeID: "mgr-3", Status: exception.StatusResolved,
		CreatedAt: now.Add(-90 * time.Hour), UpdatedAt: now.Add(-90 * time.Hour),
	}

	escalated, err := svc.EscalateStale(context.Background(), 48*time.Hour, 500)
	require.NoError(t, err)

	assert.Equal(t, 1, escalated)
	assert.Equal(t, exception.StatusEscalated, repo.exceptions["old"].Status)
	assert.Equal(t, exception.StatusPending, repo.exceptions["fresh"].Status)
	assert.Equal(t, exception.StatusResolved, repo.exceptions["resolved"].Status)

	require.Len(t, dispatcher.events, 1)
	assert.Equal(t, notification.TypeExceptionEscalated, dispatcher.events[0].Type)
	assert.Equal(t, "mgr-1", dispatcher.events[0].RecipientID)
}

func TestEscalateStale_WindowBoundaryWithFixedClock(t *testing.T) {
	t.Parallel()

	repo := newFakeExceptionRepo()
	dispatcher := &fakeDispatcher{}
	fixedNow := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	svc := &ManagerServiceImpl{
		exceptionRepo:  repo,
		attendanceRepo: newFakeAttendanceRepo(),
		dispatcher:     dispatcher,
		window:         48 * time.Hour,
		now:            func() time.Time { return fixedNow },
	}

	repo.exceptions["past-window"] = exception.TimeException{
		ID: "past-window", AssigneeID: "mgr-1", Status: exception.StatusPending,
		UpdatedAt: fixedNow.Add(-48*time.Hour - time.Minute),
	}
	repo.exceptions["inside-window"] = exception.TimeException{
		ID: "inside-window", AssigneeID: "mgr-2", Status: exception.StatusPending,
		UpdatedAt: fixedNow.Add(-48*time.Hour + time.Minute),
	}

	escalated, err := svc.EscalateStale(context.Background(), 48*time.Hour, 500)
	require.NoError(t, err)

	assert.Equal(t, 1, escalated)
	assert.Equal(t, exception.StatusEscalated, repo.exceptions["past-window"].Status)
	assert.Equal(t, exception.StatusPending, repo.exceptions["inside-window"].Status)
}

func TestEscalateStale_SecondPassIsNoop(t *testing.T) {
	t.Parallel()

	repo := newFakeExceptionRepo()
	svc := NewManagerService(repo, newFakeAttendanceRepo(), &fakeDispatcher{}, 48*time.Hour)

	now := time.Now().UTC()
	repo.exceptions["old"] = exception.TimeException{
		ID: "old", AssigneeID: "mgr-1", Status: exception.StatusPending,
		CreatedAt: now.Add(-72 * time.Hour), UpdatedAt: now.Add(-72 * time.Hour),
	}

	first, err := svc.EscalateStale(context.Background(), 48*time.Hour, 500)
	require.NoError(t, err)
	require.Equal(t, 1, first)

	second, err := svc.EscalateStale(context.Background(), 48*time.Hour, 500)
	require.NoError(t, err)
	assert.Zero(t, second)
}

func TestUpdateStatus_PendingRunsInlinePass(t *testing.T) {
	t.Parallel()

	repo := newFakeExceptionRepo()
	dispatcher := &fakeDispatcher{}
	svc := NewManagerService(repo, newFakeAttendanceRepo("rec-1"), dispatcher, 48*time.Hour)

	created, err := svc.Create(context.Background(), exception.CreateRequest{
		EmployeeID:         "emp-1",
		Type:               "LATE_ARRIVAL",
		AttendanceRecordID: "rec-1",
		AssigneeID:         "mgr-1",
	})
	require.NoError(t, err)

	// Another exception already past the window gets swept by the inline
	// pass triggered by the PENDING transition.
	now := time.Now().UTC()
	repo.exceptions["stale"] = exception.TimeException{
		ID: "stale", AssigneeID: "mgr-2", Status: exception.StatusPending,
		CreatedAt: now.Add(-72 * time.Hour), UpdatedAt: now.Add(-72 * time.Hour),
	}

	resp, err := svc.UpdateStatus(context.Background(), created.ID, exception.UpdateStatusRequest{Status: "PENDING"})
	require.NoError(t, err)

	assert.Equal(t, string(exception.StatusPending), resp.Status)
	assert.Equal(t, exception.StatusEscalated, repo.exceptions["stale"].Status)
	// The freshly parked exception is inside its window and stays PENDING.
	assert.Equal(t, exception.StatusPending, repo.exceptions[created.ID].Status)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	t.Parallel()

	svc := NewManagerService(newFakeExceptionRepo(), newFakeAttendanceRepo(), &fakeDispatcher{}, 48*time.Hour)

	_, err := svc.UpdateStatus(context.Background(), "missing", exception.UpdateStatusRequest{Status: "RESOLVED"})
	assert.ErrorIs(t, err, exception.ErrExceptionNotFound)
}
