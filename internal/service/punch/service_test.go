package punch

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/clockwise-hr/timetrack-backend-go/internal/domain/assignment"
	"github.com/clockwise-hr/timetrack-backend-go/internal/domain/attendance"
	"github.com/clockwise-hr/timetrack-backend-go/internal/domain/notification"
	"github.com/clockwise-hr/timetrack-backend-go/internal/pkg/locking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepo struct {
	mu      sync.Mutex
	records map[string]attendance.Record

	// failUpdates makes the next n UpdatePunches calls return a version
	// conflict.
	failUpdates int
	updateCalls int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: map[string]attendance.Record{}}
}

func (f *fakeAttendanceRepo) Create(_ context.Context, rec attendance.Record) (attendance.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec.Version = 1
	f.records[rec.ID] = rec
	return rec, nil
}

func (f *fakeAttendanceRepo) GetByID(_ context.Context, id string) (attendance.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.records[id]
	if !ok {
		return attendance.Record{}, attendance.ErrRecordNotFound
	}
	return rec, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID && rec.Date.Equal(date) {
			out := rec
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) UpdatePunches(_ context.Context, rec attendance.Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updateCalls++
	if f.failUpdates > 0 {
		f.failUpdates--
		return attendance.ErrVersionConflict
	}
	stored, ok := f.records[rec.ID]
	if !ok {
		return attendance.ErrRecordNotFound
	}
	if stored.Version != rec.Version {
		return attendance.ErrVersionConflict
	}
	rec.Version++
	f.records[rec.ID] = rec
	return nil
}

func (f *fakeAttendanceRepo) SetFinalized(_ context.Context, id string, finalized bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.records[id]
	if !ok {
		return attendance.ErrRecordNotFound
	}
	rec.FinalizedForPayroll = finalized
	f.records[id] = rec
	return nil
}

func (f *fakeAttendanceRepo) List(_ context.Context, _ attendance.ListFilter) ([]attendance.Record, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]attendance.Record, 0, len(f.records))
	for _, rec := range f.records {
		out = append(out, rec)
	}
	return out, int64(len(out)), nil
}

type fakeResolver struct {
	assignment.Service
	resolved assignment.ResolvedShift
}

func (f *fakeResolver) Resolve(_ context.Context, _ string, _ time.Time) (assignment.ResolvedShift, error) {
	return f.resolved, nil
}

type fakeDispatcher struct {
	mu     sync.Mutex
	events []notification.Event
}

func (f *fakeDispatcher) Dispatch(_ context.Context, event notification.Event) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
}

func (f *fakeDispatcher) byType(t notification.EventType) []notification.Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []notification.Event
	for _, e := range f.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func newTestService(repo *fakeAttendanceRepo, policy string, dispatcher *fakeDispatcher, now time.Time) *PunchServiceImpl {
	resolved := assignment.ResolvedShift{Policy: policy}
	if policy != "ALL" {
		resolved.Assignment = &assignment.ShiftAssignment{ID: "asg-1"}
		resolved.ShiftID = "shift-1"
		resolved.StartTime = "09:00"
		resolved.EndTime = "17:00"
	}
	return &PunchServiceImpl{
		attendanceRepo: repo,
		resolver:       &fakeResolver{resolved: resolved},
		dispatcher:     dispatcher,
		locks:          locking.NewKeyedMutex(),
		now:            func() time.Time { return now },
	}
}

func TestClock_CreatesRecordOnFirstPunch(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, "ALL", &fakeDispatcher{}, now)

	resp, err := svc.Clock(context.Background(), attendance.ClockRequest{EmployeeID: "emp-1", Type: "IN"})
	require.NoError(t, err)

	assert.Equal(t, "emp-1", resp.EmployeeID)
	assert.Equal(t, "2026-03-02", resp.Date)
	require.Len(t, resp.Punches, 1)
	assert.Equal(t, "IN", resp.Punches[0].Type)
	assert.Equal(t, 0, resp.WorkMinutes)
	assert.True(t, resp.HasMissedPunch)
	assert.True(t, resp.FinalizedForPayroll)
}

func TestClock_PairComputesWorkMinutes(t *testing.T) {
	t.Parallel()

	in := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	repo := newFakeAttendanceRepo()
	dispatcher := &fakeDispatcher{}

	svc := newTestService(repo, "ALL", dispatcher, in)
	_, err := svc.Clock(context.Background(), attendance.ClockRequest{EmployeeID: "emp-1", Type: "IN"})
	require.NoError(t, err)

	svc.now = func() time.Time { return in.Add(8 * time.Hour) }
	resp, err := svc.Clock(context.Background(), attendance.ClockRequest{EmployeeID: "emp-1", Type: "OUT"})
	require.NoError(t, err)

	assert.Equal(t, 480, resp.WorkMinutes)
	assert.False(t, resp.HasMissedPunch)
	assert.Empty(t, dispatcher.byType(notification.TypeMissedPunch))
}

func TestClock_FirstLastPolicyCollapsesMidday(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, "FIRST_LAST", &fakeDispatcher{}, base)

	punches := []struct {
		typ    string
		offset time.Duration
	}{
		{"IN", 0},
		{"OUT", 3 * time.Hour},
		{"IN", 4 * time.Hour},
		{"OUT", 9 * time.Hour},
	}

	var resp attendance.RecordResponse
	for _, p := range punches {
		svc.now = func() time.Time { return base.Add(p.offset) }
		var err error
		resp, err = svc.Clock(context.Background(), attendance.ClockRequest{EmployeeID: "emp-1", Type: p.typ})
		require.NoError(t, err)
	}

	// Only the first IN and the last OUT survive.
	require.Len(t, resp.Punches, 2)
	assert.Equal(t, "IN", resp.Punches[0].Type)
	assert.Equal(t, "OUT", resp.Punches[1].Type)
	assert.Equal(t, 540, resp.WorkMinutes)
}

func TestClock_OutWithMissedPunchNotifies(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC)
	repo := newFakeAttendanceRepo()
	dispatcher := &fakeDispatcher{}
	svc := newTestService(repo, "ALL", dispatcher, now)

	// An OUT with no prior IN leaves the day incomplete.
	resp, err := svc.Clock(context.Background(), attendance.ClockRequest{EmployeeID: "emp-1", Type: "OUT"})
	require.NoError(t, err)

	assert.True(t, resp.HasMissedPunch)
	events := dispatcher.byType(notification.TypeMissedPunch)
	require.Len(t, events, 1)
	assert.Equal(t, "emp-1", events[0].RecipientID)
}

func TestClock_RetriesOnVersionConflict(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, "ALL", &fakeDispatcher{}, now)

	_, err := svc.Clock(context.Background(), attendance.ClockRequest{EmployeeID: "emp-1", Type: "IN"})
	require.NoError(t, err)

	repo.failUpdates = 2
	svc.now = func() time.Time { return now.Add(8 * time.Hour) }
	resp, err := svc.Clock(context.Background(), attendance.ClockRequest{EmployeeID: "emp-1", Type: "OUT"})
	require.NoError(t, err)

	assert.Equal(t, 480, resp.WorkMinutes)
	assert.GreaterOrEqual(t, repo.updateCalls, 3)
}

func TestClock_RejectsUnknownPunchType(t *testing.T) {
	t.Parallel()

	svc := newTestService(newFakeAttendanceRepo(), "ALL", &fakeDispatcher{}, time.Now())

	_, err := svc.Clock(context.Background(), attendance.ClockRequest{EmployeeID: "emp-1", Type: "LUNCH"})
	assert.Error(t, err)
}

func TestOverwritePunches_ReplacesAndNotifies(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	repo := newFakeAttendanceRepo()
	dispatcher := &fakeDispatcher{}
	svc := newTestService(repo, "ALL", dispatcher, now)

	created, err := svc.Clock(context.Background(), attendance.ClockRequest{EmployeeID: "emp-1", Type: "IN"})
	require.NoError(t, err)

	reason := "forgot badge at the gate"
	resp, err := svc.OverwritePunches(context.Background(), attendance.ManualCorrectionRequest{
		RecordID: created.ID,
		Punches: []attendance.PunchInput{
			{Type: "IN", Timestamp: now},
			{Type: "OUT", Timestamp: now.Add(7 * time.Hour)},
		},
		Reason: &reason,
	})
	require.NoError(t, err)

	assert.Equal(t, 420, resp.WorkMinutes)
	assert.False(t, resp.HasMissedPunch)
	// The privileged path never touches the payroll flag.
	assert.True(t, resp.FinalizedForPayroll)

	events := dispatcher.byType(notification.TypeAttendanceCorrected)
	require.Len(t, events, 1)
	assert.Contains(t, events[0].Message, reason)
}

func TestOverwritePunches_DefaultsReason(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	repo := newFakeAttendanceRepo()
	dispatcher := &fakeDispatcher{}
	svc := newTestService(repo, "ALL", dispatcher, now)

	created, err := svc.Clock(context.Background(), attendance.ClockRequest{EmployeeID: "emp-1", Type: "IN"})
	require.NoError(t, err)

	_, err = svc.OverwritePunches(context.Background(), attendance.ManualCorrectionRequest{
		RecordID: created.ID,
		Punches:  []attendance.PunchInput{{Type: "IN", Timestamp: now}},
	})
	require.NoError(t, err)

	events := dispatcher.byType(notification.TypeAttendanceCorrected)
	require.Len(t, events, 1)
	assert.Contains(t, events[0].Message, "no reason provided")
}

func TestOverwritePunches_UnknownRecord(t *testing.T) {
	t.Parallel()

	svc := newTestService(newFakeAttendanceRepo(), "ALL", &fakeDispatcher{}, time.Now())

	_, err := svc.OverwritePunches(context.Background(), attendance.ManualCorrectionRequest{
		RecordID: "missing",
		Punches:  []attendance.PunchInput{{Type: "IN", Timestamp: time.Now()}},
	})
	assert.ErrorIs(t, err, attendance.ErrRecordNotFound)
}

func TestClock_ConcurrentPunchesSameDay(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, "ALL", &fakeDispatcher{}, now)

	const workers = 16
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := svc.Clock(context.Background(), attendance.ClockRequest{EmployeeID: "emp-1", Type: "IN"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// All punches land on a single record for the day.
	require.Len(t, repo.records, 1)
	for _, rec := range repo.records {
		assert.Len(t, rec.Punches, workers)
	}
}
