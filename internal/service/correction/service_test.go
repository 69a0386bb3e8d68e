package correction

import (
	"context"
	"testing"
	"time"

	"github.com/clockwise-hr/timetrack-backend-go/internal/domain/attendance"
	"github.com/clockwise-hr/timetrack-backend-go/internal/domain/correction"
	"github.com/clockwise-hr/timetrack-backend-go/internal/domain/exception"
	"github.com/clockwise-hr/timetrack-backend-go/internal/domain/notification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCorrectionRepo struct {
	requests map[string]correction.Request
}

func newFakeCorrectionRepo() *fakeCorrectionRepo {
	return &fakeCorrectionRepo{requests: map[string]correction.Request{}}
}

func (f *fakeCorrectionRepo) Create(_ context.Context, req correction.Request) (correction.Request, error) {
	req.CreatedAt = time.Now().UTC()
	req.UpdatedAt = req.CreatedAt
	f.requests[req.ID] = req
	return req, nil
}

func (f *fakeCorrectionRepo) GetByID(_ context.Context, id string) (correction.Request, error) {
	req, ok := f.requests[id]
	if !ok {
		return correction.Request{}, correction.ErrCorrectionNotFound
	}
	return req, nil
}

func (f *fakeCorrectionRepo) List(_ context.Context, _ correction.ListFilter) ([]correction.Request, int64, error) {
	out := make([]correction.Request, 0, len(f.requests))
	for _, req := range f.requests {
		out = append(out, req)
	}
	return out, int64(len(out)), nil
}

func (f *fakeCorrectionRepo) UpdateStatus(_ context.Context, id string, status correction.Status) error {
	req, ok := f.requests[id]
	if !ok {
		return correction.ErrCorrectionNotFound
	}
	req.Status = status
	req.UpdatedAt = time.Now().UTC()
	f.requests[id] = req
	return nil
}

func (f *fakeCorrectionRepo) ListStaleSubmitted(_ context.Context, cutoff time.Time, limit int) ([]correction.Request, error) {
	var out []correction.Request
	for _, req := range f.requests {
		if req.Status == correction.StatusSubmitted && req.CreatedAt.Before(cutoff) {
			out = append(out, req)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func (f *fakeCorrectionRepo) HasOpenForRecord(_ context.Context, recordID string) (bool, error) {
	for _, req := range f.requests {
		if req.AttendanceRecordID != recordID {
			continue
		}
		if req.Status == correction.StatusSubmitted || req.Status == correction.StatusInReview {
			return true, nil
		}
	}
	return false, nil
}

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

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: map[string]attendance.Record{}}
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

func seedRecord(repo *fakeAttendanceRepo, id string) {
	repo.records[id] = attendance.Record{
		ID:                  id,
		EmployeeID:          "emp-1",
		Date:                time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		FinalizedForPayroll: true,
	}
}

func TestCreate_UnlocksRecordForPayroll(t *testing.T) {
	t.Parallel()

	correctionRepo := newFakeCorrectionRepo()
	attendanceRepo := newFakeAttendanceRepo()
	dispatcher := &fakeDispatcher{}
	seedRecord(attendanceRepo, "rec-1")

	svc := NewWorkflowService(correctionRepo, newFakeExceptionRepo(), attendanceRepo, dispatcher)

	resp, err := svc.Create(context.Background(), correction.CreateRequest{
		EmployeeID:         "emp-1",
		AttendanceRecordID: "rec-1",
		Reason:             "missed my clock-out",
	})
	require.NoError(t, err)

	assert.Equal(t, string(correction.StatusSubmitted), resp.Status)
	assert.False(t, attendanceRepo.records["rec-1"].FinalizedForPayroll)
	require.Len(t, dispatcher.events, 1)
	assert.Equal(t, notification.TypeCorrectionSubmitted, dispatcher.events[0].Type)
}

func TestCreate_UnknownRecord(t *testing.T) {
	t.Parallel()

	svc := NewWorkflowService(newFakeCorrectionRepo(), newFakeExceptionRepo(), newFakeAttendanceRepo(), &fakeDispatcher{})

	_, err := svc.Create(context.Background(), correction.CreateRequest{
		EmployeeID:         "emp-1",
		AttendanceRecordID: "missing",
		Reason:             "missed my clock-out",
	})
	assert.ErrorIs(t, err, attendance.ErrRecordNotFound)
}

func TestUpdateStatus_RejectsUserEscalation(t *testing.T) {
	t.Parallel()

	correctionRepo := newFakeCorrectionRepo()
	attendanceRepo := newFakeAttendanceRepo()
	seedRecord(attendanceRepo, "rec-1")
	svc := NewWorkflowService(correctionRepo, newFakeExceptionRepo(), attendanceRepo, &fakeDispatcher{})

	created, err := svc.Create(context.Background(), correction.CreateRequest{
		EmployeeID:         "emp-1",
		AttendanceRecordID: "rec-1",
		Reason:             "wrong punch",
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), created.ID, correction.UpdateStatusRequest{Status: "ESCALATED"})
	assert.ErrorIs(t, err, correction.ErrEscalationReservedToSweep)
}

func TestUpdateStatus_InvalidTransition(t *testing.T) {
	t.Parallel()

	correctionRepo := newFakeCorrectionRepo()
	attendanceRepo := newFakeAttendanceRepo()
	seedRecord(attendanceRepo, "rec-1")
	svc := NewWorkflowService(correctionRepo, newFakeExceptionRepo(), attendanceRepo, &fakeDispatcher{})

	created, err := svc.Create(context.Background(), correction.CreateRequest{
		EmployeeID:         "emp-1",
		AttendanceRecordID: "rec-1",
		Reason:             "wrong punch",
	})
	require.NoError(t, err)

	// SUBMITTED cannot jump straight to APPROVED.
	_, err = svc.UpdateStatus(context.Background(), created.ID, correction.UpdateStatusRequest{Status: "APPROVED"})
	assert.ErrorIs(t, err, correction.ErrInvalidStatusTransition)
}

func TestUpdateStatus_ApprovalRefinalizesRecord(t *testing.T) {
	t.Parallel()

	correctionRepo := newFakeCorrectionRepo()
	attendanceRepo := newFakeAttendanceRepo()
	dispatcher := &fakeDispatcher{}
	seedRecord(attendanceRepo, "rec-1")
	svc := NewWorkflowService(correctionRepo, newFakeExceptionRepo(), attendanceRepo, dispatcher)

	created, err := svc.Create(context.Background(), correction.CreateRequest{
		EmployeeID:         "emp-1",
		AttendanceRecordID: "rec-1",
		Reason:             "wrong punch",
	})
	require.NoError(t, err)
	require.False(t, attendanceRepo.records["rec-1"].FinalizedForPayroll)

	_, err = svc.UpdateStatus(context.Background(), created.ID, correction.UpdateStatusRequest{Status: "IN_REVIEW"})
	require.NoError(t, err)
	assert.False(t, attendanceRepo.records["rec-1"].FinalizedForPayroll)

	resp, err := svc.UpdateStatus(context.Background(), created.ID, correction.UpdateStatusRequest{Status: "APPROVED"})
	require.NoError(t, err)

	assert.Equal(t, string(correction.StatusApproved), resp.Status)
	assert.True(t, attendanceRepo.records["rec-1"].FinalizedForPayroll)
}

func TestUpdateStatus_RejectionLeavesRecordUnfinalized(t *testing.T) {
	t.Parallel()

	correctionRepo := newFakeCorrectionRepo()
	attendanceRepo := newFakeAttendanceRepo()
	seedRecord(attendanceRepo, "rec-1")
	svc := NewWorkflowService(correctionRepo, newFakeExceptionRepo(), attendanceRepo, &fakeDispatcher{})

	created, err := svc.Create(context.Background(), correction.CreateRequest{
		EmployeeID:         "emp-1",
		AttendanceRecordID: "rec-1",
		Reason:             "wrong punch",
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), created.ID, correction.UpdateStatusRequest{Status: "IN_REVIEW"})
	require.NoError(t, err)
	resp, err := svc.UpdateStatus(context.Background(), created.ID, correction.UpdateStatusRequest{Status: "REJECTED"})
	require.NoError(t, err)

	// Rejection closes the dispute but never re-finalizes the record; only
	// approval releases it back to payroll.
	assert.Equal(t, string(correction.StatusRejected), resp.Status)
	assert.False(t, attendanceRepo.records["rec-1"].FinalizedForPayroll)
}

func TestUpdateStatus_RejectionKeepsHoldWhileAnotherDisputeOpen(t *testing.T) {
	t.Parallel()

	correctionRepo := newFakeCorrectionRepo()
	attendanceRepo := newFakeAttendanceRepo()
	seedRecord(attendanceRepo, "rec-1")
	svc := NewWorkflowService(correctionRepo, newFakeExceptionRepo(), attendanceRepo, &fakeDispatcher{})

	first, err := svc.Create(context.Background(), correction.CreateRequest{
		EmployeeID:         "emp-1",
		AttendanceRecordID: "rec-1",
		Reason:             "first dispute",
	})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), correction.CreateRequest{
		EmployeeID:         "emp-1",
		AttendanceRecordID: "rec-1",
		Reason:             "second dispute",
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), first.ID, correction.UpdateStatusRequest{Status: "IN_REVIEW"})
	require.NoError(t, err)
	_, err = svc.UpdateStatus(context.Background(), first.ID, correction.UpdateStatusRequest{Status: "REJECTED"})
	require.NoError(t, err)

	// The second request still holds the record.
	assert.False(t, attendanceRepo.records["rec-1"].FinalizedForPayroll)
}

func TestEscalatePastCutoff_SweepIsIdempotent(t *testing.T) {
	t.Parallel()

	correctionRepo := newFakeCorrectionRepo()
	exceptionRepo := newFakeExceptionRepo()
	attendanceRepo := newFakeAttendanceRepo()
	dispatcher := &fakeDispatcher{}
	seedRecord(attendanceRepo, "rec-1")
	svc := NewWorkflowService(correctionRepo, exceptionRepo, attendanceRepo, dispatcher)

	created, err := svc.Create(context.Background(), correction.CreateRequest{
		EmployeeID:         "emp-1",
		AttendanceRecordID: "rec-1",
		Reason:             "stuck in review queue",
	})
	require.NoError(t, err)

	exceptionRepo.exceptions["exc-1"] = exception.TimeException{
		ID:         "exc-1",
		EmployeeID: "emp-1",
		AssigneeID: "mgr-1",
		Status:     exception.StatusPending,
		CreatedAt:  time.Now().UTC().Add(-time.Hour),
		UpdatedAt:  time.Now().UTC().Add(-time.Hour),
	}

	cutoff := time.Now().UTC().Add(time.Minute)
	result, err := svc.EscalatePastCutoff(context.Background(), cutoff, 500)
	require.NoError(t, err)

	assert.Equal(t, 1, result.EscalatedCorrections)
	assert.Equal(t, 1, result.EscalatedExceptions)
	assert.Equal(t, correction.StatusEscalated, correctionRepo.requests[created.ID].Status)
	assert.Equal(t, exception.StatusEscalated, exceptionRepo.exceptions["exc-1"].Status)

	// Requester is notified per escalated correction; exceptions escalate in
	// bulk without notifications.
	escalations := 0
	for _, e := range dispatcher.events {
		if e.Type == notification.TypeCorrectionEscalated {
			escalations++
		}
	}
	assert.Equal(t, 1, escalations)

	again, err := svc.EscalatePastCutoff(context.Background(), cutoff, 500)
	require.NoError(t, err)
	assert.Zero(t, again.EscalatedCorrections)
	assert.Zero(t, again.EscalatedExceptions)
}
