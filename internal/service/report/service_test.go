package report

import (
	"context"
	"testing"
	"time"

	"github.com/clockwise-hr/timetrack-backend-go/internal/domain/assignment"
	"github.com/clockwise-hr/timetrack-backend-go/internal/domain/attendance"
	"github.com/clockwise-hr/timetrack-backend-go/internal/domain/exception"
	"github.com/clockwise-hr/timetrack-backend-go/internal/domain/report"
	"github.com/clockwise-hr/timetrack-backend-go/internal/domain/timerule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepo struct {
	records []attendance.Record
}

func (f *fakeAttendanceRepo) Create(_ context.Context, rec attendance.Record) (attendance.Record, error) {
	return rec, nil
}

func (f *fakeAttendanceRepo) GetByID(_ context.Context, _ string) (attendance.Record, error) {
	return attendance.Record{}, attendance.ErrRecordNotFound
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, _ string, _ time.Time) (*attendance.Record, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) UpdatePunches(_ context.Context, _ attendance.Record) error { return nil }
func (f *fakeAttendanceRepo) SetFinalized(_ context.Context, _ string, _ bool) error     { return nil }

func (f *fakeAttendanceRepo) List(_ context.Context, filter attendance.ListFilter) ([]attendance.Record, int64, error) {
	if filter.Page > 1 {
		return nil, int64(len(f.records)), nil
	}
	return f.records, int64(len(f.records)), nil
}

type fakeExceptionRepo struct {
	exceptions []exception.TimeException
}

func (f *fakeExceptionRepo) Create(_ context.Context, exc exception.TimeException) (exception.TimeException, error) {
	return exc, nil
}

func (f *fakeExceptionRepo) GetByID(_ context.Context, _ string) (exception.TimeException, error) {
	return exception.TimeException{}, exception.ErrExceptionNotFound
}

func (f *fakeExceptionRepo) List(_ context.Context, filter exception.ListFilter) ([]exception.TimeException, int64, error) {
	if filter.Page > 1 {
		return nil, int64(len(f.exceptions)), nil
	}
	var out []exception.TimeException
	for _, exc := range f.exceptions {
		if filter.Type != nil && string(exc.Type) != *filter.Type {
			continue
		}
		if filter.Status != nil && string(exc.Status) != *filter.Status {
			continue
		}
		out = append(out, exc)
	}
	return out, int64(len(out)), nil
}

func (f *fakeExceptionRepo) UpdateStatus(_ context.Context, _ string, _ exception.Status, _ *string) error {
	return nil
}

func (f *fakeExceptionRepo) ListStalePending(_ context.Context, _ time.Time, _ int) ([]exception.TimeException, error) {
	return nil, nil
}

func (f *fakeExceptionRepo) ListPendingCreatedBefore(_ context.Context, _ time.Time, _ int) ([]exception.TimeException, error) {
	return nil, nil
}

type fakeResolver struct {
	assignment.Service
	byEmployee map[string]assignment.ResolvedShift
}

func (f *fakeResolver) Resolve(_ context.Context, employeeID string, _ time.Time) (assignment.ResolvedShift, error) {
	if resolved, ok := f.byEmployee[employeeID]; ok {
		return resolved, nil
	}
	return assignment.ResolvedShift{Policy: "ALL"}, nil
}

type fakeLatenessRepo struct {
	timerule.LatenessRuleRepository
	active *timerule.LatenessRule
}

func (f *fakeLatenessRepo) GetActive(_ context.Context) (*timerule.LatenessRule, error) {
	return f.active, nil
}

type fakeHolidayRepo struct {
	timerule.HolidayRepository
	holidays map[string]timerule.Holiday
}

func (f *fakeHolidayRepo) GetByDate(_ context.Context, date time.Time) (*timerule.Holiday, error) {
	if h, ok := f.holidays[date.Format("2006-01-02")]; ok {
		return &h, nil
	}
	return nil, nil
}

func dayShift() assignment.ResolvedShift {
	return assignment.ResolvedShift{
		Assignment: &assignment.ShiftAssignment{ID: "asg-1"},
		ShiftID:    "shift-1",
		StartTime:  "09:00",
		EndTime:    "17:00",
		Policy:     "ALL",
	}
}

func record(id, employeeID string, date time.Time, workMinutes int, punches []attendance.Punch) attendance.Record {
	return attendance.Record{
		ID:          id,
		EmployeeID:  employeeID,
		Date:        date,
		Punches:     punches,
		WorkMinutes: workMinutes,
	}
}

func TestAttendance_AnnotatesLatenessAndHolidays(t *testing.T) {
	t.Parallel()

	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	punctual := []attendance.Punch{
		{Type: attendance.PunchIn, Timestamp: day.Add(9 * time.Hour)},
		{Type: attendance.PunchOut, Timestamp: day.Add(17 * time.Hour)},
	}
	late := []attendance.Punch{
		{Type: attendance.PunchIn, Timestamp: day.Add(9*time.Hour + 25*time.Minute)},
		{Type: attendance.PunchOut, Timestamp: day.Add(17 * time.Hour)},
	}

	svc := NewService(
		&fakeAttendanceRepo{records: []attendance.Record{
			record("rec-1", "emp-1", day, 480, punctual),
			record("rec-2", "emp-2", day, 455, late),
		}},
		&fakeExceptionRepo{},
		&fakeResolver{byEmployee: map[string]assignment.ResolvedShift{
			"emp-1": dayShift(),
			"emp-2": dayShift(),
		}},
		&fakeLatenessRepo{active: &timerule.LatenessRule{GraceMinutes: 10}},
		&fakeHolidayRepo{holidays: map[string]timerule.Holiday{
			"2026-03-02": {Name: "Founders Day"},
		}},
	)

	rpt, err := svc.Attendance(context.Background(), report.Filter{})
	require.NoError(t, err)

	assert.Equal(t, 2, rpt.Count)
	assert.Equal(t, 935, rpt.TotalWorkMinutes)
	require.Len(t, rpt.Rows, 2)

	byID := map[string]report.AttendanceReportRow{}
	for _, row := range rpt.Rows {
		byID[row.RecordID] = row
	}

	assert.Nil(t, byID["rec-1"].LateMinutes)
	require.NotNil(t, byID["rec-2"].LateMinutes)
	// 09:25 arrival against 09:00 start with 10 minutes of grace.
	assert.Equal(t, 15, *byID["rec-2"].LateMinutes)

	require.NotNil(t, byID["rec-1"].HolidayName)
	assert.Equal(t, "Founders Day", *byID["rec-1"].HolidayName)
}

func TestAttendance_NoActiveRuleSkipsLateness(t *testing.T) {
	t.Parallel()

	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	late := []attendance.Punch{
		{Type: attendance.PunchIn, Timestamp: day.Add(11 * time.Hour)},
	}

	svc := NewService(
		&fakeAttendanceRepo{records: []attendance.Record{record("rec-1", "emp-1", day, 0, late)}},
		&fakeExceptionRepo{},
		&fakeResolver{byEmployee: map[string]assignment.ResolvedShift{"emp-1": dayShift()}},
		&fakeLatenessRepo{},
		&fakeHolidayRepo{},
	)

	rpt, err := svc.Attendance(context.Background(), report.Filter{})
	require.NoError(t, err)
	require.Len(t, rpt.Rows, 1)
	assert.Nil(t, rpt.Rows[0].LateMinutes)
}

func TestOvertime_OmitsZeroRowsButCountsThem(t *testing.T) {
	t.Parallel()

	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	svc := NewService(
		&fakeAttendanceRepo{records: []attendance.Record{
			record("rec-1", "emp-1", day, 540, nil), // 60 over an 8h shift
			record("rec-2", "emp-1", day.AddDate(0, 0, 1), 480, nil),
			record("rec-3", "emp-2", day, 600, nil), // no assignment
		}},
		&fakeExceptionRepo{},
		&fakeResolver{byEmployee: map[string]assignment.ResolvedShift{"emp-1": dayShift()}},
		&fakeLatenessRepo{},
		&fakeHolidayRepo{},
	)

	rpt, err := svc.Overtime(context.Background(), report.Filter{})
	require.NoError(t, err)

	assert.Equal(t, 3, rpt.Count)
	assert.Equal(t, 60, rpt.TotalOvertimeMinutes)
	require.Len(t, rpt.Rows, 1)
	assert.Equal(t, "rec-1", rpt.Rows[0].RecordID)
	assert.Equal(t, 480, rpt.Rows[0].ExpectedMinutes)
	assert.Equal(t, 60, rpt.Rows[0].OvertimeMinutes)
}

func TestOvertime_OvernightShiftWindow(t *testing.T) {
	t.Parallel()

	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	night := dayShift()
	night.StartTime = "22:00"
	night.EndTime = "06:00"

	svc := NewService(
		&fakeAttendanceRepo{records: []attendance.Record{record("rec-1", "emp-1", day, 540, nil)}},
		&fakeExceptionRepo{},
		&fakeResolver{byEmployee: map[string]assignment.ResolvedShift{"emp-1": night}},
		&fakeLatenessRepo{},
		&fakeHolidayRepo{},
	)

	rpt, err := svc.Overtime(context.Background(), report.Filter{})
	require.NoError(t, err)

	require.Len(t, rpt.Rows, 1)
	assert.Equal(t, 480, rpt.Rows[0].ExpectedMinutes)
	assert.Equal(t, 60, rpt.Rows[0].OvertimeMinutes)
}

func TestExceptions_GroupsAndFiltersByDate(t *testing.T) {
	t.Parallel()

	svc := NewService(
		&fakeAttendanceRepo{},
		&fakeExceptionRepo{exceptions: []exception.TimeException{
			{ID: "e1", EmployeeID: "emp-1", Type: exception.TypeMissedPunch, Status: exception.StatusOpen,
				CreatedAt: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)},
			{ID: "e2", EmployeeID: "emp-1", Type: exception.TypeMissedPunch, Status: exception.StatusResolved,
				CreatedAt: time.Date(2026, 3, 3, 10, 0, 0, 0, time.UTC)},
			{ID: "e3", EmployeeID: "emp-2", Type: exception.TypeLateArrival, Status: exception.StatusOpen,
				CreatedAt: time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)},
		}},
		&fakeResolver{},
		&fakeLatenessRepo{},
		&fakeHolidayRepo{},
	)

	start, end := "2026-03-01", "2026-03-03"
	rpt, err := svc.Exceptions(context.Background(), report.ExceptionFilter{
		Filter: report.Filter{StartDate: &start, EndDate: &end},
	})
	require.NoError(t, err)

	// The end date is inclusive; April's exception falls outside the range.
	assert.Equal(t, 2, rpt.Count)
	assert.Equal(t, 2, rpt.ByType["MISSED_PUNCH"])
	assert.Equal(t, 1, rpt.ByStatus["OPEN"])
	assert.Equal(t, 1, rpt.ByStatus["RESOLVED"])
}
