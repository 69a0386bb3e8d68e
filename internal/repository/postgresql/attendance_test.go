package postgresql

import (
	"context"
	"testing"
	"time"

	"github.com/clockwise-hr/timetrack-backend-go/internal/domain/attendance"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockContext routes repository queries at the mock through the same path a
// transaction would take.
func mockContext(mock pgxmock.PgxPoolIface) context.Context {
	return context.WithValue(context.Background(), txKey{}, mock)
}

func recordColumns() []string {
	return []string{
		"id", "employee_id", "date", "punches", "work_minutes", "has_missed_punch",
		"finalized_for_payroll", "version", "created_at", "updated_at", "exception_ids",
	}
}

func TestAttendanceGetByID_DecodesPunches(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	now := time.Now().UTC()
	punches := []byte(`[{"type":"IN","timestamp":"2026-03-02T09:00:00Z"},{"type":"OUT","timestamp":"2026-03-02T17:00:00Z"}]`)

	mock.ExpectQuery(`SELECT r\.id, r\.employee_id`).
		WithArgs("rec-1").
		WillReturnRows(mock.NewRows(recordColumns()).AddRow(
			"rec-1", "emp-1", day, punches, 480, false,
			true, int64(3), now, now, []string{"exc-1"},
		))

	repo := &attendanceRepository{}
	rec, err := repo.GetByID(mockContext(mock), "rec-1")
	require.NoError(t, err)

	assert.Equal(t, "emp-1", rec.EmployeeID)
	require.Len(t, rec.Punches, 2)
	assert.Equal(t, attendance.PunchIn, rec.Punches[0].Type)
	assert.Equal(t, int64(3), rec.Version)
	assert.Equal(t, []string{"exc-1"}, rec.ExceptionIDs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceGetByID_NotFound(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT r\.id, r\.employee_id`).
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	repo := &attendanceRepository{}
	_, err = repo.GetByID(mockContext(mock), "missing")
	assert.ErrorIs(t, err, attendance.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceGetByEmployeeAndDate_NoRecordIsNotAnError(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT r\.id, r\.employee_id`).
		WithArgs("emp-1", day).
		WillReturnError(pgx.ErrNoRows)

	repo := &attendanceRepository{}
	rec, err := repo.GetByEmployeeAndDate(mockContext(mock), "emp-1", day)
	require.NoError(t, err)
	assert.Nil(t, rec)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceUpdatePunches_VersionConflict(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	rec := attendance.Record{ID: "rec-1", Version: 2}

	mock.ExpectExec(`UPDATE attendance_records`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("rec-1").
		WillReturnRows(mock.NewRows([]string{"exists"}).AddRow(true))

	repo := &attendanceRepository{}
	err = repo.UpdatePunches(mockContext(mock), rec)
	assert.ErrorIs(t, err, attendance.ErrVersionConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceUpdatePunches_MissingRecord(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	rec := attendance.Record{ID: "rec-1", Version: 2}

	mock.ExpectExec(`UPDATE attendance_records`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("rec-1").
		WillReturnRows(mock.NewRows([]string{"exists"}).AddRow(false))

	repo := &attendanceRepository{}
	err = repo.UpdatePunches(mockContext(mock), rec)
	assert.ErrorIs(t, err, attendance.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceUpdatePunches_Success(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	rec := attendance.Record{
		ID:      "rec-1",
		Version: 2,
		Punches: []attendance.Punch{
			{Type: attendance.PunchIn, Timestamp: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)},
		},
		WorkMinutes: 0,
	}

	mock.ExpectExec(`UPDATE attendance_records`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	repo := &attendanceRepository{}
	require.NoError(t, repo.UpdatePunches(mockContext(mock), rec))
	assert.NoError(t, mock.ExpectationsWereMet())
}
