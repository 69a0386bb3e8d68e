package postgresql

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assignmentColumns() []string {
	return []string{
		"id", "employee_id", "shift_id", "schedule_rule_id", "department_id", "position_id",
		"start_date", "end_date", "status", "created_at", "updated_at", "shift_name",
	}
}

func TestGetActiveAssignment_NoneResolvesToNil(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT a\.id, a\.employee_id`).
		WithArgs("emp-1", day).
		WillReturnError(pgx.ErrNoRows)

	repo := &assignmentRepository{}
	active, err := repo.GetActiveAssignment(mockContext(mock), "emp-1", day)
	require.NoError(t, err)
	assert.Nil(t, active)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetActiveAssignment_ReturnsCoveringAssignment(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	now := time.Now().UTC()
	shiftName := "Morning"

	mock.ExpectQuery(`SELECT a\.id, a\.employee_id`).
		WithArgs("emp-1", day).
		WillReturnRows(mock.NewRows(assignmentColumns()).AddRow(
			"asg-1", "emp-1", "shift-1", (*string)(nil), (*string)(nil), (*string)(nil),
			start, (*time.Time)(nil), "APPROVED", now, now, &shiftName,
		))

	repo := &assignmentRepository{}
	active, err := repo.GetActiveAssignment(mockContext(mock), "emp-1", day)
	require.NoError(t, err)

	require.NotNil(t, active)
	assert.Equal(t, "asg-1", active.ID)
	assert.Nil(t, active.EndDate)
	require.NotNil(t, active.ShiftName)
	assert.Equal(t, "Morning", *active.ShiftName)
	assert.NoError(t, mock.ExpectationsWereMet())
}
