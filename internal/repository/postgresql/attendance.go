package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/clockwise-hr/timetrack-backend-go/internal/domain/attendance"
	"github.com/clockwise-hr/timetrack-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

// exceptionIDsSubquery derives the record's exception set; exceptions carry
// the foreign key, the record never stores the list itself.
const exceptionIDsSubquery = `(
	SELECT COALESCE(array_agg(te.id ORDER BY te.created_at), '{}')
	FROM time_exceptions te
	WHERE te.attendance_record_id = r.id
)`

// Create implements attendance.Repository.
func (r *attendanceRepository) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	punches, err := json.Marshal(rec.Punches)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to encode punches: %w", err)
	}

	query := `
		INSERT INTO attendance_records (
			id, employee_id, date, punches, work_minutes, has_missed_punch, finalized_for_payroll
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING version, created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		rec.ID, rec.EmployeeID, rec.Date, punches,
		rec.WorkMinutes, rec.HasMissedPunch, rec.FinalizedForPayroll,
	).Scan(&rec.Version, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return rec, nil
}

// GetByID implements attendance.Repository.
func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT r.id, r.employee_id, r.date, r.punches, r.work_minutes, r.has_missed_punch,
			   r.finalized_for_payroll, r.version, r.created_at, r.updated_at,
			   %s AS exception_ids
		FROM attendance_records r
		WHERE r.id = $1
	`, exceptionIDsSubquery)

	rec, err := scanRecord(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return rec, nil
}

// GetByEmployeeAndDate implements attendance.Repository.
func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT r.id, r.employee_id, r.date, r.punches, r.work_minutes, r.has_missed_punch,
			   r.finalized_for_payroll, r.version, r.created_at, r.updated_at,
			   %s AS exception_ids
		FROM attendance_records r
		WHERE r.employee_id = $1 AND r.date = $2
		LIMIT 1
	`, exceptionIDsSubquery)

	rec, err := scanRecord(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance record by employee and date: %w", err)
	}

	return &rec, nil
}

// UpdatePunches implements attendance.Repository. The write only lands when
// the stored version still matches; a lost race surfaces as
// ErrVersionConflict so the caller can reload and retry.
func (r *attendanceRepository) UpdatePunches(ctx context.Context, rec attendance.Record) error {
	q := GetQuerier(ctx, r.db)

	punches, err := json.Marshal(rec.Punches)
	if err != nil {
		return fmt.Errorf("failed to encode punches: %w", err)
	}

	query := `
		UPDATE attendance_records
		SET punches = $2, work_minutes = $3, has_missed_punch = $4,
			version = version + 1, updated_at = NOW()
		WHERE id = $1 AND version = $5
	`

	tag, err := q.Exec(ctx, query, rec.ID, punches, rec.WorkMinutes, rec.HasMissedPunch, rec.Version)
	if err != nil {
		return fmt.Errorf("failed to update punches: %w", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM attendance_records WHERE id = $1)`, rec.ID).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check attendance record: %w", err)
		}
		if !exists {
			return attendance.ErrRecordNotFound
		}
		return attendance.ErrVersionConflict
	}

	return nil
}

// SetFinalized implements attendance.Repository.
func (r *attendanceRepository) SetFinalized(ctx context.Context, id string, finalized bool) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE attendance_records
		SET finalized_for_payroll = $2, updated_at = NOW()
		WHERE id = $1
	`, id, finalized)
	if err != nil {
		return fmt.Errorf("failed to set payroll finalization: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}

// List implements attendance.Repository.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Record, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("r.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.StartDate != nil {
		conditions = append(conditions, fmt.Sprintf("r.date >= $%d", argIdx))
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil {
		conditions = append(conditions, fmt.Sprintf("r.date <= $%d", argIdx))
		args = append(args, *filter.EndDate)
		argIdx++
	}
	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM attendance_records r WHERE %s`, where)
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance records: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT r.id, r.employee_id, r.date, r.punches, r.work_minutes, r.has_missed_punch,
			   r.finalized_for_payroll, r.version, r.created_at, r.updated_at,
			   %s AS exception_ids
		FROM attendance_records r
		WHERE %s
		ORDER BY r.date DESC, r.employee_id
		LIMIT $%d OFFSET $%d
	`, exceptionIDsSubquery, where, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate attendance records: %w", err)
	}

	return records, total, nil
}

func scanRecord(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	var punches []byte

	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &punches, &rec.WorkMinutes, &rec.HasMissedPunch,
		&rec.FinalizedForPayroll, &rec.Version, &rec.CreatedAt, &rec.UpdatedAt,
		&rec.ExceptionIDs,
	)
	if err != nil {
		return attendance.Record{}, err
	}

	if len(punches) > 0 {
		if err := json.Unmarshal(punches, &rec.Punches); err != nil {
			return attendance.Record{}, fmt.Errorf("failed to decode punches: %w", err)
		}
	}
	return rec, nil
}
