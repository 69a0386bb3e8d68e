package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/clockwise-hr/timetrack-backend-go/internal/domain/exception"
	"github.com/clockwise-hr/timetrack-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type exceptionRepository struct {
	db *database.DB
}

func NewExceptionRepository(db *database.DB) exception.Repository {
	return &exceptionRepository{db: db}
}

// Create implements exception.Repository.
func (r *exceptionRepository) Create(ctx context.Context, exc exception.TimeException) (exception.TimeException, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO time_exceptions (
			id, employee_id, type, attendance_record_id, assignee_id, status, reason
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		exc.ID, exc.EmployeeID, exc.Type, exc.AttendanceRecordID, exc.AssigneeID, exc.Status, exc.Reason,
	).Scan(&exc.CreatedAt, &exc.UpdatedAt)
	if err != nil {
		return exception.TimeException{}, fmt.Errorf("failed to create time exception: %w", err)
	}

	return exc, nil
}

// GetByID implements exception.Repository.
func (r *exceptionRepository) GetByID(ctx context.Context, id string) (exception.TimeException, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, type, attendance_record_id, assignee_id, status, reason,
			   created_at, updated_at
		FROM time_exceptions
		WHERE id = $1
	`

	var exc exception.TimeException
	err := q.QueryRow(ctx, query, id).Scan(
		&exc.ID, &exc.EmployeeID, &exc.Type, &exc.AttendanceRecordID, &exc.AssigneeID,
		&exc.Status, &exc.Reason, &exc.CreatedAt, &exc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return exception.TimeException{}, exception.ErrExceptionNotFound
		}
		return exception.TimeException{}, fmt.Errorf("failed to get time exception: %w", err)
	}

	return exc, nil
}

// List implements exception.Repository.
func (r *exceptionRepository) List(ctx context.Context, filter exception.ListFilter) ([]exception.TimeException, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Type != nil {
		conditions = append(conditions, fmt.Sprintf("type = $%d", argIdx))
		args = append(args, *filter.Type)
		argIdx++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM time_exceptions WHERE %s`, where)
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count time exceptions: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, employee_id, type, attendance_record_id, assignee_id, status, reason,
			   created_at, updated_at
		FROM time_exceptions
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list time exceptions: %w", err)
	}
	defer rows.Close()

	exceptions, err := collectExceptions(rows)
	if err != nil {
		return nil, 0, err
	}
	return exceptions, total, nil
}

// UpdateStatus implements exception.Repository.
func (r *exceptionRepository) UpdateStatus(ctx context.Context, id string, status exception.Status, reason *string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE time_exceptions
		SET status = $2, reason = $3, updated_at = NOW()
		WHERE id = $1
	`, id, status, reason)
	if err != nil {
		return fmt.Errorf("failed to update exception status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return exception.ErrExceptionNotFound
	}

	return nil
}

// ListStalePending implements exception.Repository.
func (r *exceptionRepository) ListStalePending(ctx context.Context, olderThan time.Time, limit int) ([]exception.TimeException, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, type, attendance_record_id, assignee_id, status, reason,
			   created_at, updated_at
		FROM time_exceptions
		WHERE status = 'PENDING' AND updated_at < $1
		ORDER BY updated_at
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, olderThan, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list stale pending exceptions: %w", err)
	}
	defer rows.Close()

	return collectExceptions(rows)
}

// ListPendingCreatedBefore implements exception.Repository.
func (r *exceptionRepository) ListPendingCreatedBefore(ctx context.Context, cutoff time.Time, limit int) ([]exception.TimeException, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, type, attendance_record_id, assignee_id, status, reason,
			   created_at, updated_at
		FROM time_exceptions
		WHERE status = 'PENDING' AND created_at < $1
		ORDER BY created_at
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, cutoff, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending exceptions: %w", err)
	}
	defer rows.Close()

	return collectExceptions(rows)
}

func collectExceptions(rows pgx.Rows) ([]exception.TimeException, error) {
	var exceptions []exception.TimeException
	for rows.Next() {
		var exc exception.TimeException
		if err := rows.Scan(
			&exc.ID, &exc.EmployeeID, &exc.Type, &exc.AttendanceRecordID, &exc.AssigneeID,
			&exc.Status, &exc.Reason, &exc.CreatedAt, &exc.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan time exception: %w", err)
		}
		exceptions = append(exceptions, exc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate time exceptions: %w", err)
	}
	return exceptions, nil
}
