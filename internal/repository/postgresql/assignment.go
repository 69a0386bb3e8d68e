package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/clockwise-hr/timetrack-backend-go/internal/domain/assignment"
	"github.com/clockwise-hr/timetrack-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type assignmentRepository struct {
	db *database.DB
}

func NewAssignmentRepository(db *database.DB) assignment.Repository {
	return &assignmentRepository{db: db}
}

// Create implements assignment.Repository.
func (r *assignmentRepository) Create(ctx context.Context, a assignment.ShiftAssignment) (assignment.ShiftAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_assignments (
			id, employee_id, shift_id, schedule_rule_id, department_id, position_id,
			start_date, end_date, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		a.ID, a.EmployeeID, a.ShiftID, a.ScheduleRuleID, a.DepartmentID, a.PositionID,
		a.StartDate, a.EndDate, a.Status,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return assignment.ShiftAssignment{}, fmt.Errorf("failed to create assignment: %w", err)
	}

	return a, nil
}

// GetByID implements assignment.Repository.
func (r *assignmentRepository) GetByID(ctx context.Context, id string) (assignment.ShiftAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.employee_id, a.shift_id, a.schedule_rule_id, a.department_id, a.position_id,
			   a.start_date, a.end_date, a.status, a.created_at, a.updated_at,
			   s.name AS shift_name
		FROM shift_assignments a
		LEFT JOIN shifts s ON s.id = a.shift_id
		WHERE a.id = $1
	`

	var a assignment.ShiftAssignment
	err := q.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.EmployeeID, &a.ShiftID, &a.ScheduleRuleID, &a.DepartmentID, &a.PositionID,
		&a.StartDate, &a.EndDate, &a.Status, &a.CreatedAt, &a.UpdatedAt,
		&a.ShiftName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return assignment.ShiftAssignment{}, assignment.ErrAssignmentNotFound
		}
		return assignment.ShiftAssignment{}, fmt.Errorf("failed to get assignment: %w", err)
	}

	return a, nil
}

// List implements assignment.Repository.
func (r *assignmentRepository) List(ctx context.Context, filter assignment.ListFilter) ([]assignment.ShiftAssignment, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("a.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.ShiftID != nil {
		conditions = append(conditions, fmt.Sprintf("a.shift_id = $%d", argIdx))
		args = append(args, *filter.ShiftID)
		argIdx++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("a.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM shift_assignments a WHERE %s`, where)
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count assignments: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT a.id, a.employee_id, a.shift_id, a.schedule_rule_id, a.department_id, a.position_id,
			   a.start_date, a.end_date, a.status, a.created_at, a.updated_at,
			   s.name AS shift_name
		FROM shift_assignments a
		LEFT JOIN shifts s ON s.id = a.shift_id
		WHERE %s
		ORDER BY a.start_date DESC, a.id DESC
		LIMIT $%d OFFSET $%d
	`, where, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list assignments: %w", err)
	}
	defer rows.Close()

	var assignments []assignment.ShiftAssignment
	for rows.Next() {
		var a assignment.ShiftAssignment
		if err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.ShiftID, &a.ScheduleRuleID, &a.DepartmentID, &a.PositionID,
			&a.StartDate, &a.EndDate, &a.Status, &a.CreatedAt, &a.UpdatedAt,
			&a.ShiftName,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate assignments: %w", err)
	}

	return assignments, total, nil
}

// Update implements assignment.Repository.
func (r *assignmentRepository) Update(ctx context.Context, id string, req assignment.UpdateAssignmentRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := []string{}
	args := []interface{}{id}
	argIdx := 2

	if req.ShiftID != nil {
		updates = append(updates, fmt.Sprintf("shift_id = $%d", argIdx))
		args = append(args, *req.ShiftID)
		argIdx++
	}
	if req.ScheduleRuleID != nil {
		updates = append(updates, fmt.Sprintf("schedule_rule_id = $%d", argIdx))
		args = append(args, *req.ScheduleRuleID)
		argIdx++
	}
	if req.StartDate != nil {
		updates = append(updates, fmt.Sprintf("start_date = $%d", argIdx))
		args = append(args, *req.StartDate)
		argIdx++
	}
	if req.EndDate != nil {
		updates = append(updates, fmt.Sprintf("end_date = $%d", argIdx))
		args = append(args, *req.EndDate)
		argIdx++
	}
	if req.Status != nil {
		updates = append(updates, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *req.Status)
		argIdx++
	}
	if len(updates) == 0 {
		return nil
	}
	updates = append(updates, "updated_at = NOW()")

	query := fmt.Sprintf(`UPDATE shift_assignments SET %s WHERE id = $1`, strings.Join(updates, ", "))
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return assignment.ErrAssignmentNotFound
	}

	return nil
}

// Delete implements assignment.Repository.
func (r *assignmentRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM shift_assignments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return assignment.ErrAssignmentNotFound
	}

	return nil
}

// GetActiveAssignment implements assignment.Repository. Overlapping ranges are
// resolved deterministically: the most recently started assignment wins, with
// id as the tie-break.
func (r *assignmentRepository) GetActiveAssignment(ctx context.Context, employeeID string, date time.Time) (*assignment.ShiftAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.employee_id, a.shift_id, a.schedule_rule_id, a.department_id, a.position_id,
			   a.start_date, a.end_date, a.status, a.created_at, a.updated_at,
			   s.name AS shift_name
		FROM shift_assignments a
		LEFT JOIN shifts s ON s.id = a.shift_id
		WHERE a.employee_id = $1
		  AND a.status = 'APPROVED'
		  AND a.start_date <= $2
		  AND ($2 <= a.end_date OR a.end_date IS NULL)
		ORDER BY a.start_date DESC, a.id DESC
		LIMIT 1
	`

	var a assignment.ShiftAssignment
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&a.ID, &a.EmployeeID, &a.ShiftID, &a.ScheduleRuleID, &a.DepartmentID, &a.PositionID,
		&a.StartDate, &a.EndDate, &a.Status, &a.CreatedAt, &a.UpdatedAt,
		&a.ShiftName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active assignment: %w", err)
	}

	return &a, nil
}
