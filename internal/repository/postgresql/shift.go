package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/clockwise-hr/timetrack-backend-go/internal/domain/shift"
	"github.com/clockwise-hr/timetrack-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type shiftRepository struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepository{db: db}
}

// Create implements shift.ShiftRepository.
func (r *shiftRepository) Create(ctx context.Context, sh shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (id, shift_type_id, name, start_time, end_time, punch_policy, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		sh.ID, sh.ShiftTypeID, sh.Name, sh.StartTime, sh.EndTime, sh.PunchPolicy, sh.IsActive,
	).Scan(&sh.CreatedAt, &sh.UpdatedAt)
	if err != nil {
		return shift.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return sh, nil
}

// GetByID implements shift.ShiftRepository.
func (r *shiftRepository) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.shift_type_id, s.name, s.start_time, s.end_time, s.punch_policy,
			   s.is_active, s.created_at, s.updated_at,
			   st.name AS shift_type_name
		FROM shifts s
		LEFT JOIN shift_types st ON st.id = s.shift_type_id
		WHERE s.id = $1
	`

	var sh shift.Shift
	err := q.QueryRow(ctx, query, id).Scan(
		&sh.ID, &sh.ShiftTypeID, &sh.Name, &sh.StartTime, &sh.EndTime, &sh.PunchPolicy,
		&sh.IsActive, &sh.CreatedAt, &sh.UpdatedAt,
		&sh.ShiftTypeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to get shift: %w", err)
	}

	return sh, nil
}

// List implements shift.ShiftRepository.
func (r *shiftRepository) List(ctx context.Context, activeOnly bool) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.shift_type_id, s.name, s.start_time, s.end_time, s.punch_policy,
			   s.is_active, s.created_at, s.updated_at,
			   st.name AS shift_type_name
		FROM shifts s
		LEFT JOIN shift_types st ON st.id = s.shift_type_id
	`
	if activeOnly {
		query += ` WHERE s.is_active = TRUE`
	}
	query += ` ORDER BY s.name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		var sh shift.Shift
		if err := rows.Scan(
			&sh.ID, &sh.ShiftTypeID, &sh.Name, &sh.StartTime, &sh.EndTime, &sh.PunchPolicy,
			&sh.IsActive, &sh.CreatedAt, &sh.UpdatedAt,
			&sh.ShiftTypeName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, sh)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shifts: %w", err)
	}

	return shifts, nil
}

// Update implements shift.ShiftRepository.
func (r *shiftRepository) Update(ctx context.Context, id string, req shift.UpdateShiftRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := []string{}
	args := []interface{}{id}
	argIdx := 2

	if req.Name != nil {
		updates = append(updates, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}
	if req.StartTime != nil {
		updates = append(updates, fmt.Sprintf("start_time = $%d", argIdx))
		args = append(args, *req.StartTime)
		argIdx++
	}
	if req.EndTime != nil {
		updates = append(updates, fmt.Sprintf("end_time = $%d", argIdx))
		args = append(args, *req.EndTime)
		argIdx++
	}
	if req.PunchPolicy != nil {
		updates = append(updates, fmt.Sprintf("punch_policy = $%d", argIdx))
		args = append(args, *req.PunchPolicy)
		argIdx++
	}
	if req.IsActive != nil {
		updates = append(updates, fmt.Sprintf("is_active = $%d", argIdx))
		args = append(args, *req.IsActive)
		argIdx++
	}
	if len(updates) == 0 {
		return nil
	}
	updates = append(updates, "updated_at = NOW()")

	query := fmt.Sprintf(`UPDATE shifts SET %s WHERE id = $1`, strings.Join(updates, ", "))
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}

// Delete implements shift.ShiftRepository.
func (r *shiftRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}
