package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/clockwise-hr/timetrack-backend-go/internal/domain/shift"
	"github.com/clockwise-hr/timetrack-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type shiftTypeRepository struct {
	db *database.DB
}

func NewShiftTypeRepository(db *database.DB) shift.ShiftTypeRepository {
	return &shiftTypeRepository{db: db}
}

// Create implements shift.ShiftTypeRepository.
func (r *shiftTypeRepository) Create(ctx context.Context, shiftType shift.ShiftType) (shift.ShiftType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_types (id, name, is_active)
		VALUES ($1, $2, $3)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, shiftType.ID, shiftType.Name, shiftType.IsActive).
		Scan(&shiftType.CreatedAt, &shiftType.UpdatedAt)
	if err != nil {
		return shift.ShiftType{}, fmt.Errorf("failed to create shift type: %w", err)
	}

	return shiftType, nil
}

// GetByID implements shift.ShiftTypeRepository.
func (r *shiftTypeRepository) GetByID(ctx context.Context, id string) (shift.ShiftType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, is_active, created_at, updated_at
		FROM shift_types
		WHERE id = $1
	`

	var st shift.ShiftType
	err := q.QueryRow(ctx, query, id).Scan(&st.ID, &st.Name, &st.IsActive, &st.CreatedAt, &st.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.ShiftType{}, shift.ErrShiftTypeNotFound
		}
		return shift.ShiftType{}, fmt.Errorf("failed to get shift type: %w", err)
	}

	return st, nil
}

// List implements shift.ShiftTypeRepository.
func (r *shiftTypeRepository) List(ctx context.Context, activeOnly bool) ([]shift.ShiftType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, is_active, created_at, updated_at
		FROM shift_types
	`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift types: %w", err)
	}
	defer rows.Close()

	var types []shift.ShiftType
	for rows.Next() {
		var st shift.ShiftType
		if err := rows.Scan(&st.ID, &st.Name, &st.IsActive, &st.CreatedAt, &st.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan shift type: %w", err)
		}
		types = append(types, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shift types: %w", err)
	}

	return types, nil
}

// Update implements shift.ShiftTypeRepository.
func (r *shiftTypeRepository) Update(ctx context.Context, id string, req shift.UpdateShiftTypeRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := []string{}
	args := []interface{}{id}
	argIdx := 2

	if req.Name != nil {
		updates = append(updates, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *req.Name)
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

	query := fmt.Sprintf(`UPDATE shift_types SET %s WHERE id = $1`, strings.Join(updates, ", "))
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update shift type: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftTypeNotFound
	}

	return nil
}

// Delete implements shift.ShiftTypeRepository. A shift type that still backs
// shifts cannot be removed.
func (r *shiftTypeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM shift_types WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return shift.ErrShiftTypeInUse
		}
		return fmt.Errorf("failed to delete shift type: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftTypeNotFound
	}

	return nil
}
