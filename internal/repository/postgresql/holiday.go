package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/clockwise-hr/timetrack-backend-go/internal/domain/timerule"
	"github.com/clockwise-hr/timetrack-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) timerule.HolidayRepository {
	return &holidayRepository{db: db}
}

// Create implements timerule.HolidayRepository.
func (r *holidayRepository) Create(ctx context.Context, holiday timerule.Holiday) (timerule.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO holidays (id, name, date)
		VALUES ($1, $2, $3)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, holiday.ID, holiday.Name, holiday.Date).
		Scan(&holiday.CreatedAt, &holiday.UpdatedAt)
	if err != nil {
		return timerule.Holiday{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return holiday, nil
}

// GetByID implements timerule.HolidayRepository.
func (r *holidayRepository) GetByID(ctx context.Context, id string) (timerule.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	var holiday timerule.Holiday
	err := q.QueryRow(ctx, `
		SELECT id, name, date, created_at, updated_at
		FROM holidays
		WHERE id = $1
	`, id).Scan(&holiday.ID, &holiday.Name, &holiday.Date, &holiday.CreatedAt, &holiday.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timerule.Holiday{}, timerule.ErrHolidayNotFound
		}
		return timerule.Holiday{}, fmt.Errorf("failed to get holiday: %w", err)
	}

	return holiday, nil
}

// GetByDate implements timerule.HolidayRepository.
func (r *holidayRepository) GetByDate(ctx context.Context, date time.Time) (*timerule.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	var holiday timerule.Holiday
	err := q.QueryRow(ctx, `
		SELECT id, name, date, created_at, updated_at
		FROM holidays
		WHERE date = $1
		LIMIT 1
	`, date).Scan(&holiday.ID, &holiday.Name, &holiday.Date, &holiday.CreatedAt, &holiday.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get holiday by date: %w", err)
	}

	return &holiday, nil
}

// List implements timerule.HolidayRepository.
func (r *holidayRepository) List(ctx context.Context) ([]timerule.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, name, date, created_at, updated_at
		FROM holidays
		ORDER BY date
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []timerule.Holiday
	for rows.Next() {
		var holiday timerule.Holiday
		if err := rows.Scan(&holiday.ID, &holiday.Name, &holiday.Date, &holiday.CreatedAt, &holiday.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, holiday)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate holidays: %w", err)
	}

	return holidays, nil
}

// Update implements timerule.HolidayRepository.
func (r *holidayRepository) Update(ctx context.Context, id string, req timerule.UpdateHolidayRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := []string{}
	args := []interface{}{id}
	argIdx := 2

	if req.Name != nil {
		updates = append(updates, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}
	if req.Date != nil {
		updates = append(updates, fmt.Sprintf("date = $%d", argIdx))
		args = append(args, *req.Date)
		argIdx++
	}
	if len(updates) == 0 {
		return nil
	}
	updates = append(updates, "updated_at = NOW()")

	query := fmt.Sprintf(`UPDATE holidays SET %s WHERE id = $1`, strings.Join(updates, ", "))
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update holiday: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timerule.ErrHolidayNotFound
	}

	return nil
}

// Delete implements timerule.HolidayRepository.
func (r *holidayRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM holidays WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timerule.ErrHolidayNotFound
	}

	return nil
}
