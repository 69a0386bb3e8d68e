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

type scheduleRuleRepository struct {
	db *database.DB
}

func NewScheduleRuleRepository(db *database.DB) shift.ScheduleRuleRepository {
	return &scheduleRuleRepository{db: db}
}

// Create implements shift.ScheduleRuleRepository.
func (r *scheduleRuleRepository) Create(ctx context.Context, rule shift.ScheduleRule) (shift.ScheduleRule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO schedule_rules (id, name, recurrence, rest_days, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, rule.ID, rule.Name, rule.Recurrence, rule.RestDays, rule.IsActive).
		Scan(&rule.CreatedAt, &rule.UpdatedAt)
	if err != nil {
		return shift.ScheduleRule{}, fmt.Errorf("failed to create schedule rule: %w", err)
	}

	return rule, nil
}

// GetByID implements shift.ScheduleRuleRepository.
func (r *scheduleRuleRepository) GetByID(ctx context.Context, id string) (shift.ScheduleRule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, recurrence, rest_days, is_active, created_at, updated_at
		FROM schedule_rules
		WHERE id = $1
	`

	var rule shift.ScheduleRule
	err := q.QueryRow(ctx, query, id).Scan(
		&rule.ID, &rule.Name, &rule.Recurrence, &rule.RestDays, &rule.IsActive,
		&rule.CreatedAt, &rule.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.ScheduleRule{}, shift.ErrScheduleRuleNotFound
		}
		return shift.ScheduleRule{}, fmt.Errorf("failed to get schedule rule: %w", err)
	}

	return rule, nil
}

// List implements shift.ScheduleRuleRepository.
func (r *scheduleRuleRepository) List(ctx context.Context, activeOnly bool) ([]shift.ScheduleRule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, recurrence, rest_days, is_active, created_at, updated_at
		FROM schedule_rules
	`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedule rules: %w", err)
	}
	defer rows.Close()

	var rules []shift.ScheduleRule
	for rows.Next() {
		var rule shift.ScheduleRule
		if err := rows.Scan(
			&rule.ID, &rule.Name, &rule.Recurrence, &rule.RestDays, &rule.IsActive,
			&rule.CreatedAt, &rule.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan schedule rule: %w", err)
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate schedule rules: %w", err)
	}

	return rules, nil
}

// Update implements shift.ScheduleRuleRepository.
func (r *scheduleRuleRepository) Update(ctx context.Context, id string, req shift.UpdateScheduleRuleRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := []string{}
	args := []interface{}{id}
	argIdx := 2

	if req.Name != nil {
		updates = append(updates, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}
	if req.Recurrence != nil {
		updates = append(updates, fmt.Sprintf("recurrence = $%d", argIdx))
		args = append(args, *req.Recurrence)
		argIdx++
	}
	if req.RestDays != nil {
		updates = append(updates, fmt.Sprintf("rest_days = $%d", argIdx))
		args = append(args, req.RestDays)
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

	query := fmt.Sprintf(`UPDATE schedule_rules SET %s WHERE id = $1`, strings.Join(updates, ", "))
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update schedule rule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrScheduleRuleNotFound
	}

	return nil
}

// Delete implements shift.ScheduleRuleRepository.
func (r *scheduleRuleRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM schedule_rules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete schedule rule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrScheduleRuleNotFound
	}

	return nil
}
