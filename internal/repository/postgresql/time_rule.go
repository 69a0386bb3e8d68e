package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/clockwise-hr/timetrack-backend-go/internal/domain/timerule"
	"github.com/clockwise-hr/timetrack-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type overtimeRuleRepository struct {
	db *database.DB
}

func NewOvertimeRuleRepository(db *database.DB) timerule.OvertimeRuleRepository {
	return &overtimeRuleRepository{db: db}
}

// Create implements timerule.OvertimeRuleRepository.
func (r *overtimeRuleRepository) Create(ctx context.Context, rule timerule.OvertimeRule) (timerule.OvertimeRule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO overtime_rules (id, name, daily_threshold_minutes, multiplier, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rule.ID, rule.Name, rule.DailyThresholdMinutes, rule.Multiplier, rule.IsActive,
	).Scan(&rule.CreatedAt, &rule.UpdatedAt)
	if err != nil {
		return timerule.OvertimeRule{}, fmt.Errorf("failed to create overtime rule: %w", err)
	}

	return rule, nil
}

// GetByID implements timerule.OvertimeRuleRepository.
func (r *overtimeRuleRepository) GetByID(ctx context.Context, id string) (timerule.OvertimeRule, error) {
	q := GetQuerier(ctx, r.db)

	var rule timerule.OvertimeRule
	err := q.QueryRow(ctx, `
		SELECT id, name, daily_threshold_minutes, multiplier, is_active, created_at, updated_at
		FROM overtime_rules
		WHERE id = $1
	`, id).Scan(
		&rule.ID, &rule.Name, &rule.DailyThresholdMinutes, &rule.Multiplier, &rule.IsActive,
		&rule.CreatedAt, &rule.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timerule.OvertimeRule{}, timerule.ErrOvertimeRuleNotFound
		}
		return timerule.OvertimeRule{}, fmt.Errorf("failed to get overtime rule: %w", err)
	}

	return rule, nil
}

// GetActive implements timerule.OvertimeRuleRepository. The most recently
// updated active rule governs when several are active.
func (r *overtimeRuleRepository) GetActive(ctx context.Context) (*timerule.OvertimeRule, error) {
	q := GetQuerier(ctx, r.db)

	var rule timerule.OvertimeRule
	err := q.QueryRow(ctx, `
		SELECT id, name, daily_threshold_minutes, multiplier, is_active, created_at, updated_at
		FROM overtime_rules
		WHERE is_active = TRUE
		ORDER BY updated_at DESC
		LIMIT 1
	`).Scan(
		&rule.ID, &rule.Name, &rule.DailyThresholdMinutes, &rule.Multiplier, &rule.IsActive,
		&rule.CreatedAt, &rule.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active overtime rule: %w", err)
	}

	return &rule, nil
}

// List implements timerule.OvertimeRuleRepository.
func (r *overtimeRuleRepository) List(ctx context.Context) ([]timerule.OvertimeRule, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, name, daily_threshold_minutes, multiplier, is_active, created_at, updated_at
		FROM overtime_rules
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list overtime rules: %w", err)
	}
	defer rows.Close()

	var rules []timerule.OvertimeRule
	for rows.Next() {
		var rule timerule.OvertimeRule
		if err := rows.Scan(
			&rule.ID, &rule.Name, &rule.DailyThresholdMinutes, &rule.Multiplier, &rule.IsActive,
			&rule.CreatedAt, &rule.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan overtime rule: %w", err)
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate overtime rules: %w", err)
	}

	return rules, nil
}

// Update implements timerule.OvertimeRuleRepository.
func (r *overtimeRuleRepository) Update(ctx context.Context, id string, req timerule.UpdateOvertimeRuleRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := []string{}
	args := []interface{}{id}
	argIdx := 2

	if req.Name != nil {
		updates = append(updates, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}
	if req.DailyThresholdMinutes != nil {
		updates = append(updates, fmt.Sprintf("daily_threshold_minutes = $%d", argIdx))
		args = append(args, *req.DailyThresholdMinutes)
		argIdx++
	}
	if req.Multiplier != nil {
		updates = append(updates, fmt.Sprintf("multiplier = $%d", argIdx))
		args = append(args, *req.Multiplier)
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

	query := fmt.Sprintf(`UPDATE overtime_rules SET %s WHERE id = $1`, strings.Join(updates, ", "))
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update overtime rule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timerule.ErrOvertimeRuleNotFound
	}

	return nil
}

// Delete implements timerule.OvertimeRuleRepository.
func (r *overtimeRuleRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM overtime_rules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete overtime rule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timerule.ErrOvertimeRuleNotFound
	}

	return nil
}

type latenessRuleRepository struct {
	db *database.DB
}

func NewLatenessRuleRepository(db *database.DB) timerule.LatenessRuleRepository {
	return &latenessRuleRepository{db: db}
}

// Create implements timerule.LatenessRuleRepository.
func (r *latenessRuleRepository) Create(ctx context.Context, rule timerule.LatenessRule) (timerule.LatenessRule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO lateness_rules (id, name, grace_minutes, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, rule.ID, rule.Name, rule.GraceMinutes, rule.IsActive).
		Scan(&rule.CreatedAt, &rule.UpdatedAt)
	if err != nil {
		return timerule.LatenessRule{}, fmt.Errorf("failed to create lateness rule: %w", err)
	}

	return rule, nil
}

// GetByID implements timerule.LatenessRuleRepository.
func (r *latenessRuleRepository) GetByID(ctx context.Context, id string) (timerule.LatenessRule, error) {
	q := GetQuerier(ctx, r.db)

	var rule timerule.LatenessRule
	err := q.QueryRow(ctx, `
		SELECT id, name, grace_minutes, is_active, created_at, updated_at
		FROM lateness_rules
		WHERE id = $1
	`, id).Scan(
		&rule.ID, &rule.Name, &rule.GraceMinutes, &rule.IsActive, &rule.CreatedAt, &rule.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timerule.LatenessRule{}, timerule.ErrLatenessRuleNotFound
		}
		return timerule.LatenessRule{}, fmt.Errorf("failed to get lateness rule: %w", err)
	}

	return rule, nil
}

// GetActive implements timerule.LatenessRuleRepository.
func (r *latenessRuleRepository) GetActive(ctx context.Context) (*timerule.LatenessRule, error) {
	q := GetQuerier(ctx, r.db)

	var rule timerule.LatenessRule
	err := q.QueryRow(ctx, `
		SELECT id, name, grace_minutes, is_active, created_at, updated_at
		FROM lateness_rules
		WHERE is_active = TRUE
		ORDER BY updated_at DESC
		LIMIT 1
	`).Scan(
		&rule.ID, &rule.Name, &rule.GraceMinutes, &rule.IsActive, &rule.CreatedAt, &rule.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active lateness rule: %w", err)
	}

	return &rule, nil
}

// List implements timerule.LatenessRuleRepository.
func (r *latenessRuleRepository) List(ctx context.Context) ([]timerule.LatenessRule, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, name, grace_minutes, is_active, created_at, updated_at
		FROM lateness_rules
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list lateness rules: %w", err)
	}
	defer rows.Close()

	var rules []timerule.LatenessRule
	for rows.Next() {
		var rule timerule.LatenessRule
		if err := rows.Scan(
			&rule.ID, &rule.Name, &rule.GraceMinutes, &rule.IsActive, &rule.CreatedAt, &rule.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan lateness rule: %w", err)
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate lateness rules: %w", err)
	}

	return rules, nil
}

// Update implements timerule.LatenessRuleRepository.
func (r *latenessRuleRepository) Update(ctx context.Context, id string, req timerule.UpdateLatenessRuleRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := []string{}
	args := []interface{}{id}
	argIdx := 2

	if req.Name != nil {
		updates = append(updates, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}
	if req.GraceMinutes != nil {
		updates = append(updates, fmt.Sprintf("grace_minutes = $%d", argIdx))
		args = append(args, *req.GraceMinutes)
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

	query := fmt.Sprintf(`UPDATE lateness_rules SET %s WHERE id = $1`, strings.Join(updates, ", "))
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update lateness rule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timerule.ErrLatenessRuleNotFound
	}

	return nil
}

// Delete implements timerule.LatenessRuleRepository.
func (r *latenessRuleRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM lateness_rules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete lateness rule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timerule.ErrLatenessRuleNotFound
	}

	return nil
}
