package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/clockwise-hr/timetrack-backend-go/internal/domain/notification"
	"github.com/clockwise-hr/timetrack-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type notificationRepository struct {
	db *database.DB
}

func NewNotificationRepository(db *database.DB) notification.Repository {
	return &notificationRepository{db: db}
}

// AppendBatch implements notification.Repository.
func (r *notificationRepository) AppendBatch(ctx context.Context, entries []notification.LogEntry) error {
	if len(entries) == 0 {
		return nil
	}

	rows := make([][]interface{}, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, []interface{}{
			entry.ID, entry.RecipientID, string(entry.Type), entry.Message, entry.CreatedAt,
		})
	}

	_, err := r.db.Pool.CopyFrom(ctx,
		pgx.Identifier{"notification_log"},
		[]string{"id", "recipient_id", "type", "message", "created_at"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("failed to append notification log batch: %w", err)
	}

	return nil
}

// List implements notification.Repository.
func (r *notificationRepository) List(ctx context.Context, filter notification.ListFilter) ([]notification.LogEntry, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.RecipientID != nil {
		conditions = append(conditions, fmt.Sprintf("recipient_id = $%d", argIdx))
		args = append(args, *filter.RecipientID)
		argIdx++
	}
	if filter.Type != nil {
		conditions = append(conditions, fmt.Sprintf("type = $%d", argIdx))
		args = append(args, *filter.Type)
		argIdx++
	}
	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM notification_log WHERE %s`, where)
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count notification log: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, recipient_id, type, message, created_at
		FROM notification_log
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list notification log: %w", err)
	}
	defer rows.Close()

	var entries []notification.LogEntry
	for rows.Next() {
		var entry notification.LogEntry
		if err := rows.Scan(&entry.ID, &entry.RecipientID, &entry.Type, &entry.Message, &entry.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan notification log entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate notification log: %w", err)
	}

	return entries, total, nil
}
