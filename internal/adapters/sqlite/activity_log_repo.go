package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/piste/internal/ports/secondary"
)

// ActivityLogRepository implements secondary.ActivityLogRepository with SQLite.
type ActivityLogRepository struct {
	db *sql.DB
}

// NewActivityLogRepository creates a new SQLite activity log repository.
func NewActivityLogRepository(db *sql.DB) *ActivityLogRepository {
	return &ActivityLogRepository{db: db}
}

// Append persists a new activity record.
func (r *ActivityLogRepository) Append(ctx context.Context, record *secondary.ActivityRecord) error {
	var actor sql.NullString
	if record.Actor != "" {
		actor = sql.NullString{String: record.Actor, Valid: true}
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO activity_log (actor, entity_type, entity_id, action, cascaded) VALUES (?, ?, ?, ?, ?)`,
		actor,
		record.EntityType,
		record.EntityID,
		record.Action,
		record.Cascaded,
	)
	if err != nil {
		return fmt.Errorf("failed to append activity: %w", err)
	}

	if id, err := res.LastInsertId(); err == nil {
		record.ID = id
	}
	return nil
}

// List retrieves activity records matching the given filters, newest first.
func (r *ActivityLogRepository) List(ctx context.Context, filters secondary.ActivityFilters) ([]*secondary.ActivityRecord, error) {
	query := `SELECT id, actor, entity_type, entity_id, action, cascaded, created_at FROM activity_log WHERE 1=1`
	args := []any{}

	if filters.EntityType != "" {
		query += " AND entity_type = ?"
		args = append(args, filters.EntityType)
	}

	if filters.EntityID != "" {
		query += " AND entity_id = ?"
		args = append(args, filters.EntityID)
	}

	if filters.Action != "" {
		query += " AND action = ?"
		args = append(args, filters.Action)
	}

	query += " ORDER BY id DESC"

	if filters.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filters.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}
	defer rows.Close()

	var records []*secondary.ActivityRecord
	for rows.Next() {
		var (
			actor     sql.NullString
			createdAt time.Time
		)

		record := &secondary.ActivityRecord{}
		err := rows.Scan(&record.ID,
			&actor,
			&record.EntityType,
			&record.EntityID,
			&record.Action,
			&record.Cascaded,
			&createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		record.Actor = actor.String
		record.CreatedAt = createdAt.Format(time.RFC3339)

		records = append(records, record)
	}

	return records, rows.Err()
}

// PruneOlderThan deletes records older than the specified number of days.
func (r *ActivityLogRepository) PruneOlderThan(ctx context.Context, days int) (int, error) {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM activity_log WHERE created_at < datetime('now', ?)",
		fmt.Sprintf("-%d days", days),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to prune activity: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return int(n), nil
}

// Ensure ActivityLogRepository implements the interface.
var _ secondary.ActivityLogRepository = (*ActivityLogRepository)(nil)
