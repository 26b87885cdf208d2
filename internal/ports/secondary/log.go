package secondary

import "context"

// LogWriter defines the interface for writing audit log entries.
// Implementations extract the actor from context.
type LogWriter interface {
	// LogCreate logs a create operation for an entity.
	LogCreate(ctx context.Context, entityType, entityID string) error

	// LogUpdate logs an update operation for an entity.
	LogUpdate(ctx context.Context, entityType, entityID string) error

	// LogDelete logs a delete operation for an entity.
	// cascaded is the number of dependent records removed with it.
	LogDelete(ctx context.Context, entityType, entityID string, cascaded int) error
}

// ActivityRecord is one row of the activity log.
type ActivityRecord struct {
	ID         int64
	Actor      string
	EntityType string
	EntityID   string
	Action     string
	Cascaded   int
	CreatedAt  string
}

// ActivityFilters contains filter options for querying the activity log.
type ActivityFilters struct {
	EntityType string
	EntityID   string
	Action     string
	Limit      int
}

// ActivityLogRepository defines the port for the persisted activity log.
type ActivityLogRepository interface {
	// Append stores a record. ID and CreatedAt are assigned by the repository.
	Append(ctx context.Context, record *ActivityRecord) error

	// List returns matching records, newest first.
	List(ctx context.Context, filters ActivityFilters) ([]*ActivityRecord, error)

	// PruneOlderThan deletes records older than the given number of days.
	PruneOlderThan(ctx context.Context, days int) (int, error)
}
