package primary

import "context"

// ActivityService defines the primary port for the audit trail.
type ActivityService interface {
	// ListActivity retrieves activity entries matching the given filters, newest first.
	ListActivity(ctx context.Context, filters ActivityFilters) ([]*ActivityEntry, error)

	// PruneActivity deletes entries older than the specified number of days.
	PruneActivity(ctx context.Context, olderThanDays int) (int, error)
}

// ActivityFilters contains filter options for querying activity.
type ActivityFilters struct {
	EntityType string
	EntityID   string
	Action     string
	Limit      int
}

// ActivityEntry represents an audit entry at the port boundary.
type ActivityEntry struct {
	Actor      string
	EntityType string
	EntityID   string
	Action     string
	Cascaded   int
	Timestamp  string
}
