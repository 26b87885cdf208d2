package app

import (
	"context"
	"fmt"

	"github.com/example/piste/internal/ports/primary"
	"github.com/example/piste/internal/ports/secondary"
)

// ActivityServiceImpl implements the ActivityService interface.
type ActivityServiceImpl struct {
	activityRepo secondary.ActivityLogRepository
}

// NewActivityService creates a new ActivityService with injected dependencies.
func NewActivityService(activityRepo secondary.ActivityLogRepository) *ActivityServiceImpl {
	return &ActivityServiceImpl{
		activityRepo: activityRepo,
	}
}

// ListActivity retrieves activity entries matching the given filters.
func (s *ActivityServiceImpl) ListActivity(ctx context.Context, filters primary.ActivityFilters) ([]*primary.ActivityEntry, error) {
	records, err := s.activityRepo.List(ctx, secondary.ActivityFilters{
		EntityType: filters.EntityType,
		EntityID:   filters.EntityID,
		Action:     filters.Action,
		Limit:      filters.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}

	entries := make([]*primary.ActivityEntry, len(records))
	for i, r := range records {
		entries[i] = s.recordToEntry(r)
	}
	return entries, nil
}

// PruneActivity deletes entries older than the specified number of days.
func (s *ActivityServiceImpl) PruneActivity(ctx context.Context, olderThanDays int) (int, error) {
	if olderThanDays < 1 {
		return 0, fmt.Errorf("retention must be at least 1 day (got %d)", olderThanDays)
	}
	return s.activityRepo.PruneOlderThan(ctx, olderThanDays)
}

func (s *ActivityServiceImpl) recordToEntry(r *secondary.ActivityRecord) *primary.ActivityEntry {
	return &primary.ActivityEntry{
		Actor:      r.Actor,
		EntityType: r.EntityType,
		EntityID:   r.EntityID,
		Action:     r.Action,
		Cascaded:   r.Cascaded,
		Timestamp:  r.CreatedAt,
	}
}

// Ensure ActivityServiceImpl implements the interface
var _ primary.ActivityService = (*ActivityServiceImpl)(nil)
