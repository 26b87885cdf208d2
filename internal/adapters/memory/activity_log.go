package memory

import (
	"context"
	"sync"
	"time"

	"github.com/example/piste/internal/ports/secondary"
)

// ActivityLog is a process-lifetime secondary.ActivityLogRepository.
type ActivityLog struct {
	mu      sync.Mutex
	records []secondary.ActivityRecord
	now     func() time.Time
}

// NewActivityLog creates an empty activity log. now may be nil.
func NewActivityLog(now func() time.Time) *ActivityLog {
	if now == nil {
		now = time.Now
	}
	return &ActivityLog{now: now}
}

// Append stores a copy of record, assigning its ID and CreatedAt.
func (l *ActivityLog) Append(ctx context.Context, record *secondary.ActivityRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	record.ID = int64(len(l.records) + 1)
	record.CreatedAt = l.now().UTC().Format(time.RFC3339)
	l.records = append(l.records, *record)
	return nil
}

// List returns matching records, newest first.
func (l *ActivityLog) List(ctx context.Context, filters secondary.ActivityFilters) ([]*secondary.ActivityRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var result []*secondary.ActivityRecord
	for i := len(l.records) - 1; i >= 0; i-- {
		r := l.records[i]
		if filters.EntityType != "" && r.EntityType != filters.EntityType {
			continue
		}
		if filters.EntityID != "" && r.EntityID != filters.EntityID {
			continue
		}
		if filters.Action != "" && r.Action != filters.Action {
			continue
		}
		result = append(result, &r)
		if filters.Limit > 0 && len(result) == filters.Limit {
			break
		}
	}
	return result, nil
}

// PruneOlderThan drops records older than the given number of days.
func (l *ActivityLog) PruneOlderThan(ctx context.Context, days int) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().UTC().AddDate(0, 0, -days)
	kept := l.records[:0]
	pruned := 0
	for _, r := range l.records {
		created, err := time.Parse(time.RFC3339, r.CreatedAt)
		if err == nil && created.Before(cutoff) {
			pruned++
			continue
		}
		kept = append(kept, r)
	}
	l.records = kept
	return pruned, nil
}

// Ensure ActivityLog implements the interface.
var _ secondary.ActivityLogRepository = (*ActivityLog)(nil)
