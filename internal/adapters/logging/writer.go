// Package logging adapts structured logging and the activity log to the
// secondary.LogWriter port.
package logging

import (
	"context"
	"log/slog"

	"github.com/example/piste/internal/ctxutil"
	"github.com/example/piste/internal/ports/secondary"
)

// Writer implements secondary.LogWriter. Every entry goes to the slog logger;
// when an activity repository is configured it is also appended there.
type Writer struct {
	logger   *slog.Logger
	activity secondary.ActivityLogRepository
}

// NewWriter creates a Writer. activity may be nil.
func NewWriter(logger *slog.Logger, activity secondary.ActivityLogRepository) *Writer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Writer{logger: logger, activity: activity}
}

// LogCreate logs a create operation for an entity.
func (w *Writer) LogCreate(ctx context.Context, entityType, entityID string) error {
	return w.write(ctx, entityType, entityID, "create", 0)
}

// LogUpdate logs an update operation for an entity.
func (w *Writer) LogUpdate(ctx context.Context, entityType, entityID string) error {
	return w.write(ctx, entityType, entityID, "update", 0)
}

// LogDelete logs a delete operation for an entity.
func (w *Writer) LogDelete(ctx context.Context, entityType, entityID string, cascaded int) error {
	return w.write(ctx, entityType, entityID, "delete", cascaded)
}

func (w *Writer) write(ctx context.Context, entityType, entityID, action string, cascaded int) error {
	actor := ctxutil.ActorFromContext(ctx)

	attrs := []any{
		slog.String("entity", entityType),
		slog.String("id", entityID),
	}
	if actor != "" {
		attrs = append(attrs, slog.String("actor", actor))
	}
	if cascaded > 0 {
		attrs = append(attrs, slog.Int("cascaded", cascaded))
	}
	w.logger.InfoContext(ctx, action, attrs...)

	if w.activity == nil {
		return nil
	}
	return w.activity.Append(ctx, &secondary.ActivityRecord{
		Actor:      actor,
		EntityType: entityType,
		EntityID:   entityID,
		Action:     action,
		Cascaded:   cascaded,
	})
}

// Ensure Writer implements the interface.
var _ secondary.LogWriter = (*Writer)(nil)
