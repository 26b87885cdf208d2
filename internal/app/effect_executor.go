// Package app contains the application layer - service implementations and effect execution.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/example/piste/internal/core/effects"
	"github.com/example/piste/internal/models"
	"github.com/example/piste/internal/ports/secondary"
)

// EffectExecutor interprets and executes effects.
// This is the "Imperative Shell" - the only place the store is mutated on behalf of a plan.
type EffectExecutor interface {
	Execute(ctx context.Context, effs []effects.Effect) error
}

// DefaultEffectExecutor applies effects to the record store.
type DefaultEffectExecutor struct {
	repos  secondary.Repositories
	logger *slog.Logger
}

// NewEffectExecutor creates a new DefaultEffectExecutor.
func NewEffectExecutor(repos secondary.Repositories, logger *slog.Logger) *DefaultEffectExecutor {
	return &DefaultEffectExecutor{repos: repos, logger: logger}
}

// Execute processes effects in sequence. Persistence failures do not stop
// the sequence: memory stays authoritative, so every later step still runs
// and the failures are returned joined. Any other error aborts.
func (e *DefaultEffectExecutor) Execute(ctx context.Context, effs []effects.Effect) error {
	var persistErrs []error
	for _, eff := range effs {
		err := e.executeOne(ctx, eff)
		if err == nil {
			continue
		}
		if models.IsPersistenceWarning(err) {
			persistErrs = append(persistErrs, err)
			continue
		}
		return fmt.Errorf("failed to execute %s effect: %w", eff.EffectType(), err)
	}
	return errors.Join(persistErrs...)
}

func (e *DefaultEffectExecutor) executeOne(ctx context.Context, eff effects.Effect) error {
	switch typed := eff.(type) {
	case effects.PersistEffect:
		return e.executePersist(ctx, typed)
	case effects.CompositeEffect:
		return e.Execute(ctx, typed.Effects)
	case effects.NoEffect:
		return nil
	case effects.LogEffect:
		e.executeLog(ctx, typed)
		return nil
	default:
		return fmt.Errorf("unknown effect type: %T", eff)
	}
}

func (e *DefaultEffectExecutor) executePersist(ctx context.Context, eff effects.PersistEffect) error {
	if eff.Operation != effects.OpDelete {
		return fmt.Errorf("unknown %s operation: %s", eff.Entity, eff.Operation)
	}

	var err error
	switch eff.Entity {
	case models.EntityFencer:
		_, err = e.repos.Fencers.Delete(ctx, eff.IDs...)
	case models.EntityTournament:
		_, err = e.repos.Tournaments.Delete(ctx, eff.IDs...)
	case models.EntityEntry:
		_, err = e.repos.Entries.Delete(ctx, eff.IDs...)
	case models.EntityPool:
		_, err = e.repos.Pools.Delete(ctx, eff.IDs...)
	case models.EntityBout:
		_, err = e.repos.Bouts.Delete(ctx, eff.IDs...)
	case models.EntityDEBout:
		_, err = e.repos.DEBouts.Delete(ctx, eff.IDs...)
	default:
		return fmt.Errorf("unknown entity: %s", eff.Entity)
	}
	return err
}

func (e *DefaultEffectExecutor) executeLog(ctx context.Context, eff effects.LogEffect) {
	level := slog.LevelInfo
	switch eff.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	attrs := make([]any, 0, len(eff.Fields))
	for k, v := range eff.Fields {
		attrs = append(attrs, slog.Any(k, v))
	}
	e.logger.Log(ctx, level, eff.Message, attrs...)
}

// Ensure DefaultEffectExecutor implements the interface
var _ EffectExecutor = (*DefaultEffectExecutor)(nil)
