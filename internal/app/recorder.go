package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/example/piste/internal/core/cascade"
	"github.com/example/piste/internal/models"
	"github.com/example/piste/internal/ports/primary"
	"github.com/example/piste/internal/ports/secondary"
)

// recorder holds what every write path shares: the repositories, the audit
// writer, the effect executor for cascades, and the logger.
type recorder struct {
	repos     secondary.Repositories
	logWriter secondary.LogWriter
	executor  EffectExecutor
	logger    *slog.Logger
}

func newRecorder(repos secondary.Repositories, logWriter secondary.LogWriter, executor EffectExecutor, logger *slog.Logger) recorder {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return recorder{repos: repos, logWriter: logWriter, executor: executor, logger: logger}
}

// settle turns the error of a store write into the caller's result.
// Persistence failures become warnings; anything else is returned.
// The write is audited whenever it took effect in memory.
func (r recorder) settle(ctx context.Context, action, entity, id string, err error) ([]string, error) {
	if err != nil && !models.IsPersistenceWarning(err) {
		return nil, err
	}

	warnings := r.warn(ctx, action, entity, id, err)

	var auditErr error
	switch action {
	case "create":
		auditErr = r.logWriter.LogCreate(ctx, entity, id)
	case "update":
		auditErr = r.logWriter.LogUpdate(ctx, entity, id)
	}
	if auditErr != nil {
		r.logger.WarnContext(ctx, "audit log write failed", "entity", entity, "id", id, "error", auditErr)
	}
	return warnings, nil
}

// warn logs each joined persistence failure and returns their messages.
func (r recorder) warn(ctx context.Context, action, entity, id string, err error) []string {
	if err == nil {
		return nil
	}

	errs := []error{err}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		errs = joined.Unwrap()
	}

	warnings := make([]string, 0, len(errs))
	for _, e := range errs {
		r.logger.WarnContext(ctx, "change kept in memory but not saved",
			"action", action, "entity", entity, "id", id, "error", e)
		warnings = append(warnings, e.Error())
	}
	return warnings
}

// deleteCascade removes a record and everything that depends on it as one
// batch: ids are gathered from a snapshot first, then deleted child-first.
func (r recorder) deleteCascade(ctx context.Context, entity, id string) (*primary.DeleteResult, error) {
	snap, err := r.repos.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if !cascade.Exists(snap, entity, id) {
		return nil, models.NotFoundError(entity, id)
	}

	plan, err := cascade.PlanDelete(snap, entity, id)
	if err != nil {
		return nil, err
	}

	execErr := r.executor.Execute(ctx, plan.Effects())
	if execErr != nil && !isOnlyPersistence(execErr) {
		return nil, execErr
	}

	result := &primary.DeleteResult{
		Entity:   entity,
		ID:       id,
		Removed:  removedCounts(plan),
		Warnings: r.warn(ctx, "delete", entity, id, execErr),
	}

	if err := r.logWriter.LogDelete(ctx, entity, id, plan.Total()-1); err != nil {
		r.logger.WarnContext(ctx, "audit log write failed", "entity", entity, "id", id, "error", err)
	}
	return result, nil
}

func isOnlyPersistence(err error) bool {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			if !models.IsPersistenceWarning(e) {
				return false
			}
		}
		return true
	}
	return models.IsPersistenceWarning(err)
}

func removedCounts(plan cascade.DeletePlan) map[string]int {
	counts := map[string]int{}
	add := func(entity string, ids []string) {
		if len(ids) > 0 {
			counts[entity] = len(ids)
		}
	}
	add(models.EntityFencer, plan.FencerIDs)
	add(models.EntityTournament, plan.TournamentIDs)
	add(models.EntityEntry, plan.EntryIDs)
	add(models.EntityPool, plan.PoolIDs)
	add(models.EntityBout, plan.BoutIDs)
	add(models.EntityDEBout, plan.DEBoutIDs)
	return counts
}

// exists reports whether id is present in repo, treating not-found as false.
func exists[T any](ctx context.Context, repo secondary.Repository[T], id string) (bool, error) {
	if id == "" {
		return false, nil
	}
	_, err := repo.GetByID(ctx, id)
	if errors.Is(err, models.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
