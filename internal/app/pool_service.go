package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/example/piste/internal/core/access"
	coreentry "github.com/example/piste/internal/core/entry"
	"github.com/example/piste/internal/models"
	"github.com/example/piste/internal/ports/primary"
	"github.com/example/piste/internal/ports/secondary"
)

// PoolServiceImpl implements the PoolService interface.
type PoolServiceImpl struct {
	recorder
}

// NewPoolService creates a new PoolService with injected dependencies.
func NewPoolService(repos secondary.Repositories, logWriter secondary.LogWriter, executor EffectExecutor, logger *slog.Logger) *PoolServiceImpl {
	return &PoolServiceImpl{recorder: newRecorder(repos, logWriter, executor, logger)}
}

// AddPool adds a pool to an existing entry.
func (s *PoolServiceImpl) AddPool(ctx context.Context, req primary.AddPoolRequest) (*primary.WriteResult[models.Pool], error) {
	pool := &models.Pool{
		EntryID:         strings.TrimSpace(req.EntryID),
		PoolNumber:      req.PoolNumber,
		NumberOfFencers: req.NumberOfFencers,
	}

	if err := s.check(ctx, pool, true); err != nil {
		return nil, err
	}

	err := s.repos.Pools.Create(ctx, pool)
	warnings, err := s.settle(ctx, "create", models.EntityPool, pool.ID, err)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	return &primary.WriteResult[models.Pool]{Record: pool, Warnings: warnings}, nil
}

// GetPool retrieves a pool by ID.
func (s *PoolServiceImpl) GetPool(ctx context.Context, poolID string) (*models.Pool, error) {
	return s.repos.Pools.GetByID(ctx, poolID)
}

// ListPools retrieves pools, optionally restricted to one entry.
func (s *PoolServiceImpl) ListPools(ctx context.Context, entryID string) ([]models.Pool, error) {
	pools, err := s.repos.Pools.List(ctx)
	if err != nil {
		return nil, err
	}
	if entryID != "" {
		pools = access.WhereForeignKeyEquals(pools, func(p models.Pool) string { return p.EntryID }, entryID)
	}
	return pools, nil
}

// UpdatePool merges a patch into a pool and re-validates the result.
func (s *PoolServiceImpl) UpdatePool(ctx context.Context, poolID string, patch models.PoolPatch) (*primary.WriteResult[models.Pool], error) {
	pool, err := s.repos.Pools.GetByID(ctx, poolID)
	if err != nil {
		return nil, err
	}

	patch.Apply(pool)
	if err := s.check(ctx, pool, false); err != nil {
		return nil, err
	}

	err = s.repos.Pools.Update(ctx, pool)
	warnings, err := s.settle(ctx, "update", models.EntityPool, poolID, err)
	if err != nil {
		return nil, fmt.Errorf("failed to update pool: %w", err)
	}

	return &primary.WriteResult[models.Pool]{Record: pool, Warnings: warnings}, nil
}

// DeletePool deletes a pool and its bouts.
func (s *PoolServiceImpl) DeletePool(ctx context.Context, poolID string) (*primary.DeleteResult, error) {
	return s.deleteCascade(ctx, models.EntityPool, poolID)
}

func (s *PoolServiceImpl) check(ctx context.Context, pool *models.Pool, verifyParent bool) error {
	entryExists := true
	if verifyParent {
		var err error
		if entryExists, err = exists(ctx, s.repos.Entries, pool.EntryID); err != nil {
			return fmt.Errorf("failed to validate entry: %w", err)
		}
	}
	return coreentry.CanSavePool(coreentry.SavePoolContext{Pool: *pool, EntryExists: entryExists}).Error()
}

// Ensure PoolServiceImpl implements the interface
var _ primary.PoolService = (*PoolServiceImpl)(nil)
