package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/example/piste/internal/core/access"
	corebout "github.com/example/piste/internal/core/bout"
	"github.com/example/piste/internal/models"
	"github.com/example/piste/internal/ports/primary"
	"github.com/example/piste/internal/ports/secondary"
)

// BoutServiceImpl implements the BoutService interface.
type BoutServiceImpl struct {
	recorder
}

// NewBoutService creates a new BoutService with injected dependencies.
func NewBoutService(repos secondary.Repositories, logWriter secondary.LogWriter, executor EffectExecutor, logger *slog.Logger) *BoutServiceImpl {
	return &BoutServiceImpl{recorder: newRecorder(repos, logWriter, executor, logger)}
}

// AddBout records a pool bout. Without an explicit victory flag the result
// is derived from the score.
func (s *BoutServiceImpl) AddBout(ctx context.Context, req primary.AddBoutRequest) (*primary.WriteResult[models.Bout], error) {
	bout := &models.Bout{
		PoolID:       strings.TrimSpace(req.PoolID),
		OpponentName: strings.TrimSpace(req.OpponentName),
		ScoreFor:     req.ScoreFor,
		ScoreAgainst: req.ScoreAgainst,
		Victory:      resolveVictory(req.ScoreFor, req.ScoreAgainst, req.Victory, false),
	}

	if err := s.check(ctx, bout, true); err != nil {
		return nil, err
	}

	err := s.repos.Bouts.Create(ctx, bout)
	warnings, err := s.settle(ctx, "create", models.EntityBout, bout.ID, err)
	if err != nil {
		return nil, fmt.Errorf("failed to create bout: %w", err)
	}

	return &primary.WriteResult[models.Bout]{Record: bout, Warnings: warnings}, nil
}

// GetBout retrieves a pool bout by ID.
func (s *BoutServiceImpl) GetBout(ctx context.Context, boutID string) (*models.Bout, error) {
	return s.repos.Bouts.GetByID(ctx, boutID)
}

// ListBouts retrieves pool bouts, optionally restricted to one pool.
func (s *BoutServiceImpl) ListBouts(ctx context.Context, poolID string) ([]models.Bout, error) {
	bouts, err := s.repos.Bouts.List(ctx)
	if err != nil {
		return nil, err
	}
	if poolID != "" {
		bouts = access.WhereForeignKeyEquals(bouts, func(b models.Bout) string { return b.PoolID }, poolID)
	}
	return bouts, nil
}

// UpdateBout merges a patch into a pool bout and re-validates the result.
// When only the score changes, the victory flag follows the new score.
func (s *BoutServiceImpl) UpdateBout(ctx context.Context, boutID string, patch models.BoutPatch) (*primary.WriteResult[models.Bout], error) {
	if patch.Round != nil {
		return nil, fmt.Errorf("%w: round only applies to DE bouts", models.ErrValidation)
	}

	bout, err := s.repos.Bouts.GetByID(ctx, boutID)
	if err != nil {
		return nil, err
	}

	patch.Apply(bout)
	if scoreChanged(patch) {
		bout.Victory = resolveVictory(bout.ScoreFor, bout.ScoreAgainst, patch.Victory, bout.Victory)
	}
	bout.OpponentName = strings.TrimSpace(bout.OpponentName)

	if err := s.check(ctx, bout, false); err != nil {
		return nil, err
	}

	err = s.repos.Bouts.Update(ctx, bout)
	warnings, err := s.settle(ctx, "update", models.EntityBout, boutID, err)
	if err != nil {
		return nil, fmt.Errorf("failed to update bout: %w", err)
	}

	return &primary.WriteResult[models.Bout]{Record: bout, Warnings: warnings}, nil
}

// DeleteBout deletes a pool bout.
func (s *BoutServiceImpl) DeleteBout(ctx context.Context, boutID string) (*primary.DeleteResult, error) {
	return s.deleteCascade(ctx, models.EntityBout, boutID)
}

func (s *BoutServiceImpl) check(ctx context.Context, bout *models.Bout, verifyParent bool) error {
	poolExists := true
	if verifyParent {
		var err error
		if poolExists, err = exists(ctx, s.repos.Pools, bout.PoolID); err != nil {
			return fmt.Errorf("failed to validate pool: %w", err)
		}
	}
	return corebout.CanSaveBout(corebout.SaveBoutContext{Bout: *bout, PoolExists: poolExists}).Error()
}

// resolveVictory returns the explicit flag when given, otherwise derives it
// from the score, keeping fallback for a tie.
func resolveVictory(scoreFor, scoreAgainst int, explicit *bool, fallback bool) bool {
	if explicit != nil {
		return *explicit
	}
	return corebout.VictoryFromScore(scoreFor, scoreAgainst, fallback)
}

func scoreChanged(patch models.BoutPatch) bool {
	return patch.ScoreFor != nil || patch.ScoreAgainst != nil
}

// Ensure BoutServiceImpl implements the interface
var _ primary.BoutService = (*BoutServiceImpl)(nil)
