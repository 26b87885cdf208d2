package app

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/example/piste/internal/core/access"
	corebout "github.com/example/piste/internal/core/bout"
	"github.com/example/piste/internal/models"
	"github.com/example/piste/internal/ports/primary"
	"github.com/example/piste/internal/ports/secondary"
)

// DEBoutServiceImpl implements the DEBoutService interface.
type DEBoutServiceImpl struct {
	recorder
}

// NewDEBoutService creates a new DEBoutService with injected dependencies.
func NewDEBoutService(repos secondary.Repositories, logWriter secondary.LogWriter, executor EffectExecutor, logger *slog.Logger) *DEBoutServiceImpl {
	return &DEBoutServiceImpl{recorder: newRecorder(repos, logWriter, executor, logger)}
}

// AddDEBout records a DE bout.
func (s *DEBoutServiceImpl) AddDEBout(ctx context.Context, req primary.AddDEBoutRequest) (*primary.WriteResult[models.DEBout], error) {
	bout := &models.DEBout{
		EntryID:      strings.TrimSpace(req.EntryID),
		Round:        req.Round,
		OpponentName: strings.TrimSpace(req.OpponentName),
		ScoreFor:     req.ScoreFor,
		ScoreAgainst: req.ScoreAgainst,
		Victory:      resolveVictory(req.ScoreFor, req.ScoreAgainst, req.Victory, false),
	}

	if err := s.check(ctx, bout, true); err != nil {
		return nil, err
	}

	err := s.repos.DEBouts.Create(ctx, bout)
	warnings, err := s.settle(ctx, "create", models.EntityDEBout, bout.ID, err)
	if err != nil {
		return nil, fmt.Errorf("failed to create DE bout: %w", err)
	}

	return &primary.WriteResult[models.DEBout]{Record: bout, Warnings: warnings}, nil
}

// GetDEBout retrieves a DE bout by ID.
func (s *DEBoutServiceImpl) GetDEBout(ctx context.Context, deBoutID string) (*models.DEBout, error) {
	return s.repos.DEBouts.GetByID(ctx, deBoutID)
}

// ListDEBouts retrieves DE bouts, optionally restricted to one entry,
// earliest round (largest table) first.
func (s *DEBoutServiceImpl) ListDEBouts(ctx context.Context, entryID string) ([]models.DEBout, error) {
	bouts, err := s.repos.DEBouts.List(ctx)
	if err != nil {
		return nil, err
	}
	if entryID != "" {
		bouts = access.WhereForeignKeyEquals(bouts, func(b models.DEBout) string { return b.EntryID }, entryID)
	}
	sort.SliceStable(bouts, func(i, j int) bool {
		return bouts[i].Round > bouts[j].Round
	})
	return bouts, nil
}

// UpdateDEBout merges a patch into a DE bout and re-validates the result.
func (s *DEBoutServiceImpl) UpdateDEBout(ctx context.Context, deBoutID string, patch models.BoutPatch) (*primary.WriteResult[models.DEBout], error) {
	bout, err := s.repos.DEBouts.GetByID(ctx, deBoutID)
	if err != nil {
		return nil, err
	}

	patch.ApplyDE(bout)
	if scoreChanged(patch) {
		bout.Victory = resolveVictory(bout.ScoreFor, bout.ScoreAgainst, patch.Victory, bout.Victory)
	}
	bout.OpponentName = strings.TrimSpace(bout.OpponentName)

	if err := s.check(ctx, bout, false); err != nil {
		return nil, err
	}

	err = s.repos.DEBouts.Update(ctx, bout)
	warnings, err := s.settle(ctx, "update", models.EntityDEBout, deBoutID, err)
	if err != nil {
		return nil, fmt.Errorf("failed to update DE bout: %w", err)
	}

	return &primary.WriteResult[models.DEBout]{Record: bout, Warnings: warnings}, nil
}

// DeleteDEBout deletes a DE bout.
func (s *DEBoutServiceImpl) DeleteDEBout(ctx context.Context, deBoutID string) (*primary.DeleteResult, error) {
	return s.deleteCascade(ctx, models.EntityDEBout, deBoutID)
}

func (s *DEBoutServiceImpl) check(ctx context.Context, bout *models.DEBout, verifyParent bool) error {
	entryExists := true
	if verifyParent {
		var err error
		if entryExists, err = exists(ctx, s.repos.Entries, bout.EntryID); err != nil {
			return fmt.Errorf("failed to validate entry: %w", err)
		}
	}
	return corebout.CanSaveDEBout(corebout.SaveDEBoutContext{Bout: *bout, EntryExists: entryExists}).Error()
}

// Ensure DEBoutServiceImpl implements the interface
var _ primary.DEBoutService = (*DEBoutServiceImpl)(nil)
