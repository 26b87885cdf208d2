package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	corefencer "github.com/example/piste/internal/core/fencer"
	"github.com/example/piste/internal/models"
	"github.com/example/piste/internal/ports/primary"
	"github.com/example/piste/internal/ports/secondary"
)

// FencerServiceImpl implements the FencerService interface.
type FencerServiceImpl struct {
	recorder
}

// NewFencerService creates a new FencerService with injected dependencies.
func NewFencerService(repos secondary.Repositories, logWriter secondary.LogWriter, executor EffectExecutor, logger *slog.Logger) *FencerServiceImpl {
	return &FencerServiceImpl{recorder: newRecorder(repos, logWriter, executor, logger)}
}

// AddFencer validates and stores a new fencer.
func (s *FencerServiceImpl) AddFencer(ctx context.Context, req primary.AddFencerRequest) (*primary.WriteResult[models.Fencer], error) {
	fencer := &models.Fencer{
		Name:            req.Name,
		Club:            strings.TrimSpace(req.Club),
		PrimaryWeapon:   req.PrimaryWeapon,
		SecondaryWeapon: req.SecondaryWeapon,
		Rating:          strings.TrimSpace(req.Rating),
		DateOfBirth:     strings.TrimSpace(req.DateOfBirth),
		Gender:          strings.ToUpper(strings.TrimSpace(req.Gender)),
	}
	corefencer.Normalize(fencer)

	if err := corefencer.CanSaveFencer(*fencer).Error(); err != nil {
		return nil, err
	}

	err := s.repos.Fencers.Create(ctx, fencer)
	warnings, err := s.settle(ctx, "create", models.EntityFencer, fencer.ID, err)
	if err != nil {
		return nil, fmt.Errorf("failed to create fencer: %w", err)
	}

	return &primary.WriteResult[models.Fencer]{Record: fencer, Warnings: warnings}, nil
}

// GetFencer retrieves a fencer by ID.
func (s *FencerServiceImpl) GetFencer(ctx context.Context, fencerID string) (*models.Fencer, error) {
	return s.repos.Fencers.GetByID(ctx, fencerID)
}

// ListFencers retrieves all fencers in creation order.
func (s *FencerServiceImpl) ListFencers(ctx context.Context) ([]models.Fencer, error) {
	return s.repos.Fencers.List(ctx)
}

// UpdateFencer merges a patch into a fencer and re-validates the result.
// A rejected patch leaves the stored fencer unchanged.
func (s *FencerServiceImpl) UpdateFencer(ctx context.Context, fencerID string, patch models.FencerPatch) (*primary.WriteResult[models.Fencer], error) {
	fencer, err := s.repos.Fencers.GetByID(ctx, fencerID)
	if err != nil {
		return nil, err
	}

	patch.Apply(fencer)
	fencer.Gender = strings.ToUpper(strings.TrimSpace(fencer.Gender))
	corefencer.Normalize(fencer)

	if err := corefencer.CanSaveFencer(*fencer).Error(); err != nil {
		return nil, err
	}

	err = s.repos.Fencers.Update(ctx, fencer)
	warnings, err := s.settle(ctx, "update", models.EntityFencer, fencerID, err)
	if err != nil {
		return nil, fmt.Errorf("failed to update fencer: %w", err)
	}

	return &primary.WriteResult[models.Fencer]{Record: fencer, Warnings: warnings}, nil
}

// DeleteFencer deletes a fencer with all of its entries, pools and bouts.
func (s *FencerServiceImpl) DeleteFencer(ctx context.Context, fencerID string) (*primary.DeleteResult, error) {
	return s.deleteCascade(ctx, models.EntityFencer, fencerID)
}

// Ensure FencerServiceImpl implements the interface
var _ primary.FencerService = (*FencerServiceImpl)(nil)
