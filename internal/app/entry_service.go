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

// EntryServiceImpl implements the EntryService interface.
type EntryServiceImpl struct {
	recorder
}

// NewEntryService creates a new EntryService with injected dependencies.
func NewEntryService(repos secondary.Repositories, logWriter secondary.LogWriter, executor EffectExecutor, logger *slog.Logger) *EntryServiceImpl {
	return &EntryServiceImpl{recorder: newRecorder(repos, logWriter, executor, logger)}
}

// AddEntry registers a fencer in a tournament. Both must exist.
func (s *EntryServiceImpl) AddEntry(ctx context.Context, req primary.AddEntryRequest) (*primary.WriteResult[models.Entry], error) {
	entry := &models.Entry{
		FencerID:       strings.TrimSpace(req.FencerID),
		TournamentID:   strings.TrimSpace(req.TournamentID),
		Weapon:         req.Weapon,
		AgeCategory:    strings.TrimSpace(req.AgeCategory),
		InitialSeeding: req.InitialSeeding,
		FinalPlacing:   req.FinalPlacing,
		Notes:          req.Notes,
	}

	if err := s.check(ctx, entry, true); err != nil {
		return nil, err
	}

	err := s.repos.Entries.Create(ctx, entry)
	warnings, err := s.settle(ctx, "create", models.EntityEntry, entry.ID, err)
	if err != nil {
		return nil, fmt.Errorf("failed to create entry: %w", err)
	}

	return &primary.WriteResult[models.Entry]{Record: entry, Warnings: warnings}, nil
}

// GetEntry retrieves an entry by ID.
func (s *EntryServiceImpl) GetEntry(ctx context.Context, entryID string) (*models.Entry, error) {
	return s.repos.Entries.GetByID(ctx, entryID)
}

// ListEntries retrieves entries matching the given filters.
func (s *EntryServiceImpl) ListEntries(ctx context.Context, filters primary.EntryFilters) ([]models.Entry, error) {
	entries, err := s.repos.Entries.List(ctx)
	if err != nil {
		return nil, err
	}
	if filters.FencerID != "" {
		entries = access.WhereForeignKeyEquals(entries, func(e models.Entry) string { return e.FencerID }, filters.FencerID)
	}
	if filters.TournamentID != "" {
		entries = access.WhereForeignKeyEquals(entries, func(e models.Entry) string { return e.TournamentID }, filters.TournamentID)
	}
	return entries, nil
}

// UpdateEntry merges a patch into an entry and re-validates the result.
// Parent links cannot be patched, so they are not looked up again.
func (s *EntryServiceImpl) UpdateEntry(ctx context.Context, entryID string, patch models.EntryPatch) (*primary.WriteResult[models.Entry], error) {
	entry, err := s.repos.Entries.GetByID(ctx, entryID)
	if err != nil {
		return nil, err
	}

	patch.Apply(entry)
	if err := s.check(ctx, entry, false); err != nil {
		return nil, err
	}

	err = s.repos.Entries.Update(ctx, entry)
	warnings, err := s.settle(ctx, "update", models.EntityEntry, entryID, err)
	if err != nil {
		return nil, fmt.Errorf("failed to update entry: %w", err)
	}

	return &primary.WriteResult[models.Entry]{Record: entry, Warnings: warnings}, nil
}

// DeleteEntry deletes an entry with its pools, pool bouts and DE bouts.
func (s *EntryServiceImpl) DeleteEntry(ctx context.Context, entryID string) (*primary.DeleteResult, error) {
	return s.deleteCascade(ctx, models.EntityEntry, entryID)
}

// check normalizes the entry and runs its guard. Parent existence is
// resolved only when verifyParents is set.
func (s *EntryServiceImpl) check(ctx context.Context, entry *models.Entry, verifyParents bool) error {
	coreentry.Normalize(entry)

	fencerExists, tournamentExists := true, true
	if verifyParents {
		var err error
		fencerExists, err = exists(ctx, s.repos.Fencers, entry.FencerID)
		if err != nil {
			return fmt.Errorf("failed to validate fencer: %w", err)
		}
		tournamentExists, err = exists(ctx, s.repos.Tournaments, entry.TournamentID)
		if err != nil {
			return fmt.Errorf("failed to validate tournament: %w", err)
		}
	}

	return coreentry.CanSaveEntry(coreentry.SaveEntryContext{
		Entry:            *entry,
		FencerExists:     fencerExists,
		TournamentExists: tournamentExists,
	}).Error()
}

// Ensure EntryServiceImpl implements the interface
var _ primary.EntryService = (*EntryServiceImpl)(nil)
