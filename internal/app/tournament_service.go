package app

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	coretournament "github.com/example/piste/internal/core/tournament"
	"github.com/example/piste/internal/models"
	"github.com/example/piste/internal/ports/primary"
	"github.com/example/piste/internal/ports/secondary"
)

// TournamentServiceImpl implements the TournamentService interface.
type TournamentServiceImpl struct {
	recorder
}

// NewTournamentService creates a new TournamentService with injected dependencies.
func NewTournamentService(repos secondary.Repositories, logWriter secondary.LogWriter, executor EffectExecutor, logger *slog.Logger) *TournamentServiceImpl {
	return &TournamentServiceImpl{recorder: newRecorder(repos, logWriter, executor, logger)}
}

// AddTournament validates and stores a new tournament.
func (s *TournamentServiceImpl) AddTournament(ctx context.Context, req primary.AddTournamentRequest) (*primary.WriteResult[models.Tournament], error) {
	tournament := &models.Tournament{
		Name:      strings.TrimSpace(req.Name),
		Location:  strings.TrimSpace(req.Location),
		StartDate: strings.TrimSpace(req.StartDate),
		EndDate:   strings.TrimSpace(req.EndDate),
		Level:     strings.TrimSpace(req.Level),
	}

	if err := coretournament.CanSaveTournament(*tournament).Error(); err != nil {
		return nil, err
	}

	err := s.repos.Tournaments.Create(ctx, tournament)
	warnings, err := s.settle(ctx, "create", models.EntityTournament, tournament.ID, err)
	if err != nil {
		return nil, fmt.Errorf("failed to create tournament: %w", err)
	}

	return &primary.WriteResult[models.Tournament]{Record: tournament, Warnings: warnings}, nil
}

// GetTournament retrieves a tournament by ID.
func (s *TournamentServiceImpl) GetTournament(ctx context.Context, tournamentID string) (*models.Tournament, error) {
	return s.repos.Tournaments.GetByID(ctx, tournamentID)
}

// ListTournaments retrieves all tournaments, latest start date first.
func (s *TournamentServiceImpl) ListTournaments(ctx context.Context) ([]models.Tournament, error) {
	tournaments, err := s.repos.Tournaments.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(tournaments, func(i, j int) bool {
		return tournaments[i].StartDate > tournaments[j].StartDate
	})
	return tournaments, nil
}

// UpdateTournament merges a patch into a tournament and re-validates the result.
func (s *TournamentServiceImpl) UpdateTournament(ctx context.Context, tournamentID string, patch models.TournamentPatch) (*primary.WriteResult[models.Tournament], error) {
	tournament, err := s.repos.Tournaments.GetByID(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	patch.Apply(tournament)
	tournament.Name = strings.TrimSpace(tournament.Name)

	if err := coretournament.CanSaveTournament(*tournament).Error(); err != nil {
		return nil, err
	}

	err = s.repos.Tournaments.Update(ctx, tournament)
	warnings, err := s.settle(ctx, "update", models.EntityTournament, tournamentID, err)
	if err != nil {
		return nil, fmt.Errorf("failed to update tournament: %w", err)
	}

	return &primary.WriteResult[models.Tournament]{Record: tournament, Warnings: warnings}, nil
}

// DeleteTournament deletes a tournament with all of its entries, pools and bouts.
func (s *TournamentServiceImpl) DeleteTournament(ctx context.Context, tournamentID string) (*primary.DeleteResult, error) {
	return s.deleteCascade(ctx, models.EntityTournament, tournamentID)
}

// Ensure TournamentServiceImpl implements the interface
var _ primary.TournamentService = (*TournamentServiceImpl)(nil)
