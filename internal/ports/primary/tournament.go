package primary

import (
	"context"

	"github.com/example/piste/internal/models"
)

// TournamentService defines the primary port for tournament operations.
type TournamentService interface {
	// AddTournament validates and stores a new tournament.
	AddTournament(ctx context.Context, req AddTournamentRequest) (*WriteResult[models.Tournament], error)

	// GetTournament retrieves a tournament by ID.
	GetTournament(ctx context.Context, tournamentID string) (*models.Tournament, error)

	// ListTournaments retrieves all tournaments, latest start date first.
	ListTournaments(ctx context.Context) ([]models.Tournament, error)

	// UpdateTournament merges a patch into a tournament and re-validates it.
	UpdateTournament(ctx context.Context, tournamentID string, patch models.TournamentPatch) (*WriteResult[models.Tournament], error)

	// DeleteTournament deletes a tournament with all of its entries, pools and bouts.
	DeleteTournament(ctx context.Context, tournamentID string) (*DeleteResult, error)
}

// AddTournamentRequest contains parameters for adding a tournament.
type AddTournamentRequest struct {
	Name      string
	Location  string
	StartDate string
	EndDate   string
	Level     string
}
