package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/piste/internal/models"
	"github.com/example/piste/internal/ports/primary"
)

// TournamentAdapter translates CLI operations to TournamentService calls.
type TournamentAdapter struct {
	service primary.TournamentService
	out     io.Writer
}

// NewTournamentAdapter creates a new TournamentAdapter with the given service.
func NewTournamentAdapter(service primary.TournamentService, out io.Writer) *TournamentAdapter {
	return &TournamentAdapter{
		service: service,
		out:     out,
	}
}

// Add creates a tournament and prints its id.
func (a *TournamentAdapter) Add(ctx context.Context, req primary.AddTournamentRequest) (*models.Tournament, error) {
	res, err := a.service.AddTournament(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to add tournament: %w", err)
	}
	printSaved(a.out, "Added", models.EntityTournament, res.Record.ID, res.Warnings)
	return res.Record, nil
}

// List prints tournaments, latest first.
func (a *TournamentAdapter) List(ctx context.Context) ([]models.Tournament, error) {
	tournaments, err := a.service.ListTournaments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tournaments: %w", err)
	}

	if len(tournaments) == 0 {
		fmt.Fprintln(a.out, "No tournaments found.")
		return tournaments, nil
	}

	w := newTable(a.out)
	fmt.Fprintln(w, "ID\tNAME\tSTART\tEND\tLEVEL\tLOCATION")
	fmt.Fprintln(w, "--\t----\t-----\t---\t-----\t--------")
	for _, t := range tournaments {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			t.ID,
			t.Name,
			t.StartDate,
			orDash(t.EndDate),
			orDash(t.Level),
			orDash(t.Location),
		)
	}
	w.Flush()
	return tournaments, nil
}

// Show displays details for a single tournament.
func (a *TournamentAdapter) Show(ctx context.Context, tournamentID string) (*models.Tournament, error) {
	t, err := a.service.GetTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tournament: %w", err)
	}

	fmt.Fprintf(a.out, "\nTournament: %s\n", t.ID)
	fmt.Fprintf(a.out, "Name:     %s\n", t.Name)
	fmt.Fprintf(a.out, "Location: %s\n", orDash(t.Location))
	fmt.Fprintf(a.out, "Dates:    %s", t.StartDate)
	if t.EndDate != "" && t.EndDate != t.StartDate {
		fmt.Fprintf(a.out, " to %s", t.EndDate)
	}
	fmt.Fprintln(a.out)
	fmt.Fprintf(a.out, "Level:    %s\n", orDash(t.Level))
	fmt.Fprintln(a.out)
	return t, nil
}

// Update applies a patch to a tournament.
func (a *TournamentAdapter) Update(ctx context.Context, tournamentID string, patch models.TournamentPatch) (*models.Tournament, error) {
	res, err := a.service.UpdateTournament(ctx, tournamentID, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update tournament: %w", err)
	}
	printSaved(a.out, "Updated", models.EntityTournament, res.Record.ID, res.Warnings)
	return res.Record, nil
}

// Delete removes a tournament with its entries.
func (a *TournamentAdapter) Delete(ctx context.Context, tournamentID string) (*primary.DeleteResult, error) {
	res, err := a.service.DeleteTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete tournament: %w", err)
	}
	printDeleted(a.out, res)
	return res, nil
}
