package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/piste/internal/models"
	"github.com/example/piste/internal/ports/primary"
)

// BoutAdapter translates CLI operations to BoutService and DEBoutService calls.
type BoutAdapter struct {
	bouts   primary.BoutService
	deBouts primary.DEBoutService
	out     io.Writer
}

// NewBoutAdapter creates a new BoutAdapter.
func NewBoutAdapter(bouts primary.BoutService, deBouts primary.DEBoutService, out io.Writer) *BoutAdapter {
	return &BoutAdapter{
		bouts:   bouts,
		deBouts: deBouts,
		out:     out,
	}
}

// Add records a pool bout.
func (a *BoutAdapter) Add(ctx context.Context, req primary.AddBoutRequest) (*models.Bout, error) {
	res, err := a.bouts.AddBout(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to add bout: %w", err)
	}
	b := res.Record
	printSaved(a.out, "Added", models.EntityBout, b.ID, res.Warnings)
	fmt.Fprintf(a.out, "  %s %d-%d vs %s\n", victoryMark(b.Victory), b.ScoreFor, b.ScoreAgainst, b.OpponentName)
	return b, nil
}

// List prints pool bouts, optionally for one pool.
func (a *BoutAdapter) List(ctx context.Context, poolID string) ([]models.Bout, error) {
	bouts, err := a.bouts.ListBouts(ctx, poolID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bouts: %w", err)
	}

	if len(bouts) == 0 {
		fmt.Fprintln(a.out, "No bouts found.")
		return bouts, nil
	}

	w := newTable(a.out)
	fmt.Fprintln(w, "ID\tPOOL\tOPPONENT\tSCORE\tRESULT")
	fmt.Fprintln(w, "--\t----\t--------\t-----\t------")
	for _, b := range bouts {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d-%d\t%s\n",
			b.ID, b.PoolID, b.OpponentName, b.ScoreFor, b.ScoreAgainst, victoryMark(b.Victory))
	}
	w.Flush()
	return bouts, nil
}

// Update applies a patch to a pool bout.
func (a *BoutAdapter) Update(ctx context.Context, boutID string, patch models.BoutPatch) (*models.Bout, error) {
	res, err := a.bouts.UpdateBout(ctx, boutID, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update bout: %w", err)
	}
	printSaved(a.out, "Updated", models.EntityBout, res.Record.ID, res.Warnings)
	return res.Record, nil
}

// Delete removes a pool bout.
func (a *BoutAdapter) Delete(ctx context.Context, boutID string) (*primary.DeleteResult, error) {
	res, err := a.bouts.DeleteBout(ctx, boutID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete bout: %w", err)
	}
	printDeleted(a.out, res)
	return res, nil
}

// AddDE records a direct-elimination bout.
func (a *BoutAdapter) AddDE(ctx context.Context, req primary.AddDEBoutRequest) (*models.DEBout, error) {
	res, err := a.deBouts.AddDEBout(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to add DE bout: %w", err)
	}
	b := res.Record
	printSaved(a.out, "Added", models.EntityDEBout, b.ID, res.Warnings)
	fmt.Fprintf(a.out, "  %s: %s %d-%d vs %s\n",
		models.DERoundName(b.Round), victoryMark(b.Victory), b.ScoreFor, b.ScoreAgainst, b.OpponentName)
	return b, nil
}

// ListDE prints DE bouts, earliest round first.
func (a *BoutAdapter) ListDE(ctx context.Context, entryID string) ([]models.DEBout, error) {
	bouts, err := a.deBouts.ListDEBouts(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list DE bouts: %w", err)
	}

	if len(bouts) == 0 {
		fmt.Fprintln(a.out, "No DE bouts found.")
		return bouts, nil
	}

	w := newTable(a.out)
	fmt.Fprintln(w, "ID\tENTRY\tROUND\tOPPONENT\tSCORE\tRESULT")
	fmt.Fprintln(w, "--\t-----\t-----\t--------\t-----\t------")
	for _, b := range bouts {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d-%d\t%s\n",
			b.ID, b.EntryID, models.DERoundName(b.Round), b.OpponentName, b.ScoreFor, b.ScoreAgainst, victoryMark(b.Victory))
	}
	w.Flush()
	return bouts, nil
}

// UpdateDE applies a patch to a DE bout.
func (a *BoutAdapter) UpdateDE(ctx context.Context, deBoutID string, patch models.BoutPatch) (*models.DEBout, error) {
	res, err := a.deBouts.UpdateDEBout(ctx, deBoutID, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update DE bout: %w", err)
	}
	printSaved(a.out, "Updated", models.EntityDEBout, res.Record.ID, res.Warnings)
	return res.Record, nil
}

// DeleteDE removes a DE bout.
func (a *BoutAdapter) DeleteDE(ctx context.Context, deBoutID string) (*primary.DeleteResult, error) {
	res, err := a.deBouts.DeleteDEBout(ctx, deBoutID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete DE bout: %w", err)
	}
	printDeleted(a.out, res)
	return res, nil
}
