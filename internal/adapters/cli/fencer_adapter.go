package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/piste/internal/models"
	"github.com/example/piste/internal/ports/primary"
)

// FencerAdapter translates CLI operations to FencerService calls.
type FencerAdapter struct {
	service primary.FencerService
	out     io.Writer
}

// NewFencerAdapter creates a new FencerAdapter with the given service.
func NewFencerAdapter(service primary.FencerService, out io.Writer) *FencerAdapter {
	return &FencerAdapter{
		service: service,
		out:     out,
	}
}

// Add creates a fencer and prints its id.
func (a *FencerAdapter) Add(ctx context.Context, req primary.AddFencerRequest) (*models.Fencer, error) {
	res, err := a.service.AddFencer(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to add fencer: %w", err)
	}
	printSaved(a.out, "Added", models.EntityFencer, res.Record.ID, res.Warnings)
	return res.Record, nil
}

// List prints all fencers.
func (a *FencerAdapter) List(ctx context.Context) ([]models.Fencer, error) {
	fencers, err := a.service.ListFencers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list fencers: %w", err)
	}

	if len(fencers) == 0 {
		fmt.Fprintln(a.out, "No fencers found.")
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "Add your first fencer:")
		fmt.Fprintln(a.out, `  piste fencer add "Alice Martin" --weapon foil --club "Salle Nord"`)
		return fencers, nil
	}

	w := newTable(a.out)
	fmt.Fprintln(w, "ID\tNAME\tCLUB\tWEAPON\tRATING")
	fmt.Fprintln(w, "--\t----\t----\t------\t------")
	for _, f := range fencers {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			f.ID,
			f.Name,
			orDash(f.Club),
			orDash(models.WeaponName(f.PrimaryWeapon)),
			orDash(f.Rating),
		)
	}
	w.Flush()
	return fencers, nil
}

// Show displays details for a single fencer.
func (a *FencerAdapter) Show(ctx context.Context, fencerID string) (*models.Fencer, error) {
	f, err := a.service.GetFencer(ctx, fencerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get fencer: %w", err)
	}

	fmt.Fprintf(a.out, "\nFencer: %s\n", f.ID)
	fmt.Fprintf(a.out, "Name:      %s\n", f.Name)
	fmt.Fprintf(a.out, "Club:      %s\n", orDash(f.Club))
	fmt.Fprintf(a.out, "Weapon:    %s\n", orDash(models.WeaponName(f.PrimaryWeapon)))
	if f.SecondaryWeapon != "" {
		fmt.Fprintf(a.out, "Secondary: %s\n", models.WeaponName(f.SecondaryWeapon))
	}
	fmt.Fprintf(a.out, "Rating:    %s\n", orDash(f.Rating))
	fmt.Fprintf(a.out, "Born:      %s\n", orDash(f.DateOfBirth))
	fmt.Fprintf(a.out, "Gender:    %s\n", orDash(models.GenderName(f.Gender)))
	fmt.Fprintf(a.out, "Created:   %s\n", f.CreatedAt)
	fmt.Fprintln(a.out)
	return f, nil
}

// Update applies a patch to a fencer.
func (a *FencerAdapter) Update(ctx context.Context, fencerID string, patch models.FencerPatch) (*models.Fencer, error) {
	res, err := a.service.UpdateFencer(ctx, fencerID, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update fencer: %w", err)
	}
	printSaved(a.out, "Updated", models.EntityFencer, res.Record.ID, res.Warnings)
	return res.Record, nil
}

// Delete removes a fencer and everything recorded for them.
func (a *FencerAdapter) Delete(ctx context.Context, fencerID string) (*primary.DeleteResult, error) {
	res, err := a.service.DeleteFencer(ctx, fencerID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete fencer: %w", err)
	}
	printDeleted(a.out, res)
	return res, nil
}
