package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/piste/internal/models"
	"github.com/example/piste/internal/ports/primary"
)

// EntryAdapter translates CLI operations to EntryService and PoolService calls.
type EntryAdapter struct {
	entries primary.EntryService
	pools   primary.PoolService
	out     io.Writer
}

// NewEntryAdapter creates a new EntryAdapter.
func NewEntryAdapter(entries primary.EntryService, pools primary.PoolService, out io.Writer) *EntryAdapter {
	return &EntryAdapter{
		entries: entries,
		pools:   pools,
		out:     out,
	}
}

// Add registers a fencer in a tournament.
func (a *EntryAdapter) Add(ctx context.Context, req primary.AddEntryRequest) (*models.Entry, error) {
	res, err := a.entries.AddEntry(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to add entry: %w", err)
	}
	printSaved(a.out, "Added", models.EntityEntry, res.Record.ID, res.Warnings)
	return res.Record, nil
}

// List prints entries matching the filters.
func (a *EntryAdapter) List(ctx context.Context, filters primary.EntryFilters) ([]models.Entry, error) {
	entries, err := a.entries.ListEntries(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No entries found.")
		return entries, nil
	}

	w := newTable(a.out)
	fmt.Fprintln(w, "ID\tFENCER\tTOURNAMENT\tWEAPON\tCATEGORY\tSEED\tPLACE")
	fmt.Fprintln(w, "--\t------\t----------\t------\t--------\t----\t-----")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			e.ID,
			e.FencerID,
			e.TournamentID,
			orDash(models.WeaponName(e.Weapon)),
			orDash(e.AgeCategory),
			intOrDash(e.InitialSeeding),
			orDash(models.FormatPlacing(e.FinalPlacing)),
		)
	}
	w.Flush()
	return entries, nil
}

// Show displays an entry with its pools.
func (a *EntryAdapter) Show(ctx context.Context, entryID string) (*models.Entry, error) {
	e, err := a.entries.GetEntry(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}
	pools, err := a.pools.ListPools(ctx, e.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pools: %w", err)
	}

	fmt.Fprintf(a.out, "\nEntry: %s\n", e.ID)
	fmt.Fprintf(a.out, "Fencer:     %s\n", e.FencerID)
	fmt.Fprintf(a.out, "Tournament: %s\n", e.TournamentID)
	fmt.Fprintf(a.out, "Weapon:     %s\n", orDash(models.WeaponName(e.Weapon)))
	fmt.Fprintf(a.out, "Category:   %s\n", orDash(models.AgeCategoryName(e.AgeCategory)))
	fmt.Fprintf(a.out, "Seeding:    %s\n", intOrDash(e.InitialSeeding))
	fmt.Fprintf(a.out, "Placing:    %s\n", orDash(models.FormatPlacing(e.FinalPlacing)))
	if e.Notes != "" {
		fmt.Fprintf(a.out, "Notes:      %s\n", e.Notes)
	}
	if len(pools) > 0 {
		fmt.Fprintln(a.out, "Pools:")
		for _, p := range pools {
			fmt.Fprintf(a.out, "  - %s: pool %d (%s fencers)\n", p.ID, p.PoolNumber, intOrDash(p.NumberOfFencers))
		}
	}
	fmt.Fprintln(a.out)
	return e, nil
}

// Update applies a patch to an entry.
func (a *EntryAdapter) Update(ctx context.Context, entryID string, patch models.EntryPatch) (*models.Entry, error) {
	res, err := a.entries.UpdateEntry(ctx, entryID, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update entry: %w", err)
	}
	printSaved(a.out, "Updated", models.EntityEntry, res.Record.ID, res.Warnings)
	return res.Record, nil
}

// Delete removes an entry with its pools and bouts.
func (a *EntryAdapter) Delete(ctx context.Context, entryID string) (*primary.DeleteResult, error) {
	res, err := a.entries.DeleteEntry(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete entry: %w", err)
	}
	printDeleted(a.out, res)
	return res, nil
}

// AddPool adds a pool to an entry.
func (a *EntryAdapter) AddPool(ctx context.Context, req primary.AddPoolRequest) (*models.Pool, error) {
	res, err := a.pools.AddPool(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to add pool: %w", err)
	}
	printSaved(a.out, "Added", models.EntityPool, res.Record.ID, res.Warnings)
	return res.Record, nil
}

// ListPools prints pools, optionally for one entry.
func (a *EntryAdapter) ListPools(ctx context.Context, entryID string) ([]models.Pool, error) {
	pools, err := a.pools.ListPools(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pools: %w", err)
	}

	if len(pools) == 0 {
		fmt.Fprintln(a.out, "No pools found.")
		return pools, nil
	}

	w := newTable(a.out)
	fmt.Fprintln(w, "ID\tENTRY\tPOOL\tFENCERS")
	fmt.Fprintln(w, "--\t-----\t----\t-------")
	for _, p := range pools {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", p.ID, p.EntryID, p.PoolNumber, intOrDash(p.NumberOfFencers))
	}
	w.Flush()
	return pools, nil
}

// UpdatePool applies a patch to a pool.
func (a *EntryAdapter) UpdatePool(ctx context.Context, poolID string, patch models.PoolPatch) (*models.Pool, error) {
	res, err := a.pools.UpdatePool(ctx, poolID, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update pool: %w", err)
	}
	printSaved(a.out, "Updated", models.EntityPool, res.Record.ID, res.Warnings)
	return res.Record, nil
}

// DeletePool removes a pool and its bouts.
func (a *EntryAdapter) DeletePool(ctx context.Context, poolID string) (*primary.DeleteResult, error) {
	res, err := a.pools.DeletePool(ctx, poolID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete pool: %w", err)
	}
	printDeleted(a.out, res)
	return res, nil
}
