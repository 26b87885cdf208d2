package cli

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"

	"github.com/example/piste/internal/models"
	"github.com/example/piste/internal/ports/primary"
)

// StorageAdapter renders storage maintenance and the activity log.
type StorageAdapter struct {
	storage  primary.StorageService
	activity primary.ActivityService
	out      io.Writer
}

// NewStorageAdapter creates a new StorageAdapter.
func NewStorageAdapter(storage primary.StorageService, activity primary.ActivityService, out io.Writer) *StorageAdapter {
	return &StorageAdapter{
		storage:  storage,
		activity: activity,
		out:      out,
	}
}

// Check probes the backend and prints a report.
func (a *StorageAdapter) Check(ctx context.Context) (*primary.StorageReport, error) {
	report, err := a.storage.CheckStorage(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check storage: %w", err)
	}

	status := color.New(color.FgGreen).Sprint("OK")
	if !report.Writable {
		status = color.New(color.FgRed).Sprintf("NOT WRITABLE (%s)", report.Error)
	}
	fmt.Fprintf(a.out, "Backend: %s\n", report.Backend)
	fmt.Fprintf(a.out, "Status:  %s\n", status)

	entities := make([]string, 0, len(report.Counts))
	for entity := range report.Counts {
		entities = append(entities, entity)
	}
	sort.Strings(entities)

	fmt.Fprintln(a.out)
	w := newTable(a.out)
	fmt.Fprintln(w, "COLLECTION\tRECORDS")
	fmt.Fprintln(w, "----------\t-------")
	for _, entity := range entities {
		fmt.Fprintf(w, "%s\t%d\n", models.EntityLabel(entity), report.Counts[entity])
	}
	w.Flush()

	fmt.Fprintf(a.out, "\nKeys: %d\n", len(report.Keys))
	for _, k := range report.Keys {
		fmt.Fprintf(a.out, "  %s\n", k)
	}
	return report, nil
}

// Dump writes every collection in the given format.
func (a *StorageAdapter) Dump(ctx context.Context, format string) error {
	data, err := a.storage.DumpStorage(ctx, format)
	if err != nil {
		return fmt.Errorf("failed to dump storage: %w", err)
	}
	_, err = a.out.Write(data)
	return err
}

// Clear removes every collection.
func (a *StorageAdapter) Clear(ctx context.Context) error {
	if err := a.storage.ClearStorage(ctx); err != nil {
		return fmt.Errorf("failed to clear storage: %w", err)
	}
	fmt.Fprintf(a.out, "%s All collections cleared\n", okMark)
	return nil
}

// Activity prints audit entries, newest first.
func (a *StorageAdapter) Activity(ctx context.Context, filters primary.ActivityFilters) ([]*primary.ActivityEntry, error) {
	entries, err := a.activity.ListActivity(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}

	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No activity recorded.")
		return entries, nil
	}

	w := newTable(a.out)
	fmt.Fprintln(w, "TIME\tACTOR\tACTION\tENTITY\tID\tCASCADED")
	fmt.Fprintln(w, "----\t-----\t------\t------\t--\t--------")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			e.Timestamp, orDash(e.Actor), e.Action, models.EntityLabel(e.EntityType), e.EntityID, intOrDash(e.Cascaded))
	}
	w.Flush()
	return entries, nil
}

// Prune deletes audit entries older than days.
func (a *StorageAdapter) Prune(ctx context.Context, days int) (int, error) {
	n, err := a.activity.PruneActivity(ctx, days)
	if err != nil {
		return 0, fmt.Errorf("failed to prune activity: %w", err)
	}
	fmt.Fprintf(a.out, "%s Pruned %d activity entries older than %d days\n", okMark, n, days)
	return n, nil
}
