package memory

import (
	"context"
	"testing"
	"time"

	"github.com/example/piste/internal/ports/secondary"
)

func TestActivityLog_ListAndPrune(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	log := NewActivityLog(func() time.Time { return now })

	log.Append(ctx, &secondary.ActivityRecord{EntityType: "fencer", EntityID: "FNC-001", Action: "create"})
	now = now.AddDate(0, 0, 40)
	log.Append(ctx, &secondary.ActivityRecord{EntityType: "bout", EntityID: "BOUT-001", Action: "create"})
	log.Append(ctx, &secondary.ActivityRecord{EntityType: "fencer", EntityID: "FNC-001", Action: "delete", Cascaded: 2})

	all, _ := log.List(ctx, secondary.ActivityFilters{})
	if len(all) != 3 {
		t.Fatalf("expected 3 records, got %d", len(all))
	}
	if all[0].Action != "delete" || all[0].ID != 3 {
		t.Errorf("expected newest record first, got %+v", all[0])
	}

	fencer, _ := log.List(ctx, secondary.ActivityFilters{EntityType: "fencer", Limit: 1})
	if len(fencer) != 1 || fencer[0].Action != "delete" {
		t.Errorf("filtered list = %+v", fencer)
	}

	pruned, err := log.PruneOlderThan(ctx, 30)
	if err != nil {
		t.Fatalf("PruneOlderThan failed: %v", err)
	}
	if pruned != 1 {
		t.Errorf("pruned %d, want 1", pruned)
	}
	remaining, _ := log.List(ctx, secondary.ActivityFilters{})
	if len(remaining) != 2 {
		t.Errorf("expected 2 remaining, got %d", len(remaining))
	}
}
