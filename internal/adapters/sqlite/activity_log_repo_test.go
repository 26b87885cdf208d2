package sqlite_test

import (
	"context"
	"testing"

	"github.com/example/piste/internal/adapters/sqlite"
	"github.com/example/piste/internal/ports/secondary"
)

func TestActivityLogRepository_AppendAndList(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewActivityLogRepository(db)
	ctx := context.Background()

	records := []*secondary.ActivityRecord{
		{Actor: "coach", EntityType: "fencer", EntityID: "FNC-001", Action: "create"},
		{EntityType: "tournament", EntityID: "TRN-001", Action: "create"},
		{Actor: "coach", EntityType: "fencer", EntityID: "FNC-001", Action: "delete", Cascaded: 4},
	}
	for _, r := range records {
		if err := repo.Append(ctx, r); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
		if r.ID == 0 {
			t.Error("expected ID to be assigned")
		}
	}

	t.Run("newest first", func(t *testing.T) {
		got, err := repo.List(ctx, secondary.ActivityFilters{})
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(got) != 3 {
			t.Fatalf("expected 3 records, got %d", len(got))
		}
		if got[0].Action != "delete" || got[0].Cascaded != 4 {
			t.Errorf("first record = %+v, want the delete with 4 cascaded", got[0])
		}
		if got[1].Actor != "" {
			t.Errorf("expected empty actor, got %q", got[1].Actor)
		}
	})

	t.Run("filters", func(t *testing.T) {
		tests := []struct {
			name    string
			filters secondary.ActivityFilters
			want    int
		}{
			{"by entity type", secondary.ActivityFilters{EntityType: "fencer"}, 2},
			{"by entity id", secondary.ActivityFilters{EntityID: "TRN-001"}, 1},
			{"by action", secondary.ActivityFilters{Action: "delete"}, 1},
			{"limit", secondary.ActivityFilters{Limit: 2}, 2},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got, err := repo.List(ctx, tt.filters)
				if err != nil {
					t.Fatalf("List failed: %v", err)
				}
				if len(got) != tt.want {
					t.Errorf("got %d records, want %d", len(got), tt.want)
				}
			})
		}
	})
}

func TestActivityLogRepository_RejectsUnknownAction(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewActivityLogRepository(db)

	err := repo.Append(context.Background(), &secondary.ActivityRecord{
		EntityType: "fencer", EntityID: "FNC-001", Action: "archive",
	})
	if err == nil {
		t.Error("expected CHECK constraint violation")
	}
}

func TestActivityLogRepository_PruneOlderThan(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewActivityLogRepository(db)
	ctx := context.Background()

	db.Exec(`INSERT INTO activity_log (entity_type, entity_id, action, created_at) VALUES ('fencer', 'FNC-001', 'create', datetime('now', '-40 days'))`)
	repo.Append(ctx, &secondary.ActivityRecord{EntityType: "fencer", EntityID: "FNC-002", Action: "create"})

	n, err := repo.PruneOlderThan(ctx, 30)
	if err != nil {
		t.Fatalf("PruneOlderThan failed: %v", err)
	}
	if n != 1 {
		t.Errorf("pruned %d, want 1", n)
	}

	remaining, _ := repo.List(ctx, secondary.ActivityFilters{})
	if len(remaining) != 1 || remaining[0].EntityID != "FNC-002" {
		t.Errorf("unexpected remaining records: %+v", remaining)
	}
}
