package app

import (
	"context"
	"errors"
	"testing"

	"github.com/example/piste/internal/models"
	"github.com/example/piste/internal/ports/primary"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }

// ============================================================================
// AddFencer Tests
// ============================================================================

func TestAddFencer_Success(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	res, err := env.fencers.AddFencer(ctx, primary.AddFencerRequest{
		Name:          "  Alice  ",
		PrimaryWeapon: "épée",
		Gender:        "f",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	f := res.Record
	if f.ID != "FNC-001" {
		t.Errorf("ID = %q, want FNC-001", f.ID)
	}
	if f.Name != "Alice" {
		t.Errorf("Name = %q, want trimmed", f.Name)
	}
	if f.PrimaryWeapon != models.WeaponEpee {
		t.Errorf("PrimaryWeapon = %q, want %q", f.PrimaryWeapon, models.WeaponEpee)
	}
	if f.Gender != models.GenderFemale {
		t.Errorf("Gender = %q", f.Gender)
	}
	if f.CreatedAt == "" {
		t.Error("expected CreatedAt to be set")
	}
	if len(env.logWriter.entries) != 1 || env.logWriter.entries[0] != "create fencer FNC-001" {
		t.Errorf("audit entries = %v", env.logWriter.entries)
	}
}

func TestAddFencer_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     primary.AddFencerRequest
		wantErr string
	}{
		{"blank name", primary.AddFencerRequest{Name: "   "}, "name is required"},
		{"unknown weapon", primary.AddFencerRequest{Name: "A", PrimaryWeapon: "pistol"}, "unknown primary weapon"},
		{"bad gender", primary.AddFencerRequest{Name: "A", Gender: "X"}, "gender must be"},
		{"bad birth date", primary.AddFencerRequest{Name: "A", DateOfBirth: "31/12/2010"}, "date of birth"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			ctx := context.Background()

			_, err := env.fencers.AddFencer(ctx, tt.req)
			assertValidation(t, err, tt.wantErr)

			list, _ := env.fencers.ListFencers(ctx)
			if len(list) != 0 {
				t.Errorf("rejected fencer was stored")
			}
		})
	}
}

func TestAddFencer_PersistenceWarning(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.kv.failSet = true

	res, err := env.fencers.AddFencer(ctx, primary.AddFencerRequest{Name: "Alice"})
	if err != nil {
		t.Fatalf("persistence failure should not be an error, got %v", err)
	}
	// One for the id high-water mark, one for the collection.
	if len(res.Warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %v", res.Warnings)
	}

	got, err := env.fencers.GetFencer(ctx, res.Record.ID)
	if err != nil {
		t.Fatalf("fencer should stay in memory: %v", err)
	}
	if got.Name != "Alice" {
		t.Errorf("Name = %q", got.Name)
	}
}

// ============================================================================
// UpdateFencer Tests
// ============================================================================

func TestUpdateFencer_MergesPatch(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	f := mustWrite(env.fencers.AddFencer(ctx, primary.AddFencerRequest{Name: "Alice", Club: "Salle Nord"}))(t)

	res, err := env.fencers.UpdateFencer(ctx, f.ID, models.FencerPatch{
		Rating:        strPtr("B23"),
		PrimaryWeapon: strPtr("sabre"),
	})
	if err != nil {
		t.Fatalf("UpdateFencer failed: %v", err)
	}

	got := res.Record
	if got.Club != "Salle Nord" {
		t.Errorf("untouched field changed: Club = %q", got.Club)
	}
	if got.Rating != "B23" || got.PrimaryWeapon != models.WeaponSaber {
		t.Errorf("patch not applied: %+v", got)
	}
	if got.UpdatedAt == "" {
		t.Error("expected UpdatedAt to be set")
	}
}

func TestUpdateFencer_RejectedPatchLeavesRecord(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	f := mustWrite(env.fencers.AddFencer(ctx, primary.AddFencerRequest{Name: "Alice", Club: "Salle Nord"}))(t)

	_, err := env.fencers.UpdateFencer(ctx, f.ID, models.FencerPatch{
		Club: strPtr("Other"),
		Name: strPtr(""),
	})
	assertValidation(t, err, "name is required")

	got, _ := env.fencers.GetFencer(ctx, f.ID)
	if got.Club != "Salle Nord" || got.Name != "Alice" {
		t.Errorf("store changed after rejected update: %+v", got)
	}
}

func TestUpdateFencer_NotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.fencers.UpdateFencer(context.Background(), "FNC-404", models.FencerPatch{Club: strPtr("x")})
	if !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err.Error() != "fencer FNC-404 not found" {
		t.Errorf("message = %q", err.Error())
	}
}

// ============================================================================
// DeleteFencer Tests
// ============================================================================

func TestDeleteFencer_CascadesEverything(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	g := env.seedAlice(t)

	// A second fencer at the same tournament must survive.
	bob := mustWrite(env.fencers.AddFencer(ctx, primary.AddFencerRequest{Name: "Bob"}))(t)
	bobEntry := mustWrite(env.entries.AddEntry(ctx, primary.AddEntryRequest{FencerID: bob.ID, TournamentID: g.tournament}))(t)

	res, err := env.fencers.DeleteFencer(ctx, g.fencer)
	if err != nil {
		t.Fatalf("DeleteFencer failed: %v", err)
	}

	wantRemoved := map[string]int{
		models.EntityFencer: 1,
		models.EntityEntry:  1,
		models.EntityPool:   1,
		models.EntityBout:   2,
		models.EntityDEBout: 1,
	}
	for entity, n := range wantRemoved {
		if res.Removed[entity] != n {
			t.Errorf("Removed[%s] = %d, want %d", entity, res.Removed[entity], n)
		}
	}
	if res.Cascaded() != 5 {
		t.Errorf("Cascaded = %d, want 5", res.Cascaded())
	}

	snap, _ := env.repos.Snapshot(ctx)
	for _, e := range snap.Entries {
		if e.FencerID == g.fencer {
			t.Errorf("entry %s still references deleted fencer", e.ID)
		}
	}
	if len(snap.Pools) != 0 || len(snap.Bouts) != 0 || len(snap.DEBouts) != 0 {
		t.Errorf("children survived: pools=%d bouts=%d deBouts=%d", len(snap.Pools), len(snap.Bouts), len(snap.DEBouts))
	}
	if len(snap.Entries) != 1 || snap.Entries[0].ID != bobEntry.ID {
		t.Errorf("unrelated entry was removed: %+v", snap.Entries)
	}
	if len(snap.Tournaments) != 1 {
		t.Error("tournament must not be deleted with a fencer")
	}
}

func TestDeleteFencer_IsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	g := env.seedAlice(t)

	if _, err := env.fencers.DeleteFencer(ctx, g.fencer); err != nil {
		t.Fatalf("first delete failed: %v", err)
	}

	_, err := env.fencers.DeleteFencer(ctx, g.fencer)
	if !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("second delete should report not found, got %v", err)
	}

	snap, _ := env.repos.Snapshot(ctx)
	if len(snap.Tournaments) != 1 || len(snap.Fencers) != 0 {
		t.Errorf("unexpected state after repeat delete: %+v", snap)
	}
}

func TestDeleteFencer_PersistenceWarningStillCascades(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	g := env.seedAlice(t)

	env.kv.failSet = true
	res, err := env.fencers.DeleteFencer(ctx, g.fencer)
	if err != nil {
		t.Fatalf("DeleteFencer failed: %v", err)
	}
	// One warning per collection rewritten: bouts, DE bouts, pools, entries, fencers.
	if len(res.Warnings) != 5 {
		t.Errorf("expected 5 warnings, got %d: %v", len(res.Warnings), res.Warnings)
	}

	snap, _ := env.repos.Snapshot(ctx)
	if len(snap.Entries) != 0 || len(snap.Pools) != 0 || len(snap.Bouts) != 0 || len(snap.DEBouts) != 0 {
		t.Error("in-memory cascade must complete despite persistence failures")
	}
}

func TestDeleteFencer_UnsavedCascadeNotInheritedAfterReload(t *testing.T) {
	tests := []struct {
		name          string
		dropSeqMarker bool
	}{
		{"id high-water mark persisted", false},
		{"id high-water mark missing", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			ctx := context.Background()
			g := env.seedAlice(t)

			// The fencer removal is saved but the entry removal is not.
			env.kv.failKeys = map[string]bool{"fencing_tracker_entries": true}
			res, err := env.fencers.DeleteFencer(ctx, g.fencer)
			if err != nil {
				t.Fatalf("DeleteFencer failed: %v", err)
			}
			if len(res.Warnings) != 1 {
				t.Fatalf("expected 1 warning, got %v", res.Warnings)
			}
			env.kv.failKeys = nil
			if tt.dropSeqMarker {
				env.kv.Remove(ctx, "fencing_tracker_seq_fencers")
			}

			reloaded := newTestEnvOn(t, env.kv)
			dave := mustWrite(reloaded.fencers.AddFencer(ctx, primary.AddFencerRequest{Name: "Dave"}))(t)
			if dave.ID == g.fencer {
				t.Fatalf("new fencer reused deleted id %s", g.fencer)
			}
			if dave.ID != "FNC-002" {
				t.Errorf("ID = %q, want FNC-002", dave.ID)
			}

			st, err := reloaded.analytics.GetFencerStats(ctx, dave.ID)
			if err != nil {
				t.Fatalf("GetFencerStats failed: %v", err)
			}
			if st.TotalTournaments != 0 {
				t.Errorf("TotalTournaments = %d, want 0", st.TotalTournaments)
			}
		})
	}
}
