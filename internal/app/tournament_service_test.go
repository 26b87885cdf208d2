package app

import (
	"context"
	"testing"

	"github.com/example/piste/internal/models"
	"github.com/example/piste/internal/ports/primary"
)

func TestAddTournament_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     primary.AddTournamentRequest
		wantErr string
	}{
		{"missing name", primary.AddTournamentRequest{StartDate: "2023-01-01"}, "name is required"},
		{"missing start", primary.AddTournamentRequest{Name: "Open"}, "start date is required"},
		{"end before start", primary.AddTournamentRequest{Name: "Open", StartDate: "2023-01-05", EndDate: "2023-01-04"}, "before start date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			_, err := env.tournaments.AddTournament(context.Background(), tt.req)
			assertValidation(t, err, tt.wantErr)
		})
	}
}

func TestListTournaments_LatestFirst(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for _, d := range []string{"2023-03-01", "2022-11-05", "2023-01-20"} {
		mustWrite(env.tournaments.AddTournament(ctx, primary.AddTournamentRequest{Name: "T " + d, StartDate: d}))(t)
	}

	list, err := env.tournaments.ListTournaments(ctx)
	if err != nil {
		t.Fatalf("ListTournaments failed: %v", err)
	}
	want := []string{"2023-03-01", "2023-01-20", "2022-11-05"}
	for i, tr := range list {
		if tr.StartDate != want[i] {
			t.Errorf("list[%d] = %s, want %s", i, tr.StartDate, want[i])
		}
	}
}

func TestUpdateTournament_RevalidatesDates(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	tr := mustWrite(env.tournaments.AddTournament(ctx, primary.AddTournamentRequest{Name: "Open", StartDate: "2023-03-01", EndDate: "2023-03-02"}))(t)

	_, err := env.tournaments.UpdateTournament(ctx, tr.ID, models.TournamentPatch{StartDate: strPtr("2023-03-05")})
	assertValidation(t, err, "before start date")

	res, err := env.tournaments.UpdateTournament(ctx, tr.ID, models.TournamentPatch{Location: strPtr("Lyon")})
	if err != nil {
		t.Fatalf("UpdateTournament failed: %v", err)
	}
	if res.Record.Location != "Lyon" || res.Record.StartDate != "2023-03-01" {
		t.Errorf("unexpected record: %+v", res.Record)
	}
}

func TestDeleteTournament_CascadesEntriesOfEveryFencer(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	g := env.seedAlice(t)

	bob := mustWrite(env.fencers.AddFencer(ctx, primary.AddFencerRequest{Name: "Bob"}))(t)
	mustWrite(env.entries.AddEntry(ctx, primary.AddEntryRequest{FencerID: bob.ID, TournamentID: g.tournament}))(t)

	res, err := env.tournaments.DeleteTournament(ctx, g.tournament)
	if err != nil {
		t.Fatalf("DeleteTournament failed: %v", err)
	}
	if res.Removed[models.EntityEntry] != 2 {
		t.Errorf("Removed entries = %d, want 2", res.Removed[models.EntityEntry])
	}

	snap, _ := env.repos.Snapshot(ctx)
	if len(snap.Fencers) != 2 {
		t.Error("fencers must survive a tournament delete")
	}
	if len(snap.Entries)+len(snap.Pools)+len(snap.Bouts)+len(snap.DEBouts) != 0 {
		t.Errorf("children survived: %+v", snap)
	}
}
