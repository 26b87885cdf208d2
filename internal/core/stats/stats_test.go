package stats

import (
	"testing"

	"github.com/example/piste/internal/models"
)

func meta(id string) models.Meta { return models.Meta{ID: id} }

// aliceSnapshot is Alice at the Regional Open: one pool with a 5-3 win and a 4-5 loss,
// plus one DE win.
func aliceSnapshot() models.Snapshot {
	return models.Snapshot{
		Fencers: []models.Fencer{
			{Meta: meta("FNC-001"), Name: "Alice"},
			{Meta: meta("FNC-002"), Name: "Bob"},
		},
		Tournaments: []models.Tournament{
			{Meta: meta("TRN-001"), Name: "Regional Open", StartDate: "2023-03-01"},
		},
		Entries: []models.Entry{
			{Meta: meta("ENT-001"), FencerID: "FNC-001", TournamentID: "TRN-001", FinalPlacing: 3},
			{Meta: meta("ENT-002"), FencerID: "FNC-002", TournamentID: "TRN-001"},
		},
		Pools: []models.Pool{
			{Meta: meta("POOL-001"), EntryID: "ENT-001", PoolNumber: 1},
			{Meta: meta("POOL-002"), EntryID: "ENT-002", PoolNumber: 1},
		},
		Bouts: []models.Bout{
			{Meta: meta("BOUT-001"), PoolID: "POOL-001", OpponentName: "Carol", ScoreFor: 5, ScoreAgainst: 3, Victory: true},
			{Meta: meta("BOUT-002"), PoolID: "POOL-001", OpponentName: "Dan", ScoreFor: 4, ScoreAgainst: 5, Victory: false},
			{Meta: meta("BOUT-003"), PoolID: "POOL-002", OpponentName: "Eve", ScoreFor: 0, ScoreAgainst: 5, Victory: false},
		},
		DEBouts: []models.DEBout{
			{Meta: meta("DEB-001"), EntryID: "ENT-001", Round: 16, OpponentName: "Frank", ScoreFor: 15, ScoreAgainst: 12, Victory: true},
		},
	}
}

func TestComputeFencerStats_Scenario(t *testing.T) {
	got := ComputeFencerStats(aliceSnapshot(), "FNC-001")

	want := FencerStats{
		TotalTournaments:  1,
		TotalPoolBouts:    2,
		PoolVictories:     1,
		PoolWinPercentage: 50.0,
		TouchesScored:     9,
		TouchesReceived:   8,
		Indicator:         1,
		TotalDEBouts:      1,
		DEVictories:       1,
		DEWinPercentage:   100.0,
	}
	if got != want {
		t.Errorf("ComputeFencerStats = %+v, want %+v", got, want)
	}
}

func TestComputeFencerStats_NoBouts(t *testing.T) {
	snap := aliceSnapshot()
	snap.Bouts = nil
	snap.DEBouts = nil

	got := ComputeFencerStats(snap, "FNC-001")
	if got.TotalPoolBouts != 0 || got.PoolWinPercentage != 0 || got.DEWinPercentage != 0 {
		t.Errorf("expected zeroed stats, got %+v", got)
	}
	if got.TotalTournaments != 1 {
		t.Errorf("TotalTournaments = %d, want 1", got.TotalTournaments)
	}
}

func TestComputeFencerStats_UnknownFencer(t *testing.T) {
	got := ComputeFencerStats(aliceSnapshot(), "FNC-404")
	if got != (FencerStats{}) {
		t.Errorf("expected zero stats for unknown fencer, got %+v", got)
	}
}

func TestWinPercentage(t *testing.T) {
	tests := []struct {
		name      string
		victories int
		total     int
		want      float64
	}{
		{"no bouts", 0, 0, 0},
		{"all lost", 0, 4, 0},
		{"half", 2, 4, 50},
		{"all won", 6, 6, 100},
		{"quarter", 1, 4, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WinPercentage(tt.victories, tt.total); got != tt.want {
				t.Errorf("WinPercentage(%d, %d) = %v, want %v", tt.victories, tt.total, got, tt.want)
			}
		})
	}
}

func TestSummarizeBouts_IndicatorMatchesTouches(t *testing.T) {
	bouts := []models.Bout{
		{ScoreFor: 5, ScoreAgainst: 0, Victory: true},
		{ScoreFor: 2, ScoreAgainst: 5},
		{ScoreFor: 3, ScoreAgainst: 3, Victory: true},
	}

	s := SummarizeBouts(bouts)
	if s.TouchesScored != 10 || s.TouchesReceived != 8 {
		t.Errorf("touches = %d/%d, want 10/8", s.TouchesScored, s.TouchesReceived)
	}
	if s.Indicator != s.TouchesScored-s.TouchesReceived {
		t.Errorf("indicator %d does not match touches", s.Indicator)
	}
	if s.Victories != 2 || s.Bouts != 3 {
		t.Errorf("victories = %d/%d, want 2/3", s.Victories, s.Bouts)
	}
}

func TestComputePerformanceTrend_OrderedByDate(t *testing.T) {
	snap := models.Snapshot{
		Tournaments: []models.Tournament{
			{Meta: meta("TRN-001"), Name: "Spring Cup", StartDate: "2023-03-01"},
			{Meta: meta("TRN-002"), Name: "Autumn Open", StartDate: "2022-11-05"},
			{Meta: meta("TRN-003"), Name: "Winter Classic", StartDate: "2023-01-20"},
		},
		Entries: []models.Entry{
			{Meta: meta("ENT-001"), FencerID: "FNC-001", TournamentID: "TRN-001"},
			{Meta: meta("ENT-002"), FencerID: "FNC-001", TournamentID: "TRN-002"},
			{Meta: meta("ENT-003"), FencerID: "FNC-001", TournamentID: "TRN-003"},
		},
	}

	points := ComputePerformanceTrend(snap, "FNC-001")
	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}
	wantDates := []string{"2022-11-05", "2023-01-20", "2023-03-01"}
	for i, want := range wantDates {
		if points[i].Date != want {
			t.Errorf("points[%d].Date = %s, want %s", i, points[i].Date, want)
		}
	}
}

func TestComputePerformanceTrend_PerEntryFigures(t *testing.T) {
	points := ComputePerformanceTrend(aliceSnapshot(), "FNC-001")
	if len(points) != 1 {
		t.Fatalf("expected 1 point, got %d", len(points))
	}

	p := points[0]
	if p.TournamentName != "Regional Open" || p.TournamentID != "TRN-001" {
		t.Errorf("unexpected tournament: %+v", p)
	}
	if p.WinPercentage != 50 || p.Indicator != 1 || p.FinalPlacing != 3 {
		t.Errorf("unexpected figures: %+v", p)
	}
}

func TestComputePerformanceTrend_SkipsOrphanedEntries(t *testing.T) {
	snap := aliceSnapshot()
	snap.Entries = append(snap.Entries, models.Entry{Meta: meta("ENT-003"), FencerID: "FNC-001", TournamentID: "TRN-404"})

	points := ComputePerformanceTrend(snap, "FNC-001")
	if len(points) != 1 {
		t.Fatalf("expected orphaned entry to be skipped, got %d points", len(points))
	}
}

func TestFencerHistory_NewestFirst(t *testing.T) {
	snap := aliceSnapshot()
	snap.Tournaments = append(snap.Tournaments, models.Tournament{Meta: meta("TRN-002"), Name: "Nationals", StartDate: "2024-06-10"})
	snap.Entries = append(snap.Entries, models.Entry{Meta: meta("ENT-003"), FencerID: "FNC-001", TournamentID: "TRN-002"})

	items := FencerHistory(snap, "FNC-001")
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Tournament.Name != "Nationals" {
		t.Errorf("expected Nationals first, got %s", items[0].Tournament.Name)
	}
	if items[1].Pool.Bouts != 2 || items[1].DE.Victories != 1 {
		t.Errorf("unexpected summaries for Regional Open: %+v", items[1])
	}
}
