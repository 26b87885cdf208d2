package tournament

import (
	"testing"
	"time"

	"github.com/example/piste/internal/models"
)

func TestCanSaveTournament(t *testing.T) {
	tests := []struct {
		name        string
		tournament  models.Tournament
		wantAllowed bool
		wantReason  string
	}{
		{
			name:        "name and start date",
			tournament:  models.Tournament{Name: "Regional Open", StartDate: "2023-03-01"},
			wantAllowed: true,
		},
		{
			name:        "single-day event",
			tournament:  models.Tournament{Name: "Club Night", StartDate: "2023-03-01", EndDate: "2023-03-01"},
			wantAllowed: true,
		},
		{
			name:        "missing name",
			tournament:  models.Tournament{StartDate: "2023-03-01"},
			wantAllowed: false,
			wantReason:  "tournament name is required",
		},
		{
			name:        "missing start date",
			tournament:  models.Tournament{Name: "Regional Open"},
			wantAllowed: false,
			wantReason:  "start date is required",
		},
		{
			name:        "invalid start date",
			tournament:  models.Tournament{Name: "Regional Open", StartDate: "March 1st"},
			wantAllowed: false,
			wantReason:  `start date "March 1st" is not a valid date (use YYYY-MM-DD)`,
		},
		{
			name:        "end before start",
			tournament:  models.Tournament{Name: "Regional Open", StartDate: "2023-03-05", EndDate: "2023-03-01"},
			wantAllowed: false,
			wantReason:  "end date 2023-03-01 is before start date 2023-03-05",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanSaveTournament(tt.tournament)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
			if !tt.wantAllowed && result.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", result.Reason, tt.wantReason)
			}
		})
	}
}

func scheduleFixture() []models.Tournament {
	return []models.Tournament{
		{Meta: models.Meta{ID: "TRN-001"}, Name: "Past A", StartDate: "2024-01-10", EndDate: "2024-01-11"},
		{Meta: models.Meta{ID: "TRN-002"}, Name: "Past B", StartDate: "2024-03-01", EndDate: "2024-03-02"},
		{Meta: models.Meta{ID: "TRN-003"}, Name: "Future A", StartDate: "2024-09-01"},
		{Meta: models.Meta{ID: "TRN-004"}, Name: "Future B", StartDate: "2024-07-01", EndDate: "2024-07-02"},
		{Meta: models.Meta{ID: "TRN-005"}, Name: "Past C", StartDate: "2023-11-01", EndDate: "2023-11-01"},
		{Meta: models.Meta{ID: "TRN-006"}, Name: "Past D", StartDate: "2023-05-01", EndDate: "2023-05-01"},
	}
}

func TestUpcoming(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	got := Upcoming(scheduleFixture(), now, 3)
	if len(got) != 2 {
		t.Fatalf("expected 2 upcoming, got %d", len(got))
	}
	if got[0].Name != "Future B" || got[1].Name != "Future A" {
		t.Errorf("unexpected order: %s, %s", got[0].Name, got[1].Name)
	}
}

func TestRecent(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	got := Recent(scheduleFixture(), now, 3)
	if len(got) != 3 {
		t.Fatalf("expected 3 recent, got %d", len(got))
	}
	want := []string{"Past B", "Past A", "Past C"}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("recent[%d] = %s, want %s", i, got[i].Name, name)
		}
	}
}
