package entry

import (
	"testing"

	"github.com/example/piste/internal/models"
)

func TestCanSaveEntry(t *testing.T) {
	valid := models.Entry{FencerID: "FNC-001", TournamentID: "TRN-001", Weapon: "E", AgeCategory: "Cadet"}

	tests := []struct {
		name        string
		ctx         SaveEntryContext
		wantAllowed bool
		wantReason  string
	}{
		{
			name:        "fencer and tournament exist",
			ctx:         SaveEntryContext{Entry: valid, FencerExists: true, TournamentExists: true},
			wantAllowed: true,
		},
		{
			name:        "fencer missing",
			ctx:         SaveEntryContext{Entry: valid, FencerExists: false, TournamentExists: true},
			wantAllowed: false,
			wantReason:  "fencer FNC-001 not found",
		},
		{
			name:        "tournament missing",
			ctx:         SaveEntryContext{Entry: valid, FencerExists: true, TournamentExists: false},
			wantAllowed: false,
			wantReason:  "tournament TRN-001 not found",
		},
		{
			name: "unknown age category",
			ctx: SaveEntryContext{
				Entry:            models.Entry{FencerID: "FNC-001", TournamentID: "TRN-001", AgeCategory: "Y8"},
				FencerExists:     true,
				TournamentExists: true,
			},
			wantAllowed: false,
			wantReason:  `unknown age category "Y8"`,
		},
		{
			name: "negative placing",
			ctx: SaveEntryContext{
				Entry:            models.Entry{FencerID: "FNC-001", TournamentID: "TRN-001", FinalPlacing: -1},
				FencerExists:     true,
				TournamentExists: true,
			},
			wantAllowed: false,
			wantReason:  "final placing cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanSaveEntry(tt.ctx)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
			if !tt.wantAllowed && result.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", result.Reason, tt.wantReason)
			}
		})
	}
}

func TestCanSavePool(t *testing.T) {
	tests := []struct {
		name        string
		ctx         SavePoolContext
		wantAllowed bool
		wantReason  string
	}{
		{
			name:        "valid pool",
			ctx:         SavePoolContext{Pool: models.Pool{EntryID: "ENT-001", PoolNumber: 1, NumberOfFencers: 7}, EntryExists: true},
			wantAllowed: true,
		},
		{
			name:        "unknown size is allowed",
			ctx:         SavePoolContext{Pool: models.Pool{EntryID: "ENT-001", PoolNumber: 2}, EntryExists: true},
			wantAllowed: true,
		},
		{
			name:        "entry missing",
			ctx:         SavePoolContext{Pool: models.Pool{EntryID: "ENT-009", PoolNumber: 1}, EntryExists: false},
			wantAllowed: false,
			wantReason:  "entry ENT-009 not found",
		},
		{
			name:        "pool number zero",
			ctx:         SavePoolContext{Pool: models.Pool{EntryID: "ENT-001"}, EntryExists: true},
			wantAllowed: false,
			wantReason:  "pool number must be at least 1 (got 0)",
		},
		{
			name:        "single fencer pool",
			ctx:         SavePoolContext{Pool: models.Pool{EntryID: "ENT-001", PoolNumber: 1, NumberOfFencers: 1}, EntryExists: true},
			wantAllowed: false,
			wantReason:  "a pool needs at least 2 fencers (got 1)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanSavePool(tt.ctx)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
			if !tt.wantAllowed && result.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", result.Reason, tt.wantReason)
			}
		})
	}
}
