package primary

import (
	"context"

	"github.com/example/piste/internal/core/stats"
	"github.com/example/piste/internal/models"
)

// AnalyticsService defines the primary port for read-only statistics.
// None of its operations mutate the store.
type AnalyticsService interface {
	// GetFencerStats aggregates every pool and DE bout of a fencer.
	GetFencerStats(ctx context.Context, fencerID string) (*stats.FencerStats, error)

	// GetPerformanceTrend returns one point per entry, oldest tournament first.
	GetPerformanceTrend(ctx context.Context, fencerID string) ([]stats.TrendPoint, error)

	// GetFencerHistory returns the fencer's entries with their tournaments, newest first.
	GetFencerHistory(ctx context.Context, fencerID string) ([]stats.HistoryItem, error)

	// GetDashboard summarizes the store around the current date.
	GetDashboard(ctx context.Context) (*Dashboard, error)
}

// Dashboard is the overview shown on start-up.
type Dashboard struct {
	FencerCount     int
	TournamentCount int
	Upcoming        []models.Tournament
	Recent          []models.Tournament
}
