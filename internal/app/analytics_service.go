package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/example/piste/internal/core/stats"
	coretournament "github.com/example/piste/internal/core/tournament"
	"github.com/example/piste/internal/models"
	"github.com/example/piste/internal/ports/primary"
	"github.com/example/piste/internal/ports/secondary"
)

// dashboardLimit caps the upcoming and recent tournament lists.
const dashboardLimit = 3

// AnalyticsServiceImpl implements the AnalyticsService interface.
// Everything is recomputed from a fresh snapshot on each call.
type AnalyticsServiceImpl struct {
	repos  secondary.Repositories
	now    func() time.Time
	logger *slog.Logger
}

// NewAnalyticsService creates a new AnalyticsService. now may be nil.
func NewAnalyticsService(repos secondary.Repositories, now func() time.Time, logger *slog.Logger) *AnalyticsServiceImpl {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &AnalyticsServiceImpl{repos: repos, now: now, logger: logger}
}

// GetFencerStats aggregates every pool and DE bout of a fencer.
func (s *AnalyticsServiceImpl) GetFencerStats(ctx context.Context, fencerID string) (*stats.FencerStats, error) {
	snap, err := s.fencerSnapshot(ctx, fencerID)
	if err != nil {
		return nil, err
	}
	result := stats.ComputeFencerStats(snap, fencerID)
	return &result, nil
}

// GetPerformanceTrend returns one point per entry, oldest tournament first.
func (s *AnalyticsServiceImpl) GetPerformanceTrend(ctx context.Context, fencerID string) ([]stats.TrendPoint, error) {
	snap, err := s.fencerSnapshot(ctx, fencerID)
	if err != nil {
		return nil, err
	}
	return stats.ComputePerformanceTrend(snap, fencerID), nil
}

// GetFencerHistory returns the fencer's entries with their tournaments, newest first.
func (s *AnalyticsServiceImpl) GetFencerHistory(ctx context.Context, fencerID string) ([]stats.HistoryItem, error) {
	snap, err := s.fencerSnapshot(ctx, fencerID)
	if err != nil {
		return nil, err
	}
	return stats.FencerHistory(snap, fencerID), nil
}

// GetDashboard summarizes the store around the current date.
func (s *AnalyticsServiceImpl) GetDashboard(ctx context.Context) (*primary.Dashboard, error) {
	fencers, err := s.repos.Fencers.List(ctx)
	if err != nil {
		return nil, err
	}
	tournaments, err := s.repos.Tournaments.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	return &primary.Dashboard{
		FencerCount:     len(fencers),
		TournamentCount: len(tournaments),
		Upcoming:        coretournament.Upcoming(tournaments, now, dashboardLimit),
		Recent:          coretournament.Recent(tournaments, now, dashboardLimit),
	}, nil
}

// fencerSnapshot checks the fencer exists and returns the current snapshot.
func (s *AnalyticsServiceImpl) fencerSnapshot(ctx context.Context, fencerID string) (models.Snapshot, error) {
	if _, err := s.repos.Fencers.GetByID(ctx, fencerID); err != nil {
		return models.Snapshot{}, err
	}
	snap, err := s.repos.Snapshot(ctx)
	if err != nil {
		return models.Snapshot{}, err
	}
	s.logger.DebugContext(ctx, "computing fencer analytics",
		"fencer", fencerID, "entries", len(snap.Entries), "bouts", len(snap.Bouts), "deBouts", len(snap.DEBouts))
	return snap, nil
}

// Ensure AnalyticsServiceImpl implements the interface
var _ primary.AnalyticsService = (*AnalyticsServiceImpl)(nil)
