// Package stats derives performance figures from recorded bouts.
// All functions are read-only and recompute from the raw records on every call.
package stats

import (
	"sort"
	"time"

	"github.com/example/piste/internal/core/access"
	"github.com/example/piste/internal/models"
)

// BoutSummary aggregates a set of bouts.
type BoutSummary struct {
	Bouts           int
	Victories       int
	WinPercentage   float64
	TouchesScored   int
	TouchesReceived int
	Indicator       int
}

// FencerStats is the career summary for one fencer.
type FencerStats struct {
	TotalTournaments  int
	TotalPoolBouts    int
	PoolVictories     int
	PoolWinPercentage float64
	TouchesScored     int
	TouchesReceived   int
	Indicator         int
	TotalDEBouts      int
	DEVictories       int
	DEWinPercentage   float64
}

// TrendPoint is one tournament on a fencer's performance line.
type TrendPoint struct {
	TournamentID   string
	TournamentName string
	Date           string
	WinPercentage  float64
	Indicator      int
	FinalPlacing   int
}

// WinPercentage returns victories/total as a percentage, or 0 for no bouts.
func WinPercentage(victories, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(victories) / float64(total) * 100
}

// SummarizeBouts aggregates pool bouts.
func SummarizeBouts(bouts []models.Bout) BoutSummary {
	s := BoutSummary{Bouts: len(bouts)}
	for _, b := range bouts {
		if b.Victory {
			s.Victories++
		}
		s.TouchesScored += b.ScoreFor
		s.TouchesReceived += b.ScoreAgainst
	}
	s.WinPercentage = WinPercentage(s.Victories, s.Bouts)
	s.Indicator = s.TouchesScored - s.TouchesReceived
	return s
}

// SummarizeDEBouts aggregates direct-elimination bouts.
func SummarizeDEBouts(bouts []models.DEBout) BoutSummary {
	s := BoutSummary{Bouts: len(bouts)}
	for _, b := range bouts {
		if b.Victory {
			s.Victories++
		}
		s.TouchesScored += b.ScoreFor
		s.TouchesReceived += b.ScoreAgainst
	}
	s.WinPercentage = WinPercentage(s.Victories, s.Bouts)
	s.Indicator = s.TouchesScored - s.TouchesReceived
	return s
}

// PoolBoutsForEntries returns every pool bout recorded under the given entries.
func PoolBoutsForEntries(snap models.Snapshot, entryIDs map[string]struct{}) []models.Bout {
	pools := access.WhereIn(snap.Pools, func(p models.Pool) string { return p.EntryID }, entryIDs)
	poolIDs := access.IDSet(pools)
	return access.WhereIn(snap.Bouts, func(b models.Bout) string { return b.PoolID }, poolIDs)
}

// ComputeFencerStats aggregates every entry of the fencer.
// Touch counts and indicator cover pool bouts only.
func ComputeFencerStats(snap models.Snapshot, fencerID string) FencerStats {
	entries := access.WhereForeignKeyEquals(snap.Entries, func(e models.Entry) string { return e.FencerID }, fencerID)
	entryIDs := access.IDSet(entries)

	pool := SummarizeBouts(PoolBoutsForEntries(snap, entryIDs))
	de := SummarizeDEBouts(access.WhereIn(snap.DEBouts, func(b models.DEBout) string { return b.EntryID }, entryIDs))

	return FencerStats{
		TotalTournaments:  len(entries),
		TotalPoolBouts:    pool.Bouts,
		PoolVictories:     pool.Victories,
		PoolWinPercentage: pool.WinPercentage,
		TouchesScored:     pool.TouchesScored,
		TouchesReceived:   pool.TouchesReceived,
		Indicator:         pool.Indicator,
		TotalDEBouts:      de.Bouts,
		DEVictories:       de.Victories,
		DEWinPercentage:   de.WinPercentage,
	}
}

// ComputePerformanceTrend returns one point per entry, oldest tournament first.
// Entries whose tournament no longer exists are skipped.
func ComputePerformanceTrend(snap models.Snapshot, fencerID string) []TrendPoint {
	entries := access.WhereForeignKeyEquals(snap.Entries, func(e models.Entry) string { return e.FencerID }, fencerID)

	points := make([]TrendPoint, 0, len(entries))
	for _, entry := range entries {
		tournament, ok := access.ByID(snap.Tournaments, entry.TournamentID)
		if !ok {
			continue
		}
		summary := SummarizeBouts(PoolBoutsForEntries(snap, map[string]struct{}{entry.ID: {}}))
		points = append(points, TrendPoint{
			TournamentID:   tournament.ID,
			TournamentName: tournament.Name,
			Date:           tournament.StartDate,
			WinPercentage:  summary.WinPercentage,
			Indicator:      summary.Indicator,
			FinalPlacing:   entry.FinalPlacing,
		})
	}

	sort.SliceStable(points, func(i, j int) bool {
		return dateKey(points[i].Date).Before(dateKey(points[j].Date))
	})
	return points
}

// dateKey orders unparsable dates before every real date.
func dateKey(s string) time.Time {
	t, _ := models.ParseDate(s)
	return t
}
