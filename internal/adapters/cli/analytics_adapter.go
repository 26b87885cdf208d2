package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/piste/internal/core/stats"
	"github.com/example/piste/internal/models"
	"github.com/example/piste/internal/ports/primary"
)

// AnalyticsAdapter renders statistics from the AnalyticsService.
type AnalyticsAdapter struct {
	service primary.AnalyticsService
	out     io.Writer
}

// NewAnalyticsAdapter creates a new AnalyticsAdapter with the given service.
func NewAnalyticsAdapter(service primary.AnalyticsService, out io.Writer) *AnalyticsAdapter {
	return &AnalyticsAdapter{
		service: service,
		out:     out,
	}
}

// Stats prints a fencer's career summary.
func (a *AnalyticsAdapter) Stats(ctx context.Context, fencerID string) (*stats.FencerStats, error) {
	s, err := a.service.GetFencerStats(ctx, fencerID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}

	fmt.Fprintf(a.out, "\nStats: %s\n", fencerID)
	fmt.Fprintf(a.out, "Tournaments:  %d\n", s.TotalTournaments)
	fmt.Fprintf(a.out, "Pool bouts:   %d (%d V, %.1f%%)\n", s.TotalPoolBouts, s.PoolVictories, s.PoolWinPercentage)
	fmt.Fprintf(a.out, "Touches:      %d scored, %d received\n", s.TouchesScored, s.TouchesReceived)
	fmt.Fprintf(a.out, "Indicator:    %+d\n", s.Indicator)
	fmt.Fprintf(a.out, "DE bouts:     %d (%d V, %.1f%%)\n", s.TotalDEBouts, s.DEVictories, s.DEWinPercentage)
	fmt.Fprintln(a.out)
	return s, nil
}

// Trend prints one line per tournament, oldest first.
func (a *AnalyticsAdapter) Trend(ctx context.Context, fencerID string) ([]stats.TrendPoint, error) {
	points, err := a.service.GetPerformanceTrend(ctx, fencerID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute trend: %w", err)
	}

	if len(points) == 0 {
		fmt.Fprintln(a.out, "No tournaments recorded.")
		return points, nil
	}

	w := newTable(a.out)
	fmt.Fprintln(w, "DATE\tTOURNAMENT\tWIN%\tIND\tPLACE")
	fmt.Fprintln(w, "----\t----------\t----\t---\t-----")
	for _, p := range points {
		fmt.Fprintf(w, "%s\t%s\t%.1f\t%+d\t%s\n",
			p.Date, p.TournamentName, p.WinPercentage, p.Indicator, orDash(models.FormatPlacing(p.FinalPlacing)))
	}
	w.Flush()
	return points, nil
}

// History prints the fencer's entries, newest first.
func (a *AnalyticsAdapter) History(ctx context.Context, fencerID string) ([]stats.HistoryItem, error) {
	items, err := a.service.GetFencerHistory(ctx, fencerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	if len(items) == 0 {
		fmt.Fprintln(a.out, "No tournaments recorded.")
		return items, nil
	}

	w := newTable(a.out)
	fmt.Fprintln(w, "DATE\tTOURNAMENT\tWEAPON\tPOOLS\tDE\tPLACE")
	fmt.Fprintln(w, "----\t----------\t------\t-----\t--\t-----")
	for _, item := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d/%d\t%d/%d\t%s\n",
			item.Tournament.StartDate,
			item.Tournament.Name,
			orDash(models.WeaponName(item.Entry.Weapon)),
			item.Pool.Victories, item.Pool.Bouts,
			item.DE.Victories, item.DE.Bouts,
			orDash(models.FormatPlacing(item.Entry.FinalPlacing)),
		)
	}
	w.Flush()
	return items, nil
}

// Dashboard prints counts with upcoming and recent tournaments.
func (a *AnalyticsAdapter) Dashboard(ctx context.Context) (*primary.Dashboard, error) {
	d, err := a.service.GetDashboard(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load dashboard: %w", err)
	}

	fmt.Fprintf(a.out, "Fencers:     %d\n", d.FencerCount)
	fmt.Fprintf(a.out, "Tournaments: %d\n", d.TournamentCount)
	printTournamentList(a.out, "Upcoming", d.Upcoming)
	printTournamentList(a.out, "Recent", d.Recent)
	return d, nil
}

func printTournamentList(out io.Writer, title string, tournaments []models.Tournament) {
	fmt.Fprintf(out, "\n%s:\n", title)
	if len(tournaments) == 0 {
		fmt.Fprintln(out, "  (none)")
		return
	}
	for _, t := range tournaments {
		fmt.Fprintf(out, "  - %s  %s (%s)\n", t.StartDate, t.Name, t.ID)
	}
}
