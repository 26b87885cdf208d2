package stats

import (
	"sort"

	"github.com/example/piste/internal/core/access"
	"github.com/example/piste/internal/models"
)

// HistoryItem pairs an entry with its tournament and pool summary.
type HistoryItem struct {
	Tournament models.Tournament
	Entry      models.Entry
	Pool       BoutSummary
	DE         BoutSummary
}

// FencerHistory lists the fencer's entries, most recent tournament first.
// Entries whose tournament no longer exists are skipped.
func FencerHistory(snap models.Snapshot, fencerID string) []HistoryItem {
	entries := access.WhereForeignKeyEquals(snap.Entries, func(e models.Entry) string { return e.FencerID }, fencerID)

	items := make([]HistoryItem, 0, len(entries))
	for _, entry := range entries {
		tournament, ok := access.ByID(snap.Tournaments, entry.TournamentID)
		if !ok {
			continue
		}
		only := map[string]struct{}{entry.ID: {}}
		items = append(items, HistoryItem{
			Tournament: tournament,
			Entry:      entry,
			Pool:       SummarizeBouts(PoolBoutsForEntries(snap, only)),
			DE:         SummarizeDEBouts(access.WhereIn(snap.DEBouts, func(b models.DEBout) string { return b.EntryID }, only)),
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return dateKey(items[i].Tournament.StartDate).After(dateKey(items[j].Tournament.StartDate))
	})
	return items
}
