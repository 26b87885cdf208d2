package tournament

import (
	"sort"
	"time"

	"github.com/example/piste/internal/models"
)

// Upcoming returns up to limit tournaments starting after now, soonest first.
func Upcoming(tournaments []models.Tournament, now time.Time, limit int) []models.Tournament {
	var out []models.Tournament
	for _, t := range tournaments {
		if start, ok := models.ParseDate(t.StartDate); ok && start.After(now) {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, _ := models.ParseDate(out[i].StartDate)
		b, _ := models.ParseDate(out[j].StartDate)
		return a.Before(b)
	})
	return truncate(out, limit)
}

// Recent returns up to limit tournaments that ended before now, latest first.
// Tournaments without an end date are not considered finished.
func Recent(tournaments []models.Tournament, now time.Time, limit int) []models.Tournament {
	var out []models.Tournament
	for _, t := range tournaments {
		if end, ok := models.ParseDate(t.EndDate); ok && end.Before(now) {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, _ := models.ParseDate(out[i].EndDate)
		b, _ := models.ParseDate(out[j].EndDate)
		return a.After(b)
	})
	return truncate(out, limit)
}

func truncate(ts []models.Tournament, limit int) []models.Tournament {
	if limit > 0 && len(ts) > limit {
		return ts[:limit]
	}
	return ts
}
