// Package cascade plans referential-integrity deletes.
// The planner walks the parent -> child graph over a snapshot, gathers every
// affected id up front and returns child-first delete effects, so a caller
// applying the plan never leaves a child behind a deleted parent.
package cascade

import (
	"fmt"

	"github.com/example/piste/internal/core/access"
	"github.com/example/piste/internal/core/effects"
	"github.com/example/piste/internal/models"
)

// DeletePlan lists every record removed by one delete, by collection.
type DeletePlan struct {
	RootEntity    string
	RootID        string
	FencerIDs     []string
	TournamentIDs []string
	EntryIDs      []string
	PoolIDs       []string
	BoutIDs       []string
	DEBoutIDs     []string
}

// Total returns the number of records the plan removes.
func (p DeletePlan) Total() int {
	return len(p.FencerIDs) + len(p.TournamentIDs) + len(p.EntryIDs) +
		len(p.PoolIDs) + len(p.BoutIDs) + len(p.DEBoutIDs)
}

// Effects returns the plan as delete effects, leaves first.
// Collections with nothing to delete are omitted.
func (p DeletePlan) Effects() []effects.Effect {
	steps := []struct {
		entity string
		ids    []string
	}{
		{models.EntityBout, p.BoutIDs},
		{models.EntityDEBout, p.DEBoutIDs},
		{models.EntityPool, p.PoolIDs},
		{models.EntityEntry, p.EntryIDs},
		{models.EntityTournament, p.TournamentIDs},
		{models.EntityFencer, p.FencerIDs},
	}

	var result []effects.Effect
	for _, step := range steps {
		if len(step.ids) == 0 {
			continue
		}
		result = append(result, effects.PersistEffect{
			Entity:    step.entity,
			Operation: effects.OpDelete,
			IDs:       step.ids,
		})
	}
	result = append(result, effects.LogEffect{
		Level:   "info",
		Message: fmt.Sprintf("cascade delete of %s %s removed %d record(s)", p.RootEntity, p.RootID, p.Total()),
		Fields: map[string]any{
			"entries": len(p.EntryIDs),
			"pools":   len(p.PoolIDs),
			"bouts":   len(p.BoutIDs),
			"deBouts": len(p.DEBoutIDs),
		},
	})
	return result
}

// PlanDelete builds the delete plan for one record.
// The root must exist in the snapshot; callers check that first and report not-found.
func PlanDelete(snap models.Snapshot, entity, id string) (DeletePlan, error) {
	plan := DeletePlan{RootEntity: entity, RootID: id}

	switch entity {
	case models.EntityFencer:
		plan.FencerIDs = []string{id}
		entries := access.WhereForeignKeyEquals(snap.Entries, func(e models.Entry) string { return e.FencerID }, id)
		addEntries(&plan, snap, access.IDs(entries))
	case models.EntityTournament:
		plan.TournamentIDs = []string{id}
		entries := access.WhereForeignKeyEquals(snap.Entries, func(e models.Entry) string { return e.TournamentID }, id)
		addEntries(&plan, snap, access.IDs(entries))
	case models.EntityEntry:
		addEntries(&plan, snap, []string{id})
	case models.EntityPool:
		addPools(&plan, snap, []string{id})
	case models.EntityBout:
		plan.BoutIDs = []string{id}
	case models.EntityDEBout:
		plan.DEBoutIDs = []string{id}
	default:
		return DeletePlan{}, fmt.Errorf("unknown entity type: %s", entity)
	}

	return plan, nil
}

// Exists reports whether the snapshot holds the record entity/id.
func Exists(snap models.Snapshot, entity, id string) bool {
	var ok bool
	switch entity {
	case models.EntityFencer:
		_, ok = access.ByID(snap.Fencers, id)
	case models.EntityTournament:
		_, ok = access.ByID(snap.Tournaments, id)
	case models.EntityEntry:
		_, ok = access.ByID(snap.Entries, id)
	case models.EntityPool:
		_, ok = access.ByID(snap.Pools, id)
	case models.EntityBout:
		_, ok = access.ByID(snap.Bouts, id)
	case models.EntityDEBout:
		_, ok = access.ByID(snap.DEBouts, id)
	}
	return ok
}

func addEntries(plan *DeletePlan, snap models.Snapshot, entryIDs []string) {
	if len(entryIDs) == 0 {
		return
	}
	plan.EntryIDs = append(plan.EntryIDs, entryIDs...)

	set := toSet(entryIDs)
	pools := access.WhereIn(snap.Pools, func(p models.Pool) string { return p.EntryID }, set)
	addPools(plan, snap, access.IDs(pools))

	deBouts := access.WhereIn(snap.DEBouts, func(b models.DEBout) string { return b.EntryID }, set)
	plan.DEBoutIDs = append(plan.DEBoutIDs, access.IDs(deBouts)...)
}

func addPools(plan *DeletePlan, snap models.Snapshot, poolIDs []string) {
	if len(poolIDs) == 0 {
		return
	}
	plan.PoolIDs = append(plan.PoolIDs, poolIDs...)

	bouts := access.WhereIn(snap.Bouts, func(b models.Bout) string { return b.PoolID }, toSet(poolIDs))
	plan.BoutIDs = append(plan.BoutIDs, access.IDs(bouts)...)
}

func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
