// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import (
	"context"

	"github.com/example/piste/internal/models"
)

// KeyValueStore is the string key-value backend the record store persists into.
// One key holds one whole collection serialized as a JSON array.
type KeyValueStore interface {
	// Get returns the value for key. found is false when the key is absent.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error

	// Keys lists every stored key with the given prefix, sorted.
	Keys(ctx context.Context, prefix string) ([]string, error)
}

// Repository is the record store's view of one collection.
// Mutations persist the whole collection; a failed write is reported with
// models.ErrPersistence after the in-memory collection has been updated.
type Repository[T any] interface {
	// Create assigns an id and creation timestamp, appends the record and persists.
	// The stored record is written back into rec.
	Create(ctx context.Context, rec *T) error

	// GetByID retrieves a copy of a record by its id.
	GetByID(ctx context.Context, id string) (*T, error)

	// List returns copies of all records in insertion order.
	List(ctx context.Context) ([]T, error)

	// Update replaces the record with the same id, stamps updatedAt and persists.
	Update(ctx context.Context, rec *T) error

	// Delete removes the given ids in one pass and persists once.
	// Ids that are not present are ignored; the count of removed records is returned.
	Delete(ctx context.Context, ids ...string) (int, error)

	// Clear empties the collection and removes its key from the backend.
	Clear(ctx context.Context) error
}

// Collection repositories.
type (
	FencerRepository     = Repository[models.Fencer]
	TournamentRepository = Repository[models.Tournament]
	EntryRepository      = Repository[models.Entry]
	PoolRepository       = Repository[models.Pool]
	BoutRepository       = Repository[models.Bout]
	DEBoutRepository     = Repository[models.DEBout]
)

// Repositories bundles the six collections of one record store.
type Repositories struct {
	Fencers     FencerRepository
	Tournaments TournamentRepository
	Entries     EntryRepository
	Pools       PoolRepository
	Bouts       BoutRepository
	DEBouts     DEBoutRepository
}

// Snapshot lists every collection into one models.Snapshot.
func (r Repositories) Snapshot(ctx context.Context) (models.Snapshot, error) {
	var (
		snap models.Snapshot
		err  error
	)
	if snap.Fencers, err = r.Fencers.List(ctx); err != nil {
		return snap, err
	}
	if snap.Tournaments, err = r.Tournaments.List(ctx); err != nil {
		return snap, err
	}
	if snap.Entries, err = r.Entries.List(ctx); err != nil {
		return snap, err
	}
	if snap.Pools, err = r.Pools.List(ctx); err != nil {
		return snap, err
	}
	if snap.Bouts, err = r.Bouts.List(ctx); err != nil {
		return snap, err
	}
	if snap.DEBouts, err = r.DEBouts.List(ctx); err != nil {
		return snap, err
	}
	return snap, nil
}
