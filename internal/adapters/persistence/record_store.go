package persistence

import (
	"context"
	"time"

	"github.com/example/piste/internal/models"
	"github.com/example/piste/internal/ports/secondary"
)

// DefaultKeyPrefix namespaces the collection keys in the backend.
const DefaultKeyPrefix = "fencing_tracker_"

// Collection key suffixes.
const (
	KeyFencers     = "fencers"
	KeyTournaments = "tournaments"
	KeyEntries     = "entries"
	KeyPools       = "pools"
	KeyBouts       = "bouts"
	KeyDEBouts     = "de_bouts"
)

// SeqKeyInfix sits between the prefix and the collection name in the
// keys holding each collection's id high-water mark.
const SeqKeyInfix = "seq_"

// Options configures a RecordStore.
type Options struct {
	KeyPrefix string           // defaults to DefaultKeyPrefix
	Now       func() time.Time // defaults to time.Now
}

// RecordStore owns the six entity collections.
// Construct one per process and pass it by reference.
type RecordStore struct {
	Fencers     *Collection[models.Fencer, *models.Fencer]
	Tournaments *Collection[models.Tournament, *models.Tournament]
	Entries     *Collection[models.Entry, *models.Entry]
	Pools       *Collection[models.Pool, *models.Pool]
	Bouts       *Collection[models.Bout, *models.Bout]
	DEBouts     *Collection[models.DEBout, *models.DEBout]

	prefix string
}

// NewRecordStore creates an empty RecordStore backed by kv. Call Load to read persisted data.
func NewRecordStore(kv secondary.KeyValueStore, opts Options) *RecordStore {
	prefix := opts.KeyPrefix
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &RecordStore{
		Fencers:     newCollection[models.Fencer](models.EntityFencer, prefix+KeyFencers, prefix+SeqKeyInfix+KeyFencers, kv, now),
		Tournaments: newCollection[models.Tournament](models.EntityTournament, prefix+KeyTournaments, prefix+SeqKeyInfix+KeyTournaments, kv, now),
		Entries:     newCollection[models.Entry](models.EntityEntry, prefix+KeyEntries, prefix+SeqKeyInfix+KeyEntries, kv, now),
		Pools:       newCollection[models.Pool](models.EntityPool, prefix+KeyPools, prefix+SeqKeyInfix+KeyPools, kv, now),
		Bouts:       newCollection[models.Bout](models.EntityBout, prefix+KeyBouts, prefix+SeqKeyInfix+KeyBouts, kv, now),
		DEBouts:     newCollection[models.DEBout](models.EntityDEBout, prefix+KeyDEBouts, prefix+SeqKeyInfix+KeyDEBouts, kv, now),
		prefix:      prefix,
	}
}

type loader interface {
	Load(ctx context.Context) error
}

func (s *RecordStore) collections() []loader {
	return []loader{s.Fencers, s.Tournaments, s.Entries, s.Pools, s.Bouts, s.DEBouts}
}

// Load reads every collection from the backend. Ids still referenced by
// child records are reserved so a lost parent id is never reissued.
func (s *RecordStore) Load(ctx context.Context) error {
	for _, c := range s.collections() {
		if err := c.Load(ctx); err != nil {
			return err
		}
	}

	for i := range s.Entries.items {
		s.Fencers.Reserve(s.Entries.items[i].FencerID)
		s.Tournaments.Reserve(s.Entries.items[i].TournamentID)
	}
	for i := range s.Pools.items {
		s.Entries.Reserve(s.Pools.items[i].EntryID)
	}
	for i := range s.DEBouts.items {
		s.Entries.Reserve(s.DEBouts.items[i].EntryID)
	}
	for i := range s.Bouts.items {
		s.Pools.Reserve(s.Bouts.items[i].PoolID)
	}
	return nil
}

// Prefix returns the key prefix shared by the collections.
func (s *RecordStore) Prefix() string {
	return s.prefix
}

// Keys returns the backend keys of the six collections.
func (s *RecordStore) Keys() []string {
	return []string{
		s.Fencers.Key(), s.Tournaments.Key(), s.Entries.Key(),
		s.Pools.Key(), s.Bouts.Key(), s.DEBouts.Key(),
	}
}

// SeqKeys returns the backend keys of the six id high-water marks.
func (s *RecordStore) SeqKeys() []string {
	return []string{
		s.Fencers.SeqKey(), s.Tournaments.SeqKey(), s.Entries.SeqKey(),
		s.Pools.SeqKey(), s.Bouts.SeqKey(), s.DEBouts.SeqKey(),
	}
}

// Repositories exposes the collections through the repository port.
func (s *RecordStore) Repositories() secondary.Repositories {
	return secondary.Repositories{
		Fencers:     s.Fencers,
		Tournaments: s.Tournaments,
		Entries:     s.Entries,
		Pools:       s.Pools,
		Bouts:       s.Bouts,
		DEBouts:     s.DEBouts,
	}
}
