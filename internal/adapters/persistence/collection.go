// Package persistence holds the record store: six in-memory collections
// written through to a secondary.KeyValueStore after every mutation.
package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/example/piste/internal/models"
	"github.com/example/piste/internal/ports/secondary"
)

// record is satisfied by pointers to the model types embedding models.Meta.
type record[T any] interface {
	*T
	Metadata() *models.Meta
}

// Collection is one entity collection (id -> record) kept in insertion order.
// It is not safe for concurrent use; the store has a single writer.
//
// seq is the highest id number ever handed out. It never decreases and is
// persisted under seqKey, so ids of deleted records are not reused.
type Collection[T any, P record[T]] struct {
	entity   string
	key      string
	seqKey   string
	idPrefix string
	kv       secondary.KeyValueStore
	now      func() time.Time
	items    []T
	seq      int
}

func newCollection[T any, P record[T]](entity, key, seqKey string, kv secondary.KeyValueStore, now func() time.Time) *Collection[T, P] {
	return &Collection[T, P]{
		entity:   entity,
		key:      key,
		seqKey:   seqKey,
		idPrefix: models.IDPrefixes[entity],
		kv:       kv,
		now:      now,
	}
}

// Key returns the backend key this collection is persisted under.
func (c *Collection[T, P]) Key() string { return c.key }

// SeqKey returns the backend key holding the id high-water mark.
func (c *Collection[T, P]) SeqKey() string { return c.seqKey }

// Load replaces the in-memory collection with the persisted one and restores
// the id high-water mark. A missing key loads as an empty collection.
func (c *Collection[T, P]) Load(ctx context.Context) error {
	c.items = nil
	c.seq = 0

	raw, found, err := c.kv.Get(ctx, c.key)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", c.key, err)
	}
	if found && strings.TrimSpace(raw) != "" {
		var items []T
		if err := json.Unmarshal([]byte(raw), &items); err != nil {
			return fmt.Errorf("failed to decode %s: %w", c.key, err)
		}
		c.items = items
	}

	raw, found, err = c.kv.Get(ctx, c.seqKey)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", c.seqKey, err)
	}
	if found && strings.TrimSpace(raw) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("failed to decode %s: %w", c.seqKey, err)
		}
		c.seq = n
	}

	for i := range c.items {
		c.Reserve(P(&c.items[i]).Metadata().ID)
	}
	return nil
}

// Reserve raises the high-water mark past the given ids so they are never
// handed out again. Ids without this collection's prefix are ignored.
func (c *Collection[T, P]) Reserve(ids ...string) {
	for _, id := range ids {
		if n := c.idNumber(id); n > c.seq {
			c.seq = n
		}
	}
}

// Create assigns an id and creation timestamp, appends the record and persists.
func (c *Collection[T, P]) Create(ctx context.Context, rec *T) error {
	meta := P(rec).Metadata()
	meta.ID = c.nextID()
	meta.CreatedAt = c.timestamp()
	meta.UpdatedAt = ""

	c.items = append(c.items, *rec)
	return errors.Join(c.persistSeq(ctx), c.persist(ctx))
}

// GetByID retrieves a copy of a record by its id.
func (c *Collection[T, P]) GetByID(ctx context.Context, id string) (*T, error) {
	i := c.indexOf(id)
	if i < 0 {
		return nil, c.notFound(id)
	}
	item := c.items[i]
	return &item, nil
}

// List returns copies of all records in insertion order.
func (c *Collection[T, P]) List(ctx context.Context) ([]T, error) {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out, nil
}

// Update replaces the record with the same id, keeping its creation timestamp.
func (c *Collection[T, P]) Update(ctx context.Context, rec *T) error {
	meta := P(rec).Metadata()
	i := c.indexOf(meta.ID)
	if i < 0 {
		return c.notFound(meta.ID)
	}

	meta.CreatedAt = P(&c.items[i]).Metadata().CreatedAt
	meta.UpdatedAt = c.timestamp()
	c.items[i] = *rec
	return c.persist(ctx)
}

// Delete removes the given ids in one pass and persists once.
func (c *Collection[T, P]) Delete(ctx context.Context, ids ...string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	kept := c.items[:0:0]
	for i := range c.items {
		if _, ok := drop[P(&c.items[i]).Metadata().ID]; ok {
			continue
		}
		kept = append(kept, c.items[i])
	}

	removed := len(c.items) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	c.items = kept
	return removed, c.persist(ctx)
}

// Clear empties the collection and removes its key from the backend.
// The id high-water mark is kept.
func (c *Collection[T, P]) Clear(ctx context.Context) error {
	c.items = nil
	if err := c.kv.Remove(ctx, c.key); err != nil {
		return fmt.Errorf("%w: failed to remove %s: %v", models.ErrPersistence, c.key, err)
	}
	return nil
}

// persist writes the whole collection. The in-memory state stays authoritative on failure.
func (c *Collection[T, P]) persist(ctx context.Context) error {
	items := c.items
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("%w: failed to encode %s: %v", models.ErrPersistence, c.key, err)
	}
	if err := c.kv.Set(ctx, c.key, string(data)); err != nil {
		return fmt.Errorf("%w: failed to save %s: %v", models.ErrPersistence, c.key, err)
	}
	return nil
}

func (c *Collection[T, P]) persistSeq(ctx context.Context) error {
	if err := c.kv.Set(ctx, c.seqKey, strconv.Itoa(c.seq)); err != nil {
		return fmt.Errorf("%w: failed to save %s: %v", models.ErrPersistence, c.seqKey, err)
	}
	return nil
}

func (c *Collection[T, P]) indexOf(id string) int {
	for i := range c.items {
		if P(&c.items[i]).Metadata().ID == id {
			return i
		}
	}
	return -1
}

// nextID advances the high-water mark and returns PREFIX-NNN.
func (c *Collection[T, P]) nextID() string {
	c.seq++
	return fmt.Sprintf("%s-%03d", c.idPrefix, c.seq)
}

// idNumber returns the numeric suffix of id, or 0 if id lacks the prefix.
func (c *Collection[T, P]) idNumber(id string) int {
	prefix := c.idPrefix + "-"
	if !strings.HasPrefix(id, prefix) {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimPrefix(id, prefix))
	if err != nil {
		return 0
	}
	return n
}

func (c *Collection[T, P]) timestamp() string {
	return c.now().UTC().Format(time.RFC3339)
}

func (c *Collection[T, P]) notFound(id string) error {
	return models.NotFoundError(c.entity, id)
}

// Ensure the collections implement the repository port.
var (
	_ secondary.FencerRepository     = (*Collection[models.Fencer, *models.Fencer])(nil)
	_ secondary.TournamentRepository = (*Collection[models.Tournament, *models.Tournament])(nil)
	_ secondary.EntryRepository      = (*Collection[models.Entry, *models.Entry])(nil)
	_ secondary.PoolRepository       = (*Collection[models.Pool, *models.Pool])(nil)
	_ secondary.BoutRepository       = (*Collection[models.Bout, *models.Bout])(nil)
	_ secondary.DEBoutRepository     = (*Collection[models.DEBout, *models.DEBout])(nil)
)
