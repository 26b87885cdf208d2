// Package models contains domain types for fencing tracker entities.
// Field names follow the persisted JSON layout, one array per collection.
package models

// Meta carries the bookkeeping fields every stored record has.
type Meta struct {
	ID        string `json:"id" yaml:"id"`
	CreatedAt string `json:"createdAt" yaml:"createdAt"`
	UpdatedAt string `json:"updatedAt,omitempty" yaml:"updatedAt,omitempty"`
}

// Metadata exposes the bookkeeping fields for the record store.
func (m *Meta) Metadata() *Meta { return m }

// GetID returns the record id.
func (m Meta) GetID() string { return m.ID }

// Entity type names, used for id prefixes, audit logs and effects.
const (
	EntityFencer     = "fencer"
	EntityTournament = "tournament"
	EntityEntry      = "entry"
	EntityPool       = "pool"
	EntityBout       = "bout"
	EntityDEBout     = "de_bout"
)

// IDPrefixes maps entity types to the prefix of their generated ids.
var IDPrefixes = map[string]string{
	EntityFencer:     "FNC",
	EntityTournament: "TRN",
	EntityEntry:      "ENT",
	EntityPool:       "POOL",
	EntityBout:       "BOUT",
	EntityDEBout:     "DEB",
}

// EntityLabel returns the human-readable name of an entity type.
func EntityLabel(entity string) string {
	if entity == EntityDEBout {
		return "DE bout"
	}
	return entity
}
