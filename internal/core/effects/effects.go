// Package effects defines effect types as data structures representing I/O operations.
// Planners in internal/core return effects; the app layer interprets them.
// Effects are pure data - they describe what should happen, not how.
package effects

// Effect is the base interface for all effects.
type Effect interface {
	// EffectType returns a string identifier for the effect type.
	EffectType() string
}

// LogEffect represents a logging operation.
type LogEffect struct {
	Level   string // "debug", "info", "warn", "error"
	Message string
	Fields  map[string]any
}

func (e LogEffect) EffectType() string { return "log" }

// PersistEffect represents a record store operation.
type PersistEffect struct {
	Entity    string   // e.g., "fencer", "pool", "de_bout"
	Operation string   // currently only "delete"
	IDs       []string // Records the operation applies to
}

func (e PersistEffect) EffectType() string { return "persist" }

// CompositeEffect holds multiple effects to be executed in sequence.
type CompositeEffect struct {
	Effects []Effect
}

func (e CompositeEffect) EffectType() string { return "composite" }

// NoEffect represents an operation that produces no side effects.
type NoEffect struct{}

func (e NoEffect) EffectType() string { return "none" }

// Persist operations.
const (
	OpDelete = "delete"
)
