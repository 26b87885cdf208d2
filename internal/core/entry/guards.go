// Package entry contains the pure business logic for entries and their pools.
// Guards are pure functions; existence of parent records is pre-fetched by the caller.
package entry

import (
	"fmt"

	"github.com/example/piste/internal/models"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%w: %s", models.ErrValidation, r.Reason)
}

// SaveEntryContext provides context for entry guards.
type SaveEntryContext struct {
	Entry            models.Entry
	FencerExists     bool
	TournamentExists bool
}

// SavePoolContext provides context for pool guards.
type SavePoolContext struct {
	Pool        models.Pool
	EntryExists bool
}

// CanSaveEntry evaluates whether an entry can be stored.
// Rules:
// - Fencer and tournament must exist
// - Weapon, if set, must be foil, épée or saber
// - Age category, if set, must be known
// - Seeding and placing must not be negative
func CanSaveEntry(ctx SaveEntryContext) GuardResult {
	e := ctx.Entry

	if !ctx.FencerExists {
		return GuardResult{Allowed: false, Reason: fmt.Sprintf("fencer %s not found", e.FencerID)}
	}
	if !ctx.TournamentExists {
		return GuardResult{Allowed: false, Reason: fmt.Sprintf("tournament %s not found", e.TournamentID)}
	}

	if e.Weapon != "" {
		if _, ok := models.ParseWeapon(e.Weapon); !ok {
			return GuardResult{Allowed: false, Reason: fmt.Sprintf("unknown weapon %q", e.Weapon)}
		}
	}
	if e.AgeCategory != "" && !models.IsAgeCategory(e.AgeCategory) {
		return GuardResult{Allowed: false, Reason: fmt.Sprintf("unknown age category %q", e.AgeCategory)}
	}

	if e.InitialSeeding < 0 {
		return GuardResult{Allowed: false, Reason: "initial seeding cannot be negative"}
	}
	if e.FinalPlacing < 0 {
		return GuardResult{Allowed: false, Reason: "final placing cannot be negative"}
	}

	return GuardResult{Allowed: true}
}

// CanSavePool evaluates whether a pool can be stored.
// Rules:
// - Entry must exist
// - Pool number starts at 1
// - Number of fencers is 0 (unknown) or at least 2
func CanSavePool(ctx SavePoolContext) GuardResult {
	p := ctx.Pool

	if !ctx.EntryExists {
		return GuardResult{Allowed: false, Reason: fmt.Sprintf("entry %s not found", p.EntryID)}
	}
	if p.PoolNumber < 1 {
		return GuardResult{Allowed: false, Reason: fmt.Sprintf("pool number must be at least 1 (got %d)", p.PoolNumber)}
	}
	if p.NumberOfFencers != 0 && p.NumberOfFencers < 2 {
		return GuardResult{Allowed: false, Reason: fmt.Sprintf("a pool needs at least 2 fencers (got %d)", p.NumberOfFencers)}
	}

	return GuardResult{Allowed: true}
}

// Normalize canonicalizes the weapon code in place.
func Normalize(e *models.Entry) {
	if code, ok := models.ParseWeapon(e.Weapon); ok {
		e.Weapon = code
	}
}
