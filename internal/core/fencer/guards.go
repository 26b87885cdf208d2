// Package fencer contains the pure business logic for fencer records.
// Guards are pure functions that evaluate preconditions without side effects.
package fencer

import (
	"fmt"
	"strings"

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

// CanSaveFencer evaluates whether a fencer record can be stored.
// Rules:
// - Name must not be blank
// - Weapons, if set, must be foil, épée or saber
// - Gender, if set, must be M, F or O
// - Date of birth, if set, must be a valid date
func CanSaveFencer(f models.Fencer) GuardResult {
	if strings.TrimSpace(f.Name) == "" {
		return GuardResult{Allowed: false, Reason: "fencer name is required"}
	}

	if f.PrimaryWeapon != "" {
		if _, ok := models.ParseWeapon(f.PrimaryWeapon); !ok {
			return GuardResult{Allowed: false, Reason: fmt.Sprintf("unknown primary weapon %q", f.PrimaryWeapon)}
		}
	}
	if f.SecondaryWeapon != "" {
		if _, ok := models.ParseWeapon(f.SecondaryWeapon); !ok {
			return GuardResult{Allowed: false, Reason: fmt.Sprintf("unknown secondary weapon %q", f.SecondaryWeapon)}
		}
	}

	switch f.Gender {
	case "", models.GenderMale, models.GenderFemale, models.GenderOther:
	default:
		return GuardResult{Allowed: false, Reason: fmt.Sprintf("gender must be M, F or O (got %q)", f.Gender)}
	}

	if f.DateOfBirth != "" {
		if _, ok := models.ParseDate(f.DateOfBirth); !ok {
			return GuardResult{Allowed: false, Reason: fmt.Sprintf("date of birth %q is not a valid date (use YYYY-MM-DD)", f.DateOfBirth)}
		}
	}

	return GuardResult{Allowed: true}
}

// Normalize trims the name and canonicalizes weapon codes in place.
func Normalize(f *models.Fencer) {
	f.Name = strings.TrimSpace(f.Name)
	if code, ok := models.ParseWeapon(f.PrimaryWeapon); ok {
		f.PrimaryWeapon = code
	}
	if code, ok := models.ParseWeapon(f.SecondaryWeapon); ok {
		f.SecondaryWeapon = code
	}
}
