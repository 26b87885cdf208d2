// Package tournament contains the pure business logic for tournament records.
package tournament

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

// CanSaveTournament evaluates whether a tournament record can be stored.
// Rules:
// - Name must not be blank
// - Start date is required and must be a valid date
// - End date, if set, must be valid and not before the start date
func CanSaveTournament(t models.Tournament) GuardResult {
	if strings.TrimSpace(t.Name) == "" {
		return GuardResult{Allowed: false, Reason: "tournament name is required"}
	}

	if strings.TrimSpace(t.StartDate) == "" {
		return GuardResult{Allowed: false, Reason: "start date is required"}
	}
	start, ok := models.ParseDate(t.StartDate)
	if !ok {
		return GuardResult{Allowed: false, Reason: fmt.Sprintf("start date %q is not a valid date (use YYYY-MM-DD)", t.StartDate)}
	}

	if t.EndDate != "" {
		end, ok := models.ParseDate(t.EndDate)
		if !ok {
			return GuardResult{Allowed: false, Reason: fmt.Sprintf("end date %q is not a valid date (use YYYY-MM-DD)", t.EndDate)}
		}
		if end.Before(start) {
			return GuardResult{Allowed: false, Reason: fmt.Sprintf("end date %s is before start date %s", t.EndDate, t.StartDate)}
		}
	}

	return GuardResult{Allowed: true}
}
