// Package bout contains the pure business logic for pool and DE bout results.
package bout

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

// SaveBoutContext provides context for pool bout guards.
type SaveBoutContext struct {
	Bout       models.Bout
	PoolExists bool
}

// SaveDEBoutContext provides context for DE bout guards.
type SaveDEBoutContext struct {
	Bout        models.DEBout
	EntryExists bool
}

// CanSaveBout evaluates whether a pool bout can be stored.
// Rules:
// - Pool must exist
// - Opponent name must not be blank
// - Scores must not be negative
// - Victory must agree with unequal scores
func CanSaveBout(ctx SaveBoutContext) GuardResult {
	b := ctx.Bout

	if !ctx.PoolExists {
		return GuardResult{Allowed: false, Reason: fmt.Sprintf("pool %s not found", b.PoolID)}
	}
	return checkResult(b.OpponentName, b.ScoreFor, b.ScoreAgainst, b.Victory)
}

// CanSaveDEBout evaluates whether a DE bout can be stored.
// Rules:
// - Entry must exist
// - Round must be one of 64, 32, 16, 8, 4, 2, 1
// - Opponent, score and victory rules as for pool bouts
func CanSaveDEBout(ctx SaveDEBoutContext) GuardResult {
	b := ctx.Bout

	if !ctx.EntryExists {
		return GuardResult{Allowed: false, Reason: fmt.Sprintf("entry %s not found", b.EntryID)}
	}
	if !models.IsDERound(b.Round) {
		return GuardResult{Allowed: false, Reason: fmt.Sprintf("round must be one of 64, 32, 16, 8, 4, 2, 1 (got %d)", b.Round)}
	}
	return checkResult(b.OpponentName, b.ScoreFor, b.ScoreAgainst, b.Victory)
}

// CheckVictory evaluates the victory flag against the score.
// Equal scores accept either flag: ties are settled by manual override.
func CheckVictory(scoreFor, scoreAgainst int, victory bool) GuardResult {
	if scoreFor == scoreAgainst {
		return GuardResult{Allowed: true}
	}
	if victory != (scoreFor > scoreAgainst) {
		if victory {
			return GuardResult{Allowed: false, Reason: fmt.Sprintf("score %d-%d is a defeat but victory is set", scoreFor, scoreAgainst)}
		}
		return GuardResult{Allowed: false, Reason: fmt.Sprintf("score %d-%d is a victory but victory is not set", scoreFor, scoreAgainst)}
	}
	return GuardResult{Allowed: true}
}

// VictoryFromScore derives the victory flag for unequal scores.
// For a tie it returns the fallback unchanged.
func VictoryFromScore(scoreFor, scoreAgainst int, fallback bool) bool {
	if scoreFor == scoreAgainst {
		return fallback
	}
	return scoreFor > scoreAgainst
}

func checkResult(opponent string, scoreFor, scoreAgainst int, victory bool) GuardResult {
	if strings.TrimSpace(opponent) == "" {
		return GuardResult{Allowed: false, Reason: "opponent name is required"}
	}
	if scoreFor < 0 || scoreAgainst < 0 {
		return GuardResult{Allowed: false, Reason: fmt.Sprintf("scores cannot be negative (got %d-%d)", scoreFor, scoreAgainst)}
	}
	return CheckVictory(scoreFor, scoreAgainst, victory)
}
