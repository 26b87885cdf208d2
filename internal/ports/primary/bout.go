package primary

import (
	"context"

	"github.com/example/piste/internal/models"
)

// BoutService defines the primary port for pool bout operations.
type BoutService interface {
	// AddBout records a pool bout.
	AddBout(ctx context.Context, req AddBoutRequest) (*WriteResult[models.Bout], error)

	// GetBout retrieves a pool bout by ID.
	GetBout(ctx context.Context, boutID string) (*models.Bout, error)

	// ListBouts retrieves pool bouts, optionally restricted to one pool.
	ListBouts(ctx context.Context, poolID string) ([]models.Bout, error)

	// UpdateBout merges a patch into a pool bout and re-validates it.
	UpdateBout(ctx context.Context, boutID string, patch models.BoutPatch) (*WriteResult[models.Bout], error)

	// DeleteBout deletes a pool bout.
	DeleteBout(ctx context.Context, boutID string) (*DeleteResult, error)
}

// AddBoutRequest contains parameters for recording a pool bout.
// A nil Victory is derived from the score; ties then default to a defeat.
type AddBoutRequest struct {
	PoolID       string
	OpponentName string
	ScoreFor     int
	ScoreAgainst int
	Victory      *bool
}

// DEBoutService defines the primary port for direct-elimination bout operations.
type DEBoutService interface {
	// AddDEBout records a DE bout.
	AddDEBout(ctx context.Context, req AddDEBoutRequest) (*WriteResult[models.DEBout], error)

	// GetDEBout retrieves a DE bout by ID.
	GetDEBout(ctx context.Context, deBoutID string) (*models.DEBout, error)

	// ListDEBouts retrieves DE bouts, optionally restricted to one entry,
	// earliest round first.
	ListDEBouts(ctx context.Context, entryID string) ([]models.DEBout, error)

	// UpdateDEBout merges a patch into a DE bout and re-validates it.
	UpdateDEBout(ctx context.Context, deBoutID string, patch models.BoutPatch) (*WriteResult[models.DEBout], error)

	// DeleteDEBout deletes a DE bout.
	DeleteDEBout(ctx context.Context, deBoutID string) (*DeleteResult, error)
}

// AddDEBoutRequest contains parameters for recording a DE bout.
type AddDEBoutRequest struct {
	EntryID      string
	Round        int
	OpponentName string
	ScoreFor     int
	ScoreAgainst int
	Victory      *bool
}
