package primary

import (
	"context"

	"github.com/example/piste/internal/models"
)

// EntryService defines the primary port for entry operations.
type EntryService interface {
	// AddEntry registers a fencer in a tournament.
	AddEntry(ctx context.Context, req AddEntryRequest) (*WriteResult[models.Entry], error)

	// GetEntry retrieves an entry by ID.
	GetEntry(ctx context.Context, entryID string) (*models.Entry, error)

	// ListEntries retrieves entries matching the given filters.
	ListEntries(ctx context.Context, filters EntryFilters) ([]models.Entry, error)

	// UpdateEntry merges a patch into an entry and re-validates it.
	UpdateEntry(ctx context.Context, entryID string, patch models.EntryPatch) (*WriteResult[models.Entry], error)

	// DeleteEntry deletes an entry with its pools, pool bouts and DE bouts.
	DeleteEntry(ctx context.Context, entryID string) (*DeleteResult, error)
}

// AddEntryRequest contains parameters for adding an entry.
type AddEntryRequest struct {
	FencerID       string
	TournamentID   string
	Weapon         string
	AgeCategory    string
	InitialSeeding int
	FinalPlacing   int
	Notes          string
}

// EntryFilters contains filter options for listing entries.
type EntryFilters struct {
	FencerID     string
	TournamentID string
}

// PoolService defines the primary port for pool operations.
type PoolService interface {
	// AddPool adds a pool to an entry.
	AddPool(ctx context.Context, req AddPoolRequest) (*WriteResult[models.Pool], error)

	// GetPool retrieves a pool by ID.
	GetPool(ctx context.Context, poolID string) (*models.Pool, error)

	// ListPools retrieves pools, optionally restricted to one entry.
	ListPools(ctx context.Context, entryID string) ([]models.Pool, error)

	// UpdatePool merges a patch into a pool and re-validates it.
	UpdatePool(ctx context.Context, poolID string, patch models.PoolPatch) (*WriteResult[models.Pool], error)

	// DeletePool deletes a pool and its bouts.
	DeletePool(ctx context.Context, poolID string) (*DeleteResult, error)
}

// AddPoolRequest contains parameters for adding a pool.
type AddPoolRequest struct {
	EntryID         string
	PoolNumber      int
	NumberOfFencers int
}
