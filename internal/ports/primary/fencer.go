package primary

import (
	"context"

	"github.com/example/piste/internal/models"
)

// FencerService defines the primary port for fencer operations.
type FencerService interface {
	// AddFencer validates and stores a new fencer.
	AddFencer(ctx context.Context, req AddFencerRequest) (*WriteResult[models.Fencer], error)

	// GetFencer retrieves a fencer by ID.
	GetFencer(ctx context.Context, fencerID string) (*models.Fencer, error)

	// ListFencers retrieves all fencers in creation order.
	ListFencers(ctx context.Context) ([]models.Fencer, error)

	// UpdateFencer merges a patch into a fencer and re-validates it.
	UpdateFencer(ctx context.Context, fencerID string, patch models.FencerPatch) (*WriteResult[models.Fencer], error)

	// DeleteFencer deletes a fencer with all of its entries, pools and bouts.
	DeleteFencer(ctx context.Context, fencerID string) (*DeleteResult, error)
}

// AddFencerRequest contains parameters for adding a fencer.
type AddFencerRequest struct {
	Name            string
	Club            string
	PrimaryWeapon   string
	SecondaryWeapon string
	Rating          string
	DateOfBirth     string
	Gender          string
}
