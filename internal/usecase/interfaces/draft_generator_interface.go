package interfaces

import (
	"context"

	"bidworks/internal/domain/entities"
)

// DraftRequest carries everything the generator needs to produce a full
// estimate draft: the property, the contractor's price book and their market
// settings. Pricing travels with the request so the prompt quotes real rates.

type DraftRequest struct {
	Address      string
	PropertyData *entities.PropertyData
	Notes        string
	Categories   []entities.CategoryType
	Pricing      entities.PricingTable
	AISettings   entities.AISettings
}

// IDraftGenerator abstracts the AI estimate-draft provider.
//
// Implementations return one of the ai_errors sentinels on failure so the
// caller can distinguish configuration, transport and parse problems.

type IDraftGenerator interface {
	GenerateDraft(ctx context.Context, req DraftRequest) (entities.EstimateDraft, error)
}
