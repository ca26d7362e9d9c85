package interfaces

import (
	"context"

	"bidworks/internal/domain/entities"
)

// IPropertyLookup resolves a street address to property measurements used to
// prefill calculator inputs.

type IPropertyLookup interface {
	Lookup(ctx context.Context, address string) (entities.PropertyData, error)
}
