package usecase

import (
	"context"
	"errors"
	"strings"

	"bidworks/internal/domain/entities"
	"bidworks/internal/usecase/interfaces"
)

var ErrInvalidAddress = errors.New("invalid address")

// IPropertyUseCase resolves an address to property measurements for
// prefilling calculator inputs.

type IPropertyUseCase interface {
	Lookup(ctx context.Context, address string) (entities.PropertyData, error)
}

type PropertyUseCase struct {
	lookup interfaces.IPropertyLookup
}

var _ IPropertyUseCase = (*PropertyUseCase)(nil)

func NewPropertyUseCase(lookup interfaces.IPropertyLookup) *PropertyUseCase {
	return &PropertyUseCase{lookup: lookup}
}

func (u *PropertyUseCase) Lookup(ctx context.Context, address string) (entities.PropertyData, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return entities.PropertyData{}, ErrInvalidAddress
	}
	return u.lookup.Lookup(ctx, address)
}
