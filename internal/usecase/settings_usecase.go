package usecase

import (
	"context"
	"errors"

	"bidworks/internal/domain/entities"
	"bidworks/internal/usecase/interfaces"
)

var (
	ErrInvalidPricing  = errors.New("invalid pricing table")
	ErrInvalidSettings = errors.New("invalid settings")
)

// ISettingsUseCase manages the contractor's singleton configuration: the
// price book, company letterhead and app settings. Reads fall back to the
// built-in defaults when nothing has been saved yet.

type ISettingsUseCase interface {
	GetPricing(ctx context.Context) (entities.PricingTable, error)
	SavePricing(ctx context.Context, p entities.PricingTable) (entities.PricingTable, error)
	ResetPricing(ctx context.Context) (entities.PricingTable, error)
	GetCompanyInfo(ctx context.Context) (entities.CompanyInfo, error)
	SaveCompanyInfo(ctx context.Context, info entities.CompanyInfo) (entities.CompanyInfo, error)
	GetSettings(ctx context.Context) (entities.AppSettings, error)
	SaveSettings(ctx context.Context, s entities.AppSettings) (entities.AppSettings, error)
}

type SettingsUseCase struct {
	repo interfaces.ISettingsRepository
}

var _ ISettingsUseCase = (*SettingsUseCase)(nil)

func NewSettingsUseCase(repo interfaces.ISettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

func (u *SettingsUseCase) GetPricing(ctx context.Context) (entities.PricingTable, error) {
	p, found, err := u.repo.GetPricing(ctx)
	if err != nil {
		return entities.PricingTable{}, err
	}
	if !found {
		return entities.DefaultPricing(), nil
	}
	return p, nil
}

func (u *SettingsUseCase) SavePricing(ctx context.Context, p entities.PricingTable) (entities.PricingTable, error) {
	if err := validatePricing(p); err != nil {
		return entities.PricingTable{}, err
	}
	if err := u.repo.SavePricing(ctx, p); err != nil {
		return entities.PricingTable{}, err
	}
	return p, nil
}

// ResetPricing restores the built-in price book and persists it, so later
// reads are stable even if the defaults change between releases.
func (u *SettingsUseCase) ResetPricing(ctx context.Context) (entities.PricingTable, error) {
	p := entities.DefaultPricing()
	if err := u.repo.SavePricing(ctx, p); err != nil {
		return entities.PricingTable{}, err
	}
	return p, nil
}

func (u *SettingsUseCase) GetCompanyInfo(ctx context.Context) (entities.CompanyInfo, error) {
	info, found, err := u.repo.GetCompanyInfo(ctx)
	if err != nil {
		return entities.CompanyInfo{}, err
	}
	if !found {
		return entities.CompanyInfo{}, nil
	}
	return info, nil
}

func (u *SettingsUseCase) SaveCompanyInfo(ctx context.Context, info entities.CompanyInfo) (entities.CompanyInfo, error) {
	if err := u.repo.SaveCompanyInfo(ctx, info); err != nil {
		return entities.CompanyInfo{}, err
	}
	return info, nil
}

func (u *SettingsUseCase) GetSettings(ctx context.Context) (entities.AppSettings, error) {
	s, found, err := u.repo.GetSettings(ctx)
	if err != nil {
		return entities.AppSettings{}, err
	}
	if !found {
		return entities.DefaultSettings(), nil
	}
	return s, nil
}

func (u *SettingsUseCase) SaveSettings(ctx context.Context, s entities.AppSettings) (entities.AppSettings, error) {
	switch s.AISettings.EstimationStyle {
	case "", entities.EstimationConservative, entities.EstimationStandard, entities.EstimationComprehensive:
	default:
		return entities.AppSettings{}, ErrInvalidSettings
	}
	if s.AISettings.EstimationStyle == "" {
		s.AISettings.EstimationStyle = entities.EstimationStandard
	}
	if err := u.repo.SaveSettings(ctx, s); err != nil {
		return entities.AppSettings{}, err
	}
	return s, nil
}

// validatePricing rejects tables with negative or inverted price bands. Zero
// defaults are allowed: a contractor may zero out a trade they never bid.
func validatePricing(p entities.PricingTable) error {
	ranges := []entities.PriceRange{
		p.Roofing.Shingles, p.Roofing.Metal, p.Roofing.Tile,
		p.Windows.SingleHung, p.Windows.DoubleHung, p.Windows.Casement, p.Windows.Sliding,
		p.Gutters.Aluminum, p.Gutters.Copper, p.Gutters.Vinyl,
		p.Siding.Vinyl, p.Siding.FiberCement, p.Siding.Wood,
		p.Doors.Exterior, p.Doors.Interior,
		p.Painting.Interior, p.Painting.Exterior,
		p.Concrete.PerCubicYard,
		p.Fencing.Wood, p.Fencing.Vinyl, p.Fencing.ChainLink, p.Fencing.Aluminum,
	}
	for _, r := range ranges {
		if r.Min < 0 || r.Default < 0 || (r.Max > 0 && r.Max < r.Min) {
			return ErrInvalidPricing
		}
	}
	if p.Painting.SqFtPerGallon <= 0 {
		return ErrInvalidPricing
	}
	return nil
}
