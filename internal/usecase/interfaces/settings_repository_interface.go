package interfaces

import (
	"context"

	"bidworks/internal/domain/entities"
)

// ISettingsRepository stores the contractor's singleton configuration values:
// the price book, company info and app settings. Each value is read and
// written whole; a missing value means the caller should fall back to the
// built-in defaults.

type ISettingsRepository interface {
	GetPricing(ctx context.Context) (entities.PricingTable, bool, error)
	SavePricing(ctx context.Context, p entities.PricingTable) error
	GetCompanyInfo(ctx context.Context) (entities.CompanyInfo, bool, error)
	SaveCompanyInfo(ctx context.Context, info entities.CompanyInfo) error
	GetSettings(ctx context.Context) (entities.AppSettings, bool, error)
	SaveSettings(ctx context.Context, s entities.AppSettings) error
}
