package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"bidworks/internal/domain/entities"
	"bidworks/internal/usecase/interfaces"
)

var ErrInvalidBackup = errors.New("invalid backup payload")

// backupVersion tags exported payloads so future format changes can be
// detected on import.
const backupVersion = 1

// Backup is the full-database export: every project and client plus the
// configuration singletons. Nil singletons mean "nothing saved, defaults in
// effect" and are skipped on import.

type Backup struct {
	Version     int                    `json:"version"`
	ExportedAt  time.Time              `json:"exportedAt"`
	Projects    []entities.Project     `json:"projects"`
	Clients     []entities.Client      `json:"clients"`
	Pricing     *entities.PricingTable `json:"pricing,omitempty"`
	CompanyInfo *entities.CompanyInfo  `json:"companyInfo,omitempty"`
	Settings    *entities.AppSettings  `json:"settings,omitempty"`
}

// IBackupUseCase exports and imports the whole dataset as one document.

type IBackupUseCase interface {
	Export(ctx context.Context) (Backup, error)
	Import(ctx context.Context, b Backup) error
}

type BackupUseCase struct {
	projects interfaces.IProjectRepository
	clients  interfaces.IClientRepository
	settings interfaces.ISettingsRepository
}

var _ IBackupUseCase = (*BackupUseCase)(nil)

func NewBackupUseCase(projects interfaces.IProjectRepository, clients interfaces.IClientRepository, settings interfaces.ISettingsRepository) *BackupUseCase {
	return &BackupUseCase{projects: projects, clients: clients, settings: settings}
}

func (u *BackupUseCase) Export(ctx context.Context) (Backup, error) {
	projects, err := u.projects.GetAll(ctx)
	if err != nil {
		return Backup{}, err
	}
	clients, err := u.clients.GetAll(ctx)
	if err != nil {
		return Backup{}, err
	}

	b := Backup{
		Version:    backupVersion,
		ExportedAt: time.Now().UTC(),
		Projects:   projects,
		Clients:    clients,
	}

	if pricing, found, err := u.settings.GetPricing(ctx); err != nil {
		return Backup{}, err
	} else if found {
		b.Pricing = &pricing
	}
	if info, found, err := u.settings.GetCompanyInfo(ctx); err != nil {
		return Backup{}, err
	} else if found {
		b.CompanyInfo = &info
	}
	if s, found, err := u.settings.GetSettings(ctx); err != nil {
		return Backup{}, err
	} else if found {
		b.Settings = &s
	}

	log.Printf("[backup][usecase] exported projects=%d clients=%d", len(b.Projects), len(b.Clients))
	return b, nil
}

// Import merges a backup into the store. Records are upserted by ID, so
// importing the same backup twice is a no-op; existing records not present in
// the backup are left alone. Projects are recalculated on the way in so a
// hand-edited backup cannot smuggle in broken totals.
func (u *BackupUseCase) Import(ctx context.Context, b Backup) error {
	if b.Version != backupVersion {
		return ErrInvalidBackup
	}

	for _, c := range b.Clients {
		if c.ID == "" || c.Name == "" {
			return ErrInvalidBackup
		}
	}
	for _, p := range b.Projects {
		if p.ID == "" {
			return ErrInvalidBackup
		}
		if p.Status != "" && !p.Status.Valid() {
			return ErrInvalidBackup
		}
	}

	for _, c := range b.Clients {
		if _, err := u.clients.Save(ctx, c); err != nil {
			return err
		}
	}
	for _, p := range b.Projects {
		p.Recalculate()
		if _, err := u.projects.Save(ctx, p); err != nil {
			return err
		}
	}

	if b.Pricing != nil {
		if err := validatePricing(*b.Pricing); err != nil {
			return err
		}
		if err := u.settings.SavePricing(ctx, *b.Pricing); err != nil {
			return err
		}
	}
	if b.CompanyInfo != nil {
		if err := u.settings.SaveCompanyInfo(ctx, *b.CompanyInfo); err != nil {
			return err
		}
	}
	if b.Settings != nil {
		if err := u.settings.SaveSettings(ctx, *b.Settings); err != nil {
			return err
		}
	}

	log.Printf("[backup][usecase] imported projects=%d clients=%d", len(b.Projects), len(b.Clients))
	return nil
}
