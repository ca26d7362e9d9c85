package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	"bidworks/internal/domain/entities"
	mock_interfaces "bidworks/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type backupFixture struct {
	uc       *BackupUseCase
	projects *mock_interfaces.MockIProjectRepository
	clients  *mock_interfaces.MockIClientRepository
	settings *mock_interfaces.MockISettingsRepository
}

func newBackupFixture(t *testing.T) backupFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	projects := mock_interfaces.NewMockIProjectRepository(ctrl)
	clients := mock_interfaces.NewMockIClientRepository(ctrl)
	settings := mock_interfaces.NewMockISettingsRepository(ctrl)
	return backupFixture{
		uc:       NewBackupUseCase(projects, clients, settings),
		projects: projects,
		clients:  clients,
		settings: settings,
	}
}

func TestBackupUseCase_ExportImportRoundTrip(t *testing.T) {
	f := newBackupFixture(t)

	project := projectWith(entities.Category{
		Type:  entities.CategoryRoofing,
		Items: []entities.LineItem{entities.NewLineItem("Shingles", 24, "squares", 115, 0, 0)},
	})
	client := entities.Client{ID: "cli-1", Name: "Dana Whitfield", CreatedAt: time.Now().UTC()}
	pricing := entities.DefaultPricing()

	f.projects.EXPECT().GetAll(gomock.Any()).Return([]entities.Project{project}, nil)
	f.clients.EXPECT().GetAll(gomock.Any()).Return([]entities.Client{client}, nil)
	f.settings.EXPECT().GetPricing(gomock.Any()).Return(pricing, true, nil)
	f.settings.EXPECT().GetCompanyInfo(gomock.Any()).Return(entities.CompanyInfo{}, false, nil)
	f.settings.EXPECT().GetSettings(gomock.Any()).Return(entities.DefaultSettings(), true, nil)

	exported, err := f.uc.Export(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exported.CompanyInfo != nil {
		t.Fatalf("expected unset company info omitted")
	}

	// Round-trip through JSON the way the HTTP layer does.
	raw, err := json.Marshal(exported)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var restored Backup
	if err := json.Unmarshal(raw, &restored); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	var savedProject entities.Project
	f.projects.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p entities.Project) (entities.Project, error) {
			savedProject = p
			return p, nil
		})
	f.clients.EXPECT().Save(gomock.Any(), client).Return(client, nil)
	f.settings.EXPECT().SavePricing(gomock.Any(), pricing).Return(nil)
	f.settings.EXPECT().SaveSettings(gomock.Any(), entities.DefaultSettings()).Return(nil)

	if err := f.uc.Import(context.Background(), restored); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if savedProject.ID != project.ID {
		t.Fatalf("expected project upserted by id, got %q", savedProject.ID)
	}
	if math.Abs(savedProject.Total-project.Total) > 1e-9 {
		t.Fatalf("expected totals preserved through round trip: %v vs %v", savedProject.Total, project.Total)
	}
}

func TestBackupUseCase_Import(t *testing.T) {
	t.Run("wrong version", func(t *testing.T) {
		f := newBackupFixture(t)
		err := f.uc.Import(context.Background(), Backup{Version: 99})
		if !errors.Is(err, ErrInvalidBackup) {
			t.Fatalf("expected ErrInvalidBackup, got %v", err)
		}
	})

	t.Run("client without id", func(t *testing.T) {
		f := newBackupFixture(t)
		err := f.uc.Import(context.Background(), Backup{
			Version: backupVersion,
			Clients: []entities.Client{{Name: "No ID"}},
		})
		if !errors.Is(err, ErrInvalidBackup) {
			t.Fatalf("expected ErrInvalidBackup, got %v", err)
		}
	})

	t.Run("project with bad status", func(t *testing.T) {
		f := newBackupFixture(t)
		err := f.uc.Import(context.Background(), Backup{
			Version:  backupVersion,
			Projects: []entities.Project{{ID: "p-1", Status: "archived"}},
		})
		if !errors.Is(err, ErrInvalidBackup) {
			t.Fatalf("expected ErrInvalidBackup, got %v", err)
		}
	})

	t.Run("broken totals are repaired on import", func(t *testing.T) {
		f := newBackupFixture(t)
		tampered := projectWith(entities.Category{
			Type:  entities.CategoryRoofing,
			Items: []entities.LineItem{entities.NewLineItem("Shingles", 10, "squares", 115, 0, 0)},
		})
		tampered.Total = 1 // hand-edited backup

		var saved entities.Project
		f.projects.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) {
				saved = p
				return p, nil
			})

		err := f.uc.Import(context.Background(), Backup{Version: backupVersion, Projects: []entities.Project{tampered}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if math.Abs(saved.Total-1150*1.08) > 1e-9 {
			t.Fatalf("expected totals repaired, got %v", saved.Total)
		}
	})
}
