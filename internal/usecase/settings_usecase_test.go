package usecase

import (
	"context"
	"errors"
	"testing"

	"bidworks/internal/domain/entities"
	mock_interfaces "bidworks/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSettingsUseCase_Pricing(t *testing.T) {
	t.Run("falls back to defaults when unset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewSettingsUseCase(repo)
		repo.EXPECT().GetPricing(gomock.Any()).Return(entities.PricingTable{}, false, nil)

		p, err := uc.GetPricing(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Roofing.Shingles.Default != 115 {
			t.Fatalf("expected default price book, got %+v", p.Roofing)
		}
	})

	t.Run("returns saved table verbatim", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewSettingsUseCase(repo)
		custom := entities.DefaultPricing()
		custom.Roofing.Shingles.Default = 130
		repo.EXPECT().GetPricing(gomock.Any()).Return(custom, true, nil)

		p, err := uc.GetPricing(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Roofing.Shingles.Default != 130 {
			t.Fatalf("expected custom price, got %v", p.Roofing.Shingles.Default)
		}
	})

	t.Run("rejects negative prices", func(t *testing.T) {
		uc := NewSettingsUseCase(nil)
		bad := entities.DefaultPricing()
		bad.Concrete.PerCubicYard.Default = -5
		_, err := uc.SavePricing(context.Background(), bad)
		if !errors.Is(err, ErrInvalidPricing) {
			t.Fatalf("expected ErrInvalidPricing, got %v", err)
		}
	})

	t.Run("rejects zero paint coverage", func(t *testing.T) {
		uc := NewSettingsUseCase(nil)
		bad := entities.DefaultPricing()
		bad.Painting.SqFtPerGallon = 0
		_, err := uc.SavePricing(context.Background(), bad)
		if !errors.Is(err, ErrInvalidPricing) {
			t.Fatalf("expected ErrInvalidPricing, got %v", err)
		}
	})

	t.Run("reset persists the defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewSettingsUseCase(repo)
		repo.EXPECT().SavePricing(gomock.Any(), entities.DefaultPricing()).Return(nil)

		p, err := uc.ResetPricing(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Fencing.Gate != 250 {
			t.Fatalf("unexpected reset table: %+v", p.Fencing)
		}
	})
}

func TestSettingsUseCase_Settings(t *testing.T) {
	t.Run("defaults when unset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewSettingsUseCase(repo)
		repo.EXPECT().GetSettings(gomock.Any()).Return(entities.AppSettings{}, false, nil)

		s, err := uc.GetSettings(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !s.AISettings.Enabled || s.AISettings.EstimationStyle != entities.EstimationStandard {
			t.Fatalf("unexpected defaults: %+v", s.AISettings)
		}
	})

	t.Run("rejects unknown estimation style", func(t *testing.T) {
		uc := NewSettingsUseCase(nil)
		_, err := uc.SaveSettings(context.Background(), entities.AppSettings{
			AISettings: entities.AISettings{EstimationStyle: "Reckless"},
		})
		if !errors.Is(err, ErrInvalidSettings) {
			t.Fatalf("expected ErrInvalidSettings, got %v", err)
		}
	})

	t.Run("empty style normalized to standard", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewSettingsUseCase(repo)
		repo.EXPECT().SaveSettings(gomock.Any(), gomock.Any()).Return(nil)

		s, err := uc.SaveSettings(context.Background(), entities.AppSettings{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.AISettings.EstimationStyle != entities.EstimationStandard {
			t.Fatalf("expected standard style, got %q", s.AISettings.EstimationStyle)
		}
	})
}
