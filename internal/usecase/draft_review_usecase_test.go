package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"bidworks/internal/domain/entities"
	"bidworks/internal/usecase/interfaces"
	mock_interfaces "bidworks/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func sampleDraft() entities.EstimateDraft {
	return entities.EstimateDraft{
		PropertyAnalysis: entities.PropertyAnalysis{
			EstimatedSqFt: 2100,
			PropertyType:  "single_family",
			Notes:         "1990s ranch, original roof",
		},
		Categories: []entities.Category{
			{
				Type:       entities.CategoryRoofing,
				Confidence: entities.ConfidenceHigh,
				Reasoning:  "roof is past service life",
				Items: []entities.LineItem{
					entities.NewLineItem("Architectural Shingles", 24, "squares", 115, 0, 0),
					entities.NewLaborItem("Roofing Labor", 36, 55),
				},
			},
			{
				Type:       entities.CategoryGutters,
				Confidence: entities.ConfidenceMedium,
				Items: []entities.LineItem{
					entities.NewLineItem("Aluminum Gutters", 150, "lin ft", 6, 0, 0),
				},
			},
		},
	}
}

type reviewFixture struct {
	uc        *DraftReviewUseCase
	projects  *mock_interfaces.MockIProjectRepository
	settings  *mock_interfaces.MockISettingsRepository
	generator *mock_interfaces.MockIDraftGenerator
}

func newReviewFixture(t *testing.T) reviewFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	projects := mock_interfaces.NewMockIProjectRepository(ctrl)
	settings := mock_interfaces.NewMockISettingsRepository(ctrl)
	generator := mock_interfaces.NewMockIDraftGenerator(ctrl)
	return reviewFixture{
		uc:        NewDraftReviewUseCase(generator, projects, settings),
		projects:  projects,
		settings:  settings,
		generator: generator,
	}
}

func (f reviewFixture) expectEnabledSettings() {
	f.settings.EXPECT().GetSettings(gomock.Any()).Return(entities.DefaultSettings(), true, nil).AnyTimes()
	f.settings.EXPECT().GetPricing(gomock.Any()).Return(entities.DefaultPricing(), true, nil).AnyTimes()
}

func (f reviewFixture) openSession(t *testing.T) ReviewSession {
	f.expectEnabledSettings()
	f.projects.EXPECT().GetByID(gomock.Any(), "proj-1").Return(projectWith(), nil)
	f.generator.EXPECT().GenerateDraft(gomock.Any(), gomock.Any()).Return(sampleDraft(), nil)

	session, err := f.uc.Start(context.Background(), "proj-1", "roof and gutters", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return session
}

func TestDraftReviewUseCase_Start(t *testing.T) {
	t.Run("ai disabled", func(t *testing.T) {
		f := newReviewFixture(t)
		f.projects.EXPECT().GetByID(gomock.Any(), "proj-1").Return(projectWith(), nil)
		disabled := entities.DefaultSettings()
		disabled.AISettings.Enabled = false
		f.settings.EXPECT().GetSettings(gomock.Any()).Return(disabled, true, nil)

		_, err := f.uc.Start(context.Background(), "proj-1", "", nil)
		if !errors.Is(err, ErrAIDisabled) {
			t.Fatalf("expected ErrAIDisabled, got %v", err)
		}
	})

	t.Run("generator error passes through", func(t *testing.T) {
		f := newReviewFixture(t)
		f.expectEnabledSettings()
		f.projects.EXPECT().GetByID(gomock.Any(), "proj-1").Return(projectWith(), nil)
		f.generator.EXPECT().GenerateDraft(gomock.Any(), gomock.Any()).Return(entities.EstimateDraft{}, interfaces.ErrAIMalformedResponse)

		_, err := f.uc.Start(context.Background(), "proj-1", "", nil)
		if !errors.Is(err, interfaces.ErrAIMalformedResponse) {
			t.Fatalf("expected ErrAIMalformedResponse, got %v", err)
		}
	})

	t.Run("everything starts selected", func(t *testing.T) {
		f := newReviewFixture(t)
		session := f.openSession(t)

		if len(session.Categories) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(session.Categories))
		}
		for _, c := range session.Categories {
			if !c.Selected {
				t.Fatalf("expected category %s selected", c.Type)
			}
			for _, it := range c.Items {
				if !it.Selected {
					t.Fatalf("expected all items selected in %s", c.Type)
				}
			}
		}
		// 24*115 + 36*55 = 4740; gutters 900.
		if math.Abs(session.SelectedSubtotal()-(4740+900)) > 1e-9 {
			t.Fatalf("unexpected selected subtotal %v", session.SelectedSubtotal())
		}
	})

	t.Run("request pricing rides along", func(t *testing.T) {
		f := newReviewFixture(t)
		f.expectEnabledSettings()
		f.projects.EXPECT().GetByID(gomock.Any(), "proj-1").Return(projectWith(), nil)
		f.generator.EXPECT().GenerateDraft(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req interfaces.DraftRequest) (entities.EstimateDraft, error) {
				if req.Pricing.Roofing.Shingles.Default != 115 {
					t.Fatalf("expected price book in request, got %+v", req.Pricing.Roofing)
				}
				return sampleDraft(), nil
			})

		if _, err := f.uc.Start(context.Background(), "proj-1", "", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestDraftReviewUseCase_Toggles(t *testing.T) {
	t.Run("category toggle cascades to items", func(t *testing.T) {
		f := newReviewFixture(t)
		session := f.openSession(t)

		updated, err := f.uc.ToggleCategory(session.ID, entities.CategoryRoofing, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		roofing := updated.Categories[0]
		if roofing.Selected {
			t.Fatalf("expected roofing deselected")
		}
		for _, it := range roofing.Items {
			if it.Selected {
				t.Fatalf("expected cascade to items")
			}
		}
		if math.Abs(updated.SelectedSubtotal()-900) > 1e-9 {
			t.Fatalf("expected only gutters counted, got %v", updated.SelectedSubtotal())
		}
	})

	t.Run("selecting an item reselects its category", func(t *testing.T) {
		f := newReviewFixture(t)
		session := f.openSession(t)

		if _, err := f.uc.ToggleCategory(session.ID, entities.CategoryRoofing, false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		updated, err := f.uc.ToggleItem(session.ID, entities.CategoryRoofing, 0, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		roofing := updated.Categories[0]
		if !roofing.Selected {
			t.Fatalf("expected category reselected by item")
		}
		if !roofing.Items[0].Selected || roofing.Items[1].Selected {
			t.Fatalf("expected only first item selected: %+v", roofing.Items)
		}
	})

	t.Run("deselecting the last selected item deselects the category", func(t *testing.T) {
		f := newReviewFixture(t)
		session := f.openSession(t)

		updated, err := f.uc.ToggleItem(session.ID, entities.CategoryGutters, 0, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		gutters := updated.Categories[1]
		if gutters.Selected {
			t.Fatalf("expected gutters deselected once its only item is off")
		}
		if math.Abs(updated.SelectedSubtotal()-4740) > 1e-9 {
			t.Fatalf("expected only roofing counted, got %v", updated.SelectedSubtotal())
		}
	})

	t.Run("category stays selected while any item is", func(t *testing.T) {
		f := newReviewFixture(t)
		session := f.openSession(t)

		updated, err := f.uc.ToggleItem(session.ID, entities.CategoryRoofing, 0, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		roofing := updated.Categories[0]
		if !roofing.Selected {
			t.Fatalf("expected roofing still selected, second item is on")
		}
	})

	t.Run("unknown session", func(t *testing.T) {
		f := newReviewFixture(t)
		_, err := f.uc.ToggleCategory("nope", entities.CategoryRoofing, true)
		if !errors.Is(err, ErrReviewNotFound) {
			t.Fatalf("expected ErrReviewNotFound, got %v", err)
		}
	})
}

func TestDraftReviewUseCase_UpdateItem(t *testing.T) {
	f := newReviewFixture(t)
	session := f.openSession(t)

	updated, err := f.uc.UpdateItem(session.ID, entities.CategoryGutters, 0,
		entities.LineItem{Description: "Copper Gutters", Quantity: 150, Unit: "lin ft", UnitPrice: 32})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	gutters := updated.Categories[1]
	if math.Abs(gutters.Items[0].Item.Total-4800) > 1e-9 {
		t.Fatalf("expected recomputed total 4800, got %v", gutters.Items[0].Item.Total)
	}
	if math.Abs(gutters.Subtotal-4800) > 1e-9 {
		t.Fatalf("expected subtotal recomputed, got %v", gutters.Subtotal)
	}
}

func TestDraftReviewUseCase_Accept(t *testing.T) {
	t.Run("accept selected filters items and drops empty categories", func(t *testing.T) {
		f := newReviewFixture(t)
		session := f.openSession(t)

		// Deselect the roofing labor item and the whole gutters category.
		if _, err := f.uc.ToggleItem(session.ID, entities.CategoryRoofing, 1, false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := f.uc.ToggleCategory(session.ID, entities.CategoryGutters, false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		f.projects.EXPECT().GetByID(gomock.Any(), "proj-1").Return(projectWith(), nil)
		var saved entities.Project
		f.projects.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) {
				saved = p
				return p, nil
			})

		result, err := f.uc.AcceptSelected(context.Background(), session.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(saved.Categories) != 1 || saved.Categories[0].Type != entities.CategoryRoofing {
			t.Fatalf("unexpected categories: %+v", saved.Categories)
		}
		if len(saved.Categories[0].Items) != 1 {
			t.Fatalf("expected deselected item dropped: %+v", saved.Categories[0].Items)
		}
		// 24*115 = 2760, tax 8%.
		if math.Abs(result.Subtotal-2760) > 1e-9 || math.Abs(result.Total-2760*1.08) > 1e-9 {
			t.Fatalf("unexpected totals: %v / %v", result.Subtotal, result.Total)
		}

		// Session is consumed.
		if _, err := f.uc.Get(session.ID); !errors.Is(err, ErrReviewNotFound) {
			t.Fatalf("expected session gone, got %v", err)
		}
	})

	t.Run("accept all ignores selection and keeps edits", func(t *testing.T) {
		f := newReviewFixture(t)
		session := f.openSession(t)

		if _, err := f.uc.ToggleCategory(session.ID, entities.CategoryGutters, false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := f.uc.UpdateItem(session.ID, entities.CategoryRoofing, 0,
			entities.LineItem{Description: "Architectural Shingles", Quantity: 26, Unit: "squares", UnitPrice: 115}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		f.projects.EXPECT().GetByID(gomock.Any(), "proj-1").Return(projectWith(), nil)
		f.projects.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) { return p, nil })

		result, err := f.uc.AcceptAll(context.Background(), session.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(result.Categories) != 2 {
			t.Fatalf("expected both categories committed, got %d", len(result.Categories))
		}
		want := 26*115.0 + 36*55.0 + 900
		if math.Abs(result.Subtotal-want) > 1e-9 {
			t.Fatalf("expected subtotal %v, got %v", want, result.Subtotal)
		}
	})

	t.Run("accepted category replaces existing of same type", func(t *testing.T) {
		f := newReviewFixture(t)
		session := f.openSession(t)

		existing := projectWith(entities.Category{
			Type:  entities.CategoryRoofing,
			Items: []entities.LineItem{entities.NewLineItem("Old Roof Patch", 1, "lot", 500, 0, 0)},
		})
		f.projects.EXPECT().GetByID(gomock.Any(), "proj-1").Return(existing, nil)
		var saved entities.Project
		f.projects.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) {
				saved = p
				return p, nil
			})

		if _, err := f.uc.AcceptAll(context.Background(), session.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		roofing := saved.Category(entities.CategoryRoofing)
		if roofing == nil || len(roofing.Items) != 2 || roofing.Items[0].Description != "Architectural Shingles" {
			t.Fatalf("expected wholesale replacement: %+v", roofing)
		}
	})

	t.Run("nothing selected", func(t *testing.T) {
		f := newReviewFixture(t)
		session := f.openSession(t)

		if _, err := f.uc.ToggleCategory(session.ID, entities.CategoryRoofing, false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := f.uc.ToggleCategory(session.ID, entities.CategoryGutters, false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err := f.uc.AcceptSelected(context.Background(), session.ID)
		if !errors.Is(err, ErrNothingSelected) {
			t.Fatalf("expected ErrNothingSelected, got %v", err)
		}
	})
}

func TestDraftReviewUseCase_Regenerate(t *testing.T) {
	t.Run("replaces draft and resets selection", func(t *testing.T) {
		f := newReviewFixture(t)
		session := f.openSession(t)

		if _, err := f.uc.ToggleCategory(session.ID, entities.CategoryRoofing, false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		fresh := sampleDraft()
		fresh.Categories = fresh.Categories[:1]
		f.generator.EXPECT().GenerateDraft(gomock.Any(), gomock.Any()).Return(fresh, nil)

		updated, err := f.uc.Regenerate(context.Background(), session.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(updated.Categories) != 1 || !updated.Categories[0].Selected {
			t.Fatalf("expected fresh fully-selected draft: %+v", updated.Categories)
		}
	})

	t.Run("stale regeneration loses to the newer one", func(t *testing.T) {
		f := newReviewFixture(t)
		session := f.openSession(t)

		started := make(chan struct{})
		release := make(chan struct{})
		slowDone := make(chan error, 1)

		slow := f.generator.EXPECT().GenerateDraft(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ interfaces.DraftRequest) (entities.EstimateDraft, error) {
				close(started)
				<-release
				return sampleDraft(), nil
			})
		f.generator.EXPECT().GenerateDraft(gomock.Any(), gomock.Any()).After(slow).Return(sampleDraft(), nil)

		go func() {
			_, err := f.uc.Regenerate(context.Background(), session.ID)
			slowDone <- err
		}()
		<-started

		// Second request bumps the generation while the first is in flight.
		if _, err := f.uc.Regenerate(context.Background(), session.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		close(release)

		if err := <-slowDone; !errors.Is(err, ErrRegenerateSuperseded) {
			t.Fatalf("expected ErrRegenerateSuperseded, got %v", err)
		}
	})
}

func TestDraftReviewUseCase_Cancel(t *testing.T) {
	f := newReviewFixture(t)
	session := f.openSession(t)

	if err := f.uc.Cancel(session.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := f.uc.Get(session.ID); !errors.Is(err, ErrReviewNotFound) {
		t.Fatalf("expected session gone, got %v", err)
	}
	if err := f.uc.Cancel(session.ID); !errors.Is(err, ErrReviewNotFound) {
		t.Fatalf("expected ErrReviewNotFound, got %v", err)
	}
}
