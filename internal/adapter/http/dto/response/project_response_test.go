package response

import (
	"testing"

	"bidworks/internal/domain/entities"
)

func TestFromProject(t *testing.T) {
	p := entities.Project{
		ID:         "proj-1",
		ClientName: "Dana Whitfield",
		Status:     entities.ProjectStatusQuote,
		Categories: []entities.Category{{
			Type:  entities.CategoryWindows,
			Items: []entities.LineItem{entities.NewLineItem("Vinyl Windows", 2, "each", 600, 4, 60)},
		}},
	}
	p.Recalculate()

	resp := FromProject(p)
	if resp.ID != "proj-1" || resp.Status != "quote" {
		t.Fatalf("unexpected header fields: %+v", resp)
	}
	if len(resp.Categories) != 1 || resp.Categories[0].Type != "windows" {
		t.Fatalf("unexpected categories: %+v", resp.Categories)
	}
	if resp.Categories[0].Items[0].Total != 1440 {
		t.Fatalf("unexpected item total: %v", resp.Categories[0].Items[0].Total)
	}
	if resp.Total != p.Total {
		t.Fatalf("expected total %v, got %v", p.Total, resp.Total)
	}

	t.Run("empty project keeps empty category list", func(t *testing.T) {
		resp := FromProject(entities.Project{ID: "proj-2"})
		if resp.Categories == nil || len(resp.Categories) != 0 {
			t.Fatalf("expected empty non-nil categories, got %v", resp.Categories)
		}
	})
}
