package ai

import (
	"context"
	"errors"
	"math"
	"testing"

	"bidworks/internal/domain/entities"
	"bidworks/internal/usecase/interfaces"
)

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{
			name: "bare object",
			in:   `{"a":1}`,
			want: `{"a":1}`,
			ok:   true,
		},
		{
			name: "markdown fenced",
			in:   "Here you go:\n```json\n{\"a\":{\"b\":2}}\n```\nLet me know!",
			want: `{"a":{"b":2}}`,
			ok:   true,
		},
		{
			name: "braces inside strings",
			in:   `prefix {"note":"use a { here and a } there","n":1} suffix`,
			want: `{"note":"use a { here and a } there","n":1}`,
			ok:   true,
		},
		{
			name: "escaped quote in string",
			in:   `{"note":"he said \"}\" loudly"}`,
			want: `{"note":"he said \"}\" loudly"}`,
			ok:   true,
		},
		{
			name: "unbalanced",
			in:   `{"a":1`,
			ok:   false,
		},
		{
			name: "no object",
			in:   "sorry, I can't produce an estimate",
			ok:   false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := extractJSON(tc.in)
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if ok && got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestParseDraft(t *testing.T) {
	valid := `Here is the estimate:
{"propertyAnalysis":{"estimatedAge":35,"estimatedSqFt":2100,"propertyType":"single_family","notes":"1990s ranch"},
"categories":[{"type":"roofing","confidence":"high","reasoning":"worn shingles",
"items":[{"description":"Architectural Shingles","quantity":24,"unit":"squares","unitPrice":115},
{"description":"Roofing Labor","quantity":36,"unit":"hours","laborHours":36,"laborRate":55}]}]}`

	t.Run("valid draft with derived fields recomputed", func(t *testing.T) {
		draft, err := parseDraft(valid)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if draft.PropertyAnalysis.EstimatedSqFt != 2100 {
			t.Fatalf("unexpected analysis: %+v", draft.PropertyAnalysis)
		}
		cat := draft.Categories[0]
		if cat.Type != entities.CategoryRoofing || cat.Confidence != entities.ConfidenceHigh {
			t.Fatalf("unexpected category: %+v", cat)
		}
		// Totals come from our formula, not the model.
		if math.Abs(cat.Items[0].Total-24*115) > 1e-9 {
			t.Fatalf("expected recomputed item total, got %v", cat.Items[0].Total)
		}
		if math.Abs(cat.Subtotal-(24*115+36*55)) > 1e-9 {
			t.Fatalf("expected recomputed subtotal, got %v", cat.Subtotal)
		}
	})

	t.Run("model-supplied totals are ignored", func(t *testing.T) {
		draft, err := parseDraft(`{"categories":[{"type":"gutters","items":[
			{"description":"Gutters","quantity":100,"unit":"lin ft","unitPrice":6,"total":999999}]}]}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if math.Abs(draft.Categories[0].Items[0].Total-600) > 1e-9 {
			t.Fatalf("expected 600, got %v", draft.Categories[0].Items[0].Total)
		}
	})

	rejects := []struct {
		name string
		in   string
	}{
		{"prose only", "I could not analyze this property."},
		{"no categories", `{"propertyAnalysis":{},"categories":[]}`},
		{"unknown category", `{"categories":[{"type":"plumbing","items":[{"description":"x"}]}]}`},
		{"duplicate category", `{"categories":[{"type":"roofing","items":[{"description":"x"}]},{"type":"roofing","items":[{"description":"y"}]}]}`},
		{"unknown confidence", `{"categories":[{"type":"roofing","confidence":"certain","items":[{"description":"x"}]}]}`},
		{"empty category", `{"categories":[{"type":"roofing","items":[]}]}`},
		{"item without description", `{"categories":[{"type":"roofing","items":[{"quantity":1}]}]}`},
		{"negative quantity", `{"categories":[{"type":"roofing","items":[{"description":"x","quantity":-2}]}]}`},
	}
	for _, tc := range rejects {
		t.Run("rejects "+tc.name, func(t *testing.T) {
			_, err := parseDraft(tc.in)
			if !errors.Is(err, interfaces.ErrAIMalformedResponse) {
				t.Fatalf("expected ErrAIMalformedResponse, got %v", err)
			}
		})
	}
}

func TestDraftGenerator_NotConfigured(t *testing.T) {
	g := NewDraftGenerator(&Client{})
	_, err := g.GenerateDraft(context.Background(), interfaces.DraftRequest{})
	if !errors.Is(err, interfaces.ErrAINotConfigured) {
		t.Fatalf("expected ErrAINotConfigured, got %v", err)
	}
}
