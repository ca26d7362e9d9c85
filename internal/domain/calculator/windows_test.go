package calculator

import (
	"testing"

	"bidworks/internal/domain/entities"
)

func TestCalculateWindows(t *testing.T) {
	pricing := entities.DefaultPricing()

	t.Run("standard double hung", func(t *testing.T) {
		res := CalculateWindows(WindowsInput{Windows: []WindowEntry{
			{Type: WindowDoubleHung, WidthIn: 36, HeightIn: 48, Quantity: 2},
		}}, pricing)

		checkBreakdown(t, res.Breakdown)
		if len(res.Items) != 1 {
			t.Fatalf("expected one item, got %d", len(res.Items))
		}
		it := res.Items[0]
		// 36x48 = 1728 sq in -> standard bucket, factor 1.0, no install surcharge.
		almostEqual(t, it.UnitPrice, 600, 1e-9, "unit price")
		almostEqual(t, it.LaborHours, 4, 1e-9, "install hours for two windows")
		almostEqual(t, it.Total, 2*600+4*60, 1e-9, "item total")
	})

	t.Run("size buckets", func(t *testing.T) {
		cases := []struct {
			name          string
			width, height float64
			factor        float64
		}{
			{"small", 24, 36, 0.8},
			{"standard", 36, 48, 1.0},
			{"large", 48, 60, 1.3},
			{"extra large", 60, 72, 1.6},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				res := CalculateWindows(WindowsInput{Windows: []WindowEntry{
					{Type: WindowCasement, WidthIn: tc.width, HeightIn: tc.height, Quantity: 1},
				}}, pricing)
				almostEqual(t, res.Items[0].UnitPrice, 750*tc.factor, 1e-9, "size factor price")
				wantHours := pricing.Windows.InstallationHours
				if tc.factor > 1 {
					wantHours *= 1.5
				}
				almostEqual(t, res.Items[0].LaborHours, wantHours, 1e-9, "install hours")
			})
		}
	})

	t.Run("entries sum individually", func(t *testing.T) {
		one := CalculateWindows(WindowsInput{Windows: []WindowEntry{
			{Type: WindowSingleHung, WidthIn: 36, HeightIn: 48, Quantity: 3},
		}}, pricing)
		three := CalculateWindows(WindowsInput{Windows: []WindowEntry{
			{Type: WindowSingleHung, WidthIn: 36, HeightIn: 48, Quantity: 1},
			{Type: WindowSingleHung, WidthIn: 36, HeightIn: 48, Quantity: 1},
			{Type: WindowSingleHung, WidthIn: 36, HeightIn: 48, Quantity: 1},
		}}, pricing)
		almostEqual(t, one.Subtotal, three.Subtotal, 1e-9, "no batch rounding")
	})

	t.Run("empty input", func(t *testing.T) {
		res := CalculateWindows(WindowsInput{}, pricing)
		checkBreakdown(t, res.Breakdown)
		almostEqual(t, res.Subtotal, 0, 1e-9, "empty subtotal")
	})

	t.Run("negative quantity clamps to zero", func(t *testing.T) {
		res := CalculateWindows(WindowsInput{Windows: []WindowEntry{
			{Type: WindowSliding, WidthIn: 36, HeightIn: 48, Quantity: -2},
		}}, pricing)
		almostEqual(t, res.Subtotal, 0, 1e-9, "clamped subtotal")
	})
}
