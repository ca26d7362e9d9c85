package calculator

import (
	"strings"
	"testing"

	"bidworks/internal/domain/entities"
)

func TestCalculatePainting(t *testing.T) {
	pricing := entities.DefaultPricing()

	t.Run("interior two coats with primer", func(t *testing.T) {
		res := CalculatePainting(PaintingInput{
			InteriorSqFt: 1400,
			Coats:        2,
			IncludePrime: true,
		}, pricing)

		checkBreakdown(t, res.Breakdown)
		// 1400/350 * 2 coats = 8 gallons; primer 1400/350 = 4 gallons, no coat multiplier.
		almostEqual(t, res.Items[0].Quantity, 8, 1e-9, "interior gallons")
		var primer *entities.LineItem
		for i := range res.Items {
			if strings.HasPrefix(res.Items[i].Description, "Primer") {
				primer = &res.Items[i]
			}
		}
		if primer == nil {
			t.Fatalf("primer item missing")
		}
		almostEqual(t, primer.Quantity, 4, 1e-9, "primer gallons")
		// Labor: walls (1400/100)*2 plus primer pass 1400/150.
		almostEqual(t, res.Items[0].LaborHours, 28+1400.0/150, 1e-9, "interior labor hours")
	})

	t.Run("supplies are ten percent of paint cost", func(t *testing.T) {
		res := CalculatePainting(PaintingInput{ExteriorSqFt: 900, Coats: 2}, pricing)
		// 900/350*2 -> ceil(5.142) = 6 gallons exterior at $45.
		var supplies *entities.LineItem
		for i := range res.Items {
			if strings.HasPrefix(res.Items[i].Description, "Painting Supplies") {
				supplies = &res.Items[i]
			}
		}
		if supplies == nil {
			t.Fatalf("supplies item missing")
		}
		almostEqual(t, supplies.Total, 6*45*0.1, 1e-9, "supplies cost")
	})

	t.Run("trim converts linear feet to area proxy", func(t *testing.T) {
		res := CalculatePainting(PaintingInput{TrimLinFt: 700, Coats: 2}, pricing)
		checkBreakdown(t, res.Breakdown)
		// 700*0.5 = 350 sq ft -> 1 gallon per coat.
		almostEqual(t, res.Items[0].Quantity, 2, 1e-9, "trim gallons")
		almostEqual(t, res.Items[0].LaborHours, (700.0/60)*2, 1e-9, "trim labor hours")
	})

	t.Run("blank input produces no items", func(t *testing.T) {
		res := CalculatePainting(PaintingInput{}, pricing)
		if len(res.Items) != 0 {
			t.Fatalf("expected no items, got %d", len(res.Items))
		}
		almostEqual(t, res.Subtotal, 0, 1e-9, "empty subtotal")
	})
}
