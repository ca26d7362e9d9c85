package calculator

import (
	"testing"

	"bidworks/internal/domain/entities"
)

func TestCalculateDoors(t *testing.T) {
	pricing := entities.DefaultPricing()

	t.Run("exterior french doors with hardware", func(t *testing.T) {
		res := CalculateDoors(DoorsInput{Doors: []DoorEntry{
			{Type: DoorExterior, Style: "french", Quantity: 1, IncludeHardware: true},
		}}, pricing)

		checkBreakdown(t, res.Breakdown)
		it := res.Items[0]
		almostEqual(t, it.UnitPrice, 1500*2.5+75, 1e-9, "style factor plus hardware")
		almostEqual(t, it.LaborHours, 3, 1e-9, "exterior install hours")
		almostEqual(t, it.LaborRate, 55, 1e-9, "labor rate")
	})

	t.Run("interior hollow core without hardware", func(t *testing.T) {
		res := CalculateDoors(DoorsInput{Doors: []DoorEntry{
			{Type: DoorInterior, Style: "hollow", Quantity: 4},
		}}, pricing)
		it := res.Items[0]
		almostEqual(t, it.UnitPrice, 350*0.6, 1e-9, "hollow core factor")
		almostEqual(t, it.LaborHours, 1.5*4, 1e-9, "interior install hours")
		checkBreakdown(t, res.Breakdown)
	})

	t.Run("unknown style keeps base price", func(t *testing.T) {
		res := CalculateDoors(DoorsInput{Doors: []DoorEntry{
			{Type: DoorInterior, Style: "pocket", Quantity: 1},
		}}, pricing)
		almostEqual(t, res.Items[0].UnitPrice, 350, 1e-9, "base price fallback")
	})

	t.Run("empty input", func(t *testing.T) {
		res := CalculateDoors(DoorsInput{}, pricing)
		almostEqual(t, res.Subtotal, 0, 1e-9, "empty subtotal")
	})
}
