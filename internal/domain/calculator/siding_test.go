package calculator

import (
	"math"
	"testing"

	"bidworks/internal/domain/entities"
)

func TestCalculateSiding(t *testing.T) {
	pricing := entities.DefaultPricing()

	t.Run("vinyl walls with openings", func(t *testing.T) {
		res := CalculateSiding(SidingInput{
			WallHeight:   9,
			Perimeter:    150,
			OpeningsArea: 200,
			Material:     SidingVinyl,
			Corners:      4,
			WastePercent: 10,
		}, pricing)

		checkBreakdown(t, res.Breakdown)
		almostEqual(t, res.NetArea, 9*150-200, 1e-9, "net area")
		almostEqual(t, res.AreaWithWaste, res.NetArea*1.10, 1e-9, "area with waste")
		almostEqual(t, res.LaborHours, (res.AreaWithWaste/100)*0.8, 1e-9, "vinyl labor hours")

		// jChannel = sqrt(200)*8 lin ft at $2 — the field heuristic, verbatim.
		almostEqual(t, res.Items[1].Quantity, math.Sqrt(200)*8, 1e-9, "j-channel feet")
		// corner pieces = ceil(9/10 * 4 * 2) = 8
		almostEqual(t, res.Items[2].Quantity, 8, 1e-9, "corner pieces")
		// starter strip runs the full perimeter at $1.50.
		almostEqual(t, res.Items[3].Total, 150*1.5, 1e-9, "starter strip")
	})

	t.Run("fiber cement labor multiplier", func(t *testing.T) {
		vinyl := CalculateSiding(SidingInput{WallHeight: 9, Perimeter: 100, Material: SidingVinyl}, pricing)
		hardie := CalculateSiding(SidingInput{WallHeight: 9, Perimeter: 100, Material: SidingFiberCement}, pricing)
		almostEqual(t, hardie.LaborHours, vinyl.LaborHours*1.5, 1e-9, "fiber cement multiplier")
	})

	t.Run("openings larger than walls clamp to zero area", func(t *testing.T) {
		res := CalculateSiding(SidingInput{WallHeight: 8, Perimeter: 10, OpeningsArea: 500, Material: SidingWood}, pricing)
		checkBreakdown(t, res.Breakdown)
		almostEqual(t, res.NetArea, 0, 1e-9, "clamped net area")
	})
}
