package calculator

import (
	"fmt"
	"math"

	"bidworks/internal/domain/entities"
)

type SidingMaterial string

const (
	SidingVinyl       SidingMaterial = "vinyl"
	SidingFiberCement SidingMaterial = "fiberCement"
	SidingWood        SidingMaterial = "wood"
)

const starterStripPerFoot = 1.5

type SidingInput struct {
	WallHeight   float64        `json:"wallHeight"`
	Perimeter    float64        `json:"perimeter"`
	OpeningsArea float64        `json:"openingsArea"` // windows/doors sq ft to subtract
	Material     SidingMaterial `json:"material"`
	Corners      int            `json:"corners"`
	WastePercent float64        `json:"wastePercent"`
}

type SidingResult struct {
	Breakdown
	NetArea       float64 `json:"netArea"`
	AreaWithWaste float64 `json:"areaWithWaste"`
	LaborHours    float64 `json:"laborHours"`
}

func sidingUnitPrice(p entities.SidingPricing, m SidingMaterial) float64 {
	switch m {
	case SidingFiberCement:
		return p.FiberCement.Default
	case SidingWood:
		return p.Wood.Default
	default:
		return p.Vinyl.Default
	}
}

func sidingLaborMultiplier(m SidingMaterial) float64 {
	switch m {
	case SidingFiberCement:
		return 1.5
	case SidingWood:
		return 1.3
	default:
		return 1.0
	}
}

func sidingLabel(m SidingMaterial) string {
	switch m {
	case SidingFiberCement:
		return "Fiber Cement (Hardie)"
	case SidingWood:
		return "Wood"
	default:
		return "Vinyl"
	}
}

// CalculateSiding prices wall cladding from height × perimeter minus
// openings, with the waste factor applied to the net area.
//
// The J-channel length (sqrt(openings)×8) is an empirical field heuristic,
// not a geometric derivation. Keep it as-is.
func CalculateSiding(in SidingInput, pricing entities.PricingTable) SidingResult {
	height := positiveOr(in.WallHeight, 9)
	perimeter := nonNegative(in.Perimeter)
	openings := nonNegative(in.OpeningsArea)
	corners := countOf(in.Corners)
	waste := positiveOr(in.WastePercent, 10)

	grossArea := height * perimeter
	netArea := grossArea - openings
	if netArea < 0 {
		netArea = 0
	}
	areaWithWaste := netArea * (1 + waste/100)

	unitPrice := sidingUnitPrice(pricing.Siding, in.Material)

	jChannelFeet := math.Sqrt(openings) * 8
	cornerPieces := ceil((height / 10) * corners * 2)

	laborHours := (areaWithWaste / 100) * 0.8 * sidingLaborMultiplier(in.Material)

	items := []entities.LineItem{
		entities.NewLineItem(
			fmt.Sprintf("%s Siding (%.0f sq ft)", sidingLabel(in.Material), areaWithWaste),
			areaWithWaste, "sq ft", unitPrice, 0, 0,
		),
		entities.NewLineItem("J-Channel & Trim", jChannelFeet, "lin ft", pricing.Siding.JChannel, 0, 0),
		entities.NewLineItem("Corner Pieces", cornerPieces, "pcs", pricing.Siding.Corner, 0, 0),
		entities.NewLineItem("Starter Strip", perimeter, "lin ft", starterStripPerFoot, 0, 0),
		entities.NewLaborItem("Installation Labor", laborHours, pricing.Siding.LaborRate),
	}

	return SidingResult{
		Breakdown:     newBreakdown(items),
		NetArea:       netArea,
		AreaWithWaste: areaWithWaste,
		LaborHours:    laborHours,
	}
}
