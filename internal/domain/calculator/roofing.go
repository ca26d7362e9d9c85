package calculator

import (
	"fmt"

	"bidworks/internal/domain/entities"
)

type RoofingMaterial string

const (
	RoofingShingles RoofingMaterial = "shingles"
	RoofingMetal    RoofingMaterial = "metal"
	RoofingTile     RoofingMaterial = "tile"
)

// pitchMultipliers maps rise-per-12 pitch to the roof area factor
// sqrt(1+(rise/12)^2), precomputed for pitches 1 through 12.
var pitchMultipliers = map[string]float64{
	"1": 1.003, "2": 1.014, "3": 1.031, "4": 1.054,
	"5": 1.083, "6": 1.118, "7": 1.157, "8": 1.202,
	"9": 1.250, "10": 1.302, "11": 1.356, "12": 1.414,
}

const (
	underlaymentRollPrice = 45.0 // covers 4 squares
	ridgeCapPrice         = 35.0 // one per ~500 sq ft of roof
	nailBoxPrice          = 25.0 // one per ~3 ordered squares
)

type RoofingInput struct {
	FloorArea    float64         `json:"floorArea"`
	Pitch        string          `json:"pitch"`
	Material     RoofingMaterial `json:"material"`
	WastePercent float64         `json:"wastePercent"`
}

// RoofingResult carries the breakdown plus the intermediate figures shown to
// the estimator.

type RoofingResult struct {
	Breakdown
	ActualRoofArea float64 `json:"actualRoofArea"`
	Squares        float64 `json:"squares"`
	OrderedSquares float64 `json:"orderedSquares"`
	LaborHours     float64 `json:"laborHours"`
}

func roofingUnitPrice(p entities.RoofingPricing, m RoofingMaterial) float64 {
	switch m {
	case RoofingMetal:
		return p.Metal.Default
	case RoofingTile:
		return p.Tile.Default
	default:
		return p.Shingles.Default
	}
}

func roofingHoursPerSquare(m RoofingMaterial) float64 {
	switch m {
	case RoofingTile:
		return 3
	case RoofingMetal:
		return 2
	default:
		return 1.5
	}
}

func roofingLabel(m RoofingMaterial) string {
	switch m {
	case RoofingMetal:
		return "Metal"
	case RoofingTile:
		return "Tile"
	default:
		return "Shingles"
	}
}

// CalculateRoofing prices a full tear-off and replacement. Floor area is
// scaled by the pitch multiplier, converted to roofing squares (100 sq ft)
// and padded by the waste factor before pricing.
func CalculateRoofing(in RoofingInput, pricing entities.PricingTable) RoofingResult {
	floorArea := nonNegative(in.FloorArea)
	pitchFactor, ok := pitchMultipliers[in.Pitch]
	if !ok {
		pitchFactor = pitchMultipliers["4"]
	}
	wastePct := positiveOr(in.WastePercent, 15)

	actualArea := floorArea * pitchFactor
	squares := actualArea / 100
	orderedSquares := squares * (1 + wastePct/100)

	unitPrice := roofingUnitPrice(pricing.Roofing, in.Material)
	laborHours := orderedSquares * roofingHoursPerSquare(in.Material)

	underlaymentRolls := ceil(squares / 4)
	ridgeCaps := ceil(actualArea / 500)
	nailBoxes := ceil(orderedSquares / 3)

	items := []entities.LineItem{
		entities.NewLineItem(
			fmt.Sprintf("%s Roofing (%.1f squares)", roofingLabel(in.Material), orderedSquares),
			orderedSquares, "squares", unitPrice, 0, 0,
		),
		entities.NewLineItem("Underlayment", underlaymentRolls, "rolls", underlaymentRollPrice, 0, 0),
		entities.NewLineItem("Ridge Caps", ridgeCaps, "pcs", ridgeCapPrice, 0, 0),
		entities.NewLineItem("Roofing Nails", nailBoxes, "boxes", nailBoxPrice, 0, 0),
		entities.NewLaborItem("Installation Labor", laborHours, pricing.Roofing.LaborRate),
	}

	return RoofingResult{
		Breakdown:      newBreakdown(items),
		ActualRoofArea: actualArea,
		Squares:        squares,
		OrderedSquares: orderedSquares,
		LaborHours:     laborHours,
	}
}
