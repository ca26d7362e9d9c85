package calculator

import (
	"fmt"
	"math"

	"bidworks/internal/domain/entities"
)

type GutterMaterial string

const (
	GutterAluminum GutterMaterial = "aluminum"
	GutterCopper   GutterMaterial = "copper"
	GutterVinyl    GutterMaterial = "vinyl"
)

const (
	gutterHangerPrice    = 3.0 // one hanger every 2 ft
	gutterEndCapPrice    = 5.0
	gutterGuardPerFoot   = 6.0
	gutterMinimumEndCaps = 4.0 // two per run, two runs minimum
)

type GuttersInput struct {
	LinearFeet   float64        `json:"linearFeet"`
	Material     GutterMaterial `json:"material"`
	Downspouts   int            `json:"downspouts"`
	Corners      int            `json:"corners"`
	GutterGuards bool           `json:"gutterGuards"`
}

type GuttersResult struct {
	Breakdown
	LaborHours float64 `json:"laborHours"`
}

func gutterUnitPrice(p entities.GuttersPricing, m GutterMaterial) float64 {
	switch m {
	case GutterCopper:
		return p.Copper.Default
	case GutterVinyl:
		return p.Vinyl.Default
	default:
		return p.Aluminum.Default
	}
}

func gutterLabel(m GutterMaterial) string {
	switch m {
	case GutterCopper:
		return "Copper"
	case GutterVinyl:
		return "Vinyl"
	default:
		return "Aluminum"
	}
}

// CalculateGutters prices gutter runs by the linear foot with downspouts and
// corners by count, plus hanger/end-cap hardware sized off the run length.
func CalculateGutters(in GuttersInput, pricing entities.PricingTable) GuttersResult {
	feet := nonNegative(in.LinearFeet)
	downspouts := countOf(in.Downspouts)
	corners := countOf(in.Corners)

	unitPrice := gutterUnitPrice(pricing.Gutters, in.Material)
	hangers := ceil(feet / 2)
	endCaps := math.Max(gutterMinimumEndCaps, ceil(feet/50)*2)
	hardwareCost := corners*pricing.Gutters.Corner + hangers*gutterHangerPrice + endCaps*gutterEndCapPrice

	laborHours := (feet/10)*0.5 + downspouts*0.5

	items := []entities.LineItem{
		entities.NewLineItem(
			fmt.Sprintf("%s Gutters (%.0f lin ft)", gutterLabel(in.Material), feet),
			feet, "lin ft", unitPrice, 0, 0,
		),
		entities.NewLineItem(
			fmt.Sprintf("Downspouts (%.0f pcs)", downspouts),
			downspouts, "pcs", pricing.Gutters.Downspout, 0, 0,
		),
		entities.NewLineItem("Corners, Hangers & End Caps", 1, "lot", hardwareCost, 0, 0),
	}
	if in.GutterGuards {
		items = append(items, entities.NewLineItem("Gutter Guards", feet, "lin ft", gutterGuardPerFoot, 0, 0))
	}
	items = append(items, entities.NewLaborItem("Installation Labor", laborHours, pricing.Gutters.LaborRate))

	return GuttersResult{
		Breakdown:  newBreakdown(items),
		LaborHours: laborHours,
	}
}
