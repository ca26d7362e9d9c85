package calculator

import (
	"fmt"

	"bidworks/internal/domain/entities"
)

type FenceMaterial string

const (
	FenceWood      FenceMaterial = "wood"
	FenceVinyl     FenceMaterial = "vinyl"
	FenceChainLink FenceMaterial = "chainLink"
	FenceAluminum  FenceMaterial = "aluminum"
)

var fenceMaterialLabels = map[FenceMaterial]string{
	FenceWood:      "Wood Privacy",
	FenceVinyl:     "Vinyl",
	FenceChainLink: "Chain Link",
	FenceAluminum:  "Aluminum",
}

const (
	gateHardwarePrice   = 45.0
	postCapPrice        = 5.0
	postConcreteBag     = 6.0 // one bag per post
	railPrice           = 8.0 // 2x4x8, wood fences only
	tallGateSurcharge   = 1.3 // gates above 6 ft
	fencePostLaborHours = 0.5
	fenceGateLaborHours = 1.5
)

type FencingInput struct {
	LinearFeet  float64       `json:"linearFeet"`
	HeightFt    float64       `json:"height"`
	Material    FenceMaterial `json:"material"`
	Gates       int           `json:"gates"`
	Corners     int           `json:"corners"`
	PostSpacing float64       `json:"postSpacing"`
}

type FencingResult struct {
	Breakdown
	Posts      float64 `json:"posts"`
	LaborHours float64 `json:"laborHours"`
}

func fenceUnitPrice(p entities.FencingPricing, m FenceMaterial) float64 {
	switch m {
	case FenceVinyl:
		return p.Vinyl.Default
	case FenceChainLink:
		return p.ChainLink.Default
	case FenceAluminum:
		return p.Aluminum.Default
	default:
		return p.Wood.Default
	}
}

func fenceLaborMultiplier(m FenceMaterial) float64 {
	switch m {
	case FenceVinyl:
		return 0.8
	case FenceChainLink:
		return 0.6
	case FenceAluminum:
		return 0.9
	default:
		return 1.0
	}
}

// fenceHeightFactor scales material price and base labor by fence height.
func fenceHeightFactor(height float64) float64 {
	switch {
	case height <= 4:
		return 0.7
	case height <= 6:
		return 1.0
	default:
		return 1.4
	}
}

// CalculateFencing prices a fence run: posts from spacing plus corners, the
// run itself scaled by the height factor, gates with a tall-gate surcharge,
// and per-post hardware/concrete. Rails are costed for wood fences only.
func CalculateFencing(in FencingInput, pricing entities.PricingTable) FencingResult {
	feet := nonNegative(in.LinearFeet)
	height := positiveOr(in.HeightFt, 6)
	gates := countOf(in.Gates)
	corners := countOf(in.Corners)
	spacing := positiveOr(in.PostSpacing, 8)

	posts := ceil(feet/spacing) + 1 + corners
	if feet == 0 {
		posts = 0
	}
	heightFactor := fenceHeightFactor(height)
	unitPrice := fenceUnitPrice(pricing.Fencing, in.Material) * heightFactor

	gatePrice := pricing.Fencing.Gate
	if height > 6 {
		gatePrice *= tallGateSurcharge
	}

	hardwareCost := gates*gateHardwarePrice + posts*postCapPrice
	concreteCost := posts * postConcreteBag

	var railCost float64
	if in.Material == FenceWood {
		railsPerSection := 3.0
		if height <= 4 {
			railsPerSection = 2
		}
		railCost = ceil(feet/8) * railsPerSection * railPrice
	}

	label, ok := fenceMaterialLabels[in.Material]
	if !ok {
		label = "Wood Privacy"
	}

	baseLabor := feet * 0.15 * heightFactor * fenceLaborMultiplier(in.Material)
	laborHours := baseLabor + posts*fencePostLaborHours + gates*fenceGateLaborHours

	items := []entities.LineItem{
		entities.NewLineItem(
			fmt.Sprintf("%s Fence (%.0f ft × %.0fft high)", label, feet, height),
			feet, "lin ft", unitPrice, 0, 0,
		),
		entities.NewLineItem(
			fmt.Sprintf("Posts (%.0f pcs)", posts),
			posts, "posts", pricing.Fencing.Post, 0, 0,
		),
	}
	if gates > 0 {
		items = append(items, entities.NewLineItem(
			fmt.Sprintf("Gates (%.0f × %.0fft)", gates, height),
			gates, "gates", gatePrice, 0, 0,
		))
	}
	items = append(items, entities.NewLineItem(
		"Hardware, Post Concrete & Supplies",
		1, "lot", hardwareCost+concreteCost+railCost, 0, 0,
	))
	items = append(items, entities.NewLaborItem("Installation Labor", laborHours, pricing.Fencing.LaborRate))

	return FencingResult{
		Breakdown:  newBreakdown(items),
		Posts:      posts,
		LaborHours: laborHours,
	}
}
