package calculator

import (
	"fmt"

	"bidworks/internal/domain/entities"
)

const paintSuppliesShare = 0.1 // brushes, rollers, tape etc. as a share of paint cost

type PaintingInput struct {
	InteriorSqFt float64 `json:"interiorSqFt"`
	ExteriorSqFt float64 `json:"exteriorSqFt"`
	CeilingSqFt  float64 `json:"ceilingSqFt"`
	TrimLinFt    float64 `json:"trimLinFt"`
	Coats        int     `json:"coats"`
	IncludePrime bool    `json:"includePrimer"`
}

type PaintingResult struct {
	Breakdown
	TotalGallons    float64 `json:"totalGallons"`
	TotalLaborHours float64 `json:"totalLaborHours"`
}

// CalculatePainting runs four independent paint tracks (interior walls,
// ceilings, trim, exterior), each converting area to whole gallons at the
// configured coverage. Primer gallons are computed without the coat
// multiplier; supplies add 10% of the total paint cost.
func CalculatePainting(in PaintingInput, pricing entities.PricingTable) PaintingResult {
	intSqFt := nonNegative(in.InteriorSqFt)
	extSqFt := nonNegative(in.ExteriorSqFt)
	ceilingSqFt := nonNegative(in.CeilingSqFt)
	trimLinFt := nonNegative(in.TrimLinFt)
	coats := positiveOr(float64(in.Coats), 2)

	perGallon := pricing.Painting.SqFtPerGallon
	intPrice := pricing.Painting.Interior.Default
	extPrice := pricing.Painting.Exterior.Default
	laborRate := pricing.Painting.LaborRate

	intGallons := ceil((intSqFt / perGallon) * coats)
	ceilingGallons := ceil((ceilingSqFt / perGallon) * coats)
	trimSqFt := trimLinFt * 0.5 // linear-feet to sq ft proxy
	trimGallons := ceil((trimSqFt / perGallon) * coats)
	extGallons := ceil((extSqFt / perGallon) * coats)

	var intPrimerGallons, extPrimerGallons float64
	if in.IncludePrime {
		intPrimerGallons = ceil(intSqFt / perGallon)
		extPrimerGallons = ceil(extSqFt / perGallon)
	}

	// Labor: interior ~100 sq ft/hour, ceilings ~80, trim ~60 lin ft/hour,
	// exterior ~75; priming adds a faster pass.
	var intLaborHours, ceilingLaborHours, trimLaborHours, extLaborHours float64
	if intSqFt > 0 {
		intLaborHours = (intSqFt / 100) * coats
		if intPrimerGallons > 0 {
			intLaborHours += intSqFt / 150
		}
	}
	if ceilingSqFt > 0 {
		ceilingLaborHours = (ceilingSqFt / 80) * coats
	}
	if trimLinFt > 0 {
		trimLaborHours = (trimLinFt / 60) * coats
	}
	if extSqFt > 0 {
		extLaborHours = (extSqFt / 75) * coats
		if extPrimerGallons > 0 {
			extLaborHours += extSqFt / 100
		}
	}

	var items []entities.LineItem
	if intSqFt > 0 {
		items = append(items, entities.NewLineItem(
			fmt.Sprintf("Interior Wall Paint (%.0f gallons, %.0f coats)", intGallons, coats),
			intGallons, "gallons", intPrice, intLaborHours, laborRate,
		))
	}
	if ceilingSqFt > 0 {
		items = append(items, entities.NewLineItem(
			fmt.Sprintf("Ceiling Paint (%.0f gallons)", ceilingGallons),
			ceilingGallons, "gallons", intPrice, ceilingLaborHours, laborRate,
		))
	}
	if trimLinFt > 0 {
		items = append(items, entities.NewLineItem(
			fmt.Sprintf("Trim Paint (%.0f gallons, %.0f lin ft)", trimGallons, trimLinFt),
			trimGallons, "gallons", intPrice, trimLaborHours, laborRate,
		))
	}
	if extSqFt > 0 {
		items = append(items, entities.NewLineItem(
			fmt.Sprintf("Exterior Paint (%.0f gallons, %.0f coats)", extGallons, coats),
			extGallons, "gallons", extPrice, extLaborHours, laborRate,
		))
	}
	if intPrimerGallons+extPrimerGallons > 0 {
		items = append(items, entities.NewLineItem(
			fmt.Sprintf("Primer (%.0f gallons)", intPrimerGallons+extPrimerGallons),
			intPrimerGallons+extPrimerGallons, "gallons", pricing.Painting.Primer, 0, 0,
		))
	}

	paintCost := intGallons*intPrice + ceilingGallons*intPrice + trimGallons*intPrice + extGallons*extPrice
	if paintCost > 0 {
		supplies := paintCost * paintSuppliesShare
		items = append(items, entities.NewLineItem(
			"Painting Supplies (brushes, rollers, tape, etc.)",
			1, "lot", supplies, 0, 0,
		))
	}

	return PaintingResult{
		Breakdown:       newBreakdown(items),
		TotalGallons:    intGallons + ceilingGallons + trimGallons + extGallons + intPrimerGallons + extPrimerGallons,
		TotalLaborHours: intLaborHours + ceilingLaborHours + trimLaborHours + extLaborHours,
	}
}
