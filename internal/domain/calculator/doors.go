package calculator

import (
	"fmt"

	"bidworks/internal/domain/entities"
)

type DoorType string

const (
	DoorExterior DoorType = "exterior"
	DoorInterior DoorType = "interior"
)

type doorStyle struct {
	Label       string
	PriceFactor float64
}

var doorStyles = map[DoorType]map[string]doorStyle{
	DoorExterior: {
		"standard":   {Label: "Standard Entry", PriceFactor: 1},
		"steel":      {Label: "Steel Security", PriceFactor: 1.2},
		"fiberglass": {Label: "Fiberglass", PriceFactor: 1.4},
		"french":     {Label: "French Doors", PriceFactor: 2.5},
		"sliding":    {Label: "Sliding Patio", PriceFactor: 2.2},
	},
	DoorInterior: {
		"hollow":  {Label: "Hollow Core", PriceFactor: 0.6},
		"solid":   {Label: "Solid Core", PriceFactor: 1},
		"paneled": {Label: "6-Panel", PriceFactor: 1.1},
		"french":  {Label: "Interior French", PriceFactor: 1.8},
		"barn":    {Label: "Barn Door", PriceFactor: 2},
	},
}

const interiorDoorInstallHours = 1.5

type DoorEntry struct {
	Type            DoorType `json:"type"`
	Style           string   `json:"style"`
	Quantity        int      `json:"quantity"`
	IncludeHardware bool     `json:"includeHardware"`
}

type DoorsInput struct {
	Doors []DoorEntry `json:"doors"`
}

type DoorsResult struct {
	Breakdown
	TotalDoors      float64 `json:"totalDoors"`
	TotalLaborHours float64 `json:"totalLaborHours"`
}

// CalculateDoors prices each door entry from its base price and style factor.
// Hardware is a flat per-door add-on folded into the unit price; exterior
// doors take the configured install hours, interior ones a fixed 1.5.
func CalculateDoors(in DoorsInput, pricing entities.PricingTable) DoorsResult {
	var items []entities.LineItem
	totalDoors := 0.0
	totalHours := 0.0

	for _, d := range in.Doors {
		qty := countOf(d.Quantity)

		basePrice := pricing.Doors.Interior.Default
		installHours := interiorDoorInstallHours
		if d.Type == DoorExterior {
			basePrice = pricing.Doors.Exterior.Default
			installHours = pricing.Doors.InstallationHours
		}

		style, ok := doorStyles[d.Type][d.Style]
		if !ok {
			style = doorStyle{Label: d.Style, PriceFactor: 1}
		}
		unitPrice := basePrice * style.PriceFactor
		if d.IncludeHardware {
			unitPrice += pricing.Doors.Hardware
		}
		laborHours := installHours * qty

		typeLabel := capitalize(string(d.Type))
		items = append(items, entities.NewLineItem(
			fmt.Sprintf("%s Door - %s (qty: %.0f)", typeLabel, style.Label, qty),
			qty, "doors", unitPrice, laborHours, pricing.Doors.LaborRate,
		))
		totalDoors += qty
		totalHours += laborHours
	}

	return DoorsResult{
		Breakdown:       newBreakdown(items),
		TotalDoors:      totalDoors,
		TotalLaborHours: totalHours,
	}
}
