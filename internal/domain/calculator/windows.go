package calculator

import (
	"fmt"

	"bidworks/internal/domain/entities"
)

type WindowType string

const (
	WindowSingleHung WindowType = "singleHung"
	WindowDoubleHung WindowType = "doubleHung"
	WindowCasement   WindowType = "casement"
	WindowSliding    WindowType = "sliding"
)

var windowTypeLabels = map[WindowType]string{
	WindowSingleHung: "Single Hung",
	WindowDoubleHung: "Double Hung",
	WindowCasement:   "Casement",
	WindowSliding:    "Sliding",
}

type WindowEntry struct {
	Type     WindowType `json:"type"`
	WidthIn  float64    `json:"width"`
	HeightIn float64    `json:"height"`
	Quantity int        `json:"quantity"`
}

type WindowsInput struct {
	Windows []WindowEntry `json:"windows"`
}

type WindowsResult struct {
	Breakdown
	TotalWindows    float64 `json:"totalWindows"`
	TotalLaborHours float64 `json:"totalLaborHours"`
}

func windowBasePrice(p entities.WindowsPricing, t WindowType) float64 {
	switch t {
	case WindowSingleHung:
		return p.SingleHung.Default
	case WindowCasement:
		return p.Casement.Default
	case WindowSliding:
		return p.Sliding.Default
	default:
		return p.DoubleHung.Default
	}
}

// windowSizeFactor scales the base price by glass area in square inches.
func windowSizeFactor(width, height float64) float64 {
	area := width * height
	switch {
	case area <= 1200:
		return 0.8
	case area <= 2000:
		return 1.0
	case area <= 3000:
		return 1.3
	default:
		return 1.6
	}
}

// CalculateWindows prices each entry individually; there is no batch
// rounding, so ten small orders total the same as one big one.
func CalculateWindows(in WindowsInput, pricing entities.PricingTable) WindowsResult {
	var items []entities.LineItem
	totalWindows := 0.0
	totalHours := 0.0

	for _, w := range in.Windows {
		width := nonNegative(w.WidthIn)
		height := nonNegative(w.HeightIn)
		qty := countOf(w.Quantity)

		sizeFactor := windowSizeFactor(width, height)
		price := windowBasePrice(pricing.Windows, w.Type) * sizeFactor
		installHours := pricing.Windows.InstallationHours
		if sizeFactor > 1 {
			installHours *= 1.5
		}

		label, ok := windowTypeLabels[w.Type]
		if !ok {
			label = "Double Hung"
		}
		items = append(items, entities.NewLineItem(
			fmt.Sprintf("%s Window %.0f\"×%.0f\" (qty: %.0f)", label, width, height, qty),
			qty, "windows", price, installHours*qty, pricing.Windows.LaborRate,
		))
		totalWindows += qty
		totalHours += installHours * qty
	}

	return WindowsResult{
		Breakdown:       newBreakdown(items),
		TotalWindows:    totalWindows,
		TotalLaborHours: totalHours,
	}
}
