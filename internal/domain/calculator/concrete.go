package calculator

import (
	"fmt"

	"bidworks/internal/domain/entities"
)

type ConcreteFinish string

const (
	FinishBroom   ConcreteFinish = "broom"
	FinishExposed ConcreteFinish = "exposed"
	FinishStamped ConcreteFinish = "stamped"
)

const (
	concreteWasteFactor  = 1.10
	rebarPerFoot         = 1.25
	wireMeshSheetPrice   = 35.0 // 5x10 sheet covers 50 sq ft
	formBoardPrice       = 6.0  // 2x4x8
	stakePrice           = 2.0
	formOilPrice         = 25.0
	pumpTruckPrice       = 350.0
	pumpTruckYardMinimum = 5.0
)

type ConcreteInput struct {
	LengthFt    float64        `json:"length"`
	WidthFt     float64        `json:"width"`
	ThicknessIn float64        `json:"thickness"`
	Rebar       bool           `json:"includeRebar"`
	WireMesh    bool           `json:"includeWireMesh"`
	Finish      ConcreteFinish `json:"finishType"`
}

type ConcreteResult struct {
	Breakdown
	AreaSqFt     float64 `json:"areaSqFt"`
	VolumeCuFt   float64 `json:"volumeCuFt"`
	CubicYards   float64 `json:"cubicYards"`
	OrderedYards float64 `json:"orderedYards"`
	LaborHours   float64 `json:"laborHours"`
}

func concreteFinishRates(f ConcreteFinish) (surchargePerSqFt, laborPerSqFt float64) {
	switch f {
	case FinishStamped:
		return 8, 0.05
	case FinishExposed:
		return 3, 0.02
	default:
		return 0, 0
	}
}

// CalculateConcrete prices a rectangular slab. The ready-mix order is the
// computed volume plus 10% waste rounded up to whole yards; rebar and wire
// mesh are mutually exclusive with rebar winning when both are set.
func CalculateConcrete(in ConcreteInput, pricing entities.PricingTable) ConcreteResult {
	length := nonNegative(in.LengthFt)
	width := nonNegative(in.WidthFt)
	thickness := positiveOr(in.ThicknessIn, 4)

	area := length * width
	volume := area * (thickness / 12)
	cubicYards := volume / 27
	orderedYards := ceil(cubicYards * concreteWasteFactor)

	items := []entities.LineItem{
		entities.NewLineItem(
			fmt.Sprintf("Ready-Mix Concrete (%.0f cubic yards)", orderedYards),
			orderedYards, "cu yd", pricing.Concrete.PerCubicYard.Default, 0, 0,
		),
	}

	if in.Rebar {
		// Grid every 18 inches both ways, one extra run per direction.
		lengthRows := ceil(width/1.5) + 1
		widthRows := ceil(length/1.5) + 1
		rebarFeet := ceil(lengthRows*length + widthRows*width)
		items = append(items, entities.NewLineItem(
			fmt.Sprintf("Rebar Grid (%.0f lin ft)", rebarFeet),
			rebarFeet, "lin ft", rebarPerFoot, 0, 0,
		))
	} else if in.WireMesh {
		sheets := ceil(area / 50)
		items = append(items, entities.NewLineItem(
			fmt.Sprintf("Wire Mesh (%.0f sheets)", sheets),
			sheets, "sheets", wireMeshSheetPrice, 0, 0,
		))
	}

	perimeter := 2 * (length + width)
	formBoards := ceil(perimeter/8) * 2 // inside and outside runs
	stakes := ceil(perimeter / 3)
	formsCost := formBoards*formBoardPrice + stakes*stakePrice + formOilPrice
	items = append(items, entities.NewLineItem("Forms, Stakes & Supplies", 1, "lot", formsCost, 0, 0))

	finishSurcharge, finishLaborPerSqFt := concreteFinishRates(in.Finish)
	if finishSurcharge > 0 && area > 0 {
		items = append(items, entities.NewLineItem(
			fmt.Sprintf("%s Finish", capitalize(string(in.Finish))),
			area, "sq ft", finishSurcharge, 0, 0,
		))
	}

	if orderedYards > pumpTruckYardMinimum {
		items = append(items, entities.NewLineItem("Concrete Pump Truck", 1, "service", pumpTruckPrice, 0, 0))
	}

	laborHours := cubicYards*4 + perimeter*0.1 + area*finishLaborPerSqFt
	items = append(items, entities.NewLaborItem("Labor (pour, finish, cure)", laborHours, pricing.Concrete.LaborRate))

	return ConcreteResult{
		Breakdown:    newBreakdown(items),
		AreaSqFt:     area,
		VolumeCuFt:   volume,
		CubicYards:   cubicYards,
		OrderedYards: orderedYards,
		LaborHours:   laborHours,
	}
}
