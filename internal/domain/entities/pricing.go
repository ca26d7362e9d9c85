package entities

// PriceRange is a per-unit price band. Calculators read only Default; Min and
// Max bound the edit controls in clients but are not enforced here.

type PriceRange struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Default float64 `json:"default"`
}

type RoofingPricing struct {
	Shingles  PriceRange `json:"shingles"`
	Metal     PriceRange `json:"metal"`
	Tile      PriceRange `json:"tile"`
	LaborRate float64    `json:"laborRate"`
}

type WindowsPricing struct {
	SingleHung        PriceRange `json:"singleHung"`
	DoubleHung        PriceRange `json:"doubleHung"`
	Casement          PriceRange `json:"casement"`
	Sliding           PriceRange `json:"sliding"`
	LaborRate         float64    `json:"laborRate"`
	InstallationHours float64    `json:"installationHours"`
}

type GuttersPricing struct {
	Aluminum  PriceRange `json:"aluminum"`
	Copper    PriceRange `json:"copper"`
	Vinyl     PriceRange `json:"vinyl"`
	Downspout float64    `json:"downspout"`
	Corner    float64    `json:"corner"`
	LaborRate float64    `json:"laborRate"`
}

type SidingPricing struct {
	Vinyl       PriceRange `json:"vinyl"`
	FiberCement PriceRange `json:"fiberCement"`
	Wood        PriceRange `json:"wood"`
	JChannel    float64    `json:"jChannel"`
	Corner      float64    `json:"corner"`
	LaborRate   float64    `json:"laborRate"`
}

type DoorsPricing struct {
	Exterior          PriceRange `json:"exterior"`
	Interior          PriceRange `json:"interior"`
	Hardware          float64    `json:"hardware"`
	LaborRate         float64    `json:"laborRate"`
	InstallationHours float64    `json:"installationHours"`
}

type PaintingPricing struct {
	Interior      PriceRange `json:"interior"`
	Exterior      PriceRange `json:"exterior"`
	Primer        float64    `json:"primer"`
	LaborRate     float64    `json:"laborRate"`
	SqFtPerGallon float64    `json:"sqftPerGallon"`
}

type ConcretePricing struct {
	PerCubicYard PriceRange `json:"perCubicYard"`
	LaborRate    float64    `json:"laborRate"`
}

type FencingPricing struct {
	Wood      PriceRange `json:"wood"`
	Vinyl     PriceRange `json:"vinyl"`
	ChainLink PriceRange `json:"chainLink"`
	Aluminum  PriceRange `json:"aluminum"`
	Post      float64    `json:"post"`
	Gate      float64    `json:"gate"`
	LaborRate float64    `json:"laborRate"`
}

// PricingTable is the versioned price book read by all calculators. It is
// passed to calculators by value; only explicit settings edits replace it.

type PricingTable struct {
	Roofing  RoofingPricing  `json:"roofing"`
	Windows  WindowsPricing  `json:"windows"`
	Gutters  GuttersPricing  `json:"gutters"`
	Siding   SidingPricing   `json:"siding"`
	Doors    DoorsPricing    `json:"doors"`
	Painting PaintingPricing `json:"painting"`
	Concrete ConcretePricing `json:"concrete"`
	Fencing  FencingPricing  `json:"fencing"`
}

// DefaultPricing returns the built-in 2024 market-rate price book used until
// the contractor saves their own.
func DefaultPricing() PricingTable {
	return PricingTable{
		Roofing: RoofingPricing{
			Shingles:  PriceRange{Min: 80, Max: 150, Default: 115},
			Metal:     PriceRange{Min: 300, Max: 600, Default: 450},
			Tile:      PriceRange{Min: 400, Max: 800, Default: 600},
			LaborRate: 55,
		},
		Windows: WindowsPricing{
			SingleHung:        PriceRange{Min: 300, Max: 600, Default: 450},
			DoubleHung:        PriceRange{Min: 400, Max: 800, Default: 600},
			Casement:          PriceRange{Min: 500, Max: 1000, Default: 750},
			Sliding:           PriceRange{Min: 350, Max: 700, Default: 525},
			LaborRate:         60,
			InstallationHours: 2,
		},
		Gutters: GuttersPricing{
			Aluminum:  PriceRange{Min: 4, Max: 8, Default: 6},
			Copper:    PriceRange{Min: 25, Max: 40, Default: 32},
			Vinyl:     PriceRange{Min: 3, Max: 6, Default: 4.5},
			Downspout: 45,
			Corner:    15,
			LaborRate: 45,
		},
		Siding: SidingPricing{
			Vinyl:       PriceRange{Min: 3, Max: 8, Default: 5.5},
			FiberCement: PriceRange{Min: 6, Max: 12, Default: 9},
			Wood:        PriceRange{Min: 8, Max: 15, Default: 11.5},
			JChannel:    2,
			Corner:      25,
			LaborRate:   50,
		},
		Doors: DoorsPricing{
			Exterior:          PriceRange{Min: 800, Max: 3000, Default: 1500},
			Interior:          PriceRange{Min: 150, Max: 600, Default: 350},
			Hardware:          75,
			LaborRate:         55,
			InstallationHours: 3,
		},
		Painting: PaintingPricing{
			Interior:      PriceRange{Min: 25, Max: 50, Default: 35},
			Exterior:      PriceRange{Min: 35, Max: 60, Default: 45},
			Primer:        30,
			LaborRate:     40,
			SqFtPerGallon: 350,
		},
		Concrete: ConcretePricing{
			PerCubicYard: PriceRange{Min: 100, Max: 150, Default: 125},
			LaborRate:    60,
		},
		Fencing: FencingPricing{
			Wood:      PriceRange{Min: 15, Max: 35, Default: 25},
			Vinyl:     PriceRange{Min: 20, Max: 40, Default: 30},
			ChainLink: PriceRange{Min: 10, Max: 25, Default: 17},
			Aluminum:  PriceRange{Min: 25, Max: 50, Default: 37},
			Post:      35,
			Gate:      250,
			LaborRate: 45,
		},
	}
}
