package entities

// CategoryType identifies one of the eight trades an estimate can cover.

type CategoryType string

const (
	CategoryRoofing  CategoryType = "roofing"
	CategoryWindows  CategoryType = "windows"
	CategoryGutters  CategoryType = "gutters"
	CategorySiding   CategoryType = "siding"
	CategoryDoors    CategoryType = "doors"
	CategoryPainting CategoryType = "painting"
	CategoryConcrete CategoryType = "concrete"
	CategoryFencing  CategoryType = "fencing"
)

// CategoryTypes lists every trade in display order.
var CategoryTypes = []CategoryType{
	CategoryRoofing,
	CategoryWindows,
	CategoryGutters,
	CategorySiding,
	CategoryDoors,
	CategoryPainting,
	CategoryConcrete,
	CategoryFencing,
}

func (t CategoryType) Valid() bool {
	for _, known := range CategoryTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Confidence grades how sure the AI generator is about a suggested category.
// User-built categories leave it empty.

type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

func (c Confidence) Valid() bool {
	return c == ConfidenceHigh || c == ConfidenceMedium || c == ConfidenceLow
}

// LineItem is a single priced unit of work or material within a category.
//
// Derived fields:
//   - LaborCost = LaborHours * LaborRate
//   - Total     = Quantity * UnitPrice + LaborCost
//
// Neither derived field is ever edited directly; Recalculate runs after any
// field change.

type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	UnitPrice   float64 `json:"unitPrice"`
	LaborHours  float64 `json:"laborHours"`
	LaborRate   float64 `json:"laborRate"`
	LaborCost   float64 `json:"laborCost"`
	Total       float64 `json:"total"`
}

// NewLineItem builds an item with derived fields already computed.
func NewLineItem(description string, quantity float64, unit string, unitPrice, laborHours, laborRate float64) LineItem {
	it := LineItem{
		Description: description,
		Quantity:    quantity,
		Unit:        unit,
		UnitPrice:   unitPrice,
		LaborHours:  laborHours,
		LaborRate:   laborRate,
	}
	it.Recalculate()
	return it
}

// NewLaborItem builds a labor-only item: quantity mirrors the hours for
// display while the cost flows entirely through the labor fields.
func NewLaborItem(description string, hours, rate float64) LineItem {
	return NewLineItem(description, hours, "hours", 0, hours, rate)
}

func (it *LineItem) Recalculate() {
	it.LaborCost = it.LaborHours * it.LaborRate
	it.Total = it.Quantity*it.UnitPrice + it.LaborCost
}

// Category groups the line items of one trade.
//
// Subtotal always equals the sum of item totals; Recalculate runs after any
// item add, edit or removal. Confidence and Reasoning are set only on
// AI-originated categories.

type Category struct {
	Type       CategoryType `json:"type"`
	Items      []LineItem   `json:"items"`
	Subtotal   float64      `json:"subtotal"`
	Confidence Confidence   `json:"confidence,omitempty"`
	Reasoning  string       `json:"reasoning,omitempty"`
}

func (c *Category) Recalculate() {
	sum := 0.0
	for i := range c.Items {
		c.Items[i].Recalculate()
		sum += c.Items[i].Total
	}
	c.Subtotal = sum
}
