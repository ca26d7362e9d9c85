package entities

import "time"

// ProjectStatus tracks the commercial lifecycle of a project.

type ProjectStatus string

const (
	ProjectStatusQuote      ProjectStatus = "quote"
	ProjectStatusApproved   ProjectStatus = "approved"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusCompleted  ProjectStatus = "completed"
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectStatusQuote, ProjectStatusApproved, ProjectStatusInProgress, ProjectStatusCompleted:
		return true
	}
	return false
}

// TaxRate is applied to the project subtotal. Flat 8%.
const TaxRate = 0.08

// PropertyData carries measurements for the property being estimated, either
// entered manually or prefilled by the address lookup.

type PropertyData struct {
	Address      string  `json:"address"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
	LotSize      float64 `json:"lotSize,omitempty"`
	BuildingArea float64 `json:"buildingArea,omitempty"`
	RoofArea     float64 `json:"roofArea,omitempty"`
	Perimeter    float64 `json:"perimeter,omitempty"`
	YearBuilt    int     `json:"yearBuilt,omitempty"`
	PropertyType string  `json:"propertyType,omitempty"`
}

// Project is the authoritative multi-trade estimate persisted in DynamoDB.
//
// Storage model:
//   - PK: id
//
// Invariants:
//   - at most one Category per CategoryType
//   - Subtotal = sum of category subtotals
//   - Tax = Subtotal * TaxRate, Total = Subtotal + Tax

type Project struct {
	ID              string        `json:"id"`
	ClientID        string        `json:"clientId"`
	ClientName      string        `json:"clientName"`
	PropertyAddress string        `json:"propertyAddress"`
	PropertyData    *PropertyData `json:"propertyData,omitempty"`
	Status          ProjectStatus `json:"status"`
	Categories      []Category    `json:"categories"`
	Subtotal        float64       `json:"subtotal"`
	Tax             float64       `json:"tax"`
	Total           float64       `json:"total"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
	Notes           string        `json:"notes"`
}

// Category returns the category of the given type, or nil.
func (p *Project) Category(t CategoryType) *Category {
	for i := range p.Categories {
		if p.Categories[i].Type == t {
			return &p.Categories[i]
		}
	}
	return nil
}

// Recalculate restores the totals invariants bottom-up: every category
// subtotal, then project subtotal, tax and total.
func (p *Project) Recalculate() {
	subtotal := 0.0
	for i := range p.Categories {
		p.Categories[i].Recalculate()
		subtotal += p.Categories[i].Subtotal
	}
	p.Subtotal = subtotal
	p.Tax = subtotal * TaxRate
	p.Total = p.Subtotal + p.Tax
}
