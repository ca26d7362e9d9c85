package response

import (
	"time"

	"bidworks/internal/domain/entities"
)

type LineItemResponse struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	UnitPrice   float64 `json:"unitPrice"`
	LaborHours  float64 `json:"laborHours"`
	LaborRate   float64 `json:"laborRate"`
	LaborCost   float64 `json:"laborCost"`
	Total       float64 `json:"total"`
}

func FromLineItem(it entities.LineItem) LineItemResponse {
	return LineItemResponse{
		Description: it.Description,
		Quantity:    it.Quantity,
		Unit:        it.Unit,
		UnitPrice:   it.UnitPrice,
		LaborHours:  it.LaborHours,
		LaborRate:   it.LaborRate,
		LaborCost:   it.LaborCost,
		Total:       it.Total,
	}
}

type CategoryResponse struct {
	Type       string             `json:"type"`
	Items      []LineItemResponse `json:"items"`
	Subtotal   float64            `json:"subtotal"`
	Confidence string             `json:"confidence,omitempty"`
	Reasoning  string             `json:"reasoning,omitempty"`
}

func FromCategory(c entities.Category) CategoryResponse {
	items := make([]LineItemResponse, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, FromLineItem(it))
	}
	return CategoryResponse{
		Type:       string(c.Type),
		Items:      items,
		Subtotal:   c.Subtotal,
		Confidence: string(c.Confidence),
		Reasoning:  c.Reasoning,
	}
}

type ProjectResponse struct {
	ID              string                 `json:"id"`
	ClientID        string                 `json:"clientId"`
	ClientName      string                 `json:"clientName"`
	PropertyAddress string                 `json:"propertyAddress"`
	PropertyData    *entities.PropertyData `json:"propertyData,omitempty"`
	Status          string                 `json:"status"`
	Categories      []CategoryResponse     `json:"categories"`
	Subtotal        float64                `json:"subtotal"`
	Tax             float64                `json:"tax"`
	Total           float64                `json:"total"`
	CreatedAt       time.Time              `json:"createdAt"`
	UpdatedAt       time.Time              `json:"updatedAt"`
	Notes           string                 `json:"notes"`
}

func FromProject(p entities.Project) ProjectResponse {
	categories := make([]CategoryResponse, 0, len(p.Categories))
	for _, c := range p.Categories {
		categories = append(categories, FromCategory(c))
	}
	return ProjectResponse{
		ID:              p.ID,
		ClientID:        p.ClientID,
		ClientName:      p.ClientName,
		PropertyAddress: p.PropertyAddress,
		PropertyData:    p.PropertyData,
		Status:          string(p.Status),
		Categories:      categories,
		Subtotal:        p.Subtotal,
		Tax:             p.Tax,
		Total:           p.Total,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
		Notes:           p.Notes,
	}
}

func FromProjects(projects []entities.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, FromProject(p))
	}
	return out
}
