package request

import (
	"strings"

	"bidworks/internal/domain/entities"
)

// ProjectRequest is the payload for creating or updating a project header.
// Categories and items are managed through their own endpoints.
type ProjectRequest struct {
	ClientID        string                 `json:"clientId"`
	ClientName      string                 `json:"clientName" binding:"required"`
	PropertyAddress string                 `json:"propertyAddress"`
	PropertyData    *entities.PropertyData `json:"propertyData"`
	Status          string                 `json:"status"`
	Notes           string                 `json:"notes"`
}

func (r ProjectRequest) ResolveClientName() string {
	return strings.TrimSpace(r.ClientName)
}

// LineItemRequest carries one line item. Derived fields (laborCost, total)
// are never accepted from the caller; the use case recomputes them.
type LineItemRequest struct {
	Description string  `json:"description" binding:"required"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	UnitPrice   float64 `json:"unitPrice"`
	LaborHours  float64 `json:"laborHours"`
	LaborRate   float64 `json:"laborRate"`
}

func (r LineItemRequest) ToLineItem() entities.LineItem {
	return entities.NewLineItem(r.Description, r.Quantity, r.Unit, r.UnitPrice, r.LaborHours, r.LaborRate)
}

// SetItemsRequest replaces a category's item list wholesale.
type SetItemsRequest struct {
	Items []LineItemRequest `json:"items"`
}

func (r SetItemsRequest) ToLineItems() []entities.LineItem {
	items := make([]entities.LineItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, it.ToLineItem())
	}
	return items
}
