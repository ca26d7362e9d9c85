package response

import (
	"time"

	"bidworks/internal/domain/entities"
	"bidworks/internal/usecase"
)

type ReviewItemResponse struct {
	Item     LineItemResponse `json:"item"`
	Selected bool             `json:"selected"`
}

type ReviewCategoryResponse struct {
	Type       string               `json:"type"`
	Confidence string               `json:"confidence,omitempty"`
	Reasoning  string               `json:"reasoning,omitempty"`
	Selected   bool                 `json:"selected"`
	Items      []ReviewItemResponse `json:"items"`
	Subtotal   float64              `json:"subtotal"`
}

type ReviewSessionResponse struct {
	ID               string                    `json:"id"`
	ProjectID        string                    `json:"projectId"`
	PropertyAnalysis entities.PropertyAnalysis `json:"propertyAnalysis"`
	Categories       []ReviewCategoryResponse  `json:"categories"`
	SelectedSubtotal float64                   `json:"selectedSubtotal"`
	CreatedAt        time.Time                 `json:"createdAt"`
}

func FromReviewSession(s usecase.ReviewSession) ReviewSessionResponse {
	categories := make([]ReviewCategoryResponse, 0, len(s.Categories))
	for _, c := range s.Categories {
		items := make([]ReviewItemResponse, 0, len(c.Items))
		for _, it := range c.Items {
			items = append(items, ReviewItemResponse{Item: FromLineItem(it.Item), Selected: it.Selected})
		}
		categories = append(categories, ReviewCategoryResponse{
			Type:       string(c.Type),
			Confidence: string(c.Confidence),
			Reasoning:  c.Reasoning,
			Selected:   c.Selected,
			Items:      items,
			Subtotal:   c.Subtotal,
		})
	}
	return ReviewSessionResponse{
		ID:               s.ID,
		ProjectID:        s.ProjectID,
		PropertyAnalysis: s.PropertyAnalysis,
		Categories:       categories,
		SelectedSubtotal: s.SelectedSubtotal(),
		CreatedAt:        s.CreatedAt,
	}
}
