package request

import "bidworks/internal/domain/entities"

// StartDraftRequest opens an AI draft review session for a project.
// Categories is optional; empty means the generator decides which trades the
// property needs.
type StartDraftRequest struct {
	Notes      string   `json:"notes"`
	Categories []string `json:"categories"`
}

func (r StartDraftRequest) ToCategoryTypes() []entities.CategoryType {
	types := make([]entities.CategoryType, 0, len(r.Categories))
	for _, c := range r.Categories {
		types = append(types, entities.CategoryType(c))
	}
	return types
}

// ToggleRequest flips the selection state of a draft category or item.
type ToggleRequest struct {
	Selected *bool `json:"selected" binding:"required"`
}
