package entities

// PropertyAnalysis is the non-authoritative metadata returned with an AI
// draft. It informs the reviewer but is never written to the project.

type PropertyAnalysis struct {
	EstimatedAge       int     `json:"estimatedAge"`
	EstimatedSqFt      float64 `json:"estimatedSqFt"`
	EstimatedRoofArea  float64 `json:"estimatedRoofArea"`
	EstimatedPerimeter float64 `json:"estimatedPerimeter"`
	PropertyType       string  `json:"propertyType"`
	EstimatedRegion    string  `json:"estimatedRegion,omitempty"`
	ClimateFactors     string  `json:"climateFactors,omitempty"`
	Notes              string  `json:"notes"`
}

// EstimateDraft is a candidate estimate produced by the AI generator. It is
// structurally a category list but lives only inside a review session; it is
// never persisted and never merged without going through review.

type EstimateDraft struct {
	PropertyAnalysis PropertyAnalysis `json:"propertyAnalysis"`
	Categories       []Category       `json:"categories"`
}
