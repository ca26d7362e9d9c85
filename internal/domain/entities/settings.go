package entities

// EstimationStyle steers how aggressive AI-generated drafts are.

type EstimationStyle string

const (
	EstimationConservative  EstimationStyle = "Conservative"
	EstimationStandard      EstimationStyle = "Standard"
	EstimationComprehensive EstimationStyle = "Comprehensive"
)

// AISettings describe the contractor's local market, fed verbatim into draft
// generation prompts.

type AISettings struct {
	Enabled         bool            `json:"enabled"`
	EstimationStyle EstimationStyle `json:"estimationStyle"`
	TypicalHomeAge  string          `json:"typicalHomeAge"`
	CommonMaterials string          `json:"commonMaterials"`
	ClimateNotes    string          `json:"climateNotes"`
	MarketNotes     string          `json:"marketNotes"`
}

// AppSettings is the process-wide settings namespace.

type AppSettings struct {
	AISettings AISettings `json:"aiSettings"`
}

// DefaultSettings matches a fresh install.
func DefaultSettings() AppSettings {
	return AppSettings{
		AISettings: AISettings{
			Enabled:         true,
			EstimationStyle: EstimationStandard,
		},
	}
}
