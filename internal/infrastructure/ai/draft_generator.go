package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"bidworks/internal/domain/entities"
	"bidworks/internal/usecase/interfaces"

	openai "github.com/sashabaranov/go-openai"
)

// DraftGenerator produces full estimate drafts with one chat completion.

type DraftGenerator struct {
	client *Client
}

var _ interfaces.IDraftGenerator = (*DraftGenerator)(nil)

func NewDraftGenerator(client *Client) *DraftGenerator {
	return &DraftGenerator{client: client}
}

func (g *DraftGenerator) GenerateDraft(ctx context.Context, req interfaces.DraftRequest) (entities.EstimateDraft, error) {
	if !g.client.configured() {
		return entities.EstimateDraft{}, interfaces.ErrAINotConfigured
	}

	resp, err := g.client.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.client.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: draftSystemPrompt(req.AISettings)},
			{Role: openai.ChatMessageRoleUser, Content: draftUserPrompt(req)},
		},
		Temperature: 0.3,
	})
	if err != nil {
		log.Printf("[ai][draft] completion failed err=%v", err)
		return entities.EstimateDraft{}, mapProviderError(err)
	}
	if len(resp.Choices) == 0 {
		return entities.EstimateDraft{}, interfaces.ErrAIMalformedResponse
	}

	draft, err := parseDraft(resp.Choices[0].Message.Content)
	if err != nil {
		log.Printf("[ai][draft] parse failed err=%v", err)
		return entities.EstimateDraft{}, err
	}
	log.Printf("[ai][draft] draft generated categories=%d", len(draft.Categories))
	return draft, nil
}

func draftSystemPrompt(s entities.AISettings) string {
	var b strings.Builder
	b.WriteString("You are an experienced residential general contractor preparing a full exterior/interior renovation estimate. ")
	b.WriteString("Respond with ONE JSON object and nothing else, in this shape:\n")
	b.WriteString(`{"propertyAnalysis":{"estimatedAge":0,"estimatedSqFt":0,"estimatedRoofArea":0,"estimatedPerimeter":0,"propertyType":"","notes":""},`)
	b.WriteString(`"categories":[{"type":"roofing","confidence":"high|medium|low","reasoning":"","items":[{"description":"","quantity":0,"unit":"","unitPrice":0,"laborHours":0,"laborRate":0}]}]}`)
	b.WriteString("\nValid category types: ")
	for i, t := range entities.CategoryTypes {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(string(t))
	}
	b.WriteString(".")

	style := s.EstimationStyle
	if style == "" {
		style = entities.EstimationStandard
	}
	fmt.Fprintf(&b, " Estimation style: %s.", style)
	if s.TypicalHomeAge != "" {
		fmt.Fprintf(&b, " Typical home age in this market: %s.", s.TypicalHomeAge)
	}
	if s.CommonMaterials != "" {
		fmt.Fprintf(&b, " Common materials: %s.", s.CommonMaterials)
	}
	if s.ClimateNotes != "" {
		fmt.Fprintf(&b, " Climate: %s.", s.ClimateNotes)
	}
	if s.MarketNotes != "" {
		fmt.Fprintf(&b, " Market: %s.", s.MarketNotes)
	}
	return b.String()
}

func draftUserPrompt(req interfaces.DraftRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Property address: %s\n", req.Address)
	if req.PropertyData != nil {
		pd, _ := json.Marshal(req.PropertyData)
		fmt.Fprintf(&b, "Known property data: %s\n", pd)
	}
	if len(req.Categories) > 0 {
		names := make([]string, 0, len(req.Categories))
		for _, t := range req.Categories {
			names = append(names, string(t))
		}
		fmt.Fprintf(&b, "Estimate ONLY these trades: %s\n", strings.Join(names, ", "))
	} else {
		b.WriteString("Include every trade the property plausibly needs.\n")
	}
	if req.Notes != "" {
		fmt.Fprintf(&b, "Contractor notes: %s\n", req.Notes)
	}

	pricing, _ := json.Marshal(req.Pricing)
	fmt.Fprintf(&b, "Use these unit prices and labor rates (defaults are my book rates): %s\n", pricing)
	return b.String()
}

// parseDraft extracts and validates the model's JSON payload. Unknown
// category types, unknown confidence grades and items without descriptions
// reject the whole draft: a partially trustworthy draft is worse than a
// retry. Derived money fields are recomputed locally, never trusted.
func parseDraft(content string) (entities.EstimateDraft, error) {
	raw, ok := extractJSON(content)
	if !ok {
		return entities.EstimateDraft{}, fmt.Errorf("%w: no JSON object in response", interfaces.ErrAIMalformedResponse)
	}

	var draft entities.EstimateDraft
	dec := json.NewDecoder(strings.NewReader(raw))
	if err := dec.Decode(&draft); err != nil {
		return entities.EstimateDraft{}, fmt.Errorf("%w: %v", interfaces.ErrAIMalformedResponse, err)
	}

	if len(draft.Categories) == 0 {
		return entities.EstimateDraft{}, fmt.Errorf("%w: draft has no categories", interfaces.ErrAIMalformedResponse)
	}

	seen := make(map[entities.CategoryType]bool, len(draft.Categories))
	for i := range draft.Categories {
		cat := &draft.Categories[i]
		if !cat.Type.Valid() {
			return entities.EstimateDraft{}, fmt.Errorf("%w: unknown category type %q", interfaces.ErrAIMalformedResponse, cat.Type)
		}
		if seen[cat.Type] {
			return entities.EstimateDraft{}, fmt.Errorf("%w: duplicate category %q", interfaces.ErrAIMalformedResponse, cat.Type)
		}
		seen[cat.Type] = true
		if cat.Confidence != "" && !cat.Confidence.Valid() {
			return entities.EstimateDraft{}, fmt.Errorf("%w: unknown confidence %q", interfaces.ErrAIMalformedResponse, cat.Confidence)
		}
		if len(cat.Items) == 0 {
			return entities.EstimateDraft{}, fmt.Errorf("%w: category %q has no items", interfaces.ErrAIMalformedResponse, cat.Type)
		}
		for j := range cat.Items {
			it := &cat.Items[j]
			if strings.TrimSpace(it.Description) == "" {
				return entities.EstimateDraft{}, fmt.Errorf("%w: item without description in %q", interfaces.ErrAIMalformedResponse, cat.Type)
			}
			if it.Quantity < 0 || it.UnitPrice < 0 || it.LaborHours < 0 || it.LaborRate < 0 {
				return entities.EstimateDraft{}, fmt.Errorf("%w: negative numbers in %q", interfaces.ErrAIMalformedResponse, cat.Type)
			}
		}
		cat.Recalculate()
	}
	return draft, nil
}
