package ai

import (
	"context"
	"log"

	"bidworks/internal/usecase/interfaces"

	openai "github.com/sashabaranov/go-openai"
)

// EstimateAgent runs one chat turn with the modify_estimate tool attached.
// The tool loop itself lives in the use case; this adapter only translates
// between the transcript types and the OpenAI wire format.

type EstimateAgent struct {
	client *Client
}

var _ interfaces.IEstimateAgent = (*EstimateAgent)(nil)

func NewEstimateAgent(client *Client) *EstimateAgent {
	return &EstimateAgent{client: client}
}

var modifyEstimateTool = openai.Tool{
	Type: openai.ToolTypeFunction,
	Function: &openai.FunctionDefinition{
		Name:        "modify_estimate",
		Description: "Apply one structured edit to the current estimate. Call once per edit.",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"action": map[string]any{
					"type": "string",
					"enum": []string{"add_item", "remove_item", "update_item", "add_category", "remove_category"},
				},
				"category": map[string]any{
					"type":        "string",
					"description": "Trade category the edit targets, e.g. roofing or windows.",
				},
				"itemIndex": map[string]any{
					"type":        "integer",
					"description": "Zero-based item index within the category. Required for remove_item and update_item.",
				},
				"item": map[string]any{
					"type":        "object",
					"description": "Line item payload. Required for add_item and update_item.",
					"properties": map[string]any{
						"description": map[string]any{"type": "string"},
						"quantity":    map[string]any{"type": "number"},
						"unit":        map[string]any{"type": "string"},
						"unitPrice":   map[string]any{"type": "number"},
						"laborHours":  map[string]any{"type": "number"},
						"laborRate":   map[string]any{"type": "number"},
					},
					"required": []string{"description"},
				},
				"reason": map[string]any{
					"type":        "string",
					"description": "One sentence explaining the edit, shown to the contractor.",
				},
			},
			"required": []string{"action", "category", "reason"},
		},
	},
}

func (a *EstimateAgent) NextTurn(ctx context.Context, messages []interfaces.ChatMessage) (interfaces.ChatMessage, error) {
	if !a.client.configured() {
		return interfaces.ChatMessage{}, interfaces.ErrAINotConfigured
	}

	resp, err := a.client.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    a.client.model,
		Messages: toOpenAIMessages(messages),
		Tools:    []openai.Tool{modifyEstimateTool},
	})
	if err != nil {
		log.Printf("[ai][agent] completion failed err=%v", err)
		return interfaces.ChatMessage{}, mapProviderError(err)
	}
	if len(resp.Choices) == 0 {
		return interfaces.ChatMessage{}, interfaces.ErrAIMalformedResponse
	}
	return fromOpenAIMessage(resp.Choices[0].Message), nil
}

func toOpenAIMessages(messages []interfaces.ChatMessage) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		msg := openai.ChatCompletionMessage{
			Role:       string(m.Role),
			Content:    m.Content,
			ToolCallID: m.ToolCallID,
		}
		for _, tc := range m.ToolCalls {
			msg.ToolCalls = append(msg.ToolCalls, openai.ToolCall{
				ID:   tc.ID,
				Type: openai.ToolTypeFunction,
				Function: openai.FunctionCall{
					Name:      tc.Name,
					Arguments: tc.Arguments,
				},
			})
		}
		out = append(out, msg)
	}
	return out
}

func fromOpenAIMessage(m openai.ChatCompletionMessage) interfaces.ChatMessage {
	out := interfaces.ChatMessage{
		Role:    interfaces.ChatRole(m.Role),
		Content: m.Content,
	}
	for _, tc := range m.ToolCalls {
		out.ToolCalls = append(out.ToolCalls, interfaces.ToolCall{
			ID:        tc.ID,
			Name:      tc.Function.Name,
			Arguments: tc.Function.Arguments,
		})
	}
	return out
}
