package request

import "bidworks/internal/usecase/interfaces"

// ChatToolCallRequest mirrors one tool call inside a replayed transcript.
type ChatToolCallRequest struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// ChatMessageRequest is one prior transcript entry. The client replays the
// conversation on every request; the server keeps no chat state.
type ChatMessageRequest struct {
	Role       string                `json:"role"`
	Content    string                `json:"content"`
	ToolCallID string                `json:"toolCallId,omitempty"`
	ToolCalls  []ChatToolCallRequest `json:"toolCalls,omitempty"`
}

// ChatRequest sends one user message to the estimate assistant.
type ChatRequest struct {
	Message string               `json:"message" binding:"required"`
	History []ChatMessageRequest `json:"history"`
}

func (r ChatRequest) ToHistory() []interfaces.ChatMessage {
	history := make([]interfaces.ChatMessage, 0, len(r.History))
	for _, m := range r.History {
		msg := interfaces.ChatMessage{
			Role:       interfaces.ChatRole(m.Role),
			Content:    m.Content,
			ToolCallID: m.ToolCallID,
		}
		for _, tc := range m.ToolCalls {
			msg.ToolCalls = append(msg.ToolCalls, interfaces.ToolCall{
				ID:        tc.ID,
				Name:      tc.Name,
				Arguments: tc.Arguments,
			})
		}
		history = append(history, msg)
	}
	return history
}
