package interfaces

import "context"

// ChatRole is the speaker of a chat transcript message.

type ChatRole string

const (
	RoleSystem    ChatRole = "system"
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
	RoleTool      ChatRole = "tool"
)

// ToolCall is one structured tool invocation requested by the assistant.
// Arguments is the raw JSON the model produced; the use case validates it.

type ToolCall struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// ChatMessage is one turn of an estimate-chat transcript. Assistant turns may
// carry tool calls; tool turns carry the result of one, keyed by ToolCallID.

type ChatMessage struct {
	Role       ChatRole   `json:"role"`
	Content    string     `json:"content"`
	ToolCallID string     `json:"toolCallId,omitempty"`
	ToolCalls  []ToolCall `json:"toolCalls,omitempty"`
}

// IEstimateAgent abstracts one model turn of the estimate chat. The use case
// owns the tool loop: it executes requested tool calls, appends the results
// to the transcript and calls NextTurn again.

type IEstimateAgent interface {
	NextTurn(ctx context.Context, messages []ChatMessage) (ChatMessage, error)
}
