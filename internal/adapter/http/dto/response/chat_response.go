package response

import (
	"bidworks/internal/domain/entities"
	"bidworks/internal/usecase"
)

// ChatResponse carries the assistant's reply, the project after any applied
// edits, and the edits themselves so the client can render them.
type ChatResponse struct {
	Message string                             `json:"message"`
	Project ProjectResponse                    `json:"project"`
	Applied []entities.ModificationInstruction `json:"applied"`
}

func FromChatReply(r usecase.ChatReply) ChatResponse {
	return ChatResponse{
		Message: r.Message,
		Project: FromProject(r.Project),
		Applied: r.Applied,
	}
}
