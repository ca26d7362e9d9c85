package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"bidworks/internal/domain/entities"
	"bidworks/internal/usecase/interfaces"
)

var ErrInvalidChatMessage = errors.New("invalid chat message")

// maxChatToolSteps bounds the tool loop per user message so a confused model
// cannot spin forever against the estimate.
const maxChatToolSteps = 10

// ModifyEstimateTool is the single tool exposed to the chat agent.
const ModifyEstimateTool = "modify_estimate"

// ChatReply is the outcome of one user message: the assistant's answer, the
// project after any applied edits and the edits themselves (with the agent's
// reasons, which are returned to the caller but never persisted).

type ChatReply struct {
	Message string                             `json:"message"`
	Project entities.Project                   `json:"project"`
	Applied []entities.ModificationInstruction `json:"applied"`
}

// IChatUseCase runs the estimate-chat agent loop against one project.

type IChatUseCase interface {
	Chat(ctx context.Context, projectID, message string, history []interfaces.ChatMessage) (ChatReply, error)
}

type ChatUseCase struct {
	projects interfaces.IProjectRepository
	agent    interfaces.IEstimateAgent
}

var _ IChatUseCase = (*ChatUseCase)(nil)

func NewChatUseCase(projects interfaces.IProjectRepository, agent interfaces.IEstimateAgent) *ChatUseCase {
	return &ChatUseCase{projects: projects, agent: agent}
}

// Chat sends one user message through the agent. Each tool call the agent
// makes is validated and applied against the in-memory project, with totals
// recomputed after every edit; a rejected call is reported back to the agent
// as the tool result and leaves the project untouched. The project is saved
// once, after the loop, and only if at least one edit was applied.
func (u *ChatUseCase) Chat(ctx context.Context, projectID, message string, history []interfaces.ChatMessage) (ChatReply, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return ChatReply{}, ErrInvalidChatMessage
	}
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return ChatReply{}, ErrInvalidProjectID
	}

	project, err := u.projects.GetByID(ctx, projectID)
	if err != nil {
		return ChatReply{}, err
	}
	if project.ID == "" {
		return ChatReply{}, ErrProjectNotFound
	}

	messages := make([]interfaces.ChatMessage, 0, len(history)+2)
	messages = append(messages, interfaces.ChatMessage{Role: interfaces.RoleSystem, Content: chatSystemPrompt(project)})
	messages = append(messages, history...)
	messages = append(messages, interfaces.ChatMessage{Role: interfaces.RoleUser, Content: message})

	var applied []entities.ModificationInstruction
	reply := ChatReply{}

	for step := 0; step < maxChatToolSteps; step++ {
		turn, err := u.agent.NextTurn(ctx, messages)
		if err != nil {
			return ChatReply{}, err
		}
		messages = append(messages, turn)

		if len(turn.ToolCalls) == 0 {
			reply.Message = turn.Content
			break
		}

		for _, call := range turn.ToolCalls {
			result := u.executeToolCall(&project, call, &applied)
			messages = append(messages, interfaces.ChatMessage{
				Role:       interfaces.RoleTool,
				ToolCallID: call.ID,
				Content:    result,
			})
		}
	}

	if len(applied) > 0 {
		project, err = u.projects.Save(ctx, project)
		if err != nil {
			return ChatReply{}, err
		}
	}
	if reply.Message == "" {
		reply.Message = "I made the requested changes to the estimate."
	}
	reply.Project = project
	reply.Applied = applied
	return reply, nil
}

func (u *ChatUseCase) executeToolCall(project *entities.Project, call interfaces.ToolCall, applied *[]entities.ModificationInstruction) string {
	if call.Name != ModifyEstimateTool {
		log.Printf("[chat][usecase] unknown tool requested name=%s", call.Name)
		return fmt.Sprintf(`{"error":"unknown tool %q"}`, call.Name)
	}

	var instr entities.ModificationInstruction
	if err := json.Unmarshal([]byte(call.Arguments), &instr); err != nil {
		log.Printf("[chat][usecase] tool arguments unparseable err=%v", err)
		return fmt.Sprintf(`{"error":"arguments are not valid JSON: %s"}`, err)
	}

	if err := ApplyModification(project, instr); err != nil {
		log.Printf("[chat][usecase] modification rejected action=%s category=%s err=%v", instr.Action, instr.Category, err)
		return fmt.Sprintf(`{"error":%q}`, err.Error())
	}

	project.Recalculate()
	*applied = append(*applied, instr)
	log.Printf("[chat][usecase] modification applied action=%s category=%s subtotal=%.2f total=%.2f",
		instr.Action, instr.Category, project.Subtotal, project.Total)
	return fmt.Sprintf(`{"ok":true,"subtotal":%.2f,"tax":%.2f,"total":%.2f}`, project.Subtotal, project.Tax, project.Total)
}

func chatSystemPrompt(p entities.Project) string {
	state, _ := json.Marshal(p)
	var b strings.Builder
	b.WriteString("You are an estimating assistant for a general contractor. ")
	b.WriteString("You answer questions about the current estimate and modify it when asked, ")
	b.WriteString("using the modify_estimate tool. One tool call per edit. ")
	b.WriteString("Valid categories: ")
	for i, t := range entities.CategoryTypes {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(string(t))
	}
	b.WriteString(". Item indexes are zero-based within a category. ")
	b.WriteString("Never invent prices wildly out of line with the existing items.\n\nCurrent estimate:\n")
	b.Write(state)
	return b.String()
}
