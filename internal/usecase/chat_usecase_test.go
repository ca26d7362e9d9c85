package usecase

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"bidworks/internal/domain/entities"
	"bidworks/internal/usecase/interfaces"
	mock_interfaces "bidworks/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func chatProject() entities.Project {
	return projectWith(entities.Category{
		Type: entities.CategoryWindows,
		Items: []entities.LineItem{
			entities.NewLineItem("Double Hung Window", 2, "windows", 600, 4, 60),
		},
	})
}

func TestChatUseCase_Chat(t *testing.T) {
	t.Run("empty message", func(t *testing.T) {
		uc := NewChatUseCase(nil, nil)
		_, err := uc.Chat(context.Background(), "proj-1", "   ", nil)
		if !errors.Is(err, ErrInvalidChatMessage) {
			t.Fatalf("expected ErrInvalidChatMessage, got %v", err)
		}
	})

	t.Run("project not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewChatUseCase(projects, nil)
		projects.EXPECT().GetByID(gomock.Any(), "proj-1").Return(entities.Project{}, nil)

		_, err := uc.Chat(context.Background(), "proj-1", "hi", nil)
		if !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("plain answer without tools does not save", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		agent := mock_interfaces.NewMockIEstimateAgent(ctrl)
		uc := NewChatUseCase(projects, agent)
		projects.EXPECT().GetByID(gomock.Any(), "proj-1").Return(chatProject(), nil)
		agent.EXPECT().NextTurn(gomock.Any(), gomock.Any()).Return(
			interfaces.ChatMessage{Role: interfaces.RoleAssistant, Content: "The windows run $1,440 before tax."}, nil)

		reply, err := uc.Chat(context.Background(), "proj-1", "how much are the windows?", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reply.Message != "The windows run $1,440 before tax." {
			t.Fatalf("unexpected message: %q", reply.Message)
		}
		if len(reply.Applied) != 0 {
			t.Fatalf("expected no modifications, got %+v", reply.Applied)
		}
	})

	t.Run("applied add_item recomputes totals and saves once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		agent := mock_interfaces.NewMockIEstimateAgent(ctrl)
		uc := NewChatUseCase(projects, agent)
		projects.EXPECT().GetByID(gomock.Any(), "proj-1").Return(chatProject(), nil)

		first := agent.EXPECT().NextTurn(gomock.Any(), gomock.Any()).Return(interfaces.ChatMessage{
			Role: interfaces.RoleAssistant,
			ToolCalls: []interfaces.ToolCall{{
				ID:        "call-1",
				Name:      ModifyEstimateTool,
				Arguments: `{"action":"add_item","category":"windows","item":{"description":"Window Screens","quantity":2,"unit":"screens","unitPrice":40},"reason":"customer asked for screens"}`,
			}},
		}, nil)
		agent.EXPECT().NextTurn(gomock.Any(), gomock.Any()).After(first).DoAndReturn(
			func(_ context.Context, messages []interfaces.ChatMessage) (interfaces.ChatMessage, error) {
				last := messages[len(messages)-1]
				if last.Role != interfaces.RoleTool || last.ToolCallID != "call-1" {
					t.Fatalf("expected tool result appended, got %+v", last)
				}
				if !strings.Contains(last.Content, `"ok":true`) {
					t.Fatalf("expected success tool result, got %q", last.Content)
				}
				return interfaces.ChatMessage{Role: interfaces.RoleAssistant, Content: "Added two screens."}, nil
			})

		var saved entities.Project
		projects.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) {
				saved = p
				return p, nil
			})

		reply, err := uc.Chat(context.Background(), "proj-1", "add screens to the windows", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 1440 + 2*40 = 1520 -> total 1641.60
		if math.Abs(saved.Subtotal-1520) > 1e-9 || math.Abs(saved.Total-1641.6) > 1e-9 {
			t.Fatalf("unexpected totals: %v / %v", saved.Subtotal, saved.Total)
		}
		if len(reply.Applied) != 1 || reply.Applied[0].Action != entities.ActionAddItem {
			t.Fatalf("unexpected applied list: %+v", reply.Applied)
		}
		if reply.Applied[0].Reason != "customer asked for screens" {
			t.Fatalf("expected reason preserved in reply, got %q", reply.Applied[0].Reason)
		}
	})

	t.Run("out of range update is rejected and fed back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		agent := mock_interfaces.NewMockIEstimateAgent(ctrl)
		uc := NewChatUseCase(projects, agent)
		projects.EXPECT().GetByID(gomock.Any(), "proj-1").Return(chatProject(), nil)

		first := agent.EXPECT().NextTurn(gomock.Any(), gomock.Any()).Return(interfaces.ChatMessage{
			Role: interfaces.RoleAssistant,
			ToolCalls: []interfaces.ToolCall{{
				ID:        "call-1",
				Name:      ModifyEstimateTool,
				Arguments: `{"action":"update_item","category":"windows","itemIndex":5,"item":{"description":"x","quantity":1}}`,
			}},
		}, nil)
		agent.EXPECT().NextTurn(gomock.Any(), gomock.Any()).After(first).DoAndReturn(
			func(_ context.Context, messages []interfaces.ChatMessage) (interfaces.ChatMessage, error) {
				last := messages[len(messages)-1]
				if !strings.Contains(last.Content, "error") {
					t.Fatalf("expected error tool result, got %q", last.Content)
				}
				return interfaces.ChatMessage{Role: interfaces.RoleAssistant, Content: "That item doesn't exist."}, nil
			})

		reply, err := uc.Chat(context.Background(), "proj-1", "update item 5", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Rejected edit: nothing applied, no save, project untouched.
		if len(reply.Applied) != 0 {
			t.Fatalf("expected no applied modifications, got %+v", reply.Applied)
		}
		if math.Abs(reply.Project.Subtotal-1440) > 1e-9 {
			t.Fatalf("expected project unchanged, got subtotal %v", reply.Project.Subtotal)
		}
	})

	t.Run("tool loop is bounded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		agent := mock_interfaces.NewMockIEstimateAgent(ctrl)
		uc := NewChatUseCase(projects, agent)
		projects.EXPECT().GetByID(gomock.Any(), "proj-1").Return(chatProject(), nil)

		agent.EXPECT().NextTurn(gomock.Any(), gomock.Any()).Times(maxChatToolSteps).Return(interfaces.ChatMessage{
			Role: interfaces.RoleAssistant,
			ToolCalls: []interfaces.ToolCall{{
				ID:        "call-n",
				Name:      ModifyEstimateTool,
				Arguments: `{"action":"add_category","category":"fencing"}`,
			}},
		}, nil)
		projects.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) { return p, nil })

		reply, err := uc.Chat(context.Background(), "proj-1", "keep going forever", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(reply.Applied) != maxChatToolSteps {
			t.Fatalf("expected %d applied steps, got %d", maxChatToolSteps, len(reply.Applied))
		}
	})

	t.Run("agent errors pass through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		agent := mock_interfaces.NewMockIEstimateAgent(ctrl)
		uc := NewChatUseCase(projects, agent)
		projects.EXPECT().GetByID(gomock.Any(), "proj-1").Return(chatProject(), nil)
		agent.EXPECT().NextTurn(gomock.Any(), gomock.Any()).Return(interfaces.ChatMessage{}, interfaces.ErrAIRateLimited)

		_, err := uc.Chat(context.Background(), "proj-1", "hi", nil)
		if !errors.Is(err, interfaces.ErrAIRateLimited) {
			t.Fatalf("expected ErrAIRateLimited, got %v", err)
		}
	})
}

func TestApplyModification(t *testing.T) {
	t.Run("invalid action", func(t *testing.T) {
		p := chatProject()
		err := ApplyModification(&p, entities.ModificationInstruction{Action: "rename_item", Category: entities.CategoryWindows})
		if !errors.Is(err, ErrInvalidModification) {
			t.Fatalf("expected ErrInvalidModification, got %v", err)
		}
	})

	t.Run("invalid category", func(t *testing.T) {
		p := chatProject()
		err := ApplyModification(&p, entities.ModificationInstruction{Action: entities.ActionAddCategory, Category: "plumbing"})
		if !errors.Is(err, ErrInvalidCategoryType) {
			t.Fatalf("expected ErrInvalidCategoryType, got %v", err)
		}
	})

	t.Run("remove item", func(t *testing.T) {
		p := chatProject()
		idx := 0
		err := ApplyModification(&p, entities.ModificationInstruction{
			Action: entities.ActionRemoveItem, Category: entities.CategoryWindows, ItemIndex: &idx,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(p.Category(entities.CategoryWindows).Items) != 0 {
			t.Fatalf("expected item removed")
		}
	})

	t.Run("add_item recomputes derived fields", func(t *testing.T) {
		p := chatProject()
		err := ApplyModification(&p, entities.ModificationInstruction{
			Action:   entities.ActionAddItem,
			Category: entities.CategoryWindows,
			Item:     &entities.LineItem{Description: "Screens", Quantity: 2, Unit: "screens", UnitPrice: 40, Total: 12345},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		items := p.Category(entities.CategoryWindows).Items
		if math.Abs(items[1].Total-80) > 1e-9 {
			t.Fatalf("expected recomputed total 80, got %v", items[1].Total)
		}
	})

	t.Run("remove missing category", func(t *testing.T) {
		p := chatProject()
		err := ApplyModification(&p, entities.ModificationInstruction{
			Action: entities.ActionRemoveCategory, Category: entities.CategoryConcrete,
		})
		if !errors.Is(err, ErrCategoryNotFound) {
			t.Fatalf("expected ErrCategoryNotFound, got %v", err)
		}
	})
}
