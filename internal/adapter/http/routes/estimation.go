package routes

import (
	"bidworks/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProjects = "/projects"
	PathDrafts   = "/drafts"
)

func addEstimationRoutes(
	rg *gin.RouterGroup,
	projectHandler *handlers.ProjectHandler,
	draftHandler *handlers.DraftReviewHandler,
	chatHandler *handlers.ChatHandler,
	reportHandler *handlers.ReportHandler,
) {
	projects := rg.Group(PathProjects)
	{
		projects.GET("", projectHandler.ListProjects)
		projects.POST("", projectHandler.CreateProject)
		projects.GET("/:id", projectHandler.GetProject)
		projects.PUT("/:id", projectHandler.UpdateProject)
		projects.DELETE("/:id", projectHandler.DeleteProject)

		projects.POST("/:id/categories/:type", projectHandler.AddCategory)
		projects.DELETE("/:id/categories/:type", projectHandler.RemoveCategory)
		projects.PUT("/:id/categories/:type/items", projectHandler.SetCategoryItems)
		projects.POST("/:id/categories/:type/items", projectHandler.AddItem)
		projects.PUT("/:id/categories/:type/items/:index", projectHandler.UpdateItem)
		projects.DELETE("/:id/categories/:type/items/:index", projectHandler.RemoveItem)

		projects.POST("/:id/drafts", draftHandler.StartReview)
		projects.POST("/:id/chat", chatHandler.Chat)
		projects.GET("/:id/document", reportHandler.EstimateDocument)
	}

	drafts := rg.Group(PathDrafts)
	{
		drafts.GET("/:session_id", draftHandler.GetReview)
		drafts.DELETE("/:session_id", draftHandler.CancelReview)
		drafts.PATCH("/:session_id/categories/:type", draftHandler.ToggleCategory)
		drafts.PATCH("/:session_id/categories/:type/items/:index", draftHandler.ToggleItem)
		drafts.PUT("/:session_id/categories/:type/items/:index", draftHandler.UpdateItem)
		drafts.POST("/:session_id/regenerate", draftHandler.Regenerate)
		drafts.POST("/:session_id/accept", draftHandler.AcceptSelected)
		drafts.POST("/:session_id/accept-all", draftHandler.AcceptAll)
	}
}
