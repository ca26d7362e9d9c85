package routes

import (
	"bidworks/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathClients  = "/clients"
	PathSettings = "/settings"
	PathProperty = "/property"
	PathBackup   = "/backup"
)

func addWorkspaceRoutes(
	rg *gin.RouterGroup,
	clientHandler *handlers.ClientHandler,
	settingsHandler *handlers.SettingsHandler,
	propertyHandler *handlers.PropertyHandler,
	backupHandler *handlers.BackupHandler,
) {
	clients := rg.Group(PathClients)
	{
		clients.GET("", clientHandler.ListClients)
		clients.POST("", clientHandler.CreateClient)
		clients.GET("/:id", clientHandler.GetClient)
		clients.PUT("/:id", clientHandler.UpdateClient)
		clients.DELETE("/:id", clientHandler.DeleteClient)
	}

	settings := rg.Group(PathSettings)
	{
		settings.GET("", settingsHandler.GetSettings)
		settings.PUT("", settingsHandler.SaveSettings)
		settings.GET("/pricing", settingsHandler.GetPricing)
		settings.PUT("/pricing", settingsHandler.SavePricing)
		settings.POST("/pricing/reset", settingsHandler.ResetPricing)
		settings.GET("/company", settingsHandler.GetCompanyInfo)
		settings.PUT("/company", settingsHandler.SaveCompanyInfo)
	}

	rg.GET(PathProperty+"/lookup", propertyHandler.Lookup)

	backup := rg.Group(PathBackup)
	{
		backup.GET("/export", backupHandler.Export)
		backup.POST("/import", backupHandler.Import)
	}
}
