package routes

import (
	"log"
	"strconv"

	_ "bidworks/docs" // This will be auto-generated
	"bidworks/internal/adapter/http/handlers"
	repository2 "bidworks/internal/adapter/persistence/repository"
	"bidworks/internal/infrastructure/ai"
	"bidworks/internal/infrastructure/database"
	"bidworks/internal/infrastructure/geocode"
	"bidworks/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	projectRepo := repository2.NewProjectDynamoRepository(ddb)
	clientRepo := repository2.NewClientDynamoRepository(ddb)
	settingsRepo := repository2.NewSettingsDynamoRepository(ddb)

	aiClient := ai.NewClientFromEnv()

	projectUseCase := usecase.NewProjectUseCase(projectRepo)
	clientUseCase := usecase.NewClientUseCase(clientRepo)
	settingsUseCase := usecase.NewSettingsUseCase(settingsRepo)
	draftReviewUseCase := usecase.NewDraftReviewUseCase(ai.NewDraftGenerator(aiClient), projectRepo, settingsRepo)
	chatUseCase := usecase.NewChatUseCase(projectRepo, ai.NewEstimateAgent(aiClient))
	propertyUseCase := usecase.NewPropertyUseCase(geocode.NewSimulatedPropertyLookup())
	reportUseCase := usecase.NewReportUseCase(projectRepo, settingsRepo)
	backupUseCase := usecase.NewBackupUseCase(projectRepo, clientRepo, settingsRepo)

	projectHandler := handlers.NewProjectHandler(projectUseCase)
	clientHandler := handlers.NewClientHandler(clientUseCase)
	settingsHandler := handlers.NewSettingsHandler(settingsUseCase)
	calculatorHandler := handlers.NewCalculatorHandler(settingsUseCase)
	draftReviewHandler := handlers.NewDraftReviewHandler(draftReviewUseCase)
	chatHandler := handlers.NewChatHandler(chatUseCase)
	propertyHandler := handlers.NewPropertyHandler(propertyUseCase)
	reportHandler := handlers.NewReportHandler(reportUseCase)
	backupHandler := handlers.NewBackupHandler(backupUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addEstimationRoutes(v1, projectHandler, draftReviewHandler, chatHandler, reportHandler)
	addCalculatorRoutes(v1, calculatorHandler)
	addWorkspaceRoutes(v1, clientHandler, settingsHandler, propertyHandler, backupHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
