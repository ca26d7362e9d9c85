package routes

import (
	"bidworks/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathCalculators = "/calculators"

func addCalculatorRoutes(rg *gin.RouterGroup, calculatorHandler *handlers.CalculatorHandler) {
	calculators := rg.Group(PathCalculators)
	{
		calculators.POST("/roofing", calculatorHandler.Roofing)
		calculators.POST("/windows", calculatorHandler.Windows)
		calculators.POST("/gutters", calculatorHandler.Gutters)
		calculators.POST("/siding", calculatorHandler.Siding)
		calculators.POST("/doors", calculatorHandler.Doors)
		calculators.POST("/painting", calculatorHandler.Painting)
		calculators.POST("/concrete", calculatorHandler.Concrete)
		calculators.POST("/fencing", calculatorHandler.Fencing)
	}
}
