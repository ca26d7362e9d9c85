package handlers

import (
	"net/http"

	"bidworks/internal/domain/calculator"
	"bidworks/internal/domain/entities"
	"bidworks/internal/usecase"
	"bidworks/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCalculatorPayload = pkg.NewDomainErrorSimple("INVALID_CALCULATOR_INPUT", "Invalid calculator payload", http.StatusBadRequest)

// CalculatorHandler exposes the eight trade calculators. Each endpoint binds
// the trade's input, loads the current pricing table and returns the line
// item breakdown without touching any project.

type CalculatorHandler struct {
	settings usecase.ISettingsUseCase
}

func NewCalculatorHandler(settings usecase.ISettingsUseCase) *CalculatorHandler {
	return &CalculatorHandler{settings: settings}
}

func (h *CalculatorHandler) pricing(c *gin.Context) (entities.PricingTable, bool) {
	pricing, err := h.settings.GetPricing(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return entities.PricingTable{}, false
	}
	return pricing, true
}

func (h *CalculatorHandler) Roofing(c *gin.Context) {
	var in calculator.RoofingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(errInvalidCalculatorPayload.HTTPStatus, errInvalidCalculatorPayload.ToHTTPError())
		return
	}
	pricing, ok := h.pricing(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, calculator.CalculateRoofing(in, pricing))
}

func (h *CalculatorHandler) Windows(c *gin.Context) {
	var in calculator.WindowsInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(errInvalidCalculatorPayload.HTTPStatus, errInvalidCalculatorPayload.ToHTTPError())
		return
	}
	pricing, ok := h.pricing(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, calculator.CalculateWindows(in, pricing))
}

func (h *CalculatorHandler) Gutters(c *gin.Context) {
	var in calculator.GuttersInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(errInvalidCalculatorPayload.HTTPStatus, errInvalidCalculatorPayload.ToHTTPError())
		return
	}
	pricing, ok := h.pricing(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, calculator.CalculateGutters(in, pricing))
}

func (h *CalculatorHandler) Siding(c *gin.Context) {
	var in calculator.SidingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(errInvalidCalculatorPayload.HTTPStatus, errInvalidCalculatorPayload.ToHTTPError())
		return
	}
	pricing, ok := h.pricing(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, calculator.CalculateSiding(in, pricing))
}

func (h *CalculatorHandler) Doors(c *gin.Context) {
	var in calculator.DoorsInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(errInvalidCalculatorPayload.HTTPStatus, errInvalidCalculatorPayload.ToHTTPError())
		return
	}
	pricing, ok := h.pricing(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, calculator.CalculateDoors(in, pricing))
}

func (h *CalculatorHandler) Painting(c *gin.Context) {
	var in calculator.PaintingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(errInvalidCalculatorPayload.HTTPStatus, errInvalidCalculatorPayload.ToHTTPError())
		return
	}
	pricing, ok := h.pricing(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, calculator.CalculatePainting(in, pricing))
}

func (h *CalculatorHandler) Concrete(c *gin.Context) {
	var in calculator.ConcreteInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(errInvalidCalculatorPayload.HTTPStatus, errInvalidCalculatorPayload.ToHTTPError())
		return
	}
	pricing, ok := h.pricing(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, calculator.CalculateConcrete(in, pricing))
}

func (h *CalculatorHandler) Fencing(c *gin.Context) {
	var in calculator.FencingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(errInvalidCalculatorPayload.HTTPStatus, errInvalidCalculatorPayload.ToHTTPError())
		return
	}
	pricing, ok := h.pricing(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, calculator.CalculateFencing(in, pricing))
}
