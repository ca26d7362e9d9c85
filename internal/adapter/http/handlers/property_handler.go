package handlers

import (
	"errors"
	"net/http"

	response "bidworks/internal/adapter/http/dto/response"
	"bidworks/internal/usecase"
	"bidworks/pkg"

	"github.com/gin-gonic/gin"
)

// PropertyHandler resolves an address into property measurements used to
// prefill the calculators.

type PropertyHandler struct {
	usecase usecase.IPropertyUseCase
}

func NewPropertyHandler(uc usecase.IPropertyUseCase) *PropertyHandler {
	return &PropertyHandler{usecase: uc}
}

func (h *PropertyHandler) Lookup(c *gin.Context) {
	data, err := h.usecase.Lookup(c.Request.Context(), c.Query("address"))
	if err != nil {
		appErr := mapPropertyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPropertyData(data))
}

func mapPropertyError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAddress):
		return pkg.NewDomainErrorSimple("INVALID_ADDRESS", "Address query parameter is required", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
