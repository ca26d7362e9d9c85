package handlers

import (
	"net/http"

	"bidworks/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ReportHandler renders a project as a printable plain-text estimate.

type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

func (h *ReportHandler) EstimateDocument(c *gin.Context) {
	doc, err := h.usecase.EstimateDocument(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.String(http.StatusOK, "%s", doc)
}
