package handlers

import (
	"errors"
	"log"
	"net/http"

	request "bidworks/internal/adapter/http/dto/request"
	response "bidworks/internal/adapter/http/dto/response"
	"bidworks/internal/domain/entities"
	"bidworks/internal/usecase"
	"bidworks/internal/usecase/interfaces"
	"bidworks/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidDraftPayload  = pkg.NewDomainErrorSimple("INVALID_DRAFT_INPUT", "Invalid draft payload", http.StatusBadRequest)
	errInvalidTogglePayload = pkg.NewDomainErrorSimple("INVALID_TOGGLE_INPUT", "Toggle payload must carry a selected flag", http.StatusBadRequest)
)

// DraftReviewHandler drives the AI draft flow: start a review session,
// toggle and edit the suggestions, then accept into the project or cancel.

type DraftReviewHandler struct {
	usecase usecase.IDraftReviewUseCase
}

func NewDraftReviewHandler(uc usecase.IDraftReviewUseCase) *DraftReviewHandler {
	return &DraftReviewHandler{usecase: uc}
}

func (h *DraftReviewHandler) StartReview(c *gin.Context) {
	var payload request.StartDraftRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}

	projectID := c.Param("id")
	log.Printf("[draft][handler] start review project_id=%s categories=%v", projectID, payload.Categories)
	session, err := h.usecase.Start(c.Request.Context(), projectID, payload.Notes, payload.ToCategoryTypes())
	if err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromReviewSession(session))
}

func (h *DraftReviewHandler) GetReview(c *gin.Context) {
	session, err := h.usecase.Get(c.Param("session_id"))
	if err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromReviewSession(session))
}

func (h *DraftReviewHandler) ToggleCategory(c *gin.Context) {
	var payload request.ToggleRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Selected == nil {
		c.JSON(errInvalidTogglePayload.HTTPStatus, errInvalidTogglePayload.ToHTTPError())
		return
	}

	session, err := h.usecase.ToggleCategory(c.Param("session_id"), entities.CategoryType(c.Param("type")), *payload.Selected)
	if err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromReviewSession(session))
}

func (h *DraftReviewHandler) ToggleItem(c *gin.Context) {
	index, ok := itemIndex(c)
	if !ok {
		return
	}
	var payload request.ToggleRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Selected == nil {
		c.JSON(errInvalidTogglePayload.HTTPStatus, errInvalidTogglePayload.ToHTTPError())
		return
	}

	session, err := h.usecase.ToggleItem(c.Param("session_id"), entities.CategoryType(c.Param("type")), index, *payload.Selected)
	if err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromReviewSession(session))
}

func (h *DraftReviewHandler) UpdateItem(c *gin.Context) {
	index, ok := itemIndex(c)
	if !ok {
		return
	}
	var payload request.LineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidItemPayload.HTTPStatus, errInvalidItemPayload.ToHTTPError())
		return
	}

	session, err := h.usecase.UpdateItem(c.Param("session_id"), entities.CategoryType(c.Param("type")), index, payload.ToLineItem())
	if err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromReviewSession(session))
}

func (h *DraftReviewHandler) Regenerate(c *gin.Context) {
	session, err := h.usecase.Regenerate(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromReviewSession(session))
}

func (h *DraftReviewHandler) AcceptSelected(c *gin.Context) {
	project, err := h.usecase.AcceptSelected(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProject(project))
}

func (h *DraftReviewHandler) AcceptAll(c *gin.Context) {
	project, err := h.usecase.AcceptAll(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProject(project))
}

func (h *DraftReviewHandler) CancelReview(c *gin.Context) {
	if err := h.usecase.Cancel(c.Param("session_id")); err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapDraftError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProjectID),
		errors.Is(err, usecase.ErrInvalidReviewID),
		errors.Is(err, usecase.ErrInvalidCategoryType),
		errors.Is(err, usecase.ErrNothingSelected):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrReviewNotFound):
		return pkg.NewDomainErrorSimple("REVIEW_NOT_FOUND", "Review session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrReviewCategoryGone), errors.Is(err, usecase.ErrReviewItemGone):
		return pkg.NewDomainErrorSimple("DRAFT_ENTRY_NOT_FOUND", "Draft category or item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDraftEmpty):
		return pkg.NewDomainErrorSimple("DRAFT_EMPTY", "Draft has no categories to accept", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrRegenerateSuperseded):
		return pkg.NewDomainErrorSimple("REGENERATE_SUPERSEDED", "A newer regeneration replaced this one", http.StatusConflict)
	default:
		return mapAIError(err)
	}
}

// mapAIError translates provider failures into statuses the UI can act on.
func mapAIError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrAIDisabled), errors.Is(err, interfaces.ErrAINotConfigured):
		return pkg.NewDomainErrorSimple("AI_NOT_CONFIGURED", "AI features are disabled or not configured", http.StatusServiceUnavailable)
	case errors.Is(err, interfaces.ErrAIRateLimited):
		return pkg.NewDomainErrorSimple("AI_RATE_LIMITED", "AI provider rate limit hit, try again shortly", http.StatusTooManyRequests)
	case errors.Is(err, interfaces.ErrAITimeout):
		return pkg.NewDomainErrorSimple("AI_TIMEOUT", "AI provider timed out", http.StatusGatewayTimeout)
	case errors.Is(err, interfaces.ErrAIMalformedResponse):
		return pkg.NewDomainErrorSimple("AI_MALFORMED_RESPONSE", "AI returned an unusable draft, try regenerating", http.StatusUnprocessableEntity)
	case errors.Is(err, interfaces.ErrAIUnavailable):
		return pkg.NewDomainErrorSimple("AI_UNAVAILABLE", "AI provider unavailable", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
