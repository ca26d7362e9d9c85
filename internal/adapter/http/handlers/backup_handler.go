package handlers

import (
	"errors"
	"log"
	"net/http"

	"bidworks/internal/usecase"
	"bidworks/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidBackupPayload = pkg.NewDomainErrorSimple("INVALID_BACKUP_INPUT", "Invalid backup payload", http.StatusBadRequest)

// BackupHandler exports and imports the whole dataset as one JSON document.

type BackupHandler struct {
	usecase usecase.IBackupUseCase
}

func NewBackupHandler(uc usecase.IBackupUseCase) *BackupHandler {
	return &BackupHandler{usecase: uc}
}

func (h *BackupHandler) Export(c *gin.Context) {
	backup, err := h.usecase.Export(c.Request.Context())
	if err != nil {
		appErr := mapBackupError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Header("Content-Disposition", `attachment; filename="bidworks-backup.json"`)
	c.JSON(http.StatusOK, backup)
}

func (h *BackupHandler) Import(c *gin.Context) {
	var payload usecase.Backup
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBackupPayload.HTTPStatus, errInvalidBackupPayload.ToHTTPError())
		return
	}

	log.Printf("[backup][handler] import start projects=%d clients=%d", len(payload.Projects), len(payload.Clients))
	if err := h.usecase.Import(c.Request.Context(), payload); err != nil {
		appErr := mapBackupError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapBackupError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBackup):
		return pkg.NewDomainErrorSimple("INVALID_BACKUP", "Backup document failed validation", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
