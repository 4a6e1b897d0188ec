package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskboard/internal/model"
)

type AuditGateway interface {
	List(ctx context.Context) ([]model.AuditLog, error)
}

type AuditHandler struct {
	audit  AuditGateway
	logger *zap.Logger
}

func NewAuditHandler(audit AuditGateway, logger *zap.Logger) *AuditHandler {
	return &AuditHandler{audit: audit, logger: logger}
}

func (h *AuditHandler) List(c *gin.Context) {
	logs, err := h.audit.List(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err, "registros no encontrados")
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": logs})
}
