package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskboard/internal/model"
)

type LabelGateway interface {
	List(ctx context.Context) ([]model.Label, error)
	GetByID(ctx context.Context, id int) (*model.Label, error)
	Exists(ctx context.Context, id int) (bool, error)
	Create(ctx context.Context, l *model.Label) error
	Update(ctx context.Context, id int, nombre, color string) error
	Delete(ctx context.Context, id int) error
}

type LabelHandler struct {
	labels LabelGateway
	logger *zap.Logger
}

func NewLabelHandler(labels LabelGateway, logger *zap.Logger) *LabelHandler {
	return &LabelHandler{labels: labels, logger: logger}
}

func (h *LabelHandler) List(c *gin.Context) {
	labels, err := h.labels.List(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err, labelNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"etiquetas": labels})
}

func (h *LabelHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "label")
	if !ok {
		return
	}
	l, err := h.labels.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err, labelNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"etiqueta": l})
}

// Label payloads use lowercase keys, unlike the rest of the surface.
type labelRequest struct {
	Nombre string `json:"nombre"`
	Color  string `json:"color"`
}

func (h *LabelHandler) Create(c *gin.Context) {
	var req labelRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Nombre == "" || req.Color == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Datos insuficientes para crear una etiqueta"})
		return
	}

	l := &model.Label{Nombre: req.Nombre, Color: req.Color}
	if err := h.labels.Create(c.Request.Context(), l); err != nil {
		writeError(c, h.logger, err, labelNotFound)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Etiqueta creada exitosamente", "id": l.EtiquetaID})
}

func (h *LabelHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "label")
	if !ok {
		return
	}
	var req labelRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Nombre == "" || req.Color == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Datos insuficientes para actualizar la etiqueta"})
		return
	}

	exists, err := h.labels.Exists(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err, labelNotFound)
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"message": labelNotFound})
		return
	}

	if err := h.labels.Update(c.Request.Context(), id, req.Nombre, req.Color); err != nil {
		writeError(c, h.logger, err, labelNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Etiqueta actualizada exitosamente"})
}

func (h *LabelHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "label")
	if !ok {
		return
	}
	exists, err := h.labels.Exists(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err, labelNotFound)
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"message": labelNotFound})
		return
	}
	if err := h.labels.Delete(c.Request.Context(), id); err != nil {
		writeError(c, h.logger, err, labelNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}
