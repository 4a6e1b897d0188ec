package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskboard/internal/model"
)

type ColumnGateway interface {
	List(ctx context.Context) ([]model.Column, error)
	GetByID(ctx context.Context, id int) (*model.Column, error)
	Exists(ctx context.Context, id int) (bool, error)
	Create(ctx context.Context, col *model.Column) error
	Update(ctx context.Context, id int, nombre string) error
	Delete(ctx context.Context, id int) error
}

type ColumnHandler struct {
	columns ColumnGateway
	logger  *zap.Logger
}

func NewColumnHandler(columns ColumnGateway, logger *zap.Logger) *ColumnHandler {
	return &ColumnHandler{columns: columns, logger: logger}
}

func (h *ColumnHandler) List(c *gin.Context) {
	columns, err := h.columns.List(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err, columnNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"columnas": columns})
}

func (h *ColumnHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "column")
	if !ok {
		return
	}
	col, err := h.columns.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err, columnNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"columna": col})
}

type columnRequest struct {
	ProyectoID    int    `json:"ProyectoID"`
	ColumnaNombre string `json:"ColumnaNombre"`
}

func (h *ColumnHandler) Create(c *gin.Context) {
	var req columnRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ProyectoID == 0 || req.ColumnaNombre == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Datos insuficientes para crear una columna"})
		return
	}

	col := &model.Column{ProyectoID: req.ProyectoID, ColumnaNombre: req.ColumnaNombre}
	if err := h.columns.Create(c.Request.Context(), col); err != nil {
		writeError(c, h.logger, err, columnNotFound)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Columna creada exitosamente", "id": col.ColumnaID})
}

func (h *ColumnHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "column")
	if !ok {
		return
	}
	var req columnRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ColumnaNombre == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Datos insuficientes para actualizar la columna"})
		return
	}

	exists, err := h.columns.Exists(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err, columnNotFound)
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"message": columnNotFound})
		return
	}

	if err := h.columns.Update(c.Request.Context(), id, req.ColumnaNombre); err != nil {
		writeError(c, h.logger, err, columnNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Columna actualizada exitosamente"})
}

func (h *ColumnHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "column")
	if !ok {
		return
	}
	exists, err := h.columns.Exists(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err, columnNotFound)
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"message": columnNotFound})
		return
	}
	if err := h.columns.Delete(c.Request.Context(), id); err != nil {
		writeError(c, h.logger, err, columnNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}
