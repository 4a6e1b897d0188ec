package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskboard/internal/model"
)

type AssignmentGateway interface {
	List(ctx context.Context) ([]model.Assignment, error)
	GetByID(ctx context.Context, id int) (*model.Assignment, error)
	Exists(ctx context.Context, id int) (bool, error)
	Create(ctx context.Context, a *model.Assignment) error
	Update(ctx context.Context, id, taskID, userID int) error
	Delete(ctx context.Context, id int) error
}

type AssignmentHandler struct {
	assignments AssignmentGateway
	logger      *zap.Logger
}

func NewAssignmentHandler(assignments AssignmentGateway, logger *zap.Logger) *AssignmentHandler {
	return &AssignmentHandler{assignments: assignments, logger: logger}
}

func (h *AssignmentHandler) List(c *gin.Context) {
	assignments, err := h.assignments.List(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err, assignmentNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"asignaciones": assignments})
}

func (h *AssignmentHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "assignment")
	if !ok {
		return
	}
	a, err := h.assignments.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err, assignmentNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"asignacion": a})
}

type assignmentRequest struct {
	TareaID   int `json:"TareaID"`
	UsuarioID int `json:"UsuarioID"`
}

func (h *AssignmentHandler) Create(c *gin.Context) {
	var req assignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.TareaID == 0 || req.UsuarioID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Datos insuficientes para crear una asignación"})
		return
	}

	a := &model.Assignment{TareaID: req.TareaID, UsuarioID: req.UsuarioID}
	if err := h.assignments.Create(c.Request.Context(), a); err != nil {
		writeError(c, h.logger, err, assignmentNotFound)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Asignación creada exitosamente", "id": a.AsignacionID})
}

func (h *AssignmentHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "assignment")
	if !ok {
		return
	}
	var req assignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.TareaID == 0 || req.UsuarioID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Datos insuficientes para actualizar la asignación"})
		return
	}

	exists, err := h.assignments.Exists(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err, assignmentNotFound)
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"message": assignmentNotFound})
		return
	}

	if err := h.assignments.Update(c.Request.Context(), id, req.TareaID, req.UsuarioID); err != nil {
		writeError(c, h.logger, err, assignmentNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Asignación actualizada exitosamente"})
}

func (h *AssignmentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "assignment")
	if !ok {
		return
	}
	exists, err := h.assignments.Exists(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err, assignmentNotFound)
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"message": assignmentNotFound})
		return
	}
	if err := h.assignments.Delete(c.Request.Context(), id); err != nil {
		writeError(c, h.logger, err, assignmentNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}
