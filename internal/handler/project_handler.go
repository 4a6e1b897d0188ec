package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskboard/internal/model"
)

type ProjectGateway interface {
	List(ctx context.Context) ([]model.Project, error)
	GetByID(ctx context.Context, id int) (*model.Project, error)
	Exists(ctx context.Context, id int) (bool, error)
	Create(ctx context.Context, p *model.Project) error
	Update(ctx context.Context, id, boardID int, titulo string) error
	Delete(ctx context.Context, id int) error
}

type ProjectHandler struct {
	projects ProjectGateway
	logger   *zap.Logger
}

func NewProjectHandler(projects ProjectGateway, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{projects: projects, logger: logger}
}

func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projects.List(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err, projectNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"proyectos": projects})
}

func (h *ProjectHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "project")
	if !ok {
		return
	}
	p, err := h.projects.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err, projectNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"proyecto": p})
}

type projectRequest struct {
	BoardID int    `json:"BoardID" binding:"required"`
	Titulo  string `json:"Titulo" binding:"required"`
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}

	p := &model.Project{BoardID: req.BoardID, Titulo: req.Titulo}
	if err := h.projects.Create(c.Request.Context(), p); err != nil {
		writeError(c, h.logger, err, projectNotFound)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Proyecto creado exitosamente", "id": p.ProyectoID})
}

func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "project")
	if !ok {
		return
	}
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}

	exists, err := h.projects.Exists(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err, projectNotFound)
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"message": projectNotFound})
		return
	}

	if err := h.projects.Update(c.Request.Context(), id, req.BoardID, req.Titulo); err != nil {
		writeError(c, h.logger, err, projectNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Proyecto actualizado exitosamente"})
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "project")
	if !ok {
		return
	}
	exists, err := h.projects.Exists(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err, projectNotFound)
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"message": projectNotFound})
		return
	}
	if err := h.projects.Delete(c.Request.Context(), id); err != nil {
		writeError(c, h.logger, err, projectNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}
