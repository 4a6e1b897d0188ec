package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskboard/internal/model"
)

type ProfileGateway interface {
	List(ctx context.Context) ([]model.Profile, error)
	GetByID(ctx context.Context, id int) (*model.Profile, error)
	Exists(ctx context.Context, id int) (bool, error)
	Create(ctx context.Context, p *model.Profile) error
	Update(ctx context.Context, p *model.Profile) error
	Delete(ctx context.Context, id int) error
}

type ProfileHandler struct {
	profiles ProfileGateway
	logger   *zap.Logger
}

func NewProfileHandler(profiles ProfileGateway, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, logger: logger}
}

func (h *ProfileHandler) List(c *gin.Context) {
	profiles, err := h.profiles.List(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err, profileNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"perfiles": profiles})
}

func (h *ProfileHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "profile")
	if !ok {
		return
	}
	p, err := h.profiles.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err, profileNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"perfil": p})
}

type profileRequest struct {
	UsuarioID int    `json:"UsuarioID" binding:"required"`
	Editable  *bool  `json:"Editable"`
	Biografia string `json:"Biografia"`
	Intereses string `json:"Intereses"`
	Ocupacion string `json:"Ocupacion"`
}

// Profiles default to editable when the flag is omitted.
func (h *ProfileHandler) Create(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}

	editable := true
	if req.Editable != nil {
		editable = *req.Editable
	}
	p := &model.Profile{
		UsuarioID: req.UsuarioID,
		Editable:  editable,
		Biografia: req.Biografia,
		Intereses: req.Intereses,
		Ocupacion: req.Ocupacion,
	}
	if err := h.profiles.Create(c.Request.Context(), p); err != nil {
		writeError(c, h.logger, err, profileNotFound)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Perfil creado exitosamente", "id": p.PerfilID})
}

func (h *ProfileHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "profile")
	if !ok {
		return
	}
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}

	exists, err := h.profiles.Exists(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err, profileNotFound)
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"message": profileNotFound})
		return
	}

	editable := true
	if req.Editable != nil {
		editable = *req.Editable
	}
	p := &model.Profile{
		PerfilID:  id,
		UsuarioID: req.UsuarioID,
		Editable:  editable,
		Biografia: req.Biografia,
		Intereses: req.Intereses,
		Ocupacion: req.Ocupacion,
	}
	if err := h.profiles.Update(c.Request.Context(), p); err != nil {
		writeError(c, h.logger, err, profileNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Perfil actualizado exitosamente"})
}

func (h *ProfileHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "profile")
	if !ok {
		return
	}
	exists, err := h.profiles.Exists(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err, profileNotFound)
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"message": profileNotFound})
		return
	}
	if err := h.profiles.Delete(c.Request.Context(), id); err != nil {
		writeError(c, h.logger, err, profileNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}
