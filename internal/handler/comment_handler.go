package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskboard/internal/model"
)

type CommentGateway interface {
	List(ctx context.Context) ([]model.Comment, error)
	GetByID(ctx context.Context, id int) (*model.Comment, error)
	Create(ctx context.Context, cm *model.Comment) error
	Update(ctx context.Context, id int, texto string) error
	Delete(ctx context.Context, id int) error
}

type CommentHandler struct {
	comments CommentGateway
	logger   *zap.Logger
}

func NewCommentHandler(comments CommentGateway, logger *zap.Logger) *CommentHandler {
	return &CommentHandler{comments: comments, logger: logger}
}

func (h *CommentHandler) List(c *gin.Context) {
	comments, err := h.comments.List(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err, commentNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comentarios": comments})
}

func (h *CommentHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "comment")
	if !ok {
		return
	}
	cm, err := h.comments.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err, commentNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comentario": cm})
}

type commentCreateRequest struct {
	TareaID   int    `json:"TareaID" binding:"required"`
	UsuarioID int    `json:"UsuarioID" binding:"required"`
	Texto     string `json:"Texto" binding:"required"`
}

func (h *CommentHandler) Create(c *gin.Context) {
	var req commentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}

	cm := &model.Comment{
		TareaID:   req.TareaID,
		UsuarioID: req.UsuarioID,
		Texto:     req.Texto,
		Fecha:     time.Now().UTC(),
	}
	if err := h.comments.Create(c.Request.Context(), cm); err != nil {
		writeError(c, h.logger, err, commentNotFound)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Comentario creado exitosamente", "id": cm.ComentarioID})
}

type commentUpdateRequest struct {
	Texto string `json:"Texto" binding:"required"`
}

func (h *CommentHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "comment")
	if !ok {
		return
	}
	var req commentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}

	if _, err := h.comments.GetByID(c.Request.Context(), id); err != nil {
		writeError(c, h.logger, err, commentNotFound)
		return
	}

	if err := h.comments.Update(c.Request.Context(), id, req.Texto); err != nil {
		writeError(c, h.logger, err, commentNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comentario actualizado exitosamente"})
}

func (h *CommentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "comment")
	if !ok {
		return
	}
	if _, err := h.comments.GetByID(c.Request.Context(), id); err != nil {
		writeError(c, h.logger, err, commentNotFound)
		return
	}
	if err := h.comments.Delete(c.Request.Context(), id); err != nil {
		writeError(c, h.logger, err, commentNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}
