package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskboard/internal/model"
)

type BoardGateway interface {
	List(ctx context.Context) ([]model.Board, error)
	GetByID(ctx context.Context, id int) (*model.Board, error)
	Exists(ctx context.Context, id int) (bool, error)
	Create(ctx context.Context, b *model.Board) error
	Update(ctx context.Context, id int, titulo string) error
	Delete(ctx context.Context, id int) error
}

type BoardHandler struct {
	boards BoardGateway
	logger *zap.Logger
}

func NewBoardHandler(boards BoardGateway, logger *zap.Logger) *BoardHandler {
	return &BoardHandler{boards: boards, logger: logger}
}

func pathID(c *gin.Context, entity string) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + entity + " id"})
		return 0, false
	}
	return id, true
}

func (h *BoardHandler) List(c *gin.Context) {
	boards, err := h.boards.List(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err, boardNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"boards": boards})
}

func (h *BoardHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "board")
	if !ok {
		return
	}
	b, err := h.boards.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err, boardNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"board": b})
}

type boardRequest struct {
	Titulo string `json:"Titulo"`
}

// Create owns the new board to the authenticated user.
func (h *BoardHandler) Create(c *gin.Context) {
	var req boardRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Titulo == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Datos insuficientes para crear un tablero"})
		return
	}

	u := currentUser(c)
	if u == nil {
		c.JSON(http.StatusForbidden, gin.H{"message": "Token is missing!"})
		return
	}

	b := &model.Board{UsuarioPropietarioID: u.UsuarioID, Titulo: req.Titulo}
	if err := h.boards.Create(c.Request.Context(), b); err != nil {
		writeError(c, h.logger, err, boardNotFound)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Tablero creado exitosamente", "id": b.BoardID})
}

func (h *BoardHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "board")
	if !ok {
		return
	}
	var req boardRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Titulo == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Datos insuficientes para actualizar el tablero"})
		return
	}

	exists, err := h.boards.Exists(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err, boardNotFound)
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"message": boardNotFound})
		return
	}

	if err := h.boards.Update(c.Request.Context(), id, req.Titulo); err != nil {
		writeError(c, h.logger, err, boardNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tablero actualizado exitosamente"})
}

func (h *BoardHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "board")
	if !ok {
		return
	}
	exists, err := h.boards.Exists(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err, boardNotFound)
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"message": boardNotFound})
		return
	}
	if err := h.boards.Delete(c.Request.Context(), id); err != nil {
		writeError(c, h.logger, err, boardNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}
