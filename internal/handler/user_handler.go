package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskboard/internal/auth"
	"taskboard/internal/model"
	"taskboard/internal/service/user"
)

type UserGateway interface {
	List(ctx context.Context) ([]model.User, error)
	GetByID(ctx context.Context, id int) (*model.User, error)
	Update(ctx context.Context, u *model.User) error
	Delete(ctx context.Context, id int) error
}

type UserHandler struct {
	users  UserGateway
	svc    AuthService
	logger *zap.Logger
}

func NewUserHandler(users UserGateway, svc AuthService, logger *zap.Logger) *UserHandler {
	return &UserHandler{users: users, svc: svc, logger: logger}
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err, userNotFound)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "user")
	if !ok {
		return
	}
	u, err := h.users.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err, userNotFound)
		return
	}
	c.JSON(http.StatusOK, u)
}

// Create is the unauthenticated POST variant of registration; it runs
// the same flow, default board included.
func (h *UserHandler) Create(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}

	if _, err := h.svc.Register(c.Request.Context(), user.RegisterRequest{
		Nombre:            req.Nombre,
		Apellido:          req.Apellido,
		CorreoElectronico: req.CorreoElectronico,
		Password:          req.Password,
	}); err != nil {
		writeError(c, h.logger, err, userNotFound)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "User created successfully"})
}

type userUpdateRequest struct {
	Nombre            string `json:"Nombre" binding:"required"`
	Apellido          string `json:"Apellido" binding:"required"`
	CorreoElectronico string `json:"CorreoElectronico" binding:"required,email"`
	Telefono          string `json:"Telefono"`
	ImagenPerfil      string `json:"ImagenPerfil"`
	Password          string `json:"Password" binding:"required,min=6"`
}

// Update replaces the stored record, rehashing the submitted password.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "user")
	if !ok {
		return
	}
	var req userUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}

	if _, err := h.users.GetByID(c.Request.Context(), id); err != nil {
		writeError(c, h.logger, err, userNotFound)
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		writeError(c, h.logger, err, userNotFound)
		return
	}

	u := &model.User{
		UsuarioID:         id,
		Nombre:            req.Nombre,
		Apellido:          req.Apellido,
		CorreoElectronico: req.CorreoElectronico,
		Telefono:          req.Telefono,
		ImagenPerfil:      req.ImagenPerfil,
		PasswordHash:      hash,
	}
	if err := h.users.Update(c.Request.Context(), u); err != nil {
		writeError(c, h.logger, err, userNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User updated successfully"})
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "user")
	if !ok {
		return
	}
	if _, err := h.users.GetByID(c.Request.Context(), id); err != nil {
		writeError(c, h.logger, err, userNotFound)
		return
	}
	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		writeError(c, h.logger, err, userNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}
