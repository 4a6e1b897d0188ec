package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskboard/internal/apperr"
	"taskboard/internal/model"
	"taskboard/internal/service/user"
)

// AuthService is the slice of the user service the auth endpoints need.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *model.UserSummary, error)
	Register(ctx context.Context, req user.RegisterRequest) (*model.User, error)
	Refresh(userID int) (string, error)
}

type AuthHandler struct {
	svc    AuthService
	logger *zap.Logger
}

func NewAuthHandler(svc AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, logger: logger}
}

type loginRequest struct {
	CorreoElectronico string `json:"CorreoElectronico"`
	Password          string `json:"Password"`
}

// Login exchanges credentials for a session token. Missing credentials
// and unknown users answer 401, a wrong password answers 403.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.CorreoElectronico == "" || req.Password == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Could not verify"})
		return
	}

	token, summary, err := h.svc.Login(c.Request.Context(), req.CorreoElectronico, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrNotFound):
			c.JSON(http.StatusUnauthorized, gin.H{"message": userNotFound})
		case errors.Is(err, user.ErrInvalidPassword):
			c.JSON(http.StatusForbidden, gin.H{"message": "Password is incorrect"})
		default:
			h.logger.Error("login failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": summary})
}

type registerRequest struct {
	Nombre            string `json:"Nombre" binding:"required"`
	Apellido          string `json:"Apellido" binding:"required"`
	CorreoElectronico string `json:"CorreoElectronico" binding:"required,email"`
	Password          string `json:"Password" binding:"required,min=6"`
}

// Register creates the account plus its default board.
func (h *AuthHandler) Register(c *gin.Context) {
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

	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
}

// RefreshToken issues a fresh token for the already-authenticated user.
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	u := currentUser(c)
	if u == nil {
		c.JSON(http.StatusForbidden, gin.H{"message": "Token is missing!"})
		return
	}

	token, err := h.svc.Refresh(u.UsuarioID)
	if err != nil {
		h.logger.Error("token refresh failed", zap.Int("user_id", u.UsuarioID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Logout is stateless; the client discards its token.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}
