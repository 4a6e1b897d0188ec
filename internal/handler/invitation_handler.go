package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskboard/internal/model"
)

type InvitationGateway interface {
	List(ctx context.Context) ([]model.Invitation, error)
	GetByID(ctx context.Context, id int) (*model.Invitation, error)
	Exists(ctx context.Context, id int) (bool, error)
	Update(ctx context.Context, id int, estado string) error
	Delete(ctx context.Context, id int) error
}

// InvitationCreator runs the create-plus-notify flow.
type InvitationCreator interface {
	Create(ctx context.Context, originID, destinationID int) (*model.Invitation, error)
}

type InvitationHandler struct {
	invitations InvitationGateway
	creator     InvitationCreator
	logger      *zap.Logger
}

func NewInvitationHandler(invitations InvitationGateway, creator InvitationCreator, logger *zap.Logger) *InvitationHandler {
	return &InvitationHandler{invitations: invitations, creator: creator, logger: logger}
}

func (h *InvitationHandler) List(c *gin.Context) {
	invitations, err := h.invitations.List(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err, invitationNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invitaciones": invitations})
}

func (h *InvitationHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "invitation")
	if !ok {
		return
	}
	i, err := h.invitations.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err, invitationNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invitacion": i})
}

type invitationCreateRequest struct {
	UsuarioDestinoID int `json:"UsuarioDestinoID" binding:"required"`
}

// Create sends an invitation from the authenticated user.
func (h *InvitationHandler) Create(c *gin.Context) {
	var req invitationCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}

	u := currentUser(c)
	if u == nil {
		c.JSON(http.StatusForbidden, gin.H{"message": "Token is missing!"})
		return
	}

	i, err := h.creator.Create(c.Request.Context(), u.UsuarioID, req.UsuarioDestinoID)
	if err != nil {
		writeError(c, h.logger, err, invitationNotFound)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Invitación creada exitosamente", "id": i.InvitacionID})
}

type invitationUpdateRequest struct {
	Estado string `json:"Estado"`
}

func (h *InvitationHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "invitation")
	if !ok {
		return
	}
	var req invitationUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil || !model.ValidInvitationState(req.Estado) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Datos insuficientes para actualizar la invitación"})
		return
	}

	exists, err := h.invitations.Exists(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err, invitationNotFound)
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"message": invitationNotFound})
		return
	}

	if err := h.invitations.Update(c.Request.Context(), id, req.Estado); err != nil {
		writeError(c, h.logger, err, invitationNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Invitación actualizada exitosamente"})
}

func (h *InvitationHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "invitation")
	if !ok {
		return
	}
	exists, err := h.invitations.Exists(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err, invitationNotFound)
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"message": invitationNotFound})
		return
	}
	if err := h.invitations.Delete(c.Request.Context(), id); err != nil {
		writeError(c, h.logger, err, invitationNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}
