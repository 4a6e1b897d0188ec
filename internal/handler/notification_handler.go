package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskboard/internal/model"
)

// NotificationGateway is the read/update side; creation goes through the
// invitation service so the MQ event fires alongside the insert.
type NotificationGateway interface {
	List(ctx context.Context) ([]model.Notification, error)
	GetByID(ctx context.Context, id int) (*model.Notification, error)
	Exists(ctx context.Context, id int) (bool, error)
	Update(ctx context.Context, id int, mensaje string, leida bool) error
	Delete(ctx context.Context, id int) error
}

// NotificationEmitter creates the row and publishes the event.
type NotificationEmitter interface {
	Notify(ctx context.Context, userID int, message string) (int, error)
}

type NotificationHandler struct {
	notifications NotificationGateway
	emitter       NotificationEmitter
	logger        *zap.Logger
}

func NewNotificationHandler(notifications NotificationGateway, emitter NotificationEmitter, logger *zap.Logger) *NotificationHandler {
	return &NotificationHandler{notifications: notifications, emitter: emitter, logger: logger}
}

func (h *NotificationHandler) List(c *gin.Context) {
	notifications, err := h.notifications.List(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err, notificationNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notificaciones": notifications})
}

func (h *NotificationHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "notification")
	if !ok {
		return
	}
	n, err := h.notifications.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err, notificationNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notificacion": n})
}

type notificationCreateRequest struct {
	UsuarioID int    `json:"UsuarioID" binding:"required"`
	Mensaje   string `json:"Mensaje" binding:"required"`
}

func (h *NotificationHandler) Create(c *gin.Context) {
	var req notificationCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}

	id, err := h.emitter.Notify(c.Request.Context(), req.UsuarioID, req.Mensaje)
	if err != nil {
		writeError(c, h.logger, err, notificationNotFound)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Notificación creada exitosamente", "id": id})
}

type notificationUpdateRequest struct {
	Mensaje string `json:"Mensaje" binding:"required"`
	Leida   bool   `json:"Leida"`
}

func (h *NotificationHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "notification")
	if !ok {
		return
	}
	var req notificationUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}

	exists, err := h.notifications.Exists(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err, notificationNotFound)
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"message": notificationNotFound})
		return
	}

	if err := h.notifications.Update(c.Request.Context(), id, req.Mensaje, req.Leida); err != nil {
		writeError(c, h.logger, err, notificationNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notificación actualizada exitosamente"})
}

func (h *NotificationHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "notification")
	if !ok {
		return
	}
	exists, err := h.notifications.Exists(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err, notificationNotFound)
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"message": notificationNotFound})
		return
	}
	if err := h.notifications.Delete(c.Request.Context(), id); err != nil {
		writeError(c, h.logger, err, notificationNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}
