package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"taskboard/internal/apperr"
)

// Not-found messages, kept verbatim for client compatibility.
const (
	taskNotFound         = "Task not found"
	userNotFound         = "User not found"
	boardNotFound        = "Tablero no encontrado"
	projectNotFound      = "Proyecto no encontrado"
	columnNotFound       = "Columna no encontrada"
	commentNotFound      = "Comentario no encontrado"
	labelNotFound        = "Etiqueta no encontrada"
	notificationNotFound = "Notificación no encontrada"
	invitationNotFound   = "Invitación no encontrada"
	assignmentNotFound   = "Asignación no encontrada"
	profileNotFound      = "Perfil no encontrado"
)

// writeError maps the error taxonomy onto status codes: validation
// errors return their field map as 400, not-found returns 404 with the
// entity message, anything else is logged and surfaced as a generic 500.
func writeError(c *gin.Context, logger *zap.Logger, err error, notFoundMsg string) {
	if ve, ok := apperr.AsValidation(err); ok {
		c.JSON(http.StatusBadRequest, ve.Fields)
		return
	}
	if errors.Is(err, apperr.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": notFoundMsg})
		return
	}

	logger.Error("request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

// writeBindingError turns a gin binding failure into the same
// field-level 400 shape the validation taxonomy uses.
func writeBindingError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string][]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = append(fields[fe.Field()], bindingMessage(fe))
		}
		c.JSON(http.StatusBadRequest, fields)
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request"})
}

func bindingMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email"
	case "min":
		return fe.Field() + " is too short"
	case "max":
		return fe.Field() + " is too long"
	default:
		return fe.Field() + " is invalid"
	}
}
