package httpserver

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskboard/internal/auth"
	"taskboard/internal/model"
)

// TokenVerifier checks a token and returns the user id it carries.
type TokenVerifier interface {
	Verify(token string) (int, error)
}

// UserResolver loads the full user record for the verified id.
type UserResolver interface {
	GetByID(ctx context.Context, id int) (*model.User, error)
}

// AuthMiddleware guards protected routes. Every failure answers 403:
// missing token, expired token, bad signature, malformed token, and a
// token whose user no longer exists all look the same to the client
// apart from the message.
func AuthMiddleware(tokens TokenVerifier, users UserResolver, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := auth.ExtractToken(c.Request)
		if token == "" {
			c.JSON(http.StatusForbidden, gin.H{"message": "Token is missing!"})
			c.Abort()
			return
		}

		userID, err := tokens.Verify(token)
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				logger.Info("token expired", zap.String("path", c.Request.URL.Path))
				c.JSON(http.StatusForbidden, gin.H{"message": "Token expired"})
			} else {
				logger.Info("token rejected", zap.String("path", c.Request.URL.Path), zap.Error(err))
				c.JSON(http.StatusForbidden, gin.H{"message": "Token is invalid!"})
			}
			c.Abort()
			return
		}

		u, err := users.GetByID(c.Request.Context(), userID)
		if err != nil {
			logger.Info("token user not found", zap.Int("user_id", userID))
			c.JSON(http.StatusForbidden, gin.H{"message": "Token is invalid!"})
			c.Abort()
			return
		}

		// store the resolved user so handlers can use it
		c.Set(auth.ContextUserKey, u)
		c.Set("user_id", u.UsuarioID)

		c.Next()
	}
}
