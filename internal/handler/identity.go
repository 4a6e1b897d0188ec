package handler

import (
	"github.com/gin-gonic/gin"

	"taskboard/internal/auth"
	"taskboard/internal/model"
)

// currentUser returns the user resolved by the auth middleware, or nil
// on an unauthenticated route.
func currentUser(c *gin.Context) *model.User {
	v, ok := c.Get(auth.ContextUserKey)
	if !ok {
		return nil
	}
	u, _ := v.(*model.User)
	return u
}
