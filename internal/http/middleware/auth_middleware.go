package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// BearerToken extracts the Authorization bearer token and stores it in the
// gin context for downstream handlers. Failures use the same flat message
// shape as the rest of the auth surface.
func BearerToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid authorization header"})
			c.Abort()
			return
		}

		c.Set("token", strings.TrimPrefix(authHeader, "Bearer "))
		c.Next()
	}
}
