package middleware

import (
	"net/http"
	"strings"

	"therapy_platform/internal/service"

	"github.com/gin-gonic/gin"
)

const AuthUserKey = "authUser"

// SessionAuthMiddleware resolves the bearer token to a server-side
// session and stores the session's user in the request context.
func SessionAuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			return
		}

		user, err := authService.Authenticate(c.Request.Context(), parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
			return
		}

		// Set the authenticated user in context
		c.Set(AuthUserKey, user)

		c.Next()
	}
}
