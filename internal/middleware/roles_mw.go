package middleware

import (
	"net/http"

	"therapy_platform/internal/model"

	"github.com/gin-gonic/gin"
)

// AuthUser returns the user stored by SessionAuthMiddleware, or nil
func AuthUser(c *gin.Context) *model.User {
	val, exists := c.Get(AuthUserKey)
	if !exists {
		return nil
	}
	user, ok := val.(*model.User)
	if !ok {
		return nil
	}
	return user
}

// TherapistMiddleware rejects requests whose session does not belong to
// a therapist. It must run after SessionAuthMiddleware.
func TherapistMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := AuthUser(c)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		if !user.IsTherapist {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Therapist access required"})
			return
		}

		c.Next()
	}
}
