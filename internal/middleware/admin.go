package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jlbeauty/salon-booking-api/internal/roles"
)

// AdminMiddleware runs after AuthMiddleware and re-resolves the admin
// flag on every request, so a role change takes effect immediately.
func AdminMiddleware(resolver *roles.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(ContextUserID)
		email := c.GetString(ContextUserEmail)

		if !resolver.IsAdmin(c.Request.Context(), userID, email) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin_required"})
			return
		}

		c.Next()
	}
}
