package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"supermock/models"
)

// RequireRole gates a route group to the given roles. Must run after
// JWTAuthMiddleware, which sets userRole.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("userRole")
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
	}
}

// RequireAdmin gates a route group to admins.
func RequireAdmin() gin.HandlerFunc {
	return RequireRole(models.RoleAdmin)
}

// RequireInterviewer gates a route group to interviewers and admins.
func RequireInterviewer() gin.HandlerFunc {
	return RequireRole(models.RoleInterviewer, models.RoleAdmin)
}
