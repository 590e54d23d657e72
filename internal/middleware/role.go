package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"glowsalon/internal/domain"
	"glowsalon/internal/pkg/response"
)

// RequireRole ensures the authenticated user holds one of the given roles.
func RequireRole(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, exists := c.Get("role")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			c.Abort()
			return
		}

		current := domain.Role(raw.(string))
		for _, r := range roles {
			if current == r {
				c.Next()
				return
			}
		}

		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
		c.Abort()
	}
}

func AdminOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleAdmin)
}

func StaffOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleStylist, domain.RoleAdmin)
}
