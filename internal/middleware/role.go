package middleware

import (
	"net/http"

	"oficina/internal/domain"
	"oficina/internal/pkg/permission"
	"oficina/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireRole ensures that the authenticated user has one of the given roles.
func RequireRole(roles ...domain.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			c.Abort()
			return
		}

		current := domain.UserRole(role.(string))
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

// ManagerOnly middleware requires the workshop manager role.
func ManagerOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleGerente)
}

// RequireRoute gates an endpoint behind the dashboard route its screen
// belongs to, so the API and the frontend navigation share one permission
// table.
func RequireRoute(route string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			c.Abort()
			return
		}

		if !permission.HasPermission(domain.UserRole(role.(string)), route) {
			response.ErrorWithDetails(c, http.StatusForbidden, "FORBIDDEN",
				"Access denied: insufficient permissions",
				gin.H{"redirect": permission.DefaultRoute(domain.UserRole(role.(string)))})
			c.Abort()
			return
		}

		c.Next()
	}
}
