package middleware

import (
	"github.com/gin-gonic/gin"

	"kuai-backend/internal/shared/response"
	"kuai-backend/pkg/jwt"
)

// AdminMiddleware checks if user has admin role
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// role do AuthMiddleware set
		role, ok := c.Get(ContextRole)
		if !ok {
			response.Forbidden(c, "Access denied: admin role required")
			c.Abort()
			return
		}

		if r, ok := role.(string); !ok || r != jwt.RoleAdmin {
			response.Forbidden(c, "Access denied: admin role required")
			c.Abort()
			return
		}

		c.Next()
	}
}
