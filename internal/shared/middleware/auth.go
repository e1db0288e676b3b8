package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"kuai-backend/internal/shared/response"
	"kuai-backend/pkg/jwt"
)

// Context keys set bởi AuthMiddleware
const (
	ContextAdminID = "adminID"
	ContextEmail   = "email"
	ContextRole    = "role"
)

// AuthMiddleware - xác thực JWT access token của admin
func AuthMiddleware(tokens *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Lấy token từ Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		// 2. Extract token từ "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		// 3. Verify và parse JWT
		claims, err := tokens.ValidateAccessToken(strings.TrimSpace(parts[1]))
		if err != nil {
			log.Debug().Err(err).Str("request_id", c.GetString(ContextRequestID)).Msg("rejected access token")
			response.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		adminID, err := uuid.Parse(claims.AdminID)
		if err != nil {
			response.Unauthorized(c, "invalid admin ID in token")
			c.Abort()
			return
		}

		// 4. Set vào context cho handler phía sau
		c.Set(ContextAdminID, adminID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRole, claims.Role)

		c.Next()
	}
}

// AdminIDFromContext lấy admin id do AuthMiddleware set
func AdminIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(ContextAdminID)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
