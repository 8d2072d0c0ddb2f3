package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	domainerrors "trade-admin.backend/internal/domain/errors"
	"trade-admin.backend/internal/interfaces/http/response"
	"trade-admin.backend/pkg/jwt"
)

// Context keys set by the auth middleware.
const (
	ContextAdminID    = "admin_id"
	ContextAdminEmail = "admin_email"
	ContextAdminRole  = "admin_role"
)

// Auth validates the bearer token and stores the admin identity on the
// request context.
func Auth(jwtService *jwt.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Error(c, domainerrors.Unauthorized("missing authorization header"))
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Error(c, domainerrors.Unauthorized("malformed authorization header"))
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(parts[1])
		if err != nil {
			msg := "invalid token"
			if err == jwt.ErrExpiredToken {
				msg = "token has expired"
			}
			response.Error(c, domainerrors.Unauthorized(msg))
			c.Abort()
			return
		}

		c.Set(ContextAdminID, claims.AdminID)
		c.Set(ContextAdminEmail, claims.Email)
		c.Set(ContextAdminRole, claims.Role)
		c.Next()
	}
}

// AdminID returns the authenticated admin's id from the request context.
func AdminID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(ContextAdminID)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
