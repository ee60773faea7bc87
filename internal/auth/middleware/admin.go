package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	httpapi "github.com/Developer-Sahil/portfolio-system/internal/api/http"
	"github.com/Developer-Sahil/portfolio-system/internal/auth"
	"github.com/Developer-Sahil/portfolio-system/internal/auth/service"
)

// RequireAdmin rejects the request with 401 unless it carries a bearer token
// the verifier accepts.
func RequireAdmin(v service.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httpapi.Unauthorized(c)
			return
		}

		id, err := v.Verify(c.Request.Context(), token)
		if err != nil {
			httpapi.Unauthorized(c)
			return
		}

		c.Set(auth.CtxIdentity, id)
		c.Request = c.Request.WithContext(auth.WithIdentity(c.Request.Context(), id))
		c.Next()
	}
}

// OptionalAdmin attaches the admin identity when a valid token is present and
// otherwise lets the request through anonymously.
func OptionalAdmin(v service.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := extractToken(c); token != "" {
			if id, err := v.Verify(c.Request.Context(), token); err == nil {
				c.Set(auth.CtxIdentity, id)
				c.Request = c.Request.WithContext(auth.WithIdentity(c.Request.Context(), id))
			}
		}
		c.Next()
	}
}

// extractToken extracts the Bearer token from the Authorization header
func extractToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if len(h) > 7 && strings.EqualFold(h[:7], "Bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}
