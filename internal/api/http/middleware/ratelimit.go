package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	httpapi "github.com/Developer-Sahil/portfolio-system/internal/api/http"
	"github.com/Developer-Sahil/portfolio-system/internal/logging"
	"github.com/Developer-Sahil/portfolio-system/internal/ratelimit"
)

// RateLimit rejects callers over the limiter's budget with 429. Callers are
// keyed by client IP. Limiter failures let the request through.
func RateLimit(l ratelimit.Limiter, scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := l.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			logging.NewLogger(c.Request.Context()).LogWarn("ratelimit."+scope, "limiter unavailable, allowing request",
				zap.Error(err))
			c.Next()
			return
		}
		if !ok {
			c.Header("Retry-After", "60")
			httpapi.TooManyRequests(c)
			return
		}
		c.Next()
	}
}
