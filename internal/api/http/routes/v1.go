package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Developer-Sahil/portfolio-system/internal/api/http/middleware"
	authhttp "github.com/Developer-Sahil/portfolio-system/internal/auth/http"
	authmw "github.com/Developer-Sahil/portfolio-system/internal/auth/middleware"
	authservice "github.com/Developer-Sahil/portfolio-system/internal/auth/service"
	contenthttp "github.com/Developer-Sahil/portfolio-system/internal/content/http"
	contentservice "github.com/Developer-Sahil/portfolio-system/internal/content/service"
	explainhttp "github.com/Developer-Sahil/portfolio-system/internal/explain/http"
	inboxhttp "github.com/Developer-Sahil/portfolio-system/internal/inbox/http"
	inboxservice "github.com/Developer-Sahil/portfolio-system/internal/inbox/service"
	"github.com/Developer-Sahil/portfolio-system/internal/ratelimit"
)

type V1Deps struct {
	Gate           *authservice.Gate
	Content        *contentservice.Services
	Site           contenthttp.Site
	Explainer      explainhttp.Explainer
	Inbox          *inboxservice.InboxService
	MessageLimiter ratelimit.Limiter
	ExplainLimiter ratelimit.Limiter
}

func RegisterV1(r *gin.Engine, dep V1Deps) {
	api := r.Group("/api/v1")

	requireAdmin := authmw.RequireAdmin(dep.Gate)
	optionalAdmin := authmw.OptionalAdmin(dep.Gate)

	authhttp.New(dep.Gate).Register(api.Group("/auth"), requireAdmin)

	contenthttp.New(dep.Content, dep.Site).Register(api, optionalAdmin, requireAdmin)

	explainhttp.New(dep.Explainer).Register(api.Group("/projects"), limit(dep.ExplainLimiter, "explain")...)

	inboxhttp.New(dep.Inbox).Register(api.Group("/messages"), requireAdmin, limit(dep.MessageLimiter, "messages")...)
}

func limit(l ratelimit.Limiter, scope string) []gin.HandlerFunc {
	if l == nil {
		return nil
	}
	return []gin.HandlerFunc{middleware.RateLimit(l, scope)}
}
