package bootstrap

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	httpapi "github.com/Developer-Sahil/portfolio-system/internal/api/http"
	"github.com/Developer-Sahil/portfolio-system/internal/api/http/middleware"
	"github.com/Developer-Sahil/portfolio-system/internal/api/http/routes"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	CORSOrigins []string
	Logger      *zap.Logger
	Store       httpapi.Pinger
	// Redis is nil when rate limiting runs in process.
	Redis httpapi.Pinger
	V1    routes.V1Deps
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	logger := dep.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware(logger))
	r.Use(middleware.CORS(dep.CORSOrigins))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Store, dep.Redis)
	healthHandler.RegisterRoutes(r)

	routes.RegisterV1(r, dep.V1)

	return r
}
