package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	httpapi "github.com/Developer-Sahil/portfolio-system/internal/api/http"
	"github.com/Developer-Sahil/portfolio-system/internal/auth"
	"github.com/Developer-Sahil/portfolio-system/internal/auth/domain"
)

// Authenticator is the login half of the auth gate.
type Authenticator interface {
	Authenticate(ctx context.Context, creds domain.Credentials) (domain.Session, error)
}

type Handler struct {
	gate Authenticator
}

func New(gate Authenticator) *Handler {
	return &Handler{gate: gate}
}

// Login exchanges admin credentials for a bearer token.
func (h *Handler) Login(c *gin.Context) {
	var creds domain.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		httpapi.BadRequest(c, "email and password are required")
		return
	}

	sess, err := h.gate.Authenticate(c.Request.Context(), creds)
	if err != nil {
		httpapi.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// Me returns the identity behind the presented token.
func (h *Handler) Me(c *gin.Context) {
	id := auth.RequestIdentity(c)
	if id.IsZero() {
		httpapi.Unauthorized(c)
		return
	}
	c.JSON(http.StatusOK, id)
}

// Register mounts the routes; requireAdmin guards /me.
func (h *Handler) Register(rg *gin.RouterGroup, requireAdmin gin.HandlerFunc) {
	rg.POST("/login", h.Login)
	rg.GET("/me", requireAdmin, h.Me)
}
