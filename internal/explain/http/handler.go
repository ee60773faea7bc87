package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	httpapi "github.com/Developer-Sahil/portfolio-system/internal/api/http"
	"github.com/Developer-Sahil/portfolio-system/internal/explain"
)

type Explainer interface {
	Explain(ctx context.Context, idOrSlug, persona string) (*explain.Result, error)
}

type Handler struct {
	explainer Explainer
}

func New(explainer Explainer) *Handler {
	return &Handler{explainer: explainer}
}

type explainRequest struct {
	Persona string `json:"persona"`
}

// Register mounts POST /:id/explain on the projects group. Extra handlers,
// typically a rate limiter, run before the explanation.
func (h *Handler) Register(projects *gin.RouterGroup, limit ...gin.HandlerFunc) {
	projects.POST("/:id/explain", append(limit, h.Explain)...)
}

func (h *Handler) Explain(c *gin.Context) {
	var req explainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpapi.BadRequest(c, "body must be {\"persona\": \"recruiter|engineer|architect\"}")
		return
	}

	res, err := h.explainer.Explain(c.Request.Context(), c.Param("id"), req.Persona)
	if err != nil {
		httpapi.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
