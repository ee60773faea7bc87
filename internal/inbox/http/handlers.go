package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	httpapi "github.com/Developer-Sahil/portfolio-system/internal/api/http"
	"github.com/Developer-Sahil/portfolio-system/internal/auth"
	"github.com/Developer-Sahil/portfolio-system/internal/inbox/domain"
	"github.com/Developer-Sahil/portfolio-system/internal/inbox/service"
)

type Handler struct {
	svc *service.InboxService
}

func New(svc *service.InboxService) *Handler {
	return &Handler{svc: svc}
}

// Register mounts the inbox routes on rg. Submissions pass through limit;
// everything else requires an admin.
func (h *Handler) Register(rg *gin.RouterGroup, requireAdmin gin.HandlerFunc, limit ...gin.HandlerFunc) {
	submit := append(limit, h.Submit)
	rg.POST("", submit...)
	rg.POST("/", submit...)
	rg.GET("", requireAdmin, h.List)
	rg.GET("/", requireAdmin, h.List)
	rg.PATCH("/:id/read", requireAdmin, h.MarkRead)
	rg.DELETE("/:id", requireAdmin, h.Delete)
}

func (h *Handler) Submit(c *gin.Context) {
	var in domain.MessageInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httpapi.BadRequest(c, "invalid message body")
		return
	}
	m, err := h.svc.Submit(c.Request.Context(), in)
	if err != nil {
		httpapi.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

func (h *Handler) List(c *gin.Context) {
	msgs, err := h.svc.List(c.Request.Context(), auth.RequestIdentity(c))
	if err != nil {
		httpapi.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, msgs)
}

func (h *Handler) MarkRead(c *gin.Context) {
	m, err := h.svc.MarkRead(c.Request.Context(), auth.RequestIdentity(c), c.Param("id"))
	if err != nil {
		httpapi.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.svc.Delete(c.Request.Context(), auth.RequestIdentity(c), id); err != nil {
		httpapi.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "deleted": true})
}
