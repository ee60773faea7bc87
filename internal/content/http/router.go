package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Developer-Sahil/portfolio-system/internal/content/domain"
	"github.com/Developer-Sahil/portfolio-system/internal/content/service"
)

// Site describes the public frontend that feed and sitemap links point at.
type Site struct {
	URL         string
	Title       string
	Description string
	Author      string
}

type Handler struct {
	svc  *service.Services
	site Site
}

func New(svc *service.Services, site Site) *Handler {
	return &Handler{svc: svc, site: site}
}

// Register mounts every content route on rg. optionalAdmin decorates public
// reads with the admin identity when present; requireAdmin guards writes.
func (h *Handler) Register(rg *gin.RouterGroup, optionalAdmin, requireAdmin gin.HandlerFunc) {
	rg.GET("/sitemap.xml", h.sitemap)

	crud[*domain.Project]{col: h.svc.Projects}.register(rg.Group("/projects"), optionalAdmin, requireAdmin)

	writings := rg.Group("/writings")
	writings.GET("/feed.xml", h.writingsFeed)
	crud[*domain.Writing]{col: h.svc.Writings}.register(writings, optionalAdmin, requireAdmin)

	crud[*domain.SystemEntry]{col: h.svc.Systems}.register(rg.Group("/systems"), optionalAdmin, requireAdmin)

	vault := rg.Group("/vault")
	vault.GET("/categories", h.vaultCategories)
	crud[*domain.VaultEntry]{col: h.svc.Vault}.register(vault, optionalAdmin, requireAdmin)

	arena := rg.Group("/arena")
	crud[*domain.ArenaThread]{col: h.svc.Arena.Collection}.register(arena, optionalAdmin, requireAdmin)
	arenaHandler{arena: h.svc.Arena}.register(arena)
}
