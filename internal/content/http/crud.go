package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	httpapi "github.com/Developer-Sahil/portfolio-system/internal/api/http"
	"github.com/Developer-Sahil/portfolio-system/internal/auth"
	"github.com/Developer-Sahil/portfolio-system/internal/content/domain"
	"github.com/Developer-Sahil/portfolio-system/internal/content/service"
)

// crud serves the standard list/get/create/update/delete routes of a kind.
type crud[E domain.Entity] struct {
	col *service.Collection[E]
}

// deleteResp confirms a removal. The record is gone, so only its id is echoed.
type deleteResp struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

func (h crud[E]) register(rg *gin.RouterGroup, optionalAdmin, requireAdmin gin.HandlerFunc) {
	rg.GET("", optionalAdmin, h.list)
	rg.GET("/", optionalAdmin, h.list)
	rg.GET("/:id", h.get)
	rg.POST("", requireAdmin, h.create)
	rg.POST("/", requireAdmin, h.create)
	rg.PUT("/:id", requireAdmin, h.update)
	rg.DELETE("/:id", requireAdmin, h.remove)
	if h.col.Kind().HasSlug() {
		rg.GET("/slug/:slug", h.getBySlug)
	}
}

func (h crud[E]) list(c *gin.Context) {
	q, err := parseListQuery(c)
	if err != nil {
		httpapi.Error(c, err)
		return
	}
	items, err := h.col.List(c.Request.Context(), q)
	if err != nil {
		httpapi.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h crud[E]) get(c *gin.Context) {
	item, err := h.col.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpapi.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h crud[E]) getBySlug(c *gin.Context) {
	item, err := h.col.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		httpapi.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h crud[E]) create(c *gin.Context) {
	item := h.col.New()
	if err := c.ShouldBindJSON(item); err != nil {
		httpapi.BadRequest(c, "invalid "+h.col.Kind().Singular()+" body: "+err.Error())
		return
	}
	created, err := h.col.Create(c.Request.Context(), auth.RequestIdentity(c), item)
	if err != nil {
		httpapi.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h crud[E]) update(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil || !isJSONObject(raw) {
		httpapi.BadRequest(c, "body must be a JSON object")
		return
	}
	updated, err := h.col.Update(c.Request.Context(), auth.RequestIdentity(c), c.Param("id"), raw)
	if err != nil {
		httpapi.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h crud[E]) remove(c *gin.Context) {
	id := c.Param("id")
	if err := h.col.Delete(c.Request.Context(), auth.RequestIdentity(c), id); err != nil {
		httpapi.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, deleteResp{ID: id, Deleted: true})
}

func isJSONObject(raw []byte) bool {
	var obj map[string]json.RawMessage
	return json.Unmarshal(raw, &obj) == nil && obj != nil
}

// parseListQuery reads the optional filters. Drafts are included only for an
// authenticated admin.
func parseListQuery(c *gin.Context) (domain.ListQuery, error) {
	q := domain.ListQuery{
		Q:             strings.TrimSpace(c.Query("q")),
		Tag:           strings.TrimSpace(c.Query("tag")),
		Category:      strings.TrimSpace(c.Query("category")),
		Tech:          strings.TrimSpace(c.Query("tech")),
		Series:        strings.TrimSpace(c.Query("series")),
		IncludeDrafts: !auth.RequestIdentity(c).IsZero(),
	}
	if raw := c.Query("featured"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return q, domain.Invalid("featured", "must be true or false")
		}
		q.Featured = &b
	}
	return q, nil
}
