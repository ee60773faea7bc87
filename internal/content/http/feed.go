package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/feeds"
	"github.com/sourcegraph/sitemap"

	httpapi "github.com/Developer-Sahil/portfolio-system/internal/api/http"
	"github.com/Developer-Sahil/portfolio-system/internal/content/domain"
	"github.com/Developer-Sahil/portfolio-system/internal/render"
)

const feedSize = 20

// sections are the top-level pages of the public site.
var sections = []string{"", "/projects", "/writings", "/systems", "/vault", "/arena"}

func (h *Handler) vaultCategories(c *gin.Context) {
	entries, err := h.svc.Vault.List(c.Request.Context(), domain.ListQuery{})
	if err != nil {
		httpapi.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, domain.GroupVault(entries))
}

func (h *Handler) writingsFeed(c *gin.Context) {
	writings, err := h.svc.Writings.List(c.Request.Context(), domain.ListQuery{})
	if err != nil {
		httpapi.Error(c, err)
		return
	}

	feed := &feeds.Feed{
		Title:       h.site.Title,
		Link:        &feeds.Link{Href: h.site.URL + "/writings"},
		Description: h.site.Description,
		Author:      &feeds.Author{Name: h.site.Author},
		Created:     time.Now(),
	}
	for i, w := range writings {
		if i == feedSize {
			break
		}
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          w.ID,
			Title:       w.Title,
			Link:        &feeds.Link{Href: h.site.URL + "/writings/" + w.Slug},
			Description: w.Excerpt,
			Content:     render.Markdown(w.Content),
			Created:     w.PublishedAt.Time,
		})
	}
	if len(writings) > 0 {
		feed.Updated = writings[0].PublishedAt.Time
	}

	rss, err := feed.ToRss()
	if err != nil {
		httpapi.Error(c, err)
		return
	}
	c.Data(http.StatusOK, "application/rss+xml; charset=utf-8", []byte(rss))
}

func (h *Handler) sitemap(c *gin.Context) {
	ctx := c.Request.Context()
	projects, err := h.svc.Projects.List(ctx, domain.ListQuery{})
	if err != nil {
		httpapi.Error(c, err)
		return
	}
	writings, err := h.svc.Writings.List(ctx, domain.ListQuery{})
	if err != nil {
		httpapi.Error(c, err)
		return
	}

	var urlSet sitemap.URLSet
	for _, s := range sections {
		urlSet.URLs = append(urlSet.URLs, sitemap.URL{
			Loc:        h.site.URL + s,
			ChangeFreq: sitemap.Daily,
			Priority:   0.5,
		})
	}
	for _, p := range projects {
		urlSet.URLs = append(urlSet.URLs, sitemap.URL{
			Loc:        h.site.URL + "/projects/" + p.Slug,
			ChangeFreq: sitemap.Daily,
			Priority:   0.8,
		})
	}
	for _, w := range writings {
		published := w.PublishedAt.Time
		urlSet.URLs = append(urlSet.URLs, sitemap.URL{
			Loc:        h.site.URL + "/writings/" + w.Slug,
			LastMod:    &published,
			ChangeFreq: sitemap.Daily,
			Priority:   0.7,
		})
	}

	xml, err := sitemap.Marshal(&urlSet)
	if err != nil {
		httpapi.Error(c, err)
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", xml)
}
