package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	httpapi "github.com/Developer-Sahil/portfolio-system/internal/api/http"
	"github.com/Developer-Sahil/portfolio-system/internal/content/domain"
	"github.com/Developer-Sahil/portfolio-system/internal/content/service"
)

type arenaHandler struct {
	arena *service.Arena
}

func (h arenaHandler) register(rg *gin.RouterGroup) {
	rg.POST("/:id/like", h.vote(domain.CounterLikes))
	rg.POST("/:id/dislike", h.vote(domain.CounterDislikes))
	rg.POST("/:id/comment", h.comment)
}

func (h arenaHandler) vote(counter domain.Counter) gin.HandlerFunc {
	return func(c *gin.Context) {
		thread, err := h.arena.Vote(c.Request.Context(), c.Param("id"), counter)
		if err != nil {
			httpapi.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, thread)
	}
}

func (h arenaHandler) comment(c *gin.Context) {
	var in service.CommentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httpapi.BadRequest(c, "invalid comment body")
		return
	}
	comment, err := h.arena.Comment(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		httpapi.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}
