package service

import (
	"context"
	"encoding/json"
	"fmt"
	"html"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"github.com/Developer-Sahil/portfolio-system/internal/content/domain"
	"github.com/Developer-Sahil/portfolio-system/internal/content/repository"
	"github.com/Developer-Sahil/portfolio-system/internal/logging"
)

const commentsField = "comments"

// CommentInput is the public add-comment payload.
type CommentInput struct {
	Author  string `json:"author"`
	Content string `json:"content"`
}

// Arena adds the public voting and commenting actions to the thread
// collection. Both go through single atomic store operations.
type Arena struct {
	*Collection[*domain.ArenaThread]
	strict *bluemonday.Policy
}

func NewArena(store repository.Store) *Arena {
	return &Arena{
		Collection: NewCollection(store, func() *domain.ArenaThread { return &domain.ArenaThread{} }),
		strict:     bluemonday.StrictPolicy(),
	}
}

// Vote adds one to the likes or dislikes counter and returns the thread.
func (a *Arena) Vote(ctx context.Context, threadID string, counter domain.Counter) (*domain.ArenaThread, error) {
	if !counter.Valid() {
		return nil, domain.Invalid("counter", "must be %q or %q", domain.CounterLikes, domain.CounterDislikes)
	}
	doc, err := a.store.Increment(ctx, domain.KindArena, threadID, string(counter))
	if err != nil {
		return nil, err
	}
	return a.decode(doc)
}

// Comment appends a sanitised comment to the thread.
func (a *Arena) Comment(ctx context.Context, threadID string, in CommentInput) (domain.ArenaComment, error) {
	c := domain.ArenaComment{
		Author:  a.plain(in.Author),
		Content: a.plain(in.Content),
	}
	c.Normalize()
	if err := c.Validate(); err != nil {
		return domain.ArenaComment{}, err
	}

	item, err := json.Marshal(c)
	if err != nil {
		return domain.ArenaComment{}, fmt.Errorf("encode comment: %w", err)
	}
	if _, err := a.store.AppendItem(ctx, domain.KindArena, threadID, commentsField, item); err != nil {
		return domain.ArenaComment{}, err
	}

	logging.NewLogger(ctx).LogInfo("arena.comment", "comment added",
		zap.String("thread_id", threadID), zap.String("comment_id", c.ID))
	return c, nil
}

// plain strips every tag and leaves readable text.
func (a *Arena) plain(s string) string {
	return html.UnescapeString(a.strict.Sanitize(s))
}
