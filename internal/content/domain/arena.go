package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultCommentAuthor = "Viewer"
	maxCommentAuthor     = 80
	maxCommentContent    = 2000
)

// Counter names one of the vote counters on an arena thread.
type Counter string

const (
	CounterLikes    Counter = "likes"
	CounterDislikes Counter = "dislikes"
)

func (c Counter) Valid() bool {
	return c == CounterLikes || c == CounterDislikes
}

// ArenaThread is a discussion post that visitors can vote and comment on.
type ArenaThread struct {
	ID          string         `json:"id" yaml:"id"`
	Title       string         `json:"title" yaml:"title"`
	Content     string         `json:"content" yaml:"content"`
	PublishedAt Timestamp      `json:"publishedAt" yaml:"publishedAt"`
	Likes       int64          `json:"likes" yaml:"likes"`
	Dislikes    int64          `json:"dislikes" yaml:"dislikes"`
	Comments    []ArenaComment `json:"comments" yaml:"comments"`
}

// ArenaComment is owned by exactly one thread.
type ArenaComment struct {
	ID        string    `json:"id" yaml:"id"`
	Author    string    `json:"author" yaml:"author"`
	Content   string    `json:"content" yaml:"content"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
}

func (t *ArenaThread) Kind() Kind      { return KindArena }
func (t *ArenaThread) GetID() string   { return t.ID }
func (t *ArenaThread) SetID(id string) { t.ID = id }
func (t *ArenaThread) GetSlug() string { return "" }

func (t *ArenaThread) Normalize() {
	trimAll(&t.Title)
	if t.PublishedAt.IsZero() {
		t.PublishedAt = At(time.Now())
	}
	t.PublishedAt = At(t.PublishedAt.Time)
	if t.Comments == nil {
		t.Comments = []ArenaComment{}
	}
	for i := range t.Comments {
		t.Comments[i].Normalize()
	}
}

func (t *ArenaThread) Validate() error {
	if t.Likes < 0 {
		return Invalid("likes", "must not be negative")
	}
	if t.Dislikes < 0 {
		return Invalid("dislikes", "must not be negative")
	}
	if err := firstError(required("title", t.Title), required("content", t.Content)); err != nil {
		return err
	}
	for i := range t.Comments {
		if err := t.Comments[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// PreserveFrom keeps counters and comments, which only the arena actions may
// change.
func (t *ArenaThread) PreserveFrom(stored Entity) {
	prev, ok := stored.(*ArenaThread)
	if !ok {
		return
	}
	t.Likes = prev.Likes
	t.Dislikes = prev.Dislikes
	t.Comments = prev.Comments
}

func (c *ArenaComment) Normalize() {
	trimAll(&c.Author, &c.Content)
	if c.Author == "" {
		c.Author = DefaultCommentAuthor
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	c.CreatedAt = c.CreatedAt.UTC()
}

func (c *ArenaComment) Validate() error {
	if strings.TrimSpace(c.Content) == "" {
		return Invalid("content", "is required")
	}
	return firstError(
		maxLen("content", c.Content, maxCommentContent),
		maxLen("author", c.Author, maxCommentAuthor),
	)
}
