package domain

import "strings"

const wordsPerMinute = 200

// Writing is a long-form markdown article.
type Writing struct {
	ID           string    `json:"id" yaml:"id"`
	Slug         string    `json:"slug" yaml:"slug"`
	Title        string    `json:"title" yaml:"title"`
	Thumbnail    string    `json:"thumbnail" yaml:"thumbnail"`
	Excerpt      string    `json:"excerpt" yaml:"excerpt"`
	Content      string    `json:"content" yaml:"content"`
	ReadingTime  int       `json:"readingTime" yaml:"readingTime"`
	PublishedAt  Timestamp `json:"publishedAt" yaml:"publishedAt"`
	Tags         []string  `json:"tags" yaml:"tags"`
	Series       *string   `json:"series" yaml:"series"`
	CanonicalURL *string   `json:"canonicalUrl,omitempty" yaml:"canonicalUrl"`
}

func (w *Writing) Kind() Kind      { return KindWriting }
func (w *Writing) GetID() string   { return w.ID }
func (w *Writing) SetID(id string) { w.ID = id }
func (w *Writing) GetSlug() string { return w.Slug }

func (w *Writing) Normalize() {
	trimAll(&w.Slug, &w.Title, &w.Thumbnail, &w.Excerpt)
	trimOptional(&w.Series)
	trimOptional(&w.CanonicalURL)
	w.Tags = cleanList(w.Tags)
	w.Slug = deriveSlug(w.Slug, w.Title)
	if w.ReadingTime == 0 && strings.TrimSpace(w.Content) != "" {
		w.ReadingTime = EstimateReadingTime(w.Content)
	}
	if !w.PublishedAt.IsZero() {
		w.PublishedAt = At(w.PublishedAt.Time)
	}
}

func (w *Writing) Validate() error {
	if w.ReadingTime <= 0 {
		return Invalid("readingTime", "must be a positive number of minutes")
	}
	if w.PublishedAt.IsZero() {
		return Invalid("publishedAt", "is required")
	}
	return firstError(
		required("title", w.Title),
		validSlug(w.Slug),
		required("thumbnail", w.Thumbnail),
		required("excerpt", w.Excerpt),
		required("content", w.Content),
		optionalURL("canonicalUrl", w.CanonicalURL),
	)
}

// EstimateReadingTime returns whole minutes at 200 words per minute, never
// less than one.
func EstimateReadingTime(content string) int {
	words := len(strings.Fields(content))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}
