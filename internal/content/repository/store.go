package repository

import (
	"context"

	"github.com/Developer-Sahil/portfolio-system/internal/content/domain"
)

// Document is a stored record: its id, optional unique slug and JSON body.
// The store never interprets Body beyond the counter and list fields named
// in Increment and AppendItem.
type Document struct {
	ID   string
	Slug string
	Body []byte
}

// MutateFunc receives the current document and returns its replacement.
// Returning an error aborts the update and leaves the store unchanged.
type MutateFunc func(current Document) (Document, error)

// Store persists documents per kind. Missing records yield domain.ErrNotFound,
// duplicate slugs domain.ErrConflict, and a failed write changes nothing.
type Store interface {
	Insert(ctx context.Context, kind domain.Kind, doc Document) error
	Get(ctx context.Context, kind domain.Kind, id string) (Document, error)
	GetBySlug(ctx context.Context, kind domain.Kind, slug string) (Document, error)
	// List returns documents in insertion order.
	List(ctx context.Context, kind domain.Kind) ([]Document, error)
	// Update runs mutate while holding the record exclusively. The id is
	// immutable.
	Update(ctx context.Context, kind domain.Kind, id string, mutate MutateFunc) (Document, error)
	Delete(ctx context.Context, kind domain.Kind, id string) error
	// Increment adds one to the integer field of the document atomically.
	Increment(ctx context.Context, kind domain.Kind, id, field string) (Document, error)
	// AppendItem appends a JSON value to the array field of the document
	// atomically.
	AppendItem(ctx context.Context, kind domain.Kind, id, field string, item []byte) (Document, error)
	Ping(ctx context.Context) error
}

var (
	_ Store = (*Memory)(nil)
	_ Store = (*Postgres)(nil)
)
