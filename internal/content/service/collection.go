package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	authdomain "github.com/Developer-Sahil/portfolio-system/internal/auth/domain"
	"github.com/Developer-Sahil/portfolio-system/internal/content/domain"
	"github.com/Developer-Sahil/portfolio-system/internal/content/repository"
	"github.com/Developer-Sahil/portfolio-system/internal/logging"
)

// Collection is the typed CRUD surface for one content kind.
type Collection[E domain.Entity] struct {
	kind      domain.Kind
	store     repository.Store
	newEntity func() E
	sort      func([]E)
}

type Option[E domain.Entity] func(*Collection[E])

// WithSort orders List results.
func WithSort[E domain.Entity](sort func([]E)) Option[E] {
	return func(c *Collection[E]) { c.sort = sort }
}

func NewCollection[E domain.Entity](store repository.Store, newEntity func() E, opts ...Option[E]) *Collection[E] {
	c := &Collection[E]{
		kind:      newEntity().Kind(),
		store:     store,
		newEntity: newEntity,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Collection[E]) Kind() domain.Kind { return c.kind }

// New returns an empty entity, ready to be decoded into.
func (c *Collection[E]) New() E { return c.newEntity() }

func (c *Collection[E]) decode(doc repository.Document) (E, error) {
	e := c.newEntity()
	if err := json.Unmarshal(doc.Body, e); err != nil {
		var zero E
		return zero, fmt.Errorf("decode %s %s: %w", c.kind.Singular(), doc.ID, err)
	}
	e.SetID(doc.ID)
	return e, nil
}

func (c *Collection[E]) encode(e E) (repository.Document, error) {
	body, err := json.Marshal(e)
	if err != nil {
		return repository.Document{}, fmt.Errorf("encode %s: %w", c.kind.Singular(), err)
	}
	return repository.Document{ID: e.GetID(), Slug: e.GetSlug(), Body: body}, nil
}

// Create assigns a fresh id, normalises and validates e, then stores it.
func (c *Collection[E]) Create(ctx context.Context, actor authdomain.Identity, e E) (E, error) {
	var zero E
	if actor.IsZero() {
		return zero, authdomain.ErrUnauthorized
	}

	e.SetID(uuid.NewString())
	e.Normalize()
	if err := e.Validate(); err != nil {
		return zero, err
	}

	doc, err := c.encode(e)
	if err != nil {
		return zero, err
	}
	if err := c.store.Insert(ctx, c.kind, doc); err != nil {
		return zero, err
	}

	logging.NewLogger(ctx).LogInfo("content.create", "created "+c.kind.Singular(),
		zap.String("id", e.GetID()), zap.String("actor", actor.Email))
	return e, nil
}

func (c *Collection[E]) Get(ctx context.Context, id string) (E, error) {
	doc, err := c.store.Get(ctx, c.kind, id)
	if err != nil {
		var zero E
		return zero, err
	}
	return c.decode(doc)
}

func (c *Collection[E]) GetBySlug(ctx context.Context, slug string) (E, error) {
	var zero E
	if !c.kind.HasSlug() {
		return zero, domain.NotFound(c.kind)
	}
	doc, err := c.store.GetBySlug(ctx, c.kind, slug)
	if err != nil {
		return zero, err
	}
	return c.decode(doc)
}

// List returns every record matching q.
func (c *Collection[E]) List(ctx context.Context, q domain.ListQuery) ([]E, error) {
	docs, err := c.store.List(ctx, c.kind)
	if err != nil {
		return nil, err
	}

	out := make([]E, 0, len(docs))
	for _, doc := range docs {
		e, err := c.decode(doc)
		if err != nil {
			return nil, err
		}
		if m, ok := any(e).(domain.Matcher); ok && !m.Matches(q) {
			continue
		}
		out = append(out, e)
	}
	if c.sort != nil {
		c.sort(out)
	}
	return out, nil
}

// Update merges the JSON patch over the stored record. Fields absent from
// the patch keep their values and the id never changes.
func (c *Collection[E]) Update(ctx context.Context, actor authdomain.Identity, id string, patch json.RawMessage) (E, error) {
	var zero E
	if actor.IsZero() {
		return zero, authdomain.ErrUnauthorized
	}

	var result E
	_, err := c.store.Update(ctx, c.kind, id, func(cur repository.Document) (repository.Document, error) {
		stored, err := c.decode(cur)
		if err != nil {
			return repository.Document{}, err
		}
		next, err := c.decode(cur)
		if err != nil {
			return repository.Document{}, err
		}
		if err := json.Unmarshal(patch, next); err != nil {
			return repository.Document{}, domain.Invalid("", "malformed %s body: %v", c.kind.Singular(), err)
		}
		next.SetID(id)
		if p, ok := any(next).(domain.Preserver); ok {
			p.PreserveFrom(stored)
		}
		next.Normalize()
		if err := next.Validate(); err != nil {
			return repository.Document{}, err
		}

		result = next
		return c.encode(next)
	})
	if err != nil {
		return zero, err
	}

	logging.NewLogger(ctx).LogInfo("content.update", "updated "+c.kind.Singular(),
		zap.String("id", id), zap.String("actor", actor.Email))
	return result, nil
}

func (c *Collection[E]) Delete(ctx context.Context, actor authdomain.Identity, id string) error {
	if actor.IsZero() {
		return authdomain.ErrUnauthorized
	}
	if err := c.store.Delete(ctx, c.kind, id); err != nil {
		return err
	}
	logging.NewLogger(ctx).LogInfo("content.delete", "deleted "+c.kind.Singular(),
		zap.String("id", id), zap.String("actor", actor.Email))
	return nil
}
