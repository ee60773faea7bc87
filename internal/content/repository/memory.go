package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/Developer-Sahil/portfolio-system/internal/content/domain"
)

type collection struct {
	order []string
	docs  map[string]Document
	slugs map[string]string
}

func newCollection() *collection {
	return &collection{
		docs:  make(map[string]Document),
		slugs: make(map[string]string),
	}
}

// Memory is a process-local Store. It is safe for concurrent use.
type Memory struct {
	mu   sync.RWMutex
	cols map[domain.Kind]*collection
}

func NewMemory() *Memory {
	m := &Memory{cols: make(map[domain.Kind]*collection, len(domain.Kinds))}
	for _, k := range domain.Kinds {
		m.cols[k] = newCollection()
	}
	return m
}

func (m *Memory) col(kind domain.Kind) (*collection, error) {
	c, ok := m.cols[kind]
	if !ok {
		return nil, fmt.Errorf("unknown kind %q", kind)
	}
	return c, nil
}

func (m *Memory) Insert(_ context.Context, kind domain.Kind, doc Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, err := m.col(kind)
	if err != nil {
		return err
	}
	if _, exists := c.docs[doc.ID]; exists {
		return fmt.Errorf("%w: %s id %q already exists", domain.ErrConflict, kind.Singular(), doc.ID)
	}
	if doc.Slug != "" {
		if _, taken := c.slugs[doc.Slug]; taken {
			return domain.SlugConflict(kind, doc.Slug)
		}
		c.slugs[doc.Slug] = doc.ID
	}
	c.docs[doc.ID] = clone(doc)
	c.order = append(c.order, doc.ID)
	return nil
}

func (m *Memory) Get(_ context.Context, kind domain.Kind, id string) (Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, err := m.col(kind)
	if err != nil {
		return Document{}, err
	}
	doc, ok := c.docs[id]
	if !ok {
		return Document{}, domain.NotFound(kind)
	}
	return clone(doc), nil
}

func (m *Memory) GetBySlug(_ context.Context, kind domain.Kind, slug string) (Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, err := m.col(kind)
	if err != nil {
		return Document{}, err
	}
	id, ok := c.slugs[slug]
	if !ok {
		return Document{}, domain.NotFound(kind)
	}
	return clone(c.docs[id]), nil
}

func (m *Memory) List(_ context.Context, kind domain.Kind) ([]Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, err := m.col(kind)
	if err != nil {
		return nil, err
	}
	out := make([]Document, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, clone(c.docs[id]))
	}
	return out, nil
}

func (m *Memory) Update(_ context.Context, kind domain.Kind, id string, mutate MutateFunc) (Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, err := m.col(kind)
	if err != nil {
		return Document{}, err
	}
	current, ok := c.docs[id]
	if !ok {
		return Document{}, domain.NotFound(kind)
	}

	next, err := mutate(clone(current))
	if err != nil {
		return Document{}, err
	}
	next.ID = id

	if next.Slug != current.Slug && next.Slug != "" {
		if owner, taken := c.slugs[next.Slug]; taken && owner != id {
			return Document{}, domain.SlugConflict(kind, next.Slug)
		}
	}
	if current.Slug != "" {
		delete(c.slugs, current.Slug)
	}
	if next.Slug != "" {
		c.slugs[next.Slug] = id
	}
	c.docs[id] = clone(next)
	return clone(next), nil
}

func (m *Memory) Delete(_ context.Context, kind domain.Kind, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, err := m.col(kind)
	if err != nil {
		return err
	}
	doc, ok := c.docs[id]
	if !ok {
		return domain.NotFound(kind)
	}
	delete(c.docs, id)
	if doc.Slug != "" {
		delete(c.slugs, doc.Slug)
	}
	for i, v := range c.order {
		if v == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *Memory) Increment(ctx context.Context, kind domain.Kind, id, field string) (Document, error) {
	return m.Update(ctx, kind, id, func(cur Document) (Document, error) {
		fields, err := decodeFields(cur.Body)
		if err != nil {
			return Document{}, err
		}
		var n int64
		if raw, ok := fields[field]; ok && string(raw) != "null" {
			if err := json.Unmarshal(raw, &n); err != nil {
				return Document{}, fmt.Errorf("field %q is not an integer: %w", field, err)
			}
		}
		fields[field], _ = json.Marshal(n + 1)
		cur.Body, err = json.Marshal(fields)
		return cur, err
	})
}

func (m *Memory) AppendItem(ctx context.Context, kind domain.Kind, id, field string, item []byte) (Document, error) {
	if !json.Valid(item) {
		return Document{}, fmt.Errorf("append to %q: item is not valid JSON", field)
	}
	return m.Update(ctx, kind, id, func(cur Document) (Document, error) {
		fields, err := decodeFields(cur.Body)
		if err != nil {
			return Document{}, err
		}
		var list []json.RawMessage
		if raw, ok := fields[field]; ok && string(raw) != "null" {
			if err := json.Unmarshal(raw, &list); err != nil {
				return Document{}, fmt.Errorf("field %q is not an array: %w", field, err)
			}
		}
		list = append(list, json.RawMessage(item))
		if fields[field], err = json.Marshal(list); err != nil {
			return Document{}, err
		}
		cur.Body, err = json.Marshal(fields)
		return cur, err
	})
}

func (m *Memory) Ping(context.Context) error { return nil }

func decodeFields(body []byte) (map[string]json.RawMessage, error) {
	fields := make(map[string]json.RawMessage)
	if len(body) == 0 {
		return fields, nil
	}
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return fields, nil
}

func clone(d Document) Document {
	d.Body = append([]byte(nil), d.Body...)
	return d
}
