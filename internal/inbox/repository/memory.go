package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/Developer-Sahil/portfolio-system/internal/inbox/domain"
)

// Memory keeps messages in process. Used with the memory content backend.
type Memory struct {
	mu   sync.RWMutex
	msgs map[string]domain.Message
}

func NewMemory() *Memory {
	return &Memory{msgs: make(map[string]domain.Message)}
}

func (m *Memory) Create(_ context.Context, msg *domain.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.msgs[msg.ID] = *msg
	return nil
}

func (m *Memory) List(context.Context) ([]domain.Message, error) {
	m.mu.RLock()
	out := make([]domain.Message, 0, len(m.msgs))
	for _, msg := range m.msgs {
		out = append(out, msg)
	}
	m.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *Memory) MarkRead(_ context.Context, id string) (*domain.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	msg, ok := m.msgs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	msg.Read = true
	m.msgs[id] = msg
	return &msg, nil
}

func (m *Memory) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.msgs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.msgs, id)
	return nil
}
