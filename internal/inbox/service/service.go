package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	authdomain "github.com/Developer-Sahil/portfolio-system/internal/auth/domain"
	"github.com/Developer-Sahil/portfolio-system/internal/inbox/domain"
	"github.com/Developer-Sahil/portfolio-system/internal/inbox/repository"
	"github.com/Developer-Sahil/portfolio-system/internal/logging"
)

type InboxService struct {
	repo     repository.Repository
	notifier Notifier
	now      func() time.Time
}

func NewInboxService(repo repository.Repository, notifier Notifier) *InboxService {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &InboxService{repo: repo, notifier: notifier, now: time.Now}
}

// Submit stores a visitor message and notifies the owner. A failed
// notification is logged and does not fail the submission.
func (s *InboxService) Submit(ctx context.Context, in domain.MessageInput) (*domain.Message, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	m := &domain.Message{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Company:   in.Company,
		Type:      in.Type,
		Message:   in.Message,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}

	log := logging.NewLogger(ctx)
	log.LogInfo("inbox.submit", "message received", zap.String("message_id", m.ID), zap.String("type", m.Type))
	if err := s.notifier.Notify(ctx, m); err != nil {
		log.LogError("inbox.notify", err, zap.String("message_id", m.ID))
	}
	return m, nil
}

func (s *InboxService) List(ctx context.Context, actor authdomain.Identity) ([]domain.Message, error) {
	if actor.IsZero() {
		return nil, authdomain.ErrUnauthorized
	}
	return s.repo.List(ctx)
}

func (s *InboxService) MarkRead(ctx context.Context, actor authdomain.Identity, id string) (*domain.Message, error) {
	if actor.IsZero() {
		return nil, authdomain.ErrUnauthorized
	}
	return s.repo.MarkRead(ctx, id)
}

func (s *InboxService) Delete(ctx context.Context, actor authdomain.Identity, id string) error {
	if actor.IsZero() {
		return authdomain.ErrUnauthorized
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	logging.NewLogger(ctx).LogInfo("inbox.delete", "message deleted", zap.String("message_id", id))
	return nil
}
