package service

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authdomain "github.com/Developer-Sahil/portfolio-system/internal/auth/domain"
	content "github.com/Developer-Sahil/portfolio-system/internal/content/domain"
	"github.com/Developer-Sahil/portfolio-system/internal/inbox/domain"
	"github.com/Developer-Sahil/portfolio-system/internal/inbox/repository"
)

var admin = authdomain.Identity{Email: "admin@example.com", Method: authdomain.MethodPassword}

type recordingNotifier struct {
	got []*domain.Message
	err error
}

func (r *recordingNotifier) Notify(_ context.Context, m *domain.Message) error {
	r.got = append(r.got, m)
	return r.err
}

func validInput() domain.MessageInput {
	company := "  Acme  "
	return domain.MessageInput{
		Name:    " Ana ",
		Email:   "ana@example.com",
		Company: &company,
		Type:    "Hiring",
		Message: "Let's talk.",
	}
}

func TestSubmit(t *testing.T) {
	repo := repository.NewMemory()
	notifier := &recordingNotifier{}
	svc := NewInboxService(repo, notifier)

	m, err := svc.Submit(context.Background(), validInput())
	require.NoError(t, err)
	assert.NotEmpty(t, m.ID)
	assert.Equal(t, "Ana", m.Name)
	assert.Equal(t, "hiring", m.Type)
	require.NotNil(t, m.Company)
	assert.Equal(t, "Acme", *m.Company)
	assert.False(t, m.Read)
	assert.False(t, m.CreatedAt.IsZero())
	require.Len(t, notifier.got, 1)
	assert.Equal(t, m.ID, notifier.got[0].ID)

	msgs, err := svc.List(context.Background(), admin)
	require.NoError(t, err)
	assert.Len(t, msgs, 1)
}

func TestSubmit_NotifierFailureDoesNotFail(t *testing.T) {
	svc := NewInboxService(repository.NewMemory(), &recordingNotifier{err: errors.New("smtp down")})

	m, err := svc.Submit(context.Background(), validInput())
	require.NoError(t, err)
	assert.NotEmpty(t, m.ID)
}

func TestSubmit_Validation(t *testing.T) {
	repo := repository.NewMemory()
	notifier := &recordingNotifier{}
	svc := NewInboxService(repo, notifier)

	cases := map[string]func(in *domain.MessageInput){
		"name":         func(in *domain.MessageInput) { in.Name = "  " },
		"email":        func(in *domain.MessageInput) { in.Email = "" },
		"bad email":    func(in *domain.MessageInput) { in.Email = "not-an-address" },
		"display name": func(in *domain.MessageInput) { in.Email = "Ana <ana@example.com>" },
		"type":         func(in *domain.MessageInput) { in.Type = "" },
		"message":      func(in *domain.MessageInput) { in.Message = "" },
		"too long":     func(in *domain.MessageInput) { in.Message = strings.Repeat("x", domain.MaxMessageLength+1) },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := validInput()
			mutate(&in)
			_, err := svc.Submit(context.Background(), in)
			require.Error(t, err)
			assert.True(t, content.IsValidation(err), err)
		})
	}

	msgs, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, msgs)
	assert.Empty(t, notifier.got)
}

func TestAdminOperationsRequireIdentity(t *testing.T) {
	svc := NewInboxService(repository.NewMemory(), nil)
	m, err := svc.Submit(context.Background(), validInput())
	require.NoError(t, err)

	_, err = svc.List(context.Background(), authdomain.Identity{})
	assert.ErrorIs(t, err, authdomain.ErrUnauthorized)
	_, err = svc.MarkRead(context.Background(), authdomain.Identity{}, m.ID)
	assert.ErrorIs(t, err, authdomain.ErrUnauthorized)
	assert.ErrorIs(t, svc.Delete(context.Background(), authdomain.Identity{}, m.ID), authdomain.ErrUnauthorized)

	read, err := svc.MarkRead(context.Background(), admin, m.ID)
	require.NoError(t, err)
	assert.True(t, read.Read)
	require.NoError(t, svc.Delete(context.Background(), admin, m.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), admin, m.ID), content.ErrNotFound)
}

func TestSMTPNotifier(t *testing.T) {
	n := NewSMTPNotifier(SMTPConfig{Server: "smtp.example.com", Username: "me@example.com", Password: "pw"})

	var (
		gotAddr string
		gotTo   []string
		gotMsg  string
	)
	n.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotTo, gotMsg = addr, to, string(msg)
		assert.Equal(t, "me@example.com", from)
		return nil
	}

	err := n.Notify(context.Background(), &domain.Message{
		ID: "m1", Name: "Eve\r\nBcc: victim@example.com", Email: "eve@example.com",
		Type: "hiring", Message: "<script>alert(1)</script>",
	})
	require.NoError(t, err)
	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, []string{"me@example.com"}, gotTo)
	assert.Contains(t, gotMsg, "Subject: New Portfolio Inquiry: hiring from Eve  Bcc: victim@example.com\r\n")
	headers := strings.SplitN(gotMsg, "\r\n\r\n", 2)[0]
	assert.NotContains(t, headers, "\r\nBcc:")
	assert.Contains(t, gotMsg, "&lt;script&gt;")
	assert.Contains(t, gotMsg, "<strong>Company:</strong> N/A")

	n.send = func(string, smtp.Auth, string, []string, []byte) error { return errors.New("refused") }
	assert.Error(t, n.Notify(context.Background(), &domain.Message{ID: "m2"}))
}

func TestNewNotifier(t *testing.T) {
	assert.IsType(t, NopNotifier{}, NewNotifier(SMTPConfig{}))
	assert.IsType(t, &SMTPNotifier{}, NewNotifier(SMTPConfig{Server: "smtp.example.com"}))
}
