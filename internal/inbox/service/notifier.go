package service

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/Developer-Sahil/portfolio-system/internal/inbox/domain"
)

// Notifier tells the site owner about a new message.
type Notifier interface {
	Notify(ctx context.Context, m *domain.Message) error
}

type NopNotifier struct{}

func (NopNotifier) Notify(context.Context, *domain.Message) error { return nil }

type SMTPConfig struct {
	Server   string
	Port     int
	Username string
	Password string
	From     string
	To       string
}

// SMTPNotifier mails an HTML summary of each message. STARTTLS is used when
// the server offers it.
type SMTPNotifier struct {
	cfg  SMTPConfig
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPNotifier(cfg SMTPConfig) *SMTPNotifier {
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	if cfg.From == "" {
		cfg.From = cfg.Username
	}
	if cfg.To == "" {
		cfg.To = cfg.Username
	}
	return &SMTPNotifier{cfg: cfg, send: smtp.SendMail}
}

// NewNotifier returns an SMTP notifier when a server is configured, else a
// no-op.
func NewNotifier(cfg SMTPConfig) Notifier {
	if cfg.Server == "" {
		return NopNotifier{}
	}
	return NewSMTPNotifier(cfg)
}

func (n *SMTPNotifier) Notify(_ context.Context, m *domain.Message) error {
	if n.cfg.To == "" {
		return fmt.Errorf("smtp notifier: no recipient configured")
	}
	var auth smtp.Auth
	if n.cfg.Username != "" {
		auth = smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Server)
	}
	addr := net.JoinHostPort(n.cfg.Server, strconv.Itoa(n.cfg.Port))
	if err := n.send(addr, auth, n.cfg.From, []string{n.cfg.To}, n.compose(m)); err != nil {
		return fmt.Errorf("smtp notifier: %w", err)
	}
	return nil
}

func (n *SMTPNotifier) compose(m *domain.Message) []byte {
	company := "N/A"
	if m.Company != nil {
		company = *m.Company
	}
	subject := fmt.Sprintf("New Portfolio Inquiry: %s from %s", m.Type, m.Name)

	var b bytes.Buffer
	fmt.Fprintf(&b, "From: %s\r\n", n.cfg.From)
	fmt.Fprintf(&b, "To: %s\r\n", n.cfg.To)
	fmt.Fprintf(&b, "Reply-To: %s\r\n", m.Email)
	fmt.Fprintf(&b, "Subject: %s\r\n", headerSafe(subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n\r\n")
	b.WriteString("<h2>New Message</h2>\r\n")
	for _, f := range [][2]string{
		{"Name", m.Name},
		{"Email", m.Email},
		{"Company", company},
		{"Type", m.Type},
	} {
		fmt.Fprintf(&b, "<p><strong>%s:</strong> %s</p>\r\n", f[0], html.EscapeString(f[1]))
	}
	fmt.Fprintf(&b, "<p><strong>Message:</strong></p>\r\n<p>%s</p>\r\n", html.EscapeString(m.Message))
	return b.Bytes()
}

// headerSafe strips line breaks so visitor input cannot inject headers.
func headerSafe(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}
