package domain

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	content "github.com/Developer-Sahil/portfolio-system/internal/content/domain"
)

const (
	MaxMessageLength = 5000
	maxNameLength    = 120
	maxTypeLength    = 40
)

// Message is a contact-form submission.
type Message struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Company   *string   `json:"company,omitempty"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
	Read      bool      `json:"read"`
}

// MessageInput is what a visitor submits.
type MessageInput struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Company *string `json:"company"`
	Type    string  `json:"type"`
	Message string  `json:"message"`
}

func (in *MessageInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Type = strings.ToLower(strings.TrimSpace(in.Type))
	in.Message = strings.TrimSpace(in.Message)
	if in.Company != nil {
		c := strings.TrimSpace(*in.Company)
		if c == "" {
			in.Company = nil
		} else {
			in.Company = &c
		}
	}
}

func (in *MessageInput) Validate() error {
	switch {
	case in.Name == "":
		return content.Invalid("name", "is required")
	case utf8.RuneCountInString(in.Name) > maxNameLength:
		return content.Invalid("name", "must be at most %d characters", maxNameLength)
	case in.Email == "":
		return content.Invalid("email", "is required")
	case in.Type == "":
		return content.Invalid("type", "is required")
	case utf8.RuneCountInString(in.Type) > maxTypeLength:
		return content.Invalid("type", "must be at most %d characters", maxTypeLength)
	case in.Message == "":
		return content.Invalid("message", "is required")
	case utf8.RuneCountInString(in.Message) > MaxMessageLength:
		return content.Invalid("message", "must be at most %d characters", MaxMessageLength)
	}

	addr, err := mail.ParseAddress(in.Email)
	if err != nil || addr.Address != in.Email {
		return content.Invalid("email", "is not a valid address")
	}
	return nil
}

var (
	// ErrNotFound is returned for unknown message ids.
	ErrNotFound  = fmt.Errorf("message %w", content.ErrNotFound)
	ErrDuplicate = fmt.Errorf("%w: message id already exists", content.ErrConflict)
)
