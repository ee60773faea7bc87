package domain

import (
	"errors"
	"time"
)

// ErrUnauthorized covers missing, malformed, expired and foreign credentials
// alike. Callers never learn which.
var ErrUnauthorized = errors.New("unauthorized")

const (
	MethodPassword = "password"
	MethodFirebase = "firebase"
	// MethodCLI marks operator commands run on the host, such as seeding.
	MethodCLI = "cli"
)

// Identity is the authenticated administrator behind a request.
type Identity struct {
	Email     string    `json:"email"`
	Method    string    `json:"method"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// IsZero reports whether no one is authenticated.
func (i Identity) IsZero() bool {
	return i.Email == ""
}

// Credentials is the local login payload.
type Credentials struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Session is an issued bearer token.
type Session struct {
	Token     string    `json:"token"`
	TokenType string    `json:"tokenType"`
	ExpiresAt time.Time `json:"expiresAt"`
}
