package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Developer-Sahil/portfolio-system/internal/auth/domain"
	"github.com/Developer-Sahil/portfolio-system/internal/logging"
)

const Issuer = "portfolio-api"

// Verifier turns a bearer token into an Identity.
type Verifier interface {
	Verify(ctx context.Context, token string) (domain.Identity, error)
}

type Options struct {
	AdminEmail string
	// PasswordHash is a bcrypt hash; empty disables password login.
	PasswordHash string
	Secret       string
	TTL          time.Duration
	// External, when set, is consulted for tokens this gate did not issue.
	External Verifier
}

// Gate authenticates the single administrator and verifies the tokens it
// issues.
type Gate struct {
	adminEmail   string
	passwordHash []byte
	secret       []byte
	ttl          time.Duration
	external     Verifier
	now          func() time.Time
}

func NewGate(opts Options) *Gate {
	return &Gate{
		adminEmail:   strings.TrimSpace(opts.AdminEmail),
		passwordHash: []byte(opts.PasswordHash),
		secret:       []byte(opts.Secret),
		ttl:          opts.TTL,
		external:     opts.External,
		now:          time.Now,
	}
}

// Authenticate checks the admin credentials and issues a signed session
// token.
func (g *Gate) Authenticate(ctx context.Context, creds domain.Credentials) (domain.Session, error) {
	log := logging.NewLogger(ctx)

	if g.adminEmail == "" || len(g.passwordHash) == 0 || len(g.secret) == 0 {
		log.LogWarn("auth.authenticate", "password login is not configured")
		return domain.Session{}, domain.ErrUnauthorized
	}
	if !strings.EqualFold(strings.TrimSpace(creds.Email), g.adminEmail) {
		log.LogWarn("auth.authenticate", "login rejected", zap.String("reason", "unknown email"))
		return domain.Session{}, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword(g.passwordHash, []byte(creds.Password)); err != nil {
		log.LogWarn("auth.authenticate", "login rejected", zap.String("reason", "bad password"))
		return domain.Session{}, domain.ErrUnauthorized
	}

	now := g.now()
	expires := now.Add(g.ttl)
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    Issuer,
		Subject:   g.adminEmail,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expires),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.secret)
	if err != nil {
		return domain.Session{}, fmt.Errorf("sign token: %w", err)
	}

	log.LogInfo("auth.authenticate", "admin session issued")
	return domain.Session{Token: signed, TokenType: "Bearer", ExpiresAt: expires.UTC()}, nil
}

// Verify accepts tokens issued by Authenticate, then falls back to the
// external verifier if one is configured.
func (g *Gate) Verify(ctx context.Context, token string) (domain.Identity, error) {
	token = strings.TrimSpace(token)
	if token == "" || g.adminEmail == "" {
		return domain.Identity{}, domain.ErrUnauthorized
	}

	id, err := g.verifyLocal(token)
	if err == nil {
		return id, nil
	}
	if g.external != nil {
		if id, extErr := g.external.Verify(ctx, token); extErr == nil {
			return id, nil
		}
	}
	return domain.Identity{}, err
}

func (g *Gate) verifyLocal(token string) (domain.Identity, error) {
	if len(g.secret) == 0 {
		return domain.Identity{}, domain.ErrUnauthorized
	}

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return g.secret, nil
	})
	if err != nil || !parsed.Valid {
		return domain.Identity{}, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	if claims.ExpiresAt == nil {
		return domain.Identity{}, fmt.Errorf("%w: token has no expiry", domain.ErrUnauthorized)
	}
	if !claims.VerifyIssuer(Issuer, true) {
		return domain.Identity{}, fmt.Errorf("%w: foreign issuer", domain.ErrUnauthorized)
	}
	if !strings.EqualFold(claims.Subject, g.adminEmail) {
		return domain.Identity{}, fmt.Errorf("%w: subject is not the admin", domain.ErrUnauthorized)
	}

	return domain.Identity{
		Email:     g.adminEmail,
		Method:    domain.MethodPassword,
		ExpiresAt: claims.ExpiresAt.Time.UTC(),
	}, nil
}

// HashPassword produces a bcrypt hash suitable for ADMIN_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("password must not be empty")
	}
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
