package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"firebase.google.com/go/v4/auth"

	"github.com/Developer-Sahil/portfolio-system/internal/auth/domain"
)

// IDTokenVerifier is the part of *auth.Client used here.
type IDTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// FirebaseVerifier accepts Firebase ID tokens that belong to the admin email.
type FirebaseVerifier struct {
	client     IDTokenVerifier
	adminEmail string
}

func NewFirebaseVerifier(client IDTokenVerifier, adminEmail string) *FirebaseVerifier {
	return &FirebaseVerifier{client: client, adminEmail: strings.TrimSpace(adminEmail)}
}

func (f *FirebaseVerifier) Verify(ctx context.Context, token string) (domain.Identity, error) {
	decoded, err := f.client.VerifyIDToken(ctx, token)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}

	email, _ := decoded.Claims["email"].(string)
	if email == "" || f.adminEmail == "" || !strings.EqualFold(email, f.adminEmail) {
		return domain.Identity{}, fmt.Errorf("%w: firebase user is not the admin", domain.ErrUnauthorized)
	}

	return domain.Identity{
		Email:     f.adminEmail,
		Method:    domain.MethodFirebase,
		ExpiresAt: time.Unix(decoded.Expires, 0).UTC(),
	}, nil
}
