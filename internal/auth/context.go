package auth

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/Developer-Sahil/portfolio-system/internal/auth/domain"
)

type identityKey struct{}

// CtxIdentity is the gin context key holding the verified domain.Identity.
const CtxIdentity = "admin_identity"

func WithIdentity(ctx context.Context, id domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFrom returns the identity stored by the auth middleware, or the
// zero identity for anonymous requests.
func IdentityFrom(ctx context.Context) domain.Identity {
	id, _ := ctx.Value(identityKey{}).(domain.Identity)
	return id
}

// RequestIdentity reads the identity from a gin request.
func RequestIdentity(c *gin.Context) domain.Identity {
	if v, ok := c.Get(CtxIdentity); ok {
		if id, ok := v.(domain.Identity); ok {
			return id
		}
	}
	return IdentityFrom(c.Request.Context())
}
