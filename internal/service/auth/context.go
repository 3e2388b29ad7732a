package auth

import (
	"context"

	"github.com/m04kA/SMC-CanchaBooking/internal/domain"
)

type identityKey struct{}

// WithIdentity кладёт идентичность в контекст запроса
func WithIdentity(ctx context.Context, identity domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// CurrentIdentity идентичность из контекста или domain.Anonymous
func CurrentIdentity(ctx context.Context) domain.Identity {
	identity, ok := ctx.Value(identityKey{}).(domain.Identity)
	if !ok {
		return domain.Anonymous
	}
	return identity
}
