package auth

import (
	"context"
)

type principalContextKey struct{}

// SetPrincipalToContext stores the authenticated principal for handlers
// further down the chain.
func SetPrincipalToContext(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalContextKey{}, p)
}

// GetPrincipalFromContext returns nil when no principal was stored.
func GetPrincipalFromContext(ctx context.Context) *Principal {
	p, _ := ctx.Value(principalContextKey{}).(*Principal)
	return p
}
