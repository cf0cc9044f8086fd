package session

import (
	"context"
	"net/http"
	"time"
)

// Transport moves the session token between client and server.
type Transport interface {
	// GetToken extracts the token from the request or returns ErrTokenNotFound.
	GetToken(r *http.Request) (string, error)
	// SetToken hands the token to the client for ttl.
	SetToken(w http.ResponseWriter, token string, ttl time.Duration) error
	// ClearToken tells the client to forget the token.
	ClearToken(w http.ResponseWriter) error
}

type tokenContextKey struct{}

// WithToken stores the raw token of an authenticated request in ctx.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenContextKey{}, token)
}

// TokenFromContext returns the token stored by WithToken.
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenContextKey{}).(string)
	return token, ok && token != ""
}
