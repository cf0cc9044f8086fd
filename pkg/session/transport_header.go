package session

import (
	"net/http"
	"strings"
	"time"
)

// HeaderTransport reads "Authorization: Bearer <token>".
// Header tokens are held by the client, so SetToken and ClearToken do nothing.
type HeaderTransport struct {
	header string
	scheme string
}

// HeaderOption configures a HeaderTransport.
type HeaderOption func(*HeaderTransport)

// WithHeaderName reads the token from a different header.
func WithHeaderName(name string) HeaderOption {
	return func(t *HeaderTransport) { t.header = name }
}

// WithScheme changes the expected auth scheme (default "Bearer").
func WithScheme(scheme string) HeaderOption {
	return func(t *HeaderTransport) { t.scheme = scheme }
}

func NewHeaderTransport(opts ...HeaderOption) *HeaderTransport {
	t := &HeaderTransport{header: "Authorization", scheme: "Bearer"}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// GetToken returns ErrTokenNotFound when the header is absent and
// ErrMalformedHeader when it does not hold exactly "<scheme> <token>".
// The scheme is matched case-insensitively.
func (t *HeaderTransport) GetToken(r *http.Request) (string, error) {
	value := strings.TrimSpace(r.Header.Get(t.header))
	if value == "" {
		return "", ErrTokenNotFound
	}

	scheme, token, ok := strings.Cut(value, " ")
	token = strings.TrimSpace(token)
	if !ok || !strings.EqualFold(scheme, t.scheme) || token == "" || strings.ContainsAny(token, " \t") {
		return "", ErrMalformedHeader
	}
	return token, nil
}

func (t *HeaderTransport) SetToken(http.ResponseWriter, string, time.Duration) error { return nil }

func (t *HeaderTransport) ClearToken(http.ResponseWriter) error { return nil }
