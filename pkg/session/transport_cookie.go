package session

import (
	"net/http"
	"time"

	"github.com/dmitrymomot/ridehail/pkg/cookie"
)

// DefaultCookieName is the cookie carrying the session token.
const DefaultCookieName = "token"

// CookieTransport keeps the token in an HttpOnly cookie.
type CookieTransport struct {
	cookies *cookie.Manager
	name    string
}

// NewCookieTransport creates a cookie transport. An empty name uses DefaultCookieName.
func NewCookieTransport(cookies *cookie.Manager, name string) *CookieTransport {
	if name == "" {
		name = DefaultCookieName
	}
	return &CookieTransport{cookies: cookies, name: name}
}

func (t *CookieTransport) GetToken(r *http.Request) (string, error) {
	token, err := t.cookies.Get(r, t.name)
	if err != nil {
		return "", ErrTokenNotFound
	}
	return token, nil
}

// SetToken writes the cookie with Max-Age matching the token lifetime.
func (t *CookieTransport) SetToken(w http.ResponseWriter, token string, ttl time.Duration) error {
	return t.cookies.Set(w, t.name, token, cookie.WithMaxAge(ttl))
}

func (t *CookieTransport) ClearToken(w http.ResponseWriter) error {
	t.cookies.Delete(w, t.name)
	return nil
}
