package cookie

import (
	"errors"
	"net/http"
	"time"
)

// Manager writes and reads plain cookies with shared default attributes.
type Manager struct {
	defaults Options
}

// New creates a Manager. Defaults are Path=/, HttpOnly and SameSite=Lax.
func New(opts ...Option) *Manager {
	base := Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{defaults: base.apply(opts)}
}

// Set writes the cookie. Per-call opts override the manager defaults.
func (m *Manager) Set(w http.ResponseWriter, name, value string, opts ...Option) error {
	if name == "" {
		return ErrInvalidName
	}
	o := m.defaults.apply(opts)

	c := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     o.Path,
		Domain:   o.Domain,
		Secure:   o.Secure,
		HttpOnly: o.HttpOnly,
		SameSite: o.SameSite,
	}
	if o.MaxAge > 0 {
		c.MaxAge = int(o.MaxAge / time.Second)
		c.Expires = time.Now().Add(o.MaxAge).UTC()
	}
	if err := c.Valid(); err != nil {
		return errors.Join(ErrInvalidName, err)
	}

	http.SetCookie(w, c)
	return nil
}

// Get returns the value of the named cookie or ErrCookieNotFound.
// Empty values are reported as not found.
func (m *Manager) Get(r *http.Request, name string) (string, error) {
	c, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrCookieNotFound
		}
		return "", err
	}
	if c.Value == "" {
		return "", ErrCookieNotFound
	}
	return c.Value, nil
}

// Delete expires the named cookie using the manager's path and domain.
func (m *Manager) Delete(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     m.defaults.Path,
		Domain:   m.defaults.Domain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		Secure:   m.defaults.Secure,
		HttpOnly: m.defaults.HttpOnly,
		SameSite: m.defaults.SameSite,
	})
}
