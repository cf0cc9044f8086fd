package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ridehail/pkg/cookie"
)

func TestSetAndGet(t *testing.T) {
	t.Parallel()

	m := cookie.New(cookie.WithSecure(true))
	rec := httptest.NewRecorder()
	require.NoError(t, m.Set(rec, "token", "abc.def.ghi", cookie.WithMaxAge(time.Hour)))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, "token", c.Name)
	assert.Equal(t, "abc.def.ghi", c.Value)
	assert.Equal(t, "/", c.Path)
	assert.Equal(t, 3600, c.MaxAge)
	assert.True(t, c.Secure)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(c)
	v, err := m.Get(req, "token")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", v)
}

func TestSessionCookieHasNoMaxAge(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	require.NoError(t, cookie.New().Set(rec, "token", "v"))
	c := rec.Result().Cookies()[0]
	assert.Zero(t, c.MaxAge)
	assert.True(t, c.Expires.IsZero())
}

func TestSetRejectsInvalidName(t *testing.T) {
	t.Parallel()

	m := cookie.New()
	require.ErrorIs(t, m.Set(httptest.NewRecorder(), "", "v"), cookie.ErrInvalidName)
	require.ErrorIs(t, m.Set(httptest.NewRecorder(), "bad name", "v"), cookie.ErrInvalidName)
}

func TestGetMissing(t *testing.T) {
	t.Parallel()

	m := cookie.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := m.Get(req, "token")
	require.ErrorIs(t, err, cookie.ErrCookieNotFound)

	req.AddCookie(&http.Cookie{Name: "token", Value: ""})
	_, err = m.Get(req, "token")
	require.ErrorIs(t, err, cookie.ErrCookieNotFound)
}

func TestDelete(t *testing.T) {
	t.Parallel()

	m := cookie.New(cookie.WithDomain("example.com"))
	rec := httptest.NewRecorder()
	m.Delete(rec, "token")

	c := rec.Result().Cookies()[0]
	assert.Equal(t, "token", c.Name)
	assert.Empty(t, c.Value)
	assert.Equal(t, -1, c.MaxAge)
	assert.Equal(t, "example.com", c.Domain)
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	m, err := cookie.NewFromConfig(cookie.Config{Path: "/api", Secure: true, HttpOnly: true, SameSite: "Strict"})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	require.NoError(t, m.Set(rec, "token", "v"))
	c := rec.Result().Cookies()[0]
	assert.Equal(t, "/api", c.Path)
	assert.Equal(t, http.SameSiteStrictMode, c.SameSite)
	assert.True(t, c.Secure)

	_, err = cookie.NewFromConfig(cookie.Config{SameSite: "sometimes"})
	require.ErrorIs(t, err, cookie.ErrInvalidSameSite)
}

func TestParseSameSite(t *testing.T) {
	t.Parallel()

	tests := map[string]http.SameSite{
		"":       http.SameSiteDefaultMode,
		"lax":    http.SameSiteLaxMode,
		"STRICT": http.SameSiteStrictMode,
		" none ": http.SameSiteNoneMode,
	}
	for in, want := range tests {
		got, err := cookie.ParseSameSite(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}
