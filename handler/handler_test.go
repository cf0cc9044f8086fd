package handler_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ridehail/handler"
	"github.com/dmitrymomot/ridehail/pkg/binder"
	"github.com/dmitrymomot/ridehail/pkg/validator"
)

type greetRequest struct {
	Name string `json:"name" validate:"required,min=3"`
}

func greet(_ handler.Context, req greetRequest) handler.Response {
	return handler.JSON(map[string]string{"hello": req.Name}, handler.WithStatus(http.StatusCreated))
}

func post(body string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/greet", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	return r
}

func wrapGreet(opts ...handler.WrapOption[greetRequest]) http.HandlerFunc {
	base := []handler.WrapOption[greetRequest]{
		handler.WithBinders[greetRequest](binder.JSON()),
		handler.WithValidator[greetRequest](validator.Validate),
		handler.WithErrorHandler[greetRequest](handler.NewErrorHandler(nil)),
	}
	return handler.Wrap(greet, append(base, opts...)...)
}

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("binds validates and renders", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		wrapGreet().ServeHTTP(rec, post(`{"name":"Jane"}`))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"hello":"Jane"}`, rec.Body.String())
	})

	t.Run("validation failure", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		wrapGreet().ServeHTTP(rec, post(`{"name":"Jo"}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{
			"success": false,
			"message": "Validation errors",
			"errors": [{"field":"name","message":"name must be at least 3 characters long","value":"Jo"}]
		}`, rec.Body.String())
	})

	t.Run("malformed json", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		wrapGreet().ServeHTTP(rec, post(`{"name":`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"success":false,"message":"Validation errors","errors":[]}`, rec.Body.String())
	})

	t.Run("wrong content type", func(t *testing.T) {
		t.Parallel()
		r := post(`{"name":"Jane"}`)
		r.Header.Set("Content-Type", "text/plain")
		rec := httptest.NewRecorder()
		wrapGreet().ServeHTTP(rec, r)
		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	})

	t.Run("decorators run outermost first", func(t *testing.T) {
		t.Parallel()
		var order []string
		mark := func(name string) handler.Decorator[greetRequest] {
			return func(next handler.HandlerFunc[greetRequest]) handler.HandlerFunc[greetRequest] {
				return func(ctx handler.Context, req greetRequest) handler.Response {
					order = append(order, name)
					return next(ctx, req)
				}
			}
		}
		rec := httptest.NewRecorder()
		wrapGreet(handler.WithDecorators(mark("outer"), mark("inner"))).ServeHTTP(rec, post(`{"name":"Jane"}`))
		assert.Equal(t, []string{"outer", "inner"}, order)
	})

	t.Run("nil response", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(func(handler.Context, struct{}) handler.Response { return nil })
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"message":"Internal server error"}`, rec.Body.String())
	})

	t.Run("render error", func(t *testing.T) {
		t.Parallel()
		var got error
		h := handler.Wrap(
			func(handler.Context, struct{}) handler.Response {
				return handler.Func(func(http.ResponseWriter, *http.Request) error { return errors.New("write failed") })
			},
			handler.WithErrorHandler[struct{}](func(_ handler.Context, err error) { got = err }),
		)
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		require.EqualError(t, got, "write failed")
	})
}

func TestContext(t *testing.T) {
	t.Parallel()

	type key struct{}
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r = r.WithContext(context.WithValue(r.Context(), key{}, "v"))
	rec := httptest.NewRecorder()

	ctx := handler.NewContext(rec, r)
	assert.Equal(t, "v", ctx.Value(key{}))
	assert.Same(t, r, ctx.Request())
	assert.Equal(t, rec, ctx.ResponseWriter())
	assert.NoError(t, ctx.Err())
}

func TestErrorHandlerMappings(t *testing.T) {
	t.Parallel()

	errTaken := errors.New("email taken")
	eh := handler.NewErrorHandler(nil,
		handler.ErrorMapping{Target: errTaken, Status: http.StatusConflict, Message: "Email already registered"},
	)

	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"mapped", errors.Join(errors.New("create"), errTaken), http.StatusConflict, `{"message":"Email already registered"}`},
		{"http error", handler.NewHTTPError(http.StatusUnauthorized, "Unauthorized"), http.StatusUnauthorized, `{"message":"Unauthorized"}`},
		{"http error default text", handler.NewHTTPError(http.StatusNotFound, ""), http.StatusNotFound, `{"message":"Not Found"}`},
		{"unknown", errors.New("db down"), http.StatusInternalServerError, `{"message":"Internal server error"}`},
		{"too large", binder.ErrBodyTooLarge, http.StatusRequestEntityTooLarge, `{"message":"Request body too large"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			eh(handler.NewContext(rec, httptest.NewRequest(http.MethodPost, "/users/register", nil)), tt.err)
			assert.Equal(t, tt.status, rec.Code)
			assert.JSONEq(t, tt.body, rec.Body.String())
		})
	}
}

func TestMessage(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	require.NoError(t, handler.Message(http.StatusOK, "Logged out").Render(rec, nil))
	assert.JSONEq(t, `{"message":"Logged out"}`, rec.Body.String())
}

func TestTempl(t *testing.T) {
	t.Parallel()

	page := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<h1>Ridehail</h1>")
		return err
	})

	rec := httptest.NewRecorder()
	require.NoError(t, handler.Templ(page).Render(rec, httptest.NewRequest(http.MethodGet, "/", nil)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "<h1>Ridehail</h1>", rec.Body.String())

	broken := templ.ComponentFunc(func(context.Context, io.Writer) error { return errors.New("boom") })
	rec = httptest.NewRecorder()
	err := handler.TemplWithStatus(broken, http.StatusNotFound).Render(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Error(t, err)
	assert.Empty(t, rec.Body.String())
}
