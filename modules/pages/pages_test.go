package pages_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/ridehail/modules/pages"
)

func TestPages(t *testing.T) {
	t.Parallel()

	h := pages.NewModule(nil).Handle()

	tests := []struct {
		path string
		want string
	}{
		{"/", "Drive with us"},
		{"/signup", "Create a rider account"},
		{"/captain-signup", "Become a captain"},
		{"/login", `data-endpoint="/users/login"`},
		{"/captain-login", `data-endpoint="/captains/login"`},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
			assert.Contains(t, rec.Body.String(), tt.want)
		})
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
