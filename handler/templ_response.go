package handler

import (
	"bytes"
	"net/http"

	"github.com/a-h/templ"
)

type templResponse struct {
	component templ.Component
	status    int
}

// Render buffers the component so a render failure can still produce an
// error response instead of a truncated page.
func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	var buf bytes.Buffer
	if err := t.component.Render(r.Context(), &buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(t.status)
	_, err := buf.WriteTo(w)
	return err
}

// Templ renders component as an HTML page with status 200.
func Templ(component templ.Component) Response {
	return templResponse{component: component, status: http.StatusOK}
}

// TemplWithStatus renders component with the given status.
func TemplWithStatus(component templ.Component, status int) Response {
	return templResponse{component: component, status: status}
}
