package handler

import (
	"encoding/json"
	"net/http"
)

type jsonResponse struct {
	status int
	body   any
}

func (j jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures a JSON response.
type JSONOption func(*jsonResponse)

// WithStatus sets the HTTP status (default 200).
func WithStatus(status int) JSONOption {
	return func(r *jsonResponse) { r.status = status }
}

// JSON encodes v as the response body.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK, body: v}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Message responds with {"message": msg}.
func Message(status int, msg string) Response {
	return JSON(map[string]string{"message": msg}, WithStatus(status))
}

// WriteJSON renders a JSON body directly. Used by middleware that runs
// outside Wrap.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	_ = JSON(v, WithStatus(status)).Render(w, nil)
}

// Func adapts a function to Response.
type Func func(w http.ResponseWriter, r *http.Request) error

func (f Func) Render(w http.ResponseWriter, r *http.Request) error { return f(w, r) }
