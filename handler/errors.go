package handler

import (
	"errors"
	"net/http"
)

var ErrNilResponse = errors.New("handler returned nil response")

// HTTPError is an error that carries its own status and client message.
type HTTPError struct {
	Code    int
	Message string
}

// NewHTTPError creates an HTTPError. An empty message defaults to the
// status text.
func NewHTTPError(code int, message string) HTTPError {
	if message == "" {
		message = http.StatusText(code)
	}
	return HTTPError{Code: code, Message: message}
}

func (e HTTPError) Error() string { return e.Message }
