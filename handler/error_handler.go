package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/ridehail/pkg/binder"
	"github.com/dmitrymomot/ridehail/pkg/logger"
	"github.com/dmitrymomot/ridehail/pkg/validator"
)

// ErrorMapping maps errors matching Target (errors.Is) to a status and a
// client-facing message.
type ErrorMapping struct {
	Target  error
	Status  int
	Message string
}

// ValidationResponse is the body returned for rejected input.
type ValidationResponse struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Errors  []validator.FieldError `json:"errors"`
}

const internalErrorMessage = "Internal server error"

func defaultErrorHandler(ctx Context, err error) {
	status, body := classify(err, nil)
	WriteJSON(ctx.ResponseWriter(), status, body)
}

// NewErrorHandler returns the JSON error handler shared by all API routes.
// Resolution order: validation and binding failures (400/415), HTTPError,
// the given mappings, then 500. Server errors are logged at error level
// with the underlying cause; client errors at debug.
func NewErrorHandler(log *slog.Logger, mappings ...ErrorMapping) ErrorHandler {
	if log == nil {
		log = logger.Discard()
	}
	return func(ctx Context, err error) {
		status, body := classify(err, mappings)

		level := slog.LevelDebug
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		r := ctx.Request()
		log.LogAttrs(ctx, level, "request failed",
			logger.Component("http"),
			logger.HTTPRequest(r.Method, r.URL.Path, status),
			logger.Error(err),
		)

		WriteJSON(ctx.ResponseWriter(), status, body)
	}
}

func classify(err error, mappings []ErrorMapping) (int, any) {
	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		return http.StatusBadRequest, ValidationResponse{
			Message: "Validation errors",
			Errors:  verrs,
		}
	}

	switch {
	case errors.Is(err, binder.ErrUnsupportedMediaType), errors.Is(err, binder.ErrMissingContentType):
		return http.StatusUnsupportedMediaType, map[string]string{"message": "Content-Type must be application/json"}
	case errors.Is(err, binder.ErrBodyTooLarge):
		return http.StatusRequestEntityTooLarge, map[string]string{"message": "Request body too large"}
	case errors.Is(err, binder.ErrFailedToParseJSON):
		return http.StatusBadRequest, ValidationResponse{
			Message: "Validation errors",
			Errors:  []validator.FieldError{},
		}
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code, map[string]string{"message": httpErr.Message}
	}

	for _, m := range mappings {
		if errors.Is(err, m.Target) {
			return m.Status, map[string]string{"message": m.Message}
		}
	}

	return http.StatusInternalServerError, map[string]string{"message": internalErrorMessage}
}
