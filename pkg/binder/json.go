package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// DefaultMaxJSONSize is the body limit applied by JSON (1 MB).
const DefaultMaxJSONSize = 1 << 20

// Func decodes a request into v.
type Func func(r *http.Request, v any) error

// Option configures the JSON binder.
type Option func(*jsonBinder)

type jsonBinder struct {
	maxSize      int64
	allowUnknown bool
	allowEmptyCT bool
}

// WithMaxSize overrides the body limit. Non-positive values are ignored.
func WithMaxSize(n int64) Option {
	return func(b *jsonBinder) {
		if n > 0 {
			b.maxSize = n
		}
	}
}

// WithUnknownFields accepts JSON keys that have no matching struct field.
func WithUnknownFields() Option {
	return func(b *jsonBinder) { b.allowUnknown = true }
}

// WithoutContentType accepts requests that carry no Content-Type header.
func WithoutContentType() Option {
	return func(b *jsonBinder) { b.allowEmptyCT = true }
}

// JSON returns a binder that decodes exactly one JSON value from the body.
// Unknown fields and trailing data are rejected unless configured otherwise.
func JSON(opts ...Option) Func {
	b := &jsonBinder{maxSize: DefaultMaxJSONSize}
	for _, opt := range opts {
		opt(b)
	}
	return b.bind
}

func (b *jsonBinder) bind(r *http.Request, v any) error {
	if err := r.Context().Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToParseJSON, err)
	}

	if ct := r.Header.Get("Content-Type"); ct != "" {
		mediaType, _, err := mime.ParseMediaType(ct)
		if err != nil || mediaType != "application/json" {
			return fmt.Errorf("%w: got %q, expected application/json", ErrUnsupportedMediaType, ct)
		}
	} else if !b.allowEmptyCT {
		return fmt.Errorf("%w: expected application/json", ErrMissingContentType)
	}

	if r.Body == nil {
		return fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, b.maxSize+1))
	if err != nil {
		return fmt.Errorf("%w: read body: %w", ErrFailedToParseJSON, err)
	}
	if int64(len(body)) > b.maxSize {
		return fmt.Errorf("%w: %w (max %d bytes)", ErrFailedToParseJSON, ErrBodyTooLarge, b.maxSize)
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	if !b.allowUnknown {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
		}
		return fmt.Errorf("%w: %w", ErrFailedToParseJSON, err)
	}
	if dec.More() {
		return fmt.Errorf("%w: unexpected data after JSON value", ErrFailedToParseJSON)
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected data after JSON value", ErrFailedToParseJSON)
	}

	return nil
}
