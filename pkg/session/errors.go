package session

import "errors"

var (
	// ErrTokenNotFound means the request carries no session token.
	ErrTokenNotFound = errors.New("session: token not found")
	// ErrMalformedHeader means the Authorization header is present but not "Bearer <token>".
	ErrMalformedHeader = errors.New("session: malformed authorization header")
)
