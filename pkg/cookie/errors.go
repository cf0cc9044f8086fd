package cookie

import "errors"

var (
	ErrCookieNotFound  = errors.New("cookie: not found")
	ErrInvalidName     = errors.New("cookie: invalid name")
	ErrInvalidSameSite = errors.New("cookie: invalid SameSite mode")
)
