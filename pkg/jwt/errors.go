package jwt

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidToken      = errors.New("jwt: invalid token")
	ErrExpiredToken      = fmt.Errorf("%w: token is expired", ErrInvalidToken)
	ErrMissingSigningKey = errors.New("jwt: missing signing key")
	ErrMissingSubject    = errors.New("jwt: missing subject")
)
