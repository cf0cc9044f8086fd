package auth

import "errors"

var (
	ErrPrincipalNotFound  = errors.New("principal not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrTokenRevoked       = errors.New("token is revoked")
	ErrVehicleRequired    = errors.New("vehicle is required for drivers")
	ErrInvalidRole        = errors.New("invalid role")
)
