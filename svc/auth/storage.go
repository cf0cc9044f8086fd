package auth

import (
	"context"
	"time"

	"github.com/dmitrymomot/ridehail/pkg/jwt"
)

// CredentialStore persists principals of one role together with their
// password hashes.
type CredentialStore interface {
	// Create assigns p.ID and stores p with hash. Returns
	// ErrEmailAlreadyExists when the email is taken.
	Create(ctx context.Context, p *Principal, hash string) error
	// GetByID returns ErrPrincipalNotFound for unknown or malformed IDs.
	GetByID(ctx context.Context, id string) (*Principal, error)
	// GetCredentialsByEmail returns the principal and its password hash.
	GetCredentialsByEmail(ctx context.Context, email string) (*Principal, string, error)
}

// RevocationStore records tokens invalidated before their natural expiry.
// Records may be dropped once expiresAt has passed.
type RevocationStore interface {
	Revoke(ctx context.Context, token string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// TokenIssuer issues and verifies signed session tokens.
type TokenIssuer interface {
	Issue(subject, role string) (string, jwt.Claims, error)
	Verify(token string) (jwt.Claims, error)
}
