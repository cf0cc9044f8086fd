// Package password hashes and verifies account credentials with bcrypt.
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used by Hash.
const DefaultCost = 10

// MaxLength is the longest password bcrypt can digest.
const MaxLength = 72

var (
	ErrPasswordTooLong = errors.New("password exceeds 72 bytes")
	ErrEmptyPassword   = errors.New("password is empty")
)

// Hash returns the bcrypt hash of plain at DefaultCost.
func Hash(plain string) (string, error) {
	return HashWithCost(plain, DefaultCost)
}

// HashWithCost hashes plain with the given cost. Costs outside bcrypt's range
// fall back to DefaultCost.
func HashWithCost(plain string, cost int) (string, error) {
	if plain == "" {
		return "", ErrEmptyPassword
	}
	if len(plain) > MaxLength {
		return "", ErrPasswordTooLong
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether plain matches hashed. Malformed hashes and
// passwords longer than MaxLength never match.
func Verify(plain, hashed string) bool {
	if plain == "" || hashed == "" || len(plain) > MaxLength {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
