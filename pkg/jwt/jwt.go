package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultTTL is the lifetime of issued tokens unless WithTTL overrides it.
const DefaultTTL = time.Hour

// Claims carries the principal's role next to the registered claims.
// Subject holds the principal ID and ID holds a random token identifier.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Config is the environment-driven token configuration.
type Config struct {
	Secret string        `env:"JWT_SECRET,required,notEmpty"`
	TTL    time.Duration `env:"JWT_TTL" envDefault:"1h"`
	Issuer string        `env:"JWT_ISSUER" envDefault:""`
}

// Option configures a Service.
type Option func(*Service)

// WithTTL sets the token lifetime. Non-positive values are ignored.
func WithTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithIssuer stamps and requires the iss claim.
func WithIssuer(iss string) Option {
	return func(s *Service) { s.issuer = iss }
}

// WithClock replaces time.Now for issuing and validation.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// Service issues and verifies HS256 tokens with a single shared secret.
type Service struct {
	key    []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

// New creates a Service. The key must be non-empty.
func New(key []byte, opts ...Option) (*Service, error) {
	if len(key) == 0 {
		return nil, ErrMissingSigningKey
	}
	s := &Service{
		key: append([]byte(nil), key...),
		ttl: DefaultTTL,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// NewFromConfig creates a Service from cfg; opts are applied last.
func NewFromConfig(cfg Config, opts ...Option) (*Service, error) {
	base := []Option{WithTTL(cfg.TTL)}
	if cfg.Issuer != "" {
		base = append(base, WithIssuer(cfg.Issuer))
	}
	return New([]byte(cfg.Secret), append(base, opts...)...)
}

// TTL returns the configured token lifetime.
func (s *Service) TTL() time.Duration { return s.ttl }

// Issue signs a token for subject with the given role.
func (s *Service) Issue(subject, role string) (string, Claims, error) {
	if subject == "" {
		return "", Claims{}, ErrMissingSubject
	}

	now := s.now().UTC().Truncate(time.Second)
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   subject,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
	if err != nil {
		return "", Claims{}, fmt.Errorf("jwt: sign token: %w", err)
	}
	return token, claims, nil
}

// Verify checks signature, algorithm and expiry, and returns the claims.
// Every failure matches ErrInvalidToken; expiry additionally matches ErrExpiredToken.
func (s *Service) Verify(token string) (Claims, error) {
	if token == "" {
		return Claims{}, ErrInvalidToken
	}

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(s.issuer))
	}

	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.key, nil
	}, parserOpts...)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return Claims{}, ErrExpiredToken
	case err != nil:
		return Claims{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	case claims.Subject == "":
		return Claims{}, fmt.Errorf("%w: %w", ErrInvalidToken, ErrMissingSubject)
	}
	return claims, nil
}
