package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/ridehail/pkg/jwt"
	"github.com/dmitrymomot/ridehail/pkg/logger"
	"github.com/dmitrymomot/ridehail/pkg/password"
	"github.com/dmitrymomot/ridehail/pkg/sanitizer"
)

const hookTimeout = 10 * time.Second

// Service registers, logs in and authenticates principals of a single role.
type Service struct {
	role        Role
	creds       CredentialStore
	revocations RevocationStore
	tokens      TokenIssuer
	logger      *slog.Logger
	bcryptCost  int
	now         func() time.Time

	afterRegister func(ctx context.Context, p *Principal) error
}

type Option func(*Service)

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithBcryptCost overrides password.DefaultCost.
func WithBcryptCost(cost int) Option {
	return func(s *Service) {
		s.bcryptCost = cost
	}
}

// WithAfterRegister sets a hook run after a successful registration. It
// runs in its own goroutine with a 10 second timeout; failures are logged.
func WithAfterRegister(fn func(context.Context, *Principal) error) Option {
	return func(s *Service) {
		s.afterRegister = fn
	}
}

// WithClock replaces time.Now for timestamps set by the service.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService creates a Service for role. It returns ErrInvalidRole for an
// unknown role.
func NewService(role Role, creds CredentialStore, revocations RevocationStore, tokens TokenIssuer, opts ...Option) (*Service, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}
	s := &Service{
		role:        role,
		creds:       creds,
		revocations: revocations,
		tokens:      tokens,
		logger:      logger.Discard(),
		bcryptCost:  password.DefaultCost,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(logger.Component("auth"), logger.Role(role.String()))
	return s, nil
}

func (s *Service) Role() Role { return s.role }

// RegisterParams is the input to Register. Vehicle is required for drivers
// and ignored for riders.
type RegisterParams struct {
	Email    string
	Password string
	FullName FullName
	Vehicle  *Vehicle
}

// Register creates a principal and issues its first token.
func (s *Service) Register(ctx context.Context, params RegisterParams) (*Principal, string, error) {
	p := &Principal{
		Role:      s.role,
		Email:     sanitizer.NormalizeEmail(params.Email),
		FullName:  params.FullName,
		CreatedAt: s.now().UTC(),
	}
	if s.role == RoleDriver {
		if params.Vehicle == nil {
			return nil, "", ErrVehicleRequired
		}
		v := *params.Vehicle
		p.Vehicle = &v
		p.Status = StatusInactive
	}

	hash, err := password.HashWithCost(params.Password, s.bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.creds.Create(ctx, p, hash); err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			return nil, "", ErrEmailAlreadyExists
		}
		return nil, "", fmt.Errorf("failed to create principal: %w", err)
	}

	token, _, err := s.tokens.Issue(p.ID, s.role.String())
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.InfoContext(ctx, "principal registered", logger.PrincipalID(p.ID))

	if s.afterRegister != nil {
		registered := *p
		go s.runAfterRegister(&registered)
	}

	return p, token, nil
}

func (s *Service) runAfterRegister(p *Principal) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("afterRegister hook panicked",
				logger.PrincipalID(p.ID),
				slog.Any("panic", r),
			)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), hookTimeout)
	defer cancel()

	if err := s.afterRegister(ctx, p); err != nil {
		s.logger.Error("afterRegister hook failed",
			logger.PrincipalID(p.ID),
			logger.Error(err),
		)
	}
}

// Login checks email and password and issues a token. An unknown email and
// a wrong password both return ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, plain string) (*Principal, string, time.Time, error) {
	p, hash, err := s.creds.GetCredentialsByEmail(ctx, sanitizer.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, ErrPrincipalNotFound) {
			return nil, "", time.Time{}, ErrInvalidCredentials
		}
		return nil, "", time.Time{}, fmt.Errorf("failed to load credentials: %w", err)
	}
	if !password.Verify(plain, hash) {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	token, claims, err := s.tokens.Issue(p.ID, s.role.String())
	if err != nil {
		return nil, "", time.Time{}, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.DebugContext(ctx, "principal logged in", logger.PrincipalID(p.ID))
	return p, token, claims.ExpiresAt.Time, nil
}

// Authenticate resolves a token to a principal. Revoked tokens return
// ErrTokenRevoked; any other rejection wraps ErrUnauthorized. Store
// failures are returned as is.
func (s *Service) Authenticate(ctx context.Context, token string) (*Principal, error) {
	revoked, err := s.revocations.IsRevoked(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to check revocation: %w", err)
	}
	if revoked {
		return nil, ErrTokenRevoked
	}

	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, errors.Join(ErrUnauthorized, err)
	}
	if claims.Role != s.role.String() {
		return nil, fmt.Errorf("%w: token role %q", ErrUnauthorized, claims.Role)
	}

	p, err := s.creds.GetByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, ErrPrincipalNotFound) {
			return nil, errors.Join(ErrUnauthorized, err)
		}
		return nil, fmt.Errorf("failed to load principal: %w", err)
	}
	return p, nil
}

// Logout revokes token until its expiry. Tokens that do not verify are
// ignored since they are already unusable.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	claims, err := s.tokens.Verify(token)
	if err != nil {
		if errors.Is(err, jwt.ErrInvalidToken) {
			return nil
		}
		return fmt.Errorf("failed to verify token: %w", err)
	}

	expiresAt := s.now().Add(time.Minute)
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	if err := s.revocations.Revoke(ctx, token, expiresAt); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	s.logger.DebugContext(ctx, "token revoked", logger.PrincipalID(claims.Subject))
	return nil
}
