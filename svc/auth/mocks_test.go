package auth_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/dmitrymomot/ridehail/svc/auth"
)

type mockCredentialStore struct {
	mock.Mock
}

func (m *mockCredentialStore) Create(ctx context.Context, p *auth.Principal, hash string) error {
	args := m.Called(ctx, p, hash)
	return args.Error(0)
}

func (m *mockCredentialStore) GetByID(ctx context.Context, id string) (*auth.Principal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Principal), args.Error(1)
}

func (m *mockCredentialStore) GetCredentialsByEmail(ctx context.Context, email string) (*auth.Principal, string, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*auth.Principal), args.String(1), args.Error(2)
}

type mockRevocationStore struct {
	mock.Mock
}

func (m *mockRevocationStore) Revoke(ctx context.Context, token string, expiresAt time.Time) error {
	args := m.Called(ctx, token, expiresAt)
	return args.Error(0)
}

func (m *mockRevocationStore) IsRevoked(ctx context.Context, token string) (bool, error) {
	args := m.Called(ctx, token)
	return args.Bool(0), args.Error(1)
}
