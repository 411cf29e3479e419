package mocks

import (
	"context"
	"time"

	"github.com/phrazzld/blog-api/internal/service/auth"
	"github.com/stretchr/testify/mock"
)

// TestifyMockRevocationStore is a mock of auth.RevocationStore for use with testify/mock
type TestifyMockRevocationStore struct {
	mock.Mock
}

var _ auth.RevocationStore = (*TestifyMockRevocationStore)(nil)

// Revoke is a mock implementation of auth.RevocationStore.Revoke
func (m *TestifyMockRevocationStore) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	args := m.Called(ctx, tokenID, expiresAt)
	return args.Error(0)
}

// IsRevoked is a mock implementation of auth.RevocationStore.IsRevoked
func (m *TestifyMockRevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}
