// Package mocks provides mock implementations for testing vault services.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	vaultDomain "github.com/allisson/tenantvault/internal/vault/domain"
)

// MockKeyRepository is a mock implementation of KeyRepository for testing.
type MockKeyRepository struct {
	mock.Mock
}

// Create mocks the Create method of KeyRepository.
func (m *MockKeyRepository) Create(ctx context.Context, key *vaultDomain.Key) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// Get mocks the Get method of KeyRepository.
func (m *MockKeyRepository) Get(ctx context.Context, keyID string) (*vaultDomain.Key, error) {
	args := m.Called(ctx, keyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vaultDomain.Key), args.Error(1)
}

// RotateExpired mocks the RotateExpired method of KeyRepository.
func (m *MockKeyRepository) RotateExpired(ctx context.Context, now time.Time) (int, error) {
	args := m.Called(ctx, now)
	return args.Int(0), args.Error(1)
}

// Revoke mocks the Revoke method of KeyRepository.
func (m *MockKeyRepository) Revoke(ctx context.Context, keyID string) error {
	args := m.Called(ctx, keyID)
	return args.Error(0)
}
