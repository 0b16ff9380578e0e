// Package mocks provides mock implementations for testing vault use cases.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	vaultDomain "github.com/allisson/tenantvault/internal/vault/domain"
)

// MockTokenCipher is a mock implementation of TokenCipher for testing.
type MockTokenCipher struct {
	mock.Mock
}

// Encrypt mocks the Encrypt method of TokenCipher.
func (m *MockTokenCipher) Encrypt(ctx context.Context, secret, tenantID string) (*vaultDomain.EncryptedSecret, error) {
	args := m.Called(ctx, secret, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vaultDomain.EncryptedSecret), args.Error(1)
}

// Decrypt mocks the Decrypt method of TokenCipher.
func (m *MockTokenCipher) Decrypt(ctx context.Context, encrypted *vaultDomain.EncryptedSecret, tenantID string) (string, error) {
	args := m.Called(ctx, encrypted, tenantID)
	return args.String(0), args.Error(1)
}

// ValidateFormat mocks the ValidateFormat method of TokenCipher.
func (m *MockTokenCipher) ValidateFormat(secret string) bool {
	args := m.Called(secret)
	return args.Bool(0)
}
