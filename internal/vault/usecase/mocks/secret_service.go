package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	vaultDomain "github.com/allisson/tenantvault/internal/vault/domain"
)

// MockSecretService is a mock implementation of SecretService for testing.
type MockSecretService struct {
	mock.Mock
}

// Protect mocks the Protect method of SecretService.
func (m *MockSecretService) Protect(ctx context.Context, tenantID, secret string) (*vaultDomain.EncryptedSecret, error) {
	args := m.Called(ctx, tenantID, secret)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vaultDomain.EncryptedSecret), args.Error(1)
}

// Reveal mocks the Reveal method of SecretService.
func (m *MockSecretService) Reveal(ctx context.Context, tenantID string, encrypted *vaultDomain.EncryptedSecret) (string, error) {
	args := m.Called(ctx, tenantID, encrypted)
	return args.String(0), args.Error(1)
}
