package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockKeyService is a mock implementation of KeyService for testing.
type MockKeyService struct {
	mock.Mock
}

// GenerateKey mocks the GenerateKey method of KeyService.
func (m *MockKeyService) GenerateKey(ctx context.Context, explicitID string) (string, error) {
	args := m.Called(ctx, explicitID)
	return args.String(0), args.Error(1)
}

// RotateKeys mocks the RotateKeys method of KeyService.
func (m *MockKeyService) RotateKeys(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// RevokeKey mocks the RevokeKey method of KeyService.
func (m *MockKeyService) RevokeKey(ctx context.Context, keyID string) error {
	args := m.Called(ctx, keyID)
	return args.Error(0)
}
