package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockKeyManager is a mock implementation of KeyManager for testing.
type MockKeyManager struct {
	mock.Mock
}

// GenerateKey mocks the GenerateKey method of KeyManager.
func (m *MockKeyManager) GenerateKey(ctx context.Context, explicitID string) (string, error) {
	args := m.Called(ctx, explicitID)
	return args.String(0), args.Error(1)
}

// GetKey mocks the GetKey method of KeyManager.
func (m *MockKeyManager) GetKey(ctx context.Context, keyID string) ([]byte, error) {
	args := m.Called(ctx, keyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// ActiveKeyID mocks the ActiveKeyID method of KeyManager.
func (m *MockKeyManager) ActiveKeyID(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// RotateKeys mocks the RotateKeys method of KeyManager.
func (m *MockKeyManager) RotateKeys(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// RevokeKey mocks the RevokeKey method of KeyManager.
func (m *MockKeyManager) RevokeKey(ctx context.Context, keyID string) error {
	args := m.Called(ctx, keyID)
	return args.Error(0)
}
