package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockMasterKeeper is a mock implementation of MasterKeeper for testing.
type MockMasterKeeper struct {
	mock.Mock
}

// Encrypt mocks the Encrypt method of MasterKeeper.
func (m *MockMasterKeeper) Encrypt(ctx context.Context, plaintext []byte) ([]byte, error) {
	args := m.Called(ctx, plaintext)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// Decrypt mocks the Decrypt method of MasterKeeper.
func (m *MockMasterKeeper) Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error) {
	args := m.Called(ctx, ciphertext)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
