package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	authDomain "github.com/allisson/tenantvault/internal/auth/domain"
)

// MockClientUseCase is a mock implementation of usecase.ClientUseCase.
type MockClientUseCase struct {
	mock.Mock
}

func (m *MockClientUseCase) Create(ctx context.Context, name string) (*authDomain.Client, string, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*authDomain.Client), args.String(1), args.Error(2)
}

func (m *MockClientUseCase) Authenticate(ctx context.Context, credential string) (*authDomain.Client, error) {
	args := m.Called(ctx, credential)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.Client), args.Error(1)
}
