package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	tenantDomain "github.com/allisson/tenantvault/internal/tenant/domain"
)

// MockTenantUseCase is a mock implementation of usecase.TenantUseCase.
type MockTenantUseCase struct {
	mock.Mock
}

func (m *MockTenantUseCase) Install(ctx context.Context, input tenantDomain.InstallTenantInput) (*tenantDomain.Tenant, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tenantDomain.Tenant), args.Error(1)
}

func (m *MockTenantUseCase) BotToken(ctx context.Context, teamID string) (string, error) {
	args := m.Called(ctx, teamID)
	return args.String(0), args.Error(1)
}

func (m *MockTenantUseCase) Get(ctx context.Context, teamID string) (*tenantDomain.Tenant, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tenantDomain.Tenant), args.Error(1)
}

func (m *MockTenantUseCase) List(ctx context.Context, offset, limit int) ([]*tenantDomain.Tenant, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*tenantDomain.Tenant), args.Error(1)
}

func (m *MockTenantUseCase) Suspend(ctx context.Context, teamID string) error {
	args := m.Called(ctx, teamID)
	return args.Error(0)
}
