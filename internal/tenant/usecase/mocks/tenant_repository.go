// Package mocks contains hand-written test doubles for the tenant use cases.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	tenantDomain "github.com/allisson/tenantvault/internal/tenant/domain"
)

// MockTenantRepository is a mock implementation of usecase.TenantRepository.
type MockTenantRepository struct {
	mock.Mock
}

func (m *MockTenantRepository) Upsert(ctx context.Context, tenant *tenantDomain.Tenant) error {
	args := m.Called(ctx, tenant)
	return args.Error(0)
}

func (m *MockTenantRepository) GetByTeamID(ctx context.Context, teamID string) (*tenantDomain.Tenant, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tenantDomain.Tenant), args.Error(1)
}

func (m *MockTenantRepository) List(ctx context.Context, offset, limit int) ([]*tenantDomain.Tenant, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*tenantDomain.Tenant), args.Error(1)
}

func (m *MockTenantRepository) UpdateStatus(ctx context.Context, teamID string, status tenantDomain.TenantStatus) error {
	args := m.Called(ctx, teamID, status)
	return args.Error(0)
}
