package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	vaultDomain "github.com/allisson/tenantvault/internal/vault/domain"
)

// MockAuditRecordRepository is a mock implementation of AuditRecordRepository for testing.
type MockAuditRecordRepository struct {
	mock.Mock
}

// Create mocks the Create method of AuditRecordRepository.
func (m *MockAuditRecordRepository) Create(ctx context.Context, record *vaultDomain.AuditRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

// List mocks the List method of AuditRecordRepository.
func (m *MockAuditRecordRepository) List(
	ctx context.Context,
	tenantID string,
	offset, limit int,
) ([]*vaultDomain.AuditRecord, error) {
	args := m.Called(ctx, tenantID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*vaultDomain.AuditRecord), args.Error(1)
}
