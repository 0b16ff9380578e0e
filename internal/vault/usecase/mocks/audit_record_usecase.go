package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	vaultDomain "github.com/allisson/tenantvault/internal/vault/domain"
)

// MockAuditRecordUseCase is a mock implementation of AuditRecordUseCase for testing.
type MockAuditRecordUseCase struct {
	mock.Mock
}

// List mocks the List method of AuditRecordUseCase.
func (m *MockAuditRecordUseCase) List(
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
