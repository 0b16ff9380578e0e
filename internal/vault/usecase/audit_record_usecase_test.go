package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vaultDomain "github.com/allisson/tenantvault/internal/vault/domain"
	"github.com/allisson/tenantvault/internal/vault/usecase/mocks"
)

func TestAuditRecordUseCase_List(t *testing.T) {
	ctx := context.Background()

	t.Run("lists records for a tenant", func(t *testing.T) {
		auditRepo := &mocks.MockAuditRecordRepository{}
		uc := NewAuditRecordUseCase(auditRepo)

		records := []*vaultDomain.AuditRecord{
			vaultDomain.NewAuditRecord("T0001", vaultDomain.OperationStored, nil, nil),
		}
		auditRepo.On("List", ctx, "T0001", 0, 50).Return(records, nil)

		got, err := uc.List(ctx, "T0001", 0, 50)
		require.NoError(t, err)
		assert.Equal(t, records, got)
	})

	t.Run("clamps pagination values", func(t *testing.T) {
		auditRepo := &mocks.MockAuditRecordRepository{}
		uc := NewAuditRecordUseCase(auditRepo)

		auditRepo.On("List", ctx, "", 0, maxAuditListLimit).Return([]*vaultDomain.AuditRecord{}, nil)

		_, err := uc.List(ctx, "", -5, 5000)
		require.NoError(t, err)
		auditRepo.AssertExpectations(t)
	})

	t.Run("applies the default limit", func(t *testing.T) {
		auditRepo := &mocks.MockAuditRecordRepository{}
		uc := NewAuditRecordUseCase(auditRepo)

		auditRepo.On("List", ctx, "T0001", 10, defaultAuditListLimit).Return([]*vaultDomain.AuditRecord{}, nil)

		_, err := uc.List(ctx, "T0001", 10, 0)
		require.NoError(t, err)
		auditRepo.AssertExpectations(t)
	})

	t.Run("propagates store failure", func(t *testing.T) {
		auditRepo := &mocks.MockAuditRecordRepository{}
		uc := NewAuditRecordUseCase(auditRepo)

		auditRepo.On("List", ctx, "T0001", 0, 50).Return(nil, vaultDomain.ErrStoreUnavailable)

		_, err := uc.List(ctx, "T0001", 0, 50)
		assert.ErrorIs(t, err, vaultDomain.ErrStoreUnavailable)
	})
}
