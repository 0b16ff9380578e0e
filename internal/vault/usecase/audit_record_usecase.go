package usecase

import (
	"context"

	vaultDomain "github.com/allisson/tenantvault/internal/vault/domain"
)

const (
	defaultAuditListLimit = 50
	maxAuditListLimit     = 100
)

// auditRecordUseCase implements the AuditRecordUseCase interface.
type auditRecordUseCase struct {
	auditRepo AuditRecordRepository
}

// NewAuditRecordUseCase creates a new AuditRecordUseCase.
func NewAuditRecordUseCase(auditRepo AuditRecordRepository) AuditRecordUseCase {
	return &auditRecordUseCase{auditRepo: auditRepo}
}

// List retrieves audit records newest first with pagination. Out-of-range
// pagination values are clamped rather than rejected.
func (a *auditRecordUseCase) List(
	ctx context.Context,
	tenantID string,
	offset, limit int,
) ([]*vaultDomain.AuditRecord, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultAuditListLimit
	}
	if limit > maxAuditListLimit {
		limit = maxAuditListLimit
	}

	return a.auditRepo.List(ctx, tenantID, offset, limit)
}
