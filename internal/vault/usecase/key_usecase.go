package usecase

import (
	"context"
	"log/slog"

	"github.com/allisson/tenantvault/internal/metrics"
	vaultDomain "github.com/allisson/tenantvault/internal/vault/domain"
	vaultService "github.com/allisson/tenantvault/internal/vault/service"
)

// keyService implements the KeyService interface.
//
// Rotation and revocation are audited under the system tenant since they are
// not bound to a specific workspace. Key generation is not audited: it leaves
// its own store record and no tenant data is involved.
type keyService struct {
	keyManager vaultService.KeyManager
	auditRepo  AuditRecordRepository
	metrics    metrics.BusinessMetrics
	logger     *slog.Logger
}

// NewKeyService creates a new KeyService with audited lifecycle operations.
func NewKeyService(
	keyManager vaultService.KeyManager,
	auditRepo AuditRecordRepository,
	m metrics.BusinessMetrics,
	logger *slog.Logger,
) KeyService {
	return &keyService{
		keyManager: keyManager,
		auditRepo:  auditRepo,
		metrics:    m,
		logger:     logger,
	}
}

// GenerateKey creates and persists a new encryption key.
func (k *keyService) GenerateKey(ctx context.Context, explicitID string) (string, error) {
	return k.keyManager.GenerateKey(ctx, explicitID)
}

// RotateKeys expires keys past their expiry and audits the run.
func (k *keyService) RotateKeys(ctx context.Context) (int, error) {
	count, err := k.keyManager.RotateKeys(ctx)

	metadata := map[string]any{
		"rotated_count": count,
	}
	k.writeAudit(ctx, vaultDomain.NewAuditRecord(vaultDomain.SystemTenantID, vaultDomain.OperationRotated, err, metadata))

	if err != nil {
		return 0, err
	}
	return count, nil
}

// RevokeKey revokes a key and audits the outcome.
func (k *keyService) RevokeKey(ctx context.Context, keyID string) error {
	err := k.keyManager.RevokeKey(ctx, keyID)

	metadata := map[string]any{
		"key_id": keyID,
	}
	k.writeAudit(ctx, vaultDomain.NewAuditRecord(vaultDomain.SystemTenantID, vaultDomain.OperationRevoked, err, metadata))

	return err
}

func (k *keyService) writeAudit(ctx context.Context, record *vaultDomain.AuditRecord) {
	if err := k.auditRepo.Create(ctx, record); err != nil {
		k.logger.Error("failed to write audit record",
			slog.String("tenant_id", record.TenantID),
			slog.String("operation", string(record.Operation)),
			slog.Any("error", err),
		)
		k.metrics.RecordOperation(ctx, "vault", "audit_write", "error")
	}
}
