package usecase

import (
	"context"
	"log/slog"

	"github.com/allisson/tenantvault/internal/metrics"
	vaultDomain "github.com/allisson/tenantvault/internal/vault/domain"
	vaultService "github.com/allisson/tenantvault/internal/vault/service"
)

// auditedSecretService implements the SecretService interface.
//
// The audit write happens synchronously after the cryptographic outcome is
// known and before the result is returned. A failed audit write is logged
// and counted but never overrides the primary result: a successful reveal
// with a failed audit write still returns the secret.
type auditedSecretService struct {
	cipher    vaultService.TokenCipher
	auditRepo AuditRecordRepository
	metrics   metrics.BusinessMetrics
	logger    *slog.Logger
}

// NewAuditedSecretService creates a new SecretService with mandatory auditing.
func NewAuditedSecretService(
	cipher vaultService.TokenCipher,
	auditRepo AuditRecordRepository,
	m metrics.BusinessMetrics,
	logger *slog.Logger,
) SecretService {
	return &auditedSecretService{
		cipher:    cipher,
		auditRepo: auditRepo,
		metrics:   m,
		logger:    logger,
	}
}

// Protect validates the secret format, encrypts it under the active key with
// tenant-bound AAD, and records the outcome. The format gate runs before any
// cryptographic work; a malformed secret is still audited.
func (s *auditedSecretService) Protect(
	ctx context.Context,
	tenantID, secret string,
) (*vaultDomain.EncryptedSecret, error) {
	metadata := map[string]any{
		"token_length": len(secret),
	}

	if !s.cipher.ValidateFormat(secret) {
		err := vaultDomain.ErrInvalidSecretFormat
		s.writeAudit(ctx, vaultDomain.NewAuditRecord(tenantID, vaultDomain.OperationStored, err, metadata))
		return nil, err
	}

	encrypted, err := s.cipher.Encrypt(ctx, secret, tenantID)
	if encrypted != nil {
		metadata["key_id"] = encrypted.KeyID
	}

	s.writeAudit(ctx, vaultDomain.NewAuditRecord(tenantID, vaultDomain.OperationStored, err, metadata))

	if err != nil {
		return nil, err
	}
	return encrypted, nil
}

// Reveal decrypts a stored secret, verifying the tenant binding, and records
// the outcome. The revealed plaintext never reaches the audit record.
func (s *auditedSecretService) Reveal(
	ctx context.Context,
	tenantID string,
	encrypted *vaultDomain.EncryptedSecret,
) (string, error) {
	secret, err := s.cipher.Decrypt(ctx, encrypted, tenantID)

	metadata := map[string]any{
		"key_id": encrypted.KeyID,
	}
	s.writeAudit(ctx, vaultDomain.NewAuditRecord(tenantID, vaultDomain.OperationRetrieved, err, metadata))

	if err != nil {
		return "", err
	}
	return secret, nil
}

// writeAudit persists an audit record. Failures are logged and counted but
// do not propagate to the caller.
func (s *auditedSecretService) writeAudit(ctx context.Context, record *vaultDomain.AuditRecord) {
	if err := s.auditRepo.Create(ctx, record); err != nil {
		s.logger.Error("failed to write audit record",
			slog.String("tenant_id", record.TenantID),
			slog.String("operation", string(record.Operation)),
			slog.Any("error", err),
		)
		s.metrics.RecordOperation(ctx, "vault", "audit_write", "error")
	}
}
