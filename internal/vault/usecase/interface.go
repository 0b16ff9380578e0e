// Package usecase defines the interfaces and implementations for tenant
// secret management business logic. Use cases orchestrate the token cipher,
// key manager, and audit sink so that every cryptographic operation leaves
// exactly one audit record.
package usecase

import (
	"context"

	vaultDomain "github.com/allisson/tenantvault/internal/vault/domain"
)

// AuditRecordRepository defines the audit sink contract.
type AuditRecordRepository interface {
	Create(ctx context.Context, record *vaultDomain.AuditRecord) error
	List(ctx context.Context, tenantID string, offset, limit int) ([]*vaultDomain.AuditRecord, error)
}

// SecretService defines the audited secret protection facade. This is the
// only path application code uses to protect or reveal tenant secrets;
// every call produces exactly one audit record, success or failure.
type SecretService interface {
	// Protect validates, encrypts, and audits a tenant secret. The returned
	// value carries the key id and the nonce-prefixed blob for storage.
	Protect(ctx context.Context, tenantID, secret string) (*vaultDomain.EncryptedSecret, error)

	// Reveal decrypts and audits a stored tenant secret.
	Reveal(ctx context.Context, tenantID string, encrypted *vaultDomain.EncryptedSecret) (string, error)
}

// KeyService defines key lifecycle operations for the CLI and admin API.
// Rotation and revocation outcomes are audited under the system tenant.
type KeyService interface {
	// GenerateKey creates a new encryption key. Pass an empty explicitID to
	// derive one automatically.
	GenerateKey(ctx context.Context, explicitID string) (string, error)
	RotateKeys(ctx context.Context) (int, error)
	RevokeKey(ctx context.Context, keyID string) error
}

// AuditRecordUseCase exposes audit record queries for the admin API.
type AuditRecordUseCase interface {
	List(ctx context.Context, tenantID string, offset, limit int) ([]*vaultDomain.AuditRecord, error)
}
