package usecase

import (
	"context"
	"time"

	"github.com/allisson/tenantvault/internal/metrics"
	vaultDomain "github.com/allisson/tenantvault/internal/vault/domain"
)

// secretServiceWithMetrics decorates SecretService with metrics instrumentation.
type secretServiceWithMetrics struct {
	next    SecretService
	metrics metrics.BusinessMetrics
}

// NewSecretServiceWithMetrics wraps a SecretService with metrics recording.
func NewSecretServiceWithMetrics(service SecretService, m metrics.BusinessMetrics) SecretService {
	return &secretServiceWithMetrics{
		next:    service,
		metrics: m,
	}
}

// Protect records metrics for secret protection operations.
func (s *secretServiceWithMetrics) Protect(
	ctx context.Context,
	tenantID, secret string,
) (*vaultDomain.EncryptedSecret, error) {
	start := time.Now()
	encrypted, err := s.next.Protect(ctx, tenantID, secret)

	status := "success"
	if err != nil {
		status = "error"
	}

	s.metrics.RecordOperation(ctx, "vault", "secret_protect", status)
	s.metrics.RecordDuration(ctx, "vault", "secret_protect", time.Since(start), status)

	return encrypted, err
}

// Reveal records metrics for secret reveal operations.
func (s *secretServiceWithMetrics) Reveal(
	ctx context.Context,
	tenantID string,
	encrypted *vaultDomain.EncryptedSecret,
) (string, error) {
	start := time.Now()
	secret, err := s.next.Reveal(ctx, tenantID, encrypted)

	status := "success"
	if err != nil {
		status = "error"
	}

	s.metrics.RecordOperation(ctx, "vault", "secret_reveal", status)
	s.metrics.RecordDuration(ctx, "vault", "secret_reveal", time.Since(start), status)

	return secret, err
}

// keyServiceWithMetrics decorates KeyService with metrics instrumentation.
type keyServiceWithMetrics struct {
	next    KeyService
	metrics metrics.BusinessMetrics
}

// NewKeyServiceWithMetrics wraps a KeyService with metrics recording.
func NewKeyServiceWithMetrics(service KeyService, m metrics.BusinessMetrics) KeyService {
	return &keyServiceWithMetrics{
		next:    service,
		metrics: m,
	}
}

// GenerateKey records metrics for key generation operations.
func (k *keyServiceWithMetrics) GenerateKey(ctx context.Context, explicitID string) (string, error) {
	start := time.Now()
	keyID, err := k.next.GenerateKey(ctx, explicitID)

	status := "success"
	if err != nil {
		status = "error"
	}

	k.metrics.RecordOperation(ctx, "vault", "key_generate", status)
	k.metrics.RecordDuration(ctx, "vault", "key_generate", time.Since(start), status)

	return keyID, err
}

// RotateKeys records metrics for key rotation operations.
func (k *keyServiceWithMetrics) RotateKeys(ctx context.Context) (int, error) {
	start := time.Now()
	count, err := k.next.RotateKeys(ctx)

	status := "success"
	if err != nil {
		status = "error"
	}

	k.metrics.RecordOperation(ctx, "vault", "key_rotate", status)
	k.metrics.RecordDuration(ctx, "vault", "key_rotate", time.Since(start), status)

	return count, err
}

// RevokeKey records metrics for key revocation operations.
func (k *keyServiceWithMetrics) RevokeKey(ctx context.Context, keyID string) error {
	start := time.Now()
	err := k.next.RevokeKey(ctx, keyID)

	status := "success"
	if err != nil {
		status = "error"
	}

	k.metrics.RecordOperation(ctx, "vault", "key_revoke", status)
	k.metrics.RecordDuration(ctx, "vault", "key_revoke", time.Since(start), status)

	return err
}
