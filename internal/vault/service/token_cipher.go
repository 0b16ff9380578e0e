package service

import (
	"context"
	"strings"

	apperrors "github.com/allisson/tenantvault/internal/errors"
	vaultDomain "github.com/allisson/tenantvault/internal/vault/domain"
)

// TokenCipherService implements the TokenCipher interface.
//
// Every ciphertext is bound to the owning tenant through the AAD, so a blob
// copied between tenant records fails authentication. Decryption failures
// collapse into a single ErrAuthenticationFailed: callers cannot distinguish
// a wrong key, a tampered blob, or a tenant mismatch.
type TokenCipherService struct {
	keys      KeyManager
	aeads     AEADManager
	algorithm vaultDomain.Algorithm
}

// NewTokenCipherService creates a new TokenCipherService.
func NewTokenCipherService(keys KeyManager, aeads AEADManager, algorithm vaultDomain.Algorithm) *TokenCipherService {
	return &TokenCipherService{
		keys:      keys,
		aeads:     aeads,
		algorithm: algorithm,
	}
}

// Encrypt protects a secret under the current active key, binding it to the
// tenant. The returned blob is the nonce followed by the ciphertext and tag.
func (s *TokenCipherService) Encrypt(ctx context.Context, secret, tenantID string) (*vaultDomain.EncryptedSecret, error) {
	keyID, err := s.keys.ActiveKeyID(ctx)
	if err != nil {
		return nil, err
	}

	material, err := s.keys.GetKey(ctx, keyID)
	if err != nil {
		return nil, mapKeyError(err)
	}

	cipher, err := s.aeads.CreateCipher(material, s.algorithm)
	if err != nil {
		return nil, err
	}

	ciphertext, nonce, err := cipher.Encrypt([]byte(secret), vaultDomain.TenantAAD(tenantID))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to encrypt secret")
	}

	blob := make([]byte, 0, len(nonce)+len(ciphertext))
	blob = append(blob, nonce...)
	blob = append(blob, ciphertext...)

	return &vaultDomain.EncryptedSecret{KeyID: keyID, Blob: blob}, nil
}

// Decrypt recovers a secret, verifying the tenant binding. Key resolution
// failures keep their taxonomy (ErrKeyUnavailable, ErrStoreUnavailable);
// any cryptographic failure is reported as ErrAuthenticationFailed with no
// further detail.
func (s *TokenCipherService) Decrypt(ctx context.Context, encrypted *vaultDomain.EncryptedSecret, tenantID string) (string, error) {
	material, err := s.keys.GetKey(ctx, encrypted.KeyID)
	if err != nil {
		return "", mapKeyError(err)
	}

	cipher, err := s.aeads.CreateCipher(material, s.algorithm)
	if err != nil {
		return "", err
	}

	plaintext, err := cipher.Decrypt(encrypted.Ciphertext(), encrypted.Nonce(), vaultDomain.TenantAAD(tenantID))
	if err != nil {
		return "", vaultDomain.ErrAuthenticationFailed
	}

	return string(plaintext), nil
}

// ValidateFormat reports whether the secret looks like a Slack bot token:
// the "xoxb-" prefix and a minimum length.
func (s *TokenCipherService) ValidateFormat(secret string) bool {
	return strings.HasPrefix(secret, vaultDomain.SecretPrefix) && len(secret) >= vaultDomain.MinSecretLength
}

// mapKeyError collapses a missing key record into the caller-facing
// unavailability error. Store failures pass through unchanged.
func mapKeyError(err error) error {
	if apperrors.Is(err, vaultDomain.ErrKeyNotFound) {
		return vaultDomain.ErrKeyUnavailable
	}
	return err
}
