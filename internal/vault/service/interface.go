// Package service provides the cryptographic services for tenant secret
// management: AEAD ciphers, key lifecycle management with an in-process
// cache, and tenant-bound encryption of secret tokens.
package service

import (
	"context"
	"time"

	vaultDomain "github.com/allisson/tenantvault/internal/vault/domain"
)

// AEAD defines the interface for Authenticated Encryption with Associated Data.
type AEAD interface {
	// Encrypt encrypts plaintext with optional AAD and returns ciphertext and nonce.
	Encrypt(plaintext, aad []byte) (ciphertext, nonce []byte, err error)

	// Decrypt decrypts ciphertext using the provided nonce and AAD.
	Decrypt(ciphertext, nonce, aad []byte) ([]byte, error)
}

// AEADManager defines the interface for creating AEAD cipher instances.
type AEADManager interface {
	// CreateCipher creates an AEAD cipher instance for the specified algorithm.
	CreateCipher(key []byte, alg vaultDomain.Algorithm) (AEAD, error)
}

// MasterKeeper wraps and unwraps key material for storage at rest.
// Implemented by *secrets.Keeper from gocloud.dev.
type MasterKeeper interface {
	Encrypt(ctx context.Context, plaintext []byte) ([]byte, error)
	Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error)
}

// KeyRepository defines the key store contract consumed by the KeyManager.
//
// Implementations translate storage outcomes into the domain taxonomy:
// a missing record is ErrKeyNotFound, a duplicate id is ErrKeyAlreadyExists,
// and any driver or network failure is ErrStoreUnavailable. A timeout must
// never surface as not-found.
type KeyRepository interface {
	// Create persists a new key record. Key records are append-only; an
	// existing id is a conflict, never an overwrite.
	Create(ctx context.Context, key *vaultDomain.Key) error

	// Get retrieves a key record by id, including its status and expiry.
	Get(ctx context.Context, keyID string) (*vaultDomain.Key, error)

	// RotateExpired marks store-side keys whose expiry has passed as
	// expired and returns the number of keys affected.
	RotateExpired(ctx context.Context, now time.Time) (int, error)

	// Revoke marks a key as revoked, making it unavailable even for decryption.
	Revoke(ctx context.Context, keyID string) error
}

// KeyManager is the single source of truth for which key protects new data
// and for resolving any key id to usable material.
type KeyManager interface {
	// GenerateKey creates, persists, and caches a new key. Pass an empty
	// explicitID to derive one from a random token and timestamp. The key
	// does not exist if persistence fails.
	GenerateKey(ctx context.Context, explicitID string) (string, error)

	// GetKey resolves a key id to its plaintext material, cache first.
	// Side-effect-free on stored data.
	GetKey(ctx context.Context, keyID string) ([]byte, error)

	// ActiveKeyID returns a cached non-expired key id, generating a new key
	// if none exists. This is the only implicit key creation path.
	ActiveKeyID(ctx context.Context) (string, error)

	// RotateKeys expires store-side keys past their expiry and evicts them
	// from the cache. Existing ciphertexts are not re-encrypted.
	RotateKeys(ctx context.Context) (int, error)

	// RevokeKey revokes a key in the store and evicts it from the cache.
	RevokeKey(ctx context.Context, keyID string) error
}

// TokenCipher performs authenticated encryption and decryption of a tenant's
// secret token, binding the tenant identity into the authentication tag.
type TokenCipher interface {
	// Encrypt protects a secret under the active key with tenant-bound AAD.
	Encrypt(ctx context.Context, secret, tenantID string) (*vaultDomain.EncryptedSecret, error)

	// Decrypt recovers a secret, verifying the tenant binding.
	Decrypt(ctx context.Context, encrypted *vaultDomain.EncryptedSecret, tenantID string) (string, error)

	// ValidateFormat reports whether the secret matches the expected token shape.
	ValidateFormat(secret string) bool
}
