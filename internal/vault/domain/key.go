// Package domain defines the core models for tenant secret management.
//
// Tenant secrets (Slack bot tokens) are protected with AEAD encryption bound
// to the tenant identity via Additional Authenticated Data. Symmetric keys
// rotate on a schedule: at most one key is selected for new encryptions at a
// time, while older non-revoked keys remain valid for decryption.
package domain

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// Key represents a symmetric encryption key protecting tenant secrets.
//
// Material holds the plaintext 32-byte key and lives in memory only; the
// persisted form is WrappedMaterial, produced by the master keeper. Material
// must never appear in logs or error messages.
type Key struct {
	ID              string
	Material        []byte // Plaintext key material (in-memory only, never persisted)
	WrappedMaterial []byte // Material wrapped by the master keeper (persisted form)
	Algorithm       Algorithm
	Status          KeyStatus
	CreatedAt       time.Time
	ExpiresAt       time.Time
}

// Expired reports whether the key is past its expiry at the given instant.
func (k *Key) Expired(now time.Time) bool {
	return !k.ExpiresAt.After(now)
}

// Usable reports whether the key can decrypt data: active or expired, but
// never revoked.
func (k *Key) Usable() bool {
	return k.Status == KeyStatusActive || k.Status == KeyStatusExpired
}

// NewKeyID derives a unique key identifier from a random token and the
// current timestamp.
func NewKeyID(now time.Time) (string, error) {
	token := make([]byte, 16)
	if _, err := rand.Read(token); err != nil {
		return "", fmt.Errorf("failed to generate key id token: %w", err)
	}
	return fmt.Sprintf("key_%s_%d", hex.EncodeToString(token), now.Unix()), nil
}

// NewKeyMaterial generates 32 bytes of cryptographically secure random key
// material.
func NewKeyMaterial() ([]byte, error) {
	material := make([]byte, KeyMaterialSize)
	if _, err := rand.Read(material); err != nil {
		return nil, fmt.Errorf("failed to generate key material: %w", err)
	}
	return material, nil
}
