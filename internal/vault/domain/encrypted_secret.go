package domain

import (
	"encoding/base64"
	"fmt"
)

// EncryptedSecret represents a protected tenant secret.
//
// Blob holds the raw bytes `nonce || ciphertext+tag` (nonce is always the
// first 12 bytes); KeyID references the key that produced it. The storage
// representation is the base64 encoding of Blob, with KeyID kept alongside.
// An EncryptedSecret is immutable: re-encryption produces a new value.
type EncryptedSecret struct {
	KeyID string
	Blob  []byte
}

// Nonce returns the 12-byte nonce prepended to the blob.
func (e *EncryptedSecret) Nonce() []byte {
	return e.Blob[:NonceSize]
}

// Ciphertext returns the ciphertext and authentication tag following the nonce.
func (e *EncryptedSecret) Ciphertext() []byte {
	return e.Blob[NonceSize:]
}

// String serializes the blob to its base64 storage representation.
// Round-trips exactly with ParseEncryptedSecret.
func (e *EncryptedSecret) String() string {
	return base64.StdEncoding.EncodeToString(e.Blob)
}

// ParseEncryptedSecret decodes a base64 storage blob and its key id into an
// EncryptedSecret. The blob must contain at least a nonce and an
// authentication tag; shorter inputs fail with ErrInvalidBlobFormat before
// any cryptographic work is attempted.
func ParseEncryptedSecret(encoded, keyID string) (*EncryptedSecret, error) {
	blob, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBlobFormat, err)
	}

	// 12-byte nonce plus a 16-byte GCM/Poly1305 tag is the minimum possible blob
	if len(blob) < NonceSize+16 {
		return nil, fmt.Errorf("%w: blob too short (%d bytes)", ErrInvalidBlobFormat, len(blob))
	}

	if keyID == "" {
		return nil, fmt.Errorf("%w: missing key id", ErrInvalidBlobFormat)
	}

	return &EncryptedSecret{KeyID: keyID, Blob: blob}, nil
}

// TenantAAD builds the Additional Authenticated Data binding a ciphertext to
// a tenant. A ciphertext copied to a different tenant record fails
// authentication instead of silently decrypting.
func TenantAAD(tenantID string) []byte {
	return []byte("tenant:" + tenantID)
}
