package domain

import (
	"github.com/allisson/tenantvault/internal/errors"
)

// Secret management error taxonomy.
//
// This is a closed set of tagged errors; audit classification and HTTP
// mapping branch on these sentinels with errors.Is, never on message text.
var (
	// ErrInvalidSecretFormat indicates the secret failed pre-encryption
	// validation. Recoverable by the caller by fixing the input.
	ErrInvalidSecretFormat = errors.Wrap(errors.ErrInvalidInput, "invalid secret format")

	// ErrKeyUnavailable indicates key material could not be resolved.
	//
	// The key may be missing, revoked, or the key store unreachable; the
	// distinction is deliberately not exposed to callers to avoid acting as
	// a key-state oracle. The detail lives only in audit record metadata.
	ErrKeyUnavailable = errors.Wrap(errors.ErrNotFound, "encryption key unavailable")

	// ErrAuthenticationFailed indicates the ciphertext failed its
	// integrity/authenticity check. Wrong key, tampered data, and wrong
	// tenant binding are indistinguishable on purpose.
	ErrAuthenticationFailed = errors.Wrap(errors.ErrInvalidInput, "authentication failed")

	// ErrStoreUnavailable indicates a transient I/O failure talking to the
	// key store or audit sink. Safe to retry with backoff for reads; never
	// retried internally.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrKeyNotFound indicates the key store has no record for a key id.
	// Internal to the key management layer; it is collapsed into
	// ErrKeyUnavailable before reaching callers of the cipher.
	ErrKeyNotFound = errors.Wrap(errors.ErrNotFound, "encryption key not found")

	// ErrKeyAlreadyExists indicates a key with the same id already exists.
	// Key records are append-only; a duplicate id is a conflict, not an
	// overwrite.
	ErrKeyAlreadyExists = errors.Wrap(errors.ErrConflict, "encryption key already exists")

	// ErrUnsupportedAlgorithm indicates the requested AEAD algorithm is not supported.
	ErrUnsupportedAlgorithm = errors.Wrap(errors.ErrInvalidInput, "unsupported algorithm")

	// ErrInvalidKeySize indicates key material is not exactly 32 bytes.
	ErrInvalidKeySize = errors.Wrap(errors.ErrInvalidInput, "invalid key size")

	// ErrInvalidBlobFormat indicates an encrypted secret blob could not be parsed.
	ErrInvalidBlobFormat = errors.Wrap(errors.ErrInvalidInput, "invalid encrypted secret format")
)
