package domain

// Algorithm represents the AEAD algorithm protecting a tenant secret.
//
// Both supported algorithms provide Authenticated Encryption with Associated
// Data with 256-bit keys, 12-byte nonces, and 16-byte authentication tags.
// New keys default to AESGCM; ChaCha20 is available for platforms without
// AES hardware acceleration.
type Algorithm string

const (
	// AESGCM represents the AES-256-GCM authenticated encryption algorithm.
	AESGCM Algorithm = "aes-gcm"

	// ChaCha20 represents the ChaCha20-Poly1305 authenticated encryption algorithm.
	ChaCha20 Algorithm = "chacha20-poly1305"
)

// KeyStatus represents the lifecycle state of an encryption key.
//
// A key moves from active to expired on schedule, and to revoked explicitly
// (e.g., suspected compromise). Expired keys can still decrypt old
// ciphertexts; revoked keys cannot be used at all.
type KeyStatus string

const (
	// KeyStatusActive marks a key eligible for new encryptions and decryption.
	KeyStatusActive KeyStatus = "active"

	// KeyStatusExpired marks a key past its expiry; decryption still works.
	KeyStatusExpired KeyStatus = "expired"

	// KeyStatusRevoked marks a key unavailable even for decryption.
	KeyStatusRevoked KeyStatus = "revoked"
)

// Operation identifies the kind of cryptographic operation in an audit record.
type Operation string

const (
	// OperationStored records a protect (encrypt) attempt.
	OperationStored Operation = "stored"

	// OperationRetrieved records a reveal (decrypt) attempt.
	OperationRetrieved Operation = "retrieved"

	// OperationDecrypted records a decrypt performed outside the reveal path
	// (e.g., re-encryption during migration).
	OperationDecrypted Operation = "decrypted"

	// OperationRotated records a key rotation run.
	OperationRotated Operation = "rotated"

	// OperationRevoked records an explicit key revocation.
	OperationRevoked Operation = "revoked"
)

const (
	// KeyMaterialSize is the required size of key material in bytes (AES-256).
	KeyMaterialSize = 32

	// NonceSize is the AEAD nonce size in bytes for both supported algorithms.
	NonceSize = 12

	// SecretPrefix is the required prefix of a Slack bot token.
	SecretPrefix = "xoxb-"

	// MinSecretLength is the minimum length of a valid Slack bot token.
	MinSecretLength = 50

	// SystemTenantID identifies audit records produced by key lifecycle
	// operations that are not bound to a specific workspace.
	SystemTenantID = "system"
)
