// Package service provides secret generation and hashing for API client
// credentials, backed by argon2id.
package service

// SecretService defines client secret generation and verification.
type SecretService interface {
	// GenerateSecret creates a random secret and returns both the plaintext
	// and its argon2id hash. The plaintext is shown to the caller once and
	// never stored.
	GenerateSecret() (plainSecret string, hashedSecret string, err error)

	// CompareSecret verifies a plaintext secret against a stored hash in
	// constant time.
	CompareSecret(plainSecret, hashedSecret string) bool
}
