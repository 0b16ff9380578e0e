package service

import (
	"crypto/rand"
	"encoding/base64"

	"github.com/allisson/go-pwdhash"

	apperrors "github.com/allisson/tenantvault/internal/errors"
)

// secretService implements SecretService using argon2id.
type secretService struct {
	hasher *pwdhash.PasswordHasher
}

// GenerateSecret creates a 32-byte random secret, base64url-encoded, and
// its argon2id hash.
func (s *secretService) GenerateSecret() (string, string, error) {
	randomBytes := make([]byte, 32)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", "", apperrors.Wrap(err, "failed to generate random secret")
	}

	plainSecret := base64.URLEncoding.EncodeToString(randomBytes)

	hashedSecret, err := s.hasher.Hash([]byte(plainSecret))
	if err != nil {
		return "", "", apperrors.Wrap(err, "failed to hash secret")
	}

	return plainSecret, hashedSecret, nil
}

// CompareSecret verifies a plaintext secret against its hash in constant time.
func (s *secretService) CompareSecret(plainSecret, hashedSecret string) bool {
	ok, err := s.hasher.Verify([]byte(plainSecret), hashedSecret)
	if err != nil {
		return false
	}
	return ok
}

// NewSecretService creates a SecretService with the moderate argon2id policy.
func NewSecretService() SecretService {
	hasher, err := pwdhash.New(
		pwdhash.WithPolicy(pwdhash.PolicyModerate),
	)
	if err != nil {
		// only reachable with an invalid policy
		panic(err)
	}

	return &secretService{
		hasher: hasher,
	}
}
