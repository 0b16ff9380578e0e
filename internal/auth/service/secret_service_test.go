package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecretService(t *testing.T) {
	svc := NewSecretService()

	t.Run("generated secret verifies against its hash", func(t *testing.T) {
		plain, hashed, err := svc.GenerateSecret()
		require.NoError(t, err)
		assert.NotEmpty(t, plain)
		assert.NotEmpty(t, hashed)
		assert.NotEqual(t, plain, hashed)

		assert.True(t, svc.CompareSecret(plain, hashed))
	})

	t.Run("wrong secret does not verify", func(t *testing.T) {
		_, hashed, err := svc.GenerateSecret()
		require.NoError(t, err)

		assert.False(t, svc.CompareSecret("wrong-secret", hashed))
	})

	t.Run("malformed hash does not verify", func(t *testing.T) {
		assert.False(t, svc.CompareSecret("anything", "not-a-hash"))
	})

	t.Run("secrets are unique", func(t *testing.T) {
		first, _, err := svc.GenerateSecret()
		require.NoError(t, err)
		second, _, err := svc.GenerateSecret()
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})
}
