package service

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vaultDomain "github.com/allisson/tenantvault/internal/vault/domain"
)

func TestAEADManagerService_CreateCipher(t *testing.T) {
	manager := NewAEADManager()
	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)

	t.Run("AES-GCM", func(t *testing.T) {
		cipher, err := manager.CreateCipher(key, vaultDomain.AESGCM)
		require.NoError(t, err)
		assert.IsType(t, &AESGCMCipher{}, cipher)
	})

	t.Run("ChaCha20-Poly1305", func(t *testing.T) {
		cipher, err := manager.CreateCipher(key, vaultDomain.ChaCha20)
		require.NoError(t, err)
		assert.IsType(t, &ChaCha20Poly1305Cipher{}, cipher)
	})

	t.Run("invalid key size", func(t *testing.T) {
		cipher, err := manager.CreateCipher(make([]byte, 16), vaultDomain.AESGCM)
		assert.ErrorIs(t, err, vaultDomain.ErrInvalidKeySize)
		assert.Nil(t, cipher)
	})

	t.Run("unsupported algorithm", func(t *testing.T) {
		cipher, err := manager.CreateCipher(key, vaultDomain.Algorithm("des"))
		assert.ErrorIs(t, err, vaultDomain.ErrUnsupportedAlgorithm)
		assert.Nil(t, cipher)
	})

	t.Run("ciphers from both algorithms interoperate with themselves", func(t *testing.T) {
		for _, alg := range []vaultDomain.Algorithm{vaultDomain.AESGCM, vaultDomain.ChaCha20} {
			cipher, err := manager.CreateCipher(key, alg)
			require.NoError(t, err)

			ciphertext, nonce, err := cipher.Encrypt([]byte("payload"), []byte("aad"))
			require.NoError(t, err)

			plaintext, err := cipher.Decrypt(ciphertext, nonce, []byte("aad"))
			require.NoError(t, err)
			assert.Equal(t, []byte("payload"), plaintext)
		}
	})
}
