package domain

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/tenantvault/internal/errors"
)

func TestEncryptedSecret_RoundTrip(t *testing.T) {
	blob := make([]byte, NonceSize+32)
	for i := range blob {
		blob[i] = byte(i)
	}

	original := &EncryptedSecret{KeyID: "key_abc_123", Blob: blob}
	encoded := original.String()

	parsed, err := ParseEncryptedSecret(encoded, "key_abc_123")
	require.NoError(t, err)
	assert.Equal(t, original.KeyID, parsed.KeyID)
	assert.Equal(t, original.Blob, parsed.Blob)
	assert.Equal(t, blob[:NonceSize], parsed.Nonce())
	assert.Equal(t, blob[NonceSize:], parsed.Ciphertext())
}

func TestParseEncryptedSecret(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
		keyID   string
		wantErr error
	}{
		{
			name:    "valid blob",
			encoded: base64.StdEncoding.EncodeToString(make([]byte, NonceSize+16)),
			keyID:   "key-1",
			wantErr: nil,
		},
		{
			name:    "invalid base64",
			encoded: "not-base64!!!",
			keyID:   "key-1",
			wantErr: ErrInvalidBlobFormat,
		},
		{
			name:    "blob too short",
			encoded: base64.StdEncoding.EncodeToString(make([]byte, NonceSize)),
			keyID:   "key-1",
			wantErr: ErrInvalidBlobFormat,
		},
		{
			name:    "missing key id",
			encoded: base64.StdEncoding.EncodeToString(make([]byte, NonceSize+16)),
			keyID:   "",
			wantErr: ErrInvalidBlobFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			secret, err := ParseEncryptedSecret(tt.encoded, tt.keyID)
			if tt.wantErr != nil {
				assert.Nil(t, secret)
				assert.True(t, apperrors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.keyID, secret.KeyID)
		})
	}
}

func TestTenantAAD(t *testing.T) {
	assert.Equal(t, []byte("tenant:team-A"), TenantAAD("team-A"))

	// Distinct tenants must produce distinct AAD values.
	assert.NotEqual(t, TenantAAD("team-A"), TenantAAD("team-B"))
}
