package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKeyID(t *testing.T) {
	now := time.Unix(1735689600, 0)

	id1, err := NewKeyID(now)
	require.NoError(t, err)
	id2, err := NewKeyID(now)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(id1, "key_"))
	assert.True(t, strings.HasSuffix(id1, "_1735689600"))

	// The random token guarantees uniqueness even within the same second.
	assert.NotEqual(t, id1, id2)
}

func TestNewKeyMaterial(t *testing.T) {
	m1, err := NewKeyMaterial()
	require.NoError(t, err)
	m2, err := NewKeyMaterial()
	require.NoError(t, err)

	assert.Len(t, m1, KeyMaterialSize)
	assert.NotEqual(t, m1, m2)
}

func TestKey_Expired(t *testing.T) {
	now := time.Now().UTC()
	key := &Key{ExpiresAt: now.Add(time.Hour)}

	assert.False(t, key.Expired(now))
	assert.True(t, key.Expired(now.Add(time.Hour)))
	assert.True(t, key.Expired(now.Add(2*time.Hour)))
}

func TestKey_Usable(t *testing.T) {
	tests := []struct {
		status KeyStatus
		usable bool
	}{
		{KeyStatusActive, true},
		{KeyStatusExpired, true},
		{KeyStatusRevoked, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			key := &Key{Status: tt.status}
			assert.Equal(t, tt.usable, key.Usable())
		})
	}
}
