package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/tenantvault/internal/errors"
)

func TestErrors_Wrapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
	}{
		{"ErrInvalidSecretFormat", ErrInvalidSecretFormat, apperrors.ErrInvalidInput},
		{"ErrKeyUnavailable", ErrKeyUnavailable, apperrors.ErrNotFound},
		{"ErrAuthenticationFailed", ErrAuthenticationFailed, apperrors.ErrInvalidInput},
		{"ErrKeyNotFound", ErrKeyNotFound, apperrors.ErrNotFound},
		{"ErrKeyAlreadyExists", ErrKeyAlreadyExists, apperrors.ErrConflict},
		{"ErrUnsupportedAlgorithm", ErrUnsupportedAlgorithm, apperrors.ErrInvalidInput},
		{"ErrInvalidKeySize", ErrInvalidKeySize, apperrors.ErrInvalidInput},
		{"ErrInvalidBlobFormat", ErrInvalidBlobFormat, apperrors.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, apperrors.Is(tt.err, tt.target))
		})
	}
}

func TestErrors_Distinct(t *testing.T) {
	// The taxonomy is a closed set; its members must not match each other.
	assert.False(t, apperrors.Is(ErrKeyUnavailable, ErrAuthenticationFailed))
	assert.False(t, apperrors.Is(ErrAuthenticationFailed, ErrKeyUnavailable))
	assert.False(t, apperrors.Is(ErrStoreUnavailable, ErrKeyUnavailable))
	assert.False(t, apperrors.Is(ErrInvalidSecretFormat, ErrAuthenticationFailed))
}
