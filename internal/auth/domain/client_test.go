package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/tenantvault/internal/errors"
)

func TestNewClient(t *testing.T) {
	client := NewClient("glue-service")

	assert.NotEqual(t, [16]byte{}, [16]byte(client.ID))
	assert.Equal(t, "glue-service", client.Name)
	assert.True(t, client.Active)
	assert.Empty(t, client.HashedSecret)
	assert.False(t, client.CreatedAt.IsZero())
}

func TestClientErrors(t *testing.T) {
	assert.ErrorIs(t, ErrClientNotFound, apperrors.ErrNotFound)
	assert.ErrorIs(t, ErrInvalidCredentials, apperrors.ErrUnauthorized)
	assert.ErrorIs(t, ErrClientInactive, apperrors.ErrForbidden)
}
