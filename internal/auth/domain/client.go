// Package domain defines the API client model used to authenticate the
// upstream glue services calling this API.
//
// Clients present `Authorization: Bearer <client_id>.<client_secret>`; only
// the argon2id hash of the secret is stored.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/allisson/tenantvault/internal/errors"
)

// Client domain errors.
var (
	// ErrClientNotFound indicates no client exists for the given id.
	ErrClientNotFound = errors.Wrap(errors.ErrNotFound, "client not found")

	// ErrInvalidCredentials indicates the presented credential could not be
	// verified. Unknown client ids and wrong secrets produce the same error
	// so responses do not reveal which part failed.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid client credentials")

	// ErrClientInactive indicates the client exists but has been deactivated.
	ErrClientInactive = errors.Wrap(errors.ErrForbidden, "client is inactive")
)

// Client represents an API client credential.
//
// HashedSecret holds the argon2id hash of the client secret; the plaintext
// secret is only returned once, at creation time.
type Client struct {
	ID           uuid.UUID
	Name         string
	HashedSecret string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewClient builds an active client. The secret hash is filled in by the
// use case after generation.
func NewClient(name string) *Client {
	now := time.Now().UTC()
	return &Client{
		ID:        uuid.Must(uuid.NewV7()),
		Name:      name,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
