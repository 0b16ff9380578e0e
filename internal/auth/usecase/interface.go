// Package usecase implements API client management and authentication.
package usecase

import (
	"context"

	authDomain "github.com/allisson/tenantvault/internal/auth/domain"
)

// ClientRepository defines the client persistence contract.
type ClientRepository interface {
	Create(ctx context.Context, client *authDomain.Client) error
	GetByID(ctx context.Context, id string) (*authDomain.Client, error)
}

// ClientUseCase defines client management and authentication operations.
type ClientUseCase interface {
	// Create registers a new client and returns it along with the plaintext
	// secret. The secret is not recoverable afterwards.
	Create(ctx context.Context, name string) (*authDomain.Client, string, error)

	// Authenticate verifies a bearer credential of the form
	// "<client_id>.<client_secret>" and returns the client. Malformed
	// credentials, unknown clients, and wrong secrets all fail with
	// ErrInvalidCredentials; inactive clients fail with ErrClientInactive.
	Authenticate(ctx context.Context, credential string) (*authDomain.Client, error)
}
