// Package http provides HTTP middleware for API client authentication and
// rate limiting.
package http

import (
	"context"

	authDomain "github.com/allisson/tenantvault/internal/auth/domain"
)

// clientKey is a context key type for storing authenticated clients.
type clientKey struct{}

// WithClient stores an authenticated client in the context.
func WithClient(ctx context.Context, client *authDomain.Client) context.Context {
	return context.WithValue(ctx, clientKey{}, client)
}

// GetClient retrieves the authenticated client from the context.
// Returns (nil, false) if the authentication middleware has not run.
func GetClient(ctx context.Context) (*authDomain.Client, bool) {
	client, ok := ctx.Value(clientKey{}).(*authDomain.Client)
	return client, ok
}
