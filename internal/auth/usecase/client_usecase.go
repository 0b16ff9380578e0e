package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	authDomain "github.com/allisson/tenantvault/internal/auth/domain"
	authService "github.com/allisson/tenantvault/internal/auth/service"
	apperrors "github.com/allisson/tenantvault/internal/errors"
)

// clientUseCase implements ClientUseCase.
type clientUseCase struct {
	repo    ClientRepository
	secrets authService.SecretService
	logger  *slog.Logger
}

// NewClientUseCase creates a new client use case instance.
func NewClientUseCase(repo ClientRepository, secrets authService.SecretService, logger *slog.Logger) ClientUseCase {
	return &clientUseCase{
		repo:    repo,
		secrets: secrets,
		logger:  logger,
	}
}

// Create registers a new client. The plaintext secret is returned once and
// only its hash is persisted.
func (c *clientUseCase) Create(ctx context.Context, name string) (*authDomain.Client, string, error) {
	if strings.TrimSpace(name) == "" {
		return nil, "", apperrors.Wrap(apperrors.ErrInvalidInput, "client name must not be blank")
	}

	plainSecret, hashedSecret, err := c.secrets.GenerateSecret()
	if err != nil {
		return nil, "", err
	}

	client := authDomain.NewClient(name)
	client.HashedSecret = hashedSecret

	if err := c.repo.Create(ctx, client); err != nil {
		return nil, "", err
	}

	c.logger.Info("client created",
		"client_id", client.ID.String(),
		"client_name", client.Name,
	)

	return client, plainSecret, nil
}

// Authenticate verifies a "<client_id>.<client_secret>" credential.
// Malformed credentials, unknown ids, and wrong secrets all collapse into
// ErrInvalidCredentials so responses never reveal which part failed.
func (c *clientUseCase) Authenticate(ctx context.Context, credential string) (*authDomain.Client, error) {
	clientID, plainSecret, found := strings.Cut(credential, ".")
	if !found || clientID == "" || plainSecret == "" {
		return nil, authDomain.ErrInvalidCredentials
	}

	if _, err := uuid.Parse(clientID); err != nil {
		return nil, authDomain.ErrInvalidCredentials
	}

	client, err := c.repo.GetByID(ctx, clientID)
	if err != nil {
		if apperrors.Is(err, authDomain.ErrClientNotFound) {
			return nil, authDomain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !c.secrets.CompareSecret(plainSecret, client.HashedSecret) {
		return nil, authDomain.ErrInvalidCredentials
	}

	if !client.Active {
		return nil, authDomain.ErrClientInactive
	}

	return client, nil
}
