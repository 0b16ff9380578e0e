package usecase

import (
	"context"
	"log/slog"

	"github.com/allisson/tenantvault/internal/database"
	tenantDomain "github.com/allisson/tenantvault/internal/tenant/domain"
	vaultDomain "github.com/allisson/tenantvault/internal/vault/domain"
	vaultUsecase "github.com/allisson/tenantvault/internal/vault/usecase"
)

// tenantUseCase implements TenantUseCase.
type tenantUseCase struct {
	txManager database.TxManager
	repo      TenantRepository
	secrets   vaultUsecase.SecretService
	logger    *slog.Logger
}

// NewTenantUseCase creates a new tenant use case instance.
func NewTenantUseCase(
	txManager database.TxManager,
	repo TenantRepository,
	secrets vaultUsecase.SecretService,
	logger *slog.Logger,
) TenantUseCase {
	return &tenantUseCase{
		txManager: txManager,
		repo:      repo,
		secrets:   secrets,
		logger:    logger,
	}
}

// Install protects the bot token for the team and writes the tenant record
// in a single upsert. The team id doubles as the vault tenant id, so the
// ciphertext is bound to the workspace it was installed in. The audit entry
// written by Protect lands on the base connection, so it survives even when
// the tenant upsert rolls back.
func (t *tenantUseCase) Install(ctx context.Context, input tenantDomain.InstallTenantInput) (*tenantDomain.Tenant, error) {
	var tenant *tenantDomain.Tenant

	err := t.txManager.WithTx(ctx, func(ctx context.Context) error {
		encrypted, err := t.secrets.Protect(ctx, input.TeamID, input.BotToken)
		if err != nil {
			return err
		}

		tenant = tenantDomain.NewTenant(input.TeamID, input.TeamName, input.BotUserID, input.InstalledBy)
		tenant.EncryptedBotToken = encrypted.String()
		tenant.EncryptionKeyID = encrypted.KeyID

		return t.repo.Upsert(ctx, tenant)
	})
	if err != nil {
		return nil, err
	}

	t.logger.Info("tenant installed",
		"team_id", tenant.TeamID,
		"key_id", tenant.EncryptionKeyID,
	)

	return tenant, nil
}

// BotToken loads the tenant record and reveals its bot token. Suspended
// tenants fail before any cryptographic work happens.
func (t *tenantUseCase) BotToken(ctx context.Context, teamID string) (string, error) {
	tenant, err := t.repo.GetByTeamID(ctx, teamID)
	if err != nil {
		return "", err
	}

	if !tenant.Active() {
		return "", tenantDomain.ErrTenantSuspended
	}

	encrypted, err := vaultDomain.ParseEncryptedSecret(tenant.EncryptedBotToken, tenant.EncryptionKeyID)
	if err != nil {
		return "", err
	}

	return t.secrets.Reveal(ctx, teamID, encrypted)
}

// Get retrieves a tenant by team id.
func (t *tenantUseCase) Get(ctx context.Context, teamID string) (*tenantDomain.Tenant, error) {
	return t.repo.GetByTeamID(ctx, teamID)
}

// List retrieves tenants with pagination.
func (t *tenantUseCase) List(ctx context.Context, offset, limit int) ([]*tenantDomain.Tenant, error) {
	return t.repo.List(ctx, offset, limit)
}

// Suspend withholds the tenant's bot token until it is reinstalled.
func (t *tenantUseCase) Suspend(ctx context.Context, teamID string) error {
	if err := t.repo.UpdateStatus(ctx, teamID, tenantDomain.TenantStatusSuspended); err != nil {
		return err
	}

	t.logger.Info("tenant suspended", "team_id", teamID)
	return nil
}
