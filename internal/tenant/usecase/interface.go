// Package usecase implements the business logic for Slack workspace tenants.
// It sits between the HTTP handlers and the tenant repository, and delegates
// all bot token protection to the vault secret service.
package usecase

import (
	"context"

	tenantDomain "github.com/allisson/tenantvault/internal/tenant/domain"
)

// TenantRepository defines the tenant persistence contract.
type TenantRepository interface {
	Upsert(ctx context.Context, tenant *tenantDomain.Tenant) error
	GetByTeamID(ctx context.Context, teamID string) (*tenantDomain.Tenant, error)
	List(ctx context.Context, offset, limit int) ([]*tenantDomain.Tenant, error)
	UpdateStatus(ctx context.Context, teamID string, status tenantDomain.TenantStatus) error
}

// TenantUseCase defines the tenant lifecycle operations.
type TenantUseCase interface {
	// Install protects the bot token and creates or replaces the tenant
	// record for the team. Reinstalling a workspace is idempotent.
	Install(ctx context.Context, input tenantDomain.InstallTenantInput) (*tenantDomain.Tenant, error)

	// BotToken reveals the plaintext bot token for an active tenant.
	BotToken(ctx context.Context, teamID string) (string, error)

	Get(ctx context.Context, teamID string) (*tenantDomain.Tenant, error)
	List(ctx context.Context, offset, limit int) ([]*tenantDomain.Tenant, error)
	Suspend(ctx context.Context, teamID string) error
}
