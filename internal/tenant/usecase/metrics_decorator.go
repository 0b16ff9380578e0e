package usecase

import (
	"context"
	"time"

	"github.com/allisson/tenantvault/internal/metrics"
	tenantDomain "github.com/allisson/tenantvault/internal/tenant/domain"
)

// tenantUseCaseWithMetrics decorates TenantUseCase with metrics instrumentation.
type tenantUseCaseWithMetrics struct {
	next    TenantUseCase
	metrics metrics.BusinessMetrics
}

// NewTenantUseCaseWithMetrics wraps a TenantUseCase with metrics recording.
func NewTenantUseCaseWithMetrics(useCase TenantUseCase, m metrics.BusinessMetrics) TenantUseCase {
	return &tenantUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Install records metrics for tenant installation operations.
func (t *tenantUseCaseWithMetrics) Install(ctx context.Context, input tenantDomain.InstallTenantInput) (*tenantDomain.Tenant, error) {
	start := time.Now()
	tenant, err := t.next.Install(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "tenant", "install", status)
	t.metrics.RecordDuration(ctx, "tenant", "install", time.Since(start), status)

	return tenant, err
}

// BotToken records metrics for bot token reveal operations.
func (t *tenantUseCaseWithMetrics) BotToken(ctx context.Context, teamID string) (string, error) {
	start := time.Now()
	token, err := t.next.BotToken(ctx, teamID)

	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "tenant", "bot_token", status)
	t.metrics.RecordDuration(ctx, "tenant", "bot_token", time.Since(start), status)

	return token, err
}

// Get records metrics for tenant retrieval operations.
func (t *tenantUseCaseWithMetrics) Get(ctx context.Context, teamID string) (*tenantDomain.Tenant, error) {
	start := time.Now()
	tenant, err := t.next.Get(ctx, teamID)

	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "tenant", "get", status)
	t.metrics.RecordDuration(ctx, "tenant", "get", time.Since(start), status)

	return tenant, err
}

// List records metrics for tenant listing operations.
func (t *tenantUseCaseWithMetrics) List(ctx context.Context, offset, limit int) ([]*tenantDomain.Tenant, error) {
	start := time.Now()
	tenants, err := t.next.List(ctx, offset, limit)

	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "tenant", "list", status)
	t.metrics.RecordDuration(ctx, "tenant", "list", time.Since(start), status)

	return tenants, err
}

// Suspend records metrics for tenant suspension operations.
func (t *tenantUseCaseWithMetrics) Suspend(ctx context.Context, teamID string) error {
	start := time.Now()
	err := t.next.Suspend(ctx, teamID)

	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "tenant", "suspend", status)
	t.metrics.RecordDuration(ctx, "tenant", "suspend", time.Since(start), status)

	return err
}
