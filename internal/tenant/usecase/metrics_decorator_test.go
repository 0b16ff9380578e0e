package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/allisson/tenantvault/internal/metrics"
	tenantDomain "github.com/allisson/tenantvault/internal/tenant/domain"
	"github.com/allisson/tenantvault/internal/tenant/usecase/mocks"
)

// mockBusinessMetrics is a mock implementation of metrics.BusinessMetrics for testing.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

var _ metrics.BusinessMetrics = (*mockBusinessMetrics)(nil)

func TestTenantUseCaseWithMetrics(t *testing.T) {
	ctx := context.Background()

	t.Run("records success for install", func(t *testing.T) {
		next := &mocks.MockTenantUseCase{}
		m := &mockBusinessMetrics{}
		useCase := NewTenantUseCaseWithMetrics(next, m)

		input := testInstallInput()
		tenant := tenantDomain.NewTenant(input.TeamID, input.TeamName, input.BotUserID, input.InstalledBy)

		next.On("Install", ctx, input).Return(tenant, nil)
		m.On("RecordOperation", ctx, "tenant", "install", "success").Once()
		m.On("RecordDuration", ctx, "tenant", "install", mock.Anything, "success").Once()

		got, err := useCase.Install(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, tenant, got)
		m.AssertExpectations(t)
	})

	t.Run("records error for bot token", func(t *testing.T) {
		next := &mocks.MockTenantUseCase{}
		m := &mockBusinessMetrics{}
		useCase := NewTenantUseCaseWithMetrics(next, m)

		next.On("BotToken", ctx, "T0123ABCD").Return("", tenantDomain.ErrTenantSuspended)
		m.On("RecordOperation", ctx, "tenant", "bot_token", "error").Once()
		m.On("RecordDuration", ctx, "tenant", "bot_token", mock.Anything, "error").Once()

		_, err := useCase.BotToken(ctx, "T0123ABCD")
		assert.ErrorIs(t, err, tenantDomain.ErrTenantSuspended)
		m.AssertExpectations(t)
	})

	t.Run("records success for suspend", func(t *testing.T) {
		next := &mocks.MockTenantUseCase{}
		m := &mockBusinessMetrics{}
		useCase := NewTenantUseCaseWithMetrics(next, m)

		next.On("Suspend", ctx, "T0123ABCD").Return(nil)
		m.On("RecordOperation", ctx, "tenant", "suspend", "success").Once()
		m.On("RecordDuration", ctx, "tenant", "suspend", mock.Anything, "success").Once()

		err := useCase.Suspend(ctx, "T0123ABCD")
		require.NoError(t, err)
		m.AssertExpectations(t)
	})
}
