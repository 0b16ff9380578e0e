package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tenantDomain "github.com/allisson/tenantvault/internal/tenant/domain"
)

func newTenantFixture() *tenantDomain.Tenant {
	tenant := tenantDomain.NewTenant("T0123ABCD", "Acme Corp", "U0BOT", "U0ADMIN")
	tenant.EncryptedBotToken = "ZW5jcnlwdGVkLWJsb2I="
	tenant.EncryptionKeyID = "key_a_1"
	return tenant
}

func tenantColumns() []string {
	return []string{
		"id", "team_id", "team_name", "encrypted_bot_token", "encryption_key_id",
		"bot_user_id", "installed_by", "status", "created_at", "updated_at",
	}
}

func TestPostgreSQLTenantRepository_Upsert(t *testing.T) {
	t.Run("inserts or replaces a tenant", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		repo := NewPostgreSQLTenantRepository(db)
		tenant := newTenantFixture()

		mock.ExpectExec("INSERT INTO tenants").
			WithArgs(tenant.ID, tenant.TeamID, tenant.TeamName, tenant.EncryptedBotToken,
				tenant.EncryptionKeyID, tenant.BotUserID, tenant.InstalledBy, tenant.Status,
				tenant.CreatedAt, tenant.UpdatedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err = repo.Upsert(context.Background(), tenant)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("propagates driver failure", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		repo := NewPostgreSQLTenantRepository(db)

		mock.ExpectExec("INSERT INTO tenants").
			WillReturnError(errors.New("pq: connection refused"))

		err = repo.Upsert(context.Background(), newTenantFixture())
		assert.Error(t, err)
	})
}

func TestPostgreSQLTenantRepository_GetByTeamID(t *testing.T) {
	t.Run("returns the tenant", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		repo := NewPostgreSQLTenantRepository(db)
		tenant := newTenantFixture()

		rows := sqlmock.NewRows(tenantColumns()).
			AddRow(tenant.ID, tenant.TeamID, tenant.TeamName, tenant.EncryptedBotToken,
				tenant.EncryptionKeyID, tenant.BotUserID, tenant.InstalledBy, string(tenant.Status),
				tenant.CreatedAt, tenant.UpdatedAt)
		mock.ExpectQuery("SELECT (.+) FROM tenants").
			WithArgs("T0123ABCD").
			WillReturnRows(rows)

		got, err := repo.GetByTeamID(context.Background(), "T0123ABCD")
		require.NoError(t, err)
		assert.Equal(t, tenant.TeamID, got.TeamID)
		assert.Equal(t, tenant.EncryptedBotToken, got.EncryptedBotToken)
		assert.Equal(t, tenantDomain.TenantStatusActive, got.Status)
	})

	t.Run("missing row is not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		repo := NewPostgreSQLTenantRepository(db)

		mock.ExpectQuery("SELECT (.+) FROM tenants").
			WithArgs("T9999ZZZZ").
			WillReturnError(sql.ErrNoRows)

		_, err = repo.GetByTeamID(context.Background(), "T9999ZZZZ")
		assert.ErrorIs(t, err, tenantDomain.ErrTenantNotFound)
	})
}

func TestPostgreSQLTenantRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	repo := NewPostgreSQLTenantRepository(db)
	tenant := newTenantFixture()

	rows := sqlmock.NewRows(tenantColumns()).
		AddRow(tenant.ID, tenant.TeamID, tenant.TeamName, tenant.EncryptedBotToken,
			tenant.EncryptionKeyID, tenant.BotUserID, tenant.InstalledBy, string(tenant.Status),
			tenant.CreatedAt, tenant.UpdatedAt)
	mock.ExpectQuery("SELECT (.+) FROM tenants").
		WithArgs(50, 0).
		WillReturnRows(rows)

	tenants, err := repo.List(context.Background(), 0, 50)
	require.NoError(t, err)
	require.Len(t, tenants, 1)
	assert.Equal(t, "T0123ABCD", tenants[0].TeamID)
}

func TestPostgreSQLTenantRepository_UpdateStatus(t *testing.T) {
	t.Run("updates the status", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		repo := NewPostgreSQLTenantRepository(db)

		mock.ExpectExec("UPDATE tenants").
			WithArgs(tenantDomain.TenantStatusSuspended, sqlmock.AnyArg(), "T0123ABCD").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err = repo.UpdateStatus(context.Background(), "T0123ABCD", tenantDomain.TenantStatusSuspended)
		require.NoError(t, err)
	})

	t.Run("unknown tenant is not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		repo := NewPostgreSQLTenantRepository(db)

		mock.ExpectExec("UPDATE tenants").
			WithArgs(tenantDomain.TenantStatusSuspended, sqlmock.AnyArg(), "T9999ZZZZ").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err = repo.UpdateStatus(context.Background(), "T9999ZZZZ", tenantDomain.TenantStatusSuspended)
		assert.ErrorIs(t, err, tenantDomain.ErrTenantNotFound)
	})
}
