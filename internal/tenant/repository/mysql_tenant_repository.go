package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/allisson/tenantvault/internal/database"
	apperrors "github.com/allisson/tenantvault/internal/errors"
	tenantDomain "github.com/allisson/tenantvault/internal/tenant/domain"
)

// MySQLTenantRepository implements tenant persistence for MySQL. UUIDs are
// stored as 36-character strings.
type MySQLTenantRepository struct {
	db *sql.DB
}

// NewMySQLTenantRepository creates a new MySQL tenant repository instance.
func NewMySQLTenantRepository(db *sql.DB) *MySQLTenantRepository {
	return &MySQLTenantRepository{db: db}
}

// Upsert inserts a tenant record or replaces the existing one for the same
// team id in a single statement.
func (m *MySQLTenantRepository) Upsert(ctx context.Context, tenant *tenantDomain.Tenant) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO tenants (id, team_id, team_name, encrypted_bot_token, encryption_key_id,
				  bot_user_id, installed_by, status, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			  ON DUPLICATE KEY UPDATE
				  team_name = VALUES(team_name),
				  encrypted_bot_token = VALUES(encrypted_bot_token),
				  encryption_key_id = VALUES(encryption_key_id),
				  bot_user_id = VALUES(bot_user_id),
				  installed_by = VALUES(installed_by),
				  status = VALUES(status),
				  updated_at = VALUES(updated_at)`

	_, err := querier.ExecContext(
		ctx,
		query,
		tenant.ID.String(),
		tenant.TeamID,
		tenant.TeamName,
		tenant.EncryptedBotToken,
		tenant.EncryptionKeyID,
		tenant.BotUserID,
		tenant.InstalledBy,
		tenant.Status,
		tenant.CreatedAt,
		tenant.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to upsert tenant")
	}
	return nil
}

// GetByTeamID retrieves a tenant by its Slack team id.
func (m *MySQLTenantRepository) GetByTeamID(ctx context.Context, teamID string) (*tenantDomain.Tenant, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, team_id, team_name, encrypted_bot_token, encryption_key_id,
				  bot_user_id, installed_by, status, created_at, updated_at
			  FROM tenants
			  WHERE team_id = ?`

	var tenant tenantDomain.Tenant
	err := querier.QueryRowContext(ctx, query, teamID).Scan(
		&tenant.ID,
		&tenant.TeamID,
		&tenant.TeamName,
		&tenant.EncryptedBotToken,
		&tenant.EncryptionKeyID,
		&tenant.BotUserID,
		&tenant.InstalledBy,
		&tenant.Status,
		&tenant.CreatedAt,
		&tenant.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, tenantDomain.ErrTenantNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get tenant by team id")
	}

	return &tenant, nil
}

// List retrieves tenants ordered by team id with pagination.
func (m *MySQLTenantRepository) List(ctx context.Context, offset, limit int) ([]*tenantDomain.Tenant, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, team_id, team_name, encrypted_bot_token, encryption_key_id,
				  bot_user_id, installed_by, status, created_at, updated_at
			  FROM tenants
			  ORDER BY team_id
			  LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list tenants")
	}
	defer func() {
		_ = rows.Close()
	}()

	tenants := make([]*tenantDomain.Tenant, 0)
	for rows.Next() {
		var tenant tenantDomain.Tenant
		err := rows.Scan(
			&tenant.ID,
			&tenant.TeamID,
			&tenant.TeamName,
			&tenant.EncryptedBotToken,
			&tenant.EncryptionKeyID,
			&tenant.BotUserID,
			&tenant.InstalledBy,
			&tenant.Status,
			&tenant.CreatedAt,
			&tenant.UpdatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan tenant")
		}
		tenants = append(tenants, &tenant)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate tenants")
	}

	return tenants, nil
}

// UpdateStatus changes a tenant's status.
func (m *MySQLTenantRepository) UpdateStatus(ctx context.Context, teamID string, status tenantDomain.TenantStatus) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE tenants
			  SET status = ?, updated_at = ?
			  WHERE team_id = ?`

	result, err := querier.ExecContext(ctx, query, status, time.Now().UTC(), teamID)
	if err != nil {
		return apperrors.Wrap(err, "failed to update tenant status")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to count updated tenants")
	}
	if affected == 0 {
		return tenantDomain.ErrTenantNotFound
	}

	return nil
}
