// Package repository implements tenant persistence for PostgreSQL and MySQL.
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

// PostgreSQLTenantRepository implements tenant persistence for PostgreSQL.
type PostgreSQLTenantRepository struct {
	db *sql.DB
}

// NewPostgreSQLTenantRepository creates a new PostgreSQL tenant repository instance.
func NewPostgreSQLTenantRepository(db *sql.DB) *PostgreSQLTenantRepository {
	return &PostgreSQLTenantRepository{db: db}
}

// Upsert inserts a tenant record or replaces the existing one for the same
// team id in a single statement. Reinstalling a workspace atomically swaps
// in the new token, key reference, and installer.
func (p *PostgreSQLTenantRepository) Upsert(ctx context.Context, tenant *tenantDomain.Tenant) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO tenants (id, team_id, team_name, encrypted_bot_token, encryption_key_id,
				  bot_user_id, installed_by, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			  ON CONFLICT (team_id) DO UPDATE SET
				  team_name = EXCLUDED.team_name,
				  encrypted_bot_token = EXCLUDED.encrypted_bot_token,
				  encryption_key_id = EXCLUDED.encryption_key_id,
				  bot_user_id = EXCLUDED.bot_user_id,
				  installed_by = EXCLUDED.installed_by,
				  status = EXCLUDED.status,
				  updated_at = EXCLUDED.updated_at`

	_, err := querier.ExecContext(
		ctx,
		query,
		tenant.ID,
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
func (p *PostgreSQLTenantRepository) GetByTeamID(ctx context.Context, teamID string) (*tenantDomain.Tenant, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, team_id, team_name, encrypted_bot_token, encryption_key_id,
				  bot_user_id, installed_by, status, created_at, updated_at
			  FROM tenants
			  WHERE team_id = $1`

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
func (p *PostgreSQLTenantRepository) List(ctx context.Context, offset, limit int) ([]*tenantDomain.Tenant, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, team_id, team_name, encrypted_bot_token, encryption_key_id,
				  bot_user_id, installed_by, status, created_at, updated_at
			  FROM tenants
			  ORDER BY team_id
			  LIMIT $1 OFFSET $2`

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
func (p *PostgreSQLTenantRepository) UpdateStatus(ctx context.Context, teamID string, status tenantDomain.TenantStatus) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE tenants
			  SET status = $1, updated_at = $2
			  WHERE team_id = $3`

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
