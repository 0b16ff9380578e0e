// Package repository implements the key store and audit sink adapters on
// PostgreSQL and MySQL.
//
// Storage outcomes are translated into the domain taxonomy at this layer:
// a missing row becomes ErrKeyNotFound, a duplicate id ErrKeyAlreadyExists,
// and any driver or network failure ErrStoreUnavailable. A timeout never
// surfaces as not-found.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/allisson/tenantvault/internal/database"
	apperrors "github.com/allisson/tenantvault/internal/errors"
	vaultDomain "github.com/allisson/tenantvault/internal/vault/domain"
)

// PostgreSQLKeyRepository implements key persistence for PostgreSQL.
type PostgreSQLKeyRepository struct {
	db *sql.DB
}

// NewPostgreSQLKeyRepository creates a new PostgreSQL key repository instance.
func NewPostgreSQLKeyRepository(db *sql.DB) *PostgreSQLKeyRepository {
	return &PostgreSQLKeyRepository{db: db}
}

// Create inserts a new key record. Key records are append-only: an existing
// id is reported as a conflict, never overwritten.
func (p *PostgreSQLKeyRepository) Create(ctx context.Context, key *vaultDomain.Key) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO vault_keys (id, wrapped_material, algorithm, status, created_at, expires_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := querier.ExecContext(
		ctx,
		query,
		key.ID,
		key.WrappedMaterial,
		key.Algorithm,
		key.Status,
		key.CreatedAt,
		key.ExpiresAt,
	)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return vaultDomain.ErrKeyAlreadyExists
		}
		return apperrors.Wrapf(vaultDomain.ErrStoreUnavailable, "failed to create key: %v", err)
	}
	return nil
}

// Get retrieves a key record by id, including its status and expiry.
func (p *PostgreSQLKeyRepository) Get(ctx context.Context, keyID string) (*vaultDomain.Key, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, wrapped_material, algorithm, status, created_at, expires_at
			  FROM vault_keys
			  WHERE id = $1`

	var key vaultDomain.Key
	err := querier.QueryRowContext(ctx, query, keyID).Scan(
		&key.ID,
		&key.WrappedMaterial,
		&key.Algorithm,
		&key.Status,
		&key.CreatedAt,
		&key.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, vaultDomain.ErrKeyNotFound
		}
		return nil, apperrors.Wrapf(vaultDomain.ErrStoreUnavailable, "failed to get key: %v", err)
	}

	return &key, nil
}

// RotateExpired marks active keys whose expiry has passed as expired and
// returns the number of keys affected.
func (p *PostgreSQLKeyRepository) RotateExpired(ctx context.Context, now time.Time) (int, error) {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE vault_keys
			  SET status = $1
			  WHERE status = $2 AND expires_at <= $3`

	result, err := querier.ExecContext(ctx, query, vaultDomain.KeyStatusExpired, vaultDomain.KeyStatusActive, now)
	if err != nil {
		return 0, apperrors.Wrapf(vaultDomain.ErrStoreUnavailable, "failed to rotate keys: %v", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, apperrors.Wrapf(vaultDomain.ErrStoreUnavailable, "failed to count rotated keys: %v", err)
	}

	return int(affected), nil
}

// Revoke marks a key as revoked. Revocation is irreversible and applies to
// keys in any prior status.
func (p *PostgreSQLKeyRepository) Revoke(ctx context.Context, keyID string) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE vault_keys
			  SET status = $1
			  WHERE id = $2`

	result, err := querier.ExecContext(ctx, query, vaultDomain.KeyStatusRevoked, keyID)
	if err != nil {
		return apperrors.Wrapf(vaultDomain.ErrStoreUnavailable, "failed to revoke key: %v", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrapf(vaultDomain.ErrStoreUnavailable, "failed to count revoked keys: %v", err)
	}
	if affected == 0 {
		return vaultDomain.ErrKeyNotFound
	}

	return nil
}

func isPostgreSQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	// PostgreSQL: "duplicate key value violates unique constraint"
	return strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, "unique constraint")
}
