package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/allisson/tenantvault/internal/database"
	apperrors "github.com/allisson/tenantvault/internal/errors"
	vaultDomain "github.com/allisson/tenantvault/internal/vault/domain"
)

// MySQLKeyRepository implements key persistence for MySQL.
type MySQLKeyRepository struct {
	db *sql.DB
}

// NewMySQLKeyRepository creates a new MySQL key repository instance.
func NewMySQLKeyRepository(db *sql.DB) *MySQLKeyRepository {
	return &MySQLKeyRepository{db: db}
}

// Create inserts a new key record. Key records are append-only: an existing
// id is reported as a conflict, never overwritten.
func (m *MySQLKeyRepository) Create(ctx context.Context, key *vaultDomain.Key) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO vault_keys (id, wrapped_material, algorithm, status, created_at, expires_at)
			  VALUES (?, ?, ?, ?, ?, ?)`

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
		// MySQL error number 1062: duplicate entry
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return vaultDomain.ErrKeyAlreadyExists
		}
		return apperrors.Wrapf(vaultDomain.ErrStoreUnavailable, "failed to create key: %v", err)
	}
	return nil
}

// Get retrieves a key record by id, including its status and expiry.
func (m *MySQLKeyRepository) Get(ctx context.Context, keyID string) (*vaultDomain.Key, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, wrapped_material, algorithm, status, created_at, expires_at
			  FROM vault_keys
			  WHERE id = ?`

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
func (m *MySQLKeyRepository) RotateExpired(ctx context.Context, now time.Time) (int, error) {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE vault_keys
			  SET status = ?
			  WHERE status = ? AND expires_at <= ?`

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
func (m *MySQLKeyRepository) Revoke(ctx context.Context, keyID string) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE vault_keys
			  SET status = ?
			  WHERE id = ?`

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
