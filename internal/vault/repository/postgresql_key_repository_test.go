package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vaultDomain "github.com/allisson/tenantvault/internal/vault/domain"
)

func newKeyFixture() *vaultDomain.Key {
	now := time.Now().UTC()
	return &vaultDomain.Key{
		ID:              "key_0123456789abcdef0123456789abcdef_1700000000",
		WrappedMaterial: []byte("wrapped-material"),
		Algorithm:       vaultDomain.AESGCM,
		Status:          vaultDomain.KeyStatusActive,
		CreatedAt:       now,
		ExpiresAt:       now.Add(90 * 24 * time.Hour),
	}
}

func TestPostgreSQLKeyRepository_Create(t *testing.T) {
	t.Run("inserts a key record", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		repo := NewPostgreSQLKeyRepository(db)
		key := newKeyFixture()

		mock.ExpectExec("INSERT INTO vault_keys").
			WithArgs(key.ID, key.WrappedMaterial, key.Algorithm, key.Status, key.CreatedAt, key.ExpiresAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err = repo.Create(context.Background(), key)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate id is a conflict", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		repo := NewPostgreSQLKeyRepository(db)
		key := newKeyFixture()

		mock.ExpectExec("INSERT INTO vault_keys").
			WillReturnError(errors.New(`pq: duplicate key value violates unique constraint "vault_keys_pkey"`))

		err = repo.Create(context.Background(), key)
		assert.ErrorIs(t, err, vaultDomain.ErrKeyAlreadyExists)
	})

	t.Run("driver failure is store unavailability", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		repo := NewPostgreSQLKeyRepository(db)
		key := newKeyFixture()

		mock.ExpectExec("INSERT INTO vault_keys").
			WillReturnError(errors.New("pq: connection refused"))

		err = repo.Create(context.Background(), key)
		assert.ErrorIs(t, err, vaultDomain.ErrStoreUnavailable)
	})
}

func TestPostgreSQLKeyRepository_Get(t *testing.T) {
	t.Run("returns the key record", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		repo := NewPostgreSQLKeyRepository(db)
		key := newKeyFixture()

		rows := sqlmock.NewRows([]string{"id", "wrapped_material", "algorithm", "status", "created_at", "expires_at"}).
			AddRow(key.ID, key.WrappedMaterial, string(key.Algorithm), string(key.Status), key.CreatedAt, key.ExpiresAt)
		mock.ExpectQuery("SELECT (.+) FROM vault_keys").
			WithArgs(key.ID).
			WillReturnRows(rows)

		got, err := repo.Get(context.Background(), key.ID)
		require.NoError(t, err)
		assert.Equal(t, key.ID, got.ID)
		assert.Equal(t, key.WrappedMaterial, got.WrappedMaterial)
		assert.Equal(t, vaultDomain.KeyStatusActive, got.Status)
	})

	t.Run("missing row is not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		repo := NewPostgreSQLKeyRepository(db)

		mock.ExpectQuery("SELECT (.+) FROM vault_keys").
			WithArgs("key_missing_1").
			WillReturnError(sql.ErrNoRows)

		_, err = repo.Get(context.Background(), "key_missing_1")
		assert.ErrorIs(t, err, vaultDomain.ErrKeyNotFound)
	})

	t.Run("timeout is never reported as not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		repo := NewPostgreSQLKeyRepository(db)

		mock.ExpectQuery("SELECT (.+) FROM vault_keys").
			WithArgs("key_a_1").
			WillReturnError(context.DeadlineExceeded)

		_, err = repo.Get(context.Background(), "key_a_1")
		assert.ErrorIs(t, err, vaultDomain.ErrStoreUnavailable)
		assert.NotErrorIs(t, err, vaultDomain.ErrKeyNotFound)
	})
}

func TestPostgreSQLKeyRepository_RotateExpired(t *testing.T) {
	t.Run("marks expired keys and reports the count", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		repo := NewPostgreSQLKeyRepository(db)
		now := time.Now().UTC()

		mock.ExpectExec("UPDATE vault_keys").
			WithArgs(vaultDomain.KeyStatusExpired, vaultDomain.KeyStatusActive, now).
			WillReturnResult(sqlmock.NewResult(0, 3))

		count, err := repo.RotateExpired(context.Background(), now)
		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})

	t.Run("driver failure is store unavailability", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		repo := NewPostgreSQLKeyRepository(db)

		mock.ExpectExec("UPDATE vault_keys").
			WillReturnError(errors.New("pq: connection reset"))

		_, err = repo.RotateExpired(context.Background(), time.Now().UTC())
		assert.ErrorIs(t, err, vaultDomain.ErrStoreUnavailable)
	})
}

func TestPostgreSQLKeyRepository_Revoke(t *testing.T) {
	t.Run("revokes the key", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		repo := NewPostgreSQLKeyRepository(db)

		mock.ExpectExec("UPDATE vault_keys").
			WithArgs(vaultDomain.KeyStatusRevoked, "key_a_1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err = repo.Revoke(context.Background(), "key_a_1")
		require.NoError(t, err)
	})

	t.Run("unknown key is not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		repo := NewPostgreSQLKeyRepository(db)

		mock.ExpectExec("UPDATE vault_keys").
			WithArgs(vaultDomain.KeyStatusRevoked, "key_missing_1").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err = repo.Revoke(context.Background(), "key_missing_1")
		assert.ErrorIs(t, err, vaultDomain.ErrKeyNotFound)
	})
}
