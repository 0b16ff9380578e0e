package repository

import (
	"context"
	"database/sql"
	"errors"

	authDomain "github.com/allisson/tenantvault/internal/auth/domain"
	"github.com/allisson/tenantvault/internal/database"
	apperrors "github.com/allisson/tenantvault/internal/errors"
)

// MySQLClientRepository implements client persistence for MySQL. UUIDs are
// stored as 36-character strings.
type MySQLClientRepository struct {
	db *sql.DB
}

// NewMySQLClientRepository creates a new MySQL client repository instance.
func NewMySQLClientRepository(db *sql.DB) *MySQLClientRepository {
	return &MySQLClientRepository{db: db}
}

// Create inserts a client record.
func (m *MySQLClientRepository) Create(ctx context.Context, client *authDomain.Client) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO clients (id, name, hashed_secret, active, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?)`

	_, err := querier.ExecContext(
		ctx,
		query,
		client.ID.String(),
		client.Name,
		client.HashedSecret,
		client.Active,
		client.CreatedAt,
		client.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create client")
	}
	return nil
}

// GetByID retrieves a client by its id.
func (m *MySQLClientRepository) GetByID(ctx context.Context, id string) (*authDomain.Client, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, name, hashed_secret, active, created_at, updated_at
			  FROM clients
			  WHERE id = ?`

	var client authDomain.Client
	err := querier.QueryRowContext(ctx, query, id).Scan(
		&client.ID,
		&client.Name,
		&client.HashedSecret,
		&client.Active,
		&client.CreatedAt,
		&client.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, authDomain.ErrClientNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get client")
	}

	return &client, nil
}
