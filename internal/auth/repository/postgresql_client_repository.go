// Package repository implements API client persistence for PostgreSQL and MySQL.
package repository

import (
	"context"
	"database/sql"
	"errors"

	authDomain "github.com/allisson/tenantvault/internal/auth/domain"
	"github.com/allisson/tenantvault/internal/database"
	apperrors "github.com/allisson/tenantvault/internal/errors"
)

// PostgreSQLClientRepository implements client persistence for PostgreSQL.
type PostgreSQLClientRepository struct {
	db *sql.DB
}

// NewPostgreSQLClientRepository creates a new PostgreSQL client repository instance.
func NewPostgreSQLClientRepository(db *sql.DB) *PostgreSQLClientRepository {
	return &PostgreSQLClientRepository{db: db}
}

// Create inserts a client record.
func (p *PostgreSQLClientRepository) Create(ctx context.Context, client *authDomain.Client) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO clients (id, name, hashed_secret, active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := querier.ExecContext(
		ctx,
		query,
		client.ID,
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
func (p *PostgreSQLClientRepository) GetByID(ctx context.Context, id string) (*authDomain.Client, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, hashed_secret, active, created_at, updated_at
			  FROM clients
			  WHERE id = $1`

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
