package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/allisson/tenantvault/internal/database"
	apperrors "github.com/allisson/tenantvault/internal/errors"
	vaultDomain "github.com/allisson/tenantvault/internal/vault/domain"
)

// PostgreSQLAuditRecordRepository implements audit record persistence for
// PostgreSQL. Records are append-only.
type PostgreSQLAuditRecordRepository struct {
	db *sql.DB
}

// NewPostgreSQLAuditRecordRepository creates a new PostgreSQL audit record
// repository instance.
func NewPostgreSQLAuditRecordRepository(db *sql.DB) *PostgreSQLAuditRecordRepository {
	return &PostgreSQLAuditRecordRepository{db: db}
}

// Create inserts a new audit record. Nil metadata is stored as NULL.
//
// The insert runs on the base connection, never on a transaction carried in
// the context: a caller's rollback must not erase the audit trail.
func (p *PostgreSQLAuditRecordRepository) Create(ctx context.Context, record *vaultDomain.AuditRecord) error {
	var metadataJSON []byte
	var err error
	if record.Metadata != nil {
		metadataJSON, err = json.Marshal(record.Metadata)
		if err != nil {
			return apperrors.Wrap(err, "failed to marshal audit record metadata")
		}
	}

	query := `INSERT INTO audit_records (id, tenant_id, operation, success, error_message, metadata, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err = p.db.ExecContext(
		ctx,
		query,
		record.ID,
		record.TenantID,
		string(record.Operation),
		record.Success,
		record.ErrorMessage,
		metadataJSON,
		record.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrapf(vaultDomain.ErrStoreUnavailable, "failed to create audit record: %v", err)
	}

	return nil
}

// List retrieves audit records newest first with pagination. An empty
// tenantID lists records across all tenants.
func (p *PostgreSQLAuditRecordRepository) List(
	ctx context.Context,
	tenantID string,
	offset, limit int,
) ([]*vaultDomain.AuditRecord, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, tenant_id, operation, success, error_message, metadata, created_at
			  FROM audit_records
			  WHERE ($1 = '' OR tenant_id = $1)
			  ORDER BY id DESC
			  LIMIT $2 OFFSET $3`

	rows, err := querier.QueryContext(ctx, query, tenantID, limit, offset)
	if err != nil {
		return nil, apperrors.Wrapf(vaultDomain.ErrStoreUnavailable, "failed to list audit records: %v", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	records := make([]*vaultDomain.AuditRecord, 0)
	for rows.Next() {
		record, err := scanAuditRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrapf(vaultDomain.ErrStoreUnavailable, "failed to iterate audit records: %v", err)
	}

	return records, nil
}

func scanAuditRecord(rows *sql.Rows) (*vaultDomain.AuditRecord, error) {
	var record vaultDomain.AuditRecord
	var metadataJSON []byte
	var operation string

	err := rows.Scan(
		&record.ID,
		&record.TenantID,
		&operation,
		&record.Success,
		&record.ErrorMessage,
		&metadataJSON,
		&record.CreatedAt,
	)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to scan audit record")
	}

	record.Operation = vaultDomain.Operation(operation)
	if metadataJSON != nil {
		if err := json.Unmarshal(metadataJSON, &record.Metadata); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal audit record metadata")
		}
	}

	return &record, nil
}
