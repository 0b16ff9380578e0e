package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/allisson/tenantvault/internal/database"
	apperrors "github.com/allisson/tenantvault/internal/errors"
	vaultDomain "github.com/allisson/tenantvault/internal/vault/domain"
)

// MySQLAuditRecordRepository implements audit record persistence for MySQL.
// UUIDs are stored as 36-character strings. Records are append-only.
type MySQLAuditRecordRepository struct {
	db *sql.DB
}

// NewMySQLAuditRecordRepository creates a new MySQL audit record repository
// instance.
func NewMySQLAuditRecordRepository(db *sql.DB) *MySQLAuditRecordRepository {
	return &MySQLAuditRecordRepository{db: db}
}

// Create inserts a new audit record. Nil metadata is stored as NULL.
//
// The insert runs on the base connection, never on a transaction carried in
// the context: a caller's rollback must not erase the audit trail.
func (m *MySQLAuditRecordRepository) Create(ctx context.Context, record *vaultDomain.AuditRecord) error {
	var metadataJSON []byte
	var err error
	if record.Metadata != nil {
		metadataJSON, err = json.Marshal(record.Metadata)
		if err != nil {
			return apperrors.Wrap(err, "failed to marshal audit record metadata")
		}
	}

	query := `INSERT INTO audit_records (id, tenant_id, operation, success, error_message, metadata, created_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err = m.db.ExecContext(
		ctx,
		query,
		record.ID.String(),
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
func (m *MySQLAuditRecordRepository) List(
	ctx context.Context,
	tenantID string,
	offset, limit int,
) ([]*vaultDomain.AuditRecord, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, tenant_id, operation, success, error_message, metadata, created_at
			  FROM audit_records
			  WHERE (? = '' OR tenant_id = ?)
			  ORDER BY id DESC
			  LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, tenantID, tenantID, limit, offset)
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
