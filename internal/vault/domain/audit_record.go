package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditRecord captures a single cryptographic operation for compliance and
// security monitoring. Records are append-only: they are never updated or
// deleted by this subsystem.
type AuditRecord struct {
	ID           uuid.UUID
	TenantID     string
	Operation    Operation
	Success      bool
	ErrorMessage string
	Metadata     map[string]any
	CreatedAt    time.Time
}

// NewAuditRecord builds an audit record for the given operation outcome.
// The err argument may be nil; its message is recorded verbatim otherwise.
// Key material never reaches an audit record.
func NewAuditRecord(
	tenantID string,
	operation Operation,
	err error,
	metadata map[string]any,
) *AuditRecord {
	record := &AuditRecord{
		ID:        uuid.Must(uuid.NewV7()),
		TenantID:  tenantID,
		Operation: operation,
		Success:   err == nil,
		Metadata:  metadata,
		CreatedAt: time.Now().UTC(),
	}
	if err != nil {
		record.ErrorMessage = err.Error()
	}
	return record
}
