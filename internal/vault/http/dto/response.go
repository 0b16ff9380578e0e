package dto

import (
	"time"

	vaultDomain "github.com/allisson/tenantvault/internal/vault/domain"
)

// ProtectSecretResponse represents a protected secret in API responses.
// The encrypted secret is the base64 storage blob; callers persist it
// alongside the key id.
type ProtectSecretResponse struct {
	TenantID        string `json:"tenant_id"`
	EncryptedSecret string `json:"encrypted_secret"`
	KeyID           string `json:"key_id"`
}

// MapEncryptedSecretToResponse converts an encrypted secret to its API shape.
func MapEncryptedSecretToResponse(tenantID string, encrypted *vaultDomain.EncryptedSecret) ProtectSecretResponse {
	return ProtectSecretResponse{
		TenantID:        tenantID,
		EncryptedSecret: encrypted.String(),
		KeyID:           encrypted.KeyID,
	}
}

// RevealSecretResponse carries a revealed plaintext secret.
// Must be transmitted over HTTPS in production.
type RevealSecretResponse struct {
	TenantID string `json:"tenant_id"`
	Secret   string `json:"secret"`
}

// KeyResponse represents a generated key in API responses. Key material is
// never included.
type KeyResponse struct {
	KeyID string `json:"key_id"`
}

// RotateKeysResponse reports the outcome of a key rotation run.
type RotateKeysResponse struct {
	RotatedCount int `json:"rotated_count"`
}

// AuditRecordResponse represents an audit record in API responses.
type AuditRecordResponse struct {
	ID           string         `json:"id"`
	TenantID     string         `json:"tenant_id"`
	Operation    string         `json:"operation"`
	Success      bool           `json:"success"`
	ErrorMessage string         `json:"error_message,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

// ListAuditRecordsResponse wraps a page of audit records.
type ListAuditRecordsResponse struct {
	AuditRecords []AuditRecordResponse `json:"audit_records"`
	Offset       int                   `json:"offset"`
	Limit        int                   `json:"limit"`
}

// MapAuditRecordToResponse converts a domain audit record to its API shape.
func MapAuditRecordToResponse(record *vaultDomain.AuditRecord) AuditRecordResponse {
	return AuditRecordResponse{
		ID:           record.ID.String(),
		TenantID:     record.TenantID,
		Operation:    string(record.Operation),
		Success:      record.Success,
		ErrorMessage: record.ErrorMessage,
		Metadata:     record.Metadata,
		CreatedAt:    record.CreatedAt,
	}
}

// MapAuditRecordsToListResponse converts a page of audit records.
func MapAuditRecordsToListResponse(records []*vaultDomain.AuditRecord, offset, limit int) ListAuditRecordsResponse {
	items := make([]AuditRecordResponse, 0, len(records))
	for _, record := range records {
		items = append(items, MapAuditRecordToResponse(record))
	}
	return ListAuditRecordsResponse{
		AuditRecords: items,
		Offset:       offset,
		Limit:        limit,
	}
}
