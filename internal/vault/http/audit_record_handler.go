package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/tenantvault/internal/httputil"
	"github.com/allisson/tenantvault/internal/vault/http/dto"
	vaultUseCase "github.com/allisson/tenantvault/internal/vault/usecase"
)

// AuditRecordHandler handles HTTP requests for audit record queries.
type AuditRecordHandler struct {
	auditRecordUseCase vaultUseCase.AuditRecordUseCase
	logger             *slog.Logger
}

// NewAuditRecordHandler creates a new audit record handler.
func NewAuditRecordHandler(auditRecordUseCase vaultUseCase.AuditRecordUseCase, logger *slog.Logger) *AuditRecordHandler {
	return &AuditRecordHandler{
		auditRecordUseCase: auditRecordUseCase,
		logger:             logger,
	}
}

// ListHandler retrieves audit records newest first with pagination.
// GET /v1/audit-records?tenant_id=&offset=&limit=
// An empty tenant_id lists records across all tenants, including system
// key lifecycle entries.
func (h *AuditRecordHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	tenantID := c.Query("tenant_id")

	records, err := h.auditRecordUseCase.List(c.Request.Context(), tenantID, offset, limit)
	if err != nil {
		HandleSecretError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapAuditRecordsToListResponse(records, offset, limit))
}
