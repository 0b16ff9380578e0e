package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	vaultDomain "github.com/allisson/tenantvault/internal/vault/domain"
	"github.com/allisson/tenantvault/internal/vault/http/dto"
	"github.com/allisson/tenantvault/internal/vault/usecase/mocks"
)

// setupAuditRecordHandler creates a test handler with mocked dependencies.
func setupAuditRecordHandler(t *testing.T) (*AuditRecordHandler, *mocks.MockAuditRecordUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockUseCase := &mocks.MockAuditRecordUseCase{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewAuditRecordHandler(mockUseCase, logger), mockUseCase
}

func TestAuditRecordHandler_ListHandler(t *testing.T) {
	t.Run("Success_TenantFilter", func(t *testing.T) {
		handler, mockUseCase := setupAuditRecordHandler(t)

		records := []*vaultDomain.AuditRecord{
			vaultDomain.NewAuditRecord("T0123ABCD", vaultDomain.OperationStored, nil, map[string]any{"key_id": "key_a_1"}),
		}
		mockUseCase.On("List", mock.Anything, "T0123ABCD", 0, 50).Return(records, nil).Once()

		c, w := createTestContext(http.MethodGet, "/v1/audit-records?tenant_id=T0123ABCD", nil)

		handler.ListHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.ListAuditRecordsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response.AuditRecords, 1)
		assert.Equal(t, "T0123ABCD", response.AuditRecords[0].TenantID)
		assert.Equal(t, "stored", response.AuditRecords[0].Operation)
		assert.True(t, response.AuditRecords[0].Success)
	})

	t.Run("Success_Pagination", func(t *testing.T) {
		handler, mockUseCase := setupAuditRecordHandler(t)

		mockUseCase.On("List", mock.Anything, "", 10, 25).Return([]*vaultDomain.AuditRecord{}, nil).Once()

		c, w := createTestContext(http.MethodGet, "/v1/audit-records?offset=10&limit=25", nil)

		handler.ListHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.ListAuditRecordsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Empty(t, response.AuditRecords)
		assert.Equal(t, 10, response.Offset)
		assert.Equal(t, 25, response.Limit)
	})

	t.Run("ValidationError_BadLimit", func(t *testing.T) {
		handler, mockUseCase := setupAuditRecordHandler(t)

		c, w := createTestContext(http.MethodGet, "/v1/audit-records?limit=5000", nil)

		handler.ListHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		mockUseCase.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("StoreUnavailable_503", func(t *testing.T) {
		handler, mockUseCase := setupAuditRecordHandler(t)

		mockUseCase.On("List", mock.Anything, "", 0, 50).
			Return(nil, vaultDomain.ErrStoreUnavailable).Once()

		c, w := createTestContext(http.MethodGet, "/v1/audit-records", nil)

		handler.ListHandler(c)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
