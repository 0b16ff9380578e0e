package http

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/tenantvault/internal/httputil"
	customValidation "github.com/allisson/tenantvault/internal/validation"
	"github.com/allisson/tenantvault/internal/vault/http/dto"
	vaultUseCase "github.com/allisson/tenantvault/internal/vault/usecase"
)

// KeyHandler handles HTTP requests for encryption key lifecycle operations.
type KeyHandler struct {
	keyService vaultUseCase.KeyService
	logger     *slog.Logger
}

// NewKeyHandler creates a new key handler with required dependencies.
func NewKeyHandler(keyService vaultUseCase.KeyService, logger *slog.Logger) *KeyHandler {
	return &KeyHandler{
		keyService: keyService,
		logger:     logger,
	}
}

// GenerateHandler creates a new encryption key.
// POST /v1/keys
// The body is optional; an explicit key id may be supplied.
// Returns 201 Created with the key id. Key material is never returned.
func (h *KeyHandler) GenerateHandler(c *gin.Context) {
	var req dto.GenerateKeyRequest

	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	keyID, err := h.keyService.GenerateKey(c.Request.Context(), req.KeyID)
	if err != nil {
		HandleSecretError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.KeyResponse{KeyID: keyID})
}

// RotateHandler expires keys past their expiry.
// POST /v1/keys/rotate
// Returns 200 OK with the number of keys rotated.
func (h *KeyHandler) RotateHandler(c *gin.Context) {
	count, err := h.keyService.RotateKeys(c.Request.Context())
	if err != nil {
		HandleSecretError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.RotateKeysResponse{RotatedCount: count})
}

// RevokeHandler revokes a key, making it unavailable even for decryption.
// POST /v1/keys/:id/revoke
// Returns 204 No Content on success.
func (h *KeyHandler) RevokeHandler(c *gin.Context) {
	keyID := c.Param("id")
	if err := customValidation.KeyID.Validate(keyID); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	if err := h.keyService.RevokeKey(c.Request.Context(), keyID); err != nil {
		HandleSecretError(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
