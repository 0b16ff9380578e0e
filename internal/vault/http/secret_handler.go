package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/tenantvault/internal/httputil"
	customValidation "github.com/allisson/tenantvault/internal/validation"
	vaultDomain "github.com/allisson/tenantvault/internal/vault/domain"
	"github.com/allisson/tenantvault/internal/vault/http/dto"
	vaultUseCase "github.com/allisson/tenantvault/internal/vault/usecase"
)

// SecretHandler handles HTTP requests for protecting and revealing tenant
// secrets. All operations go through the audited secret service.
type SecretHandler struct {
	secretService vaultUseCase.SecretService
	logger        *slog.Logger
}

// NewSecretHandler creates a new secret handler with required dependencies.
func NewSecretHandler(secretService vaultUseCase.SecretService, logger *slog.Logger) *SecretHandler {
	return &SecretHandler{
		secretService: secretService,
		logger:        logger,
	}
}

// ProtectHandler encrypts a tenant secret for storage.
// POST /v1/secrets/protect
// Returns 201 Created with the key id and base64 blob; the plaintext is
// never echoed back.
func (h *SecretHandler) ProtectHandler(c *gin.Context) {
	var req dto.ProtectSecretRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	encrypted, err := h.secretService.Protect(c.Request.Context(), req.TenantID, req.Secret)
	if err != nil {
		HandleSecretError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapEncryptedSecretToResponse(req.TenantID, encrypted))
}

// RevealHandler decrypts a stored tenant secret.
// POST /v1/secrets/reveal
// Returns 200 OK with the plaintext secret. Must be served over HTTPS.
func (h *SecretHandler) RevealHandler(c *gin.Context) {
	var req dto.RevealSecretRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	encrypted, err := vaultDomain.ParseEncryptedSecret(req.EncryptedSecret, req.KeyID)
	if err != nil {
		HandleSecretError(c, err, h.logger)
		return
	}

	secret, err := h.secretService.Reveal(c.Request.Context(), req.TenantID, encrypted)
	if err != nil {
		HandleSecretError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.RevealSecretResponse{
		TenantID: req.TenantID,
		Secret:   secret,
	})
}
