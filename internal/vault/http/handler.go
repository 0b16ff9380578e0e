// Package http provides HTTP handlers for tenant secret protection and key
// lifecycle operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/tenantvault/internal/errors"
	"github.com/allisson/tenantvault/internal/httputil"
	vaultDomain "github.com/allisson/tenantvault/internal/vault/domain"
)

// HandleSecretError maps the secret protection error taxonomy to HTTP
// responses. Crypto failures collapse into a single generic 422 so the
// response never reveals whether the key, the blob, or the tenant binding
// was at fault; unavailability maps to 503 so clients know to retry.
// Anything outside the taxonomy falls through to the shared mapping.
// Exported so handlers in other slices that call the secret service can
// reuse the same mapping.
func HandleSecretError(c *gin.Context, err error, logger *slog.Logger) {
	switch {
	case apperrors.Is(err, vaultDomain.ErrInvalidSecretFormat),
		apperrors.Is(err, vaultDomain.ErrAuthenticationFailed),
		apperrors.Is(err, vaultDomain.ErrInvalidBlobFormat):
		if logger != nil {
			logger.Warn("secret operation rejected", slog.Any("error", err))
		}
		c.JSON(http.StatusUnprocessableEntity, httputil.ErrorResponse{
			Error:   "invalid_credentials",
			Message: "access credentials could not be processed",
		})

	case apperrors.Is(err, vaultDomain.ErrKeyUnavailable),
		apperrors.Is(err, vaultDomain.ErrStoreUnavailable):
		if logger != nil {
			logger.Error("secret operation unavailable", slog.Any("error", err))
		}
		c.JSON(http.StatusServiceUnavailable, httputil.ErrorResponse{
			Error:   "service_unavailable",
			Message: "try again later",
		})

	default:
		httputil.HandleErrorGin(c, err, logger)
	}
}
