package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	authUseCase "github.com/allisson/tenantvault/internal/auth/usecase"
	apperrors "github.com/allisson/tenantvault/internal/errors"
	"github.com/allisson/tenantvault/internal/httputil"
)

// AuthenticationMiddleware authenticates requests via a Bearer credential of
// the form "<client_id>.<client_secret>" and stores the client in the
// request context for downstream handlers.
//
// Missing or malformed headers and failed verification abort with 401;
// inactive clients abort with 403.
func AuthenticationMiddleware(clientUseCase authUseCase.ClientUseCase, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Debug("authentication failed: missing authorization header")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		// "bearer" is case-insensitive per RFC 6750
		const bearerPrefix = "bearer "
		if len(authHeader) < len(bearerPrefix) ||
			!strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			logger.Debug("authentication failed: malformed authorization header")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		credential := authHeader[len(bearerPrefix):]
		if credential == "" {
			logger.Debug("authentication failed: empty bearer credential")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		client, err := clientUseCase.Authenticate(c.Request.Context(), credential)
		if err != nil {
			logger.Debug("authentication failed", slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		ctx := WithClient(c.Request.Context(), client)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
