// Package http provides HTTP handlers for Slack workspace tenants.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/tenantvault/internal/httputil"
	tenantDomain "github.com/allisson/tenantvault/internal/tenant/domain"
	"github.com/allisson/tenantvault/internal/tenant/http/dto"
	tenantUseCase "github.com/allisson/tenantvault/internal/tenant/usecase"
	customValidation "github.com/allisson/tenantvault/internal/validation"
	vaultHTTP "github.com/allisson/tenantvault/internal/vault/http"
)

// TenantHandler handles HTTP requests for tenant lifecycle operations.
type TenantHandler struct {
	tenantUseCase tenantUseCase.TenantUseCase
	logger        *slog.Logger
}

// NewTenantHandler creates a new tenant handler with required dependencies.
func NewTenantHandler(useCase tenantUseCase.TenantUseCase, logger *slog.Logger) *TenantHandler {
	return &TenantHandler{
		tenantUseCase: useCase,
		logger:        logger,
	}
}

// InstallHandler registers a workspace installation, replacing any previous
// record for the same team.
// POST /v1/tenants
// Returns 201 Created with the tenant; the bot token is not echoed back.
func (h *TenantHandler) InstallHandler(c *gin.Context) {
	var req dto.InstallTenantRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	tenant, err := h.tenantUseCase.Install(c.Request.Context(), tenantDomain.InstallTenantInput{
		TeamID:      req.TeamID,
		TeamName:    req.TeamName,
		BotToken:    req.BotToken,
		BotUserID:   req.BotUserID,
		InstalledBy: req.InstalledBy,
	})
	if err != nil {
		vaultHTTP.HandleSecretError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapTenantToResponse(tenant))
}

// GetHandler retrieves a tenant by team id.
// GET /v1/tenants/:team_id
func (h *TenantHandler) GetHandler(c *gin.Context) {
	teamID := c.Param("team_id")
	if err := customValidation.SlackTeamID.Validate(teamID); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	tenant, err := h.tenantUseCase.Get(c.Request.Context(), teamID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapTenantToResponse(tenant))
}

// ListHandler retrieves tenants with pagination.
// GET /v1/tenants?offset=&limit=
func (h *TenantHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	tenants, err := h.tenantUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapTenantsToListResponse(tenants, offset, limit))
}

// BotTokenHandler reveals the plaintext bot token for an active tenant.
// GET /v1/tenants/:team_id/bot-token
// Returns 200 OK with the token. Must be served over HTTPS.
func (h *TenantHandler) BotTokenHandler(c *gin.Context) {
	teamID := c.Param("team_id")
	if err := customValidation.SlackTeamID.Validate(teamID); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	token, err := h.tenantUseCase.BotToken(c.Request.Context(), teamID)
	if err != nil {
		vaultHTTP.HandleSecretError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.BotTokenResponse{
		TeamID:   teamID,
		BotToken: token,
	})
}

// SuspendHandler withholds the tenant's bot token until reinstallation.
// POST /v1/tenants/:team_id/suspend
// Returns 204 No Content.
func (h *TenantHandler) SuspendHandler(c *gin.Context) {
	teamID := c.Param("team_id")
	if err := customValidation.SlackTeamID.Validate(teamID); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	if err := h.tenantUseCase.Suspend(c.Request.Context(), teamID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
