package dto

import (
	"time"

	tenantDomain "github.com/allisson/tenantvault/internal/tenant/domain"
)

// TenantResponse represents a tenant in API responses. The encrypted bot
// token and its key id are never included; the plaintext token is only
// available through the bot token endpoint.
type TenantResponse struct {
	ID          string    `json:"id"`
	TeamID      string    `json:"team_id"`
	TeamName    string    `json:"team_name"`
	BotUserID   string    `json:"bot_user_id"`
	InstalledBy string    `json:"installed_by"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MapTenantToResponse converts a domain tenant to its API shape.
func MapTenantToResponse(tenant *tenantDomain.Tenant) TenantResponse {
	return TenantResponse{
		ID:          tenant.ID.String(),
		TeamID:      tenant.TeamID,
		TeamName:    tenant.TeamName,
		BotUserID:   tenant.BotUserID,
		InstalledBy: tenant.InstalledBy,
		Status:      string(tenant.Status),
		CreatedAt:   tenant.CreatedAt,
		UpdatedAt:   tenant.UpdatedAt,
	}
}

// ListTenantsResponse wraps a page of tenants.
type ListTenantsResponse struct {
	Tenants []TenantResponse `json:"tenants"`
	Offset  int              `json:"offset"`
	Limit   int              `json:"limit"`
}

// MapTenantsToListResponse converts a page of tenants.
func MapTenantsToListResponse(tenants []*tenantDomain.Tenant, offset, limit int) ListTenantsResponse {
	items := make([]TenantResponse, 0, len(tenants))
	for _, tenant := range tenants {
		items = append(items, MapTenantToResponse(tenant))
	}
	return ListTenantsResponse{
		Tenants: items,
		Offset:  offset,
		Limit:   limit,
	}
}

// BotTokenResponse carries a revealed bot token.
// Must be transmitted over HTTPS in production.
type BotTokenResponse struct {
	TeamID   string `json:"team_id"`
	BotToken string `json:"bot_token"`
}
