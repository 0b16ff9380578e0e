// Package dto provides data transfer objects for tenant HTTP handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/tenantvault/internal/validation"
)

// InstallTenantRequest contains the data captured during an app installation.
type InstallTenantRequest struct {
	TeamID      string `json:"team_id" binding:"required"`
	TeamName    string `json:"team_name" binding:"required"`
	BotToken    string `json:"bot_token" binding:"required"`
	BotUserID   string `json:"bot_user_id" binding:"required"`
	InstalledBy string `json:"installed_by" binding:"required"`
}

// Validate checks if the install tenant request is valid. The bot token is
// only checked for presence; its shape is enforced by the secret service so
// that the rejection is audited.
func (r *InstallTenantRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.TeamID,
			validation.Required,
			customValidation.SlackTeamID,
		),
		validation.Field(&r.TeamName,
			validation.Required,
			validation.Length(1, 255),
		),
		validation.Field(&r.BotToken,
			validation.Required,
			customValidation.NoWhitespace,
		),
		validation.Field(&r.BotUserID,
			validation.Required,
			customValidation.NotBlank,
		),
		validation.Field(&r.InstalledBy,
			validation.Required,
			customValidation.NotBlank,
		),
	)
}
