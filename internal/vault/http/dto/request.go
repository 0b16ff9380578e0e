// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/tenantvault/internal/validation"
)

// ProtectSecretRequest contains the parameters for protecting a tenant secret.
type ProtectSecretRequest struct {
	TenantID string `json:"tenant_id" binding:"required"`
	Secret   string `json:"secret" binding:"required"`
}

// Validate checks if the protect secret request is valid. The secret itself
// is only checked for presence here; its token shape is enforced by the
// secret service so the failure is audited.
func (r *ProtectSecretRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.TenantID,
			validation.Required,
			customValidation.SlackTeamID,
		),
		validation.Field(&r.Secret,
			validation.Required,
			customValidation.NoWhitespace,
		),
	)
}

// RevealSecretRequest contains the parameters for revealing a tenant secret.
type RevealSecretRequest struct {
	TenantID        string `json:"tenant_id" binding:"required"`
	EncryptedSecret string `json:"encrypted_secret" binding:"required"`
	KeyID           string `json:"key_id" binding:"required"`
}

// Validate checks if the reveal secret request is valid.
func (r *RevealSecretRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.TenantID,
			validation.Required,
			customValidation.SlackTeamID,
		),
		validation.Field(&r.EncryptedSecret,
			validation.Required,
			customValidation.NotBlank,
		),
		validation.Field(&r.KeyID,
			validation.Required,
			customValidation.KeyID,
		),
	)
}

// GenerateKeyRequest contains the optional parameters for key generation.
// An empty body generates a key with a derived identifier.
type GenerateKeyRequest struct {
	KeyID string `json:"key_id"`
}

// Validate checks if the generate key request is valid.
func (r *GenerateKeyRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.KeyID,
			validation.When(r.KeyID != "", customValidation.KeyID),
		),
	)
}
