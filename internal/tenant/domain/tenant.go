// Package domain defines the core models for Slack workspace tenants.
//
// Each tenant record holds the workspace identity and its bot token in
// protected form. The plaintext token only exists in memory, on its way in
// (install) or out (bot token lookup).
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/allisson/tenantvault/internal/errors"
)

// Tenant domain errors.
var (
	// ErrTenantNotFound indicates the requested workspace is not installed.
	ErrTenantNotFound = errors.Wrap(errors.ErrNotFound, "tenant not found")

	// ErrTenantSuspended indicates the workspace is suspended and its bot
	// token must not be used.
	ErrTenantSuspended = errors.Wrap(errors.ErrForbidden, "tenant is suspended")
)

// TenantStatus represents the lifecycle state of a workspace installation.
type TenantStatus string

const (
	// TenantStatusActive marks a workspace with a usable bot token.
	TenantStatusActive TenantStatus = "active"

	// TenantStatusSuspended marks a workspace whose bot token is withheld.
	TenantStatusSuspended TenantStatus = "suspended"
)

// Tenant represents a Slack workspace installation.
//
// EncryptedBotToken is the base64 storage blob produced by the secret
// service; EncryptionKeyID references the key that protects it.
type Tenant struct {
	ID                uuid.UUID
	TeamID            string
	TeamName          string
	EncryptedBotToken string
	EncryptionKeyID   string
	BotUserID         string
	InstalledBy       string
	Status            TenantStatus
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// InstallTenantInput carries the data captured during an app installation.
type InstallTenantInput struct {
	TeamID      string
	TeamName    string
	BotToken    string
	BotUserID   string
	InstalledBy string
}

// Active reports whether the tenant's bot token may be revealed.
func (t *Tenant) Active() bool {
	return t.Status == TenantStatusActive
}

// NewTenant builds an active tenant record for a fresh installation.
func NewTenant(teamID, teamName, botUserID, installedBy string) *Tenant {
	now := time.Now().UTC()
	return &Tenant{
		ID:          uuid.Must(uuid.NewV7()),
		TeamID:      teamID,
		TeamName:    teamName,
		BotUserID:   botUserID,
		InstalledBy: installedBy,
		Status:      TenantStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
