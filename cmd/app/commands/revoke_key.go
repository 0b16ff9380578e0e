package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	vaultUseCase "github.com/allisson/tenantvault/internal/vault/usecase"
)

// RunRevokeKey revokes an encryption key immediately. Secrets encrypted
// under a revoked key can no longer be revealed.
//
// Requirements: Database must be migrated and MASTER_KEY_URI configured.
func RunRevokeKey(
	ctx context.Context,
	keyService vaultUseCase.KeyService,
	logger *slog.Logger,
	writer io.Writer,
	keyID string,
) error {
	if keyID == "" {
		return fmt.Errorf("key id is required")
	}

	logger.Info("revoking encryption key", slog.String("key_id", keyID))

	if err := keyService.RevokeKey(ctx, keyID); err != nil {
		return fmt.Errorf("failed to revoke key: %w", err)
	}

	_, _ = fmt.Fprintf(writer, "Key %s revoked\n", keyID)

	logger.Info("key revoked", slog.String("key_id", keyID))
	return nil
}
