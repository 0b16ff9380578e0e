package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	vaultUseCase "github.com/allisson/tenantvault/internal/vault/usecase"
)

// RunRotateKeys expires keys past their validity window and generates a
// fresh active key. Prints how many keys were expired.
//
// Requirements: Database must be migrated and MASTER_KEY_URI configured.
func RunRotateKeys(
	ctx context.Context,
	keyService vaultUseCase.KeyService,
	logger *slog.Logger,
	writer io.Writer,
	format string,
) error {
	logger.Info("rotating encryption keys")

	expired, err := keyService.RotateKeys(ctx)
	if err != nil {
		return fmt.Errorf("failed to rotate keys: %w", err)
	}

	if format == "json" {
		result := map[string]int{"expired_keys": expired}
		jsonBytes, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		_, _ = fmt.Fprintln(writer, string(jsonBytes))
	} else {
		_, _ = fmt.Fprintf(writer, "Rotation completed: %d key(s) expired\n", expired)
	}

	logger.Info("keys rotated", slog.Int("expired_keys", expired))
	return nil
}
